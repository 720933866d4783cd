package interfaces

import (
	"context"

	"oficina_prime/internal/domain/entities"
)

//go:generate mockgen -source=service_line_repository_interface.go -destination=mocks/service_line_repository_interface.go -package=mock_interfaces

// IServiceLineRepository abstracts DynamoDB persistence for ServiceLine.
//
// TransitionStatus is conditional on the current status; a zero-value line
// with a nil error means the line was missing or not in the expected state.

type IServiceLineRepository interface {
	Create(ctx context.Context, l entities.ServiceLine) (entities.ServiceLine, error)
	GetByID(ctx context.Context, id string) (entities.ServiceLine, error)
	ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.ServiceLine, error)
	TransitionStatus(ctx context.Context, id string, from, to entities.ServiceLineStatus) (entities.ServiceLine, error)
}
