package interfaces

import (
	"context"

	"oficina_prime/internal/domain/entities"
)

//go:generate mockgen -source=receivable_repository_interface.go -destination=mocks/receivable_repository_interface.go -package=mock_interfaces

// IReceivableRepository abstracts DynamoDB persistence for Receivable.
//
// GetOpenByVehicleID returns the single pending/partial receivable for the
// vehicle, or a zero value when none is open. The at-most-one-open invariant
// is maintained by the debt usecase, which only creates when no open record
// exists.

type IReceivableRepository interface {
	Create(ctx context.Context, r entities.Receivable) (entities.Receivable, error)
	GetOpenByVehicleID(ctx context.Context, vehicleID string) (entities.Receivable, error)
	Update(ctx context.Context, r entities.Receivable) (entities.Receivable, error)
}
