package interfaces

import (
	"context"
	"time"

	"oficina_prime/internal/domain/entities"
)

//go:generate mockgen -source=vehicle_repository_interface.go -destination=mocks/vehicle_repository_interface.go -package=mock_interfaces

// IVehicleRepository abstracts DynamoDB persistence for the per-vehicle
// service record.
//
// CompleteIfVersion is the per-vehicle critical section: it flips the record
// to completed only when the stored version still matches the one the caller
// read and the record is not already completed. A zero-value Vehicle with a
// nil error means the conditional write lost (version moved or record gone).

type IVehicleRepository interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	ListUnfinished(ctx context.Context) ([]entities.Vehicle, error)

	UpdateTotals(ctx context.Context, id string, totalEstimate, paidAmount int64) (entities.Vehicle, error)
	MarkInProgress(ctx context.Context, id string) (entities.Vehicle, error)
	SetReadyForDelivery(ctx context.Context, id string, ready bool) (entities.Vehicle, error)
	CompleteIfVersion(ctx context.Context, id string, version int64, at time.Time) (entities.Vehicle, error)
	MarkDelivered(ctx context.Context, id string) (entities.Vehicle, error)
}
