package interfaces

import (
	"context"
	"time"

	"oficina_prime/internal/domain/entities"
)

//go:generate mockgen -source=task_repository_interface.go -destination=mocks/task_repository_interface.go -package=mock_interfaces

// ITaskRepository abstracts DynamoDB persistence for Task.
//
// Conditional semantics: every Mark*/Transition method is a conditional
// update on the current status. A zero-value Task with a nil error means the
// precondition did not hold (task missing or not in the expected state), and
// callers decide whether that is a not-found or an invalid transition.

type ITaskRepository interface {
	Create(ctx context.Context, t entities.Task) (entities.Task, error)
	GetByID(ctx context.Context, id string) (entities.Task, error)
	ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.Task, error)
	Delete(ctx context.Context, id string) error

	TransitionStatus(ctx context.Context, id string, from, to entities.TaskStatus) (entities.Task, error)
	MarkCompleted(ctx context.Context, id string, at time.Time) (entities.Task, error)
	MarkApproved(ctx context.Context, id string, earnings []entities.EarningSnapshot, masterRemainder int64) (entities.Task, error)
	MarkRejected(ctx context.Context, id string, reason string) (entities.Task, error)
	MarkResubmitted(ctx context.Context, id string) (entities.Task, error)
}
