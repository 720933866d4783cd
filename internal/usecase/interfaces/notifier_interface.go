package interfaces

import (
	"context"

	"oficina_prime/internal/domain/entities"
)

//go:generate mockgen -source=notifier_interface.go -destination=mocks/notifier_interface.go -package=mock_interfaces

// INotifier sends outbound shop notifications (Telegram today).
//
// Delivery is best-effort: usecases log notifier errors and never fail a
// money-moving flow because a message could not be sent.

type INotifier interface {
	NotifyTaskApproved(ctx context.Context, task entities.Task) error
	NotifyVehicleCompleted(ctx context.Context, vehicle entities.Vehicle, outstanding int64) error
}
