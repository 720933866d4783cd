package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"oficina_prime/internal/domain/entities"
	mock_interfaces "oficina_prime/internal/usecase/interfaces/mocks"
	mock_usecase "oficina_prime/internal/usecase/mocks"

	"go.uber.org/mock/gomock"
)

type completionFixture struct {
	vehicles *mock_interfaces.MockIVehicleRepository
	tasks    *mock_interfaces.MockITaskRepository
	lines    *mock_interfaces.MockIServiceLineRepository
	debts    *mock_usecase.MockIDebtUseCase
	notifier *mock_interfaces.MockINotifier
	uc       *CompletionUseCase
}

func newCompletionFixture(ctrl *gomock.Controller) completionFixture {
	f := completionFixture{
		vehicles: mock_interfaces.NewMockIVehicleRepository(ctrl),
		tasks:    mock_interfaces.NewMockITaskRepository(ctrl),
		lines:    mock_interfaces.NewMockIServiceLineRepository(ctrl),
		debts:    mock_usecase.NewMockIDebtUseCase(ctrl),
		notifier: mock_interfaces.NewMockINotifier(ctrl),
	}
	f.uc = NewCompletionUseCase(f.vehicles, f.tasks, f.lines, f.debts, f.notifier)
	return f
}

func TestCompletionUseCase_Reevaluate_Validations(t *testing.T) {
	t.Run("invalid vehicle id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCompletionFixture(ctrl)

		_, err := f.uc.Reevaluate(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidVehicleID) {
			t.Fatalf("expected ErrInvalidVehicleID, got %v", err)
		}
	})

	t.Run("vehicle not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCompletionFixture(ctrl)

		f.vehicles.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vehicle{}, nil)

		_, err := f.uc.Reevaluate(context.Background(), "v-1")
		if !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})
}

func TestCompletionUseCase_Reevaluate_Gate(t *testing.T) {
	t.Run("pending task blocks completion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCompletionFixture(ctrl)

		v := entities.Vehicle{ID: "v-1", Status: entities.VehicleStatusInProgress, Version: 3}
		f.vehicles.EXPECT().GetByID(gomock.Any(), "v-1").Return(v, nil)
		f.tasks.EXPECT().ListByVehicleID(gomock.Any(), "v-1").Return([]entities.Task{
			{ID: "t-1", Status: entities.TaskStatusApproved},
			{ID: "t-2", Status: entities.TaskStatusInProgress},
		}, nil)
		f.lines.EXPECT().ListByVehicleID(gomock.Any(), "v-1").Return([]entities.ServiceLine{
			{ID: "l-1", Status: entities.ServiceLineStatusCompleted},
		}, nil)

		completed, err := f.uc.Reevaluate(context.Background(), "v-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if completed {
			t.Fatal("expected completion gate to stay closed")
		}
	})

	t.Run("rejected-only vehicle never completes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCompletionFixture(ctrl)

		// Every task rejected, every line done: still no approved work, so the
		// record must not complete. The delivery marker does flip on, though.
		v := entities.Vehicle{ID: "v-1", Status: entities.VehicleStatusInProgress, Version: 3}
		f.vehicles.EXPECT().GetByID(gomock.Any(), "v-1").Return(v, nil)
		f.tasks.EXPECT().ListByVehicleID(gomock.Any(), "v-1").Return([]entities.Task{
			{ID: "t-1", Status: entities.TaskStatusRejected},
		}, nil)
		f.lines.EXPECT().ListByVehicleID(gomock.Any(), "v-1").Return([]entities.ServiceLine{
			{ID: "l-1", Status: entities.ServiceLineStatusCompleted},
		}, nil)
		f.vehicles.EXPECT().SetReadyForDelivery(gomock.Any(), "v-1", true).Return(entities.Vehicle{ID: "v-1"}, nil)

		completed, err := f.uc.Reevaluate(context.Background(), "v-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if completed {
			t.Fatal("rejected-only vehicle must not complete")
		}
	})

	t.Run("open service line blocks completion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCompletionFixture(ctrl)

		v := entities.Vehicle{ID: "v-1", Status: entities.VehicleStatusInProgress, Version: 1, ReadyForDelivery: true}
		f.vehicles.EXPECT().GetByID(gomock.Any(), "v-1").Return(v, nil)
		f.tasks.EXPECT().ListByVehicleID(gomock.Any(), "v-1").Return([]entities.Task{
			{ID: "t-1", Status: entities.TaskStatusApproved},
		}, nil)
		f.lines.EXPECT().ListByVehicleID(gomock.Any(), "v-1").Return([]entities.ServiceLine{
			{ID: "l-1", Status: entities.ServiceLineStatusInProgress},
		}, nil)

		completed, err := f.uc.Reevaluate(context.Background(), "v-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if completed {
			t.Fatal("open service line must block completion")
		}
	})

	t.Run("no tasks means no completion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCompletionFixture(ctrl)

		v := entities.Vehicle{ID: "v-1", Status: entities.VehicleStatusPending, Version: 0}
		f.vehicles.EXPECT().GetByID(gomock.Any(), "v-1").Return(v, nil)
		f.tasks.EXPECT().ListByVehicleID(gomock.Any(), "v-1").Return(nil, nil)
		f.lines.EXPECT().ListByVehicleID(gomock.Any(), "v-1").Return([]entities.ServiceLine{
			{ID: "l-1", Status: entities.ServiceLineStatusCompleted},
		}, nil)

		completed, err := f.uc.Reevaluate(context.Background(), "v-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if completed {
			t.Fatal("vehicle without tasks must not complete")
		}
	})
}

func TestCompletionUseCase_Reevaluate_Completes(t *testing.T) {
	t.Run("approved and rejected tasks with done lines complete the record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCompletionFixture(ctrl)

		v := entities.Vehicle{
			ID:            "v-1",
			Status:        entities.VehicleStatusInProgress,
			TotalEstimate: 5000,
			PaidAmount:    3000,
			Version:       4,
		}
		flipped := v
		flipped.Status = entities.VehicleStatusCompleted
		flipped.ReadyForDelivery = true
		flipped.Version = 5

		f.vehicles.EXPECT().GetByID(gomock.Any(), "v-1").Return(v, nil)
		f.tasks.EXPECT().ListByVehicleID(gomock.Any(), "v-1").Return([]entities.Task{
			{ID: "t-1", Status: entities.TaskStatusApproved},
			{ID: "t-2", Status: entities.TaskStatusRejected},
		}, nil)
		f.lines.EXPECT().ListByVehicleID(gomock.Any(), "v-1").Return([]entities.ServiceLine{
			{ID: "l-1", Status: entities.ServiceLineStatusCompleted},
		}, nil)
		f.vehicles.EXPECT().SetReadyForDelivery(gomock.Any(), "v-1", true).Return(flipped, nil)
		f.vehicles.EXPECT().CompleteIfVersion(gomock.Any(), "v-1", int64(4), gomock.AssignableToTypeOf(time.Time{})).Return(flipped, nil)
		f.debts.EXPECT().EnsureReceivable(gomock.Any(), "v-1", int64(5000), int64(3000)).Return(entities.Receivable{ID: "r-1", Amount: 2000}, nil)
		f.notifier.EXPECT().NotifyVehicleCompleted(gomock.Any(), flipped, int64(2000)).Return(nil)

		completed, err := f.uc.Reevaluate(context.Background(), "v-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !completed {
			t.Fatal("expected the vehicle to complete")
		}
	})

	t.Run("debt materialization failure does not roll back the flip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCompletionFixture(ctrl)

		v := entities.Vehicle{ID: "v-1", Status: entities.VehicleStatusInProgress, TotalEstimate: 1000, Version: 1, ReadyForDelivery: true}
		flipped := v
		flipped.Status = entities.VehicleStatusCompleted
		flipped.Version = 2

		f.vehicles.EXPECT().GetByID(gomock.Any(), "v-1").Return(v, nil)
		f.tasks.EXPECT().ListByVehicleID(gomock.Any(), "v-1").Return([]entities.Task{
			{ID: "t-1", Status: entities.TaskStatusApproved},
		}, nil)
		f.lines.EXPECT().ListByVehicleID(gomock.Any(), "v-1").Return(nil, nil)
		f.vehicles.EXPECT().CompleteIfVersion(gomock.Any(), "v-1", int64(1), gomock.Any()).Return(flipped, nil)
		f.debts.EXPECT().EnsureReceivable(gomock.Any(), "v-1", int64(1000), int64(0)).Return(entities.Receivable{}, errors.New("dynamo down"))
		f.notifier.EXPECT().NotifyVehicleCompleted(gomock.Any(), flipped, int64(1000)).Return(nil)

		completed, err := f.uc.Reevaluate(context.Background(), "v-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !completed {
			t.Fatal("expected the vehicle to complete despite debt failure")
		}
	})
}

func TestCompletionUseCase_Reevaluate_AlreadyCompleted(t *testing.T) {
	t.Run("no-op that still reconciles the receivable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCompletionFixture(ctrl)

		v := entities.Vehicle{ID: "v-1", Status: entities.VehicleStatusCompleted, TotalEstimate: 5000, PaidAmount: 3000}
		f.vehicles.EXPECT().GetByID(gomock.Any(), "v-1").Return(v, nil)
		f.debts.EXPECT().EnsureReceivable(gomock.Any(), "v-1", int64(5000), int64(3000)).Return(entities.Receivable{ID: "r-1"}, nil)

		completed, err := f.uc.Reevaluate(context.Background(), "v-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !completed {
			t.Fatal("expected completed=true for already-completed vehicle")
		}
	})
}

func TestCompletionUseCase_Reevaluate_Conflict(t *testing.T) {
	t.Run("lost write by a racer that completed is benign", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCompletionFixture(ctrl)

		v := entities.Vehicle{ID: "v-1", Status: entities.VehicleStatusInProgress, Version: 2, ReadyForDelivery: true}
		done := v
		done.Status = entities.VehicleStatusCompleted

		gomock.InOrder(
			f.vehicles.EXPECT().GetByID(gomock.Any(), "v-1").Return(v, nil),
			f.vehicles.EXPECT().GetByID(gomock.Any(), "v-1").Return(done, nil),
		)
		f.tasks.EXPECT().ListByVehicleID(gomock.Any(), "v-1").Return([]entities.Task{
			{ID: "t-1", Status: entities.TaskStatusApproved},
		}, nil)
		f.lines.EXPECT().ListByVehicleID(gomock.Any(), "v-1").Return(nil, nil)
		f.vehicles.EXPECT().CompleteIfVersion(gomock.Any(), "v-1", int64(2), gomock.Any()).Return(entities.Vehicle{}, nil)

		completed, err := f.uc.Reevaluate(context.Background(), "v-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !completed {
			t.Fatal("expected benign no-op to report completed")
		}
	})

	t.Run("version conflict is retried once against fresh state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCompletionFixture(ctrl)

		stale := entities.Vehicle{ID: "v-1", Status: entities.VehicleStatusInProgress, Version: 2, ReadyForDelivery: true}
		fresh := stale
		fresh.Version = 3
		flipped := fresh
		flipped.Status = entities.VehicleStatusCompleted
		flipped.Version = 4

		tasks := []entities.Task{{ID: "t-1", Status: entities.TaskStatusApproved}}

		gomock.InOrder(
			// First pass: conditional write lost, vehicle still in progress.
			f.vehicles.EXPECT().GetByID(gomock.Any(), "v-1").Return(stale, nil),
			f.vehicles.EXPECT().GetByID(gomock.Any(), "v-1").Return(fresh, nil),
			// Retry pass against the fresh version.
			f.vehicles.EXPECT().GetByID(gomock.Any(), "v-1").Return(fresh, nil),
		)
		f.tasks.EXPECT().ListByVehicleID(gomock.Any(), "v-1").Return(tasks, nil).Times(2)
		f.lines.EXPECT().ListByVehicleID(gomock.Any(), "v-1").Return(nil, nil).Times(2)
		f.vehicles.EXPECT().CompleteIfVersion(gomock.Any(), "v-1", int64(2), gomock.Any()).Return(entities.Vehicle{}, nil)
		f.vehicles.EXPECT().CompleteIfVersion(gomock.Any(), "v-1", int64(3), gomock.Any()).Return(flipped, nil)
		f.debts.EXPECT().EnsureReceivable(gomock.Any(), "v-1", int64(0), int64(0)).Return(entities.Receivable{}, nil)
		f.notifier.EXPECT().NotifyVehicleCompleted(gomock.Any(), flipped, int64(0)).Return(nil)

		completed, err := f.uc.Reevaluate(context.Background(), "v-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !completed {
			t.Fatal("expected retry to complete the vehicle")
		}
	})
}
