package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"oficina_prime/internal/domain/entities"
	"oficina_prime/internal/usecase/interfaces"
)

var (
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrCompletionConflict = errors.New("vehicle completion conflicted with a concurrent update")
)

// ICompletionUseCase re-evaluates whether a vehicle's repair record is fully
// done and, once it is, flips the record to completed exactly once and hands
// the outstanding balance to the debt materializer.
//
// Reevaluate is re-entrant and cheap to repeat: it runs after every
// qualifying task/line transition and on the cron sweep, and is a no-op once
// the vehicle is completed.

type ICompletionUseCase interface {
	Reevaluate(ctx context.Context, vehicleID string) (vehicleCompleted bool, err error)
}

type CompletionUseCase struct {
	vehicles interfaces.IVehicleRepository
	tasks    interfaces.ITaskRepository
	lines    interfaces.IServiceLineRepository
	debts    IDebtUseCase
	notifier interfaces.INotifier
}

var _ ICompletionUseCase = (*CompletionUseCase)(nil)

func NewCompletionUseCase(
	vehicles interfaces.IVehicleRepository,
	tasks interfaces.ITaskRepository,
	lines interfaces.IServiceLineRepository,
	debts IDebtUseCase,
	notifier interfaces.INotifier,
) *CompletionUseCase {
	return &CompletionUseCase{vehicles: vehicles, tasks: tasks, lines: lines, debts: debts, notifier: notifier}
}

// Reevaluate checks the completion gate for the vehicle:
//  1. no task left in assigned/in_progress/completed,
//  2. at least one task approved,
//  3. every service line completed.
//
// The status flip is a version-guarded conditional write; a lost write is
// retried once against fresh state before surfacing ErrCompletionConflict.
func (u *CompletionUseCase) Reevaluate(ctx context.Context, vehicleID string) (bool, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return false, ErrInvalidVehicleID
	}

	completed, err := u.reevaluateOnce(ctx, vehicleID)
	if err == nil || !errors.Is(err, ErrCompletionConflict) {
		return completed, err
	}

	log.Printf("[completion][usecase] conflict on vehicle_id=%s, retrying once", vehicleID)
	return u.reevaluateOnce(ctx, vehicleID)
}

func (u *CompletionUseCase) reevaluateOnce(ctx context.Context, vehicleID string) (bool, error) {
	v, err := u.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return false, err
	}
	if v.ID == "" {
		return false, ErrVehicleNotFound
	}
	if v.Status == entities.VehicleStatusCompleted || v.Status == entities.VehicleStatusDelivered {
		// Still reconcile the receivable: a debt creation that failed right
		// after the flip heals here on the next pass.
		if _, err := u.debts.EnsureReceivable(ctx, vehicleID, v.TotalEstimate, v.PaidAmount); err != nil {
			log.Printf("[completion][usecase] debt reconciliation failed vehicle_id=%s err=%v", vehicleID, err)
		}
		return true, nil
	}

	tasks, err := u.tasks.ListByVehicleID(ctx, vehicleID)
	if err != nil {
		return false, err
	}
	lines, err := u.lines.ListByVehicleID(ctx, vehicleID)
	if err != nil {
		return false, err
	}

	allResolved, anyApproved, allWorkDone := true, false, true
	for _, t := range tasks {
		if !t.Status.Resolved() {
			allResolved = false
		}
		if t.Status == entities.TaskStatusApproved {
			anyApproved = true
		}
		if t.Status != entities.TaskStatusCompleted && !t.Status.Resolved() {
			allWorkDone = false
		}
	}
	allLinesDone := true
	for _, l := range lines {
		if l.Status != entities.ServiceLineStatusCompleted {
			allLinesDone = false
		}
	}

	// The delivery marker tracks "every task is at least completed" and is
	// refreshed here so a task completion updates it without a status flip.
	ready := len(tasks) > 0 && allWorkDone
	if ready != v.ReadyForDelivery {
		if _, err := u.vehicles.SetReadyForDelivery(ctx, vehicleID, ready); err != nil {
			log.Printf("[completion][usecase] failed updating delivery marker vehicle_id=%s err=%v", vehicleID, err)
		}
	}

	if !allResolved || !anyApproved || !allLinesDone {
		log.Printf("[completion][usecase] gate not met vehicle_id=%s all_resolved=%t any_approved=%t all_lines_done=%t", vehicleID, allResolved, anyApproved, allLinesDone)
		return false, nil
	}

	flipped, err := u.vehicles.CompleteIfVersion(ctx, vehicleID, v.Version, time.Now().UTC())
	if err != nil {
		return false, err
	}
	if flipped.ID == "" {
		// Lost the conditional write. If a concurrent approval already
		// completed the record this is a benign no-op, otherwise conflict.
		current, err := u.vehicles.GetByID(ctx, vehicleID)
		if err != nil {
			return false, err
		}
		if current.Status == entities.VehicleStatusCompleted || current.Status == entities.VehicleStatusDelivered {
			return true, nil
		}
		return false, ErrCompletionConflict
	}

	outstanding := flipped.Outstanding()
	log.Printf("[completion][usecase] vehicle completed vehicle_id=%s total=%d paid=%d outstanding=%d", vehicleID, flipped.TotalEstimate, flipped.PaidAmount, outstanding)

	// Debt materialization failure is not rolled back: the record is already
	// completed and the cron sweep will re-run this idempotent path.
	if _, err := u.debts.EnsureReceivable(ctx, vehicleID, flipped.TotalEstimate, flipped.PaidAmount); err != nil {
		log.Printf("[completion][usecase] debt materialization failed vehicle_id=%s err=%v", vehicleID, err)
	}

	if u.notifier != nil {
		if err := u.notifier.NotifyVehicleCompleted(ctx, flipped, outstanding); err != nil {
			log.Printf("[completion][usecase] completion notification failed vehicle_id=%s err=%v", vehicleID, err)
		}
	}

	return true, nil
}
