package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"oficina_prime/internal/domain/allocation"
	"oficina_prime/internal/domain/entities"
	"oficina_prime/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrInvalidTaskID        = errors.New("invalid task id")
	ErrInvalidTaskTitle     = errors.New("invalid task title")
	ErrInvalidTransition    = errors.New("invalid task status transition")
	ErrEmptyReason          = errors.New("rejection reason must not be empty")
	ErrDuplicateParticipant = errors.New("participant listed more than once")
)

// CreateTaskCommand carries the inputs for task creation. Assignment order is
// preserved exactly as given: it is the cascade order of the commission
// split. A negative percentage on an assignment means "use the participant's
// default rate".
type CreateTaskCommand struct {
	VehicleID   string
	Title       string
	Payment     int64
	Assignments []entities.Assignment
}

// ApprovalResult is what ApproveTask hands back to the transport layer.
type ApprovalResult struct {
	Task             entities.Task
	VehicleCompleted bool
}

// ITaskLifecycleUseCase drives a task through
// assigned -> in_progress -> completed -> {approved | rejected}, with
// rejected -> in_progress as the only backward edge. Approval is the only
// transition that moves money.

type ITaskLifecycleUseCase interface {
	CreateTask(ctx context.Context, cmd CreateTaskCommand) (entities.Task, error)
	GetTask(ctx context.Context, id string) (entities.Task, error)
	ListTasksByVehicle(ctx context.Context, vehicleID string) ([]entities.Task, error)
	StartTask(ctx context.Context, id string) (entities.Task, error)
	CompleteTask(ctx context.Context, id string) (entities.Task, error)
	ApproveTask(ctx context.Context, id string) (ApprovalResult, error)
	PreviewAllocation(ctx context.Context, payment int64, assignments []entities.Assignment) (allocation.Result, error)
	RejectTask(ctx context.Context, id string, reason string) (entities.Task, error)
	ResubmitTask(ctx context.Context, id string) (entities.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

type TaskLifecycleUseCase struct {
	tasks        interfaces.ITaskRepository
	participants interfaces.IParticipantRepository
	vehicles     interfaces.IVehicleRepository
	earnings     interfaces.IEarningRepository
	completion   ICompletionUseCase
	notifier     interfaces.INotifier
}

var _ ITaskLifecycleUseCase = (*TaskLifecycleUseCase)(nil)

func NewTaskLifecycleUseCase(
	tasks interfaces.ITaskRepository,
	participants interfaces.IParticipantRepository,
	vehicles interfaces.IVehicleRepository,
	earnings interfaces.IEarningRepository,
	completion ICompletionUseCase,
	notifier interfaces.INotifier,
) *TaskLifecycleUseCase {
	return &TaskLifecycleUseCase{
		tasks:        tasks,
		participants: participants,
		vehicles:     vehicles,
		earnings:     earnings,
		completion:   completion,
		notifier:     notifier,
	}
}

func (u *TaskLifecycleUseCase) CreateTask(ctx context.Context, cmd CreateTaskCommand) (entities.Task, error) {
	cmd.VehicleID = strings.TrimSpace(cmd.VehicleID)
	if cmd.VehicleID == "" {
		return entities.Task{}, ErrInvalidVehicleID
	}
	cmd.Title = strings.TrimSpace(cmd.Title)
	if cmd.Title == "" {
		return entities.Task{}, ErrInvalidTaskTitle
	}
	if len(cmd.Assignments) == 0 {
		return entities.Task{}, allocation.ErrNoAssignments
	}

	v, err := u.vehicles.GetByID(ctx, cmd.VehicleID)
	if err != nil {
		return entities.Task{}, err
	}
	if v.ID == "" {
		return entities.Task{}, ErrVehicleNotFound
	}

	assignments, err := u.resolveAssignments(ctx, cmd.Assignments)
	if err != nil {
		return entities.Task{}, err
	}

	// Validate the split up front and cache the snapshot for display.
	res, err := runAllocation(cmd.Payment, assignments)
	if err != nil {
		return entities.Task{}, err
	}

	now := time.Now().UTC()
	t := entities.Task{
		ID:              uuid.NewString(),
		VehicleID:       cmd.VehicleID,
		Title:           cmd.Title,
		Payment:         cmd.Payment,
		Assignments:     assignments,
		Status:          entities.TaskStatusAssigned,
		Earnings:        snapshotFromResult(res),
		MasterRemainder: res.MasterRemainder,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	created, err := u.tasks.Create(ctx, t)
	if err != nil {
		return entities.Task{}, err
	}
	log.Printf("[task][usecase] created task_id=%s vehicle_id=%s payment=%d assignments=%d", created.ID, created.VehicleID, created.Payment, len(created.Assignments))

	if v.Status == entities.VehicleStatusPending {
		if _, err := u.vehicles.MarkInProgress(ctx, v.ID); err != nil {
			log.Printf("[task][usecase] failed promoting vehicle to in_progress vehicle_id=%s err=%v", v.ID, err)
		}
	}
	return created, nil
}

// resolveAssignments fills in default percentages from the participant
// registry and verifies every referenced participant exists and appears only
// once. A repeated participant would collapse into a single ledger credit and
// silently swallow the second share of the split.
func (u *TaskLifecycleUseCase) resolveAssignments(ctx context.Context, in []entities.Assignment) ([]entities.Assignment, error) {
	out := make([]entities.Assignment, len(in))
	seen := make(map[string]struct{}, len(in))
	for i, a := range in {
		a.ParticipantID = strings.TrimSpace(a.ParticipantID)
		if a.ParticipantID == "" {
			return nil, ErrParticipantNotFound
		}
		if _, dup := seen[a.ParticipantID]; dup {
			return nil, ErrDuplicateParticipant
		}
		seen[a.ParticipantID] = struct{}{}
		p, err := u.participants.GetByID(ctx, a.ParticipantID)
		if err != nil {
			return nil, err
		}
		if p.ID == "" {
			return nil, ErrParticipantNotFound
		}
		if a.Percentage < 0 {
			a.Percentage = p.Percentage
		}
		out[i] = a
	}
	return out, nil
}

func (u *TaskLifecycleUseCase) GetTask(ctx context.Context, id string) (entities.Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Task{}, ErrInvalidTaskID
	}

	t, err := u.tasks.GetByID(ctx, id)
	if err != nil {
		return entities.Task{}, err
	}
	if t.ID == "" {
		return entities.Task{}, ErrTaskNotFound
	}
	return t, nil
}

func (u *TaskLifecycleUseCase) ListTasksByVehicle(ctx context.Context, vehicleID string) ([]entities.Task, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return nil, ErrInvalidVehicleID
	}
	return u.tasks.ListByVehicleID(ctx, vehicleID)
}

func (u *TaskLifecycleUseCase) StartTask(ctx context.Context, id string) (entities.Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Task{}, ErrInvalidTaskID
	}

	t, err := u.tasks.TransitionStatus(ctx, id, entities.TaskStatusAssigned, entities.TaskStatusInProgress)
	if err != nil {
		return entities.Task{}, err
	}
	if t.ID == "" {
		return entities.Task{}, u.transitionFailure(ctx, id)
	}
	log.Printf("[task][usecase] started task_id=%s", t.ID)
	return t, nil
}

// CompleteTask stamps the completion time and pokes the completion
// coordinator so the vehicle's delivery marker stays current. No earnings
// move here.
func (u *TaskLifecycleUseCase) CompleteTask(ctx context.Context, id string) (entities.Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Task{}, ErrInvalidTaskID
	}

	t, err := u.tasks.MarkCompleted(ctx, id, time.Now().UTC())
	if err != nil {
		return entities.Task{}, err
	}
	if t.ID == "" {
		return entities.Task{}, u.transitionFailure(ctx, id)
	}
	log.Printf("[task][usecase] completed task_id=%s vehicle_id=%s", t.ID, t.VehicleID)

	if _, err := u.completion.Reevaluate(ctx, t.VehicleID); err != nil {
		log.Printf("[task][usecase] completion re-check failed vehicle_id=%s err=%v", t.VehicleID, err)
	}
	return t, nil
}

// ApproveTask runs the commission split against the task's current payment
// and assignment list, credits every participant's ledger, then re-evaluates
// the vehicle. The status flip is conditional on completed and each credit is
// keyed by (task, participant), so a retried approval can neither transition
// twice nor double-credit anyone. An already-approved task replays the credit
// pass from its persisted earnings snapshot instead of failing: a crash
// between the flip and the last credit heals on the retry.
func (u *TaskLifecycleUseCase) ApproveTask(ctx context.Context, id string) (ApprovalResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ApprovalResult{}, ErrInvalidTaskID
	}

	t, err := u.tasks.GetByID(ctx, id)
	if err != nil {
		return ApprovalResult{}, err
	}
	if t.ID == "" {
		return ApprovalResult{}, ErrTaskNotFound
	}
	if t.Status == entities.TaskStatusApproved {
		log.Printf("[task][usecase] approve replay task_id=%s", id)
		return u.settleApproval(ctx, t, false)
	}
	if t.Status != entities.TaskStatusCompleted {
		log.Printf("[task][usecase] approve rejected task_id=%s status=%s", id, t.Status)
		return ApprovalResult{}, ErrInvalidTransition
	}

	res, err := runAllocation(t.Payment, t.Assignments)
	if err != nil {
		// Precondition failure: nothing has been written yet.
		log.Printf("[task][usecase] allocation precondition failed task_id=%s err=%v", id, err)
		return ApprovalResult{}, err
	}

	approved, err := u.tasks.MarkApproved(ctx, id, snapshotFromResult(res), res.MasterRemainder)
	if err != nil {
		return ApprovalResult{}, err
	}
	if approved.ID == "" {
		// Lost the conditional flip: a concurrent request got there first.
		return ApprovalResult{}, u.transitionFailure(ctx, id)
	}
	log.Printf("[task][usecase] approved task_id=%s payment=%d master_remainder=%d", approved.ID, approved.Payment, res.MasterRemainder)

	return u.settleApproval(ctx, approved, true)
}

// settleApproval credits the approved task's persisted earnings snapshot and
// re-evaluates the vehicle. Credits are keyed by (task, participant), so
// entries that already landed are skipped and the pass is safe to replay.
func (u *TaskLifecycleUseCase) settleApproval(ctx context.Context, approved entities.Task, notify bool) (ApprovalResult, error) {
	for _, e := range approved.Earnings {
		created, err := u.earnings.Credit(ctx, entities.EarningEntry{
			TaskID:        approved.ID,
			ParticipantID: e.ParticipantID,
			Amount:        e.Earning,
			CreatedAt:     time.Now().UTC(),
		})
		if err != nil {
			return ApprovalResult{}, err
		}
		if !created {
			log.Printf("[task][usecase] credit already present task_id=%s participant_id=%s", approved.ID, e.ParticipantID)
			continue
		}
		log.Printf("[task][usecase] credited task_id=%s participant_id=%s amount=%d", approved.ID, e.ParticipantID, e.Earning)
	}

	if notify && u.notifier != nil {
		if err := u.notifier.NotifyTaskApproved(ctx, approved); err != nil {
			log.Printf("[task][usecase] approval notification failed task_id=%s err=%v", approved.ID, err)
		}
	}

	vehicleCompleted, err := u.completion.Reevaluate(ctx, approved.VehicleID)
	if err != nil {
		// Earnings are already credited; the sweep retries the completion
		// side. Surface nothing worse than the conflict itself.
		log.Printf("[task][usecase] completion re-check failed vehicle_id=%s err=%v", approved.VehicleID, err)
		return ApprovalResult{Task: approved, VehicleCompleted: false}, err
	}

	return ApprovalResult{Task: approved, VehicleCompleted: vehicleCompleted}, nil
}

// PreviewAllocation runs the commission split without touching any task.
// Default percentages are resolved from the participant registry the same
// way task creation resolves them.
func (u *TaskLifecycleUseCase) PreviewAllocation(ctx context.Context, payment int64, assignments []entities.Assignment) (allocation.Result, error) {
	if len(assignments) == 0 {
		return allocation.Result{}, allocation.ErrNoAssignments
	}
	resolved, err := u.resolveAssignments(ctx, assignments)
	if err != nil {
		return allocation.Result{}, err
	}
	return runAllocation(payment, resolved)
}

func (u *TaskLifecycleUseCase) RejectTask(ctx context.Context, id string, reason string) (entities.Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Task{}, ErrInvalidTaskID
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Task{}, ErrEmptyReason
	}

	t, err := u.tasks.MarkRejected(ctx, id, reason)
	if err != nil {
		return entities.Task{}, err
	}
	if t.ID == "" {
		return entities.Task{}, u.transitionFailure(ctx, id)
	}
	log.Printf("[task][usecase] rejected task_id=%s reason=%q", t.ID, reason)

	if _, err := u.completion.Reevaluate(ctx, t.VehicleID); err != nil {
		log.Printf("[task][usecase] completion re-check failed vehicle_id=%s err=%v", t.VehicleID, err)
	}
	return t, nil
}

func (u *TaskLifecycleUseCase) ResubmitTask(ctx context.Context, id string) (entities.Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Task{}, ErrInvalidTaskID
	}

	t, err := u.tasks.MarkResubmitted(ctx, id)
	if err != nil {
		return entities.Task{}, err
	}
	if t.ID == "" {
		return entities.Task{}, u.transitionFailure(ctx, id)
	}
	log.Printf("[task][usecase] resubmitted task_id=%s", t.ID)
	return t, nil
}

// DeleteTask removes the task in any state. Credited earnings are not
// unwound: the ledger entries are the audit trail of work that was approved
// and paid for, and they outlive the task record.
func (u *TaskLifecycleUseCase) DeleteTask(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidTaskID
	}

	t, err := u.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t.ID == "" {
		return ErrTaskNotFound
	}

	if err := u.tasks.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("[task][usecase] deleted task_id=%s vehicle_id=%s status=%s", id, t.VehicleID, t.Status)
	return nil
}

// transitionFailure turns a lost conditional write into the right caller
// error by re-reading the task.
func (u *TaskLifecycleUseCase) transitionFailure(ctx context.Context, id string) error {
	t, err := u.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t.ID == "" {
		return ErrTaskNotFound
	}
	return ErrInvalidTransition
}

func runAllocation(payment int64, assignments []entities.Assignment) (allocation.Result, error) {
	in := make([]allocation.Assignment, len(assignments))
	for i, a := range assignments {
		in[i] = allocation.Assignment{ParticipantID: a.ParticipantID, Percentage: a.Percentage}
	}
	return allocation.Split(payment, in)
}

func snapshotFromResult(res allocation.Result) []entities.EarningSnapshot {
	out := make([]entities.EarningSnapshot, len(res.Earnings))
	for i, e := range res.Earnings {
		out[i] = entities.EarningSnapshot{ParticipantID: e.ParticipantID, Earning: e.Amount}
	}
	return out
}
