package entities

import "time"

// TaskStatus represents the lifecycle of a labor task.
//
// Allowed transitions:
//   - assigned -> in_progress -> completed -> approved | rejected
//   - rejected -> in_progress (resubmission, the only backward edge)
//
// approved is terminal and is the only transition that credits earnings.

type TaskStatus string

const (
	TaskStatusAssigned   TaskStatus = "assigned"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusApproved   TaskStatus = "approved"
	TaskStatusRejected   TaskStatus = "rejected"
)

// Resolved reports whether the status is terminal for vehicle-completion
// purposes (no further work expected on the task).
func (s TaskStatus) Resolved() bool {
	return s == TaskStatusApproved || s == TaskStatusRejected
}

// Assignment is one {participant, percentage} pair inside a task's split list.
//
// The slice order on Task.Assignments is business data, not an artifact: the
// first entry funds the apprentice pool and every later entry draws its share
// from what the previous entries left behind. Never reorder it.
type Assignment struct {
	ParticipantID string `json:"participant_id"`
	Percentage    int64  `json:"percentage"`
}

// EarningSnapshot is the cached per-assignment result of the last allocation
// run, kept on the task for display. It is always re-derivable from Payment
// plus Assignments and is never the source of truth for balances.
type EarningSnapshot struct {
	ParticipantID string `json:"participant_id"`
	Earning       int64  `json:"earning"`
}

// Task is a unit of billable labor persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (vehicle_id-index): vehicle_id
//
// Monetary representation:
//   - Payment and all earnings are integer minor units (centavos).
type Task struct {
	ID              string            `json:"id"`
	VehicleID       string            `json:"vehicle_id"`
	Title           string            `json:"title"`
	Payment         int64             `json:"payment"`
	Assignments     []Assignment      `json:"assignments"`
	Status          TaskStatus        `json:"status"`
	Earnings        []EarningSnapshot `json:"earnings,omitempty"`
	MasterRemainder int64             `json:"master_remainder"`
	RejectionReason string            `json:"rejection_reason,omitempty"`
	CompletedAt     *time.Time        `json:"completed_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
