package entities

import "time"

// ParticipantRole distinguishes the shop's master mechanics from apprentices.

type ParticipantRole string

const (
	RoleMaster     ParticipantRole = "master"
	RoleApprentice ParticipantRole = "apprentice"
)

// Participant is a worker who can appear on a task's assignment list.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Percentage is the participant's default split rate, used when a task
// assignment does not carry an explicit override. Balance is never stored on
// the participant record: it is the sum of the earning ledger entries for the
// participant, so crediting is append-only and auditable.
type Participant struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Role       ParticipantRole `json:"role"`
	Percentage int64           `json:"percentage"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// EarningEntry is one append-only credit in the earnings ledger.
//
// Storage model (DynamoDB):
//   - PK: task_id, SK: participant_id (composite uniqueness gives at-most-once
//     credit per participant per task)
//   - GSI1 (participant_id-index): participant_id
type EarningEntry struct {
	TaskID        string    `json:"task_id"`
	ParticipantID string    `json:"participant_id"`
	Amount        int64     `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}
