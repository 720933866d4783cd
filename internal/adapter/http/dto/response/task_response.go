package response

import (
	"time"

	"oficina_prime/internal/domain/entities"
)

type AssignmentResponse struct {
	ParticipantID string `json:"participant_id"`
	Percentage    int64  `json:"percentage"`
}

type EarningSnapshotResponse struct {
	ParticipantID string `json:"participant_id"`
	Earning       int64  `json:"earning"`
}

type TaskResponse struct {
	TaskID          string                    `json:"task_id"`
	ID              string                    `json:"id"`
	VehicleID       string                    `json:"vehicle_id"`
	Title           string                    `json:"title"`
	Payment         int64                     `json:"payment"`
	Assignments     []AssignmentResponse      `json:"assignments"`
	Status          string                    `json:"status"`
	Earnings        []EarningSnapshotResponse `json:"earnings,omitempty"`
	MasterRemainder int64                     `json:"master_remainder"`
	RejectionReason string                    `json:"rejection_reason,omitempty"`
	CompletedAt     *time.Time                `json:"completed_at,omitempty"`
	CreatedAt       time.Time                 `json:"created_at"`
	UpdatedAt       time.Time                 `json:"updated_at"`
}

// ApprovalResponse augments the approved task with the outcome of the
// vehicle-wide completion check it triggered.
type ApprovalResponse struct {
	TaskResponse
	VehicleCompleted bool `json:"vehicle_completed"`
}

func FromTask(t entities.Task) TaskResponse {
	assignments := make([]AssignmentResponse, len(t.Assignments))
	for i, a := range t.Assignments {
		assignments[i] = AssignmentResponse{ParticipantID: a.ParticipantID, Percentage: a.Percentage}
	}
	earnings := make([]EarningSnapshotResponse, len(t.Earnings))
	for i, e := range t.Earnings {
		earnings[i] = EarningSnapshotResponse{ParticipantID: e.ParticipantID, Earning: e.Earning}
	}
	return TaskResponse{
		TaskID:          t.ID,
		ID:              t.ID,
		VehicleID:       t.VehicleID,
		Title:           t.Title,
		Payment:         t.Payment,
		Assignments:     assignments,
		Status:          string(t.Status),
		Earnings:        earnings,
		MasterRemainder: t.MasterRemainder,
		RejectionReason: t.RejectionReason,
		CompletedAt:     t.CompletedAt,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func FromTasks(tasks []entities.Task) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = FromTask(t)
	}
	return out
}
