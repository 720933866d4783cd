package request

import "oficina_prime/internal/domain/entities"

// TaskAssignmentRequest is one {participant, percentage} pair of a task's
// split list. Percentage nil means "use the participant's default rate";
// list order is the cascade order and is preserved as given.
type TaskAssignmentRequest struct {
	ParticipantID string `json:"participant_id" binding:"required"`
	Percentage    *int64 `json:"percentage"`
}

// TaskCreateRequest creates a labor task on a vehicle. Payment is integer
// minor units (centavos).
type TaskCreateRequest struct {
	Title       string                  `json:"title" binding:"required"`
	Payment     int64                   `json:"payment"`
	Assignments []TaskAssignmentRequest `json:"assignments" binding:"required"`
}

// TaskRejectRequest carries the mandatory rejection reason.
type TaskRejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// AllocationPreviewRequest runs the commission split without touching any
// task, for quoting and inspection.
type AllocationPreviewRequest struct {
	Payment     int64                   `json:"payment"`
	Assignments []TaskAssignmentRequest `json:"assignments" binding:"required"`
}

// ToAssignments maps the wire pairs onto domain assignments, encoding the
// "use default" case as a negative percentage.
func ToAssignments(in []TaskAssignmentRequest) []entities.Assignment {
	out := make([]entities.Assignment, len(in))
	for i, a := range in {
		pct := int64(-1)
		if a.Percentage != nil {
			pct = *a.Percentage
		}
		out[i] = entities.Assignment{ParticipantID: a.ParticipantID, Percentage: pct}
	}
	return out
}
