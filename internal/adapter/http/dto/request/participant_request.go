package request

// ParticipantCreateRequest registers a worker. Percentage is the default
// split rate applied when a task assignment does not override it.
type ParticipantCreateRequest struct {
	Name       string `json:"name" binding:"required"`
	Role       string `json:"role" binding:"required"`
	Percentage int64  `json:"percentage"`
}
