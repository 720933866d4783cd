package response

import (
	"time"

	"oficina_prime/internal/domain/entities"
	"oficina_prime/internal/usecase"
)

type ParticipantResponse struct {
	ParticipantID string    `json:"participant_id"`
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	Percentage    int64     `json:"percentage"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type EarningEntryResponse struct {
	TaskID        string    `json:"task_id"`
	ParticipantID string    `json:"participant_id"`
	Amount        int64     `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}

// BalanceResponse is a participant plus their ledger-derived balance.
type BalanceResponse struct {
	ParticipantResponse
	Balance int64                  `json:"balance"`
	Entries []EarningEntryResponse `json:"entries"`
}

func FromParticipant(p entities.Participant) ParticipantResponse {
	return ParticipantResponse{
		ParticipantID: p.ID,
		ID:            p.ID,
		Name:          p.Name,
		Role:          string(p.Role),
		Percentage:    p.Percentage,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func FromBalance(b usecase.ParticipantBalance) BalanceResponse {
	entries := make([]EarningEntryResponse, len(b.Entries))
	for i, e := range b.Entries {
		entries[i] = EarningEntryResponse{
			TaskID:        e.TaskID,
			ParticipantID: e.ParticipantID,
			Amount:        e.Amount,
			CreatedAt:     e.CreatedAt,
		}
	}
	return BalanceResponse{
		ParticipantResponse: FromParticipant(b.Participant),
		Balance:             b.Balance,
		Entries:             entries,
	}
}
