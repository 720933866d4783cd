package interfaces

import (
	"context"

	"oficina_prime/internal/domain/entities"
)

//go:generate mockgen -source=earning_repository_interface.go -destination=mocks/earning_repository_interface.go -package=mock_interfaces

// IEarningRepository is the append-only earnings credit ledger.
//
// Credit writes one entry keyed by (task_id, participant_id) and reports
// whether the entry was actually created. A false return with a nil error
// means the pair was already credited, which is the at-most-once guard for
// retried approvals. Entries are never updated or deleted; a participant's
// balance is the sum of their entries.

type IEarningRepository interface {
	Credit(ctx context.Context, e entities.EarningEntry) (created bool, err error)
	ListByParticipantID(ctx context.Context, participantID string) ([]entities.EarningEntry, error)
}
