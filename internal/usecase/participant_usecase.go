package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"oficina_prime/internal/domain/entities"
	"oficina_prime/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrParticipantNotFound  = errors.New("participant not found")
	ErrInvalidParticipant   = errors.New("invalid participant payload")
	ErrInvalidParticipantID = errors.New("invalid participant id")
)

// ParticipantBalance is a participant plus their ledger-derived balance.
type ParticipantBalance struct {
	Participant entities.Participant
	Balance     int64
	Entries     []entities.EarningEntry
}

// IParticipantUseCase manages the worker registry and exposes earnings
// balances. A balance is never stored: it is the sum of the append-only
// earning entries credited on task approvals.

type IParticipantUseCase interface {
	CreateParticipant(ctx context.Context, name string, role entities.ParticipantRole, percentage int64) (entities.Participant, error)
	GetParticipant(ctx context.Context, id string) (entities.Participant, error)
	GetBalance(ctx context.Context, id string) (ParticipantBalance, error)
}

type ParticipantUseCase struct {
	participants interfaces.IParticipantRepository
	earnings     interfaces.IEarningRepository
}

var _ IParticipantUseCase = (*ParticipantUseCase)(nil)

func NewParticipantUseCase(participants interfaces.IParticipantRepository, earnings interfaces.IEarningRepository) *ParticipantUseCase {
	return &ParticipantUseCase{participants: participants, earnings: earnings}
}

func (u *ParticipantUseCase) CreateParticipant(ctx context.Context, name string, role entities.ParticipantRole, percentage int64) (entities.Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Participant{}, ErrInvalidParticipant
	}
	if role != entities.RoleMaster && role != entities.RoleApprentice {
		return entities.Participant{}, ErrInvalidParticipant
	}
	if percentage < 0 || percentage > 100 {
		return entities.Participant{}, ErrInvalidParticipant
	}

	now := time.Now().UTC()
	p := entities.Participant{
		ID:         uuid.NewString(),
		Name:       name,
		Role:       role,
		Percentage: percentage,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	created, err := u.participants.Create(ctx, p)
	if err != nil {
		return entities.Participant{}, err
	}
	log.Printf("[participant][usecase] created participant_id=%s role=%s percentage=%d", created.ID, created.Role, created.Percentage)
	return created, nil
}

func (u *ParticipantUseCase) GetParticipant(ctx context.Context, id string) (entities.Participant, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Participant{}, ErrInvalidParticipantID
	}

	p, err := u.participants.GetByID(ctx, id)
	if err != nil {
		return entities.Participant{}, err
	}
	if p.ID == "" {
		return entities.Participant{}, ErrParticipantNotFound
	}
	return p, nil
}

func (u *ParticipantUseCase) GetBalance(ctx context.Context, id string) (ParticipantBalance, error) {
	p, err := u.GetParticipant(ctx, id)
	if err != nil {
		return ParticipantBalance{}, err
	}

	entries, err := u.earnings.ListByParticipantID(ctx, p.ID)
	if err != nil {
		return ParticipantBalance{}, err
	}
	var balance int64
	for _, e := range entries {
		balance += e.Amount
	}
	return ParticipantBalance{Participant: p, Balance: balance, Entries: entries}, nil
}
