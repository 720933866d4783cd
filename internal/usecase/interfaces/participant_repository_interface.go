package interfaces

import (
	"context"

	"oficina_prime/internal/domain/entities"
)

//go:generate mockgen -source=participant_repository_interface.go -destination=mocks/participant_repository_interface.go -package=mock_interfaces

// IParticipantRepository abstracts DynamoDB persistence for Participant.

type IParticipantRepository interface {
	Create(ctx context.Context, p entities.Participant) (entities.Participant, error)
	GetByID(ctx context.Context, id string) (entities.Participant, error)
}
