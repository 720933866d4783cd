package repository

import (
	"context"
	"time"

	"oficina_prime/internal/domain/entities"
	"oficina_prime/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultParticipantsTableName = "participants"

type participantItem struct {
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
	Role       string `dynamodbav:"role"`
	Percentage int64  `dynamodbav:"percentage"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// ParticipantDynamoRepository persists Participant entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ParticipantDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IParticipantRepository = (*ParticipantDynamoRepository)(nil)

func NewParticipantDynamoRepository(ddb *dynamodb.Client) *ParticipantDynamoRepository {
	return &ParticipantDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PARTICIPANTS_TABLE", defaultParticipantsTableName),
	}
}

func (r *ParticipantDynamoRepository) Create(ctx context.Context, p entities.Participant) (entities.Participant, error) {
	it := participantItem{
		ID:         p.ID,
		Name:       p.Name,
		Role:       string(p.Role),
		Percentage: p.Percentage,
		CreatedAt:  p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Participant{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Participant{}, err
	}
	return p, nil
}

func (r *ParticipantDynamoRepository) GetByID(ctx context.Context, id string) (entities.Participant, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Participant{}, err
	}
	if len(out.Item) == 0 {
		return entities.Participant{}, nil
	}

	var it participantItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Participant{}, err
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Participant{
		ID:         it.ID,
		Name:       it.Name,
		Role:       entities.ParticipantRole(it.Role),
		Percentage: it.Percentage,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}, nil
}
