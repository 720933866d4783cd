package repository

import (
	"context"
	"errors"
	"time"

	"oficina_prime/internal/domain/entities"
	"oficina_prime/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEarningsTableName   = "earnings"
	earningsParticipantIDIndex = "participant_id-index"
)

type earningEntryItem struct {
	TaskID        string `dynamodbav:"task_id"`
	ParticipantID string `dynamodbav:"participant_id"`
	Amount        int64  `dynamodbav:"amount"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// EarningDynamoRepository is the append-only earnings ledger in DynamoDB.
//
// Table requirements:
//   - PK: task_id (string), SK: participant_id (string)
//   - GSI: participant_id-index (PK: participant_id)
//
// The composite key makes (task, participant) unique, so a conditional put
// is all it takes to guarantee at-most-once crediting.

type EarningDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEarningRepository = (*EarningDynamoRepository)(nil)

func NewEarningDynamoRepository(ddb *dynamodb.Client) *EarningDynamoRepository {
	return &EarningDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EARNINGS_TABLE", defaultEarningsTableName),
	}
}

func (r *EarningDynamoRepository) Credit(ctx context.Context, e entities.EarningEntry) (bool, error) {
	it := earningEntryItem{
		TaskID:        e.TaskID,
		ParticipantID: e.ParticipantID,
		Amount:        e.Amount,
		CreatedAt:     e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#task_id)"),
		ExpressionAttributeNames: map[string]string{
			"#task_id": "task_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *EarningDynamoRepository) ListByParticipantID(ctx context.Context, participantID string) ([]entities.EarningEntry, error) {
	var (
		entries  []entities.EarningEntry
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(earningsParticipantIDIndex),
			KeyConditionExpression: aws.String("participant_id = :pid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pid": &types.AttributeValueMemberS{Value: participantID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it earningEntryItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
			entries = append(entries, entities.EarningEntry{
				TaskID:        it.TaskID,
				ParticipantID: it.ParticipantID,
				Amount:        it.Amount,
				CreatedAt:     createdAt,
			})
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return entries, nil
}
