package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"oficina_prime/internal/domain/entities"
	"oficina_prime/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTasksTableName = "tasks"
	tasksVehicleIDIndex   = "vehicle_id-index"
)

type taskAssignmentItem struct {
	ParticipantID string `dynamodbav:"participant_id"`
	Percentage    int64  `dynamodbav:"percentage"`
}

type earningSnapshotItem struct {
	ParticipantID string `dynamodbav:"participant_id"`
	Earning       int64  `dynamodbav:"earning"`
}

type taskItem struct {
	ID              string                `dynamodbav:"id"`
	VehicleID       string                `dynamodbav:"vehicle_id"`
	Title           string                `dynamodbav:"title"`
	Payment         int64                 `dynamodbav:"payment"`
	Assignments     []taskAssignmentItem  `dynamodbav:"assignments"`
	Status          string                `dynamodbav:"status"`
	Earnings        []earningSnapshotItem `dynamodbav:"earnings,omitempty"`
	MasterRemainder int64                 `dynamodbav:"master_remainder"`
	RejectionReason string                `dynamodbav:"rejection_reason,omitempty"`
	CompletedAt     string                `dynamodbav:"completed_at,omitempty"`
	CreatedAt       string                `dynamodbav:"created_at"`
	UpdatedAt       string                `dynamodbav:"updated_at"`
}

// TaskDynamoRepository persists Task entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: vehicle_id-index (PK: vehicle_id)
//
// Every status transition is a conditional update on the current status, so
// the table enforces the task state machine even under concurrent writers.

type TaskDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITaskRepository = (*TaskDynamoRepository)(nil)

func NewTaskDynamoRepository(ddb *dynamodb.Client) *TaskDynamoRepository {
	return &TaskDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TASKS_TABLE", defaultTasksTableName),
	}
}

func (r *TaskDynamoRepository) Create(ctx context.Context, t entities.Task) (entities.Task, error) {
	it := toTaskItem(t)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Task{}, err
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
		return entities.Task{}, err
	}
	return t, nil
}

func (r *TaskDynamoRepository) GetByID(ctx context.Context, id string) (entities.Task, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Task{}, err
	}
	if len(out.Item) == 0 {
		return entities.Task{}, nil
	}

	var it taskItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Task{}, err
	}
	return fromTaskItem(it), nil
}

func (r *TaskDynamoRepository) ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.Task, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(tasksVehicleIDIndex),
		KeyConditionExpression: aws.String("vehicle_id = :vid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":vid": &types.AttributeValueMemberS{Value: vehicleID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Task, 0, len(out.Items))
	for _, raw := range out.Items {
		var it taskItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTaskItem(it))
	}
	return items, nil
}

func (r *TaskDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *TaskDynamoRepository) TransitionStatus(ctx context.Context, id string, from, to entities.TaskStatus) (entities.Task, error) {
	return r.update(ctx, id, string(from), func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :to, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *TaskDynamoRepository) MarkCompleted(ctx context.Context, id string, at time.Time) (entities.Task, error) {
	return r.update(ctx, id, string(entities.TaskStatusInProgress), func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :to, #completed_at = :completed_at, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":to":           &types.AttributeValueMemberS{Value: string(entities.TaskStatusCompleted)},
			":completed_at": &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
			":updated_at":   &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#completed_at": "completed_at",
			"#updated_at":   "updated_at",
		}
		return expr, vals, names
	})
}

func (r *TaskDynamoRepository) MarkApproved(ctx context.Context, id string, earnings []entities.EarningSnapshot, masterRemainder int64) (entities.Task, error) {
	items := make([]earningSnapshotItem, len(earnings))
	for i, e := range earnings {
		items[i] = earningSnapshotItem{ParticipantID: e.ParticipantID, Earning: e.Earning}
	}
	earningsAV, err := attributevalue.MarshalList(items)
	if err != nil {
		return entities.Task{}, err
	}

	return r.update(ctx, id, string(entities.TaskStatusCompleted), func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :to, #earnings = :earnings, #master_remainder = :master_remainder, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":to":               &types.AttributeValueMemberS{Value: string(entities.TaskStatusApproved)},
			":earnings":         &types.AttributeValueMemberL{Value: earningsAV},
			":master_remainder": &types.AttributeValueMemberN{Value: strconv.FormatInt(masterRemainder, 10)},
			":updated_at":       &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#earnings":         "earnings",
			"#master_remainder": "master_remainder",
			"#updated_at":       "updated_at",
		}
		return expr, vals, names
	})
}

func (r *TaskDynamoRepository) MarkRejected(ctx context.Context, id string, reason string) (entities.Task, error) {
	return r.update(ctx, id, string(entities.TaskStatusCompleted), func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :to, #rejection_reason = :reason, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":to":         &types.AttributeValueMemberS{Value: string(entities.TaskStatusRejected)},
			":reason":     &types.AttributeValueMemberS{Value: reason},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#rejection_reason": "rejection_reason",
			"#updated_at":       "updated_at",
		}
		return expr, vals, names
	})
}

func (r *TaskDynamoRepository) MarkResubmitted(ctx context.Context, id string) (entities.Task, error) {
	return r.update(ctx, id, string(entities.TaskStatusRejected), func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :to, #updated_at = :updated_at REMOVE #rejection_reason"
		vals := map[string]types.AttributeValue{
			":to":         &types.AttributeValueMemberS{Value: string(entities.TaskStatusInProgress)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#rejection_reason": "rejection_reason",
			"#updated_at":       "updated_at",
		}
		return expr, vals, names
	})
}

// update runs a conditional UpdateItem guarded on the current status. A
// failed condition comes back as a zero-value Task with a nil error.
func (r *TaskDynamoRepository) update(
	ctx context.Context,
	id string,
	fromStatus string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Task, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)
	values[":from"] = &types.AttributeValueMemberS{Value: fromStatus}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#status": "status"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Task{}, nil
		}
		return entities.Task{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Task{}, nil
	}
	var it taskItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Task{}, err
	}
	return fromTaskItem(it), nil
}

func toTaskItem(t entities.Task) taskItem {
	assignments := make([]taskAssignmentItem, len(t.Assignments))
	for i, a := range t.Assignments {
		assignments[i] = taskAssignmentItem{ParticipantID: a.ParticipantID, Percentage: a.Percentage}
	}
	earnings := make([]earningSnapshotItem, len(t.Earnings))
	for i, e := range t.Earnings {
		earnings[i] = earningSnapshotItem{ParticipantID: e.ParticipantID, Earning: e.Earning}
	}
	it := taskItem{
		ID:              t.ID,
		VehicleID:       t.VehicleID,
		Title:           t.Title,
		Payment:         t.Payment,
		Assignments:     assignments,
		Status:          string(t.Status),
		Earnings:        earnings,
		MasterRemainder: t.MasterRemainder,
		RejectionReason: t.RejectionReason,
		CreatedAt:       t.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if t.CompletedAt != nil {
		it.CompletedAt = t.CompletedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromTaskItem(it taskItem) entities.Task {
	assignments := make([]entities.Assignment, len(it.Assignments))
	for i, a := range it.Assignments {
		assignments[i] = entities.Assignment{ParticipantID: a.ParticipantID, Percentage: a.Percentage}
	}
	earnings := make([]entities.EarningSnapshot, len(it.Earnings))
	for i, e := range it.Earnings {
		earnings[i] = entities.EarningSnapshot{ParticipantID: e.ParticipantID, Earning: e.Earning}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	t := entities.Task{
		ID:              it.ID,
		VehicleID:       it.VehicleID,
		Title:           it.Title,
		Payment:         it.Payment,
		Assignments:     assignments,
		Status:          entities.TaskStatus(it.Status),
		Earnings:        earnings,
		MasterRemainder: it.MasterRemainder,
		RejectionReason: it.RejectionReason,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
	if it.CompletedAt != "" {
		if completedAt, err := time.Parse(time.RFC3339Nano, it.CompletedAt); err == nil {
			t.CompletedAt = &completedAt
		}
	}
	return t
}
