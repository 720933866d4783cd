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

const (
	defaultReceivablesTableName = "receivables"
	receivablesVehicleIDIndex   = "vehicle_id-index"
)

type paymentRecordItem struct {
	Amount int64  `dynamodbav:"amount"`
	Date   string `dynamodbav:"date"`
	Method string `dynamodbav:"method"`
}

type receivableItem struct {
	ID             string              `dynamodbav:"id"`
	VehicleID      string              `dynamodbav:"vehicle_id"`
	Amount         int64               `dynamodbav:"amount"`
	PaidAmount     int64               `dynamodbav:"paid_amount"`
	Status         string              `dynamodbav:"status"`
	PaymentHistory []paymentRecordItem `dynamodbav:"payment_history"`
	CreatedAt      string              `dynamodbav:"created_at"`
	UpdatedAt      string              `dynamodbav:"updated_at"`
}

// ReceivableDynamoRepository persists Receivable entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: vehicle_id-index (PK: vehicle_id)

type ReceivableDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReceivableRepository = (*ReceivableDynamoRepository)(nil)

func NewReceivableDynamoRepository(ddb *dynamodb.Client) *ReceivableDynamoRepository {
	return &ReceivableDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RECEIVABLES_TABLE", defaultReceivablesTableName),
	}
}

func (r *ReceivableDynamoRepository) Create(ctx context.Context, rec entities.Receivable) (entities.Receivable, error) {
	it := toReceivableItem(rec)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Receivable{}, err
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
		return entities.Receivable{}, err
	}
	return rec, nil
}

// GetOpenByVehicleID queries the vehicle index and filters on open statuses.
// The debt usecase guarantees at most one open record per vehicle, so the
// first match is the match.
func (r *ReceivableDynamoRepository) GetOpenByVehicleID(ctx context.Context, vehicleID string) (entities.Receivable, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(receivablesVehicleIDIndex),
		KeyConditionExpression: aws.String("vehicle_id = :vid"),
		FilterExpression:       aws.String("#status = :pending OR #status = :partial"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":vid":     &types.AttributeValueMemberS{Value: vehicleID},
			":pending": &types.AttributeValueMemberS{Value: string(entities.ReceivableStatusPending)},
			":partial": &types.AttributeValueMemberS{Value: string(entities.ReceivableStatusPartial)},
		},
	})
	if err != nil {
		return entities.Receivable{}, err
	}
	if len(out.Items) == 0 {
		return entities.Receivable{}, nil
	}

	var it receivableItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Receivable{}, err
	}
	return fromReceivableItem(it), nil
}

func (r *ReceivableDynamoRepository) Update(ctx context.Context, rec entities.Receivable) (entities.Receivable, error) {
	it := toReceivableItem(rec)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Receivable{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Receivable{}, err
	}
	return rec, nil
}

func toReceivableItem(rec entities.Receivable) receivableItem {
	history := make([]paymentRecordItem, len(rec.PaymentHistory))
	for i, p := range rec.PaymentHistory {
		history[i] = paymentRecordItem{
			Amount: p.Amount,
			Date:   p.Date.UTC().Format(time.RFC3339Nano),
			Method: p.Method,
		}
	}
	return receivableItem{
		ID:             rec.ID,
		VehicleID:      rec.VehicleID,
		Amount:         rec.Amount,
		PaidAmount:     rec.PaidAmount,
		Status:         string(rec.Status),
		PaymentHistory: history,
		CreatedAt:      rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      rec.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromReceivableItem(it receivableItem) entities.Receivable {
	history := make([]entities.PaymentRecord, len(it.PaymentHistory))
	for i, p := range it.PaymentHistory {
		date, _ := time.Parse(time.RFC3339Nano, p.Date)
		history[i] = entities.PaymentRecord{Amount: p.Amount, Date: date, Method: p.Method}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Receivable{
		ID:             it.ID,
		VehicleID:      it.VehicleID,
		Amount:         it.Amount,
		PaidAmount:     it.PaidAmount,
		Status:         entities.ReceivableStatus(it.Status),
		PaymentHistory: history,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
