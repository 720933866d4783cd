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
	defaultServiceLinesTableName = "service_lines"
	serviceLinesVehicleIDIndex   = "vehicle_id-index"
)

type serviceLineItem struct {
	ID          string `dynamodbav:"id"`
	VehicleID   string `dynamodbav:"vehicle_id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	Price       int64  `dynamodbav:"price"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// ServiceLineDynamoRepository persists ServiceLine entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: vehicle_id-index (PK: vehicle_id)

type ServiceLineDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceLineRepository = (*ServiceLineDynamoRepository)(nil)

func NewServiceLineDynamoRepository(ddb *dynamodb.Client) *ServiceLineDynamoRepository {
	return &ServiceLineDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_LINES_TABLE", defaultServiceLinesTableName),
	}
}

func (r *ServiceLineDynamoRepository) Create(ctx context.Context, l entities.ServiceLine) (entities.ServiceLine, error) {
	it := toServiceLineItem(l)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ServiceLine{}, err
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
		return entities.ServiceLine{}, err
	}
	return l, nil
}

func (r *ServiceLineDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceLine, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceLine{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceLine{}, nil
	}

	var it serviceLineItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceLine{}, err
	}
	return fromServiceLineItem(it), nil
}

func (r *ServiceLineDynamoRepository) ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.ServiceLine, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(serviceLinesVehicleIDIndex),
		KeyConditionExpression: aws.String("vehicle_id = :vid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":vid": &types.AttributeValueMemberS{Value: vehicleID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ServiceLine, 0, len(out.Items))
	for _, raw := range out.Items {
		var it serviceLineItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromServiceLineItem(it))
	}
	return items, nil
}

func (r *ServiceLineDynamoRepository) TransitionStatus(ctx context.Context, id string, from, to entities.ServiceLineStatus) (entities.ServiceLine, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceLine{}, nil
		}
		return entities.ServiceLine{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ServiceLine{}, nil
	}
	var it serviceLineItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceLine{}, err
	}
	return fromServiceLineItem(it), nil
}

func toServiceLineItem(l entities.ServiceLine) serviceLineItem {
	return serviceLineItem{
		ID:          l.ID,
		VehicleID:   l.VehicleID,
		Name:        l.Name,
		Description: l.Description,
		Price:       l.Price,
		Status:      string(l.Status),
		CreatedAt:   l.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   l.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromServiceLineItem(it serviceLineItem) entities.ServiceLine {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ServiceLine{
		ID:          it.ID,
		VehicleID:   it.VehicleID,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		Status:      entities.ServiceLineStatus(it.Status),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
