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

const defaultVehiclesTableName = "vehicles"

type vehicleItem struct {
	ID               string `dynamodbav:"id"`
	Plate            string `dynamodbav:"plate"`
	CustomerName     string `dynamodbav:"customer_name"`
	Status           string `dynamodbav:"status"`
	TotalEstimate    int64  `dynamodbav:"total_estimate"`
	PaidAmount       int64  `dynamodbav:"paid_amount"`
	ReadyForDelivery bool   `dynamodbav:"ready_for_delivery"`
	Version          int64  `dynamodbav:"version"`
	CompletedAt      string `dynamodbav:"completed_at,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// VehicleDynamoRepository persists Vehicle service records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Every write bumps the version attribute. CompleteIfVersion additionally
// conditions on the version the caller read, which makes the completion flip
// a one-shot operation per observed state.

type VehicleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb *dynamodb.Client) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
	}
}

func (r *VehicleDynamoRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	it := toVehicleItem(v)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Vehicle{}, err
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
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(out.Item) == 0 {
		return entities.Vehicle{}, nil
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

// ListUnfinished scans for records the completion sweep still has work on:
// anything not yet completed, plus completed vehicles whose ledger shows an
// outstanding balance (their receivable still needs reconciling). The scan
// feeds the periodic sweep only, so table size here is the shop's open work,
// not its history.
func (r *VehicleDynamoRepository) ListUnfinished(ctx context.Context) ([]entities.Vehicle, error) {
	var (
		vehicles []entities.Vehicle
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#status = :pending OR #status = :in_progress OR (#status = :completed AND #total_estimate > #paid_amount)"),
			ExpressionAttributeNames: map[string]string{
				"#status":         "status",
				"#total_estimate": "total_estimate",
				"#paid_amount":    "paid_amount",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pending":     &types.AttributeValueMemberS{Value: string(entities.VehicleStatusPending)},
				":in_progress": &types.AttributeValueMemberS{Value: string(entities.VehicleStatusInProgress)},
				":completed":   &types.AttributeValueMemberS{Value: string(entities.VehicleStatusCompleted)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it vehicleItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			vehicles = append(vehicles, fromVehicleItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return vehicles, nil
}

func (r *VehicleDynamoRepository) UpdateTotals(ctx context.Context, id string, totalEstimate, paidAmount int64) (entities.Vehicle, error) {
	return r.update(ctx, id, "attribute_exists(#id)", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #total_estimate = :total, #paid_amount = :paid, #updated_at = :updated_at ADD #version :one"
		vals := map[string]types.AttributeValue{
			":total":      &types.AttributeValueMemberN{Value: strconv.FormatInt(totalEstimate, 10)},
			":paid":       &types.AttributeValueMemberN{Value: strconv.FormatInt(paidAmount, 10)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
			":one":        &types.AttributeValueMemberN{Value: "1"},
		}
		names := map[string]string{
			"#total_estimate": "total_estimate",
			"#paid_amount":    "paid_amount",
			"#updated_at":     "updated_at",
			"#version":        "version",
		}
		return expr, vals, names
	})
}

func (r *VehicleDynamoRepository) MarkInProgress(ctx context.Context, id string) (entities.Vehicle, error) {
	return r.update(ctx, id, "attribute_exists(#id) AND #status = :pending", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :in_progress, #updated_at = :updated_at ADD #version :one"
		vals := map[string]types.AttributeValue{
			":pending":     &types.AttributeValueMemberS{Value: string(entities.VehicleStatusPending)},
			":in_progress": &types.AttributeValueMemberS{Value: string(entities.VehicleStatusInProgress)},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
			":one":         &types.AttributeValueMemberN{Value: "1"},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
			"#version":    "version",
		}
		return expr, vals, names
	})
}

func (r *VehicleDynamoRepository) SetReadyForDelivery(ctx context.Context, id string, ready bool) (entities.Vehicle, error) {
	return r.update(ctx, id, "attribute_exists(#id)", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #ready_for_delivery = :ready, #updated_at = :updated_at ADD #version :one"
		vals := map[string]types.AttributeValue{
			":ready":      &types.AttributeValueMemberBOOL{Value: ready},
			":updated_at": &types.AttributeValueMemberS{Value: now},
			":one":        &types.AttributeValueMemberN{Value: "1"},
		}
		names := map[string]string{
			"#ready_for_delivery": "ready_for_delivery",
			"#updated_at":         "updated_at",
			"#version":            "version",
		}
		return expr, vals, names
	})
}

func (r *VehicleDynamoRepository) CompleteIfVersion(ctx context.Context, id string, version int64, at time.Time) (entities.Vehicle, error) {
	cond := "attribute_exists(#id) AND #version = :expected AND #status <> :completed AND #status <> :delivered"
	return r.update(ctx, id, cond, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :completed, #completed_at = :completed_at, #updated_at = :updated_at ADD #version :one"
		vals := map[string]types.AttributeValue{
			":expected":     &types.AttributeValueMemberN{Value: strconv.FormatInt(version, 10)},
			":completed":    &types.AttributeValueMemberS{Value: string(entities.VehicleStatusCompleted)},
			":delivered":    &types.AttributeValueMemberS{Value: string(entities.VehicleStatusDelivered)},
			":completed_at": &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
			":updated_at":   &types.AttributeValueMemberS{Value: now},
			":one":          &types.AttributeValueMemberN{Value: "1"},
		}
		names := map[string]string{
			"#status":       "status",
			"#completed_at": "completed_at",
			"#updated_at":   "updated_at",
			"#version":      "version",
		}
		return expr, vals, names
	})
}

func (r *VehicleDynamoRepository) MarkDelivered(ctx context.Context, id string) (entities.Vehicle, error) {
	return r.update(ctx, id, "attribute_exists(#id) AND #status = :completed", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :delivered, #updated_at = :updated_at ADD #version :one"
		vals := map[string]types.AttributeValue{
			":completed":  &types.AttributeValueMemberS{Value: string(entities.VehicleStatusCompleted)},
			":delivered":  &types.AttributeValueMemberS{Value: string(entities.VehicleStatusDelivered)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
			":one":        &types.AttributeValueMemberN{Value: "1"},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
			"#version":    "version",
		}
		return expr, vals, names
	})
}

func (r *VehicleDynamoRepository) update(
	ctx context.Context,
	id string,
	condExpr string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Vehicle, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condExpr),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Vehicle{}, nil
		}
		return entities.Vehicle{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Vehicle{}, nil
	}
	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func toVehicleItem(v entities.Vehicle) vehicleItem {
	it := vehicleItem{
		ID:               v.ID,
		Plate:            v.Plate,
		CustomerName:     v.CustomerName,
		Status:           string(v.Status),
		TotalEstimate:    v.TotalEstimate,
		PaidAmount:       v.PaidAmount,
		ReadyForDelivery: v.ReadyForDelivery,
		Version:          v.Version,
		CreatedAt:        v.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        v.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if v.CompletedAt != nil {
		it.CompletedAt = v.CompletedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromVehicleItem(it vehicleItem) entities.Vehicle {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	v := entities.Vehicle{
		ID:               it.ID,
		Plate:            it.Plate,
		CustomerName:     it.CustomerName,
		Status:           entities.VehicleStatus(it.Status),
		TotalEstimate:    it.TotalEstimate,
		PaidAmount:       it.PaidAmount,
		ReadyForDelivery: it.ReadyForDelivery,
		Version:          it.Version,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
	if it.CompletedAt != "" {
		if completedAt, err := time.Parse(time.RFC3339Nano, it.CompletedAt); err == nil {
			v.CompletedAt = &completedAt
		}
	}
	return v
}
