package repository

import (
	"context"
	"errors"
	"time"

	"coldchain_pricing/internal/domain/entities"
	"coldchain_pricing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDealsTableName  = "deals"
	dealsManufacturerIndex = "manufacturer-index"
)

type dealItem struct {
	ID           string  `dynamodbav:"id"`
	Manufacturer string  `dynamodbav:"manufacturer"`
	Description  string  `dynamodbav:"description"`
	PricePerLb   float64 `dynamodbav:"price_per_lb"`
	QuantityLbs  float64 `dynamodbav:"quantity_lbs"`
	PackSize     string  `dynamodbav:"pack_size"`
	WarehouseID  string  `dynamodbav:"warehouse_id"`
	Status       string  `dynamodbav:"status"`
	OwnerID      string  `dynamodbav:"owner_id"`
	ProductID    string  `dynamodbav:"product_id,omitempty"`
	CreatedAt    string  `dynamodbav:"created_at"`
	ResolvedAt   string  `dynamodbav:"resolved_at,omitempty"`
}

// DealDynamoRepository persists Deal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: manufacturer-index (PK: manufacturer)
//
// ResolvePending is the concurrency-critical write: one conditional update
// whose predicate is (id exists, owner matches, status still pending). Under
// a race only one caller's predicate matches; the rest get
// ConditionalCheckFailedException, surfaced as a zero-value deal.

type DealDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDealRepository = (*DealDynamoRepository)(nil)

func NewDealDynamoRepository(ddb *dynamodb.Client) *DealDynamoRepository {
	return &DealDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEALS_TABLE", defaultDealsTableName),
	}
}

func (r *DealDynamoRepository) GetByID(ctx context.Context, id string) (entities.Deal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Deal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Deal{}, nil
	}

	var it dealItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Deal{}, err
	}
	return fromDealItem(it), nil
}

func (r *DealDynamoRepository) ResolvePending(ctx context.Context, id, ownerID string, to entities.DealStatus, productID string, resolvedAt time.Time) (entities.Deal, error) {
	expr := "SET #status = :to, #resolved_at = :resolved_at"
	values := map[string]types.AttributeValue{
		":to":          &types.AttributeValueMemberS{Value: string(to)},
		":resolved_at": &types.AttributeValueMemberS{Value: resolvedAt.UTC().Format(time.RFC3339Nano)},
		":owner":       &types.AttributeValueMemberS{Value: ownerID},
		":pending":     &types.AttributeValueMemberS{Value: string(entities.DealStatusPending)},
	}
	names := map[string]string{
		"#id":          "id",
		"#status":      "status",
		"#owner_id":    "owner_id",
		"#resolved_at": "resolved_at",
	}
	if productID != "" {
		expr += ", #product_id = :product_id"
		values[":product_id"] = &types.AttributeValueMemberS{Value: productID}
		names["#product_id"] = "product_id"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #owner_id = :owner AND #status = :pending"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Deal{}, nil
		}
		return entities.Deal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Deal{}, nil
	}

	var it dealItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Deal{}, err
	}
	return fromDealItem(it), nil
}

func (r *DealDynamoRepository) FindAcceptedDuplicate(ctx context.Context, manufacturer, description string, since time.Time) (entities.Deal, error) {
	// created_at is RFC3339 UTC, so lexical >= matches chronological >=.
	// The filter runs after each page is read, so pages can come back empty
	// while a qualifying deal still sits behind LastEvaluatedKey. Walk every
	// page until a match shows up or the index is exhausted.
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(dealsManufacturerIndex),
		KeyConditionExpression: aws.String("manufacturer = :m"),
		FilterExpression:       aws.String("#status = :accepted AND #description = :d AND #created_at >= :since"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":m":        &types.AttributeValueMemberS{Value: manufacturer},
			":accepted": &types.AttributeValueMemberS{Value: string(entities.DealStatusAccepted)},
			":d":        &types.AttributeValueMemberS{Value: description},
			":since":    &types.AttributeValueMemberS{Value: since.UTC().Format(time.RFC3339Nano)},
		},
		ExpressionAttributeNames: map[string]string{
			"#status":      "status",
			"#description": "description",
			"#created_at":  "created_at",
		},
	}

	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return entities.Deal{}, err
		}
		if len(out.Items) > 0 {
			var it dealItem
			if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
				return entities.Deal{}, err
			}
			return fromDealItem(it), nil
		}
		if len(out.LastEvaluatedKey) == 0 {
			return entities.Deal{}, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func fromDealItem(it dealItem) entities.Deal {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	resolvedAt, _ := time.Parse(time.RFC3339Nano, it.ResolvedAt)
	return entities.Deal{
		ID:           it.ID,
		Manufacturer: it.Manufacturer,
		Description:  it.Description,
		PricePerLb:   it.PricePerLb,
		QuantityLbs:  it.QuantityLbs,
		PackSize:     it.PackSize,
		WarehouseID:  it.WarehouseID,
		Status:       entities.DealStatus(it.Status),
		OwnerID:      it.OwnerID,
		ProductID:    it.ProductID,
		CreatedAt:    createdAt,
		ResolvedAt:   resolvedAt,
	}
}
