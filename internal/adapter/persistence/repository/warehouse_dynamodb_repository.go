package repository

import (
	"context"

	"coldchain_pricing/internal/domain/entities"
	"coldchain_pricing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultWarehousesTableName = "warehouses"

type warehouseItem struct {
	ID             string   `dynamodbav:"id"`
	Name           string   `dynamodbav:"name"`
	City           string   `dynamodbav:"city"`
	State          string   `dynamodbav:"state"`
	Zip            string   `dynamodbav:"zip"`
	Lat            float64  `dynamodbav:"lat"`
	Lng            float64  `dynamodbav:"lng"`
	Active         bool     `dynamodbav:"active"`
	ServedZoneIDs  []string `dynamodbav:"served_zone_ids"`
	OrganizationID string   `dynamodbav:"organization_id"`
}

// WarehouseDynamoRepository reads Warehouse reference data from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The table holds tens of rows (admin-imported origins), so a filtered Scan
// for the active set is fine.

type WarehouseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWarehouseRepository = (*WarehouseDynamoRepository)(nil)

func NewWarehouseDynamoRepository(ddb *dynamodb.Client) *WarehouseDynamoRepository {
	return &WarehouseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WAREHOUSES_TABLE", defaultWarehousesTableName),
	}
}

func (r *WarehouseDynamoRepository) ListActive(ctx context.Context) ([]entities.Warehouse, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("active = :true"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, err
	}

	warehouses := make([]entities.Warehouse, 0, len(out.Items))
	for _, raw := range out.Items {
		var it warehouseItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		warehouses = append(warehouses, fromWarehouseItem(it))
	}
	return warehouses, nil
}

func (r *WarehouseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Warehouse, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Warehouse{}, err
	}
	if len(out.Item) == 0 {
		return entities.Warehouse{}, nil
	}

	var it warehouseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Warehouse{}, err
	}
	return fromWarehouseItem(it), nil
}

func fromWarehouseItem(it warehouseItem) entities.Warehouse {
	return entities.Warehouse{
		ID:             it.ID,
		Name:           it.Name,
		City:           it.City,
		State:          it.State,
		Zip:            it.Zip,
		Lat:            it.Lat,
		Lng:            it.Lng,
		Active:         it.Active,
		ServedZoneIDs:  it.ServedZoneIDs,
		OrganizationID: it.OrganizationID,
	}
}
