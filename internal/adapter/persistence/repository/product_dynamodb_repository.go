package repository

import (
	"context"
	"time"

	"coldchain_pricing/internal/domain/entities"
	"coldchain_pricing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProductsTableName = "products"
	batchGetMaxKeys          = 100
)

type productItem struct {
	ID             string  `dynamodbav:"id"`
	Name           string  `dynamodbav:"name"`
	CostPerLb      float64 `dynamodbav:"cost_per_lb"`
	CaseWeightLbs  float64 `dynamodbav:"case_weight_lbs"`
	CasesAvailable int     `dynamodbav:"cases_available"`
	WarehouseID    string  `dynamodbav:"warehouse_id"`
	OrganizationID string  `dynamodbav:"organization_id"`
	SourceDealID   string  `dynamodbav:"source_deal_id,omitempty"`
	CreatedAt      string  `dynamodbav:"created_at"`
}

// ProductDynamoRepository persists Product entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// GetByIDs tolerates missing ids: BatchGetItem simply returns fewer rows, and
// the caller decides what absence means. Delete exists only as the
// compensating action for a lost deal-acceptance race.

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) GetByIDs(ctx context.Context, ids []string) ([]entities.Product, error) {
	products := make([]entities.Product, 0, len(ids))

	for start := 0; start < len(ids); start += batchGetMaxKeys {
		end := min(start+batchGetMaxKeys, len(ids))

		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range ids[start:end] {
			keys = append(keys, map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			})
		}

		// Loop until DynamoDB stops returning unprocessed keys.
		pending := map[string]types.KeysAndAttributes{
			r.tableName: {Keys: keys},
		}
		for len(pending) > 0 {
			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
				RequestItems: pending,
			})
			if err != nil {
				return nil, err
			}
			for _, raw := range out.Responses[r.tableName] {
				var it productItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return nil, err
				}
				products = append(products, fromProductItem(it))
			}
			pending = out.UnprocessedKeys
		}
	}
	return products, nil
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
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
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		ID:             p.ID,
		Name:           p.Name,
		CostPerLb:      p.CostPerLb,
		CaseWeightLbs:  p.CaseWeightLbs,
		CasesAvailable: p.CasesAvailable,
		WarehouseID:    p.WarehouseID,
		OrganizationID: p.OrganizationID,
		SourceDealID:   p.SourceDealID,
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProductItem(it productItem) entities.Product {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Product{
		ID:             it.ID,
		Name:           it.Name,
		CostPerLb:      it.CostPerLb,
		CaseWeightLbs:  it.CaseWeightLbs,
		CasesAvailable: it.CasesAvailable,
		WarehouseID:    it.WarehouseID,
		OrganizationID: it.OrganizationID,
		SourceDealID:   it.SourceDealID,
		CreatedAt:      createdAt,
	}
}
