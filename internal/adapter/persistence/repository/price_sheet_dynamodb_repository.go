package repository

import (
	"context"
	"encoding/base64"
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
	defaultPriceSheetsTableName     = "price_sheets"
	defaultPriceSheetItemsTableName = "price_sheet_items"
	batchWriteMaxItems              = 25
)

type priceSheetItemHeader struct {
	ID        string `dynamodbav:"id"`
	ZoneID    string `dynamodbav:"zone_id"`
	WeekStart string `dynamodbav:"week_start"`
	WeekEnd   string `dynamodbav:"week_end"`
	Status    string `dynamodbav:"status"`
	OwnerID   string `dynamodbav:"owner_id"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type priceSheetItemRow struct {
	PriceSheetID     string  `dynamodbav:"price_sheet_id"`
	ProductID        string  `dynamodbav:"product_id"`
	WarehouseID      string  `dynamodbav:"warehouse_id"`
	CostPerLb        float64 `dynamodbav:"cost_per_lb"`
	MarginPercent    float64 `dynamodbav:"margin_percent"`
	MarginAmount     float64 `dynamodbav:"margin_amount"`
	FreightPerLb     float64 `dynamodbav:"freight_per_lb"`
	DeliveredPriceLb float64 `dynamodbav:"delivered_price_lb"`
}

// PriceSheetDynamoRepository persists price sheets across two DynamoDB tables.
//
// Table requirements:
//   - price_sheets:      PK id (string)
//   - price_sheet_items: PK price_sheet_id (string), SK product_id (string)
//
// There is no cross-table transaction; the usecase sequences CreateHeader,
// BulkInsertItems and (on failure) DeleteHeader as an explicit saga.

type PriceSheetDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	itemsTable string
}

var _ interfaces.IPriceSheetRepository = (*PriceSheetDynamoRepository)(nil)

func NewPriceSheetDynamoRepository(ddb *dynamodb.Client) *PriceSheetDynamoRepository {
	return &PriceSheetDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("PRICE_SHEETS_TABLE", defaultPriceSheetsTableName),
		itemsTable: getenvDefault("PRICE_SHEET_ITEMS_TABLE", defaultPriceSheetItemsTableName),
	}
}

func (r *PriceSheetDynamoRepository) CreateHeader(ctx context.Context, sheet entities.PriceSheet) (entities.PriceSheet, error) {
	av, err := attributevalue.MarshalMap(toPriceSheetHeader(sheet))
	if err != nil {
		return entities.PriceSheet{}, err
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
		return entities.PriceSheet{}, err
	}
	return sheet, nil
}

func (r *PriceSheetDynamoRepository) DeleteHeader(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *PriceSheetDynamoRepository) BulkInsertItems(ctx context.Context, items []entities.PriceSheetItem) error {
	for start := 0; start < len(items); start += batchWriteMaxItems {
		end := min(start+batchWriteMaxItems, len(items))

		writes := make([]types.WriteRequest, 0, end-start)
		for _, item := range items[start:end] {
			av, err := attributevalue.MarshalMap(toPriceSheetRow(item))
			if err != nil {
				return err
			}
			writes = append(writes, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: av},
			})
		}

		pending := map[string][]types.WriteRequest{r.itemsTable: writes}
		for len(pending) > 0 {
			out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: pending,
			})
			if err != nil {
				return err
			}
			pending = out.UnprocessedItems
		}
	}
	return nil
}

func (r *PriceSheetDynamoRepository) GetByID(ctx context.Context, id string) (entities.PriceSheet, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PriceSheet{}, err
	}
	if len(out.Item) == 0 {
		return entities.PriceSheet{}, nil
	}

	var it priceSheetItemHeader
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PriceSheet{}, err
	}
	return fromPriceSheetHeader(it), nil
}

func (r *PriceSheetDynamoRepository) ListItems(ctx context.Context, sheetID string) ([]entities.PriceSheetItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.itemsTable),
		KeyConditionExpression: aws.String("price_sheet_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: sheetID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PriceSheetItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it priceSheetItemRow
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPriceSheetRow(it))
	}
	return items, nil
}

func (r *PriceSheetDynamoRepository) List(ctx context.Context, limit int, cursor string) ([]entities.PriceSheet, string, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Limit:     aws.Int32(int32(limit)),
	}
	if cursor != "" {
		id, err := decodeListCursor(cursor)
		if err != nil {
			return nil, "", err
		}
		input.ExclusiveStartKey = map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		}
	}

	out, err := r.ddb.Scan(ctx, input)
	if err != nil {
		return nil, "", err
	}

	sheets := make([]entities.PriceSheet, 0, len(out.Items))
	for _, raw := range out.Items {
		var it priceSheetItemHeader
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, "", err
		}
		sheets = append(sheets, fromPriceSheetHeader(it))
	}

	next := ""
	if key, ok := out.LastEvaluatedKey["id"]; ok {
		if s, ok := key.(*types.AttributeValueMemberS); ok {
			next = encodeListCursor(s.Value)
		}
	}
	return sheets, next, nil
}

func (r *PriceSheetDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.PriceSheetStatus) (entities.PriceSheet, error) {
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
			return entities.PriceSheet{}, nil
		}
		return entities.PriceSheet{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PriceSheet{}, nil
	}

	var it priceSheetItemHeader
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PriceSheet{}, err
	}
	return fromPriceSheetHeader(it), nil
}

func encodeListCursor(id string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(id))
}

func decodeListCursor(cursor string) (string, error) {
	b, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return "", errors.New("invalid list cursor")
	}
	return string(b), nil
}

func toPriceSheetHeader(s entities.PriceSheet) priceSheetItemHeader {
	return priceSheetItemHeader{
		ID:        s.ID,
		ZoneID:    s.ZoneID,
		WeekStart: s.WeekStart.UTC().Format(time.RFC3339Nano),
		WeekEnd:   s.WeekEnd.UTC().Format(time.RFC3339Nano),
		Status:    string(s.Status),
		OwnerID:   s.OwnerID,
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPriceSheetHeader(it priceSheetItemHeader) entities.PriceSheet {
	weekStart, _ := time.Parse(time.RFC3339Nano, it.WeekStart)
	weekEnd, _ := time.Parse(time.RFC3339Nano, it.WeekEnd)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.PriceSheet{
		ID:        it.ID,
		ZoneID:    it.ZoneID,
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		Status:    entities.PriceSheetStatus(it.Status),
		OwnerID:   it.OwnerID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func toPriceSheetRow(i entities.PriceSheetItem) priceSheetItemRow {
	return priceSheetItemRow{
		PriceSheetID:     i.PriceSheetID,
		ProductID:        i.ProductID,
		WarehouseID:      i.WarehouseID,
		CostPerLb:        i.CostPerLb,
		MarginPercent:    i.MarginPercent,
		MarginAmount:     i.MarginAmount,
		FreightPerLb:     i.FreightPerLb,
		DeliveredPriceLb: i.DeliveredPriceLb,
	}
}

func fromPriceSheetRow(it priceSheetItemRow) entities.PriceSheetItem {
	return entities.PriceSheetItem{
		PriceSheetID:     it.PriceSheetID,
		ProductID:        it.ProductID,
		WarehouseID:      it.WarehouseID,
		CostPerLb:        it.CostPerLb,
		MarginPercent:    it.MarginPercent,
		MarginAmount:     it.MarginAmount,
		FreightPerLb:     it.FreightPerLb,
		DeliveredPriceLb: it.DeliveredPriceLb,
	}
}
