package repository

import (
	"context"
	"fmt"
	"time"

	"coldchain_pricing/internal/domain/entities"
	"coldchain_pricing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultFreightRatesTableName = "freight_rates"

type freightRateItem struct {
	WarehouseID    string  `dynamodbav:"warehouse_id"`
	RateKey        string  `dynamodbav:"rate_key"`
	ZoneID         string  `dynamodbav:"zone_id"`
	City           string  `dynamodbav:"city"`
	State          string  `dynamodbav:"state"`
	RatePerLb      float64 `dynamodbav:"rate_per_lb"`
	RateType       string  `dynamodbav:"rate_type"`
	DryQuote       float64 `dynamodbav:"dry_quote"`
	QuoteID        string  `dynamodbav:"quote_id"`
	FactorBase     float64 `dynamodbav:"factor_base"`
	FactorOrigin   float64 `dynamodbav:"factor_origin"`
	FactorSeason   float64 `dynamodbav:"factor_season"`
	FloorApplied   bool    `dynamodbav:"floor_applied"`
	ValidFrom      string  `dynamodbav:"valid_from"`
	ValidUntil     string  `dynamodbav:"valid_until"`
	ValidUntilUnix int64   `dynamodbav:"valid_until_unix"`
}

// FreightRateDynamoRepository persists FreightRate entities in DynamoDB.
//
// Table requirements:
//   - PK: warehouse_id (string)
//   - SK: rate_key (string, zone_id#city#state)
//   - TTL attribute: valid_until_unix
//
// The composite sort key makes a calibration upsert overwrite the previous
// rate for the same lane, so each lane carries at most one row. DynamoDB TTL
// sweeps rows some time after valid_until; reads still filter on valid_until
// because the sweep is lazy.

type FreightRateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFreightRateRepository = (*FreightRateDynamoRepository)(nil)

func NewFreightRateDynamoRepository(ddb *dynamodb.Client) *FreightRateDynamoRepository {
	return &FreightRateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FREIGHT_RATES_TABLE", defaultFreightRatesTableName),
	}
}

func (r *FreightRateDynamoRepository) Upsert(ctx context.Context, rate entities.FreightRate) error {
	av, err := attributevalue.MarshalMap(toFreightRateItem(rate))
	if err != nil {
		return err
	}

	// Unconditional put: calibration replaces whatever rate the lane had.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *FreightRateDynamoRepository) NewestForLane(ctx context.Context, warehouseID, zoneID string, now time.Time) (entities.FreightRate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("warehouse_id = :wid AND begins_with(rate_key, :zone_prefix)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid":         &types.AttributeValueMemberS{Value: warehouseID},
			":zone_prefix": &types.AttributeValueMemberS{Value: zoneID + "#"},
		},
	})
	if err != nil {
		return entities.FreightRate{}, err
	}

	var newest entities.FreightRate
	for _, raw := range out.Items {
		var it freightRateItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.FreightRate{}, err
		}
		rate := fromFreightRateItem(it)
		if rate.ExpiredAt(now) {
			continue
		}
		if newest.WarehouseID == "" || rate.ValidFrom.After(newest.ValidFrom) {
			newest = rate
		}
	}
	return newest, nil
}

func (r *FreightRateDynamoRepository) ListByWarehouse(ctx context.Context, warehouseID string) ([]entities.FreightRate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("warehouse_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: warehouseID},
		},
	})
	if err != nil {
		return nil, err
	}

	rates := make([]entities.FreightRate, 0, len(out.Items))
	for _, raw := range out.Items {
		var it freightRateItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		rates = append(rates, fromFreightRateItem(it))
	}
	return rates, nil
}

func rateKey(zoneID, city, state string) string {
	return fmt.Sprintf("%s#%s#%s", zoneID, city, state)
}

func toFreightRateItem(rate entities.FreightRate) freightRateItem {
	return freightRateItem{
		WarehouseID:    rate.WarehouseID,
		RateKey:        rateKey(rate.ZoneID, rate.City, rate.State),
		ZoneID:         rate.ZoneID,
		City:           rate.City,
		State:          rate.State,
		RatePerLb:      rate.RatePerLb,
		RateType:       rate.RateType,
		DryQuote:       rate.DryQuote,
		QuoteID:        rate.QuoteID,
		FactorBase:     rate.Factors.Base,
		FactorOrigin:   rate.Factors.OriginModifier,
		FactorSeason:   rate.Factors.SeasonModifier,
		FloorApplied:   rate.Factors.FloorApplied,
		ValidFrom:      rate.ValidFrom.UTC().Format(time.RFC3339Nano),
		ValidUntil:     rate.ValidUntil.UTC().Format(time.RFC3339Nano),
		ValidUntilUnix: rate.ValidUntil.Unix(),
	}
}

func fromFreightRateItem(it freightRateItem) entities.FreightRate {
	validFrom, _ := time.Parse(time.RFC3339Nano, it.ValidFrom)
	validUntil, _ := time.Parse(time.RFC3339Nano, it.ValidUntil)
	return entities.FreightRate{
		WarehouseID: it.WarehouseID,
		ZoneID:      it.ZoneID,
		City:        it.City,
		State:       it.State,
		RatePerLb:   it.RatePerLb,
		RateType:    it.RateType,
		DryQuote:    it.DryQuote,
		QuoteID:     it.QuoteID,
		Factors: entities.Factors{
			Base:           it.FactorBase,
			OriginModifier: it.FactorOrigin,
			SeasonModifier: it.FactorSeason,
			FloorApplied:   it.FloorApplied,
		},
		ValidFrom:  validFrom,
		ValidUntil: validUntil,
	}
}
