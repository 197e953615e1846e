package repository

import (
	"context"
	"time"

	"coldchain_pricing/internal/domain/entities"
	"coldchain_pricing/internal/resilience"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBreakerStateTableName = "breaker_state"

type breakerStateItem struct {
	ServiceKey   string `dynamodbav:"service_key"`
	FailureCount int    `dynamodbav:"failure_count"`
	LastFailure  string `dynamodbav:"last_failure,omitempty"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// BreakerStateDynamoRepository persists circuit breaker state in DynamoDB so
// an open breaker survives process restarts.
//
// Table requirements:
//   - PK: service_key (string)
//
// Reads use ConsistentRead: a gate decision made on a stale replica could let
// a call through a breaker another instance just tripped.

type BreakerStateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ resilience.BreakerStateStore = (*BreakerStateDynamoRepository)(nil)

func NewBreakerStateDynamoRepository(ddb *dynamodb.Client) *BreakerStateDynamoRepository {
	return &BreakerStateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BREAKER_STATE_TABLE", defaultBreakerStateTableName),
	}
}

func (r *BreakerStateDynamoRepository) Get(ctx context.Context, serviceKey string) (entities.BreakerState, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"service_key": &types.AttributeValueMemberS{Value: serviceKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BreakerState{}, err
	}
	if len(out.Item) == 0 {
		return entities.BreakerState{ServiceKey: serviceKey}, nil
	}

	var it breakerStateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BreakerState{}, err
	}
	return fromBreakerStateItem(it), nil
}

func (r *BreakerStateDynamoRepository) Save(ctx context.Context, state entities.BreakerState) error {
	av, err := attributevalue.MarshalMap(toBreakerStateItem(state))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toBreakerStateItem(s entities.BreakerState) breakerStateItem {
	it := breakerStateItem{
		ServiceKey:   s.ServiceKey,
		FailureCount: s.FailureCount,
		UpdatedAt:    s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !s.LastFailure.IsZero() {
		it.LastFailure = s.LastFailure.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromBreakerStateItem(it breakerStateItem) entities.BreakerState {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	state := entities.BreakerState{
		ServiceKey:   it.ServiceKey,
		FailureCount: it.FailureCount,
		UpdatedAt:    updatedAt,
	}
	if it.LastFailure != "" {
		state.LastFailure, _ = time.Parse(time.RFC3339Nano, it.LastFailure)
	}
	return state
}
