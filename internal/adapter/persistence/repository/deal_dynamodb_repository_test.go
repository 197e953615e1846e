package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// scriptedDynamoClient serves one canned DynamoDB wire response per request,
// in order, and records every request payload it saw.
type scriptedDynamoClient struct {
	responses []string
	requests  []string
}

func (c *scriptedDynamoClient) Do(req *http.Request) (*http.Response, error) {
	payload, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	c.requests = append(c.requests, string(payload))
	idx := len(c.requests) - 1
	if idx >= len(c.responses) {
		idx = len(c.responses) - 1
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/x-amz-json-1.0"}},
		Body:       io.NopCloser(strings.NewReader(c.responses[idx])),
	}, nil
}

func newScriptedDealRepo(client *scriptedDynamoClient) *DealDynamoRepository {
	cfg := aws.Config{
		Region:      "us-east-1",
		Credentials: credentials.NewStaticCredentialsProvider("local", "local", ""),
		HTTPClient:  client,
	}
	return NewDealDynamoRepository(dynamodb.NewFromConfig(cfg))
}

func TestDealDynamoRepository_FindAcceptedDuplicate_WalksFilteredPages(t *testing.T) {
	// First page: the filter discarded every evaluated item, but the index
	// has more behind LastEvaluatedKey. Second page holds the duplicate.
	firstPage := `{"Count":0,"ScannedCount":3,"Items":[],"LastEvaluatedKey":{"id":{"S":"deal-old"},"manufacturer":{"S":"acme-foods"}}}`
	secondPage := `{"Count":1,"ScannedCount":1,"Items":[{"id":{"S":"deal-dup"},"manufacturer":{"S":"acme-foods"},"description":{"S":"chicken breast 40lb"},"price_per_lb":{"N":"2.5"},"quantity_lbs":{"N":"1000"},"pack_size":{"S":"4/10 lb"},"warehouse_id":{"S":"wh-1"},"status":{"S":"accepted"},"owner_id":{"S":"user-1"},"created_at":{"S":"2026-08-25T10:00:00Z"}}]}`
	client := &scriptedDynamoClient{responses: []string{firstPage, secondPage}}
	repo := newScriptedDealRepo(client)

	since := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	deal, err := repo.FindAcceptedDuplicate(context.Background(), "acme-foods", "chicken breast 40lb", since)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deal.ID != "deal-dup" {
		t.Fatalf("expected duplicate deal-dup, got %q", deal.ID)
	}
	if len(client.requests) != 2 {
		t.Fatalf("expected 2 query pages, got %d", len(client.requests))
	}

	for i, body := range client.requests {
		var query map[string]json.RawMessage
		if err := json.Unmarshal([]byte(body), &query); err != nil {
			t.Fatalf("request %d is not valid JSON: %v", i+1, err)
		}
		// A page cap is evaluated before the filter and can hide a
		// qualifying deal on any manufacturer with more than one row.
		if _, ok := query["Limit"]; ok {
			t.Errorf("request %d caps evaluated items before the filter runs", i+1)
		}
	}

	var second map[string]json.RawMessage
	if err := json.Unmarshal([]byte(client.requests[1]), &second); err != nil {
		t.Fatalf("second request is not valid JSON: %v", err)
	}
	startKey, ok := second["ExclusiveStartKey"]
	if !ok {
		t.Fatal("second query does not resume from the previous page")
	}
	if !strings.Contains(string(startKey), "deal-old") {
		t.Fatalf("second query resumes from the wrong key: %s", startKey)
	}
}

func TestDealDynamoRepository_FindAcceptedDuplicate_ExhaustsIndexWithoutMatch(t *testing.T) {
	client := &scriptedDynamoClient{responses: []string{`{"Count":0,"ScannedCount":2,"Items":[]}`}}
	repo := newScriptedDealRepo(client)

	deal, err := repo.FindAcceptedDuplicate(context.Background(), "acme-foods", "pork loin", time.Now().Add(-7*24*time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deal.ID != "" {
		t.Fatalf("expected no duplicate, got %q", deal.ID)
	}
	if len(client.requests) != 1 {
		t.Fatalf("expected a single query, got %d", len(client.requests))
	}
}
