package quotes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"os"
	"strings"
	"time"

	"coldchain_pricing/internal/resilience"
	"coldchain_pricing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingLTLQuoteAPIKey  = errors.New("missing LTL_QUOTE_API_KEY")
	ErrLTLQuoteRejected       = errors.New("ltl quote request rejected")
	ErrLTLQuoteUnauthorized   = errors.New("ltl quote credentials rejected")
	ErrLTLQuoteLaneNotFound   = errors.New("ltl quote lane not found")
	ErrLTLQuoteUpstreamFailed = errors.New("ltl quote upstream failure")
)

const (
	defaultLTLTimeout = 12 * time.Second
	maxErrorBodyBytes = 2048
)

// LTLQuoteGateway calls the external dry LTL quoting API over HTTP.
//
// Failure classification drives the retry layer: 429 and 5xx responses and
// transport timeouts are marked transient, while 4xx validation and auth
// failures are not and fail fast.

type LTLQuoteGateway struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	mockMode   bool
}

var _ interfaces.ILTLQuoteGateway = (*LTLQuoteGateway)(nil)

func NewLTLQuoteGateway() (*LTLQuoteGateway, error) {
	if isQuoteGatewayMockEnabled() {
		log.Printf("[quotes][gateway] mock mode enabled")
		return &LTLQuoteGateway{mockMode: true}, nil
	}

	apiKey := os.Getenv("LTL_QUOTE_API_KEY")
	if apiKey == "" {
		log.Printf("[quotes][gateway] missing LTL_QUOTE_API_KEY")
		return nil, ErrMissingLTLQuoteAPIKey
	}

	baseURL := strings.TrimRight(getenvDefault("LTL_QUOTE_BASE_URL", "https://api.ltl-quotes.example.com"), "/")
	log.Printf("[quotes][gateway] LTL quote client initialized base_url=%s", baseURL)

	return &LTLQuoteGateway{
		httpClient: &http.Client{Timeout: defaultLTLTimeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}, nil
}

func (g *LTLQuoteGateway) GetQuote(ctx context.Context, req interfaces.QuoteRequest) (interfaces.QuoteResponse, error) {
	if g.mockMode {
		return g.mockQuote(req), nil
	}

	body, err := json.Marshal(req)
	if err != nil {
		return interfaces.QuoteResponse{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/quotes", bytes.NewReader(body))
	if err != nil {
		return interfaces.QuoteResponse{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		// Transport errors (timeouts, resets) are worth retrying.
		log.Printf("[quotes][gateway] request failed err=%v", err)
		return interfaces.QuoteResponse{}, resilience.MarkTransient(err)
	}
	defer resp.Body.Close()

	if err := classifyQuoteStatus(resp); err != nil {
		return interfaces.QuoteResponse{}, err
	}

	var out interfaces.QuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return interfaces.QuoteResponse{}, fmt.Errorf("decoding quote response: %w", err)
	}
	if out.Cost <= 0 {
		return interfaces.QuoteResponse{}, fmt.Errorf("%w: non-positive cost %v", ErrLTLQuoteRejected, out.Cost)
	}

	log.Printf("[quotes][gateway] quote success quote_id=%s cost=%v", out.QuoteID, out.Cost)
	return out, nil
}

func classifyQuoteStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	log.Printf("[quotes][gateway] upstream status=%d body=%q", resp.StatusCode, snippet)

	switch {
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: status=%d", ErrLTLQuoteRejected, resp.StatusCode)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: status=%d", ErrLTLQuoteUnauthorized, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: status=%d", ErrLTLQuoteLaneNotFound, resp.StatusCode)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return resilience.MarkTransient(fmt.Errorf("%w: status=%d", ErrLTLQuoteUpstreamFailed, resp.StatusCode))
	default:
		return fmt.Errorf("%w: status=%d", ErrLTLQuoteUpstreamFailed, resp.StatusCode)
	}
}

// mockQuote derives a deterministic dry cost from the lane so local runs
// produce stable, distinguishable rates without the upstream service.
func (g *LTLQuoteGateway) mockQuote(req interfaces.QuoteRequest) interfaces.QuoteResponse {
	distanceProxy := 300.0
	for _, c := range req.OriginZip + req.DestinationZip {
		distanceProxy += float64(int(c) % 17)
	}
	cost := math.Round((distanceProxy+req.WeightLbs*0.035)*100) / 100

	log.Printf("[quotes][gateway] mock quote origin=%s,%s dest=%s,%s cost=%v",
		req.OriginCity, req.OriginState, req.DestinationCity, req.DestinationState, cost)
	return interfaces.QuoteResponse{Cost: cost, QuoteID: "mock-" + uuid.NewString()}
}

func isQuoteGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("LTL_QUOTE_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
