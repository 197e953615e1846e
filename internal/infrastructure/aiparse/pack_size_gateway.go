package aiparse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"coldchain_pricing/internal/domain/packsize"
	"coldchain_pricing/internal/resilience"
	"coldchain_pricing/internal/usecase/interfaces"
)

var (
	ErrMissingAIParseAPIKey = errors.New("missing AI_PARSE_API_KEY")
	ErrUnparseablePackSize  = errors.New("pack size not parseable")
	ErrAIParseUpstream      = errors.New("ai parse upstream failure")
)

const (
	defaultAITimeout  = 8 * time.Second
	maxPackSizeChars  = 500
	defaultAIModel    = "gpt-4o-mini"
	maxErrorBodyBytes = 2048
)

const systemPrompt = `You extract the total case weight in pounds from a food product pack-size description. Respond with JSON only: {"case_weight_lbs": <number>} or {"case_weight_lbs": null} if the weight cannot be determined.`

// PackSizeGateway infers case weights from free-text pack sizes via an
// OpenAI-compatible chat completions endpoint.
//
// Input is untrusted seller text: it is length-capped and sent only as user
// content, and the numeric answer is bounds-checked by the caller before use.

type PackSizeGateway struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

var _ interfaces.IPackSizeParser = (*PackSizeGateway)(nil)

func NewPackSizeGateway() (*PackSizeGateway, error) {
	apiKey := os.Getenv("AI_PARSE_API_KEY")
	if apiKey == "" {
		log.Printf("[aiparse][gateway] missing AI_PARSE_API_KEY")
		return nil, ErrMissingAIParseAPIKey
	}

	baseURL := strings.TrimRight(getenvDefault("AI_PARSE_BASE_URL", "https://api.openai.com"), "/")
	model := getenvDefault("AI_PARSE_MODEL", defaultAIModel)
	log.Printf("[aiparse][gateway] client initialized base_url=%s model=%s", baseURL, model)

	return &PackSizeGateway{
		httpClient: &http.Client{Timeout: defaultAITimeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
	}, nil
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	ResponseFormat *respFormat   `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type respFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type parsedWeight struct {
	CaseWeightLbs *float64 `json:"case_weight_lbs"`
}

func (g *PackSizeGateway) ParseCaseWeight(ctx context.Context, packSize string) (float64, error) {
	input := strings.TrimSpace(packSize)
	if len(input) > maxPackSizeChars {
		// A byte-boundary cut can land mid rune; drop the partial sequence.
		input = strings.ToValidUTF8(input[:maxPackSizeChars], "")
	}
	if input == "" {
		return 0, ErrUnparseablePackSize
	}

	body, err := json.Marshal(chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: input},
		},
		Temperature:    0,
		ResponseFormat: &respFormat{Type: "json_object"},
	})
	if err != nil {
		return 0, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("[aiparse][gateway] request failed err=%v", err)
		return 0, resilience.MarkTransient(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		log.Printf("[aiparse][gateway] upstream status=%d body=%q", resp.StatusCode, snippet)
		err := fmt.Errorf("%w: status=%d", ErrAIParseUpstream, resp.StatusCode)
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return 0, resilience.MarkTransient(err)
		}
		return 0, err
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("decoding completion: %w", err)
	}
	if len(out.Choices) == 0 {
		return 0, ErrUnparseablePackSize
	}

	var pw parsedWeight
	if err := json.Unmarshal([]byte(out.Choices[0].Message.Content), &pw); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnparseablePackSize, err)
	}
	if pw.CaseWeightLbs == nil || !packsize.Validate(*pw.CaseWeightLbs) {
		return 0, ErrUnparseablePackSize
	}

	log.Printf("[aiparse][gateway] parsed pack_size=%q case_weight_lbs=%v", input, *pw.CaseWeightLbs)
	return *pw.CaseWeightLbs, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
