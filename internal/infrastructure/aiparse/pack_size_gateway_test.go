package aiparse

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"
)

func newTestGateway(t *testing.T, upstream *httptest.Server) *PackSizeGateway {
	t.Helper()
	t.Setenv("AI_PARSE_API_KEY", "test-key")
	t.Setenv("AI_PARSE_BASE_URL", upstream.URL)

	g, err := NewPackSizeGateway()
	if err != nil {
		t.Fatalf("unexpected error building gateway: %v", err)
	}
	return g
}

func completionBody(content string) string {
	raw, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(raw)
}

func TestPackSizeGateway_ParseCaseWeight_TruncatesOnRuneBoundary(t *testing.T) {
	var userContent string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("upstream received invalid JSON: %v", err)
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		for _, m := range req.Messages {
			if m.Role == "user" {
				userContent = m.Content
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody(`{"case_weight_lbs": 25}`)))
	}))
	defer upstream.Close()

	g := newTestGateway(t, upstream)

	// The cap lands one byte into the trailing two-byte rune.
	input := strings.Repeat("x", maxPackSizeChars-1) + "é"

	got, err := g.ParseCaseWeight(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 25 {
		t.Fatalf("expected 25, got %v", got)
	}
	if userContent == "" {
		t.Fatal("upstream never saw the pack size")
	}
	if !utf8.ValidString(userContent) {
		t.Fatalf("truncated pack size is not valid UTF-8: %q", userContent)
	}
	if len(userContent) > maxPackSizeChars {
		t.Fatalf("pack size exceeds the cap: %d bytes", len(userContent))
	}
	if strings.ContainsRune(userContent, 'é') {
		t.Fatalf("partial trailing rune should have been dropped: %q", userContent)
	}
}

func TestPackSizeGateway_ParseCaseWeight_ShortInputUnchanged(t *testing.T) {
	var userContent string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		for _, m := range req.Messages {
			if m.Role == "user" {
				userContent = m.Content
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody(`{"case_weight_lbs": 40}`)))
	}))
	defer upstream.Close()

	g := newTestGateway(t, upstream)

	got, err := g.ParseCaseWeight(context.Background(), "  4/10 lb boîtes  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 40 {
		t.Fatalf("expected 40, got %v", got)
	}
	if userContent != "4/10 lb boîtes" {
		t.Fatalf("expected trimmed input to pass through intact, got %q", userContent)
	}
}
