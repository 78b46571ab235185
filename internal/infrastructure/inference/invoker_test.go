package inference

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"magna-server/services/analysis-api/internal/domain/interactionlog"
	"magna-server/services/analysis-api/internal/domain/orchestration"
	"magna-server/services/analysis-api/internal/domain/provider"
)

type memoryRepo struct {
	records []*interactionlog.InteractionLog
}

func (m *memoryRepo) Create(ctx context.Context, record *interactionlog.InteractionLog) error {
	m.records = append(m.records, record)
	return nil
}

func (m *memoryRepo) ProviderUsage(ctx context.Context, since time.Time) ([]interactionlog.ProviderUsage, error) {
	return nil, nil
}

func (m *memoryRepo) HourlyMetrics(ctx context.Context, providerID string, since time.Time) ([]interactionlog.HourlyMetric, error) {
	return nil, nil
}

type staticCreds map[string]string

func (s staticCreds) Credential(ctx context.Context, providerID string) (string, error) {
	key, ok := s[providerID]
	if !ok {
		return "", fmt.Errorf("no API key configured for provider %s", providerID)
	}
	return key, nil
}

func newTestInvoker(t *testing.T, endpoint string, repo *memoryRepo, creds staticCreds) *HTTPInvoker {
	t.Helper()
	descriptors := provider.DefaultDescriptors()
	for i := range descriptors {
		descriptors[i].Endpoint = endpoint
	}
	registry := provider.NewRegistry(descriptors...)
	recorder := interactionlog.NewRecorder(repo, zerolog.Nop(), nil)
	return NewHTTPInvoker(registry, DefaultAdapters(), creds, recorder, 5*time.Second, zerolog.Nop())
}

func TestInvokeOpenAISuccess(t *testing.T) {
	var gotAuth string
	var gotReq struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"Savings of $4000 expected, ROI 12%"}}]}`)
	}))
	defer srv.Close()

	repo := &memoryRepo{}
	inv := newTestInvoker(t, srv.URL, repo, staticCreds{"openai": "sk-test"})

	got := inv.Invoke(context.Background(), "openai", orchestration.Request{
		Prompt:   "Cut invoice processing costs",
		TaskType: "cost_analysis",
	}, nil)
	if got == nil {
		t.Fatal("expected a response, got nil")
	}
	if gotAuth != "Bearer sk-test" {
		t.Fatalf("expected bearer auth, got %q", gotAuth)
	}
	if got.Provider != "OpenAI GPT-4" {
		t.Fatalf("expected display name, got %q", got.Provider)
	}
	if !strings.Contains(got.Text, "$4000") {
		t.Fatalf("unexpected text: %q", got.Text)
	}
	if got.Confidence <= 0.5 {
		t.Fatalf("currency and ROI mentions should raise confidence above base, got %v", got.Confidence)
	}
	if got.Cost <= 0 {
		t.Fatalf("expected positive cost, got %v", got.Cost)
	}

	if len(repo.records) != 1 {
		t.Fatalf("expected 1 log record, got %d", len(repo.records))
	}
	rec := repo.records[0]
	if !rec.Success || rec.Provider != "openai" {
		t.Fatalf("unexpected record: %+v", rec)
	}

	if gotReq.Model != "gpt-4o" {
		t.Fatalf("expected gpt-4o, got %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" {
		t.Fatalf("expected system+user messages, got %+v", gotReq.Messages)
	}
	if !strings.Contains(gotReq.Messages[1].Content, "Please focus on your strengths in:") {
		t.Fatalf("expected augmented prompt, got %q", gotReq.Messages[1].Content)
	}
}

func TestInvokeClaudeAuthHeaders(t *testing.T) {
	var gotKey, gotVersion string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"content":[{"type":"text","text":"Detailed plan"}]}`)
	}))
	defer srv.Close()

	repo := &memoryRepo{}
	inv := newTestInvoker(t, srv.URL, repo, staticCreds{"claude": "ak-test"})

	got := inv.Invoke(context.Background(), "claude", orchestration.Request{Prompt: "p", TaskType: "strategy_planning"}, nil)
	if got == nil {
		t.Fatal("expected a response, got nil")
	}
	if gotKey != "ak-test" {
		t.Fatalf("expected x-api-key header, got %q", gotKey)
	}
	if gotVersion != "2023-06-01" {
		t.Fatalf("expected anthropic-version header, got %q", gotVersion)
	}
	if got.Text != "Detailed plan" {
		t.Fatalf("unexpected text: %q", got.Text)
	}
}

func TestInvokeGeminiKeyQueryParam(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"Market findings"}]}}]}`)
	}))
	defer srv.Close()

	repo := &memoryRepo{}
	inv := newTestInvoker(t, srv.URL, repo, staticCreds{"gemini": "g-test"})

	got := inv.Invoke(context.Background(), "gemini", orchestration.Request{Prompt: "p", TaskType: "market_research"}, nil)
	if got == nil {
		t.Fatal("expected a response, got nil")
	}
	if gotKey != "g-test" {
		t.Fatalf("expected key query param, got %q", gotKey)
	}
	if got.Text != "Market findings" {
		t.Fatalf("unexpected text: %q", got.Text)
	}
}

func TestInvokeUpstreamErrorReturnsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	repo := &memoryRepo{}
	inv := newTestInvoker(t, srv.URL, repo, staticCreds{"openai": "sk-test"})

	if got := inv.Invoke(context.Background(), "openai", orchestration.Request{Prompt: "p"}, nil); got != nil {
		t.Fatalf("expected nil on upstream error, got %+v", got)
	}
	if len(repo.records) != 1 {
		t.Fatalf("expected a failure record, got %d records", len(repo.records))
	}
	rec := repo.records[0]
	if rec.Success || rec.ErrorMessage == nil {
		t.Fatalf("expected failure record with message, got %+v", rec)
	}
}

func TestInvokeMissingCredentialReturnsNil(t *testing.T) {
	repo := &memoryRepo{}
	inv := newTestInvoker(t, "http://127.0.0.1:0", repo, staticCreds{})

	if got := inv.Invoke(context.Background(), "grok", orchestration.Request{Prompt: "p"}, nil); got != nil {
		t.Fatalf("expected nil without credentials, got %+v", got)
	}
	if len(repo.records) != 1 || repo.records[0].Success {
		t.Fatalf("expected one failure record, got %+v", repo.records)
	}
}

func TestInvokeUnknownProviderReturnsNil(t *testing.T) {
	repo := &memoryRepo{}
	inv := newTestInvoker(t, "http://127.0.0.1:0", repo, staticCreds{})

	if got := inv.Invoke(context.Background(), "cohere", orchestration.Request{Prompt: "p"}, nil); got != nil {
		t.Fatalf("expected nil for unknown provider, got %+v", got)
	}
	if len(repo.records) != 0 {
		t.Fatalf("unknown providers should not be logged, got %+v", repo.records)
	}
}

func TestInvokeTaskIDFlowsToRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"message":{"content":"ok"}}]}`)
	}))
	defer srv.Close()

	repo := &memoryRepo{}
	inv := newTestInvoker(t, srv.URL, repo, staticCreds{"grok": "xk-test"})

	taskID := int64(42)
	if got := inv.Invoke(context.Background(), "grok", orchestration.Request{Prompt: "p"}, &taskID); got == nil {
		t.Fatal("expected a response, got nil")
	}
	if len(repo.records) != 1 || repo.records[0].TaskID == nil || *repo.records[0].TaskID != 42 {
		t.Fatalf("expected task id 42 on record, got %+v", repo.records)
	}
}
