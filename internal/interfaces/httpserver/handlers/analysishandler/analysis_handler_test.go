package analysishandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"magna-server/services/analysis-api/internal/domain/orchestration"
)

type stubInvoker struct {
	responses map[string]*orchestration.ProviderResponse
}

func (s *stubInvoker) Invoke(ctx context.Context, providerID string, req orchestration.Request, taskID *int64) *orchestration.ProviderResponse {
	return s.responses[providerID]
}

func newTestRouter(invoker orchestration.Invoker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := orchestration.NewService(invoker, zerolog.Nop())
	handler := NewAnalysisHandler(svc)
	router := gin.New()
	router.POST("/v1/analysis", handler.Analyze)
	return router
}

func TestAnalyzeReturnsConsolidatedResponse(t *testing.T) {
	router := newTestRouter(&stubInvoker{responses: map[string]*orchestration.ProviderResponse{
		"openai": {Provider: "OpenAI GPT-4", Text: "Automate intake", Confidence: 0.7, Cost: 0.001, LatencyMS: 900},
		"claude": {Provider: "Claude 3.5 Sonnet", Text: "Savings of $3000 (15%)", Confidence: 0.9, Cost: 0.002, LatencyMS: 1200},
	}})

	body := `{"prompt":"Reduce invoice costs","task_type":"process_automation"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/analysis", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var got orchestration.ConsolidatedResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !strings.HasPrefix(got.FinalText, "Savings of $3000") {
		t.Fatalf("highest confidence response should lead: %q", got.FinalText)
	}
	if len(got.ProvidersUsed) != 2 {
		t.Fatalf("expected both providers used, got %v", got.ProvidersUsed)
	}
}

func TestAnalyzeAllProvidersFailedMapsTo503(t *testing.T) {
	router := newTestRouter(&stubInvoker{responses: map[string]*orchestration.ProviderResponse{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/analysis", strings.NewReader(`{"prompt":"p"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "no AI providers responded successfully") {
		t.Fatalf("expected sentinel message, got %s", w.Body.String())
	}
}

func TestAnalyzeRejectsMissingPrompt(t *testing.T) {
	router := newTestRouter(&stubInvoker{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/analysis", strings.NewReader(`{"task_type":"cost_analysis"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
