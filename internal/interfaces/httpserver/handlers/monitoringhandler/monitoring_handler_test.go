package monitoringhandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"magna-server/services/analysis-api/internal/domain/interactionlog"
	"magna-server/services/analysis-api/internal/domain/provider"
)

type stubRepo struct {
	usage  []interactionlog.ProviderUsage
	hourly []interactionlog.HourlyMetric
}

func (s *stubRepo) Create(ctx context.Context, record *interactionlog.InteractionLog) error {
	return nil
}

func (s *stubRepo) ProviderUsage(ctx context.Context, since time.Time) ([]interactionlog.ProviderUsage, error) {
	return s.usage, nil
}

func (s *stubRepo) HourlyMetrics(ctx context.Context, providerID string, since time.Time) ([]interactionlog.HourlyMetric, error) {
	return s.hourly, nil
}

func newTestRouter(repo *stubRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	registry := provider.NewRegistry(provider.DefaultDescriptors()...)
	health := interactionlog.NewHealthService(repo, registry, 24*time.Hour)
	handler := NewMonitoringHandler(health, registry)
	router := gin.New()
	router.GET("/v1/monitoring/metrics", handler.GetMetrics)
	router.GET("/v1/monitoring/providers/:provider", handler.GetProviderMetrics)
	return router
}

func TestGetMetricsReportsSystemHealth(t *testing.T) {
	router := newTestRouter(&stubRepo{
		usage: []interactionlog.ProviderUsage{
			{Provider: "openai", TotalRequests: 10, SuccessRate: 1.0, TotalCost: decimal.NewFromFloat(0.1)},
			{Provider: "claude", TotalRequests: 10, SuccessRate: 1.0},
			{Provider: "gemini", TotalRequests: 10, SuccessRate: 1.0},
			{Provider: "grok", TotalRequests: 10, SuccessRate: 0.9},
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/monitoring/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var got interactionlog.RealTimeMetrics
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if got.SystemHealth != interactionlog.SystemWarning {
		t.Fatalf("3/4 online: expected warning, got %s", got.SystemHealth)
	}
	if len(got.Providers) != 4 {
		t.Fatalf("expected 4 providers, got %d", len(got.Providers))
	}
}

func TestGetProviderMetricsUnknownProvider(t *testing.T) {
	router := newTestRouter(&stubRepo{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/monitoring/providers/cohere", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown provider, got %d", w.Code)
	}
}

func TestGetProviderMetricsReturnsHourlyDetail(t *testing.T) {
	router := newTestRouter(&stubRepo{
		hourly: []interactionlog.HourlyMetric{
			{Requests: 4, AvgLatencyMS: 800, Cost: decimal.NewFromFloat(0.05), SuccessRate: 1.0},
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/monitoring/providers/claude", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var got interactionlog.ProviderDetail
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if got.Provider != "claude" || got.TotalRequests != 4 {
		t.Fatalf("unexpected detail: %+v", got)
	}
}
