package interactionlog

import (
	"context"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"magna-server/services/analysis-api/internal/domain/provider"
)

// ProviderState classifies a single provider from its trailing success rate.
type ProviderState string

const (
	ProviderOnline   ProviderState = "online"
	ProviderDegraded ProviderState = "degraded"
	ProviderOffline  ProviderState = "offline"
)

// SystemHealth classifies the whole provider fleet.
type SystemHealth string

const (
	SystemHealthy  SystemHealth = "healthy"
	SystemWarning  SystemHealth = "warning"
	SystemCritical SystemHealth = "critical"
)

const (
	onlineSuccessRate   = 0.95
	degradedSuccessRate = 0.8
	warningOnlineShare  = 0.75
)

// ProviderStatus is the monitoring view of one provider.
type ProviderStatus struct {
	Name           string          `json:"name"`
	Status         ProviderState   `json:"status"`
	ResponseTimeMS int64           `json:"response_time_ms"`
	SuccessRatePct int             `json:"success_rate_pct"`
	TotalRequests  int64           `json:"total_requests"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	LastCheck      time.Time       `json:"last_check"`
}

// RealTimeMetrics is the fleet-wide monitoring snapshot.
type RealTimeMetrics struct {
	Providers             []ProviderStatus `json:"providers"`
	TotalCost             decimal.Decimal  `json:"total_cost"`
	AverageResponseTimeMS int64            `json:"average_response_time_ms"`
	SystemHealth          SystemHealth     `json:"system_health"`
}

// ProviderDetail is the per-provider drill-down.
type ProviderDetail struct {
	Provider       string          `json:"provider"`
	HourlyMetrics  []HourlyMetric  `json:"hourly_metrics"`
	TotalRequests  int64           `json:"total_requests"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	AverageLatency float64         `json:"average_latency_ms"`
}

// HealthService derives provider and system health from stored interaction
// logs. Pure read-side reporting: it has no effect on orchestration behaviour.
type HealthService struct {
	repo     Repository
	registry *provider.Registry
	window   time.Duration
}

// NewHealthService creates the health aggregation service. window is the
// trailing period the aggregates cover.
func NewHealthService(repo Repository, registry *provider.Registry, window time.Duration) *HealthService {
	return &HealthService{
		repo:     repo,
		registry: registry,
		window:   window,
	}
}

// RealTimeMetrics returns per-provider status and the system-wide health for
// the trailing window. Registered providers with no traffic in the window
// report as offline with a zero success rate.
func (s *HealthService) RealTimeMetrics(ctx context.Context) (*RealTimeMetrics, error) {
	since := time.Now().Add(-s.window)
	usage, err := s.repo.ProviderUsage(ctx, since)
	if err != nil {
		return nil, err
	}

	byProvider := make(map[string]ProviderUsage, len(usage))
	for _, u := range usage {
		byProvider[u.Provider] = u
	}

	descriptors := s.registry.All()
	statuses := make([]ProviderStatus, 0, len(descriptors))
	totalCost := decimal.Zero
	var latencySum float64

	for _, d := range descriptors {
		u := byProvider[d.ID]
		statuses = append(statuses, ProviderStatus{
			Name:           d.DisplayName,
			Status:         ClassifyProvider(u.SuccessRate),
			ResponseTimeMS: int64(math.Round(u.AvgLatencyMS)),
			SuccessRatePct: int(math.Round(u.SuccessRate * 100)),
			TotalRequests:  u.TotalRequests,
			TotalCost:      u.TotalCost,
			LastCheck:      u.LastCheck,
		})
		totalCost = totalCost.Add(u.TotalCost)
		latencySum += u.AvgLatencyMS
	}

	var avgLatency int64
	if len(statuses) > 0 {
		avgLatency = int64(math.Round(latencySum / float64(len(statuses))))
	}

	return &RealTimeMetrics{
		Providers:             statuses,
		TotalCost:             totalCost,
		AverageResponseTimeMS: avgLatency,
		SystemHealth:          ClassifySystem(statuses),
	}, nil
}

// ProviderDetail returns hour-bucketed metrics for one provider over the
// trailing window.
func (s *HealthService) ProviderDetail(ctx context.Context, providerID string) (*ProviderDetail, error) {
	since := time.Now().Add(-s.window)
	hourly, err := s.repo.HourlyMetrics(ctx, providerID, since)
	if err != nil {
		return nil, err
	}

	detail := &ProviderDetail{
		Provider:      providerID,
		HourlyMetrics: hourly,
		TotalCost:     decimal.Zero,
	}

	var latencySum float64
	for _, h := range hourly {
		detail.TotalRequests += h.Requests
		detail.TotalCost = detail.TotalCost.Add(h.Cost)
		latencySum += h.AvgLatencyMS
	}
	if len(hourly) > 0 {
		detail.AverageLatency = latencySum / float64(len(hourly))
	}

	return detail, nil
}

// ClassifyProvider maps a trailing success rate to a provider state.
func ClassifyProvider(successRate float64) ProviderState {
	switch {
	case successRate >= onlineSuccessRate:
		return ProviderOnline
	case successRate >= degradedSuccessRate:
		return ProviderDegraded
	default:
		return ProviderOffline
	}
}

// ClassifySystem derives fleet health from individual provider states.
func ClassifySystem(statuses []ProviderStatus) SystemHealth {
	if len(statuses) == 0 {
		return SystemCritical
	}

	online := 0
	for _, s := range statuses {
		if s.Status == ProviderOnline {
			online++
		}
	}

	switch {
	case online == len(statuses):
		return SystemHealthy
	case float64(online) >= float64(len(statuses))*warningOnlineShare:
		return SystemWarning
	default:
		return SystemCritical
	}
}
