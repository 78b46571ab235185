package persistence

import (
	"context"
	"time"

	"magna-server/services/analysis-api/internal/domain/interactionlog"
	"magna-server/services/analysis-api/internal/infrastructure/database"

	"gorm.io/gorm"
)

func init() {
	database.RegisterSchemaForAutoMigrate(interactionlog.InteractionLog{})
}

// InteractionLogRepository implements interactionlog.Repository using GORM
type InteractionLogRepository struct {
	db *gorm.DB
}

// NewInteractionLogRepository creates a new InteractionLogRepository
func NewInteractionLogRepository(db *gorm.DB) *InteractionLogRepository {
	return &InteractionLogRepository{db: db}
}

// Create stores a new interaction log record
func (r *InteractionLogRepository) Create(ctx context.Context, record *interactionlog.InteractionLog) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// ProviderUsage retrieves aggregated call stats per provider since the given time
func (r *InteractionLogRepository) ProviderUsage(ctx context.Context, since time.Time) ([]interactionlog.ProviderUsage, error) {
	var usage []interactionlog.ProviderUsage

	err := r.db.WithContext(ctx).
		Model(&interactionlog.InteractionLog{}).
		Select(`
			ai_provider as provider,
			COUNT(*) as total_requests,
			AVG(latency_ms) as avg_latency_ms,
			AVG(CASE WHEN success THEN 1.0 ELSE 0.0 END) as success_rate,
			SUM(cost) as total_cost,
			MAX(created_at) as last_check
		`).
		Where("created_at >= ?", since).
		Group("ai_provider").
		Scan(&usage).Error

	return usage, err
}

// HourlyMetrics retrieves hour-bucketed call stats for one provider since the given time
func (r *InteractionLogRepository) HourlyMetrics(ctx context.Context, providerID string, since time.Time) ([]interactionlog.HourlyMetric, error) {
	var metrics []interactionlog.HourlyMetric

	err := r.db.WithContext(ctx).
		Model(&interactionlog.InteractionLog{}).
		Select(`
			DATE_TRUNC('hour', created_at) as hour,
			COUNT(*) as requests,
			AVG(latency_ms) as avg_latency_ms,
			SUM(cost) as cost,
			AVG(CASE WHEN success THEN 1.0 ELSE 0.0 END) as success_rate
		`).
		Where("ai_provider = ? AND created_at >= ?", providerID, since).
		Group("DATE_TRUNC('hour', created_at)").
		Order("hour DESC").
		Scan(&metrics).Error

	return metrics, err
}
