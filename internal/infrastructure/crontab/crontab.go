package crontab

import (
	"context"
	"fmt"
	"time"

	"magna-server/services/analysis-api/internal/config"
	"magna-server/services/analysis-api/internal/domain/interactionlog"
	"magna-server/services/analysis-api/internal/infrastructure/logger"
	"magna-server/services/analysis-api/internal/infrastructure/metrics"
	"magna-server/services/analysis-api/internal/utils/platformerrors"

	"github.com/mileusna/crontab"
)

const (
	DefaultSnapshotInterval = 1               // in minutes
	CronJobTimeout          = 1 * time.Minute // Timeout for each cron job execution
)

// Crontab refreshes the provider health gauges on a fixed schedule so the
// scrape endpoint reflects recent traffic even when no monitoring request
// comes in.
type Crontab struct {
	ctab   *crontab.Crontab
	health *interactionlog.HealthService
}

func NewCrontab(health *interactionlog.HealthService) *Crontab {
	return &Crontab{
		ctab:   crontab.New(),
		health: health,
	}
}

func (c *Crontab) Run(ctx context.Context) error {
	log := logger.GetLogger()
	// execute once on server start
	c.snapshotHealth(ctx)

	cfg := config.GetGlobal()
	if cfg != nil && cfg.HealthSnapshotEnabled {
		interval := cfg.HealthSnapshotIntervalMinutes
		if interval <= 0 {
			interval = DefaultSnapshotInterval
		}

		cronExpr := fmt.Sprintf("*/%d * * * *", interval)
		if err := c.ctab.AddJob(cronExpr, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), CronJobTimeout)
			defer cancel()
			c.snapshotHealth(jobCtx)
		}); err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to add health snapshot job")
		}
		log.Warn().Msgf("Health snapshot scheduled: every %d minute(s)", interval)
	}

	// Schedule environment reload job
	if err := c.ctab.AddJob("* * * * *", func() {
		// Reload config
		config.Load()
	}); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to add env reload job")
	}

	<-ctx.Done()
	c.ctab.Shutdown()
	return nil
}

func (c *Crontab) snapshotHealth(ctx context.Context) {
	log := logger.GetLogger()

	snapshot, err := c.health.RealTimeMetrics(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to aggregate provider health")
		return
	}

	for _, p := range snapshot.Providers {
		metrics.SetProviderHealth(p.Name, healthGaugeValue(string(p.Status)))
	}
	metrics.SetSystemHealth(healthGaugeValue(string(snapshot.SystemHealth)))
}

func healthGaugeValue(status string) float64 {
	switch status {
	case string(interactionlog.ProviderOnline), string(interactionlog.SystemHealthy):
		return 1
	case string(interactionlog.ProviderDegraded), string(interactionlog.SystemWarning):
		return 0.5
	default:
		return 0
	}
}
