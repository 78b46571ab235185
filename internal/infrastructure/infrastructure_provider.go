package infrastructure

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"magna-server/services/analysis-api/internal/config"
	"magna-server/services/analysis-api/internal/domain/interactionlog"
	"magna-server/services/analysis-api/internal/domain/orchestration"
	"magna-server/services/analysis-api/internal/domain/provider"
	"magna-server/services/analysis-api/internal/infrastructure/crontab"
	"magna-server/services/analysis-api/internal/infrastructure/database"
	"magna-server/services/analysis-api/internal/infrastructure/inference"
	"magna-server/services/analysis-api/internal/infrastructure/logger"
	"magna-server/services/analysis-api/internal/infrastructure/metrics"
	"magna-server/services/analysis-api/internal/infrastructure/persistence"
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.Load()
}

// ProvideDatabase provides a database connection
func ProvideDatabase(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.NewDB(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	// Run migrations if AUTO_MIGRATE is enabled
	if cfg.AutoMigrate {
		log.Info().Msg("Running database migrations...")
		if err := database.Migration(db, "analysis_api."); err != nil {
			log.Error().Err(err).Msg("Failed to run database migrations")
			return nil, err
		}
		log.Info().Msg("Database migrations completed successfully")
	}

	return db, nil
}

// ProvideProviderRegistry builds the provider table, applying any endpoint
// overrides from config.
func ProvideProviderRegistry(cfg *config.Config) *provider.Registry {
	descriptors := provider.DefaultDescriptors()
	overrides := map[string]string{
		provider.IDOpenAI: cfg.OpenAIEndpoint,
		provider.IDClaude: cfg.ClaudeEndpoint,
		provider.IDGemini: cfg.GeminiEndpoint,
		provider.IDGrok:   cfg.GrokEndpoint,
	}
	for i := range descriptors {
		if endpoint := overrides[descriptors[i].ID]; endpoint != "" {
			descriptors[i].Endpoint = endpoint
		}
	}
	return provider.NewRegistry(descriptors...)
}

// ProvideInteractionLogRepository provides the gorm-backed log repository
func ProvideInteractionLogRepository(db *gorm.DB) interactionlog.Repository {
	return persistence.NewInteractionLogRepository(db)
}

// ProvideCredentialResolver provides the config-backed credential resolver
func ProvideCredentialResolver(cfg *config.Config) provider.CredentialResolver {
	return inference.NewConfigCredentialResolver(cfg)
}

// ProvideRecorder provides the best-effort interaction log recorder
func ProvideRecorder(repo interactionlog.Repository, log zerolog.Logger) *interactionlog.Recorder {
	return interactionlog.NewRecorder(repo, log, metrics.RecordLogWriteFailure)
}

// ProvideHealthService provides the provider health aggregator
func ProvideHealthService(repo interactionlog.Repository, registry *provider.Registry, cfg *config.Config) *interactionlog.HealthService {
	return interactionlog.NewHealthService(repo, registry, cfg.HealthWindow)
}

// ProvideInvoker wires the HTTP invoker with the full adapter set
func ProvideInvoker(
	registry *provider.Registry,
	creds provider.CredentialResolver,
	recorder *interactionlog.Recorder,
	cfg *config.Config,
	log zerolog.Logger,
) *inference.HTTPInvoker {
	return inference.NewHTTPInvoker(registry, inference.DefaultAdapters(), creds, recorder, cfg.ProviderTimeout, log)
}

// Infrastructure holds all infrastructure dependencies
type Infrastructure struct {
	DB     *gorm.DB
	Logger zerolog.Logger
}

// NewInfrastructure creates a new infrastructure instance
func NewInfrastructure(db *gorm.DB, logger zerolog.Logger) *Infrastructure {
	return &Infrastructure{
		DB:     db,
		Logger: logger,
	}
}

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	// Config
	ProvideConfig,

	// Database
	ProvideDatabase,
	ProvideInteractionLogRepository,

	// Provider registry and inference
	ProvideProviderRegistry,
	ProvideCredentialResolver,
	ProvideRecorder,
	ProvideHealthService,
	ProvideInvoker,
	wire.Bind(new(orchestration.Invoker), new(*inference.HTTPInvoker)),

	// Logger
	logger.GetLogger,

	// Crontab for health snapshots
	crontab.NewCrontab,

	// Infrastructure struct
	NewInfrastructure,
)
