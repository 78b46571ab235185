package inference

import (
	"context"
	"fmt"
	"strings"

	"magna-server/services/analysis-api/internal/config"
	"magna-server/services/analysis-api/internal/domain/provider"
)

// ConfigCredentialResolver resolves provider API keys from the process
// environment config. A missing key is an error so unconfigured providers
// fail fast instead of issuing unauthenticated calls.
type ConfigCredentialResolver struct {
	cfg *config.Config
}

func NewConfigCredentialResolver(cfg *config.Config) *ConfigCredentialResolver {
	return &ConfigCredentialResolver{cfg: cfg}
}

func (r *ConfigCredentialResolver) Credential(ctx context.Context, providerID string) (string, error) {
	var key string
	switch providerID {
	case provider.IDOpenAI:
		key = r.cfg.OpenAIAPIKey
	case provider.IDClaude:
		key = r.cfg.ClaudeAPIKey
	case provider.IDGemini:
		key = r.cfg.GeminiAPIKey
	case provider.IDGrok:
		key = r.cfg.GrokAPIKey
	default:
		return "", fmt.Errorf("unknown provider: %s", providerID)
	}
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("no API key configured for provider %s", providerID)
	}
	return key, nil
}
