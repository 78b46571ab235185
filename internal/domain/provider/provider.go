package provider

import "context"

// ID values are the stable routing keys for the supported upstream AI services.
const (
	IDOpenAI = "openai"
	IDClaude = "claude"
	IDGemini = "gemini"
	IDGrok   = "grok"
)

// Descriptor identifies one upstream AI service. Descriptors are built once at
// startup and shared read-only across concurrent orchestrations; credentials
// are not stored here, they are resolved per call through CredentialResolver.
type Descriptor struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Endpoint    string   `json:"endpoint"`
	Model       string   `json:"model"`
	Strengths   []string `json:"strengths"`
}

// CredentialResolver resolves the API secret for a provider at call time.
// Implementations must never log the resolved secret.
type CredentialResolver interface {
	Credential(ctx context.Context, providerID string) (string, error)
}

// DefaultDescriptors returns the built-in provider table.
func DefaultDescriptors() []Descriptor {
	return []Descriptor{
		{
			ID:          IDOpenAI,
			DisplayName: "OpenAI GPT-4",
			Endpoint:    "https://api.openai.com/v1/chat/completions",
			Model:       "gpt-4o",
			Strengths:   []string{"general reasoning", "code generation", "business analysis"},
		},
		{
			ID:          IDClaude,
			DisplayName: "Claude 3.5 Sonnet",
			Endpoint:    "https://api.anthropic.com/v1/messages",
			Model:       "claude-3-5-sonnet-20241022",
			Strengths:   []string{"detailed analysis", "research", "strategic planning"},
		},
		{
			ID:          IDGemini,
			DisplayName: "Google Gemini Pro",
			Endpoint:    "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent",
			Model:       "gemini-pro",
			Strengths:   []string{"data analysis", "market research", "technical implementation"},
		},
		{
			ID:          IDGrok,
			DisplayName: "Grok",
			Endpoint:    "https://api.x.ai/v1/chat/completions",
			Model:       "grok-beta",
			Strengths:   []string{"real-time insights", "trend analysis", "creative solutions"},
		},
	}
}
