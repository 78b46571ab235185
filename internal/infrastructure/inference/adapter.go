package inference

import (
	"magna-server/services/analysis-api/internal/domain/provider"

	"resty.dev/v3"
)

// Adapter binds one provider's wire protocol: request envelope, auth scheme
// and reply extraction. Adapters are stateless and safe for concurrent use.
type Adapter interface {
	// ProviderID returns the registry id this adapter serves.
	ProviderID() string
	// Decorate applies the provider's envelope and credential to the
	// outbound request. prompt is the fully augmented user prompt.
	Decorate(r *resty.Request, d provider.Descriptor, apiKey, prompt string)
	// ExtractText pulls the reply text out of the raw response body.
	// Missing or malformed paths yield "", never an error.
	ExtractText(body []byte) string
}

// DefaultAdapters returns the adapter set for every registered provider.
func DefaultAdapters() []Adapter {
	return []Adapter{
		NewOpenAIAdapter(),
		NewAnthropicAdapter(),
		NewGeminiAdapter(),
		NewGrokAdapter(),
	}
}
