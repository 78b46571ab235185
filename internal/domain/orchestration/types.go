package orchestration

import "errors"

// ErrNoProviderSucceeded is returned when every selected provider failed.
// Partial success never produces this; a single surviving response is enough
// to consolidate.
var ErrNoProviderSucceeded = errors.New("no AI providers responded successfully")

// Request is one business analysis ask.
type Request struct {
	Prompt   string `json:"prompt"`
	TaskType string `json:"task_type"`
	// DataContext is passed through for prompt construction and logging; the
	// orchestration core does not interpret it.
	DataContext map[string]any `json:"data_context,omitempty"`
	// RequiresMultipleProviders is advisory only. Selection is driven solely
	// by TaskType; the flag is accepted for wire compatibility.
	RequiresMultipleProviders bool `json:"requires_multiple_providers,omitempty"`
}

// ProviderResponse is one provider's answer to one request. Created once the
// provider call completes successfully and never mutated afterwards.
type ProviderResponse struct {
	Provider   string  `json:"provider"` // display name
	Text       string  `json:"response"`
	Confidence float64 `json:"confidence"`
	Cost       float64 `json:"cost"`
	LatencyMS  int64   `json:"latency_ms"`
}

// ConsolidatedResponse is the orchestration's output. ProvidersUsed is
// non-empty whenever orchestration succeeds.
type ConsolidatedResponse struct {
	FinalText     string   `json:"final_response"`
	Confidence    float64  `json:"confidence"`
	TotalCost     float64  `json:"total_cost"`
	ProvidersUsed []string `json:"providers_used"`
	Reasoning     string   `json:"reasoning"`
}
