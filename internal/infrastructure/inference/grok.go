package inference

import (
	"magna-server/services/analysis-api/internal/domain/provider"
)

// GrokAdapter speaks the x.ai chat-completions protocol, which is wire
// compatible with OpenAI's.
type GrokAdapter struct {
	OpenAIAdapter
}

func NewGrokAdapter() *GrokAdapter {
	return &GrokAdapter{OpenAIAdapter{id: provider.IDGrok}}
}
