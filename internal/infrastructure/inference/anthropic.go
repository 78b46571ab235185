package inference

import (
	"encoding/json"

	"resty.dev/v3"

	"magna-server/services/analysis-api/internal/domain/provider"
)

const (
	anthropicVersion   = "2023-06-01"
	anthropicMaxTokens = 4000
)

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// AnthropicAdapter speaks the Anthropic messages protocol with x-api-key
// authentication.
type AnthropicAdapter struct{}

func NewAnthropicAdapter() *AnthropicAdapter {
	return &AnthropicAdapter{}
}

func (a *AnthropicAdapter) ProviderID() string {
	return provider.IDClaude
}

func (a *AnthropicAdapter) Decorate(r *resty.Request, d provider.Descriptor, apiKey, prompt string) {
	r.SetHeader("x-api-key", apiKey)
	r.SetHeader("anthropic-version", anthropicVersion)
	r.SetBody(anthropicRequest{
		Model:     d.Model,
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt},
		},
	})
}

func (a *AnthropicAdapter) ExtractText(body []byte) string {
	var resp anthropicResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return ""
	}
	if len(resp.Content) == 0 {
		return ""
	}
	return resp.Content[0].Text
}
