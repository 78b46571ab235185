package inference

import (
	"encoding/json"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"resty.dev/v3"

	"magna-server/services/analysis-api/internal/domain/provider"
)

// systemPrompt frames every OpenAI-compatible call as a business
// optimization request.
const systemPrompt = "You are MAGNA, an AI business optimization expert. Provide detailed, actionable insights for business automation and optimization."

const chatTemperature = 0.7

// OpenAIAdapter speaks the OpenAI chat-completions protocol with Bearer
// authentication.
type OpenAIAdapter struct {
	id string
}

func NewOpenAIAdapter() *OpenAIAdapter {
	return &OpenAIAdapter{id: provider.IDOpenAI}
}

func (a *OpenAIAdapter) ProviderID() string {
	return a.id
}

func (a *OpenAIAdapter) Decorate(r *resty.Request, d provider.Descriptor, apiKey, prompt string) {
	r.SetHeader("Authorization", fmt.Sprintf("Bearer %s", apiKey))
	r.SetBody(openai.ChatCompletionRequest{
		Model: d.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: chatTemperature,
	})
}

func (a *OpenAIAdapter) ExtractText(body []byte) string {
	var resp openai.ChatCompletionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return ""
	}
	if len(resp.Choices) == 0 {
		return ""
	}
	return resp.Choices[0].Message.Content
}
