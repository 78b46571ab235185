package inference

import (
	"encoding/json"

	"resty.dev/v3"

	"magna-server/services/analysis-api/internal/domain/provider"
)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GeminiAdapter speaks the Google generateContent protocol. The credential
// travels as the `key` query parameter, not a header.
type GeminiAdapter struct{}

func NewGeminiAdapter() *GeminiAdapter {
	return &GeminiAdapter{}
}

func (a *GeminiAdapter) ProviderID() string {
	return provider.IDGemini
}

func (a *GeminiAdapter) Decorate(r *resty.Request, d provider.Descriptor, apiKey, prompt string) {
	r.SetQueryParam("key", apiKey)
	r.SetBody(geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	})
}

func (a *GeminiAdapter) ExtractText(body []byte) string {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return ""
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return ""
	}
	return resp.Candidates[0].Content.Parts[0].Text
}
