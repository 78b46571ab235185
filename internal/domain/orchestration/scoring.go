package orchestration

import (
	"strings"

	"magna-server/services/analysis-api/internal/domain/provider"
)

// tokensPerWord is the rough token estimation factor used by the cost
// heuristic.
const tokensPerWord = 1.3

// Confidence derives a heuristic [0,1] score from the shape of a provider
// response. This is not a calibrated probability: length, currency/percent
// symbols, ROI terminology and strength/task-type alignment each add a fixed
// bonus on top of a 0.5 base.
func Confidence(responseText string, strengths []string, taskType string) float64 {
	confidence := 0.5

	if len(responseText) > 500 {
		confidence += 0.2
	}
	if strings.Contains(responseText, "$") || strings.Contains(responseText, "%") {
		confidence += 0.1
	}
	if strings.Contains(responseText, "ROI") || strings.Contains(responseText, "savings") {
		confidence += 0.1
	}

	// Boost confidence when provider strengths align with the task type. A
	// strength counts when its first word appears anywhere in the task type
	// string.
	for _, strength := range strengths {
		words := strings.Fields(strength)
		if len(words) == 0 {
			continue
		}
		if strings.Contains(taskType, words[0]) {
			confidence += 0.05
		}
	}

	return clamp01(confidence)
}

// EstimateCost estimates the USD cost of a response: word count scaled by the
// token factor, multiplied by the provider's per-token rate.
func EstimateCost(providerID, responseText string) float64 {
	tokenCount := float64(len(strings.Fields(responseText))) * tokensPerWord
	return tokenCount * provider.TokenRate(providerID)
}

// EnhancePrompt augments the base prompt with the provider's strengths so
// each provider is steered toward what it does best.
func EnhancePrompt(basePrompt string, strengths []string) string {
	return basePrompt + "\n\nPlease focus on your strengths in: " + strings.Join(strengths, ", ") +
		". Provide specific, actionable recommendations with concrete metrics and implementation steps."
}

func clamp01(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	if v < 0 {
		return 0
	}
	return v
}
