package orchestration

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// numberPattern matches the numeric tokens lifted from supporting responses.
// It is deliberately loose (plain numbers and percentages match too, not just
// currency amounts); the gate is the currency/percent symbol check on the
// whole response, not per token.
var numberPattern = regexp.MustCompile(`\d+(\.\d+)?%?`)

// consensusBonus is added to the mean confidence whenever more than one
// provider contributed.
const consensusBonus = 0.1

// Consolidate merges provider responses into a single answer. The highest
// confidence response becomes the primary; supporting responses contribute
// extracted numeric insights. The sort is stable, so equal confidences keep
// their arrival order.
func Consolidate(responses []ProviderResponse) (*ConsolidatedResponse, error) {
	if len(responses) == 0 {
		return nil, ErrNoProviderSucceeded
	}

	if len(responses) == 1 {
		single := responses[0]
		return &ConsolidatedResponse{
			FinalText:     single.Text,
			Confidence:    single.Confidence,
			TotalCost:     single.Cost,
			ProvidersUsed: []string{single.Provider},
			Reasoning:     fmt.Sprintf("Single provider response from %s", single.Provider),
		}, nil
	}

	ranked := make([]ProviderResponse, len(responses))
	copy(ranked, responses)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Confidence > ranked[j].Confidence
	})

	primary := ranked[0]
	supporting := ranked[1:]

	merged := mergeResponses(primary, supporting)

	totalCost := 0.0
	providersUsed := make([]string, 0, len(ranked))
	for _, r := range ranked {
		totalCost += r.Cost
		providersUsed = append(providersUsed, r.Provider)
	}

	return &ConsolidatedResponse{
		FinalText:     merged,
		Confidence:    consolidatedConfidence(ranked),
		TotalCost:     totalCost,
		ProvidersUsed: providersUsed,
		Reasoning:     fmt.Sprintf("Consolidated from %d AI providers, primary: %s", len(ranked), primary.Provider),
	}, nil
}

// mergeResponses starts from the primary's text and appends numeric insights
// found in supporting responses that carry currency or percent content.
// Supporting responses contributing no extractable numbers add nothing, so
// the merge is idempotent on plain-text supporters.
func mergeResponses(primary ProviderResponse, supporting []ProviderResponse) string {
	merged := primary.Text

	for _, response := range supporting {
		if !strings.Contains(response.Text, "$") && !strings.Contains(response.Text, "%") {
			continue
		}
		numbers := numberPattern.FindAllString(response.Text, -1)
		if len(numbers) == 0 {
			continue
		}
		merged += fmt.Sprintf("\n\nAdditional insight: %s (from %s)", strings.Join(numbers, ", "), response.Provider)
	}

	return merged
}

func consolidatedConfidence(responses []ProviderResponse) float64 {
	sum := 0.0
	for _, r := range responses {
		sum += r.Confidence
	}
	avg := sum / float64(len(responses))

	if len(responses) > 1 {
		avg += consensusBonus
	}
	return clamp01(avg)
}
