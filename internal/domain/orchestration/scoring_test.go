package orchestration

import (
	"math"
	"strings"
	"testing"
)

func TestConfidenceLengthBoundary(t *testing.T) {
	// The length bonus requires strictly more than 500 characters.
	at500 := strings.Repeat("a", 500)
	if got := Confidence(at500, nil, "cost_analysis"); got != 0.5 {
		t.Fatalf("500 chars: expected 0.5, got %v", got)
	}

	at501 := strings.Repeat("a", 501)
	if got := Confidence(at501, nil, "cost_analysis"); got != 0.7 {
		t.Fatalf("501 chars: expected 0.7, got %v", got)
	}
}

func TestConfidenceCurrencyAndROIBonuses(t *testing.T) {
	if got := Confidence("expect a 12% uplift", nil, "x"); got != 0.6 {
		t.Fatalf("percent symbol: expected 0.6, got %v", got)
	}
	if got := Confidence("costs $400 per seat", nil, "x"); got != 0.6 {
		t.Fatalf("currency symbol: expected 0.6, got %v", got)
	}
	if got := Confidence("the ROI is strong", nil, "x"); got != 0.6 {
		t.Fatalf("ROI term: expected 0.6, got %v", got)
	}
	if got := Confidence("annual savings of $2000", nil, "x"); !almostEqual(got, 0.7) {
		t.Fatalf("currency + savings: expected 0.7, got %v", got)
	}
}

func TestConfidenceStrengthAlignment(t *testing.T) {
	strengths := []string{"market research", "data analysis", "technical implementation"}

	// Only "market" matches the task type string.
	got := Confidence("short", strengths, "market_research")
	if !almostEqual(got, 0.55) {
		t.Fatalf("expected 0.55, got %v", got)
	}

	// No strengths match an unrelated task type.
	if got := Confidence("short", strengths, "creative_solutions"); got != 0.5 {
		t.Fatalf("expected 0.5, got %v", got)
	}
}

func TestConfidenceClampedToOne(t *testing.T) {
	text := strings.Repeat("ROI savings $ % ", 100)
	strengths := []string{"cost analysis", "cost modelling", "cost control", "cost planning"}

	if got := Confidence(text, strengths, "cost_analysis"); got != 1.0 {
		t.Fatalf("expected clamp to 1.0, got %v", got)
	}
}

func TestConfidenceGeminiScenario(t *testing.T) {
	// 600 chars, no currency or ROI terms, no strength overlap: 0.5 + 0.2.
	text := strings.Repeat("b", 600)
	strengths := []string{"data analysis", "market research", "technical implementation"}

	if got := Confidence(text, strengths, "strategy_planning"); got != 0.7 {
		t.Fatalf("expected 0.7, got %v", got)
	}
}

func TestEstimateCost(t *testing.T) {
	// 10 words * 1.3 tokens/word * per-token rate.
	text := strings.TrimSpace(strings.Repeat("word ", 10))

	if got, want := EstimateCost("openai", text), 13*0.00003; !almostEqual(got, want) {
		t.Fatalf("openai: expected %v, got %v", want, got)
	}
	if got, want := EstimateCost("gemini", text), 13*0.00001; !almostEqual(got, want) {
		t.Fatalf("gemini: expected %v, got %v", want, got)
	}
	if got, want := EstimateCost("unknown", text), 13*0.00002; !almostEqual(got, want) {
		t.Fatalf("unknown provider: expected default rate, got %v", got)
	}
}

func TestEstimateCostEmptyText(t *testing.T) {
	if got := EstimateCost("openai", ""); got != 0 {
		t.Fatalf("expected zero cost for empty text, got %v", got)
	}
}

func TestEnhancePrompt(t *testing.T) {
	got := EnhancePrompt("Analyze our supply chain.", []string{"detailed analysis", "research"})

	if !strings.HasPrefix(got, "Analyze our supply chain.") {
		t.Fatalf("base prompt lost: %q", got)
	}
	if !strings.Contains(got, "Please focus on your strengths in: detailed analysis, research.") {
		t.Fatalf("strengths text missing: %q", got)
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
