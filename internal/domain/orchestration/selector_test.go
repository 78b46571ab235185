package orchestration

import (
	"reflect"
	"testing"
)

func TestSelectProvidersRoutingTable(t *testing.T) {
	cases := map[string][]string{
		"cost_analysis":            {"claude", "gemini", "openai"},
		"process_automation":       {"openai", "claude"},
		"lead_generation":          {"grok", "gemini", "claude"},
		"market_research":          {"claude", "gemini", "grok"},
		"strategy_planning":        {"claude", "openai", "gemini"},
		"creative_solutions":       {"grok", "openai"},
		"technical_implementation": {"openai", "gemini"},
	}

	for taskType, want := range cases {
		got := SelectProviders(taskType)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("SelectProviders(%q) = %v, want %v", taskType, got, want)
		}
	}
}

func TestSelectProvidersUnknownTaskTypeFallsBack(t *testing.T) {
	for _, taskType := range []string{"", "competitor_monitoring", "COST_ANALYSIS", "something entirely new"} {
		got := SelectProviders(taskType)
		want := []string{"openai", "claude"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("SelectProviders(%q) = %v, want default %v", taskType, got, want)
		}
	}
}

func TestSelectProvidersReturnsCopy(t *testing.T) {
	first := SelectProviders("cost_analysis")
	first[0] = "mutated"

	second := SelectProviders("cost_analysis")
	if second[0] != "claude" {
		t.Fatalf("routing table mutated through returned slice: %v", second)
	}
}
