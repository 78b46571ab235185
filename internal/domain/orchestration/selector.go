package orchestration

import "magna-server/services/analysis-api/internal/domain/provider"

// taskRouting maps a task type to the providers consulted for it, in priority
// order. The table is part of the service's behavioural contract; changing an
// entry changes which providers answer that task class.
var taskRouting = map[string][]string{
	"cost_analysis":            {provider.IDClaude, provider.IDGemini, provider.IDOpenAI},
	"process_automation":       {provider.IDOpenAI, provider.IDClaude},
	"lead_generation":          {provider.IDGrok, provider.IDGemini, provider.IDClaude},
	"market_research":          {provider.IDClaude, provider.IDGemini, provider.IDGrok},
	"strategy_planning":        {provider.IDClaude, provider.IDOpenAI, provider.IDGemini},
	"creative_solutions":       {provider.IDGrok, provider.IDOpenAI},
	"technical_implementation": {provider.IDOpenAI, provider.IDGemini},
}

var defaultRouting = []string{provider.IDOpenAI, provider.IDClaude}

// SelectProviders resolves a task type to an ordered provider id list.
// Unknown task types deliberately fall back to the default pair instead of
// failing; callers may send task types this service has never heard of.
func SelectProviders(taskType string) []string {
	ids, ok := taskRouting[taskType]
	if !ok {
		ids = defaultRouting
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
