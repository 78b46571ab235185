package orchestration

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Invoker performs a single provider call. Implementations own the wire
// format, auth scheme and interaction logging for their provider; upstream
// failures are logged there and surfaced here as a nil response, never as an
// error. One provider blowing up must not take its siblings with it.
type Invoker interface {
	Invoke(ctx context.Context, providerID string, req Request, taskID *int64) *ProviderResponse
}

// Service drives the multi-provider fan-out and consolidation.
type Service struct {
	invoker Invoker
	logger  zerolog.Logger
}

// NewService creates the orchestration service.
func NewService(invoker Invoker, logger zerolog.Logger) *Service {
	return &Service{
		invoker: invoker,
		logger:  logger,
	}
}

// Orchestrate selects providers for the request's task type, invokes them
// concurrently, waits for every invocation to settle, and consolidates the
// successful subset. The latency budget is the slowest provider, not the sum.
// Returns ErrNoProviderSucceeded when the successful subset is empty.
func (s *Service) Orchestrate(ctx context.Context, req Request, taskID *int64) (*ConsolidatedResponse, error) {
	providerIDs := SelectProviders(req.TaskType)

	s.logger.Debug().
		Str("task_type", req.TaskType).
		Strs("providers", providerIDs).
		Msg("dispatching analysis request")

	// One result slot per provider: invocations race independently, results
	// land in selection order so ties in the consolidator's sort stay
	// deterministic.
	results := make([]*ProviderResponse, len(providerIDs))
	var wg sync.WaitGroup
	for i, id := range providerIDs {
		wg.Add(1)
		go func(slot int, providerID string) {
			defer wg.Done()
			results[slot] = s.invoker.Invoke(ctx, providerID, req, taskID)
		}(i, id)
	}
	wg.Wait()

	responses := make([]ProviderResponse, 0, len(results))
	for _, r := range results {
		if r != nil {
			responses = append(responses, *r)
		}
	}

	if len(responses) == 0 {
		s.logger.Warn().
			Str("task_type", req.TaskType).
			Strs("providers", providerIDs).
			Msg("all providers failed for analysis request")
		return nil, ErrNoProviderSucceeded
	}

	return Consolidate(responses)
}
