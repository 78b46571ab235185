package inference

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"resty.dev/v3"

	"magna-server/services/analysis-api/internal/domain/interactionlog"
	"magna-server/services/analysis-api/internal/domain/orchestration"
	"magna-server/services/analysis-api/internal/domain/provider"
	"magna-server/services/analysis-api/internal/infrastructure/metrics"
	httpclients "magna-server/services/analysis-api/internal/utils/httpclients"
)

// HTTPInvoker performs single provider calls over HTTP. It implements
// orchestration.Invoker: upstream failures are logged and recorded but
// surfaced to the orchestrator as a nil response only.
type HTTPInvoker struct {
	registry *provider.Registry
	adapters map[string]Adapter
	creds    provider.CredentialResolver
	recorder *interactionlog.Recorder
	client   *resty.Client
	timeout  time.Duration
	logger   zerolog.Logger
}

// NewHTTPInvoker creates the invoker. timeout bounds each provider call;
// adapters without a registered descriptor are ignored.
func NewHTTPInvoker(
	registry *provider.Registry,
	adapters []Adapter,
	creds provider.CredentialResolver,
	recorder *interactionlog.Recorder,
	timeout time.Duration,
	logger zerolog.Logger,
) *HTTPInvoker {
	byID := make(map[string]Adapter, len(adapters))
	for _, a := range adapters {
		byID[a.ProviderID()] = a
	}
	return &HTTPInvoker{
		registry: registry,
		adapters: byID,
		creds:    creds,
		recorder: recorder,
		client:   httpclients.NewClient("InferenceClient"),
		timeout:  timeout,
		logger:   logger,
	}
}

// Invoke calls one provider and scores the reply. Any failure (unknown
// provider, missing credential, transport error, non-2xx status) yields nil.
func (inv *HTTPInvoker) Invoke(ctx context.Context, providerID string, req orchestration.Request, taskID *int64) *orchestration.ProviderResponse {
	descriptor, ok := inv.registry.Get(providerID)
	if !ok {
		inv.logger.Warn().Str("provider", providerID).Msg("provider not registered, skipping")
		return nil
	}
	adapter, ok := inv.adapters[providerID]
	if !ok {
		inv.logger.Warn().Str("provider", providerID).Msg("no adapter for provider, skipping")
		return nil
	}

	requestSnapshot, err := json.Marshal(req)
	if err != nil {
		requestSnapshot = []byte("{}")
	}

	apiKey, err := inv.creds.Credential(ctx, providerID)
	if err != nil {
		inv.recordFailure(ctx, providerID, taskID, requestSnapshot, "credential", err)
		return nil
	}

	callCtx, cancel := context.WithTimeout(ctx, inv.timeout)
	defer cancel()

	httpReq := inv.client.R().
		SetContext(callCtx).
		SetHeader("Content-Type", "application/json")
	adapter.Decorate(httpReq, descriptor, apiKey, orchestration.EnhancePrompt(req.Prompt, descriptor.Strengths))

	start := time.Now()
	resp, err := httpReq.Post(descriptor.Endpoint)
	latency := time.Since(start)

	if err != nil {
		inv.recordFailure(ctx, providerID, taskID, requestSnapshot, "transport", err)
		return nil
	}
	if resp.IsError() {
		statusErr := fmt.Errorf("upstream returned status %d: %s", resp.StatusCode(), resp.String())
		inv.recordFailure(ctx, providerID, taskID, requestSnapshot, "status", statusErr)
		return nil
	}

	text := adapter.ExtractText(resp.Bytes())
	result := &orchestration.ProviderResponse{
		Provider:   descriptor.DisplayName,
		Text:       text,
		Confidence: orchestration.Confidence(text, descriptor.Strengths, req.TaskType),
		Cost:       orchestration.EstimateCost(providerID, text),
		LatencyMS:  latency.Milliseconds(),
	}

	responseSnapshot, err := json.Marshal(result)
	if err != nil {
		responseSnapshot = []byte("{}")
	}
	inv.recorder.Record(ctx, interactionlog.NewSuccessRecord(
		taskID, providerID, requestSnapshot, responseSnapshot, result.Cost, result.LatencyMS,
	))
	metrics.RecordProviderCall(providerID, "success", latency.Seconds(), result.Cost)

	return result
}

func (inv *HTTPInvoker) recordFailure(ctx context.Context, providerID string, taskID *int64, requestSnapshot []byte, errorType string, err error) {
	inv.logger.Error().
		Err(err).
		Str("provider", providerID).
		Str("error_type", errorType).
		Msg("provider call failed")
	inv.recorder.Record(ctx, interactionlog.NewFailureRecord(taskID, providerID, requestSnapshot, err.Error()))
	metrics.RecordProviderCall(providerID, "failure", 0, 0)
	metrics.RecordProviderError(providerID, errorType)
}
