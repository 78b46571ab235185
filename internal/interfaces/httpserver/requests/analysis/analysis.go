package analysis

// AnalysisRequest is the payload for POST /v1/analysis.
type AnalysisRequest struct {
	Prompt   string `json:"prompt" binding:"required"`
	TaskType string `json:"task_type"`
	// DataContext is forwarded to the orchestration layer untouched.
	DataContext map[string]interface{} `json:"data_context"`
	// RequiresMultipleProviders is advisory; routing already fans out per
	// task type.
	RequiresMultipleProviders bool `json:"requires_multiple_providers"`
	// TaskID links interaction log records to an upstream business task.
	TaskID *int64 `json:"task_id"`
}
