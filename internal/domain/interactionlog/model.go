package interactionlog

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// InteractionLog is the audit record of a single provider call attempt,
// success or failure. Records are append-only: the orchestration core never
// updates or deletes them.
type InteractionLog struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	TaskID       *int64          `gorm:"column:task_id;index"`
	Provider     string          `gorm:"column:ai_provider;not null;index"`
	RequestData  datatypes.JSON  `gorm:"column:request_data"`
	ResponseData datatypes.JSON  `gorm:"column:response_data"`
	Cost         decimal.Decimal `gorm:"column:cost;type:decimal(12,8)"`
	LatencyMS    int64           `gorm:"column:latency_ms;not null;default:0"`
	Success      bool            `gorm:"column:success;not null"`
	ErrorMessage *string         `gorm:"column:error_message"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime;index"`
}

// TableName returns the table name for InteractionLog
func (InteractionLog) TableName() string {
	return "ai_orchestration_logs"
}

// NewSuccessRecord builds the log entry for a completed provider call.
func NewSuccessRecord(taskID *int64, providerID string, requestData, responseData datatypes.JSON, cost float64, latencyMS int64) *InteractionLog {
	return &InteractionLog{
		TaskID:       taskID,
		Provider:     providerID,
		RequestData:  requestData,
		ResponseData: responseData,
		Cost:         decimal.NewFromFloat(cost),
		LatencyMS:    latencyMS,
		Success:      true,
	}
}

// NewFailureRecord builds the log entry for a failed provider call. Cost and
// latency stay zero; the response snapshot is null.
func NewFailureRecord(taskID *int64, providerID string, requestData datatypes.JSON, errorMessage string) *InteractionLog {
	return &InteractionLog{
		TaskID:       taskID,
		Provider:     providerID,
		RequestData:  requestData,
		Cost:         decimal.Zero,
		Success:      false,
		ErrorMessage: &errorMessage,
	}
}

// ProviderUsage is the aggregate of one provider's calls over a time window.
type ProviderUsage struct {
	Provider      string          `json:"provider"`
	TotalRequests int64           `json:"total_requests"`
	AvgLatencyMS  float64         `json:"avg_latency_ms"`
	SuccessRate   float64         `json:"success_rate"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	LastCheck     time.Time       `json:"last_check"`
}

// HourlyMetric is one hour bucket of a provider's call history.
type HourlyMetric struct {
	Hour         time.Time       `json:"hour"`
	Requests     int64           `json:"requests"`
	AvgLatencyMS float64         `json:"avg_latency_ms"`
	Cost         decimal.Decimal `json:"cost"`
	SuccessRate  float64         `json:"success_rate"`
}
