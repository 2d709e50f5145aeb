package handler

import (
	"time"

	"autocomply/internal/decision"
)

// EvaluateResponse is the HTTP response for POST /decision/evaluate.
// status, trace_id, and risk_level are stable contract fields; debug_info is
// explicitly non-contractual and may change shape without notice.
type EvaluateResponse struct {
	ID                   string            `json:"id"`
	TraceID              string            `json:"trace_id"`
	EngineFamily         string            `json:"engine_family"`
	DecisionType         string            `json:"decision_type"`
	Status               string            `json:"status"`
	Reason               string            `json:"reason"`
	RiskLevel            string            `json:"risk_level"`
	RiskScore            float64           `json:"risk_score"`
	MissingFields        []string          `json:"missing_fields"`
	RegulatoryReferences []string          `json:"regulatory_references"`
	DebugInfo            map[string]string `json:"debug_info,omitempty"`
	EvaluatedAt          time.Time         `json:"evaluated_at"`
}

// FromOutcome converts a domain outcome to an HTTP response.
func FromOutcome(outcome *decision.Outcome) *EvaluateResponse {
	return &EvaluateResponse{
		ID:                   outcome.ID,
		TraceID:              outcome.TraceID,
		EngineFamily:         outcome.EngineFamily,
		DecisionType:         outcome.DecisionType,
		Status:               string(outcome.Status),
		Reason:               outcome.Reason,
		RiskLevel:            string(outcome.RiskLevel),
		RiskScore:            outcome.RiskScore,
		MissingFields:        outcome.MissingFields,
		RegulatoryReferences: outcome.RegulatoryReferences,
		DebugInfo:            outcome.DebugInfo,
		EvaluatedAt:          outcome.EvaluatedAt,
	}
}
