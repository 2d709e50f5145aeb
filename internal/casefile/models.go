// Package casefile aggregates all decisions recorded under one trace id into
// a single case-level view. Summaries are computed on read and never stored,
// so they are always consistent with the latest recorded decisions.
package casefile

import (
	"time"

	"autocomply/internal/decision"
	"autocomply/internal/regulatory"
)

// OverallRisk is the case-level risk. Unlike per-decision risk it admits
// "mixed", a deliberately vague signal emitted when constituent risks
// disagree; it is never averaged and never picks the max.
type OverallRisk string

const (
	RiskLow    OverallRisk = "low"
	RiskMedium OverallRisk = "medium"
	RiskHigh   OverallRisk = "high"
	RiskMixed  OverallRisk = "mixed"
)

// DecisionSummary is the flattened per-engine view inside a case summary.
type DecisionSummary struct {
	ID                   string             `json:"id"`
	EngineFamily         string             `json:"engine_family"`
	DecisionType         string             `json:"decision_type"`
	Status               decision.Status    `json:"status"`
	RiskLevel            decision.RiskLevel `json:"risk_level"`
	Reason               string             `json:"reason"`
	MissingFields        []string           `json:"missing_fields"`
	RegulatoryReferences []string           `json:"regulatory_references"`
	EvaluatedAt          time.Time          `json:"evaluated_at"`
}

// Insight is the generated natural-language block on a case summary. It is
// recomputed on every read, never persisted.
type Insight struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
}

// Summary is the trace-level aggregate returned to callers.
type Summary struct {
	TraceID              string              `json:"trace_id"`
	OverallStatus        decision.Status     `json:"overall_status"`
	OverallRisk          OverallRisk         `json:"overall_risk"`
	Decisions            []DecisionSummary   `json:"decisions"`
	RegulatoryReferences []string            `json:"regulatory_references"`
	RAGSources           []regulatory.Source `json:"rag_sources"`
	Insight              Insight             `json:"insight"`
}
