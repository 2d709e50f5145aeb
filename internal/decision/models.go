// Package decision implements the rule evaluators that turn submitted
// form/license payloads into canonical ship/review/block outcomes.
package decision

import (
	"context"
	"strings"
	"time"

	dErrors "autocomply/pkg/domain-errors"
)

// Status enumerates the canonical decision statuses.
type Status string

const (
	StatusOKToShip    Status = "ok_to_ship"
	StatusNeedsReview Status = "needs_review"
	StatusBlocked     Status = "blocked"
)

// ParseStatus validates a raw status string.
func ParseStatus(raw string) (Status, error) {
	switch Status(strings.TrimSpace(raw)) {
	case StatusOKToShip:
		return StatusOKToShip, nil
	case StatusNeedsReview:
		return StatusNeedsReview, nil
	case StatusBlocked:
		return StatusBlocked, nil
	default:
		return "", dErrors.New(dErrors.CodeValidation, "unknown status: "+raw)
	}
}

// RiskLevel enumerates per-decision risk levels. The case aggregator adds a
// distinct "mixed" value at trace level; it is never valid on one decision.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ParseRiskLevel validates a raw risk level string.
func ParseRiskLevel(raw string) (RiskLevel, error) {
	switch RiskLevel(strings.TrimSpace(raw)) {
	case RiskLow:
		return RiskLow, nil
	case RiskMedium:
		return RiskMedium, nil
	case RiskHigh:
		return RiskHigh, nil
	default:
		return "", dErrors.New(dErrors.CodeValidation, "unknown risk level: "+raw)
	}
}

// Severity classifies how strongly a fired rule affects the overall status.
type Severity string

const (
	SeverityBlock  Severity = "block"
	SeverityReview Severity = "review"
	SeverityInfo   Severity = "info"
)

// rank orders severities so the numerically higher severity always wins.
func (s Severity) rank() int {
	switch s {
	case SeverityBlock:
		return 3
	case SeverityReview:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

// Family identifies one decision rule-set.
type Family string

const (
	FamilyCSFHospital     Family = "csf_hospital"
	FamilyCSFPractitioner Family = "csf_practitioner"
	FamilyCSFFacility     Family = "csf_facility"
	FamilyOhioTDDD        Family = "ohio_tddd"
	FamilyNYPharmacy      Family = "ny_pharmacy"
	FamilyOrder           Family = "order"
)

// ParseFamily validates a raw family string.
func ParseFamily(raw string) (Family, error) {
	switch Family(strings.TrimSpace(raw)) {
	case FamilyCSFHospital:
		return FamilyCSFHospital, nil
	case FamilyCSFPractitioner:
		return FamilyCSFPractitioner, nil
	case FamilyCSFFacility:
		return FamilyCSFFacility, nil
	case FamilyOhioTDDD:
		return FamilyOhioTDDD, nil
	case FamilyNYPharmacy:
		return FamilyNYPharmacy, nil
	case FamilyOrder:
		return FamilyOrder, nil
	default:
		return "", dErrors.New(dErrors.CodeValidation, "unknown decision family: "+raw)
	}
}

// EngineFamily groups related rule-sets (e.g. csf_hospital belongs to csf).
func (f Family) EngineFamily() string {
	switch f {
	case FamilyCSFHospital, FamilyCSFPractitioner, FamilyCSFFacility:
		return "csf"
	case FamilyOhioTDDD:
		return "tddd"
	case FamilyNYPharmacy:
		return "pharmacy"
	case FamilyOrder:
		return "order"
	default:
		return string(f)
	}
}

// Payload is the flat field map submitted for one evaluation. Evaluators own
// all type coercion and never error on its contents.
type Payload map[string]string

// Get returns a trimmed field value.
func (p Payload) Get(field string) string {
	return strings.TrimSpace(p[field])
}

// Outcome is one engine's verdict for one submission. Immutable once
// returned; persisted append-only and only ever superseded by a new outcome
// sharing the same trace id.
type Outcome struct {
	ID                   string            `json:"id"`
	TraceID              string            `json:"trace_id"`
	EngineFamily         string            `json:"engine_family"`
	DecisionType         string            `json:"decision_type"`
	Status               Status            `json:"status"`
	Reason               string            `json:"reason"`
	MissingFields        []string          `json:"missing_fields"`
	RegulatoryReferences []string          `json:"regulatory_references"`
	RiskLevel            RiskLevel         `json:"risk_level"`
	RiskScore            float64           `json:"risk_score"`
	DebugInfo            map[string]string `json:"debug_info,omitempty"`
	EvaluatedAt          time.Time         `json:"evaluated_at"`
}

// EvaluateRequest asks one rule family to judge a payload. TraceID is
// optional; a new one is generated when absent.
type EvaluateRequest struct {
	Family  Family
	Payload Payload
	TraceID string
}

// Log is the append-only decision store consumed by the service and the case
// aggregator. Implementations must support concurrent appends; outcomes are
// independent rows keyed by their own id, so no read-modify-write races
// exist.
type Log interface {
	Append(ctx context.Context, outcome Outcome) error
	ListByTrace(ctx context.Context, traceID string) ([]Outcome, error)
}
