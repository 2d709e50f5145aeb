package audit

import "time"

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID        string
	Timestamp time.Time
	TraceID   string
	Action    string
	Family    string
	Status    string
	Detail    string
}

// Actions recorded by the decision core.
const (
	ActionDecisionEvaluated = "decision_evaluated"
	ActionCaseSummarized    = "case_summarized"
)
