package decision

import (
	"time"

	pstrings "autocomply/pkg/platform/strings"
)

// CheckResult reports one rule check. Missing marks values that are absent or
// could not be coerced, as opposed to present values that fail the rule
// (an expired license is fired but not missing).
type CheckResult struct {
	OK      bool
	Missing bool
	Note    string
}

func checkOK() CheckResult {
	return CheckResult{OK: true}
}

// Rule is one entry in a family's fixed ordered checklist.
type Rule struct {
	Field    string
	Label    string
	Required bool
	Severity Severity

	// References are cited when the rule fires, or always when AlwaysCite is
	// set (baseline jurisdiction rules).
	References []string
	AlwaysCite bool

	// Check validates a present, non-empty value. A nil Check means presence
	// alone satisfies the rule.
	Check func(p Payload, value string) CheckResult
}

// Checklist is the fixed rule list for one decision family.
type Checklist struct {
	Family       Family
	Jurisdiction string
	Rules        []Rule
}

// Evaluate runs the checklist against a payload. It is a pure function of
// the payload plus the static rules: no I/O, no error returns. Malformed
// input degrades the status, never silently approves, and never raises.
func (c Checklist) Evaluate(p Payload) Outcome {
	outcome := Outcome{
		EngineFamily:  c.Family.EngineFamily(),
		DecisionType:  string(c.Family),
		MissingFields: []string{},
	}

	var refs []string
	var notes map[string]string
	maxFired := Severity("")
	missingSeen := make(map[string]struct{})

	for _, rule := range c.Rules {
		if rule.AlwaysCite {
			refs = append(refs, rule.References...)
		}

		value := p.Get(rule.Field)
		res := checkOK()
		switch {
		case value == "":
			if rule.Required {
				res = CheckResult{Missing: true}
			}
		case rule.Check != nil:
			res = rule.Check(p, value)
		}
		if res.OK {
			continue
		}

		// Rule fired.
		if res.Missing {
			if _, dup := missingSeen[rule.Field]; !dup {
				missingSeen[rule.Field] = struct{}{}
				outcome.MissingFields = append(outcome.MissingFields, rule.Field)
			}
		}
		if res.Note != "" {
			if notes == nil {
				notes = make(map[string]string)
			}
			notes[rule.Field] = res.Note
		}
		if !rule.AlwaysCite {
			refs = append(refs, rule.References...)
		}
		if rule.Severity.rank() > maxFired.rank() {
			maxFired = rule.Severity
		}
	}

	switch maxFired {
	case SeverityBlock:
		outcome.Status = StatusBlocked
	case SeverityReview:
		outcome.Status = StatusNeedsReview
	default:
		// Info-severity failures never gate.
		outcome.Status = StatusOKToShip
	}

	outcome.RegulatoryReferences = pstrings.DedupeAndTrim(refs)
	if outcome.RegulatoryReferences == nil {
		outcome.RegulatoryReferences = []string{}
	}
	outcome.RiskScore = adviseRiskScore(outcome.Status, len(outcome.MissingFields))
	outcome.DebugInfo = notes
	return outcome
}

// adviseRiskScore produces the advisory 0..1 score. It is never used for
// gating; status alone drives every decision.
func adviseRiskScore(status Status, missing int) float64 {
	base := 0.1
	switch status {
	case StatusNeedsReview:
		base = 0.5
	case StatusBlocked:
		base = 0.9
	}
	score := base + 0.02*float64(missing)
	if score > 1 {
		score = 1
	}
	return score
}

// dateLayouts are the accepted expiration date formats, in preference order.
var dateLayouts = []string{"2006-01-02", "01/02/2006", time.RFC3339}

// parseDate coerces an expiration date. Unparsable values are reported as
// missing rather than raising.
func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dateParsable fires, as missing, when a present date value cannot be
// coerced.
func dateParsable(_ Payload, value string) CheckResult {
	if _, ok := parseDate(value); !ok {
		return CheckResult{Missing: true, Note: "unparsable date: " + value}
	}
	return checkOK()
}

// dateNotPast builds a check that fires when a parsable date is in the past.
// Unparsable values pass here; the companion presence rule reports them.
func dateNotPast(now func() time.Time) func(Payload, string) CheckResult {
	return func(_ Payload, value string) CheckResult {
		t, ok := parseDate(value)
		if !ok {
			return checkOK()
		}
		if t.Before(now()) {
			return CheckResult{Note: "expired " + t.Format("2006-01-02")}
		}
		return checkOK()
	}
}
