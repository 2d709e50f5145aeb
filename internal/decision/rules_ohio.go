package decision

import (
	"strings"
	"time"
)

// ohioTDDDCategories are the license classifications the demo understands.
var ohioTDDDCategories = map[string]struct{}{
	"dangerous_drugs":       {},
	"controlled_substances": {},
	"limited":               {},
	"full":                  {},
}

// ohioTDDDChecklist covers shipments to Ohio terminal distributors.
// Rule priority:
//  1. TDDD license presence (hard block) - shipping without one is prohibited
//  2. License expiration (hard block when expired)
//  3. Drug category match (review)
//  4. Ship-to jurisdiction sanity (review)
func ohioTDDDChecklist(now func() time.Time) Checklist {
	return Checklist{
		Family:       FamilyOhioTDDD,
		Jurisdiction: "Ohio",
		Rules: []Rule{
			{
				Field:      "license_number",
				Label:      "Ohio TDDD license number",
				Required:   true,
				Severity:   SeverityBlock,
				References: []string{"ohio_tddd_rules"},
				AlwaysCite: true,
			},
			{
				Field:      "expiration_date",
				Label:      "TDDD license expiration date",
				Required:   true,
				Severity:   SeverityReview,
				References: []string{"ohio_tddd_expiration"},
				Check:      dateParsable,
			},
			{
				Field:      "expiration_date",
				Label:      "TDDD license currency",
				Required:   false,
				Severity:   SeverityBlock,
				References: []string{"ohio_tddd_expiration"},
				Check:      dateNotPast(now),
			},
			{
				Field:      "category",
				Label:      "Licensed drug category",
				Required:   true,
				Severity:   SeverityReview,
				References: []string{"ohio_tddd_category"},
				Check:      ohioCategoryKnown,
			},
			{
				Field:      "ship_to_state",
				Label:      "Ship-to state",
				Required:   false,
				Severity:   SeverityReview,
				References: []string{"ohio_tddd_rules"},
				Check:      shipToOhio,
			},
		},
	}
}

func ohioCategoryKnown(_ Payload, value string) CheckResult {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(value), " ", "_"))
	if _, ok := ohioTDDDCategories[key]; !ok {
		return CheckResult{Note: "unrecognized TDDD category: " + value}
	}
	return checkOK()
}

func shipToOhio(_ Payload, value string) CheckResult {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "oh", "ohio":
		return checkOK()
	default:
		return CheckResult{Note: "ship-to state " + value + " does not match an Ohio TDDD evaluation"}
	}
}
