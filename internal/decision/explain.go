package decision

import (
	"fmt"
	"strings"

	"autocomply/internal/regulatory"
)

// statusPhrases is the exhaustive three-way mapping used by the explanation
// builder. No fallback phrase exists here: an unrecognized status is a caller
// bug and surfaces as an error.
var statusPhrases = map[Status]string{
	StatusOKToShip:    "appropriate to proceed with shipment",
	StatusNeedsReview: "not fully clear and should be reviewed",
	StatusBlocked:     "not permitted to proceed as-is",
}

// BuildExplanation renders the analyst-style explanation sentence for a
// decision. It is side-effect-free and byte-identical for identical inputs;
// explanations are embedded in audit logs and must be stable across repeated
// calls and process restarts. Callers pre-sort sources by relevance: exactly
// the first source is cited.
func BuildExplanation(status Status, jurisdiction string, sources []regulatory.Source) (string, error) {
	phrase, ok := statusPhrases[status]
	if !ok {
		return "", fmt.Errorf("unrecognized decision status %q", status)
	}

	var b strings.Builder
	if jurisdiction != "" {
		fmt.Fprintf(&b, "Based on the information provided and the current rules for %s, AutoComply AI considers this request %s.", jurisdiction, phrase)
	} else {
		fmt.Fprintf(&b, "Based on the information provided, AutoComply AI considers this request %s.", phrase)
	}

	if len(sources) > 0 {
		first := sources[0]
		fmt.Fprintf(&b, " This assessment is informed by %s (%s)", first.Title, first.CitationLabel)
		if len(sources) > 1 {
			b.WriteString(" and related regulatory guidance.")
		} else {
			b.WriteString(".")
		}
	}

	return b.String(), nil
}

// genericExplanation is the production fallback when BuildExplanation rejects
// a status: a decision response must always be returned, so degrade to the
// review-style text instead of crashing the caller.
func genericExplanation(jurisdiction string, sources []regulatory.Source) string {
	text, _ := BuildExplanation(StatusNeedsReview, jurisdiction, sources)
	return text
}
