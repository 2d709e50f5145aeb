package decision

import "strconv"

// suspiciousQuantityThreshold is the demo's stand-in for real suspicious
// order monitoring: anything above it is held for review.
const suspiciousQuantityThreshold = 5000

// orderChecklist covers the mock order engine. Orders never hard-block on
// their own; they escalate to review and lean on the license engines in the
// same trace for gating.
func orderChecklist() Checklist {
	return Checklist{
		Family: FamilyOrder,
		Rules: []Rule{
			{
				Field:    "order_id",
				Label:    "Order identifier",
				Required: true,
				Severity: SeverityReview,
			},
			{
				Field:    "customer_id",
				Label:    "Customer identifier",
				Required: true,
				Severity: SeverityReview,
			},
			{
				Field:      "product_category",
				Label:      "Product category",
				Required:   true,
				Severity:   SeverityReview,
				References: []string{"federal_csa_baseline"},
				AlwaysCite: true,
			},
			{
				Field:      "quantity",
				Label:      "Order quantity",
				Required:   false,
				Severity:   SeverityReview,
				References: []string{"order_suspicious_quantity"},
				Check:      quantityReasonable,
			},
		},
	}
}

func quantityReasonable(_ Payload, value string) CheckResult {
	qty, err := strconv.Atoi(value)
	if err != nil {
		return CheckResult{Missing: true, Note: "unparsable quantity: " + value}
	}
	if qty <= 0 {
		return CheckResult{Note: "non-positive quantity: " + value}
	}
	if qty > suspiciousQuantityThreshold {
		return CheckResult{Note: "quantity " + value + " exceeds suspicious order threshold"}
	}
	return checkOK()
}
