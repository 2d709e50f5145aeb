package decision

import "time"

// nyPharmacyChecklist covers shipments to New York pharmacies.
// Rule priority:
//  1. Registration presence (hard block)
//  2. Registration expiration (hard block when expired)
//  3. Pharmacy identity (review)
func nyPharmacyChecklist(now func() time.Time) Checklist {
	return Checklist{
		Family:       FamilyNYPharmacy,
		Jurisdiction: "New York",
		Rules: []Rule{
			{
				Field:      "license_number",
				Label:      "NY pharmacy registration number",
				Required:   true,
				Severity:   SeverityBlock,
				References: []string{"ny_pharmacy_license"},
				AlwaysCite: true,
			},
			{
				Field:      "expiration_date",
				Label:      "Registration expiration date",
				Required:   true,
				Severity:   SeverityReview,
				References: []string{"ny_pharmacy_expiration"},
				Check:      dateParsable,
			},
			{
				Field:      "expiration_date",
				Label:      "Registration currency",
				Required:   false,
				Severity:   SeverityBlock,
				References: []string{"ny_pharmacy_expiration"},
				Check:      dateNotPast(now),
			},
			{
				Field:      "pharmacy_name",
				Label:      "Pharmacy name",
				Required:   true,
				Severity:   SeverityReview,
				References: []string{"ny_pharmacy_license"},
			},
			{
				Field:    "supervising_pharmacist",
				Label:    "Supervising pharmacist",
				Required: false,
				Severity: SeverityInfo,
			},
		},
	}
}
