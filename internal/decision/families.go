package decision

import "time"

// NewChecklists builds the fixed per-family severity tables. The now func is
// injected so expiration rules stay testable with pinned clocks.
//
// Severity policy, per family:
//   - absent license identifiers block (shipping without the license is
//     prohibited outright)
//   - absent supporting documentation needs review (fail open to review,
//     never silently approve)
//   - expired licenses block
//   - advisory mismatches (category, jurisdiction, quantity) need review
func NewChecklists(now func() time.Time) map[Family]Checklist {
	if now == nil {
		now = time.Now
	}
	return map[Family]Checklist{
		FamilyCSFHospital:     csfHospitalChecklist(),
		FamilyCSFPractitioner: csfPractitionerChecklist(),
		FamilyCSFFacility:     csfFacilityChecklist(),
		FamilyOhioTDDD:        ohioTDDDChecklist(now),
		FamilyNYPharmacy:      nyPharmacyChecklist(now),
		FamilyOrder:           orderChecklist(),
	}
}
