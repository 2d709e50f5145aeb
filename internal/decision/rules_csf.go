package decision

import "strings"

// Controlled Substance Form (CSF) checklists. All three variants share the
// federal documentation baseline; they differ in whose registration anchors
// the form.

func csfHospitalChecklist() Checklist {
	return Checklist{
		Family: FamilyCSFHospital,
		Rules: []Rule{
			{
				Field:      "facility_name",
				Label:      "Facility name",
				Required:   true,
				Severity:   SeverityReview,
				References: []string{"dea_csf_requirements"},
			},
			{
				Field:      "dea_number",
				Label:      "Facility DEA registration",
				Required:   true,
				Severity:   SeverityBlock,
				References: []string{"dea_csf_requirements"},
				Check:      deaNumberWellFormed,
			},
			{
				Field:      "state_license_number",
				Label:      "State facility license",
				Required:   true,
				Severity:   SeverityReview,
				References: []string{"dea_csf_requirements"},
			},
			{
				Field:    "signer_name",
				Label:    "Authorized signer",
				Required: true,
				Severity: SeverityReview,
			},
			{
				Field:    "signer_title",
				Label:    "Signer title",
				Required: false,
				Severity: SeverityInfo,
			},
			{
				Field:    "date_signed",
				Label:    "Signature date",
				Required: true,
				Severity: SeverityReview,
				Check:    dateParsable,
			},
			{
				Field:      "schedules",
				Label:      "Requested schedules",
				Required:   false,
				Severity:   SeverityInfo,
				References: []string{"federal_csa_baseline"},
				AlwaysCite: true,
			},
		},
	}
}

func csfPractitionerChecklist() Checklist {
	return Checklist{
		Family: FamilyCSFPractitioner,
		Rules: []Rule{
			{
				Field:      "practitioner_name",
				Label:      "Practitioner name",
				Required:   true,
				Severity:   SeverityReview,
				References: []string{"dea_csf_requirements"},
			},
			{
				Field:      "dea_number",
				Label:      "Practitioner DEA registration",
				Required:   true,
				Severity:   SeverityBlock,
				References: []string{"dea_csf_requirements"},
				Check:      deaNumberWellFormed,
			},
			{
				Field:      "state_license_number",
				Label:      "State professional license",
				Required:   true,
				Severity:   SeverityReview,
				References: []string{"csf_practitioner_scope"},
			},
			{
				Field:      "schedules",
				Label:      "Requested schedules",
				Required:   false,
				Severity:   SeverityReview,
				References: []string{"csf_practitioner_scope"},
				AlwaysCite: true,
				Check:      schedulesWellFormed,
			},
			{
				Field:    "date_signed",
				Label:    "Signature date",
				Required: true,
				Severity: SeverityReview,
				Check:    dateParsable,
			},
		},
	}
}

func csfFacilityChecklist() Checklist {
	return Checklist{
		Family: FamilyCSFFacility,
		Rules: []Rule{
			{
				Field:      "facility_name",
				Label:      "Facility name",
				Required:   true,
				Severity:   SeverityReview,
				References: []string{"dea_csf_requirements"},
			},
			{
				Field:      "state_license_number",
				Label:      "State facility license",
				Required:   true,
				Severity:   SeverityBlock,
				References: []string{"dea_csf_requirements"},
			},
			{
				Field:      "dea_number",
				Label:      "Facility DEA registration",
				Required:   true,
				Severity:   SeverityReview,
				References: []string{"dea_csf_requirements"},
				Check:      deaNumberWellFormed,
			},
			{
				Field:    "date_signed",
				Label:    "Signature date",
				Required: true,
				Severity: SeverityReview,
				Check:    dateParsable,
			},
			{
				Field:      "schedules",
				Label:      "Requested schedules",
				Required:   false,
				Severity:   SeverityInfo,
				References: []string{"federal_csa_baseline"},
				AlwaysCite: true,
			},
		},
	}
}

// deaNumberWellFormed accepts the standard two-letter, seven-digit DEA
// registration shape. Malformed values are treated as missing evidence.
func deaNumberWellFormed(_ Payload, value string) CheckResult {
	v := strings.ToUpper(strings.ReplaceAll(value, " ", ""))
	if len(v) != 9 {
		return CheckResult{Missing: true, Note: "malformed DEA number: " + value}
	}
	for i, r := range v {
		if i < 2 {
			if r < 'A' || r > 'Z' {
				return CheckResult{Missing: true, Note: "malformed DEA number: " + value}
			}
			continue
		}
		if r < '0' || r > '9' {
			return CheckResult{Missing: true, Note: "malformed DEA number: " + value}
		}
	}
	return checkOK()
}

// schedulesWellFormed accepts a comma-separated list of schedule numerals.
func schedulesWellFormed(_ Payload, value string) CheckResult {
	valid := map[string]struct{}{
		"I": {}, "II": {}, "III": {}, "IV": {}, "V": {},
		"1": {}, "2": {}, "3": {}, "4": {}, "5": {},
	}
	for _, part := range strings.Split(value, ",") {
		part = strings.ToUpper(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if _, ok := valid[part]; !ok {
			return CheckResult{Note: "unknown schedule: " + part}
		}
	}
	return checkOK()
}
