package regulatory

// Seed returns the built-in catalogue used when no catalogue file is
// configured. IDs are part of the public contract: decision engines cite them
// and downstream consumers key on them.
func Seed() []Source {
	return []Source{
		{
			ID:            "ohio_tddd_rules",
			Title:         "Ohio Terminal Distributor of Dangerous Drugs Licensing",
			Jurisdiction:  "Ohio",
			AppliesTo:     []string{"hospital", "pharmacy", "facility"},
			CitationLabel: "OAC 4729:5-2-01",
			Snippet:       "No person shall possess dangerous drugs for distribution at a facility in Ohio without a valid Terminal Distributor of Dangerous Drugs (TDDD) license matching the drug categories handled.",
			Tags:          []string{"ohio", "tddd", "license", "dangerous drugs"},
			Severity:      SeverityBlock,
		},
		{
			ID:            "ohio_tddd_expiration",
			Title:         "Ohio TDDD License Renewal and Expiration",
			Jurisdiction:  "Ohio",
			AppliesTo:     []string{"hospital", "pharmacy", "facility"},
			CitationLabel: "OAC 4729:5-2-05",
			Snippet:       "A terminal distributor license expires annually and distribution against an expired license is prohibited until the license is renewed by the Ohio Board of Pharmacy.",
			Tags:          []string{"ohio", "tddd", "expiration", "renewal"},
			Severity:      SeverityBlock,
		},
		{
			ID:            "ohio_tddd_category",
			Title:         "Ohio TDDD Drug Category Limitations",
			Jurisdiction:  "Ohio",
			AppliesTo:     []string{"hospital", "pharmacy", "facility"},
			CitationLabel: "OAC 4729:5-2-03",
			Snippet:       "A terminal distributor may only possess the categories of dangerous drugs authorized by its license classification; requests outside the licensed category require board approval.",
			Tags:          []string{"ohio", "tddd", "category", "classification"},
			Severity:      SeverityReview,
		},
		{
			ID:            "ny_pharmacy_license",
			Title:         "New York Pharmacy Registration Requirements",
			Jurisdiction:  "New York",
			AppliesTo:     []string{"pharmacy"},
			CitationLabel: "NY Educ. Law § 6808",
			Snippet:       "A pharmacy must be registered with the New York State Education Department before drugs may be shipped to or dispensed from the premises.",
			Tags:          []string{"new york", "pharmacy", "registration", "license"},
			Severity:      SeverityBlock,
		},
		{
			ID:            "ny_pharmacy_expiration",
			Title:         "New York Pharmacy Registration Renewal",
			Jurisdiction:  "New York",
			AppliesTo:     []string{"pharmacy"},
			CitationLabel: "NY Educ. Law § 6808(2)",
			Snippet:       "Pharmacy registrations are issued for a three-year term; operating or receiving shipments on an expired registration is grounds for enforcement action.",
			Tags:          []string{"new york", "pharmacy", "expiration", "renewal"},
			Severity:      SeverityBlock,
		},
		{
			ID:            "dea_csf_requirements",
			Title:         "Controlled Substance Form Documentation",
			Jurisdiction:  "Federal",
			AppliesTo:     []string{"hospital", "practitioner", "facility"},
			CitationLabel: "21 CFR 1301.74",
			Snippet:       "Distributors must obtain and verify customer documentation, including DEA registration, before supplying controlled substances, and must design systems to identify suspicious orders.",
			Tags:          []string{"federal", "csf", "dea", "controlled substances", "documentation"},
			Severity:      SeverityBlock,
		},
		{
			ID:            "csf_practitioner_scope",
			Title:         "Practitioner Registration Scope",
			Jurisdiction:  "Federal",
			AppliesTo:     []string{"practitioner"},
			CitationLabel: "21 CFR 1301.13",
			Snippet:       "A practitioner may only order controlled substance schedules covered by their individual DEA registration and state professional license.",
			Tags:          []string{"federal", "practitioner", "dea", "schedules"},
			Severity:      SeverityReview,
		},
		{
			ID:            "order_suspicious_quantity",
			Title:         "Suspicious Order Monitoring",
			Jurisdiction:  "Federal",
			AppliesTo:     []string{"order"},
			CitationLabel: "21 CFR 1301.74(b)",
			Snippet:       "Orders of unusual size, orders deviating substantially from a normal pattern, and orders of unusual frequency are suspicious orders and must be reported and held for review.",
			Tags:          []string{"federal", "order", "quantity", "suspicious"},
			Severity:      SeverityReview,
		},
		{
			ID:            "federal_csa_baseline",
			Title:         "Controlled Substances Act Distribution Baseline",
			Jurisdiction:  "Federal",
			AppliesTo:     []string{"hospital", "practitioner", "facility", "pharmacy", "order"},
			CitationLabel: "21 U.S.C. § 823",
			Snippet:       "Distribution of controlled substances requires effective controls against diversion and compliance with both federal registration and applicable state licensing law.",
			Tags:          []string{"federal", "baseline", "diversion", "distribution"},
			Severity:      SeverityInfo,
		},
	}
}
