package decision

// ResolveRisk maps a status to its default risk level unless the engine
// supplied an explicit override. This table is exhaustive and is the single
// place risk derivation lives; every consumer (case aggregator, responses)
// calls through it.
func ResolveRisk(status Status, explicit RiskLevel) RiskLevel {
	switch explicit {
	case RiskLow, RiskMedium, RiskHigh:
		return explicit
	}

	switch status {
	case StatusOKToShip:
		return RiskLow
	case StatusNeedsReview:
		return RiskMedium
	case StatusBlocked:
		return RiskHigh
	default:
		// Unknown status is a caller bug; degrade conservatively.
		return RiskMedium
	}
}
