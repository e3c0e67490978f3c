package scoring

// ZoneFor bands a total reality score: [75,90] hijau, [51,74] kuning,
// anything lower merah.
func ZoneFor(totalReality int) Zone {
	switch {
	case totalReality >= greenZoneMin:
		return ZoneGreen
	case totalReality >= yellowZoneMin:
		return ZoneYellow
	default:
		return ZoneRed
	}
}

func realityOf(pillars []PillarResult, id int) (int, bool) {
	for _, p := range pillars {
		if p.PillarID == id {
			return p.RealityScore, true
		}
	}
	return 0, false
}

// criticalScore defaults a missing critical pillar to 1.
func criticalScore(pillars []PillarResult, id int) int {
	if score, ok := realityOf(pillars, id); ok && score > 0 {
		return score
	}
	return 1
}

// ClassifyProfile applies the profile rules in order; the first match wins.
func ClassifyProfile(totalReality int, pillars []PillarResult) Profile {
	sum := 0
	for _, id := range CriticalPillars {
		sum += criticalScore(pillars, id)
	}
	avgCritical := float64(sum) / float64(len(CriticalPillars))
	productivity := criticalScore(pillars, PillarProductivity)

	switch {
	case totalReality >= 75 && avgCritical >= 4:
		return ProfileLeader
	case totalReality >= 60 && productivity >= 4:
		return ProfilePerformer
	case avgCritical >= 4:
		return ProfileVisionary
	default:
		return ProfileAtRisk
	}
}

// Classify totals the pillar results and derives zone and profile.
func Classify(pillars []PillarResult) Classification {
	var c Classification
	for _, p := range pillars {
		c.TotalSelfScore += p.SelfScore
		c.TotalRealityScore += p.RealityScore
	}
	c.TotalGap = c.TotalSelfScore - c.TotalRealityScore
	c.Zone = ZoneFor(c.TotalRealityScore)
	c.Profile = ClassifyProfile(c.TotalRealityScore, pillars)
	return c
}
