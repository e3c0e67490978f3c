package scoring

import "fmt"

const (
	demoteFloor        = 45
	coachingFloor      = 65
	promoteFloor       = 75
	minPromotionTeam   = 2
	coachingMarginRate = 0.75
	retainMarginRate   = 0.8
)

// Recommend applies the promotion/demotion decision order. Zone gates first,
// total reality score acts as a secondary floor.
func Recommend(in Input, c Classification, q QuarterInfo) Recommendation {
	code := LevelCode(in.JobTitle)
	margin := q.Of(in).TeamMargin
	target := TargetMargin(in.JobTitle)
	score := c.TotalRealityScore

	rec := Recommendation{
		CurrentLevel: fmt.Sprintf("%s (%s)", code, in.JobTitle),
		Strategy:     StrategyNone,
		Requirements: []Requirement{},
	}

	switch {
	case c.Zone == ZoneRed || score < demoteFloor:
		rec.Decision = DecisionDemote
		rec.Reason = fmt.Sprintf("Reality Score %d/90 berada di zona merah. Performa kritis pada beberapa pilar utama.", score)
		rec.Consequence = "Tanpa perbaikan dalam 30 hari, demosi otomatis akan diproses."
		rec.NextStep = "Coaching intensif dengan atasan langsung, monitoring weekly."

	case c.Zone == ZoneYellow || score < coachingFloor:
		rec.Decision = DecisionCoaching
		rec.Strategy = strategyFor(margin, target, coachingMarginRate)
		rec.Reason = fmt.Sprintf("Reality Score %d/90 di zona kuning. Perlu perbaikan pada margin dan kaderisasi.", score)
		rec.Consequence = "Status bertahan namun tidak eligible untuk promosi di kuartal ini."
		rec.NextStep = "Focus pada action plan 60 hari, review bi-weekly dengan atasan."

	case score >= promoteFloor && margin >= target:
		team := in.Team.Direct()
		next := NextLevel(code)
		rec.Decision = DecisionPromote
		rec.NextLevel = next
		rec.Reason = fmt.Sprintf("Reality Score %d/90 di zona hijau. Target margin kuartal tercapai (%s).", score, money(margin))
		rec.Consequence = "Promosi akan diproses di akhir kuartal jika konsistensi terjaga."
		rec.NextStep = fmt.Sprintf("Persiapkan transisi ke %s, mulai training untuk tanggung jawab baru.", next)
		rec.Requirements = []Requirement{
			{Label: "Reality Score", Value: fmt.Sprintf("%d/90", score), Met: true},
			{Label: "Margin Target", Value: fmt.Sprintf("%s / %s", money(margin), money(target)), Met: true},
			{Label: "Tim Aktif", Value: fmt.Sprintf("%d orang", team), Met: team >= minPromotionTeam},
		}

	default:
		rec.Decision = DecisionRetain
		rec.Strategy = strategyFor(margin, target, retainMarginRate)
		rec.Reason = fmt.Sprintf("Performa cukup baik (Score %d/90) namun belum memenuhi semua syarat promosi.", score)
		rec.Consequence = "Status aman, fokus pada gap yang masih ada untuk promosi periode berikutnya."
		rec.NextStep = "Implementasi action plan 90 hari, review monthly dengan atasan."
	}
	return rec
}

func strategyFor(margin, target int, rate float64) Strategy {
	if float64(margin) >= float64(target)*rate {
		return StrategySaveByMargin
	}
	return StrategySaveByStaff
}
