package scoring

import (
	"fmt"
	"sort"
	"strings"
)

// metrics are the objective figures the pillar rules read from.
type metrics struct {
	jobTitle     string
	margin       int
	na           int
	totalTeam    int
	targetMargin int
	expectedTeam int
	margins      [4]int
}

func newMetrics(in Input, q QuarterInfo) metrics {
	current := q.Of(in)
	return metrics{
		jobTitle:     in.JobTitle,
		margin:       current.TeamMargin,
		na:           current.TeamNA,
		totalTeam:    in.Team.Total(),
		targetMargin: TargetMargin(in.JobTitle),
		expectedTeam: ExpectedTeam(in.JobTitle),
		margins:      in.TeamMargins(),
	}
}

type pillarRule func(m metrics) (score int, insight string)

// Pillars without an entry keep the self score.
var pillarRules = map[int]pillarRule{
	PillarProspecting:  prospectingRule,
	PillarTeamBuilding: teamBuildingRule,
	PillarTarget:       targetRule,
	PillarStructure:    structureRule,
	PillarProductivity: productivityRule,
	PillarConsistency:  consistencyRule,
}

// band maps v onto 5..1 using descending cutoffs for scores 5, 4, 3 and 2.
func band(v float64, c5, c4, c3, c2 float64) int {
	switch {
	case v >= c5:
		return 5
	case v >= c4:
		return 4
	case v >= c3:
		return 3
	case v >= c2:
		return 2
	default:
		return 1
	}
}

func verdict(score int, good, bad string) string {
	if score >= 4 {
		return good
	}
	return bad
}

func prospectingRule(m metrics) (int, string) {
	score := band(float64(m.na), 3, 2, 1, 0)
	if m.na <= 0 {
		return score, "Belum ada NA di kuartal ini. Fokus prospecting!"
	}
	return score, fmt.Sprintf("NA kuartal ini: %d. %s", m.na,
		verdict(score, "Prospecting bagus!", "Perlu lebih aktif mencari calon nasabah."))
}

// teamBuildingRule treats any title containing "BC" (so SBC too) as having
// no subordinates yet.
func teamBuildingRule(m metrics) (int, string) {
	subordinates := m.totalTeam
	if strings.Contains(m.jobTitle, "BC") {
		subordinates = 0
	}
	score := band(float64(subordinates), 10, 5, 2, 1)
	if subordinates == 0 {
		return score, "Belum punya tim. Kaderisasi harus jadi prioritas utama!"
	}
	return score, fmt.Sprintf("Tim: %d orang. %s", subordinates,
		verdict(score, "Kaderisasi berjalan baik.", "Perlu lebih aktif mencetak kader baru."))
}

func targetRule(m metrics) (int, string) {
	achievement := percentOf(m.margin, m.targetMargin)
	score := band(achievement, 100, 80, 60, 40)
	return score, fmt.Sprintf("Margin: %s (%d%% dari target). %s", money(m.margin), round(achievement),
		verdict(score, "Target terpenuhi!", "Perlu boost closing!"))
}

func structureRule(m metrics) (int, string) {
	completeness := 100.0
	if m.expectedTeam > 0 {
		completeness = float64(m.totalTeam) / float64(m.expectedTeam) * 100
	}
	score := band(completeness, 100, 75, 50, 25)
	return score, fmt.Sprintf("Struktur tim: %d%% lengkap. %s", round(completeness),
		verdict(score, "Struktur solid!", "Perlu lengkapi struktur tim."))
}

func productivityRule(m metrics) (int, string) {
	perMember := float64(m.margin)
	if m.totalTeam > 0 {
		perMember = float64(m.margin) / float64(m.totalTeam)
	}
	score := band(perMember, 20000, 15000, 10000, 5000)
	if m.totalTeam == 0 {
		return score, "Belum punya tim untuk diukur produktivitasnya."
	}
	return score, fmt.Sprintf("Produktivitas: %s/orang. %s", money(round(perMember)),
		verdict(score, "Tim produktif!", "Perlu tingkatkan output per member."))
}

func consistencyRule(m metrics) (int, string) {
	active := 0
	for _, v := range m.margins {
		if v > 0 {
			active++
		}
	}
	score := band(float64(active), 4, 3, 2, 1)
	return score, fmt.Sprintf("Konsistensi: %d/4 kuartal aktif. %s", active,
		verdict(score, "Disiplin terjaga!", "Perlu lebih konsisten setiap kuartal."))
}

func selfAssessedInsight(selfScore, gap int) string {
	switch {
	case gap > 1:
		return "Self-assessment cukup realistis. Pertahankan kejujuran dalam evaluasi diri."
	case gap < -1:
		return "Kemungkinan terlalu rendah menilai diri. Percaya pada kemampuan sendiri!"
	case selfScore >= 4:
		return "Performa baik, pertahankan!"
	default:
		return "Ada ruang untuk improvement."
	}
}

// RealityScores computes one PillarResult per answer, ordered by pillar id.
func RealityScores(in Input, q QuarterInfo) []PillarResult {
	answers := make([]PillarAnswer, len(in.Answers))
	copy(answers, in.Answers)
	sort.Slice(answers, func(i, j int) bool { return answers[i].PillarID < answers[j].PillarID })

	m := newMetrics(in, q)
	out := make([]PillarResult, 0, len(answers))
	for _, a := range answers {
		reality := a.SelfScore
		var insight string
		if rule, ok := pillarRules[a.PillarID]; ok {
			reality, insight = rule(m)
		} else {
			insight = selfAssessedInsight(a.SelfScore, a.SelfScore-reality)
		}
		out = append(out, PillarResult{
			PillarID:     a.PillarID,
			PillarName:   PillarName(a.PillarID),
			SelfScore:    a.SelfScore,
			RealityScore: reality,
			Gap:          a.SelfScore - reality,
			Insight:      insight,
		})
	}
	return out
}
