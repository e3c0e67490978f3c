package scoring

import (
	"fmt"
	"strings"
)

const (
	coachingPointCount = 3
	monitoringPoint    = "Monitor progress mingguan dan adjust strategi sesuai data real-time"
)

// zoneCoaching holds the two canned coaching points appended per zone.
var zoneCoaching = map[Zone][2]string{
	ZoneRed: {
		"Perbaiki konsistensi kerja - minimal 1 NA per kuartal untuk stabilitas",
		"Bangun tim minimal 2 orang dalam 60 hari untuk support system",
	},
	ZoneYellow: {
		"Boost margin dengan closing lebih agresif di sisa kuartal ini",
		"Perkuat kaderisasi - minimal 1 kandidat promosi dalam 90 hari",
	},
	ZoneGreen: {
		"Maintain excellence - jadilah mentor bagi tim yang lebih junior",
		"Ekspansi jalur baru untuk diversifikasi risk",
	},
}

var zoneFocus = map[Zone]string{
	ZoneRed:    "Perbaikan urgent pada pilar kritis",
	ZoneYellow: "Optimalkan margin dan kaderisasi",
	ZoneGreen:  "Maintain excellence dan kembangkan tim",
}

type actionTemplate struct {
	period         string
	fallbackTarget string
	activity       string
	output         string
}

var actionTemplates = [3]actionTemplate{
	{
		period:         "30 Hari",
		fallbackTarget: "Stabilkan performa kuartal",
		activity:       "Daily prospecting, weekly closing target, team meeting 2x/minggu",
		output:         "Minimal 1 NA baru, 1 closing, team engagement 80%",
	},
	{
		period:         "60 Hari",
		fallbackTarget: "Optimalkan margin dan team",
		activity:       "Kaderisasi 1 kandidat, training team, boost produktivitas per member",
		output:         "1 kandidat ready promosi, margin +20% dari bulan sebelumnya",
	},
	{
		period:         "90 Hari",
		fallbackTarget: "Achieve target kuartal",
		activity:       "Review KPI bulanan, coaching 1-on-1, evaluasi struktur tim",
		output:         "Target kuartal tercapai 100%, struktur tim lengkap, ready promosi",
	},
}

var criticalQuickFix = map[int]string{
	PillarTeamBuilding: "Rekrut 1 kader dalam 30 hari",
	PillarProductivity: "Coaching intensif ke tim",
	PillarConsistency:  "Disiplin harian & tracking progress",
}

// reportInput bundles what every report section reads.
type reportInput struct {
	in      Input
	pillars []PillarResult
	c       Classification
	q       QuarterInfo
	margin  int
	na      int
	target  int
}

// BuildReport renders the structured audit report. Every section is a pure
// function of its arguments.
func BuildReport(in Input, pillars []PillarResult, c Classification, q QuarterInfo) Report {
	current := q.Of(in)
	r := reportInput{
		in:      in,
		pillars: pillars,
		c:       c,
		q:       q,
		margin:  current.TeamMargin,
		na:      current.TeamNA,
		target:  TargetMargin(in.JobTitle),
	}
	coaching := CoachingPoints(pillars, c.Zone)
	return Report{
		ExecutiveSummary: r.executiveSummary(),
		Insight:          r.insight(),
		SWOT:             r.swot(),
		CoachingPoints:   coaching,
		ActionPlan:       ActionPlan(coaching, in.Name),
		Progress:         r.progress(),
		EarlyWarnings:    r.earlyWarnings(),
		Vision:           VisionFor(c.TotalRealityScore),
	}
}

func gapType(totalGap int) string {
	switch {
	case totalGap > 0:
		return "over-claim"
	case totalGap < 0:
		return "under-claim"
	default:
		return "realistis"
	}
}

func (r reportInput) executiveSummary() string {
	var low []string
	for _, p := range r.pillars {
		if p.RealityScore <= 2 {
			low = append(low, p.PillarName)
		}
	}
	lowPillars := "Tidak ada"
	if len(low) > 0 {
		lowPillars = strings.Join(low, ", ")
	}
	return fmt.Sprintf("%s berada di zona %s dengan Reality Score %d/90. "+
		"Terdapat gap %d poin (%s) dari self-assessment, terutama pada %s. "+
		"Fokus 90 hari: %s.",
		r.in.Name, strings.ToUpper(string(r.c.Zone)), r.c.TotalRealityScore,
		abs(r.c.TotalGap), gapType(r.c.TotalGap), lowPillars,
		zoneFocus[r.c.Zone])
}

func (r reportInput) insight() string {
	trend := "perlu boost"
	if r.margin > r.target {
		trend = "over target"
	}
	character := "Perlu perbaikan konsistensi dan team building"
	if r.c.TotalRealityScore >= 75 {
		character = "Disiplin tinggi, produktif, kaderisasi kuat"
	}
	future := "Perlu fokus perbaikan sebelum promosi"
	if r.c.Zone == ZoneGreen {
		future = "Siap promosi dalam 90 hari"
	}
	return fmt.Sprintf("Posisi: %s di %s. Tim: %d orang aktif. "+
		"Margin %s: %s (%s). NA: %d. "+
		"Karakter: %s. Fit & Future: %s.",
		r.in.JobTitle, r.in.Branch, r.in.Team.Direct(),
		r.q.Label, money(r.margin), trend, r.na,
		character, future)
}

func (r reportInput) swot() SWOT {
	var s SWOT
	for _, p := range r.pillars {
		if p.RealityScore >= 4 {
			s.Strength = append(s.Strength, fmt.Sprintf("%s: Score %d/5 - %s", p.PillarName, p.RealityScore, p.Insight))
		}
	}
	for _, p := range r.pillars {
		if p.RealityScore <= 2 || p.Gap <= -2 {
			s.Weakness = append(s.Weakness, fmt.Sprintf("%s: Score %d/5 (Gap: %d) - %s", p.PillarName, p.RealityScore, p.Gap, p.Insight))
		}
	}
	if r.margin > 0 {
		s.Opportunity = append(s.Opportunity, "Momentum margin positif bisa dioptimalkan untuk ekspansi tim")
	}
	if float64(r.margin) >= float64(r.target)*0.8 {
		s.Opportunity = append(s.Opportunity, "Hampir mencapai target, sedikit lagi untuk breakthrough promosi")
	}
	if r.c.TotalGap < -2 {
		s.Threat = append(s.Threat, fmt.Sprintf("Under-claim %d poin menunjukkan gap antara persepsi dan realitas", abs(r.c.TotalGap)))
	}
	if r.in.Team.BC+r.in.Team.SBC == 0 {
		s.Threat = append(s.Threat, "Belum punya tim - risiko single point of failure tinggi")
	}

	s.Strength = orPlaceholder(s.Strength, "Perlu identifikasi kekuatan lebih lanjut")
	s.Weakness = orPlaceholder(s.Weakness, "Tidak ada weakness kritis terdeteksi")
	s.Opportunity = orPlaceholder(s.Opportunity, "Fokus pada konsistensi untuk membuka peluang baru")
	s.Threat = orPlaceholder(s.Threat, "Tidak ada threat signifikan saat ini")
	return s
}

func orPlaceholder(items []string, placeholder string) []string {
	if len(items) == 0 {
		return []string{placeholder}
	}
	return items
}

// CoachingPoints returns exactly three points: urgent critical pillars
// first, then the zone pair, padded with a monitoring point.
func CoachingPoints(pillars []PillarResult, zone Zone) []string {
	points := make([]string, 0, coachingPointCount+2)
	for _, p := range pillars {
		if isCritical(p.PillarID) && p.RealityScore <= 2 {
			points = append(points, fmt.Sprintf("Fokus urgent pada %s - skor critical (%d/5)", p.PillarName, p.RealityScore))
		}
	}
	pair, ok := zoneCoaching[zone]
	if !ok {
		pair = zoneCoaching[ZoneGreen]
	}
	points = append(points, pair[0], pair[1])
	for len(points) < coachingPointCount {
		points = append(points, monitoringPoint)
	}
	return points[:coachingPointCount]
}

// ActionPlan pairs coaching points with the 30/60/90 day templates.
func ActionPlan(coaching []string, pic string) []ActionItem {
	plan := make([]ActionItem, 0, len(actionTemplates))
	for i, tmpl := range actionTemplates {
		target := tmpl.fallbackTarget
		if i < len(coaching) && coaching[i] != "" {
			target = coaching[i]
		}
		plan = append(plan, ActionItem{
			Period:   tmpl.period,
			Target:   target,
			Activity: tmpl.activity,
			PIC:      pic,
			Output:   tmpl.output,
		})
	}
	return plan
}

func (r reportInput) progress() QuarterProgress {
	note := "Under target, perlu perhatian khusus"
	switch {
	case r.margin >= r.target:
		note = "Target tercapai!"
	case float64(r.margin) >= float64(r.target)*0.8:
		note = "Cukup, perlu ditingkatkan"
	}
	return QuarterProgress{
		Quarter:          r.q.Label,
		DaysLeft:         r.q.DaysLeft,
		TargetMargin:     r.target,
		RealizedMargin:   r.margin,
		MarginPercentage: round(percentOf(r.margin, r.target)),
		TargetNA:         TargetNAPerQuarter,
		RealizedNA:       r.na,
		NAPercentage:     round(percentOf(r.na, TargetNAPerQuarter)),
		Note:             note,
	}
}

func (r reportInput) earlyWarnings() []EarlyWarning {
	var ews []EarlyWarning
	for _, id := range CriticalPillars {
		score, ok := realityOf(r.pillars, id)
		if !ok || score > 2 {
			continue
		}
		ews = append(ews, EarlyWarning{
			Factor:    PillarName(id),
			Indicator: fmt.Sprintf("Score %d/5 (Critical)", score),
			Risk:      "Gagal bertahan di level saat ini, rawan demosi",
			QuickFix:  criticalQuickFix[id],
		})
	}
	if r.c.TotalGap >= 3 {
		ews = append(ews, EarlyWarning{
			Factor:    "Gap Self vs Reality",
			Indicator: fmt.Sprintf("Over-claim %d poin", r.c.TotalGap),
			Risk:      "Ilusi performa, tidak aware terhadap kondisi real",
			QuickFix:  "Self-reflection mingguan, feedback dari atasan",
		})
	}
	if float64(r.margin) < float64(r.target)*0.5 {
		ews = append(ews, EarlyWarning{
			Factor:    "Margin Under Target",
			Indicator: fmt.Sprintf("%d%% dari target", round(percentOf(r.margin, r.target))),
			Risk:      "Gagal memenuhi syarat bertahan di level saat ini",
			QuickFix:  "Focus closing, daily activity tracking",
		})
	}
	if len(ews) == 0 {
		ews = append(ews, EarlyWarning{
			Factor:    "No Critical Issues",
			Indicator: "Semua indikator dalam batas aman",
			Risk:      "Tidak ada risiko signifikan terdeteksi",
			QuickFix:  "Maintain current momentum",
		})
	}
	return ews
}

// VisionFor uses 50 as the lower bound of "Perlu Penyesuaian", one below the
// kuning zone floor.
func VisionFor(totalReality int) VisionAlignment {
	switch {
	case totalReality >= 75:
		return VisionAlignment{
			Status:    VisionAligned,
			Narrative: "Sudah align dengan visi pembinaan: disiplin, produktif, dan kaderisasi berjalan.",
		}
	case totalReality >= 50:
		return VisionAlignment{Status: VisionNeedsAdjust, Narrative: visionAdjustNarrative}
	default:
		return VisionAlignment{Status: VisionNotAligned, Narrative: visionAdjustNarrative}
	}
}

const visionAdjustNarrative = "Perlu penyesuaian pada pilar kaderisasi dan konsistensi agar sejalan dengan visi jangka panjang."
