// Package export renders stored audits as documents.
package export

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"aisg/internal/domain/audit"
	"aisg/internal/domain/scoring"
)

const (
	pageMargin     = 18.0
	lineHeight     = 5.5
	indent         = 7.0
	pillarsPerPage = 6
)

var monthsID = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatDateID renders a date the Indonesian way, e.g. "15 Mei 2025".
func FormatDateID(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), monthsID[t.Month()-1], t.Year())
}

var whitespace = regexp.MustCompile(`\s+`)

// FileName is the download name for an audit's PDF.
func FileName(a audit.Audit, now time.Time) string {
	name := whitespace.ReplaceAllString(strings.TrimSpace(a.Input.Name), "-")
	if name == "" {
		name = "audit"
	}
	return fmt.Sprintf("audit-%s-%s.pdf", name, now.Format("2006-01-02"))
}

type document struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

// RenderPDF writes the full audit report as an A4 document.
func RenderPDF(w io.Writer, a audit.Audit, generatedAt time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	d := &document{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	pdf.SetTitle(d.tr("Audit Report - "+a.Input.Name), false)
	pdf.SetAuthor("AISG - Audit Intelligence SG", false)
	pdf.SetSubject("Performance Audit Report", false)

	res := a.Result
	report := res.AuditReport

	d.titlePage(a, generatedAt)
	d.swotPage(report.SWOT)
	d.planPage(report.ActionPlan, res.Prodem)
	d.magicAndPillars(res.Magic, res.Pillars)
	d.progressPage(report)
	d.closingPage(generatedAt)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return pdf.Output(w)
}

func (d *document) heading(text string, size float64) {
	d.pdf.SetFont("Helvetica", "B", size)
	d.pdf.SetTextColor(20, 20, 20)
	d.pdf.MultiCell(0, size*0.5, d.tr(text), "", "L", false)
	d.pdf.Ln(2)
}

func (d *document) centered(text, style string, size float64) {
	d.pdf.SetFont("Helvetica", style, size)
	d.pdf.MultiCell(0, size*0.5, d.tr(text), "", "C", false)
}

func (d *document) line(text string) {
	d.pdf.SetFont("Helvetica", "", 10.5)
	d.pdf.MultiCell(0, lineHeight, d.tr(text), "", "L", false)
}

func (d *document) paragraph(text string) {
	d.pdf.SetFont("Helvetica", "", 10.5)
	d.pdf.MultiCell(0, lineHeight, d.tr(text), "", "J", false)
	d.pdf.Ln(2)
}

func (d *document) indented(text string) {
	left, _, _, _ := d.pdf.GetMargins()
	d.pdf.SetX(left + indent)
	d.pdf.SetFont("Helvetica", "", 10.5)
	d.pdf.MultiCell(0, lineHeight, d.tr(text), "", "L", false)
}

func (d *document) numbered(items []string) {
	for i, item := range items {
		d.indented(fmt.Sprintf("%d. %s", i+1, item))
	}
	d.pdf.Ln(3)
}

func (d *document) titlePage(a audit.Audit, generatedAt time.Time) {
	res := a.Result
	d.pdf.AddPage()
	d.centered("AUDIT INTELLIGENCE SG", "B", 22)
	d.pdf.Ln(2)
	d.centered("Performance Audit Report", "B", 16)
	d.pdf.Ln(10)

	d.pdf.SetTextColor(102, 102, 102)
	d.line("Report ID: " + a.ID)
	d.line("Generated: " + FormatDateID(generatedAt))
	d.pdf.Ln(8)

	d.heading("Personal Information", 14)
	d.line("Nama: " + a.Input.Name)
	d.line("Jabatan: " + a.Input.JobTitle)
	d.line("Cabang: " + a.Input.Branch)
	d.line("Tanggal Lahir: " + a.Input.BirthDate)
	d.pdf.Ln(6)

	d.heading("Executive Summary", 14)
	d.paragraph(res.AuditReport.ExecutiveSummary)
	d.heading("Insight Lengkap", 12)
	d.paragraph(res.AuditReport.Insight)
	d.pdf.Ln(4)

	d.heading("Performance Metrics", 14)
	d.line(fmt.Sprintf("Reality Score: %d/90", res.TotalRealityScore))
	d.line(fmt.Sprintf("Self Score: %d/90", res.TotalSelfScore))
	d.line(fmt.Sprintf("Gap: %d", res.TotalGap))
	d.line("Profil: " + string(res.Profil))
	d.line("Zona: " + strings.ToUpper(string(res.ZonaFinal)))
}

func (d *document) swotPage(s scoring.SWOT) {
	d.pdf.AddPage()
	d.heading("SWOT Analysis", 14)
	for _, section := range []struct {
		title string
		items []string
	}{
		{"Strengths:", s.Strength},
		{"Weaknesses:", s.Weakness},
		{"Opportunities:", s.Opportunity},
		{"Threats:", s.Threat},
	} {
		d.heading(section.title, 12)
		d.numbered(section.items)
	}
}

func (d *document) planPage(plan []scoring.ActionItem, rec scoring.Recommendation) {
	d.pdf.AddPage()
	d.heading("Action Plan 30-60-90", 14)
	for _, item := range plan {
		d.heading(item.Period+":", 12)
		d.indented("Target: " + item.Target)
		d.indented("Aktivitas: " + item.Activity)
		d.indented("PIC: " + item.PIC)
		d.indented("Output: " + item.Output)
		d.pdf.Ln(3)
	}
	d.pdf.Ln(4)

	d.heading("ProDem Recommendation", 14)
	d.line("Current Level: " + rec.CurrentLevel)
	d.line("Recommendation: " + string(rec.Decision))
	if rec.NextLevel != "" {
		d.line("Next Level: " + rec.NextLevel)
	}
	d.line("Strategy: " + string(rec.Strategy))
	d.paragraph("Reason: " + rec.Reason)
	d.paragraph("Konsekuensi: " + rec.Consequence)
	d.paragraph("Next Step: " + rec.NextStep)
	if len(rec.Requirements) > 0 {
		d.heading("Requirements:", 12)
		for _, r := range rec.Requirements {
			mark := "[ ]"
			if r.Met {
				mark = "[x]"
			}
			d.indented(fmt.Sprintf("%s %s: %s", mark, r.Label, r.Value))
		}
	}
}

func (d *document) magicAndPillars(m scoring.Magic, pillars []scoring.PillarResult) {
	d.pdf.AddPage()
	d.heading("Magic Section", 14)
	d.line("Julukan: " + m.Nickname)
	d.line("Zodiak: " + m.Zodiac)
	d.line("Generasi: " + string(m.Generation))
	d.pdf.Ln(3)
	d.paragraph(m.Narrative)
	d.paragraph("Zodiak Booster: " + m.Booster)
	d.paragraph(m.CoachingHighlight)
	d.paragraph(m.CallToAction)
	d.centered(`"`+m.Quote+`"`, "I", 10.5)
	d.pdf.Ln(8)

	d.heading("18 Pilar Performance", 14)
	for i, p := range pillars {
		if i > 0 && i%pillarsPerPage == 0 {
			d.pdf.AddPage()
		}
		d.pdf.SetFont("Helvetica", "B", 10.5)
		d.pdf.MultiCell(0, lineHeight, d.tr(fmt.Sprintf("%d. %s", p.PillarID, p.PillarName)), "", "L", false)
		d.indented(fmt.Sprintf("Self Score: %d/5 | Reality Score: %d/5 | Gap: %d", p.SelfScore, p.RealityScore, p.Gap))
		d.indented("Insight: " + p.Insight)
		d.pdf.Ln(2)
	}
}

func (d *document) progressPage(r scoring.Report) {
	d.pdf.AddPage()
	p := r.Progress
	d.heading("Progress Kuartal "+p.Quarter, 14)
	d.line(fmt.Sprintf("Sisa Hari: %d", p.DaysLeft))
	d.line(fmt.Sprintf("Margin: %d / %d (%d%%)", p.RealizedMargin, p.TargetMargin, p.MarginPercentage))
	d.line(fmt.Sprintf("NA: %d / %d (%d%%)", p.RealizedNA, p.TargetNA, p.NAPercentage))
	d.line("Catatan: " + p.Note)
	d.pdf.Ln(6)

	d.heading("Coaching Points", 14)
	d.numbered(r.CoachingPoints)

	d.heading("Early Warning System", 14)
	for _, w := range r.EarlyWarnings {
		d.heading(w.Factor, 11)
		d.indented("Indikator: " + w.Indicator)
		d.indented("Risiko: " + w.Risk)
		d.indented("Saran Cepat: " + w.QuickFix)
		d.pdf.Ln(2)
	}
	d.pdf.Ln(4)

	d.heading("Kesesuaian Visi", 14)
	d.line("Status: " + string(r.Vision.Status))
	d.paragraph(r.Vision.Narrative)
}

func (d *document) closingPage(generatedAt time.Time) {
	d.pdf.AddPage()
	d.pdf.SetTextColor(153, 153, 153)
	d.centered("---", "", 10)
	d.centered("This report is confidential and intended for internal use only.", "", 10)
	d.centered(fmt.Sprintf("AISG - Audit Intelligence SG © %d", generatedAt.Year()), "", 10)
}
