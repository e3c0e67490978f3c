package export

import (
	"bytes"
	"testing"
	"time"

	"aisg/internal/domain/audit"
	"aisg/internal/domain/audit/audittest"
	"aisg/internal/domain/scoring"
)

func sampleAudit() audit.Audit {
	in := audittest.ValidInput()
	now := time.Date(2025, time.May, 15, 10, 0, 0, 0, time.UTC)
	return audit.Audit{
		ID:        "3f1f7c1e-9a55-4f39-9a57-0d9b8d6c2a10",
		CreatedAt: now,
		Input:     in,
		Result:    scoring.Compute(in, now, scoring.NewSeededSource(7)),
	}
}

func TestRenderPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPDF(&buf, sampleAudit(), time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("expected PDF header, got %q", buf.Bytes()[:8])
	}
	if buf.Len() < 2000 {
		t.Fatalf("expected a multi-page document, got %d bytes", buf.Len())
	}
}

func TestRenderPDFWithoutRequirements(t *testing.T) {
	a := sampleAudit()
	a.Result.Prodem.Requirements = nil
	a.Result.Prodem.NextLevel = ""
	var buf bytes.Buffer
	if err := RenderPDF(&buf, a, time.Now()); err != nil {
		t.Fatalf("render failed: %v", err)
	}
}

func TestFileName(t *testing.T) {
	a := sampleAudit()
	a.Input.Name = "  Rina   Wijaya Putri "
	got := FileName(a, time.Date(2025, time.March, 9, 23, 0, 0, 0, time.UTC))
	if got != "audit-Rina-Wijaya-Putri-2025-03-09.pdf" {
		t.Fatalf("unexpected file name %q", got)
	}
}

func TestFormatDateID(t *testing.T) {
	if got := FormatDateID(time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC)); got != "15 Mei 2025" {
		t.Fatalf("expected 15 Mei 2025, got %q", got)
	}
}
