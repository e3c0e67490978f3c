package audit

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"aisg/internal/domain/scoring"
)

func TestSubmissionFlatFieldsMapToQuarters(t *testing.T) {
	raw := `{"nama":"Rina","jabatan":"Business Consultant (BC)","cabang":"Bandung","tanggalLahir":"01-02-1990",
		"marginTimQ1":1000,"marginTimQ4":4000,"naTimQ2":3,"marginPribadiQ3":700,"nasabahPribadiQ4":9,
		"jumlahBC":2,"jumlahBsM":1,"pillarAnswers":[{"pillarId":1,"selfScore":3}]}`
	var s Submission
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	in := s.Input()

	want := [4]scoring.Quarter{
		{TeamMargin: 1000},
		{TeamNA: 3},
		{PersonalMargin: 700},
		{TeamMargin: 4000, PersonalCustomers: 9},
	}
	if diff := cmp.Diff(want, in.Quarters); diff != "" {
		t.Fatalf("quarters mismatch (-want +got):\n%s", diff)
	}
	if in.Team.BC != 2 || in.Team.BSM != 1 {
		t.Fatalf("unexpected team %+v", in.Team)
	}
	if diff := cmp.Diff(in, SubmissionOf(in).Input()); diff != "" {
		t.Fatalf("submission round trip changed input:\n%s", diff)
	}
}

func TestViewExposesScoredPillars(t *testing.T) {
	a := Audit{
		ID: "a1",
		Input: scoring.Input{
			Name:    "Rina",
			Answers: []scoring.PillarAnswer{{PillarID: 1, SelfScore: 5}},
		},
		Result: scoring.Result{
			Pillars:   []scoring.PillarResult{{PillarID: 1, SelfScore: 5, RealityScore: 3, Gap: 2}},
			ZonaFinal: scoring.ZoneYellow,
		},
	}
	body, err := json.Marshal(a.View())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["nama"] != "Rina" || decoded["zonaFinal"] != "kuning" {
		t.Fatalf("missing flat fields: %v", decoded)
	}
	pillars, ok := decoded["pillarAnswers"].([]any)
	if !ok || len(pillars) != 1 {
		t.Fatalf("expected one pillar, got %v", decoded["pillarAnswers"])
	}
	first := pillars[0].(map[string]any)
	if first["realityScore"] != float64(3) {
		t.Fatalf("expected scored pillar, got %v", first)
	}
}
