package audit

import (
	"time"

	"aisg/internal/domain/scoring"
)

// Submission is the flat wire form of a scoring.Input, one field per
// quarter metric.
type Submission struct {
	Name      string `json:"nama"`
	JobTitle  string `json:"jabatan"`
	Branch    string `json:"cabang"`
	BirthDate string `json:"tanggalLahir"`

	MarginTimQ1 int `json:"marginTimQ1"`
	MarginTimQ2 int `json:"marginTimQ2"`
	MarginTimQ3 int `json:"marginTimQ3"`
	MarginTimQ4 int `json:"marginTimQ4"`

	NATimQ1 int `json:"naTimQ1"`
	NATimQ2 int `json:"naTimQ2"`
	NATimQ3 int `json:"naTimQ3"`
	NATimQ4 int `json:"naTimQ4"`

	MarginPribadiQ1 int `json:"marginPribadiQ1"`
	MarginPribadiQ2 int `json:"marginPribadiQ2"`
	MarginPribadiQ3 int `json:"marginPribadiQ3"`
	MarginPribadiQ4 int `json:"marginPribadiQ4"`

	NasabahPribadiQ1 int `json:"nasabahPribadiQ1"`
	NasabahPribadiQ2 int `json:"nasabahPribadiQ2"`
	NasabahPribadiQ3 int `json:"nasabahPribadiQ3"`
	NasabahPribadiQ4 int `json:"nasabahPribadiQ4"`

	scoring.Team

	Answers []scoring.PillarAnswer `json:"pillarAnswers"`
}

func (s Submission) Input() scoring.Input {
	return scoring.Input{
		Name:      s.Name,
		JobTitle:  s.JobTitle,
		Branch:    s.Branch,
		BirthDate: s.BirthDate,
		Quarters: [4]scoring.Quarter{
			{TeamMargin: s.MarginTimQ1, TeamNA: s.NATimQ1, PersonalMargin: s.MarginPribadiQ1, PersonalCustomers: s.NasabahPribadiQ1},
			{TeamMargin: s.MarginTimQ2, TeamNA: s.NATimQ2, PersonalMargin: s.MarginPribadiQ2, PersonalCustomers: s.NasabahPribadiQ2},
			{TeamMargin: s.MarginTimQ3, TeamNA: s.NATimQ3, PersonalMargin: s.MarginPribadiQ3, PersonalCustomers: s.NasabahPribadiQ3},
			{TeamMargin: s.MarginTimQ4, TeamNA: s.NATimQ4, PersonalMargin: s.MarginPribadiQ4, PersonalCustomers: s.NasabahPribadiQ4},
		},
		Team:    s.Team,
		Answers: s.Answers,
	}
}

func SubmissionOf(in scoring.Input) Submission {
	q := in.Quarters
	return Submission{
		Name:      in.Name,
		JobTitle:  in.JobTitle,
		Branch:    in.Branch,
		BirthDate: in.BirthDate,

		MarginTimQ1: q[0].TeamMargin, MarginTimQ2: q[1].TeamMargin, MarginTimQ3: q[2].TeamMargin, MarginTimQ4: q[3].TeamMargin,
		NATimQ1: q[0].TeamNA, NATimQ2: q[1].TeamNA, NATimQ3: q[2].TeamNA, NATimQ4: q[3].TeamNA,

		MarginPribadiQ1: q[0].PersonalMargin, MarginPribadiQ2: q[1].PersonalMargin,
		MarginPribadiQ3: q[2].PersonalMargin, MarginPribadiQ4: q[3].PersonalMargin,

		NasabahPribadiQ1: q[0].PersonalCustomers, NasabahPribadiQ2: q[1].PersonalCustomers,
		NasabahPribadiQ3: q[2].PersonalCustomers, NasabahPribadiQ4: q[3].PersonalCustomers,

		Team:    in.Team,
		Answers: in.Answers,
	}
}

// View is the flat read model of a stored audit. Pillars shadows the raw
// answers of the embedded Submission with the scored results.
type View struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Submission
	scoring.Result
	Pillars []scoring.PillarResult `json:"pillarAnswers"`
}

func (a Audit) View() View {
	return View{
		ID:         a.ID,
		CreatedAt:  a.CreatedAt,
		Submission: SubmissionOf(a.Input),
		Result:     a.Result,
		Pillars:    a.Result.Pillars,
	}
}

// ListItem is the row shape of the audit history.
type ListItem struct {
	ID                string          `json:"id"`
	CreatedAt         time.Time       `json:"createdAt"`
	Name              string          `json:"nama"`
	JobTitle          string          `json:"jabatan"`
	Branch            string          `json:"cabang"`
	TotalRealityScore int             `json:"totalRealityScore"`
	ZonaFinal         scoring.Zone    `json:"zonaFinal"`
	Profil            scoring.Profile `json:"profil"`
}

func (a Audit) ListItem() ListItem {
	return ListItem{
		ID:                a.ID,
		CreatedAt:         a.CreatedAt,
		Name:              a.Input.Name,
		JobTitle:          a.Input.JobTitle,
		Branch:            a.Input.Branch,
		TotalRealityScore: a.Result.TotalRealityScore,
		ZonaFinal:         a.Result.ZonaFinal,
		Profil:            a.Result.Profil,
	}
}
