package audittest

import "aisg/internal/domain/scoring"

// ValidInput returns a submission that passes validation.
func ValidInput() scoring.Input {
	answers := make([]scoring.PillarAnswer, 0, scoring.PillarCount)
	for id := 1; id <= scoring.PillarCount; id++ {
		answers = append(answers, scoring.PillarAnswer{PillarID: id, SelfScore: 4})
	}
	return scoring.Input{
		Name:      "Rina Wijaya",
		JobTitle:  "Senior Business Consultant (SBC)",
		Branch:    "Jakarta Selatan",
		BirthDate: "15-08-1995",
		Quarters: [4]scoring.Quarter{
			{TeamMargin: 30000, TeamNA: 2},
			{TeamMargin: 40000, TeamNA: 3},
			{TeamMargin: 20000, TeamNA: 1},
			{TeamMargin: 10000, TeamNA: 1},
		},
		Team:    scoring.Team{BC: 2, SBC: 1},
		Answers: answers,
	}
}
