package audit

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"aisg/internal/domain/scoring"
)

type Issue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries every issue found in one submission.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Field+": "+issue.Reason)
	}
	return "invalid audit input: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// Validate checks the preconditions the scoring engine relies on.
func Validate(in scoring.Input) []Issue {
	var issues []Issue
	add := func(field, reason string) {
		issues = append(issues, Issue{Field: field, Reason: reason})
	}

	if strings.TrimSpace(in.Name) == "" {
		add("nama", "is required")
	}
	if strings.TrimSpace(in.JobTitle) == "" {
		add("jabatan", "is required")
	}
	if strings.TrimSpace(in.Branch) == "" {
		add("cabang", "is required")
	}
	if _, err := time.Parse(scoring.BirthDateLayout, strings.TrimSpace(in.BirthDate)); err != nil {
		add("tanggalLahir", "must be a valid date in DD-MM-YYYY format")
	}

	for i, q := range in.Quarters {
		n := i + 1
		nonNegative(add, fmt.Sprintf("marginTimQ%d", n), q.TeamMargin)
		nonNegative(add, fmt.Sprintf("naTimQ%d", n), q.TeamNA)
		nonNegative(add, fmt.Sprintf("marginPribadiQ%d", n), q.PersonalMargin)
		nonNegative(add, fmt.Sprintf("nasabahPribadiQ%d", n), q.PersonalCustomers)
	}
	t := in.Team
	for _, c := range []struct {
		field string
		value int
	}{
		{"jumlahBC", t.BC}, {"jumlahSBC", t.SBC}, {"jumlahBsM", t.BSM}, {"jumlahSBM", t.SBM},
		{"jumlahEM", t.EM}, {"jumlahSEM", t.SEM}, {"jumlahVBM", t.VBM},
	} {
		nonNegative(add, c.field, c.value)
	}

	if len(in.Answers) != scoring.PillarCount {
		add("pillarAnswers", fmt.Sprintf("must contain exactly %d answers", scoring.PillarCount))
	}
	seen := make(map[int]bool, len(in.Answers))
	for i, a := range in.Answers {
		field := fmt.Sprintf("pillarAnswers[%d]", i)
		if a.PillarID < 1 || a.PillarID > scoring.PillarCount {
			add(field+".pillarId", fmt.Sprintf("must be between 1 and %d", scoring.PillarCount))
		} else if seen[a.PillarID] {
			add(field+".pillarId", "is duplicated")
		}
		seen[a.PillarID] = true
		if a.SelfScore < scoring.MinScore || a.SelfScore > scoring.MaxScore {
			add(field+".selfScore", fmt.Sprintf("must be between %d and %d", scoring.MinScore, scoring.MaxScore))
		}
	}
	return issues
}

func nonNegative(add func(field, reason string), field string, value int) {
	if value < 0 {
		add(field, "must be zero or greater")
	}
}

// Normalize trims identity fields and orders answers by pillar id.
func Normalize(in scoring.Input) scoring.Input {
	in.Name = strings.TrimSpace(in.Name)
	in.JobTitle = strings.TrimSpace(in.JobTitle)
	in.Branch = strings.TrimSpace(in.Branch)
	in.BirthDate = strings.TrimSpace(in.BirthDate)
	answers := make([]scoring.PillarAnswer, len(in.Answers))
	copy(answers, in.Answers)
	sort.Slice(answers, func(i, j int) bool { return answers[i].PillarID < answers[j].PillarID })
	in.Answers = answers
	return in
}
