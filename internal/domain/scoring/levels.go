package scoring

import (
	"regexp"
	"strings"
)

type Level string

const (
	LevelBC  Level = "BC"
	LevelSBC Level = "SBC"
	LevelBSM Level = "BSM"
	LevelSBM Level = "SBM"
	LevelEM  Level = "EM"
	LevelSEM Level = "SEM"
	LevelVBM Level = "VBM"
	// LevelUnknown is returned when no pattern matches the job title.
	LevelUnknown Level = ""
)

type levelRule struct {
	patterns []string
	level    Level
}

// levelRules is evaluated top to bottom and the first containing pattern
// wins. Codes that are substrings of other codes (BC in SBC, EM in SEM)
// come after the longer codes.
var levelRules = []levelRule{
	{patterns: []string{"SBC"}, level: LevelSBC},
	{patterns: []string{"SBM"}, level: LevelSBM},
	{patterns: []string{"SEM"}, level: LevelSEM},
	{patterns: []string{"VBM"}, level: LevelVBM},
	{patterns: []string{"BSM", "BsM"}, level: LevelBSM},
	{patterns: []string{"EM"}, level: LevelEM},
	{patterns: []string{"BC"}, level: LevelBC},
}

type levelTerms struct {
	targetMargin int
	expectedTeam int
}

// Quarterly margin targets are the annual target divided by four, except
// BC which carries a flat quarterly figure.
var termsByLevel = map[Level]levelTerms{
	LevelBC:  {targetMargin: 5000, expectedTeam: 0},
	LevelSBC: {targetMargin: 125000 / 4, expectedTeam: 3},
	LevelBSM: {targetMargin: 200000 / 4, expectedTeam: 10},
	LevelSBM: {targetMargin: 300000 / 4, expectedTeam: 20},
	LevelEM:  {targetMargin: 400000 / 4, expectedTeam: 30},
	LevelSEM: {targetMargin: 500000 / 4, expectedTeam: 40},
	LevelVBM: {targetMargin: 600000 / 4, expectedTeam: 50},
}

var unknownLevelTerms = levelTerms{targetMargin: 10000, expectedTeam: 5}

// ResolveLevel maps a free-text job title onto a hierarchy level.
func ResolveLevel(jobTitle string) Level {
	for _, rule := range levelRules {
		for _, p := range rule.patterns {
			if strings.Contains(jobTitle, p) {
				return rule.level
			}
		}
	}
	return LevelUnknown
}

func termsFor(jobTitle string) levelTerms {
	if terms, ok := termsByLevel[ResolveLevel(jobTitle)]; ok {
		return terms
	}
	return unknownLevelTerms
}

// TargetMargin is the quarterly team margin target for a job title.
func TargetMargin(jobTitle string) int {
	return termsFor(jobTitle).targetMargin
}

// ExpectedTeam is the head count a complete structure has for a job title.
func ExpectedTeam(jobTitle string) int {
	return termsFor(jobTitle).expectedTeam
}

var levelCodePattern = regexp.MustCompile(`\(([A-Z]+)\)`)

// LevelCode extracts the parenthesized uppercase abbreviation from a job
// title, e.g. "Senior Business Consultant (SBC)" -> "SBC". Defaults to BC.
func LevelCode(jobTitle string) string {
	m := levelCodePattern.FindStringSubmatch(jobTitle)
	if len(m) < 2 {
		return string(LevelBC)
	}
	return m[1]
}

var nextLevel = map[string]string{
	"BC":  "SBC",
	"SBC": "BSM/BsM",
	"BSM": "SBM",
	"BsM": "SBM",
	"SBM": "EM",
	"EM":  "SEM",
	"SEM": "VBM",
	"VBM": "BM",
}

// NextLevel returns the promotion target for a level code.
func NextLevel(code string) string {
	if next, ok := nextLevel[code]; ok {
		return next
	}
	return "Next Level"
}
