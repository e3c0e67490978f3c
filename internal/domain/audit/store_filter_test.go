package audit

import "testing"

func TestContainsPatternEscapesWildcards(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Rina", "%rina%"},
		{"100%", `%100\%%`},
		{"rina_w", `%rina\_w%`},
		{`a\b`, `%a\\b%`},
	}
	for _, tc := range tests {
		if got := containsPattern(tc.name); got != tc.want {
			t.Fatalf("containsPattern(%q): expected %q, got %q", tc.name, tc.want, got)
		}
	}
}
