// Package scoring turns one audit submission into reality scores, a zone,
// a profile, a narrative report, a promotion recommendation and a persona
// section. It performs no I/O; time and randomness are injected.
package scoring

import (
	"math/rand/v2"
	"sync"
	"time"
)

// RandomSource picks an index in [0, n). Implementations shared between
// goroutines must be safe for concurrent use.
type RandomSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// NewRandomSource returns the process-wide generator. It is safe for
// concurrent use.
func NewRandomSource() RandomSource {
	return globalSource{}
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// NewSeededSource returns a reproducible source, safe for concurrent use.
func NewSeededSource(seed uint64) RandomSource {
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed))}
}

// Compute runs the full pipeline. Input must already satisfy the
// validation rules: 18 unique pillar ids, self scores in 1..5 and
// non-negative figures.
func Compute(in Input, now time.Time, rnd RandomSource) Result {
	q := CurrentQuarter(now)
	pillars := RealityScores(in, q)
	c := Classify(pillars)
	report := BuildReport(in, pillars, c, q)

	return Result{
		Pillars:           pillars,
		TotalSelfScore:    c.TotalSelfScore,
		TotalRealityScore: c.TotalRealityScore,
		TotalGap:          c.TotalGap,
		ZonaKinerja:       c.Zone.Legacy(),
		ZonaPerilaku:      c.Zone.Legacy(),
		ZonaFinal:         c.Zone,
		Profil:            c.Profile,
		AuditReport:       report,
		Prodem:            Recommend(in, c, q),
		Magic:             BuildMagic(in, c.Profile, report.CoachingPoints, rnd),
	}
}
