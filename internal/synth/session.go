package synth

import (
	"math/rand"
	"time"
)

// Session owns every source of randomness for one generation run. All
// generators draw from the same seeded stream, so two sessions built with the
// same seed and anchor produce identical collections. Never shared between
// runs.
type Session struct {
	rng      *rand.Rand
	anchor   time.Time
	emailSeq int
}

func NewSession(seed int64, anchor time.Time) *Session {
	return &Session{
		rng:    rand.New(rand.NewSource(seed)),
		anchor: anchor.UTC(),
	}
}

// Anchor is the fixed "now" the run measures date windows from.
func (s *Session) Anchor() time.Time {
	return s.anchor
}

// Float returns a uniform draw in [lo, hi).
func (s *Session) Float(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Int returns a uniform draw in [lo, hi).
func (s *Session) Int(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo)
}

// Choice returns a uniformly chosen element of options.
func (s *Session) Choice(options []string) string {
	return options[s.rng.Intn(len(options))]
}

// Weighted returns an element of options chosen with the given probability
// weights. Weights must sum to 1 and match options in length; the last option
// absorbs any floating-point remainder.
func (s *Session) Weighted(options []string, weights []float64) string {
	r := s.rng.Float64()
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r < acc {
			return options[i]
		}
	}
	return options[len(options)-1]
}

// Perm returns a random permutation of [0, n).
func (s *Session) Perm(n int) []int {
	return s.rng.Perm(n)
}

// Bool returns true with probability p.
func (s *Session) Bool(p float64) bool {
	return s.rng.Float64() < p
}

// TimeBetween returns a second-granularity instant in [from, to).
func (s *Session) TimeBetween(from, to time.Time) time.Time {
	span := int(to.Unix() - from.Unix())
	if span <= 0 {
		return from
	}
	return time.Unix(from.Unix()+int64(s.rng.Intn(span)), 0).UTC()
}
