// Package stats tracks running statistics over many simulated games,
// chiefly the distribution of winning turn counts.
package stats

import "math"

const (
	Epsilon = 1e-6
)

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Statistic is a running mean/variance accumulator (Welford's
// algorithm), so batch runners never have to hold every observation.
type Statistic struct {
	totalIterations int
	last            float64

	// For Welford's algorithm:
	oldM float64
	newM float64
	oldS float64
	newS float64
}

func (s *Statistic) Push(val float64) {
	s.last = val
	s.totalIterations++
	if s.totalIterations == 1 {
		s.oldM = val
		s.newM = val
		s.oldS = 0
	} else {
		s.newM = s.oldM + (val-s.oldM)/float64(s.totalIterations)
		s.newS = s.oldS + (val-s.oldM)*(val-s.newM)
		s.oldM = s.newM
		s.oldS = s.newS
	}
}

func (s *Statistic) Mean() float64 {
	if s.totalIterations > 0 {
		return s.newM
	}
	return 0.0
}

func (s *Statistic) Variance() float64 {
	if s.totalIterations <= 1 {
		return 0.0
	}
	return s.newS / float64(s.totalIterations-1)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

func (s *Statistic) Last() float64 {
	return s.last
}

func (s *Statistic) N() int {
	return s.totalIterations
}

// ConfidenceInterval returns the bounds of the two-tailed confidence
// interval on the mean, at the given confidence level in percent
// (e.g. 95 or 99).
func (s *Statistic) ConfidenceInterval(level float64) (low, high float64) {
	if s.totalIterations < 2 {
		return s.Mean(), s.Mean()
	}
	margin := ZVal(level) * s.Stdev() / math.Sqrt(float64(s.totalIterations))
	return s.Mean() - margin, s.Mean() + margin
}
