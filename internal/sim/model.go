package sim

import (
	"math"
	"math/rand"
)

const (
	minServiceMs    = 30
	baseFailureProb = 0.20
	failureProbStep = 0.06
	failureProbFlr  = 0.02
)

// ProcessModel supplies the random draws that drive a run: per-attempt
// service durations, initial priorities, and failure outcomes.
//
// Implementations are not required to be safe for concurrent use; the
// dispatcher is strictly sequential.
type ProcessModel interface {
	// ServiceMs returns a service duration in milliseconds,
	// always positive.
	ServiceMs() int

	// Priority returns an initial priority in
	// [MinPriority, MaxPriority].
	Priority() int

	// ShouldFail reports whether the given zero-based attempt fails.
	// Each call draws independently.
	ShouldFail(attempt int) bool
}

// RandModel is the production ProcessModel: service times from a
// normal distribution floored at 30ms, uniform priorities, and a
// failure probability that decays with the attempt number to model an
// improving system, floored at 2%.
type RandModel struct {
	rng      *rand.Rand
	meanMs   float64
	stddevMs float64
}

// NewRandModel builds a model over its own seeded generator, so runs
// sharing a seed reproduce the same draw sequence regardless of other
// rand users in the process.
func NewRandModel(meanMs, stddevMs int, seed int64) *RandModel {
	return &RandModel{
		rng:      rand.New(rand.NewSource(seed)),
		meanMs:   float64(meanMs),
		stddevMs: float64(stddevMs),
	}
}

func (m *RandModel) ServiceMs() int {
	v := m.rng.NormFloat64()*m.stddevMs + m.meanMs
	return int(math.Round(math.Max(minServiceMs, v)))
}

func (m *RandModel) Priority() int {
	return MinPriority + m.rng.Intn(MaxPriority-MinPriority+1)
}

func (m *RandModel) ShouldFail(attempt int) bool {
	p := math.Max(failureProbFlr, baseFailureProb-failureProbStep*float64(attempt))
	return m.rng.Float64() < p
}
