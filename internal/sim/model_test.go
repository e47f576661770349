package sim_test

import (
	"testing"

	"github.com/azargarov/dispatchsim/internal/sim"
)

const modelSeed = 42

func TestServiceMsFloor(t *testing.T) {
	// A tiny mean with a huge spread forces many raw draws below the
	// floor.
	m := sim.NewRandModel(30, 500, modelSeed)
	for i := 0; i < 5000; i++ {
		if got := m.ServiceMs(); got < 30 {
			t.Fatalf("draw %d: service %dms below 30ms floor", i, got)
		}
	}
}

func TestPriorityBounds(t *testing.T) {
	m := sim.NewRandModel(300, 100, modelSeed)
	seen := make(map[int]bool)
	for i := 0; i < 5000; i++ {
		p := m.Priority()
		if p < sim.MinPriority || p > sim.MaxPriority {
			t.Fatalf("draw %d: priority %d out of [%d,%d]", i, p, sim.MinPriority, sim.MaxPriority)
		}
		seen[p] = true
	}
	for p := sim.MinPriority; p <= sim.MaxPriority; p++ {
		if !seen[p] {
			t.Errorf("priority %d never drawn in 5000 tries", p)
		}
	}
}

func TestShouldFailDecaysWithAttempt(t *testing.T) {
	tests := []struct {
		name     string
		attempt  int
		min, max float64 // generous band around the expected rate
	}{
		{"Attempt0", 0, 0.17, 0.23},        // p = 0.20
		{"Attempt1", 1, 0.11, 0.17},        // p = 0.14
		{"Attempt2", 2, 0.06, 0.10},        // p = 0.08
		{"Attempt3Floor", 3, 0.01, 0.03},   // p floored at 0.02
		{"Attempt10Floor", 10, 0.01, 0.03}, // still floored
	}

	const draws = 20000
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := sim.NewRandModel(300, 100, modelSeed)
			fails := 0
			for i := 0; i < draws; i++ {
				if m.ShouldFail(tc.attempt) {
					fails++
				}
			}
			rate := float64(fails) / draws
			if rate < tc.min || rate > tc.max {
				t.Fatalf("failure rate %.4f outside [%.2f, %.2f]", rate, tc.min, tc.max)
			}
		})
	}
}

func TestModelSeedReproducibility(t *testing.T) {
	a := sim.NewRandModel(300, 100, modelSeed)
	b := sim.NewRandModel(300, 100, modelSeed)
	for i := 0; i < 200; i++ {
		if av, bv := a.ServiceMs(), b.ServiceMs(); av != bv {
			t.Fatalf("draw %d: same seed diverged, %d != %d", i, av, bv)
		}
		if ap, bp := a.Priority(), b.Priority(); ap != bp {
			t.Fatalf("draw %d: same seed diverged on priority, %d != %d", i, ap, bp)
		}
	}

	c := sim.NewRandModel(300, 100, modelSeed+1)
	d := sim.NewRandModel(300, 100, modelSeed)
	same := true
	for i := 0; i < 100; i++ {
		if c.ServiceMs() != d.ServiceMs() {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical draw sequences")
	}
}
