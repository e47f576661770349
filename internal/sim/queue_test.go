package sim_test

import (
	"testing"

	"github.com/azargarov/dispatchsim/internal/sim"
)

func TestQueueOrdering(t *testing.T) {
	tests := []struct {
		name string
		jobs []sim.Job
		want []int // ExtIDs in expected pop order
	}{
		{
			name: "PriorityDescending",
			jobs: []sim.Job{
				{ExtID: 1, Priority: 3, EnqueueTS: 10},
				{ExtID: 2, Priority: 9, EnqueueTS: 11},
				{ExtID: 3, Priority: 6, EnqueueTS: 12},
			},
			want: []int{2, 3, 1},
		},
		{
			name: "FIFOWithinPriorityBand",
			jobs: []sim.Job{
				{ExtID: 1, Priority: 5, EnqueueTS: 30},
				{ExtID: 2, Priority: 5, EnqueueTS: 10},
				{ExtID: 3, Priority: 5, EnqueueTS: 20},
			},
			want: []int{2, 3, 1},
		},
		{
			name: "PriorityBeatsEnqueueOrder",
			jobs: []sim.Job{
				{ExtID: 1, Priority: 10, EnqueueTS: 99},
				{ExtID: 2, Priority: 1, EnqueueTS: 1},
			},
			want: []int{1, 2},
		},
		{
			name: "MixedBands",
			jobs: []sim.Job{
				{ExtID: 1, Priority: 2, EnqueueTS: 1},
				{ExtID: 2, Priority: 8, EnqueueTS: 4},
				{ExtID: 3, Priority: 8, EnqueueTS: 2},
				{ExtID: 4, Priority: 2, EnqueueTS: 0},
				{ExtID: 5, Priority: 5, EnqueueTS: 3},
			},
			want: []int{3, 2, 5, 4, 1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := sim.NewQueue()
			for _, j := range tc.jobs {
				q.Push(j)
			}
			for i, want := range tc.want {
				j, ok := q.Pop()
				if !ok {
					t.Fatalf("pop %d: queue unexpectedly empty", i)
				}
				if j.ExtID != want {
					t.Fatalf("pop %d: got job %d, want %d", i, j.ExtID, want)
				}
			}
			if q.Len() != 0 {
				t.Fatalf("queue not drained, %d left", q.Len())
			}
		})
	}
}

func TestQueuePopEmpty(t *testing.T) {
	q := sim.NewQueue()
	j, ok := q.Pop()
	if ok {
		t.Fatal("expected ok=false on empty queue")
	}
	if j != (sim.Job{}) {
		t.Fatalf("expected zero job, got %+v", j)
	}
}

// A retried job re-enters with a fresh enqueue timestamp and must
// queue behind same-priority jobs that were already waiting.
func TestQueueReenqueueUsesNewTimestamp(t *testing.T) {
	q := sim.NewQueue()
	q.Push(sim.Job{ExtID: 1, Priority: 5, EnqueueTS: 100})

	retried, _ := q.Pop()
	q.Push(sim.Job{ExtID: 2, Priority: 5, EnqueueTS: 150})
	retried.EnqueueTS = 200
	q.Push(retried)

	first, _ := q.Pop()
	second, _ := q.Pop()
	if first.ExtID != 2 || second.ExtID != 1 {
		t.Fatalf("got pop order (%d, %d), want (2, 1)", first.ExtID, second.ExtID)
	}
}

func TestQueueInterleavedPushPop(t *testing.T) {
	q := sim.NewQueue()
	q.Push(sim.Job{ExtID: 1, Priority: 4, EnqueueTS: 1})
	q.Push(sim.Job{ExtID: 2, Priority: 7, EnqueueTS: 2})

	if j, _ := q.Pop(); j.ExtID != 2 {
		t.Fatalf("got job %d, want 2", j.ExtID)
	}

	q.Push(sim.Job{ExtID: 3, Priority: 9, EnqueueTS: 3})
	if j, _ := q.Pop(); j.ExtID != 3 {
		t.Fatalf("got job %d, want 3", j.ExtID)
	}
	if j, _ := q.Pop(); j.ExtID != 1 {
		t.Fatalf("got job %d, want 1", j.ExtID)
	}
}
