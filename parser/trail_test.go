package parser

import "testing"

func TestStateTrailAppendsNewStates(t *testing.T) {
	tr := newStateTrail(0)
	if err := tr.push(1); err != nil {
		t.Fatalf("push: %v", err)
	}
	if err := tr.push(2); err != nil {
		t.Fatalf("push: %v", err)
	}
	got := tr.visitedDescending()
	want := []int{2, 1, 0}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestStateTrailTruncatesOnRevisit(t *testing.T) {
	tr := newStateTrail(0)
	_ = tr.push(1)
	_ = tr.push(2)
	_ = tr.push(1) // revisiting state 1 drops state 2
	got := tr.visitedDescending()
	want := []int{1, 0}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestStateTrailNeverDuplicates(t *testing.T) {
	tr := newStateTrail(0)
	for _, s := range []int{1, 2, 3, 2, 1, 4} {
		if err := tr.push(s); err != nil {
			t.Fatalf("push(%d): %v", s, err)
		}
	}
	seen := map[int]bool{}
	for _, s := range tr.visitedDescending() {
		if seen[s] {
			t.Fatalf("trail contains duplicate state %d", s)
		}
		seen[s] = true
	}
}

func TestStateTrailOverflow(t *testing.T) {
	tr := newStateTrail(0)
	for i := 1; i < trailCapacity; i++ {
		if err := tr.push(i); err != nil {
			t.Fatalf("push(%d): %v", i, err)
		}
	}
	if err := tr.push(trailCapacity + 100); err == nil {
		t.Fatalf("expected overflow error past %d distinct states", trailCapacity)
	}
}
