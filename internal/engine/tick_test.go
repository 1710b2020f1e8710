package engine

import "testing"

func TestCycleBoundaries(t *testing.T) {
	cases := []struct {
		tick, length uint64
		first, last  bool
		cycle        uint64
	}{
		{1, 24, true, false, 1},
		{2, 24, false, false, 1},
		{24, 24, false, true, 1},
		{25, 24, true, false, 2},
		{48, 24, false, true, 2},
		{1, 1, true, true, 1},
		{0, 24, false, false, 0},
	}
	for _, tc := range cases {
		if got := IsFirstTickOfCycle(tc.tick, tc.length); got != tc.first {
			t.Errorf("IsFirstTickOfCycle(%d, %d) = %v, want %v", tc.tick, tc.length, got, tc.first)
		}
		if got := IsLastTickOfCycle(tc.tick, tc.length); got != tc.last {
			t.Errorf("IsLastTickOfCycle(%d, %d) = %v, want %v", tc.tick, tc.length, got, tc.last)
		}
		if got := CycleNumber(tc.tick, tc.length); got != tc.cycle {
			t.Errorf("CycleNumber(%d, %d) = %v, want %v", tc.tick, tc.length, got, tc.cycle)
		}
	}
}

func TestStepFiresCallbacksInOrder(t *testing.T) {
	e := NewEngine(2)

	var trace []string
	e.OnCycleStart = func(tick uint64) { trace = append(trace, "start") }
	e.OnTick = func(tick uint64) { trace = append(trace, "tick") }
	e.OnCycleEnd = func(tick uint64) { trace = append(trace, "end") }

	e.Step() // tick 1: cycle opens
	e.Step() // tick 2: cycle closes

	want := []string{"start", "tick", "tick", "end"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Fatalf("trace = %v, want %v", trace, want)
		}
	}
}

func TestStepWithoutCallbacks(t *testing.T) {
	e := NewEngine(4)
	for i := 0; i < 10; i++ {
		e.Step()
	}
	if e.Tick != 10 {
		t.Errorf("tick = %d, want 10", e.Tick)
	}
}
