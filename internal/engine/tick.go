// Package engine provides the tick-based game loop. Ticks group into
// production cycles; cycle boundaries drive income and AI spending.
package engine

import (
	"log/slog"
	"time"
)

// Engine drives a game forward tick by tick.
type Engine struct {
	Tick        uint64        // Current tick counter (monotonic, never resets)
	CycleLength uint64        // Ticks per production cycle
	Speed       float64       // Multiplier: 1.0 = real-time, 0 = paused
	Interval    time.Duration // Base tick interval (default 1 second)
	Running     bool

	// Callbacks — populated during setup.
	OnTick       func(tick uint64) // Every tick
	OnCycleStart func(tick uint64) // First tick of each production cycle
	OnCycleEnd   func(tick uint64) // Last tick of each production cycle
}

// NewEngine creates a game engine with default settings.
func NewEngine(cycleLength uint64) *Engine {
	if cycleLength == 0 {
		cycleLength = 24
	}
	return &Engine{
		CycleLength: cycleLength,
		Speed:       1.0,
		Interval:    time.Second,
	}
}

// Run starts the game loop. Blocks until Stop() is called.
func (e *Engine) Run() {
	e.Running = true
	slog.Info("game engine started", "tick", e.Tick, "speed", e.Speed)

	for e.Running {
		if e.Speed <= 0 {
			// Paused — sleep briefly and check again.
			time.Sleep(100 * time.Millisecond)
			continue
		}

		start := time.Now()

		e.Step()

		elapsed := time.Since(start)
		target := time.Duration(float64(e.Interval) / e.Speed)
		if elapsed < target {
			time.Sleep(target - elapsed)
		}
	}

	slog.Info("game engine stopped", "tick", e.Tick)
}

// Stop halts the game loop.
func (e *Engine) Stop() {
	e.Running = false
}

// Step advances the game by one tick, firing cycle-boundary callbacks.
func (e *Engine) Step() {
	e.Tick++

	if IsFirstTickOfCycle(e.Tick, e.CycleLength) && e.OnCycleStart != nil {
		e.OnCycleStart(e.Tick)
	}

	if e.OnTick != nil {
		e.OnTick(e.Tick)
	}

	if IsLastTickOfCycle(e.Tick, e.CycleLength) && e.OnCycleEnd != nil {
		e.OnCycleEnd(e.Tick)
	}
}

// CycleNumber returns which production cycle a tick belongs to, starting
// at 1 for the first cycle. Tick 0 predates any cycle.
func CycleNumber(tick, cycleLength uint64) uint64 {
	if tick == 0 {
		return 0
	}
	return (tick-1)/cycleLength + 1
}

// IsFirstTickOfCycle reports whether the tick opens a production cycle.
func IsFirstTickOfCycle(tick, cycleLength uint64) bool {
	return cycleLength == 1 || tick%cycleLength == 1
}

// IsLastTickOfCycle reports whether the tick closes a production cycle.
func IsLastTickOfCycle(tick, cycleLength uint64) bool {
	return tick > 0 && tick%cycleLength == 0
}
