package core

import "time"

// RepeatGate throttles repeatable actions: an action may fire at most once
// per interval. Time is supplied by the caller so the gate follows the
// simulation clock rather than the wall clock.
type RepeatGate struct {
	interval time.Duration
	last     map[Action]time.Duration
}

// NewRepeatGate creates a gate with the given minimum spacing.
func NewRepeatGate(interval time.Duration) *RepeatGate {
	return &RepeatGate{
		interval: interval,
		last:     make(map[Action]time.Duration),
	}
}

// Interval returns the minimum spacing between firings.
func (g *RepeatGate) Interval() time.Duration {
	return g.interval
}

// Allow reports whether the action may fire at time now, and if so records
// now as its last firing.
func (g *RepeatGate) Allow(a Action, now time.Duration) bool {
	if last, ok := g.last[a]; ok && now-last < g.interval {
		return false
	}
	g.last[a] = now
	return true
}

// Reset forgets all previous firings.
func (g *RepeatGate) Reset() {
	clear(g.last)
}
