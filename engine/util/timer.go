package util

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// PhaseStats accumulates the durations of one named tick phase.
type PhaseStats struct {
	name         string
	lastDuration float64

	totalDuration  float64
	executionCount int64

	minDuration float64
	maxDuration float64
}

func (s *PhaseStats) AverageDuration() float64 {
	if s.executionCount == 0 {
		return 0
	}
	return s.totalDuration / float64(s.executionCount)
}

func (s *PhaseStats) LastDuration() float64 {
	return s.lastDuration
}

func (s *PhaseStats) Count() int64 {
	return s.executionCount
}

func (s *PhaseStats) String() string {
	return fmt.Sprintf("%s last: %.3fms, avg: %.3fms, min: %.3fms, max: %.3fms (%d runs)",
		s.name, s.lastDuration, s.AverageDuration(), s.minDuration, s.maxDuration, s.executionCount)
}

func (s *PhaseStats) record(durationInMS float64) {
	s.lastDuration = durationInMS
	s.totalDuration += durationInMS
	s.executionCount++
	s.minDuration = math.Min(s.minDuration, durationInMS)
	s.maxDuration = math.Max(s.maxDuration, durationInMS)
}

// Timer measures named phases in milliseconds, reported in first-use order.
type Timer struct {
	states     map[string]*PhaseStats
	phaseNames []string
}

func NewTimer() *Timer {
	return &Timer{
		states: make(map[string]*PhaseStats),
	}
}

func (t *Timer) GetState(name string) *PhaseStats {
	return t.states[name]
}

func (t *Timer) Reset() {
	for _, state := range t.states {
		*state = PhaseStats{name: state.name, minDuration: math.Inf(1), maxDuration: math.Inf(-1)}
	}
}

func (t *Timer) String() string {
	lines := make([]string, 0, len(t.phaseNames))
	for _, name := range t.phaseNames {
		lines = append(lines, t.states[name].String())
	}
	return strings.Join(lines, "\n")
}

// Start begins a measurement; the returned func stops it and returns the duration in ms.
func (t *Timer) Start(name string) func() float64 {
	state, ok := t.states[name]
	if !ok {
		t.phaseNames = append(t.phaseNames, name)
		state = &PhaseStats{
			name:        name,
			minDuration: math.Inf(1),
			maxDuration: math.Inf(-1),
		}
		t.states[name] = state
	}
	start := time.Now()
	return func() float64 {
		durationInMS := float64(time.Since(start).Microseconds()) / 1000.0
		state.record(durationInMS)
		return durationInMS
	}
}
