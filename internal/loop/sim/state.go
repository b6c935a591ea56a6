package sim

import (
	"time"

	"github.com/google/uuid"
)

// Phase is the session's position in its lifecycle.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseLost          // Terminal
)

// String returns the phase name used in logs.
func (p Phase) String() string {
	if p == PhaseLost {
		return "lost"
	}
	return "playing"
}

// Session is the mutable state of one run. It is created once and advanced
// by Update every frame until the process exits.
type Session struct {
	ID        uuid.UUID
	Health    int       // Never increases, never below zero
	Lost      bool      // Set once when Health reaches zero, never cleared
	StartTime time.Time // Origin for difficulty scaling
}

// NewSession creates a session with full health starting at now.
func NewSession(health int, now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		Health:    health,
		StartTime: now,
	}
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	if s.Lost {
		return PhaseLost
	}
	return PhasePlaying
}

// Elapsed returns the time since the session started.
// Clocks running backwards are treated as no time passed.
func (s *Session) Elapsed(now time.Time) time.Duration {
	return max(now.Sub(s.StartTime), 0)
}
