// Package audio defines the music and cue commands a session issues, and the
// sinks that need no sound hardware. Speaker playback lives in audio/synth.
package audio

import (
	"io"
	"sync"
)

// Cue identifies a short feedback sound.
type Cue int

const (
	CueImpact   Cue = iota // Player hit an obstacle
	CueGameOver            // End-of-game jingle
)

// String returns the cue name used in logs.
func (c Cue) String() string {
	switch c {
	case CueImpact:
		return "impact"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Player is the set of audio commands a session issues.
type Player interface {
	PlayMusic(volume float64)
	StopMusic()
	PlayCue(c Cue, volume float64)
}

// Silent discards every command.
type Silent struct{}

func (Silent) PlayMusic(float64)    {}
func (Silent) StopMusic()           {}
func (Silent) PlayCue(Cue, float64) {}

// Bell rings the terminal bell for cues. It is the audio sink for remote
// sessions, where server-side speakers would be useless.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell creates a bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

func (b *Bell) PlayMusic(float64) {}
func (b *Bell) StopMusic()        {}

// PlayCue writes BEL unless the volume is zero.
func (b *Bell) PlayCue(_ Cue, volume float64) {
	if volume <= 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = io.WriteString(b.w, "\a")
}

var (
	_ Player = Silent{}
	_ Player = (*Bell)(nil)
)
