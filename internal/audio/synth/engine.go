// Package synth plays synthesized music and cues on the local speaker.
package synth

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/tomz197/roadrush/internal/audio"
)

const sampleRate = beep.SampleRate(44100)

// Engine plays synthesized sounds on the local speaker through a single mixer.
// Every method is safe to call before Start or after a failed Start; they
// become no-ops.
type Engine struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	music   *beep.Ctrl
	started bool
}

// NewEngine creates an engine. Call Start to open the speaker.
func NewEngine() *Engine {
	return &Engine{
		mixer: &beep.Mixer{},
	}
}

// Start opens the speaker and begins streaming the mixer.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(e.mixer)
	e.started = true
	return nil
}

// Stop silences everything and closes the speaker.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	e.music = nil
	e.started = false
}

// PlayMusic starts the looping background tune, replacing any running one.
func (e *Engine) PlayMusic(volume float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return
	}

	ctrl := &beep.Ctrl{Streamer: withVolume(newMelody(sampleRate, themeNotes, 180*time.Millisecond), volume)}
	speaker.Lock()
	if e.music != nil {
		e.music.Streamer = nil
	}
	e.mixer.Add(ctrl)
	speaker.Unlock()
	e.music = ctrl
}

// StopMusic ends the background tune. A nil streamer makes the mixer drop it.
func (e *Engine) StopMusic() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started || e.music == nil {
		return
	}
	speaker.Lock()
	e.music.Streamer = nil
	speaker.Unlock()
	e.music = nil
}

// PlayCue mixes a one-shot cue on top of whatever is playing.
func (e *Engine) PlayCue(c audio.Cue, volume float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return
	}
	s, err := cueStreamer(sampleRate, c, volume)
	if err != nil {
		return
	}
	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
}

// cueStreamer builds the finite streamer for a cue.
func cueStreamer(sr beep.SampleRate, c audio.Cue, volume float64) (beep.Streamer, error) {
	switch c {
	case audio.CueImpact:
		thud, err := generators.SineTone(sr, 110)
		if err != nil {
			return nil, err
		}
		return withVolume(beep.Take(sr.N(120*time.Millisecond), thud), volume), nil
	case audio.CueGameOver:
		var parts []beep.Streamer
		for _, freq := range []float64{784, 659, 523, 392} {
			tone, err := generators.SineTone(sr, freq)
			if err != nil {
				return nil, err
			}
			parts = append(parts, beep.Take(sr.N(160*time.Millisecond), tone))
		}
		return withVolume(beep.Seq(parts...), volume), nil
	default:
		return nil, fmt.Errorf("unknown cue %d", c)
	}
}

// withVolume scales a streamer by volume in [0, 1].
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	volume = math.Max(0, math.Min(1, volume))
	return &effects.Gain{Streamer: s, Gain: volume - 1}
}

// themeNotes is a short major arpeggio in Hz.
var themeNotes = []float64{523.25, 659.25, 783.99, 659.25, 587.33, 698.46, 880.00, 698.46}

// melody loops a sequence of notes forever with a soft attack and release
// on every note.
type melody struct {
	sr      beep.SampleRate
	notes   []float64
	noteLen int
	pos     int
	phase   float64
}

func newMelody(sr beep.SampleRate, notes []float64, noteLen time.Duration) *melody {
	return &melody{
		sr:      sr,
		notes:   notes,
		noteLen: sr.N(noteLen),
	}
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := (m.pos / m.noteLen) % len(m.notes)
		inNote := m.pos % m.noteLen

		// Triangle envelope over each note avoids clicks between notes.
		env := 1 - math.Abs(2*float64(inNote)/float64(m.noteLen)-1)

		val := 0.5 * env * math.Sin(2*math.Pi*m.phase)
		samples[i][0] = val
		samples[i][1] = val

		m.phase += m.notes[note] / float64(m.sr)
		m.phase -= math.Floor(m.phase)
		m.pos++
	}
	return len(samples), true
}

func (m *melody) Err() error {
	return nil
}

var _ audio.Player = (*Engine)(nil)
