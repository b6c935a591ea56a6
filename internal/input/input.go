// Package input turns a raw terminal byte stream into per-frame key state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered held after its last byte.
// Terminals only report presses, so holding a key relies on auto-repeat
// arriving within this window.
const keyHoldDuration = 80 * time.Millisecond

// Direction is one of the four steering signals.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Input represents the current frame's input state.
type Input struct {
	Quit  bool
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// IsPressed reports whether the given direction is held.
func (in Input) IsPressed(d Direction) bool {
	switch d {
	case Up:
		return in.Up
	case Down:
		return in.Down
	case Left:
		return in.Left
	case Right:
		return in.Right
	default:
		return false
	}
}

// keyState tracks the last time each key was seen.
type keyState struct {
	quit  time.Time
	up    time.Time
	down  time.Time
	left  time.Time
	right time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	closed bool
	state  keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains all available bytes from the stream without blocking.
func ReadInput(s *Stream) Input {
	return s.read(time.Now())
}

func (s *Stream) read(now time.Time) Input {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	parse(&s.state, buf, now)

	return Input{
		Quit:  now.Sub(s.state.quit) < keyHoldDuration,
		Up:    now.Sub(s.state.up) < keyHoldDuration,
		Down:  now.Sub(s.state.down) < keyHoldDuration,
		Left:  now.Sub(s.state.left) < keyHoldDuration,
		Right: now.Sub(s.state.right) < keyHoldDuration,
	}
}

// parse updates key timestamps from raw bytes, decoding CSI arrow sequences.
func parse(state *keyState, buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				state.up = now
				i += 2
				continue
			case 'B':
				state.down = now
				i += 2
				continue
			case 'C':
				state.right = now
				i += 2
				continue
			case 'D':
				state.left = now
				i += 2
				continue
			}
		}

		applyByte(state, b, now)
	}
}

func applyByte(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // Ctrl-C arrives as a byte in raw mode
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.up = now
	case 's', 'S', 'k', 'K':
		state.down = now
	}
}
