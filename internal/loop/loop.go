// Package loop hosts a driving session on a terminal: it reads keys, feeds
// contact transitions to the frame core and draws the scene, once per frame.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/roadrush/internal/audio"
	"github.com/tomz197/roadrush/internal/config"
	"github.com/tomz197/roadrush/internal/draw"
	"github.com/tomz197/roadrush/internal/input"
	"github.com/tomz197/roadrush/internal/logger"
)

// Options configures a hosted session.
type Options struct {
	Tuning       config.Tuning
	Audio        audio.Player      // Silent when nil
	TermSizeFunc draw.TermSizeFunc // Local terminal when nil
	Logger       *log.Logger       // Discarded when nil
	Rand         *rand.Rand        // Seeded from the clock when nil
}

func (o Options) withDefaults() Options {
	if o.Audio == nil {
		o.Audio = audio.Silent{}
	}
	if o.TermSizeFunc == nil {
		o.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if o.Logger == nil {
		o.Logger = logger.Discard()
	}
	return o
}

// Run plays one session with the standard Input → Update → Draw cycle until
// the player quits, the input ends or ctx is cancelled. After a loss the
// final scene stays on screen until then.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	opts = opts.withDefaults()

	termWidth, termHeight, err := opts.TermSizeFunc()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	canvas := draw.NewCanvas(termWidth, termHeight, view)
	fw := draw.NewFrameWriter(w)
	stream := input.StartStream(r)

	now := time.Now()
	game := NewGame(opts.Tuning, opts.Audio, opts.Rand, now)
	defer game.Close()

	lg := opts.Logger.With("session", game.Session().ID)
	lg.Info("session started", "health", game.Session().Health)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)
	defer draw.ClearScreen(w)

	timer := time.NewTimer(0)
	defer timer.Stop()

	lastTime := now
	for {
		select {
		case <-ctx.Done():
			lg.Info("session closed", "reason", ctx.Err())
			return nil
		case <-timer.C:
		}

		frameStart := time.Now()
		delta := min(frameStart.Sub(lastTime), maxFrameDelta)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		in := input.ReadInput(stream)
		if in.Quit || stream.Closed() {
			lg.Info("session closed", "phase", game.Session().Phase(),
				"elapsed", game.Session().Elapsed(frameStart).Round(time.Millisecond))
			return nil
		}

		if termWidth, termHeight, err := opts.TermSizeFunc(); err == nil {
			canvas.Resize(termWidth, termHeight)
		}

		// ===== UPDATE PHASE =====
		if game.Step(in, frameStart, delta) {
			lg.Info("session lost",
				"elapsed", game.Session().Elapsed(frameStart).Round(time.Millisecond),
				"speed", game.Speed(frameStart))
		}

		// ===== DRAW PHASE =====
		if err := drawFrame(fw, canvas, game.Scene()); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}
		if err := fw.Flush(); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}

		// ===== FRAME TIMING =====
		timer.Reset(max(targetFrameTime-time.Since(frameStart), 0))
	}
}
