package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomz197/roadrush/internal/audio"
	"github.com/tomz197/roadrush/internal/audio/synth"
	"github.com/tomz197/roadrush/internal/config"
	"github.com/tomz197/roadrush/internal/logger"
	"github.com/tomz197/roadrush/internal/loop"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	tuning, err := config.Load(config.GetEnv(config.EnvConfigPath, ""))
	if err != nil {
		return err
	}

	lg, closeLog, err := logger.OpenFile(config.GetEnv(config.EnvLogPath, ""), logger.Options{
		Level:  config.GetEnv(config.EnvLogLevel, "info"),
		Prefix: "roadrush",
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = closeLog()
	}()

	var player audio.Player = audio.Silent{}
	if config.GetEnvBool(config.EnvAudio, true) {
		engine := synth.NewEngine()
		if err := engine.Start(); err != nil {
			lg.Warn("audio unavailable, playing silently", "err", err)
		} else {
			defer engine.Stop()
			player = engine
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reader := bufio.NewReader(os.Stdin)
	return loop.Run(ctx, reader, os.Stdout, loop.Options{
		Tuning: tuning,
		Audio:  player,
		Logger: lg,
	})
}
