package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/tomz197/roadrush/internal/audio"
	"github.com/tomz197/roadrush/internal/config"
	"github.com/tomz197/roadrush/internal/draw"
	"github.com/tomz197/roadrush/internal/logger"
	"github.com/tomz197/roadrush/internal/loop"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
)

func main() {
	lg := logger.New(os.Stderr, logger.Options{
		Level:  config.GetEnv(config.EnvLogLevel, "info"),
		Prefix: "roadrush-ssh",
	})

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	lg.Info("ssh config", "host", host, "port", port, "hostKeyPath", hostKeyPath)

	tuning, err := config.Load(config.GetEnv(config.EnvConfigPath, ""))
	if err != nil {
		lg.Fatal("failed to load tuning", "err", err)
	}

	// Cancelled on shutdown so running sessions end cleanly.
	sessions, cancelSessions := context.WithCancel(context.Background())
	defer cancelSessions()

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			gameMiddleware(sessions, tuning, lg),
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(lg, log.InfoLevel),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		lg.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	lg.Info("starting ssh server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			lg.Fatal("server error", "err", err)
		}
	}()

	<-done
	lg.Info("shutting down server")
	cancelSessions()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		lg.Fatal("shutdown error", "err", err)
	}
}

// gameMiddleware runs an independent session for every SSH connection.
// Sound cues are sent as terminal bells.
func gameMiddleware(ctx context.Context, tuning config.Tuning, lg *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			user := lg.With("user", sess.User())
			user.Info("new game session", "terminal", pty.Term,
				"width", pty.Window.Width, "height", pty.Window.Height)

			// Create a terminal size tracker that updates on window changes
			sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

			// Listen for window size changes in a goroutine
			go func() {
				for win := range winCh {
					sizeTracker.update(win.Width, win.Height)
				}
			}()

			sessCtx, cancel := context.WithCancel(ctx)
			defer cancel()
			go func() {
				select {
				case <-sess.Context().Done():
					cancel()
				case <-sessCtx.Done():
				}
			}()

			err := loop.Run(sessCtx, bufio.NewReader(sess), sess, loop.Options{
				Tuning:       tuning,
				Audio:        audio.NewBell(sess),
				TermSizeFunc: sizeTracker.getSize,
				Logger:       user,
			})
			if err != nil {
				user.Error("game error", "err", err)
			}

			user.Info("session ended")
			next(sess)
		}
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
