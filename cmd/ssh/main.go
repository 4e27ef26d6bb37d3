package main

import (
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
	"github.com/google/uuid"
	"github.com/tomz197/asteroid-avoidance/internal/asset"
	"github.com/tomz197/asteroid-avoidance/internal/config"
	"github.com/tomz197/asteroid-avoidance/internal/draw"
	"github.com/tomz197/asteroid-avoidance/internal/highscore"
	"github.com/tomz197/asteroid-avoidance/internal/input"
	"github.com/tomz197/asteroid-avoidance/internal/loop"
	gameconfig "github.com/tomz197/asteroid-avoidance/internal/loop/config"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	logger, err := settings.Log.NewLogger(os.Stderr, "ssh")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", "err", workErr)
	}
	logger.Info("SSH config", "addr", settings.SSH.Addr(), "hostKeyPath", settings.SSH.HostKeyPath, "workingDir", workingDir)

	sheet, err := asset.LoadDefault()
	if err != nil {
		logger.Fatal("failed to load sprites", "err", err)
	}

	// The high score store is the only state shared between sessions.
	store, err := highscore.Open(context.Background(), settings.Store)
	if err != nil {
		logger.Fatal("failed to open high score store", "backend", settings.Store.Backend, "err", err)
	}
	defer store.Close()

	games := &sessions{
		settings: settings,
		sheet:    sheet,
		store:    store,
		logger:   logger,
	}

	opts := []ssh.Option{
		wish.WithAddress(settings.SSH.Addr()),
		wish.WithMiddleware(
			games.middleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if settings.SSH.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(settings.SSH.HostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Starting SSH server", "addr", settings.SSH.Addr())
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}

// sessions runs one independent game per SSH session.
type sessions struct {
	settings *config.Settings
	sheet    *asset.Sheet
	store    highscore.Store
	logger   *log.Logger
}

func (g *sessions) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		logger := g.logger.With("session", uuid.NewString(), "user", sess.User())
		logger.Info("new game session", "terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		screen := draw.NewTerminal(sess, sizeTracker.getSize, gameconfig.FieldWidth, gameconfig.FieldHeight, g.sheet)
		state := loop.NewState(loop.Config{
			Store:        g.store,
			Logger:       logger,
			MaxParticles: g.settings.Game.MaxParticles,
			BossMultiHit: g.settings.Game.BossMultiHit,
		})

		keys := input.StartStream(sess)
		err := loop.Run(sess.Context(), state, loop.Options{
			Renderer:       screen,
			Input:          keys,
			Logger:         logger,
			TickRate:       g.settings.Game.TickRate,
			IdleWarn:       gameconfig.InactivityWarn,
			IdleDisconnect: gameconfig.InactivityDisconnect,
		})
		keys.Close()
		_ = screen.Close()

		switch {
		case errors.Is(err, loop.ErrIdle):
			fmt.Fprintln(sess, "Disconnected due to inactivity.")
		case err != nil:
			logger.Error("game error", "err", err)
		}
		logger.Info("session ended", "score", state.Score, "highScore", state.HighScore)
		next(sess)
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
