// Package loop provides the fixed-tick game loop and the game state machine.
package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/asteroid-avoidance/internal/loop/config"
)

// ErrIdle is returned by Run when the player stayed inactive past the
// disconnect threshold.
var ErrIdle = errors.New("player inactive")

// Options configures Run.
type Options struct {
	Renderer Renderer
	Input    InputSource
	Logger   *log.Logger

	TickRate int // Ticks per second; 0 uses config.TickRate

	// Inactivity limits for remote sessions; zero disables them.
	IdleWarn       time.Duration
	IdleDisconnect time.Duration
}

// Run drives the game with the standard Input → Update → Draw cycle until
// the player quits or ctx is cancelled. A panic inside the loop is
// recovered and returned as an error so the caller can restore the terminal.
func Run(ctx context.Context, s *State, opts Options) (err error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Error("game loop panic", "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("game loop panic: %v", r)
		}
	}()

	tickRate := opts.TickRate
	if tickRate <= 0 {
		tickRate = config.TickRate
	}
	frameTime := time.Second / time.Duration(tickRate)

	s.LoadHighScore(ctx)
	lastInput := time.Now()

	for {
		frameStart := time.Now()
		if ctx.Err() != nil {
			return nil
		}

		// ===== INPUT PHASE =====
		in := opts.Input.Poll()
		if s.HandleInput(ctx, in) {
			logger.Info("player quit", "phase", s.Phase, "score", s.Score)
			return nil
		}
		if len(in.Pressed) > 0 {
			lastInput = frameStart
		}
		idle := frameStart.Sub(lastInput)
		if opts.IdleDisconnect > 0 && idle > opts.IdleDisconnect {
			logger.Info("disconnecting inactive player", "idle", idle.Round(time.Second))
			return ErrIdle
		}

		// ===== UPDATE PHASE =====
		s.Tick(ctx, in)

		// ===== DRAW PHASE =====
		if err := opts.Renderer.Begin(); err != nil {
			return fmt.Errorf("begin frame: %w", err)
		}
		s.Draw(opts.Renderer)
		if opts.IdleWarn > 0 && idle > opts.IdleWarn {
			remaining := (opts.IdleDisconnect - idle).Round(time.Second)
			opts.Renderer.Text(fmt.Sprintf("INACTIVE - DISCONNECTING IN %s", remaining),
				config.FieldWidth/2, config.FieldHeight-40, warnStyle)
		}
		if err := opts.Renderer.End(); err != nil {
			return fmt.Errorf("end frame: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < frameTime {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(frameTime - elapsed):
			}
		}
	}
}
