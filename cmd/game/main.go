package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/asteroid-avoidance/internal/asset"
	"github.com/tomz197/asteroid-avoidance/internal/audio"
	"github.com/tomz197/asteroid-avoidance/internal/config"
	"github.com/tomz197/asteroid-avoidance/internal/draw"
	"github.com/tomz197/asteroid-avoidance/internal/highscore"
	"github.com/tomz197/asteroid-avoidance/internal/input"
	"github.com/tomz197/asteroid-avoidance/internal/loop"
	gameconfig "github.com/tomz197/asteroid-avoidance/internal/loop/config"
	"github.com/tomz197/asteroid-avoidance/internal/tui"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs go to a file.
	logFile, err := settings.Log.OpenFile()
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger, err := settings.Log.NewLogger(logFile, "game")
	if err != nil {
		return err
	}

	sheet, err := asset.LoadDefault()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := highscore.Open(ctx, settings.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	sound, closeAudio, err := openAudio(settings.Audio, logger)
	if err != nil {
		return err
	}
	defer closeAudio()

	state := loop.NewState(loop.Config{
		Audio:        sound,
		Store:        store,
		Logger:       logger,
		MaxParticles: settings.Game.MaxParticles,
		BossMultiHit: settings.Game.BossMultiHit,
	})
	opts := loop.Options{Logger: logger, TickRate: settings.Game.TickRate}

	logger.Info("starting", "display", settings.Display.Backend, "store", settings.Store.Backend)
	if settings.Display.Backend == "tcell" {
		return runTcell(ctx, state, opts, sheet)
	}
	return runANSI(ctx, state, opts, sheet)
}

// openAudio loads the sound bank and starts the speaker. Sound files from a
// configured directory are required; a missing audio device only silences
// the game.
func openAudio(s config.AudioSettings, logger *log.Logger) (loop.Audio, func(), error) {
	if !s.Enabled {
		return loop.NopAudio{}, func() {}, nil
	}

	var (
		bank *audio.Bank
		err  error
	)
	if s.Dir != "" {
		bank, err = audio.Load(s.Dir, logger)
	} else {
		bank, err = audio.Synthesize(nil, logger)
	}
	if err != nil {
		return nil, nil, err
	}

	if err := bank.Start(); err != nil {
		logger.Warn("audio disabled", "err", err)
		return loop.NopAudio{}, func() {}, nil
	}
	return bank, bank.Close, nil
}

func runANSI(ctx context.Context, state *loop.State, opts loop.Options, sheet *asset.Sheet) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	screen := draw.NewTerminal(os.Stdout, draw.DefaultTermSizeFunc, gameconfig.FieldWidth, gameconfig.FieldHeight, sheet)
	defer screen.Close()

	opts.Renderer = screen
	keys := input.StartStream(os.Stdin)
	defer keys.Close()
	opts.Input = keys
	return loop.Run(ctx, state, opts)
}

func runTcell(ctx context.Context, state *loop.State, opts loop.Options, sheet *asset.Sheet) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer s.Fini()

	opts.Renderer = tui.NewScreen(s, gameconfig.FieldWidth, gameconfig.FieldHeight, sheet)
	opts.Input = tui.StartInput(s)
	return loop.Run(ctx, state, opts)
}
