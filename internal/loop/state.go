package loop

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/asteroid-avoidance/internal/input"
	"github.com/tomz197/asteroid-avoidance/internal/loop/config"
	"github.com/tomz197/asteroid-avoidance/internal/object"
	"github.com/tomz197/asteroid-avoidance/internal/physics"
)

// Phase is the top-level game phase.
type Phase int

const (
	PhaseMainMenu Phase = iota // Title screen, difficulty select
	PhasePlaying               // Active gameplay
	PhasePaused                // Simulation frozen
	PhaseGameOver              // Out of lives, waiting for restart
)

func (p Phase) String() string {
	switch p {
	case PhaseMainMenu:
		return "main_menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

// Difficulty shifts the speed of newly spawned asteroids.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota + 1
	DifficultyNormal
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	}
	return "unknown"
}

// speedOffset is added to a rolled asteroid speed.
func (d Difficulty) speedOffset() int {
	switch d {
	case DifficultyEasy:
		return -1
	case DifficultyHard:
		return 1
	}
	return 0
}

// Achievement names a one-time milestone.
type Achievement string

const (
	AchievementFirstPoint  Achievement = "first_point"
	AchievementSurvive     Achievement = "survive_1_minute"
	AchievementReachLevel5 Achievement = "reach_level_5"
)

// Config wires a State to its collaborators.
type Config struct {
	Rand         *rand.Rand // nil seeds from the clock
	Audio        Audio      // nil discards sounds
	Store        HighScoreStore
	Logger       *log.Logger
	MaxParticles int  // 0 means unbounded
	BossMultiHit bool // Bosses lose one health per bullet instead of breaking at once
}

// State is the aggregate root of one game session. It is owned by a single
// goroutine; nothing in it is safe for concurrent use.
type State struct {
	Phase        Phase
	ShowControls bool
	Difficulty   Difficulty

	Score      int
	Level      int
	Lives      int
	Combo      int
	ComboTimer int
	GameTime   int // Ticks since the game started
	SpawnTimer int
	BossTimer  int
	HighScore  int

	Achievements map[Achievement]bool
	Notice       string // Achievement notification text
	NoticeTimer  int
	SaveFailed   bool // The last high score could not be persisted

	Ship      *object.Ship
	Entities  *object.Store
	Particles *object.Particles
	Field     physics.Rect

	rng          *rand.Rand
	audio        Audio
	store        HighScoreStore
	logger       *log.Logger
	bossMultiHit bool

	grid      *physics.SpatialGrid
	bullets   []int
	asteroids []int
	hits      []int
}

// NewState creates a session sitting in the main menu.
func NewState(cfg Config) *State {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	audio := cfg.Audio
	if audio == nil {
		audio = NopAudio{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &State{
		Phase:        PhaseMainMenu,
		Difficulty:   DifficultyNormal,
		Achievements: make(map[Achievement]bool),
		Entities:     object.NewStore(),
		Particles:    object.NewParticles(cfg.MaxParticles),
		Field:        physics.NewRect(0, 0, config.FieldWidth, config.FieldHeight),
		rng:          rng,
		audio:        audio,
		store:        cfg.Store,
		logger:       logger,
		bossMultiHit: cfg.BossMultiHit,
		grid:         physics.NewSpatialGrid(config.FieldWidth, config.FieldHeight, config.BossSize),
	}
	s.reset()
	return s
}

// LoadHighScore refreshes the high score from the store, which other
// sessions may have raised. It never lowers the in-memory value; a failing
// store is logged and leaves it untouched.
func (s *State) LoadHighScore(ctx context.Context) {
	if s.store == nil {
		return
	}
	score, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Warn("failed to load high score", "err", err)
		return
	}
	if score > s.HighScore {
		s.HighScore = score
	}
}

// reset clears everything tied to a single run. The high score and
// unlocked achievements survive; difficulty returns to normal.
func (s *State) reset() {
	s.Difficulty = DifficultyNormal
	s.Score = 0
	s.Level = 1
	s.Lives = config.InitialLives
	s.Combo = 0
	s.ComboTimer = 0
	s.GameTime = 0
	s.SpawnTimer = 0
	s.BossTimer = 0
	s.Notice = ""
	s.NoticeTimer = 0
	s.SaveFailed = false

	s.Ship = object.NewShip(config.ShipStartX, config.ShipStartY, s.GameTime)
	s.Entities.Clear()
	s.Particles.Clear()
}

// start begins a new run at the given difficulty.
func (s *State) start(ctx context.Context, d Difficulty) {
	s.reset()
	s.LoadHighScore(ctx)
	s.Difficulty = d
	s.Phase = PhasePlaying
	s.audio.StartMusic()
	s.logger.Info("game started", "difficulty", d)
}

// gameOver ends the run and persists the score when it beats the high score.
// The store keeps the larger of its value and ours, so a session holding a
// stale high score cannot overwrite a better one.
func (s *State) gameOver(ctx context.Context) {
	s.Phase = PhaseGameOver
	s.audio.StopMusic()
	s.logger.Info("game over", "score", s.Score, "level", s.Level, "ticks", s.GameTime)

	if s.Score <= s.HighScore {
		return
	}
	s.HighScore = s.Score
	if s.store == nil {
		return
	}
	if err := s.store.Save(ctx, s.Score); err != nil {
		s.logger.Warn("failed to save high score", "score", s.Score, "err", err)
		s.SaveFailed = true
	}
}

// HandleInput applies the frame's phase transitions and reports whether
// the player asked to quit.
func (s *State) HandleInput(ctx context.Context, in input.Input) (quit bool) {
	if in.Quit {
		return true
	}

	switch s.Phase {
	case PhaseMainMenu:
		if in.Difficulty >= int(DifficultyEasy) && in.Difficulty <= int(DifficultyHard) {
			s.Difficulty = Difficulty(in.Difficulty)
		}
		if in.ToggleControls {
			s.ShowControls = !s.ShowControls
		}
		if in.Confirm {
			s.ShowControls = false
			s.start(ctx, s.Difficulty)
		}
	case PhasePlaying:
		if in.Pause {
			s.Phase = PhasePaused
		}
	case PhasePaused:
		if in.Pause {
			s.Phase = PhasePlaying
		}
	case PhaseGameOver:
		if in.Restart {
			s.start(ctx, DifficultyNormal)
		}
	}
	return false
}
