package loop

import (
	"context"

	"github.com/tomz197/asteroid-avoidance/internal/draw"
	"github.com/tomz197/asteroid-avoidance/internal/input"
	"github.com/tomz197/asteroid-avoidance/internal/physics"
)

// Sound names requested through Audio.Play.
const (
	SoundExplosion        = "explosion"
	SoundPointCollected   = "point_collected"
	SoundPowerUpCollected = "powerup_collected"
)

// Renderer draws one frame per Begin/End pair. Coordinates are logical
// field units.
type Renderer interface {
	Begin() error
	Sprite(name string, r physics.Rect)
	// Circle draws a circle outline of the given width; width 0 fills it.
	Circle(cx, cy, radius float64, c draw.Color, width int)
	Text(s string, x, y float64, style draw.TextStyle)
	End() error
}

// Audio plays named sound effects and the background loop.
type Audio interface {
	Play(name string)
	StartMusic()
	StopMusic()
}

// InputSource yields the input for the next frame without blocking.
type InputSource interface {
	Poll() input.Input
}

// HighScoreStore persists the single best score.
// Load returns 0 and no error when nothing has been saved yet. Save keeps
// the larger of the stored score and the given one.
type HighScoreStore interface {
	Load(ctx context.Context) (int, error)
	Save(ctx context.Context, score int) error
}

// NopAudio discards every sound request.
type NopAudio struct{}

func (NopAudio) Play(string) {}
func (NopAudio) StartMusic() {}
func (NopAudio) StopMusic() {}
