package object

import (
	"github.com/tomz197/asteroid-avoidance/internal/loop/config"
	"github.com/tomz197/asteroid-avoidance/internal/physics"
)

// BossState is the payload of a boss asteroid.
type BossState struct {
	Health    int
	Direction int // -1 (left) or +1 (right)
}

// NewAsteroid creates an asteroid with its top-left at (x, y) falling at speed.
func NewAsteroid(x, y, speed float64) Entity {
	return Entity{
		Kind:   KindAsteroid,
		Bounds: physics.NewRect(x, y, config.AsteroidSize, config.AsteroidSize),
		Alive:  true,
		Speed:  speed,
	}
}

// NewBoss creates a boss asteroid with its top-left at (x, y).
// Bosses fall slowly and drift sideways, bouncing off the field edges.
func NewBoss(x, y float64) Entity {
	return Entity{
		Kind:   KindBoss,
		Bounds: physics.NewRect(x, y, config.BossSize, config.BossSize),
		Alive:  true,
		Speed:  config.BossSpeed,
		Boss: BossState{
			Health:    config.BossHealth,
			Direction: 1,
		},
	}
}

// advanceBoss moves the boss sideways and flips its direction on contact
// with either side of the field.
func (e *Entity) advanceBoss(field physics.Rect) {
	e.Bounds.X += float64(e.Boss.Direction * config.BossDrift)
	if e.Bounds.Left() <= field.Left() || e.Bounds.Right() >= field.Right() {
		e.Boss.Direction = -e.Boss.Direction
	}
}

// Hit applies one bullet hit to an asteroid and reports whether it is destroyed.
// Regular asteroids always break. Bosses break on the first hit unless
// multiHit is set, in which case each hit removes one point of health.
func (e *Entity) Hit(multiHit bool) bool {
	if e.Kind != KindBoss || !multiHit {
		return true
	}
	e.Boss.Health--
	return e.Boss.Health <= 0
}
