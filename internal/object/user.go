package object

import (
	"github.com/tomz197/asteroid-avoidance/internal/loop/config"
	"github.com/tomz197/asteroid-avoidance/internal/physics"
)

// Ship is the player-controlled spaceship. It never moves on its own;
// Move applies discretized directional input and keeps it on the field.
type Ship struct {
	Bounds physics.Rect
	Speed  float64

	Shield         bool
	ShieldTimer    int // Ticks remaining
	RapidFire      bool
	RapidFireTimer int // Ticks remaining

	ShootDelay int // Ticks required between shots
	LastShot   int // Game tick of the last shot
}

// NewShip creates a ship centered on (cx, cy). now is the current game tick,
// which starts the first shot cooldown.
func NewShip(cx, cy float64, now int) *Ship {
	return &Ship{
		Bounds:     physics.RectAround(cx, cy, config.ShipSize, config.ShipSize),
		Speed:      config.ShipSpeed,
		ShootDelay: config.ShootDelay,
		LastShot:   now,
	}
}

// Move shifts the ship by speed along each axis with a non-zero direction,
// then clamps it fully inside the field.
func (s *Ship) Move(dx, dy int, field physics.Rect) {
	s.Bounds.X += float64(sign(dx)) * s.Speed
	s.Bounds.Y += float64(sign(dy)) * s.Speed
	s.Bounds = s.Bounds.ClampInside(field)
}

// TickTimers counts down active status effects, clearing each when it expires.
func (s *Ship) TickTimers() {
	if s.Shield {
		s.ShieldTimer--
		if s.ShieldTimer <= 0 {
			s.ShieldTimer = 0
			s.Shield = false
		}
	}
	if s.RapidFire {
		s.RapidFireTimer--
		if s.RapidFireTimer <= 0 {
			s.RapidFireTimer = 0
			s.RapidFire = false
		}
	}
}

// ActivateShield turns the shield on for its full duration.
func (s *Ship) ActivateShield() {
	s.Shield = true
	s.ShieldTimer = config.ShieldTicks
}

// ActivateRapidFire turns rapid fire on for its full duration.
func (s *Ship) ActivateRapidFire() {
	s.RapidFire = true
	s.RapidFireTimer = config.RapidFireTicks
}

// Shoot fires a bullet from the ship's nose if the cooldown has elapsed.
// now is the current game tick.
func (s *Ship) Shoot(now int) (Entity, bool) {
	if s.RapidFire {
		s.ShootDelay = config.RapidFireDelay
	} else {
		s.ShootDelay = config.ShootDelay
	}
	if now-s.LastShot <= s.ShootDelay {
		return Entity{}, false
	}
	s.LastShot = now
	c := s.Bounds.Center()
	return NewBullet(c.X(), s.Bounds.Top()), true
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
