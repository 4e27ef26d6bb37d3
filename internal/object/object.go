// Package object holds the simulation's entities: the tagged Entity variant,
// its arena Store, the player Ship and the particle system.
package object

import (
	"fmt"

	"github.com/tomz197/asteroid-avoidance/internal/loop/config"
	"github.com/tomz197/asteroid-avoidance/internal/physics"
)

// Kind identifies the variant held by an Entity.
type Kind uint8

const (
	KindAsteroid Kind = iota + 1
	KindBoss
	KindPoint
	KindPowerUp
	KindBullet
)

func (k Kind) String() string {
	switch k {
	case KindAsteroid:
		return "asteroid"
	case KindBoss:
		return "boss_asteroid"
	case KindPoint:
		return "point"
	case KindPowerUp:
		return "powerup"
	case KindBullet:
		return "bullet"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// IsAsteroid reports whether the kind collides as an asteroid.
func (k Kind) IsAsteroid() bool {
	return k == KindAsteroid || k == KindBoss
}

// PowerKind is the effect carried by a power-up.
type PowerKind uint8

const (
	PowerShield PowerKind = iota
	PowerExtraLife
	PowerRapidFire
)

// PowerKinds lists every power-up effect, in spawn-choice order.
var PowerKinds = [...]PowerKind{PowerShield, PowerExtraLife, PowerRapidFire}

// String returns the power-up's sprite name.
func (p PowerKind) String() string {
	switch p {
	case PowerShield:
		return "shield"
	case PowerExtraLife:
		return "life"
	case PowerRapidFire:
		return "rapid_fire"
	}
	return fmt.Sprintf("power(%d)", uint8(p))
}

// ID identifies an entity within its Store for the lifetime of the store.
type ID uint64

// Entity is a single simulated object. Kind selects which payload fields
// are meaningful.
type Entity struct {
	ID     ID
	Kind   Kind
	Bounds physics.Rect
	Alive  bool
	Speed  float64 // Vertical speed magnitude per tick

	Power PowerKind // KindPowerUp
	Boss  BossState // KindBoss
}

// Advance applies one tick of motion for the entity's kind.
func (e *Entity) Advance(field physics.Rect) {
	switch e.Kind {
	case KindAsteroid, KindPoint, KindPowerUp:
		e.Bounds.Y += e.Speed
	case KindBoss:
		e.Bounds.Y += e.Speed
		e.advanceBoss(field)
	case KindBullet:
		e.Bounds.Y -= e.Speed
	}
}

// Expired reports whether the entity has left the play field for good.
func (e *Entity) Expired(field physics.Rect) bool {
	switch e.Kind {
	case KindBullet:
		return e.Bounds.Bottom() < field.Top()
	default:
		return e.Bounds.Top() > field.Bottom()
	}
}

// Sprite returns the sprite name used to draw the entity.
func (e *Entity) Sprite() string {
	if e.Kind == KindPowerUp {
		return e.Power.String()
	}
	return e.Kind.String()
}

// NewPoint creates a collectible point with its top-left at (x, y).
func NewPoint(x, y float64) Entity {
	return Entity{
		Kind:   KindPoint,
		Bounds: physics.NewRect(x, y, config.PointSize, config.PointSize),
		Alive:  true,
		Speed:  config.PointSpeed,
	}
}

// NewPowerUp creates a power-up of the given kind with its top-left at (x, y).
func NewPowerUp(x, y float64, kind PowerKind) Entity {
	return Entity{
		Kind:   KindPowerUp,
		Bounds: physics.NewRect(x, y, config.PowerUpSize, config.PowerUpSize),
		Alive:  true,
		Speed:  config.PowerUpSpeed,
		Power:  kind,
	}
}
