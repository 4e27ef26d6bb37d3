package object

import (
	"github.com/tomz197/asteroid-avoidance/internal/loop/config"
	"github.com/tomz197/asteroid-avoidance/internal/physics"
)

// NewBullet creates a bullet centered on (cx, cy) travelling upward.
func NewBullet(cx, cy float64) Entity {
	return Entity{
		Kind:   KindBullet,
		Bounds: physics.RectAround(cx, cy, config.BulletWidth, config.BulletHeight),
		Alive:  true,
		Speed:  config.BulletSpeed,
	}
}
