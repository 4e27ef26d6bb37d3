package loop

import (
	"context"
	"slices"

	"github.com/tomz197/asteroid-avoidance/internal/draw"
	"github.com/tomz197/asteroid-avoidance/internal/loop/config"
	"github.com/tomz197/asteroid-avoidance/internal/object"
)

func isBullet(k object.Kind) bool { return k == object.KindBullet }

// resolveCollisions applies every collision of the tick in a fixed order:
// ship against asteroids, points and power-ups, then bullets against asteroids.
func (s *State) resolveCollisions(ctx context.Context) {
	s.checkShipCollisions(ctx)
	s.checkBulletAsteroidCollisions()
}

// checkShipCollisions handles everything the ship touches, one kind at a time.
func (s *State) checkShipCollisions(ctx context.Context) {
	ship := s.Ship.Bounds

	for i := 0; i < s.Entities.Len(); i++ {
		e := s.Entities.At(i)
		if !e.Alive || !e.Kind.IsAsteroid() || !ship.Intersects(e.Bounds) {
			continue
		}
		e.Alive = false
		s.explode(e)
		if !s.Ship.Shield && s.Phase == PhasePlaying {
			s.loseLife(ctx)
		}
	}

	for i := 0; i < s.Entities.Len(); i++ {
		e := s.Entities.At(i)
		if !e.Alive || e.Kind != object.KindPoint || !ship.Intersects(e.Bounds) {
			continue
		}
		e.Alive = false
		s.addScore()
		s.Particles.SpawnBurst(s.rng, e.Bounds.Center(), draw.ColorYellow, config.SparkleParticles)
		s.audio.Play(SoundPointCollected)
	}

	for i := 0; i < s.Entities.Len(); i++ {
		e := s.Entities.At(i)
		if !e.Alive || e.Kind != object.KindPowerUp || !ship.Intersects(e.Bounds) {
			continue
		}
		e.Alive = false
		s.applyPowerUp(e.Power)
		s.Particles.SpawnBurst(s.rng, e.Bounds.Center(), draw.ColorYellow, config.SparkleParticles)
		s.audio.Play(SoundPowerUpCollected)
	}
}

// checkBulletAsteroidCollisions lets each bullet break every asteroid it
// overlaps. Asteroids are bucketed in a spatial grid; bullets are resolved
// in insertion order, and each bullet's hits in insertion order too.
func (s *State) checkBulletAsteroidCollisions() {
	s.bullets = s.Entities.Select(s.bullets[:0], isBullet)
	if len(s.bullets) == 0 {
		return
	}
	s.asteroids = s.Entities.Select(s.asteroids[:0], object.Kind.IsAsteroid)
	if len(s.asteroids) == 0 {
		return
	}

	s.grid.Clear()
	for _, ai := range s.asteroids {
		s.grid.Insert(s.Entities.At(ai).Bounds, ai)
	}

	for _, bi := range s.bullets {
		bullet := s.Entities.At(bi)

		s.hits = s.hits[:0]
		s.grid.QueryRect(bullet.Bounds, func(ai int) bool {
			a := s.Entities.At(ai)
			if a.Alive && bullet.Bounds.Intersects(a.Bounds) {
				s.hits = append(s.hits, ai)
			}
			return false
		})
		if len(s.hits) == 0 {
			continue
		}
		slices.Sort(s.hits)

		bullet.Alive = false
		for _, ai := range s.hits {
			a := s.Entities.At(ai)
			if !a.Hit(s.bossMultiHit) {
				continue
			}
			a.Alive = false
			s.addScore()
			s.explode(a)
		}
	}
}

// explode plays the destruction effect of an asteroid.
func (s *State) explode(e *object.Entity) {
	s.Particles.SpawnBurst(s.rng, e.Bounds.Center(), draw.ColorRed, config.ExplosionParticles)
	s.audio.Play(SoundExplosion)
}

// loseLife removes a life and ends the game when none are left.
func (s *State) loseLife(ctx context.Context) {
	s.Lives--
	if s.Lives <= 0 {
		s.Lives = 0
		s.gameOver(ctx)
	}
}
