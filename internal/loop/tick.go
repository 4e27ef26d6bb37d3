package loop

import (
	"context"

	"github.com/tomz197/asteroid-avoidance/internal/input"
	"github.com/tomz197/asteroid-avoidance/internal/loop/config"
	"github.com/tomz197/asteroid-avoidance/internal/object"
)

// Tick advances the simulation by one frame. Nothing moves outside of
// PhasePlaying. ctx bounds the high score save on game over.
func (s *State) Tick(ctx context.Context, in input.Input) {
	if s.Phase != PhasePlaying {
		return
	}

	s.GameTime++
	s.advance()
	s.resolveCollisions(ctx)
	s.spawn()
	s.Ship.Move(in.DX(), in.DY(), s.Field)
	s.updateLevel()
	s.tickTimers()
	s.Particles.Update()
	s.checkAchievements()
	if in.Shoot {
		s.shoot()
	}
	s.Entities.Sweep()
}

// advance moves every entity, counts down ship effects and marks
// entities that left the field.
func (s *State) advance() {
	s.Entities.Each(func(e *object.Entity) {
		e.Advance(s.Field)
		if e.Expired(s.Field) {
			e.Alive = false
		}
	})
	s.Ship.TickTimers()
}

func (s *State) updateLevel() {
	s.Level = min(config.MaxLevel, 1+s.Score/config.PointsPerLevel)
}

// tickTimers counts down the combo window and the achievement notice.
// The combo is lost once its window has run out.
func (s *State) tickTimers() {
	if s.ComboTimer > 0 {
		s.ComboTimer--
	} else {
		s.Combo = 0
	}

	if s.NoticeTimer > 0 {
		s.NoticeTimer--
		if s.NoticeTimer == 0 {
			s.Notice = ""
		}
	}
}

func (s *State) shoot() {
	if bullet, ok := s.Ship.Shoot(s.GameTime); ok {
		s.Entities.Add(bullet)
	}
}
