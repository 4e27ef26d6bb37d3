package loop

import (
	"github.com/tomz197/asteroid-avoidance/internal/loop/config"
	"github.com/tomz197/asteroid-avoidance/internal/object"
)

// achievementText is the notification shown when an achievement unlocks.
var achievementText = map[Achievement]string{
	AchievementFirstPoint:  "Achievement Unlocked: First Point!",
	AchievementSurvive:     "Achievement Unlocked: Survived 1 Minute!",
	AchievementReachLevel5: "Achievement Unlocked: Reached Level 5!",
}

// addScore credits one point and extends the combo.
func (s *State) addScore() {
	s.Score++
	s.Combo++
	s.ComboTimer = config.ComboTicks
}

// applyPowerUp activates a collected power-up. Collecting an active effect
// restarts its timer.
func (s *State) applyPowerUp(kind object.PowerKind) {
	switch kind {
	case object.PowerShield:
		s.Ship.ActivateShield()
	case object.PowerExtraLife:
		s.Lives = min(s.Lives+1, config.MaxLives)
	case object.PowerRapidFire:
		s.Ship.ActivateRapidFire()
	}
	s.logger.Debug("power-up collected", "kind", kind)
}

// checkAchievements unlocks every milestone reached this tick.
func (s *State) checkAchievements() {
	if s.Score > 0 {
		s.unlock(AchievementFirstPoint)
	}
	if s.GameTime >= config.SurviveTicks {
		s.unlock(AchievementSurvive)
	}
	if s.Level >= config.AchievementLevel {
		s.unlock(AchievementReachLevel5)
	}
}

func (s *State) unlock(a Achievement) {
	if s.Achievements[a] {
		return
	}
	s.Achievements[a] = true
	s.Notice = achievementText[a]
	s.NoticeTimer = config.AchievementTicks
	s.logger.Info("achievement unlocked", "achievement", a)
}
