package loop

import (
	"github.com/tomz197/asteroid-avoidance/internal/loop/config"
	"github.com/tomz197/asteroid-avoidance/internal/object"
)

// spawnInterval returns the ticks between regular spawns at the current level.
func (s *State) spawnInterval() int {
	return config.SpawnBaseTicks / max(s.Level, 1)
}

// spawn runs the regular and boss spawn timers.
func (s *State) spawn() {
	s.SpawnTimer++
	if s.SpawnTimer >= s.spawnInterval() {
		s.SpawnTimer = 0
		s.spawnRegular()
	}

	s.BossTimer++
	if s.BossTimer >= config.BossSpawnTicks {
		s.BossTimer = 0
		x := float64(s.rng.Intn(config.FieldWidth - config.BossSize + 1))
		s.Entities.Add(object.NewBoss(x, -config.BossSize))
		s.logger.Debug("boss spawned", "x", x)
	}
}

// spawnRegular adds one asteroid, power-up or point just above the field.
// The asteroid and power-up rolls are independent draws.
func (s *State) spawnRegular() {
	if s.rng.Float64() < config.AsteroidChance {
		speed := config.AsteroidMinSpeed + s.rng.Intn(config.AsteroidMaxSpeed-config.AsteroidMinSpeed+1)
		speed = min(max(speed+s.Difficulty.speedOffset(), config.AsteroidMinSpeed), config.AsteroidMaxSpeed)
		s.Entities.Add(object.NewAsteroid(s.spawnX(config.AsteroidSize), -config.AsteroidSize, float64(speed)))
		return
	}

	if s.rng.Float64() < config.PowerUpChance {
		kind := object.PowerKinds[s.rng.Intn(len(object.PowerKinds))]
		s.Entities.Add(object.NewPowerUp(s.spawnX(config.PowerUpSize), -config.PowerUpSize, kind))
		return
	}

	s.Entities.Add(object.NewPoint(s.spawnX(config.PointSize), -config.PointSize))
}

// spawnX picks a column that keeps an entity of width w fully on the field.
func (s *State) spawnX(w int) float64 {
	return float64(s.rng.Intn(config.FieldWidth - w + 1))
}
