// Package config centralizes all tunable game parameters.
package config

import "time"

// Play field in logical units. Rendering scales to fit the terminal.
const (
	FieldWidth  = 800
	FieldHeight = 600
)

// Tick rate
const (
	TickRate = 60
	TickTime = time.Second / TickRate
)

// Entity sizes (width = height unless noted)
const (
	ShipSize     = 60
	AsteroidSize = 50
	BossSize     = 100
	PointSize    = 50
	PowerUpSize  = 50
	BulletWidth  = 5
	BulletHeight = 10
)

// Speeds in logical units per tick
const (
	ShipSpeed        = 5
	PointSpeed       = 2
	PowerUpSpeed     = 1
	BulletSpeed      = 10
	BossSpeed        = 1
	BossDrift        = 2
	AsteroidMinSpeed = 1
	AsteroidMaxSpeed = 5
)

// Ship spawn: centered horizontally, 60 units above the bottom edge.
const (
	ShipStartX = FieldWidth / 2
	ShipStartY = FieldHeight - 60
)

// Player
const (
	InitialLives = 3
	MaxLives     = 5
)

// Status effects (ticks)
const (
	ShieldTicks      = 300
	RapidFireTicks   = 300
	ComboTicks       = 60
	AchievementTicks = 180
)

// Shooting cooldown (ticks between shots)
const (
	ShootDelay     = 30
	RapidFireDelay = 10
)

// Spawning
const (
	SpawnBaseTicks      = 60 // Regular spawn interval at level 1; divided by level
	BossSpawnTicks      = 1800
	BossHealth          = 10
	AsteroidChance      = 0.7
	PowerUpChance       = 0.2 // Independent draw, only taken when the asteroid draw fails
	DefaultMaxParticles = 1000
)

// Levels
const (
	PointsPerLevel = 10
	MaxLevel       = 10
)

// Achievements
const (
	SurviveTicks     = 3600 // 60 seconds at 60 ticks/sec
	AchievementLevel = 5
)

// Particle bursts
const (
	ExplosionParticles = 20
	SparkleParticles   = 10
)

// Inactivity for remote sessions
const (
	InactivityWarn       = 90 * time.Second
	InactivityDisconnect = 120 * time.Second
)
