package object

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/asteroid-avoidance/internal/draw"
)

// Particle tuning
const (
	ParticleLife    = 30 // Ticks
	ParticleMinSize = 2
	ParticleMaxSize = 5
)

// Particle is a short-lived visual effect. Particles never collide.
type Particle struct {
	Pos   mgl64.Vec2
	Vel   mgl64.Vec2
	Color draw.Color
	Size  int
	Life  int // Ticks remaining
}

// Particles is the live particle set. A positive max bounds the set; when
// a burst would exceed it, the oldest particles are dropped first.
type Particles struct {
	items []Particle
	max   int
}

// NewParticles creates a particle system. max <= 0 means unbounded.
func NewParticles(max int) *Particles {
	return &Particles{max: max}
}

// SpawnBurst adds count particles at center, each with a random size in
// [ParticleMinSize, ParticleMaxSize] and random velocity in [-1, 1] per axis.
func (ps *Particles) SpawnBurst(rng *rand.Rand, center mgl64.Vec2, color draw.Color, count int) {
	for i := 0; i < count; i++ {
		ps.items = append(ps.items, Particle{
			Pos:   center,
			Vel:   mgl64.Vec2{rng.Float64()*2 - 1, rng.Float64()*2 - 1},
			Color: color,
			Size:  ParticleMinSize + rng.Intn(ParticleMaxSize-ParticleMinSize+1),
			Life:  ParticleLife,
		})
	}

	if ps.max > 0 && len(ps.items) > ps.max {
		excess := len(ps.items) - ps.max
		n := copy(ps.items, ps.items[excess:])
		ps.items = ps.items[:n]
	}
}

// Update advances every particle by its velocity and removes dead ones.
func (ps *Particles) Update() {
	kept := ps.items[:0] // reuse backing array
	for _, p := range ps.items {
		p.Pos = p.Pos.Add(p.Vel)
		p.Life--
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	ps.items = kept
}

// Items returns the live particles. The slice is only valid until the next
// SpawnBurst or Update.
func (ps *Particles) Items() []Particle {
	return ps.items
}

// Len returns the number of live particles.
func (ps *Particles) Len() int {
	return len(ps.items)
}

// Clear removes all particles.
func (ps *Particles) Clear() {
	ps.items = ps.items[:0]
}
