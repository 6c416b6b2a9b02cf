package physics

import (
	"math/rand"

	"vector2/internal/common"
)

// Swarm is a group of movers sharing bounds.
type Swarm struct {
	Movers        []*Mover
	Width, Height float32
}

// NewSwarm scatters count movers over the bounds with a random initial
// velocity of magnitude maxSpeed.
func NewSwarm(rng *rand.Rand, count int, width, height, maxSpeed, maxForce float32) *Swarm {
	s := &Swarm{Width: width, Height: height}
	for i := 0; i < count; i++ {
		m := NewMover(rng.Float32()*width, rng.Float32()*height)
		m.MaxSpeed = maxSpeed
		m.MaxForce = maxForce

		m.Velocity = common.New(1, 0)
		m.Velocity.Rotate(rng.Float32() * 360)
		m.Velocity.SetMagnitude(maxSpeed)

		s.Movers = append(s.Movers, m)
	}
	return s
}

// Step makes every mover seek target, then advances and wraps it.
func (s *Swarm) Step(target common.Vector2) {
	for _, m := range s.Movers {
		m.Seek(target)
		m.Update()
		m.Wrap(s.Width, s.Height)
	}
}
