package physics

import (
	"cogentcore.org/core/math32"

	"vector2/internal/common"
)

const (
	DefaultMaxSpeed = 4.0 // Pixels per tick
	DefaultMaxForce = 0.1 // Steering force cap per tick
)

// Mover is a point mass that steers toward targets.
type Mover struct {
	Position     common.Vector2
	Velocity     common.Vector2
	Acceleration common.Vector2 // Accumulated force for the current tick

	MaxSpeed float32
	MaxForce float32

	// Dimensions (in pixels)
	Width  float32
	Length float32
}

func NewMover(x, y float32) *Mover {
	return &Mover{
		Position: common.New(x, y),
		MaxSpeed: DefaultMaxSpeed,
		MaxForce: DefaultMaxForce,
		Width:    6,
		Length:   14,
	}
}

// ApplyForce accumulates f into the acceleration for the next Update.
func (m *Mover) ApplyForce(f common.Vector2) {
	m.Acceleration.AddInPlace(f)
}

// Seek steers toward target with Reynolds' desired-minus-velocity rule.
// A mover sitting on the target steers against its own velocity.
func (m *Mover) Seek(target common.Vector2) {
	desired := target.Sub(m.Position)
	desired.SetMagnitude(m.MaxSpeed)

	steer := desired.Sub(m.Velocity)
	steer.Limit(m.MaxForce)
	m.ApplyForce(steer)
}

// Update advances the mover by one tick.
func (m *Mover) Update() {
	// 1. Integrate
	m.Velocity.AddInPlace(m.Acceleration)
	m.Velocity.Limit(m.MaxSpeed)
	m.Position.AddInPlace(m.Velocity)

	// 2. Forces only last one tick
	m.Acceleration = common.Vector2{}
}

// Heading returns the direction of travel in degrees, counter-clockwise from +x.
func (m *Mover) Heading() float32 {
	return math32.RadToDeg(math32.Atan2(m.Velocity.Y(), m.Velocity.X()))
}

// Corners returns the body rectangle in world space:
// front right, front left, rear left, rear right.
func (m *Mover) Corners() [4]common.Vector2 {
	halfW := m.Width / 2
	halfL := m.Length / 2
	heading := m.Heading()

	corners := [4]common.Vector2{
		common.New(halfL, halfW),
		common.New(halfL, -halfW),
		common.New(-halfL, -halfW),
		common.New(-halfL, halfW),
	}
	for i := range corners {
		corners[i].Rotate(heading)
		corners[i].AddInPlace(m.Position)
	}
	return corners
}

// Wrap moves the position back into [0, width) x [0, height).
func (m *Mover) Wrap(width, height float32) {
	m.Position = common.New(wrap(m.Position.X(), width), wrap(m.Position.Y(), height))
}

func wrap(v, size float32) float32 {
	if size <= 0 {
		return v
	}
	v = math32.Mod(v, size)
	if v < 0 {
		v += size
	}
	// -tiny + size can round up to size
	if v >= size {
		v = 0
	}
	return v
}
