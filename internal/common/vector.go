package common

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Vector2 represents a point or displacement in the 2D plane.
// The zero value is the zero vector.
type Vector2 struct {
	x, y float32
}

// New returns a vector with the given components.
func New(x, y float32) Vector2 {
	return Vector2{x: x, y: y}
}

// X returns the x component.
func (v Vector2) X() float32 {
	return v.x
}

// Y returns the y component.
func (v Vector2) Y() float32 {
	return v.y
}

// Magnitude returns the Euclidean length of the vector.
func (v Vector2) Magnitude() float32 {
	return math32.Sqrt(v.x*v.x + v.y*v.y)
}

// Normalize rescales v to unit length.
// A zero or NaN magnitude leaves v unchanged.
func (v *Vector2) Normalize() {
	m := v.Magnitude()
	// Both comparisons are false for NaN.
	if m > 0 || m < 0 {
		v.DivInPlace(m)
	}
}

// SetMagnitude normalizes v and scales it to the given length.
// The zero vector stays zero whatever the requested length.
func (v *Vector2) SetMagnitude(magnitude float32) {
	v.Normalize()
	v.ScaleInPlace(magnitude)
}

// Limit caps the magnitude of v at max.
// A negative max reverses the direction of any vector it rescales.
func (v *Vector2) Limit(max float32) {
	if v.Magnitude() > max {
		v.SetMagnitude(max)
	}
}

// Rotate turns v counter-clockwise by angle degrees.
func (v *Vector2) Rotate(angle float32) {
	t := math32.DegToRad(angle)
	cs := math32.Cos(t)
	sn := math32.Sin(t)

	nx := v.x*cs - v.y*sn
	ny := v.x*sn + v.y*cs

	v.x = nx
	v.y = ny
}

// Add returns v + other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.x + other.x, v.y + other.y}
}

// AddInPlace sets v to v + other.
func (v *Vector2) AddInPlace(other Vector2) {
	*v = v.Add(other)
}

// Sub returns v - other.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.x - other.x, v.y - other.y}
}

// SubInPlace sets v to v - other.
func (v *Vector2) SubInPlace(other Vector2) {
	*v = v.Sub(other)
}

// Scale multiplies the vector by a scalar.
func (v Vector2) Scale(n float32) Vector2 {
	return Vector2{v.x * n, v.y * n}
}

// ScaleInPlace multiplies v by a scalar.
func (v *Vector2) ScaleInPlace(n float32) {
	*v = v.Scale(n)
}

// Div divides the vector by a scalar. Dividing by zero yields
// infinite or NaN components.
func (v Vector2) Div(n float32) Vector2 {
	return Vector2{v.x / n, v.y / n}
}

// DivInPlace divides v by a scalar.
func (v *Vector2) DivInPlace(n float32) {
	*v = v.Div(n)
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%v, %v)", v.x, v.y)
}
