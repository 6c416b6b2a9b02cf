package common_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"vector2/internal/common"
)

const eps = 1e-6

var Vec = common.New

func requireVec(t *testing.T, want, got common.Vector2, delta float64) {
	t.Helper()
	require.InDelta(t, want.X(), got.X(), delta, "x of %v", got)
	require.InDelta(t, want.Y(), got.Y(), delta, "y of %v", got)
}

func isNaN(f float32) bool { return math.IsNaN(float64(f)) }

func TestNewAndAccessors(t *testing.T) {
	v := Vec(1.5, -2)
	require.Equal(t, float32(1.5), v.X())
	require.Equal(t, float32(-2), v.Y())
	require.Equal(t, Vec(0, 0), common.Vector2{})
}

func TestMagnitude(t *testing.T) {
	require.Equal(t, float32(5), Vec(3, 4).Magnitude())
	require.Equal(t, float32(0), Vec(0, 0).Magnitude())
	require.True(t, isNaN(Vec(float32(math.NaN()), 1).Magnitude()))
	require.True(t, math.IsInf(float64(Vec(float32(math.Inf(-1)), 1).Magnitude()), 1))
}

func TestNormalize(t *testing.T) {
	v := Vec(3, 4)
	v.Normalize()
	requireVec(t, Vec(0.6, 0.8), v, eps)
	require.InDelta(t, 1, v.Magnitude(), eps)

	zero := Vec(0, 0)
	zero.Normalize()
	require.Equal(t, Vec(0, 0), zero)

	nan := Vec(float32(math.NaN()), 0)
	nan.Normalize()
	require.True(t, isNaN(nan.X()))
	require.Equal(t, float32(0), nan.Y())
}

func TestSetMagnitude(t *testing.T) {
	v := Vec(3, 4)
	v.SetMagnitude(10)
	require.InDelta(t, 10, v.Magnitude(), 1e-5)
	require.InDelta(t, 3.0/4.0, v.X()/v.Y(), eps)

	zero := Vec(0, 0)
	zero.SetMagnitude(10)
	require.Equal(t, Vec(0, 0), zero)
}

func TestLimit(t *testing.T) {
	tests := []struct {
		name string
		in   common.Vector2
		max  float32
		want common.Vector2
	}{
		{"over limit", Vec(10, 0), 5, Vec(5, 0)},
		{"under limit", Vec(1, 0), 5, Vec(1, 0)},
		{"at limit", Vec(3, 4), 5, Vec(3, 4)},
		{"negative max reverses", Vec(3, 4), -5, Vec(-3, -4)},
		{"zero vector", Vec(0, 0), 5, Vec(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.in
			v.Limit(tt.max)
			requireVec(t, tt.want, v, 1e-5)
		})
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name  string
		in    common.Vector2
		angle float32
		want  common.Vector2
	}{
		{"quarter turn", Vec(1, 0), 90, Vec(0, 1)},
		{"half turn", Vec(1, 0), 180, Vec(-1, 0)},
		{"clockwise", Vec(0, 1), -90, Vec(1, 0)},
		{"full turn", Vec(2, 3), 360, Vec(2, 3)},
		{"both components", Vec(1, 1), 90, Vec(-1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.in
			v.Rotate(tt.angle)
			requireVec(t, tt.want, v, 1e-5)
			require.InDelta(t, tt.in.Magnitude(), v.Magnitude(), 1e-5)
		})
	}
}

func TestArithmetic(t *testing.T) {
	a := Vec(1, 2)
	b := Vec(68, 67)

	require.Equal(t, Vec(69, 69), a.Add(b))
	require.Equal(t, Vec(-67, -65), a.Sub(b))
	require.Equal(t, Vec(4, 8), a.Scale(4))
	require.Equal(t, Vec(0.5, 1), a.Div(2))

	// operands are values and are left untouched
	require.Equal(t, Vec(1, 2), a)
	require.Equal(t, Vec(68, 67), b)
}

func TestArithmeticInPlace(t *testing.T) {
	v := Vec(10, 10)
	v.AddInPlace(Vec(20, 20))
	require.Equal(t, Vec(30, 30), v)

	v.SubInPlace(Vec(5, 10))
	require.Equal(t, Vec(25, 20), v)

	v.ScaleInPlace(2)
	require.Equal(t, Vec(50, 40), v)

	v.DivInPlace(10)
	require.Equal(t, Vec(5, 4), v)
}

func TestRoundTrips(t *testing.T) {
	vecs := []common.Vector2{Vec(1, 2), Vec(-3.25, 7), Vec(0.1, 0.2), Vec(1e3, -1e-3)}
	for _, a := range vecs {
		for _, b := range vecs {
			requireVec(t, a, a.Add(b).Sub(b), 1e-3)
		}
		for _, n := range []float32{2, -0.5, 3, 1e-2} {
			requireVec(t, a, a.Scale(n).Div(n), 1e-3)
		}
	}
}

func TestDivByZero(t *testing.T) {
	v := Vec(1, -1).Div(0)
	require.True(t, math.IsInf(float64(v.X()), 1))
	require.True(t, math.IsInf(float64(v.Y()), -1))

	z := Vec(0, 0)
	z.DivInPlace(0)
	require.True(t, isNaN(z.X()))
	require.True(t, isNaN(z.Y()))
}

func TestCopyIsIndependent(t *testing.T) {
	a := Vec(3, 4)
	b := a
	b.Normalize()
	require.Equal(t, Vec(3, 4), a)
}

func TestString(t *testing.T) {
	require.Equal(t, "(1, 2)", Vec(1, 2).String())
	require.Equal(t, "(1.5, -0.25)", Vec(1.5, -0.25).String())
	require.Equal(t, "(0.1, 0)", Vec(0.1, 0).String())
}
