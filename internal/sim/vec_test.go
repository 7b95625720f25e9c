package sim

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func vecAlmostEqual(a, b Vec3, eps float64) bool {
	return almostEqual(a.X, b.X, eps) && almostEqual(a.Y, b.Y, eps) && almostEqual(a.Z, b.Z, eps)
}

func TestNormalize_ZeroStaysZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Fatalf("zero vector normalized to %+v", got)
	}
	if l := (Vec3{3, 4, 12}).Normalize().Len(); !almostEqual(l, 1, 1e-12) {
		t.Fatalf("normalized length = %f", l)
	}
}

func TestForward_Level(t *testing.T) {
	if got := Forward(Vec3{}); !vecAlmostEqual(got, Vec3{0, 0, -1}, 1e-12) {
		t.Fatalf("level forward = %+v, want (0,0,-1)", got)
	}
}

func TestForward_YawQuarterTurn(t *testing.T) {
	// Positive yaw turns the nose toward -X.
	got := Forward(Vec3{Y: math.Pi / 2})
	if !vecAlmostEqual(got, Vec3{-1, 0, 0}, 1e-12) {
		t.Fatalf("yaw +90° forward = %+v, want (-1,0,0)", got)
	}
}

func TestForward_RollDoesNotMoveNose(t *testing.T) {
	got := Forward(Vec3{Z: 1.1})
	if !vecAlmostEqual(got, Vec3{0, 0, -1}, 1e-12) {
		t.Fatalf("rolled forward = %+v, want (0,0,-1)", got)
	}
}

func TestForward_PitchAndYawComponents(t *testing.T) {
	rot := Vec3{X: 0.4, Y: -0.7}
	got := Forward(rot)
	want := Vec3{
		X: -math.Sin(rot.Y),
		Y: math.Sin(rot.X) * math.Cos(rot.Y),
		Z: -math.Cos(rot.X) * math.Cos(rot.Y),
	}
	if !vecAlmostEqual(got, want, 1e-12) {
		t.Fatalf("forward = %+v, want %+v", got, want)
	}
	if !almostEqual(got.Len(), 1, 1e-12) {
		t.Fatalf("forward not unit length: %f", got.Len())
	}
}
