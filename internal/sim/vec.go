package sim

import "math"

// Vec3 is a float64 3D vector in world units. Y is up.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Dist returns the euclidean distance between v and o.
func (v Vec3) Dist(o Vec3) float64 {
	return v.Sub(o).Len()
}

// Normalize returns the unit vector along v, or the zero vector if v has no length.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	inv := 1.0 / l
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// ApplyEuler rotates v by Euler angles r (radians) in XYZ order,
// i.e. v' = Rx(r.X) · Ry(r.Y) · Rz(r.Z) · v.
func (v Vec3) ApplyEuler(r Vec3) Vec3 {
	a, b := math.Cos(r.X), math.Sin(r.X)
	c, d := math.Cos(r.Y), math.Sin(r.Y)
	e, f := math.Cos(r.Z), math.Sin(r.Z)

	ae, af, be, bf := a*e, a*f, b*e, b*f

	return Vec3{
		X: c*e*v.X - c*f*v.Y + d*v.Z,
		Y: (af+be*d)*v.X + (ae-bf*d)*v.Y - b*c*v.Z,
		Z: (bf-ae*d)*v.X + (be+af*d)*v.Y + a*c*v.Z,
	}
}

// forwardAxis is the aircraft nose direction before rotation.
var forwardAxis = Vec3{0, 0, -1}

// Forward returns the nose direction for an aircraft with the given rotation.
func Forward(rotation Vec3) Vec3 {
	return forwardAxis.ApplyEuler(rotation)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}
