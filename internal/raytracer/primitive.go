package raytracer

import (
	"math"

	"Raybeam/internal/raymath"
)

// Primitive is the capability every intersectable shape in the scene
// implements. A capability interface is preferred over a closed sum type:
// meshes carry a very different data layout from the quadrics, and the
// render hot path is already dominated by the math inside Intersect, not
// by the cost of the interface dispatch.
//
// Implementations are always used through a pointer so that interface
// equality (used to exclude the hit primitive from shadow tests) is a
// stable identity comparison.
type Primitive interface {
	Intersect(r Ray) (Hit, bool)
	Translate(v raymath.Vec3)
	Transform(m raymath.Matrix4)
	BaseMaterial() Material
}

// Hit is the result of a successful intersection: the ray parameter,
// world-space point, outward normal (already oriented against the
// incoming ray), the shaded material for this hit, and the primitive that
// was hit (for self-shadow exclusion).
type Hit struct {
	T         float64
	Point     raymath.Vec3
	Normal    raymath.Vec3
	Material  Material
	Primitive Primitive
}

// faceForward flips n so that n.Dot(d) < 0, i.e. the normal points against
// the incoming ray direction d.
func faceForward(n, d raymath.Vec3) raymath.Vec3 {
	if n.Dot(d) > 0 {
		return n.Neg()
	}
	return n
}

// quadraticRoots solves the standard form a*t^2 + b*t + c = 0, returning
// (t0, t1, ok) with t0 <= t1 when real roots exist. A zero (or near-zero)
// leading coefficient or negative discriminant is reported as no
// intersection rather than propagating Inf/NaN. Cylinder
// and cone intersection use this form.
func quadraticRoots(a, b, c float64) (float64, float64, bool) {
	if math.Abs(a) < 1e-12 {
		return 0, 0, false
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	t0 := (-b - sq) / (2 * a)
	t1 := (-b + sq) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1, true
}

// sphereQuadraticRoots solves the half-b form a*t^2 - 2*b*t + c = 0:
// delta = b^2 - a*c, roots = (b +/- sqrt(delta))/a.
func sphereQuadraticRoots(a, b, c float64) (float64, float64, bool) {
	if math.Abs(a) < 1e-12 {
		return 0, 0, false
	}
	delta := b*b - a*c
	if delta < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(delta)
	t0 := (b - sq) / a
	t1 := (b + sq) / a
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1, true
}

// fracWrap wraps x into [0,1), the way tiled UV coordinates wrap.
func fracWrap(x float64) float64 {
	f := math.Mod(x, 1)
	if f < 0 {
		f += 1
	}
	return f
}
