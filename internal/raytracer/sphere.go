package raytracer

import (
	"math"

	"Raybeam/internal/raymath"
)

// Sphere is a center + radius analytic primitive with an optional texture.
type Sphere struct {
	Center   raymath.Vec3
	Radius   float64
	Material Material
	Texture  Sampler
}

// NewSphere constructs a Sphere. Radius must be > 0.
func NewSphere(center raymath.Vec3, radius float64, material Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: material}
}

func (s *Sphere) BaseMaterial() Material { return s.Material }

func (s *Sphere) Translate(v raymath.Vec3) { s.Center = s.Center.Add(v) }

func (s *Sphere) Transform(m raymath.Matrix4) {
	s.Center = m.TransformPoint(s.Center)
	// Radius is rescaled by the uniform part of the transform's upper-left
	// block; non-uniform scale would turn the sphere into an ellipsoid,
	// which this primitive cannot represent, so the average axis scale is
	// used as the closest faithful approximation.
	upper := m.Upper3()
	sx := raymath.Vec3{X: upper.M00, Y: upper.M10, Z: upper.M20}.Length()
	sy := raymath.Vec3{X: upper.M01, Y: upper.M11, Z: upper.M21}.Length()
	sz := raymath.Vec3{X: upper.M02, Y: upper.M12, Z: upper.M22}.Length()
	s.Radius *= (sx + sy + sz) / 3
}

func (s *Sphere) Intersect(r Ray) (Hit, bool) {
	v := s.Center.Sub(r.Origin)
	a := r.Direction.Dot(r.Direction)
	b := r.Direction.Dot(v)
	c := v.Dot(v) - s.Radius*s.Radius

	t0, t1, ok := sphereQuadraticRoots(a, b, c)
	if !ok {
		return Hit{}, false
	}

	t := t0
	if t <= 0 {
		t = t1
	}
	if t <= 0 {
		return Hit{}, false
	}

	p := r.At(t)
	n := faceForward(p.Sub(s.Center).DivScalar(s.Radius), r.Direction)
	mat := s.Material
	if s.Texture != nil {
		u, v := sphereUV(n)
		mat = mat.Modulate(s.Texture.Sample(u, v))
	}
	return Hit{T: t, Point: p, Normal: n, Material: mat, Primitive: s}, true
}

// sphereUV maps a point on the unit sphere (given as the outward normal)
// to UV space using the standard spherical-coordinates convention.
func sphereUV(n raymath.Vec3) (u, v float64) {
	u = 0.5 + (math.Atan2(n.Z, n.X)-math.Pi/2)/(-2*math.Pi)
	v = 0.5 - math.Asin(clampToUnit(n.Y))/math.Pi
	return fracWrap(u), fracWrap(v)
}

func clampToUnit(x float64) float64 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}
