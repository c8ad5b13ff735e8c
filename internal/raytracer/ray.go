// Package raytracer is the rendering core: ray-primitive intersection, the
// scene graph, the camera/viewport projection model, and the parallel
// per-pixel shading pipeline.
package raytracer

import "Raybeam/internal/raymath"

// Ray is a parametric ray P(t) = Origin + t*Direction. Direction need not
// be unit; when it is, t equals Euclidean distance from Origin. Behavior
// for a zero-length Direction is undefined — it is a caller contract, not
// a condition the core detects.
type Ray struct {
	Origin    raymath.Vec3
	Direction raymath.Vec3
}

// At evaluates the ray at parameter t.
func (r Ray) At(t float64) raymath.Vec3 {
	return r.Origin.Add(r.Direction.MulScalar(t))
}
