package raytracer

import "Raybeam/internal/raymath"

// ProjectionMode selects how Camera turns a pixel into a primary ray.
type ProjectionMode int

const (
	Perspective ProjectionMode = iota
	Orthographic
	Oblique
)

// Camera is the observer pose plus the viewport projection model. Ez is
// the basis vector pointing away from the scene (toward the observer);
// -Ez is therefore the camera's forward direction, the convention the
// viewport-center formula (Pos - Focal*Ez) assumes. All viewport fields
// are derived from Pos/Ex/Ey/Ez/Focal/Width/Height and are recomputed by
// recomputeViewport after any pose change.
type Camera struct {
	Pos            raymath.Vec3
	Ex, Ey, Ez     raymath.Vec3
	Focal          float64
	Mode           ProjectionMode
	ObliqueAngles  raymath.Vec3 // successive rotation angles about Ex, Ey, Ez
	Cols, Rows     int
	Width, Height  float64 // viewport size in world units

	// Derived viewport geometry (recomputed, never set directly).
	center raymath.Vec3
	dx, dy raymath.Vec3
	p00    raymath.Vec3

	// Framebuffer is BGRA, row-major, cols*rows*4 bytes, owned by the camera.
	Framebuffer []byte
}

// NewCamera builds a camera at the origin with the world-axis basis
// (forward = -Z, up = +Y), the given resolution, viewport size, and focal
// distance.
func NewCamera(cols, rows int, width, height, focal float64) *Camera {
	c := &Camera{
		Ex:     raymath.Vec3{X: 1},
		Ey:     raymath.Vec3{Y: 1},
		Ez:     raymath.Vec3{Z: 1},
		Focal:  focal,
		Cols:   cols,
		Rows:   rows,
		Width:  width,
		Height: height,
	}
	c.Framebuffer = make([]byte, cols*rows*4)
	c.recomputeViewport()
	return c
}

func (c *Camera) recomputeViewport() {
	c.center = c.Pos.Sub(c.Ez.MulScalar(c.Focal))
	c.dx = c.Ex.MulScalar(c.Width / float64(c.Cols))
	c.dy = c.Ey.MulScalar(c.Height / float64(c.Rows))
	topLeft := c.center.Sub(c.Ex.MulScalar(c.Width / 2)).Add(c.Ey.MulScalar(c.Height / 2))
	c.p00 = topLeft.Add(c.dx.Sub(c.dy).MulScalar(0.5))
}

// Translate additively shifts the camera's position and rebuilds the
// derived viewport anchors.
func (c *Camera) Translate(v raymath.Vec3) {
	c.Pos = c.Pos.Add(v)
	c.recomputeViewport()
}

// Rotate rotates the camera's basis about axis by angle radians, pivoting
// about the camera's current position so Pos itself is unchanged.
func (c *Camera) Rotate(axis raymath.Vec3, angle float64) {
	m := raymath.RotationAroundAxis(axis, angle, c.Pos)
	c.Pos = m.TransformPoint(c.Pos)
	c.Ex = m.TransformDirection(c.Ex).Normalize()
	c.Ey = m.TransformDirection(c.Ey).Normalize()
	c.Ez = m.TransformDirection(c.Ez).Normalize()
	c.recomputeViewport()
}

// LookAt reorients the camera so -Ez points from Pos toward target, with
// Ex aligned to up x Ez.
func (c *Camera) LookAt(target, up raymath.Vec3) {
	forward := target.Sub(c.Pos).Normalize()
	c.Ez = forward.Neg()
	c.Ex = up.Cross(c.Ez).Normalize()
	c.Ey = c.Ez.Cross(c.Ex)
	c.recomputeViewport()
}

// SetFocalDistance changes the focal distance and rebuilds the viewport.
func (c *Camera) SetFocalDistance(f float64) {
	c.Focal = f
	c.recomputeViewport()
}

// SetViewportSize changes the world-space viewport size and rebuilds it.
func (c *Camera) SetViewportSize(w, h float64) {
	c.Width, c.Height = w, h
	c.recomputeViewport()
}

// SetProjection switches projection mode; oblique angles are left as-is.
func (c *Camera) SetProjection(mode ProjectionMode) {
	c.Mode = mode
}

// pixelPoint returns the viewport-plane world point for pixel (row, col),
// P00 + col*Dx - row*Dy.
func (c *Camera) pixelPoint(row, col int) raymath.Vec3 {
	return c.p00.Add(c.dx.MulScalar(float64(col))).Sub(c.dy.MulScalar(float64(row)))
}

// PrimaryRay builds the primary ray through pixel (row, col) per the
// active projection mode.
func (c *Camera) PrimaryRay(row, col int) Ray {
	pixel := c.pixelPoint(row, col)
	switch c.Mode {
	case Perspective:
		return Ray{Origin: c.Pos, Direction: pixel.Sub(c.Pos).Normalize()}
	case Orthographic:
		return Ray{Origin: pixel, Direction: c.Ez.Neg()}
	case Oblique:
		dir := c.Ez.Neg()
		dir = raymath.RotationAroundAxis(c.Ex, c.ObliqueAngles.X, raymath.Zero).TransformDirection(dir)
		dir = raymath.RotationAroundAxis(c.Ey, c.ObliqueAngles.Y, raymath.Zero).TransformDirection(dir)
		dir = raymath.RotationAroundAxis(c.Ez, c.ObliqueAngles.Z, raymath.Zero).TransformDirection(dir)
		return Ray{Origin: pixel, Direction: dir}
	default:
		return Ray{Origin: c.Pos, Direction: pixel.Sub(c.Pos).Normalize()}
	}
}

// PickResult is the outcome of a primary-ray pick.
type PickResult struct {
	Primitive Primitive
	Point     raymath.Vec3
	Normal    raymath.Vec3
}

// Pick casts the primary ray for pixel (row, col) against scene and
// returns the nearest hit, fulfilling the host's "primary-ray pick
// operation" contract.
func (c *Camera) Pick(scene *Scene, row, col int) (PickResult, bool) {
	r := c.PrimaryRay(row, col)
	hit, ok := scene.IntersectNearest(r, nil)
	if !ok {
		return PickResult{}, false
	}
	return PickResult{Primitive: hit.Primitive, Point: hit.Point, Normal: hit.Normal}, true
}
