package raytracer

import "Raybeam/internal/raymath"

// Cylinder is a capped finite cylinder: base center Base, unit axis Axis,
// Radius, Height (top center is Base + Height*Axis). HasTop/HasBase gate
// the optional end-cap disks.
type Cylinder struct {
	Base     raymath.Vec3
	Axis     raymath.Vec3
	Radius   float64
	Height   float64
	Material Material
	HasTop   bool
	HasBase  bool
}

// NewCylinder constructs a Cylinder with both caps enabled.
func NewCylinder(base, axis raymath.Vec3, radius, height float64, material Material) *Cylinder {
	return &Cylinder{Base: base, Axis: axis.Normalize(), Radius: radius, Height: height, Material: material, HasTop: true, HasBase: true}
}

func (c *Cylinder) BaseMaterial() Material { return c.Material }

func (c *Cylinder) Translate(v raymath.Vec3) { c.Base = c.Base.Add(v) }

func (c *Cylinder) Transform(m raymath.Matrix4) {
	c.Base = m.TransformPoint(c.Base)
	c.Axis = m.TransformDirection(c.Axis).Normalize()
}

// Top returns the top-cap center, Base + Height*Axis.
func (c *Cylinder) Top() raymath.Vec3 { return c.Base.Add(c.Axis.MulScalar(c.Height)) }

func (c *Cylinder) Intersect(r Ray) (Hit, bool) {
	q := c.Axis.ProjectionMatrix()
	m := raymath.Identity3.Sub(q)
	s := r.Origin.Sub(c.Base)

	md := m.MulVec3(r.Direction)
	ms := m.MulVec3(s)

	a := md.Dot(md)
	b := 2 * md.Dot(ms)
	cc := ms.Dot(ms) - c.Radius*c.Radius

	best, found := Hit{}, false

	if t0, t1, ok := quadraticRoots(a, b, cc); ok {
		for _, t := range [2]float64{t0, t1} {
			if t < 0 {
				continue
			}
			p := r.At(t)
			rel := p.Sub(c.Base)
			axial := rel.Dot(c.Axis)
			if axial <= 0 || axial >= c.Height {
				continue
			}
			n := faceForward(m.MulVec3(rel).Normalize(), r.Direction)
			if !found || t < best.T {
				best, found = Hit{T: t, Point: p, Normal: n, Material: c.Material, Primitive: c}, true
			}
		}
	}

	if c.HasTop {
		if h, ok := diskIntersect(r, c.Top(), c.Axis, c.Radius, c.Material, c); ok {
			if !found || h.T < best.T {
				best, found = h, true
			}
		}
	}
	if c.HasBase {
		if h, ok := diskIntersect(r, c.Base, c.Axis.Neg(), c.Radius, c.Material, c); ok {
			if !found || h.T < best.T {
				best, found = h, true
			}
		}
	}

	return best, found
}

// diskIntersect tests a ray against the disk of the given radius centered
// at center with (outward) unit normal normal, used for cylinder/cone end
// caps.
func diskIntersect(r Ray, center, normal raymath.Vec3, radius float64, material Material, owner Primitive) (Hit, bool) {
	denom := normal.Dot(r.Direction)
	if denom == 0 {
		return Hit{}, false
	}
	t := -normal.Dot(r.Origin.Sub(center)) / denom
	if t <= 0 {
		return Hit{}, false
	}
	p := r.At(t)
	if p.Sub(center).LengthSquared() > radius*radius {
		return Hit{}, false
	}
	n := faceForward(normal, r.Direction)
	return Hit{T: t, Point: p, Normal: n, Material: material, Primitive: owner}, true
}
