package raytracer

import "Raybeam/internal/raymath"

// Cone is a capped finite cone: base center Base, unit axis Axis, base
// Radius, Height (apex is Base + Height*Axis). HasBase gates the optional
// base-disk cap; the apex end is never capped (it is a single point).
type Cone struct {
	Base     raymath.Vec3
	Axis     raymath.Vec3
	Radius   float64
	Height   float64
	Material Material
	HasBase  bool
}

// NewCone constructs a Cone with the base cap enabled.
func NewCone(base, axis raymath.Vec3, radius, height float64, material Material) *Cone {
	return &Cone{Base: base, Axis: axis.Normalize(), Radius: radius, Height: height, Material: material, HasBase: true}
}

func (c *Cone) BaseMaterial() Material { return c.Material }

func (c *Cone) Translate(v raymath.Vec3) { c.Base = c.Base.Add(v) }

func (c *Cone) Transform(m raymath.Matrix4) {
	c.Base = m.TransformPoint(c.Base)
	c.Axis = m.TransformDirection(c.Axis).Normalize()
}

// Apex returns Base + Height*Axis.
func (c *Cone) Apex() raymath.Vec3 { return c.Base.Add(c.Axis.MulScalar(c.Height)) }

func (c *Cone) Intersect(r Ray) (Hit, bool) {
	q := c.Axis.ProjectionMatrix()
	m := raymath.Identity3.Sub(q)
	s := r.Origin.Sub(c.Base)
	hdc := c.Axis.MulScalar(c.Height)
	h2 := c.Height * c.Height
	rad2 := c.Radius * c.Radius

	md := m.MulVec3(r.Direction)
	ms := m.MulVec3(s)
	qd := q.MulVec3(r.Direction)
	qs := q.MulVec3(s)

	a := h2*md.Dot(md) - rad2*qd.Dot(qd)
	b := 2 * (h2*md.Dot(ms) + rad2*qd.Dot(hdc.Sub(qs)))
	cc := h2*ms.Dot(ms) - rad2*hdc.Sub(qs).LengthSquared()

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
			apex := c.Apex()
			u := apex.Sub(p).Normalize()
			perpU := raymath.Identity3.Sub(u.ProjectionMatrix())
			n := faceForward(perpU.MulVec3(c.Axis).Normalize(), r.Direction)
			if !found || t < best.T {
				best, found = Hit{T: t, Point: p, Normal: n, Material: c.Material, Primitive: c}, true
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
