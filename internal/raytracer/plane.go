package raytracer

import "Raybeam/internal/raymath"

// Plane is an infinite plane through Anchor with unit Normal, with an
// optional texture tiled by (TileX, TileY).
type Plane struct {
	Anchor   raymath.Vec3
	Normal   raymath.Vec3
	Material Material
	Texture  Sampler
	TileX    float64
	TileY    float64
}

// NewPlane constructs a Plane. Normal is re-normalized on construction.
func NewPlane(anchor, normal raymath.Vec3, material Material) *Plane {
	return &Plane{Anchor: anchor, Normal: normal.Normalize(), Material: material, TileX: 1, TileY: 1}
}

func (p *Plane) BaseMaterial() Material { return p.Material }

func (p *Plane) Translate(v raymath.Vec3) { p.Anchor = p.Anchor.Add(v) }

func (p *Plane) Transform(m raymath.Matrix4) {
	p.Anchor = m.TransformPoint(p.Anchor)
	p.Normal = m.TransformDirection(p.Normal).Normalize()
}

func (p *Plane) Intersect(r Ray) (Hit, bool) {
	denom := p.Normal.Dot(r.Direction)
	if denom == 0 {
		return Hit{}, false
	}
	t := -p.Normal.Dot(r.Origin.Sub(p.Anchor)) / denom
	if t < 0 {
		return Hit{}, false
	}

	pt := r.At(t)
	n := p.Normal
	if denom > 0 {
		n = n.Neg()
	}
	mat := p.Material
	if p.Texture != nil {
		u, v := p.planeUV(pt)
		mat = mat.Modulate(p.Texture.Sample(u, v))
	}
	return Hit{T: t, Point: pt, Normal: n, Material: mat, Primitive: p}, true
}

// planeUV builds two in-plane basis vectors and projects pt onto them,
// wrapping into [0,1] per the tiling scale.
func (p *Plane) planeUV(pt raymath.Vec3) (u, v float64) {
	xAxis := raymath.Vec3{X: 1}
	b1 := p.Normal.Cross(xAxis)
	if b1.LengthSquared() < 1e-12 {
		b1 = p.Normal.Cross(raymath.Vec3{Y: 1})
	}
	b1 = b1.Normalize()
	b2 := p.Normal.Cross(b1)

	rel := pt.Sub(p.Anchor)
	tileX := p.TileX
	if tileX == 0 {
		tileX = 1
	}
	tileY := p.TileY
	if tileY == 0 {
		tileY = 1
	}
	u = rel.Dot(b1) / tileX
	v = rel.Dot(b2) / tileY
	return fracWrap(u), fracWrap(v)
}
