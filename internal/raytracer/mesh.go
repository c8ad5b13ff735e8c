package raytracer

import (
	"math"

	"Raybeam/internal/raymath"
)

// Triangle is a vertex-index triple into a Mesh's Vertices slice.
type Triangle struct {
	A, B, C uint32
}

const meshEpsilon = 1e-8

// Mesh is an ordered sequence of vertices and triangles sharing one
// Material, with a cached axis-aligned bounding box and centroid used for
// the AABB fast-rejection path. BBoxMin/BBoxMax/Centroid are
// recomputed after any Translate/Transform.
type Mesh struct {
	Vertices  []raymath.Vec3
	Triangles []Triangle
	Material  Material

	BBoxMin, BBoxMax raymath.Vec3
	Centroid         raymath.Vec3
}

// NewMesh constructs a Mesh from ownership-transferred vertex and triangle
// slices, computing the initial AABB and centroid. Triangle indices must
// be valid; the host that parsed the OBJ file is responsible for that.
func NewMesh(vertices []raymath.Vec3, triangles []Triangle, material Material) *Mesh {
	m := &Mesh{Vertices: vertices, Triangles: triangles, Material: material}
	m.recompute()
	return m
}

func (m *Mesh) BaseMaterial() Material { return m.Material }

func (m *Mesh) Translate(v raymath.Vec3) {
	for i := range m.Vertices {
		m.Vertices[i] = m.Vertices[i].Add(v)
	}
	m.recompute()
}

func (m *Mesh) Transform(mat raymath.Matrix4) {
	for i := range m.Vertices {
		m.Vertices[i] = mat.TransformPoint(m.Vertices[i])
	}
	m.recompute()
}

func (m *Mesh) recompute() {
	if len(m.Vertices) == 0 {
		m.BBoxMin, m.BBoxMax, m.Centroid = raymath.Zero, raymath.Zero, raymath.Zero
		return
	}
	min, max := m.Vertices[0], m.Vertices[0]
	var sum raymath.Vec3
	for _, v := range m.Vertices {
		min = raymath.Vec3{X: math.Min(min.X, v.X), Y: math.Min(min.Y, v.Y), Z: math.Min(min.Z, v.Z)}
		max = raymath.Vec3{X: math.Max(max.X, v.X), Y: math.Max(max.Y, v.Y), Z: math.Max(max.Z, v.Z)}
		sum = sum.Add(v)
	}
	m.BBoxMin, m.BBoxMax = min, max
	m.Centroid = sum.DivScalar(float64(len(m.Vertices)))
}

// intersectAABB applies the slab method and reports whether r can
// possibly hit the box, short-circuiting triangle tests on a miss. A zero
// direction component divides to +/-Inf, which the min/max comparisons
// below treat correctly without a special case.
func (m *Mesh) intersectAABB(r Ray) bool {
	tmin, tmax := math.Inf(-1), math.Inf(1)
	mins := [3]float64{m.BBoxMin.X, m.BBoxMin.Y, m.BBoxMin.Z}
	maxs := [3]float64{m.BBoxMax.X, m.BBoxMax.Y, m.BBoxMax.Z}
	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}

	for i := 0; i < 3; i++ {
		t0 := (mins[i] - origin[i]) / dir[i]
		t1 := (maxs[i] - origin[i]) / dir[i]
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tmin {
			tmin = t0
		}
		if t1 < tmax {
			tmax = t1
		}
		if tmax < tmin {
			return false
		}
	}
	return tmax >= math.Max(tmin, 0)
}

func (m *Mesh) Intersect(r Ray) (Hit, bool) {
	if !m.intersectAABB(r) {
		return Hit{}, false
	}

	best, found := Hit{}, false
	for _, tri := range m.Triangles {
		v0, v1, v2 := m.Vertices[tri.A], m.Vertices[tri.B], m.Vertices[tri.C]
		if t, ok := intersectTriangle(r, v0, v1, v2); ok {
			if !found || t < best.T {
				n := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
				best = Hit{T: t, Point: r.At(t), Normal: n, Material: m.Material, Primitive: m}
				found = true
			}
		}
	}
	return best, found
}

// intersectTriangle is the Möller-Trumbore ray-triangle test with
// backface culling: only a front-facing triangle (geometric normal
// opposite the ray direction) is accepted, so the returned normal never
// needs a post-hoc orientation flip.
func intersectTriangle(r Ray, v0, v1, v2 raymath.Vec3) (float64, bool) {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	geomNormal := edge1.Cross(edge2)
	if geomNormal.Dot(r.Direction) >= 0 {
		return 0, false
	}

	pvec := r.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if math.Abs(det) < meshEpsilon {
		return 0, false
	}
	invDet := 1 / det

	tvec := r.Origin.Sub(v0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	qvec := tvec.Cross(edge1)
	v := r.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := edge2.Dot(qvec) * invDet
	if t <= meshEpsilon {
		return 0, false
	}
	return t, true
}
