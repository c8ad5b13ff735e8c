package raytracer

import (
	"testing"

	"Raybeam/internal/raymath"
)

func cubeMesh() *Mesh {
	v := []raymath.Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
	tris := []Triangle{{A: 4, B: 5, C: 6}, {A: 4, B: 6, C: 7}}
	return NewMesh(v, tris, Material{})
}

func TestMeshAABBSoundness(t *testing.T) {
	m := cubeMesh()

	hits := Ray{Origin: raymath.Vec3{X: 0.5, Y: 0.5, Z: 2}, Direction: raymath.Vec3{Z: -1}}
	if !m.intersectAABB(hits) {
		t.Error("a ray through the box should pass the AABB test")
	}

	misses := Ray{Origin: raymath.Vec3{X: 10, Y: 10, Z: 10}, Direction: raymath.Vec3{X: 1}}
	if m.intersectAABB(misses) {
		t.Error("a ray nowhere near the box should fail the AABB test")
	}
}

func TestMeshTranslateRecomputesBounds(t *testing.T) {
	m := cubeMesh()
	m.Translate(raymath.Vec3{X: 10})
	if m.BBoxMin.X != 10 || m.BBoxMax.X != 11 {
		t.Errorf("expected bbox shifted by 10 in X, got min=%v max=%v", m.BBoxMin, m.BBoxMax)
	}
	if m.Centroid.X != 10.5 {
		t.Errorf("expected centroid.X = 10.5, got %f", m.Centroid.X)
	}
}

func TestMeshBackfaceCulled(t *testing.T) {
	m := cubeMesh()
	r := Ray{Origin: raymath.Vec3{X: 0.5, Y: 0.5, Z: -2}, Direction: raymath.Vec3{Z: 1}}
	if _, ok := m.Intersect(r); ok {
		t.Error("a ray hitting the mesh's back face first should be culled, not reported")
	}
}
