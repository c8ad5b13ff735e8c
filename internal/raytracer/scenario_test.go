package raytracer

import (
	"math"
	"testing"

	"Raybeam/internal/raymath"
)

// TestScenarioUnitSphereSinglePixel: a perspective camera looking straight
// down -Z at a unit sphere lit by a co-located white point light renders
// the single center pixel as white.
func TestScenarioUnitSphereSinglePixel(t *testing.T) {
	half := raymath.Vec3{X: 0.5, Y: 0.5, Z: 0.5}
	material := NewMaterial(half, half, raymath.Vec3{}, 32)

	scene := NewScene(raymath.Vec3{X: 1, Y: 1, Z: 1}, raymath.Vec3{})
	scene.AddPrimitive(NewSphere(raymath.Vec3{}, 1, material))
	scene.AddLight(NewPointLight(raymath.Vec3{Z: 3}, raymath.Vec3{X: 1, Y: 1, Z: 1}))

	cam := NewCamera(1, 1, 0.01, 0.01, 1)
	cam.Pos = raymath.Vec3{Z: 3}
	cam.LookAt(raymath.Vec3{}, raymath.Vec3{Y: 1})

	Render(scene, cam)

	px := cam.Framebuffer
	if len(px) != 4 {
		t.Fatalf("expected a 1x1 BGRA framebuffer, got %d bytes", len(px))
	}
	for i, channel := range []string{"B", "G", "R"} {
		if px[i] != 255 {
			t.Errorf("channel %s: expected 255, got %d", channel, px[i])
		}
	}
	if px[3] != 255 {
		t.Errorf("alpha: expected 255, got %d", px[3])
	}
}

// TestScenarioOrthographicPlaneHit: an orthographic camera looking
// straight down at the y=0 plane hits it at the camera's focal distance,
// with the normal flipped to face the ray. The camera sits two units
// above the plane so the viewport plane (camera position minus
// focal*Ez) lands one unit above y=0 rather than on it, making "hits at
// t=1" unambiguous.
func TestScenarioOrthographicPlaneHit(t *testing.T) {
	plane := NewPlane(raymath.Vec3{}, raymath.Vec3{Y: 1}, Material{})
	cam := NewCamera(1, 1, 0.01, 0.01, 1)
	cam.Pos = raymath.Vec3{Y: 2}
	cam.LookAt(raymath.Vec3{}, raymath.Vec3{Z: -1})
	cam.SetProjection(Orthographic)

	r := cam.PrimaryRay(0, 0)
	hit, ok := plane.Intersect(r)
	if !ok {
		t.Fatal("expected the orthographic ray to hit the plane")
	}
	if math.Abs(hit.T-1) > 1e-6 {
		t.Errorf("expected t=1, got %f", hit.T)
	}
	if hit.Normal != (raymath.Vec3{Y: 1}) {
		t.Errorf("expected normal (0,1,0), got %v", hit.Normal)
	}
}

// TestScenarioSphereOccludesPlane: a point on a plane directly beneath a
// sphere gets only the ambient term, while a point three radii aside is
// unoccluded and also gets diffuse.
func TestScenarioSphereOccludesPlane(t *testing.T) {
	mat := NewMaterial(raymath.Vec3{X: 0.2, Y: 0.2, Z: 0.2}, raymath.Vec3{X: 0.6, Y: 0.6, Z: 0.6}, raymath.Vec3{}, 1)
	scene := NewScene(raymath.Vec3{X: 1, Y: 1, Z: 1}, raymath.Vec3{})
	plane := NewPlane(raymath.Vec3{}, raymath.Vec3{Y: 1}, mat)
	scene.AddPrimitive(plane)
	scene.AddPrimitive(NewSphere(raymath.Vec3{Y: 2}, 1, mat))
	scene.AddLight(NewPointLight(raymath.Vec3{Y: 5}, raymath.Vec3{X: 1, Y: 1, Z: 1}))

	under := Hit{Point: raymath.Vec3{}, Normal: raymath.Vec3{Y: 1}, Material: mat, Primitive: plane}
	color := shade(scene, under, raymath.Vec3{Y: 1})
	wantAmbientOnly := mat.KAmbient
	if math.Abs(color.X-wantAmbientOnly.X) > 1e-9 || math.Abs(color.Y-wantAmbientOnly.Y) > 1e-9 {
		t.Errorf("occluded point: expected ambient-only %v, got %v", wantAmbientOnly, color)
	}

	aside := Hit{Point: raymath.Vec3{X: 3}, Normal: raymath.Vec3{Y: 1}, Material: mat, Primitive: plane}
	colorAside := shade(scene, aside, raymath.Vec3{Y: 1})
	if colorAside.X <= wantAmbientOnly.X {
		t.Errorf("unoccluded point: expected more than ambient-only, got %v vs ambient %v", colorAside, wantAmbientOnly)
	}
}

// TestScenarioCylinderSideHit hits a finite cylinder's curved side.
func TestScenarioCylinderSideHit(t *testing.T) {
	cyl := NewCylinder(raymath.Vec3{}, raymath.Vec3{Y: 1}, 1, 2, Material{})
	r := Ray{Origin: raymath.Vec3{X: 3, Y: 1}, Direction: raymath.Vec3{X: -1}}
	hit, ok := cyl.Intersect(r)
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(hit.T-2) > 1e-9 {
		t.Errorf("expected the nearer t=2, got %f", hit.T)
	}
	if hit.Normal != (raymath.Vec3{X: 1}) {
		t.Errorf("expected normal (1,0,0), got %v", hit.Normal)
	}
}

// TestScenarioConeSideHit hits a finite cone's curved side.
func TestScenarioConeSideHit(t *testing.T) {
	cone := NewCone(raymath.Vec3{}, raymath.Vec3{Y: 1}, 1, 1, Material{})
	r := Ray{Origin: raymath.Vec3{X: 2, Y: 0.5}, Direction: raymath.Vec3{X: -1}}
	hit, ok := cone.Intersect(r)
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(hit.T-1.5) > 0.05 {
		t.Errorf("expected t close to 1.5, got %f", hit.T)
	}
	if math.Abs(hit.Normal.Z) > 1e-9 {
		t.Errorf("expected the normal to lie in the X-Y plane (Z component 0), got %v", hit.Normal)
	}
}

// TestScenarioMeshCubeFrontFace hits the front face of a two-triangle
// cube face and rejects a ray the AABB should cull.
func TestScenarioMeshCubeFrontFace(t *testing.T) {
	verts := []raymath.Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0}, // back face z=0
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1}, // front face z=1
	}
	tris := []Triangle{
		{A: 4, B: 5, C: 6}, {A: 4, B: 6, C: 7}, // front face, CCW as seen from +Z
	}
	mesh := NewMesh(verts, tris, Material{})

	hitRay := Ray{Origin: raymath.Vec3{X: 0.5, Y: 0.5, Z: 2}, Direction: raymath.Vec3{Z: -1}}
	hit, ok := mesh.Intersect(hitRay)
	if !ok {
		t.Fatal("expected a front-face hit")
	}
	if math.Abs(hit.T-1) > 1e-9 {
		t.Errorf("expected t=1, got %f", hit.T)
	}
	if hit.Normal != (raymath.Vec3{Z: 1}) {
		t.Errorf("expected normal (0,0,1), got %v", hit.Normal)
	}

	missRay := Ray{Origin: raymath.Vec3{X: 0.5, Y: 0.5, Z: 2}, Direction: raymath.Vec3{X: 1}}
	if _, ok := mesh.Intersect(missRay); ok {
		t.Error("expected the AABB to reject this ray")
	}
}

// TestDeterminism checks that two renders of the same scene/camera
// produce byte-identical framebuffers.
func TestDeterminism(t *testing.T) {
	scene := NewScene(raymath.Vec3{X: 0.1, Y: 0.1, Z: 0.1}, raymath.Vec3{X: 0.2, Y: 0.2, Z: 0.2})
	scene.AddPrimitive(NewSphere(raymath.Vec3{Z: -3}, 1, NewMaterial(raymath.Vec3{X: 0.3}, raymath.Vec3{X: 0.5}, raymath.Vec3{X: 1, Y: 1, Z: 1}, 16)))
	scene.AddLight(NewPointLight(raymath.Vec3{X: 2, Y: 2}, raymath.Vec3{X: 1, Y: 1, Z: 1}))

	cam1 := NewCamera(16, 16, 2, 2, 1)
	cam1.Pos = raymath.Vec3{Z: 2}
	cam1.LookAt(raymath.Vec3{Z: -3}, raymath.Vec3{Y: 1})
	Render(scene, cam1)

	cam2 := NewCamera(16, 16, 2, 2, 1)
	cam2.Pos = raymath.Vec3{Z: 2}
	cam2.LookAt(raymath.Vec3{Z: -3}, raymath.Vec3{Y: 1})
	Render(scene, cam2)

	if len(cam1.Framebuffer) != len(cam2.Framebuffer) {
		t.Fatalf("framebuffer length mismatch: %d vs %d", len(cam1.Framebuffer), len(cam2.Framebuffer))
	}
	for i := range cam1.Framebuffer {
		if cam1.Framebuffer[i] != cam2.Framebuffer[i] {
			t.Fatalf("framebuffers diverge at byte %d: %d vs %d", i, cam1.Framebuffer[i], cam2.Framebuffer[i])
		}
	}
}
