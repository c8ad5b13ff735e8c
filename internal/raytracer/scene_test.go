package raytracer

import (
	"testing"

	"Raybeam/internal/raymath"
)

func TestSceneAddRemovePrimitiveTombstone(t *testing.T) {
	scene := NewScene(raymath.Vec3{}, raymath.Vec3{})
	h1 := scene.AddPrimitive(NewSphere(raymath.Vec3{}, 1, Material{}))
	h2 := scene.AddPrimitive(NewSphere(raymath.Vec3{X: 5}, 1, Material{}))

	if !scene.RemovePrimitive(h1) {
		t.Fatal("expected removal to succeed")
	}
	if scene.RemovePrimitive(h1) {
		t.Error("removing an already-removed handle should report false")
	}
	if _, ok := scene.Primitive(h1); ok {
		t.Error("removed handle should no longer resolve")
	}
	if p, ok := scene.Primitive(h2); !ok || p == nil {
		t.Error("h2 should still resolve after h1 is removed")
	}
}

func TestSceneAddRemoveLightTombstone(t *testing.T) {
	scene := NewScene(raymath.Vec3{}, raymath.Vec3{})
	h1 := scene.AddLight(NewPointLight(raymath.Vec3{}, raymath.Vec3{}))
	scene.AddLight(NewPointLight(raymath.Vec3{X: 1}, raymath.Vec3{X: 1, Y: 1, Z: 1}))

	if !scene.RemoveLight(h1) {
		t.Fatal("expected removal to succeed")
	}
	lights := scene.Lights()
	if len(lights) != 1 {
		t.Fatalf("expected 1 live light after removal, got %d", len(lights))
	}
	if lights[0].Pos != (raymath.Vec3{X: 1}) {
		t.Errorf("expected the surviving light at (1,0,0), got %v", lights[0].Pos)
	}
}

func TestSceneZeroIntensityLightIsNotMistakenForRemoved(t *testing.T) {
	scene := NewScene(raymath.Vec3{}, raymath.Vec3{})
	scene.AddLight(NewPointLight(raymath.Vec3{}, raymath.Vec3{}))
	if len(scene.Lights()) != 1 {
		t.Errorf("a legitimately zero-intensity light must still be live, got %d lights", len(scene.Lights()))
	}
}

func TestSceneIntersectNearestExcludesSelf(t *testing.T) {
	scene := NewScene(raymath.Vec3{}, raymath.Vec3{})
	sphere := NewSphere(raymath.Vec3{}, 1, Material{})
	scene.AddPrimitive(sphere)

	r := Ray{Origin: raymath.Vec3{Z: 5}, Direction: raymath.Vec3{Z: -1}}
	if _, ok := scene.IntersectNearest(r, sphere); ok {
		t.Error("excluding the only primitive should produce no hit")
	}
}
