package raytracer

import (
	"math"

	"Raybeam/internal/raymath"
)

// LightKind tags the variant of a Light, modeled as a tagged union rather
// than a class hierarchy so the shading hot path switches on a single
// uniform value.
type LightKind int

const (
	PointLight LightKind = iota
	SpotLight
	DirectionalLight
)

// Light is a tagged union of Point, Spot, and Directional variants.
// Intensity encodes color*magnitude. For Spot, HalfAngle is the cone
// half-angle in radians. Dir is stored pre-negated at construction so the
// hot path always reads "direction from surface toward the light" for
// directional lights.
type Light struct {
	Kind      LightKind
	Pos       raymath.Vec3
	Dir       raymath.Vec3 // unit; spot: direction pointing from the light toward the scene
	HalfAngle float64
	Intensity raymath.Vec3
}

// NewPointLight builds a Point light at pos with the given intensity.
func NewPointLight(pos, intensity raymath.Vec3) Light {
	return Light{Kind: PointLight, Pos: pos, Intensity: intensity}
}

// NewSpotLight builds a Spot light at pos, pointing toward dir (from the
// light toward the scene), with cone half-angle halfAngle radians.
func NewSpotLight(pos, dir raymath.Vec3, halfAngle float64, intensity raymath.Vec3) Light {
	return Light{Kind: SpotLight, Pos: pos, Dir: dir.Normalize(), HalfAngle: halfAngle, Intensity: intensity}
}

// NewDirectionalLight builds a Directional light. towardScene is the
// direction the light points (from the source toward the scene); it is
// negated at construction so Dir always holds the surface-to-light
// direction the shading kernel wants.
func NewDirectionalLight(towardScene, intensity raymath.Vec3) Light {
	return Light{Kind: DirectionalLight, Dir: towardScene.Normalize().Neg(), Intensity: intensity}
}

// toward returns the unnormalized vector from p toward the light, and
// whether this light is directional (for the shadow-ray upper bound).
func (l Light) toward(p raymath.Vec3) (dir raymath.Vec3, directional bool) {
	switch l.Kind {
	case PointLight, SpotLight:
		return l.Pos.Sub(p), false
	default:
		return l.Dir, true
	}
}

// insideCone reports whether a surface point is lit by a Spot light's
// cone; always true for Point/Directional lights. towardLight is the
// surface-to-light direction, the same vector toward() returns — the
// light-to-surface direction it represents from the light's own side is
// its negation, which is what's compared against Dir.
func (l Light) insideCone(towardLight raymath.Vec3) bool {
	if l.Kind != SpotLight {
		return true
	}
	lightToSurface := towardLight.Normalize().Neg()
	return l.Dir.Dot(lightToSurface) > math.Cos(l.HalfAngle)
}
