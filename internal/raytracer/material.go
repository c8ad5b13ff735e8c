package raytracer

import "Raybeam/internal/raymath"

// Material holds the Phong reflectivity coefficients of a surface.
// KAmbient, KDiffuse, KSpecular components are expected in [0,1]; Shininess
// (the Phong exponent) must be > 0.
type Material struct {
	KAmbient  raymath.Vec3
	KDiffuse  raymath.Vec3
	KSpecular raymath.Vec3
	Shininess float64
}

// NewMaterial builds a Material from its three reflectivity coefficients
// and Phong exponent.
func NewMaterial(kAmbient, kDiffuse, kSpecular raymath.Vec3, shininess float64) Material {
	return Material{KAmbient: kAmbient, KDiffuse: kDiffuse, KSpecular: kSpecular, Shininess: shininess}
}

// Modulate returns a copy of m with every k_* coefficient multiplied
// component-wise by texel, the way a textured sphere/plane hit derives its
// per-hit material from the sampled texture.
func (m Material) Modulate(texel raymath.Vec3) Material {
	return Material{
		KAmbient:  m.KAmbient.Mul(texel),
		KDiffuse:  m.KDiffuse.Mul(texel),
		KSpecular: m.KSpecular.Mul(texel),
		Shininess: m.Shininess,
	}
}
