package raytracer

import (
	"math"

	"Raybeam/internal/raymath"
)

// shadowEpsilon is the lower bound on a shadow ray's parameter, skipping
// the sliver right at the surface where the ray would immediately
// re-intersect its own origin primitive; pointShadowBound is the upper
// bound for point/spot lights, expressed in units where t=1 lands exactly
// on the light itself, so an occluder beyond the light is not mistaken
// for a blocker. Directional lights have no upper bound: their source is
// conceptually at infinity.
const (
	shadowEpsilon    = 1e-4
	pointShadowBound = 1 - 1e-4
)

// shade evaluates Phong illumination at hit against every light in the
// scene: ambient once, then each light's diffuse/specular contribution
// gated by a hard shadow ray. The result is clamped to
// [0,1] per channel; byte conversion happens at the framebuffer-write
// boundary, not here.
func shade(scene *Scene, hit Hit, viewDir raymath.Vec3) raymath.Vec3 {
	color := scene.Ambient.Mul(hit.Material.KAmbient)

	for _, light := range scene.Lights() {
		toLight, directional := light.toward(hit.Point)
		lightDir := toLight.Normalize()

		if !light.insideCone(lightDir) {
			continue
		}

		shadowRay := Ray{Origin: hit.Point.Add(hit.Normal.MulScalar(shadowEpsilon)), Direction: toLight}
		upperBound := math.Inf(1)
		if !directional {
			upperBound = pointShadowBound
		}
		if occluded, ok := scene.IntersectNearest(shadowRay, hit.Primitive); ok {
			if occluded.T > shadowEpsilon && occluded.T < upperBound {
				continue
			}
		}

		nl := hit.Normal.Dot(lightDir)
		if nl <= 0 {
			continue
		}
		color = color.Add(hit.Material.KDiffuse.Mul(light.Intensity).MulScalar(nl))

		reflectDir := hit.Normal.MulScalar(2 * nl).Sub(lightDir)
		if rv := reflectDir.Dot(viewDir); rv > 0 {
			spec := math.Pow(rv, hit.Material.Shininess)
			color = color.Add(hit.Material.KSpecular.Mul(light.Intensity).MulScalar(spec))
		}
	}

	return color.Clamp(0, 1)
}
