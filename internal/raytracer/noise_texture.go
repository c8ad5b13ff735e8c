package raytracer

import (
	perlin "github.com/aquilax/go-perlin"

	"Raybeam/internal/raymath"
)

// NoiseTexture is a procedural Sampler backed by Perlin noise, an
// alternative to an image-backed Texture for primitives that don't need a
// decoded asset, grounded on the go-perlin usage from the voxel terrain
// generator it was lifted from.
type NoiseTexture struct {
	noise *perlin.Perlin
	Scale float64
	Low   raymath.Vec3
	High  raymath.Vec3
}

// NewNoiseTexture builds a NoiseTexture. scale controls the UV-to-noise
// frequency; low/high are the color endpoints the noise value in [0,1] is
// lerped between.
func NewNoiseTexture(seed int64, scale float64, low, high raymath.Vec3) *NoiseTexture {
	return &NoiseTexture{
		noise: perlin.NewPerlin(2, 2, 3, seed),
		Scale: scale,
		Low:   low,
		High:  high,
	}
}

// Sample evaluates 2D Perlin noise at (u,v)*Scale, remaps it from
// go-perlin's roughly [-1,1] range into [0,1], and lerps Low/High by it.
func (n *NoiseTexture) Sample(u, v float64) raymath.Vec3 {
	raw := n.noise.Noise2D(u*n.Scale, v*n.Scale)
	t := clampToUnit(raw)*0.5 + 0.5
	return n.Low.MulScalar(1 - t).Add(n.High.MulScalar(t))
}
