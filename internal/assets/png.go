package assets

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"Raybeam/internal/logger"
	"Raybeam/internal/raytracer"
)

// LoadPNG decodes a PNG file into the (width, height, pitch, bytesPerPixel,
// pixels) quintuple the core's Texture expects, via the standard library
// decoder (there is no third-party PNG codec anywhere in the retrieval
// pack to ground an alternative on).
func LoadPNG(path string) (*raytracer.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}

	rgba, ok := img.(*image.NRGBA)
	if !ok {
		bounds := img.Bounds()
		converted := image.NewNRGBA(bounds)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				converted.Set(x, y, img.At(x, y))
			}
		}
		rgba = converted
	}

	width, height := rgba.Rect.Dx(), rgba.Rect.Dy()
	logger.Log.Infow("png loaded", "path", path, "width", width, "height", height)
	return raytracer.NewTexture(width, height, rgba.Stride, 4, rgba.Pix), nil
}
