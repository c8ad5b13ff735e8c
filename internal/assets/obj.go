// Package assets holds the host-side decoders kept outside the rendering
// core: Wavefront OBJ parsing and PNG texture decoding. Nothing here is
// imported by internal/raytracer; callers hand the decoded vertex/index or
// pixel data to the core's constructors.
package assets

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"Raybeam/internal/logger"
	"Raybeam/internal/raymath"
)

// LoadOBJ parses a Wavefront OBJ file's "v" and "f" records into a flat
// vertex slice and a flat triangle-index slice (three uint32 per
// triangle). Faces with more than three vertices are fan-triangulated.
// Only the vertex-position index of
// each face corner is used; texture/normal sub-indices, if present, are
// ignored since Mesh carries no per-vertex UV or normal data.
func LoadOBJ(path string) ([]raymath.Vec3, []uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("assets: open %s: %w", path, err)
	}
	defer f.Close()

	var vertices []raymath.Vec3
	var indices []uint32

	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, nil, fmt.Errorf("assets: %s:%d: malformed vertex line", path, lineNum)
			}
			x, errX := strconv.ParseFloat(fields[1], 64)
			y, errY := strconv.ParseFloat(fields[2], 64)
			z, errZ := strconv.ParseFloat(fields[3], 64)
			if errX != nil || errY != nil || errZ != nil {
				return nil, nil, fmt.Errorf("assets: %s:%d: malformed vertex coordinates", path, lineNum)
			}
			vertices = append(vertices, raymath.Vec3{X: x, Y: y, Z: z})
		case "f":
			if len(fields) < 4 {
				return nil, nil, fmt.Errorf("assets: %s:%d: face needs at least 3 vertices", path, lineNum)
			}
			corners := make([]uint32, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				idx, err := parseFaceIndex(tok, len(vertices))
				if err != nil {
					return nil, nil, fmt.Errorf("assets: %s:%d: %w", path, lineNum, err)
				}
				corners = append(corners, idx)
			}
			for i := 1; i+1 < len(corners); i++ {
				indices = append(indices, corners[0], corners[i], corners[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("assets: scan %s: %w", path, err)
	}

	logger.Log.Infow("obj loaded", "path", path, "vertices", len(vertices), "triangles", len(indices)/3)
	return vertices, indices, nil
}

// parseFaceIndex reads the vertex-position component of a face corner
// token ("v", "v/vt", or "v/vt/vn") and converts OBJ's 1-based (or
// negative, relative-to-end) indexing to a 0-based uint32.
func parseFaceIndex(tok string, vertexCount int) (uint32, error) {
	vPart := strings.SplitN(tok, "/", 2)[0]
	n, err := strconv.Atoi(vPart)
	if err != nil {
		return 0, fmt.Errorf("malformed face index %q", tok)
	}
	if n < 0 {
		n = vertexCount + n + 1
	}
	if n < 1 {
		return 0, fmt.Errorf("face index %q out of range", tok)
	}
	return uint32(n - 1), nil
}
