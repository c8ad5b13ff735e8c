package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triangleOBJ = `
# a single triangle
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`

const quadOBJ = `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`

func writeOBJ(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mesh.obj")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOBJTriangle(t *testing.T) {
	vertices, indices, err := LoadOBJ(writeOBJ(t, triangleOBJ))
	require.NoError(t, err)
	assert.Len(t, vertices, 3)
	assert.Equal(t, []uint32{0, 1, 2}, indices)
}

func TestLoadOBJQuadFanTriangulated(t *testing.T) {
	vertices, indices, err := LoadOBJ(writeOBJ(t, quadOBJ))
	require.NoError(t, err)
	assert.Len(t, vertices, 4)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, indices)
}

func TestLoadOBJMissingFile(t *testing.T) {
	_, _, err := LoadOBJ(filepath.Join(t.TempDir(), "missing.obj"))
	assert.Error(t, err)
}

func TestLoadOBJMalformedFace(t *testing.T) {
	_, _, err := LoadOBJ(writeOBJ(t, "v 0 0 0\nf 1\n"))
	assert.Error(t, err)
}
