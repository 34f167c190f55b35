package mesh

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triangle = `# a single lit triangle
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
vn 0 0 1
vn 0 0 1
f 1 2 3
`

func TestParseTriangle(t *testing.T) {
	data, err := Parse(strings.NewReader(triangle))
	require.NoError(t, err)

	assert.Equal(t, 3, data.VertexCount())
	assert.Equal(t, 1, data.TriangleCount())
	assert.True(t, data.HasNormals)
	assert.Equal(t, []uint16{0, 1, 2}, data.Indices)
	assert.Equal(t, []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, data.Positions)
	assert.Equal(t, []float32{0, 0, 1, 0, 0, 1, 0, 0, 1}, data.Normals)
}

func TestParseIndexPairs(t *testing.T) {
	data, err := Parse(strings.NewReader(`
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
vn 0 0 1
vn 0 0 1
f 1//1 2//2 3//3
`))
	require.NoError(t, err)
	assert.Equal(t, []uint16{0, 1, 2}, data.Indices)

	_, err = Parse(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1//2 2//2 3//3\n"))
	assert.ErrorContains(t, err, "position and normal index differ")
}

func TestParseMissingNormals(t *testing.T) {
	data, err := Parse(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"))
	require.NoError(t, err)

	assert.False(t, data.HasNormals)
	// Storage must still be allocated at full size, otherwise the
	// draw call would read past the buffer.
	assert.Equal(t, len(data.Positions), len(data.Normals))
	assert.Equal(t, make([]float32, 9), data.Normals)
}

func TestParseSkipsUnknownKeywords(t *testing.T) {
	data, err := Parse(strings.NewReader(`
o planet
s off
v 0 0 0
vt 0.5 0.5
v 1 0 0
v 0 1 0
f 1 2 3
`))
	require.NoError(t, err)
	assert.Equal(t, 3, data.VertexCount())
}

func TestParseErrors(t *testing.T) {
	for name, input := range map[string]string{
		"quad face":            "v 0 0 0\nv 1 0 0\nv 0 1 0\nv 1 1 0\nf 1 2 3 4\n",
		"index out of range":   "v 0 0 0\nv 1 0 0\nf 1 2 3\n",
		"zero index":           "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n",
		"bad float":            "v 0 zero 0\n",
		"short vertex":         "v 0 0\n",
		"normal count mismatch": "v 0 0 0\nv 1 0 0\nv 0 1 0\nvn 0 0 1\nf 1 2 3\n",
		"no vertices at all":   "# nothing here\n",
		"vertices but no faces": "v 0 0 0\nv 1 0 0\nv 0 1 0\n",
	} {
		_, err := Parse(strings.NewReader(input))
		assert.Error(t, err, name)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triangle.obj")
	require.NoError(t, os.WriteFile(path, []byte(triangle), 0o644))

	data, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, data.TriangleCount())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.obj"))
	assert.Error(t, err)
}
