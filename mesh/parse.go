package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxVertices is the largest vertex count addressable by the 16-bit
// index list.
const maxVertices = 1 << 16

// LoadFile reads an ASCII mesh file from disk.
func LoadFile(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, fmt.Errorf("mesh: %w", err)
	}
	defer f.Close()
	data, err := Parse(f)
	if err != nil {
		return Data{}, fmt.Errorf("mesh: %s: %w", path, err)
	}
	return data, nil
}

// Parse reads the Wavefront-style ASCII subset the orrery ships its
// geometry in: "v x y z" vertex positions, optional "vn x y z" vertex
// normals (one per vertex, in vertex order) and "f a b c" triangles
// with 1-based indices ("a//a" index pairs are accepted as long as
// both sides agree). Anything else is skipped. Malformed lines,
// non-triangle faces, out-of-range indices, mismatched normal counts,
// empty meshes and meshes too large for 16-bit indices are errors.
func Parse(r io.Reader) (Data, error) {
	var (
		positions []float32
		normals   []float32
		indices   []uint16
	)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			xyz, err := parseTriple(fields[1:])
			if err != nil {
				return Data{}, fmt.Errorf("line %d: vertex: %w", line, err)
			}
			positions = append(positions, xyz[0], xyz[1], xyz[2])
			if len(positions) > 3*maxVertices {
				return Data{}, fmt.Errorf("line %d: more than %d vertices", line, maxVertices)
			}
		case "vn":
			xyz, err := parseTriple(fields[1:])
			if err != nil {
				return Data{}, fmt.Errorf("line %d: normal: %w", line, err)
			}
			normals = append(normals, xyz[0], xyz[1], xyz[2])
		case "f":
			if len(fields) != 4 {
				return Data{}, fmt.Errorf("line %d: face with %d corners, only triangles are supported", line, len(fields)-1)
			}
			for _, corner := range fields[1:] {
				index, err := parseCorner(corner)
				if err != nil {
					return Data{}, fmt.Errorf("line %d: %w", line, err)
				}
				indices = append(indices, index)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return Data{}, err
	}
	// Empty geometry has to be rejected here: the GPU upload takes
	// the address of the first element of every array.
	if len(positions) == 0 {
		return Data{}, fmt.Errorf("no vertices")
	}
	if len(indices) == 0 {
		return Data{}, fmt.Errorf("no faces")
	}

	data := Data{Positions: positions, Indices: indices}
	switch {
	case len(normals) == 0:
		data.Normals = make([]float32, len(positions))
	case len(normals) != len(positions):
		return Data{}, fmt.Errorf("%d normals for %d vertices", len(normals)/3, len(positions)/3)
	default:
		data.Normals = normals
		data.HasNormals = true
	}
	for _, index := range indices {
		if int(index) >= data.VertexCount() {
			return Data{}, fmt.Errorf("face index %d out of range, mesh has %d vertices", int(index)+1, data.VertexCount())
		}
	}
	return data, nil
}

func parseTriple(fields []string) ([3]float32, error) {
	var xyz [3]float32
	if len(fields) != 3 {
		return xyz, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return xyz, fmt.Errorf("component %q: %w", field, err)
		}
		xyz[i] = float32(v)
	}
	return xyz, nil
}

func parseCorner(corner string) (uint16, error) {
	vertex := corner
	if before, after, found := strings.Cut(corner, "//"); found {
		if before != after {
			return 0, fmt.Errorf("corner %q: position and normal index differ", corner)
		}
		vertex = before
	}
	index, err := strconv.ParseUint(vertex, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corner %q: %w", corner, err)
	}
	if index == 0 || index > maxVertices {
		return 0, fmt.Errorf("corner %q: index out of range", corner)
	}
	return uint16(index - 1), nil
}
