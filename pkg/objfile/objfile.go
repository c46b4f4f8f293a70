// Package objfile reads and writes the subset of Wavefront OBJ needed
// to exchange triangle meshes with the occluder pipeline: vertex
// positions and faces. Faces with more than three corners are fan
// triangulated; normals, texture coordinates, groups and materials are
// ignored.
package objfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/core/math32"

	"github.com/chazu/occlude/pkg/kernel"
)

// Decode reads an OBJ stream into a mesh.
func Decode(r io.Reader) (*kernel.Mesh, error) {
	mesh := &kernel.Mesh{}
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("objfile: line %d: vertex needs 3 coordinates", lineNo)
			}
			var coords [3]float32
			for i := 0; i < 3; i++ {
				f, err := strconv.ParseFloat(fields[i+1], 32)
				if err != nil {
					return nil, fmt.Errorf("objfile: line %d: bad coordinate %q: %w", lineNo, fields[i+1], err)
				}
				coords[i] = float32(f)
			}
			mesh.Vertices = append(mesh.Vertices, math32.Vec3(coords[0], coords[1], coords[2]))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("objfile: line %d: face needs at least 3 corners", lineNo)
			}
			corners := make([]uint16, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				idx, err := faceIndex(ref, len(mesh.Vertices))
				if err != nil {
					return nil, fmt.Errorf("objfile: line %d: %w", lineNo, err)
				}
				corners = append(corners, idx)
			}
			// Fan triangulation around the first corner.
			for i := 1; i+1 < len(corners); i++ {
				mesh.Indices = append(mesh.Indices, corners[0], corners[i], corners[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("objfile: read: %w", err)
	}
	if mesh.IsEmpty() || len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("objfile: no triangles found")
	}
	return mesh, nil
}

// faceIndex parses one face corner reference ("7", "7/2", "7//3" or a
// negative relative index) into a zero-based vertex index.
func faceIndex(ref string, vertexCount int) (uint16, error) {
	if i := strings.IndexByte(ref, '/'); i >= 0 {
		ref = ref[:i]
	}
	n, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("bad face index %q: %w", ref, err)
	}
	if n < 0 {
		n = vertexCount + n + 1
	}
	if n < 1 || n > vertexCount {
		return 0, fmt.Errorf("face index %d out of range (%d vertices)", n, vertexCount)
	}
	if n-1 > int(^uint16(0)) {
		return 0, fmt.Errorf("face index %d exceeds 16-bit index space", n)
	}
	return uint16(n - 1), nil
}

// Encode writes m as an OBJ stream.
func Encode(w io.Writer, m *kernel.Mesh) error {
	bw := bufio.NewWriter(w)
	for _, v := range m.Vertices {
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z); err != nil {
			return fmt.Errorf("objfile: write: %w", err)
		}
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		_, err := fmt.Fprintf(bw, "f %d %d %d\n",
			m.Indices[i]+1, m.Indices[i+1]+1, m.Indices[i+2]+1)
		if err != nil {
			return fmt.Errorf("objfile: write: %w", err)
		}
	}
	return bw.Flush()
}

// Load reads an OBJ file into a mesh.
func Load(path string) (*kernel.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("objfile: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Save writes a mesh to an OBJ file.
func Save(path string, m *kernel.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("objfile: %w", err)
	}
	if err := Encode(f, m); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("objfile: %w", err)
	}
	return nil
}
