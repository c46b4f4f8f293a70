package occluder

import (
	"cogentcore.org/core/math32"

	"github.com/chazu/occlude/pkg/kernel"
)

// Unit cuboid template. Vertices 0-3 are the +Z face, 4-7 the -Z face;
// each index table below refers to this ordering.
var cubeVertices = [8]math32.Vector3{
	{X: -1, Y: 1, Z: 1},
	{X: -1, Y: -1, Z: 1},
	{X: 1, Y: -1, Z: 1},
	{X: 1, Y: 1, Z: 1},
	{X: -1, Y: 1, Z: -1},
	{X: -1, Y: -1, Z: -1},
	{X: 1, Y: -1, Z: -1},
	{X: 1, Y: 1, Z: -1},
}

var cubeIndices = [36]uint16{
	0, 1, 2,
	0, 2, 3,
	3, 2, 6,
	3, 6, 7,
	0, 7, 4,
	0, 3, 7,
	4, 7, 5,
	7, 6, 5,
	0, 4, 5,
	0, 5, 1,
	1, 5, 6,
	1, 6, 2,
}

var cubeIndicesSides = [24]uint16{
	0, 1, 2,
	0, 2, 3,
	3, 2, 6,
	3, 6, 7,
	4, 7, 5,
	7, 6, 5,
	0, 4, 5,
	0, 5, 1,
}

var cubeIndicesDiagonals = [12]uint16{
	0, 1, 6,
	0, 6, 7,
	4, 5, 2,
	4, 2, 3,
}

var cubeIndicesBottom = [6]uint16{
	1, 5, 6,
	1, 6, 2,
}

var cubeIndicesTop = [6]uint16{
	0, 7, 4,
	0, 3, 7,
}

// selectIndices returns the index table for the highest-priority box
// type present in flags, and which type it satisfied. A full BoxRegular
// is matched before its constituent faces so a closed cuboid emits the
// single 36-index table.
func selectIndices(flags BoxType) ([]uint16, BoxType) {
	switch {
	case flags&BoxRegular == BoxRegular:
		return cubeIndices[:], BoxRegular
	case flags&BoxSides == BoxSides:
		return cubeIndicesSides[:], BoxSides
	case flags&BoxBottom == BoxBottom:
		return cubeIndicesBottom[:], BoxBottom
	case flags&BoxTop == BoxTop:
		return cubeIndicesTop[:], BoxTop
	case flags&BoxDiagonals == BoxDiagonals:
		return cubeIndicesDiagonals[:], BoxDiagonals
	}
	return nil, BoxNone
}

// indexCountPerBox returns the number of indices one box contributes
// for the given topology flags.
func indexCountPerBox(flags BoxType) int {
	count := 0
	for flags != BoxNone {
		indices, selected := selectIndices(flags)
		count += len(indices)
		flags &^= selected
	}
	return count
}

const vertexCountPerBox = len(cubeVertices)

// addBox appends one cuboid to m, centered at center with the given
// half-extent. When color is non-nil every position is followed by the
// color, and index offsets count positions only (vertex count / 2).
func addBox(m *kernel.Mesh, center, half math32.Vector3, flags BoxType, color *math32.Vector3) {
	offset := len(m.Vertices)
	if color != nil {
		offset /= 2
	}

	for _, cv := range cubeVertices {
		v := math32.Vec3(half.X*cv.X, half.Y*cv.Y, half.Z*cv.Z).Add(center)
		m.Vertices = append(m.Vertices, v)
		if color != nil {
			m.Vertices = append(m.Vertices, *color)
		}
	}

	for flags != BoxNone {
		indices, selected := selectIndices(flags)
		for _, idx := range indices {
			m.Indices = append(m.Indices, idx+uint16(offset))
		}
		flags &^= selected
	}
}
