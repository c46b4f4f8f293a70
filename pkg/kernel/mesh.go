package kernel

import "cogentcore.org/core/math32"

// Mesh is an indexed triangle mesh. Indices are 16-bit triples so the
// result can be handed directly to renderers consuming short index
// buffers; this caps a single mesh at 65536 vertices.
//
// Debug meshes produced by the occluder interleave a color after each
// position, in which case the vertex stream alternates position, color.
type Mesh struct {
	Vertices []math32.Vector3
	Indices  []uint16
}

// VertexCount returns the number of vertex entries. For an interleaved
// debug mesh this counts colors too.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Triangle returns the corner positions of the i-th triangle.
func (m *Mesh) Triangle(i int) (a, b, c math32.Vector3) {
	a = m.Vertices[m.Indices[3*i+0]]
	b = m.Vertices[m.Indices[3*i+1]]
	c = m.Vertices[m.Indices[3*i+2]]
	return
}

// Bounds returns the axis-aligned bounding box over the vertices that
// are actually referenced by the index list.
func (m *Mesh) Bounds() math32.Box3 {
	b := math32.B3Empty()
	for _, idx := range m.Indices {
		b.ExpandByPoint(m.Vertices[idx])
	}
	return b
}
