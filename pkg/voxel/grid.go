// Package voxel implements the voxel stage of the occluder pipeline:
// conservative shell rasterization of a triangle mesh into a cubic
// lattice, a per-axis plane index over the shell, and the per-cell
// visibility and minimum-distance fields that classify interior cells.
package voxel

import (
	"fmt"
	"math"

	"cogentcore.org/core/math32"

	"github.com/chazu/occlude/pkg/geom"
	"github.com/chazu/occlude/pkg/kernel"
)

// Infinite is the distance sentinel meaning no shell voxel exists in
// the positive direction on that axis.
const Infinite int32 = math.MaxInt32

// Visibility direction bits. A bit is set when at least one shell voxel
// exists strictly beyond the cell in that direction.
const (
	VisPlusX uint8 = 1 << iota
	VisMinusX
	VisPlusY
	VisMinusY
	VisPlusZ
	VisMinusZ

	VisAll uint8 = 0x3f
)

// Status is the per-cell classification.
type Status struct {
	Visibility uint8
	Clipped    bool
	Inner      bool
}

// Dist holds, per axis, the grid distance to the nearest shell voxel
// strictly in the positive direction. Infinite when none exists; zero
// when a shell voxel shares the cell's coordinate on that axis, which
// forces non-inner classification.
type Dist struct {
	X, Y, Z int32
}

// Voxel is a shell voxel: a cell hit by conservative triangle
// rasterization.
type Voxel struct {
	Bounds   math32.Box3
	Position math32.Vector3i
}

// Grid is the run-scoped voxel context. All dense fields are sized
// Dim.X*Dim.Y*Dim.Z and indexed by Flatten; the grid is owned by a
// single run and never shared.
type Grid struct {
	Dim       math32.Vector3i
	Size      int
	Bounds    math32.Box3 // mesh bounds snapped outward, padded one voxel per side
	VoxelSize float32

	// Occupancy maps a flattened cell to its index in Shell, -1 if the
	// cell holds no shell voxel.
	Occupancy []int32
	Status    []Status
	Dist      []Dist

	Shell []Voxel

	// Plane buckets: PlanesX is keyed by (y,z) and holds the shell
	// voxels sharing that Y,Z pair, and symmetrically for Y and Z.
	PlanesX [][]Voxel
	PlanesY [][]Voxel
	PlanesZ [][]Voxel
}

// Flatten maps a grid position to its dense field index. The mapping
// x + Dx*y + Dx*Dy*z is fixed for the lifetime of a run.
func Flatten(p, dim math32.Vector3i) int {
	return int(p.X) + int(dim.X)*int(p.Y) + int(dim.X)*int(dim.Y)*int(p.Z)
}

// Unflatten is the inverse of Flatten.
func Unflatten(i int, dim math32.Vector3i) math32.Vector3i {
	dimXY := int(dim.X) * int(dim.Y)
	z := i / dimXY
	i -= z * dimXY
	y := i / int(dim.X)
	x := i % int(dim.X)
	return math32.Vec3i(int32(x), int32(y), int32(z))
}

// Flatten2 maps a 2D bucket coordinate to its plane index, a + da*b.
func Flatten2(a, b, da int32) int {
	return int(a) + int(da)*int(b)
}

// NewGrid derives the lattice for a mesh: the mesh AABB is snapped
// outward to whole-voxel boundaries, expanded by one voxel on each
// side, and divided into cubic cells of edge voxelSize. The dense
// occupancy, status and distance fields are allocated empty.
func NewGrid(m *kernel.Mesh, voxelSize float32) (*Grid, error) {
	if voxelSize <= 0 {
		return nil, fmt.Errorf("voxel: voxel size must be positive, got %v", voxelSize)
	}
	if m == nil || m.IsEmpty() || len(m.Indices) == 0 {
		return nil, fmt.Errorf("voxel: mesh has no triangles")
	}
	for _, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return nil, fmt.Errorf("voxel: index %d out of range (%d vertices)", idx, len(m.Vertices))
		}
	}

	bounds := m.Bounds()
	bounds = geom.SnapBox(bounds, voxelSize)

	extent := bounds.Size()
	count := extent.DivScalar(voxelSize)

	var dim math32.Vector3i
	dim.SetFromVector3(count)
	if dim.X <= 0 || dim.Y <= 0 || dim.Z <= 0 {
		return nil, fmt.Errorf("voxel: degenerate grid dimension %v for voxel size %v", dim, voxelSize)
	}

	size := int(dim.X) * int(dim.Y) * int(dim.Z)
	g := &Grid{
		Dim:       dim,
		Size:      size,
		Bounds:    bounds,
		VoxelSize: voxelSize,
		Occupancy: make([]int32, size),
		Status:    make([]Status, size),
		Dist:      make([]Dist, size),
	}
	for i := range g.Occupancy {
		g.Occupancy[i] = -1
	}
	return g, nil
}

// Inner reports whether the cell at flattened index i is interior and
// not yet consumed by an accepted box.
func (g *Grid) Inner(i int) bool {
	s := g.Status[i]
	return s.Inner && !s.Clipped
}

// InteriorVolume counts the interior, unclipped cells. Called before
// any clipping it yields the total interior volume of the mesh.
func (g *Grid) InteriorVolume() int {
	n := 0
	for i := 0; i < g.Size; i++ {
		if g.Inner(i) {
			n++
		}
	}
	return n
}
