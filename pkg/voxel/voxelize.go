package voxel

import (
	"cogentcore.org/core/math32"

	"github.com/chazu/occlude/pkg/geom"
	"github.com/chazu/occlude/pkg/kernel"
)

// Voxelize rasterizes every triangle of m into the grid, producing the
// sparse shell voxel set and the dense occupancy index. Each triangle's
// snapped, padded AABB bounds the candidate cells; a cell is kept when
// the conservative SAT test succeeds. The first triangle to touch a
// cell wins; later triangles never remove or replace a shell voxel, so
// triangle order does not affect the final shell set.
func (g *Grid) Voxelize(m *kernel.Mesh) {
	voxelExtent := math32.Vec3(g.VoxelSize, g.VoxelSize, g.VoxelSize)
	half := voxelExtent.MulScalar(0.5)

	extent := g.Bounds.Size()
	count := extent.DivScalar(g.VoxelSize)
	// Cells per unit of mesh space, used to map a voxel center to its
	// integer grid position.
	res := math32.Vec3(count.X/extent.X, count.Y/extent.Y, count.Z/extent.Z)

	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		tri := geom.Triangle{A: a, B: b, C: c}

		tb := geom.SnapBox(tri.Bounds(), g.VoxelSize)

		for x := tb.Min.X; x <= tb.Max.X; x += g.VoxelSize {
			for y := tb.Min.Y; y <= tb.Max.Y; y += g.VoxelSize {
				for z := tb.Min.Z; z <= tb.Max.Z; z += g.VoxelSize {
					center := math32.Vec3(x, y, z)
					if !geom.TriangleIntersectsBox(tri, center, half) {
						continue
					}

					rel := center.Sub(g.Bounds.Min).Sub(half)
					var pos math32.Vector3i
					pos.SetFromVector3(math32.Vec3(rel.X*res.X, rel.Y*res.Y, rel.Z*res.Z))

					idx := Flatten(pos, g.Dim)
					if g.Occupancy[idx] != -1 {
						continue
					}
					g.Occupancy[idx] = int32(len(g.Shell))
					g.Shell = append(g.Shell, Voxel{
						Bounds: math32.Box3{
							Min: center.Sub(half),
							Max: center.Add(half),
						},
						Position: pos,
					})
				}
			}
		}
	}
}
