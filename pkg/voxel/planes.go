package voxel

import "cogentcore.org/core/math32"

// BuildPlanes organizes the shell voxel set into three families of 2D
// buckets, one per axis: PlanesX groups the shell voxels sharing a
// (y,z) pair, PlanesY a (x,z) pair, PlanesZ a (x,y) pair. A field
// query for "nearest shell voxel along an axis from cell C" then scans
// one bucket instead of the whole grid.
//
// Built once after Voxelize and read-only afterward. The fixed x,y,z
// scan order means every bucket lists its voxels in increasing order
// of the scanned coordinate.
func (g *Grid) BuildPlanes() {
	g.PlanesX = make([][]Voxel, int(g.Dim.Y)*int(g.Dim.Z))
	g.PlanesY = make([][]Voxel, int(g.Dim.X)*int(g.Dim.Z))
	g.PlanesZ = make([][]Voxel, int(g.Dim.X)*int(g.Dim.Y))

	for x := int32(0); x < g.Dim.X; x++ {
		for y := int32(0); y < g.Dim.Y; y++ {
			for z := int32(0); z < g.Dim.Z; z++ {
				idx := g.Occupancy[Flatten(math32.Vec3i(x, y, z), g.Dim)]
				if idx == -1 {
					continue
				}
				v := g.Shell[idx]

				yz := Flatten2(y, z, g.Dim.Y)
				xz := Flatten2(x, z, g.Dim.X)
				xy := Flatten2(x, y, g.Dim.X)

				g.PlanesX[yz] = append(g.PlanesX[yz], v)
				g.PlanesY[xz] = append(g.PlanesY[xz], v)
				g.PlanesZ[xy] = append(g.PlanesZ[xy], v)
			}
		}
	}
}
