package geom

import "cogentcore.org/core/math32"

// snapUp rounds v up to a multiple of voxelSize, biased outward by half
// a voxel so that values sitting exactly on a cell boundary land on the
// next lattice line.
func snapUp(v, voxelSize float32) float32 {
	sign := float32(1)
	if v < 0 {
		sign = -1
	}
	return math32.Ceil((v+sign*voxelSize*0.5)/voxelSize) * voxelSize
}

// snapDown rounds v down to a multiple of voxelSize with the same
// half-voxel bias as snapUp.
func snapDown(v, voxelSize float32) float32 {
	sign := float32(1)
	if v < 0 {
		sign = -1
	}
	return math32.Floor((v+sign*voxelSize*0.5)/voxelSize) * voxelSize
}

// SnapMax snaps a position up to the voxel lattice, per component.
func SnapMax(p math32.Vector3, voxelSize float32) math32.Vector3 {
	return math32.Vec3(
		snapUp(p.X, voxelSize),
		snapUp(p.Y, voxelSize),
		snapUp(p.Z, voxelSize),
	)
}

// SnapMin snaps a position down to the voxel lattice, per component.
func SnapMin(p math32.Vector3, voxelSize float32) math32.Vector3 {
	return math32.Vec3(
		snapDown(p.X, voxelSize),
		snapDown(p.Y, voxelSize),
		snapDown(p.Z, voxelSize),
	)
}

// SnapBox snaps an AABB outward to whole-voxel boundaries and pads it
// by one voxel on every side. Triangle AABBs padded this way always
// cover every cell the triangle could conservatively touch.
func SnapBox(b math32.Box3, voxelSize float32) math32.Box3 {
	pad := math32.Vec3(voxelSize, voxelSize, voxelSize)
	return math32.Box3{
		Min: SnapMin(b.Min, voxelSize).Sub(pad),
		Max: SnapMax(b.Max, voxelSize).Add(pad),
	}
}
