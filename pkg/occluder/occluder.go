package occluder

import (
	"cogentcore.org/core/math32"

	"github.com/chazu/occlude/pkg/kernel"
	"github.com/chazu/occlude/pkg/voxel"
)

// Generate runs the full pipeline on p.Mesh: voxelize the shell, build
// the plane index and the visibility/min-distance fields, verify
// watertightness, then greedily accept maximum-volume interior boxes
// until FillPercentage of the interior volume is covered, and emit the
// accepted boxes as a triangle mesh.
//
// The accepted boxes never overlap each other and never cross the
// shell, so the output is a conservative occluder set. Returns
// ErrNotWatertight when the interior classification is inconsistent.
func Generate(p Params) (*Result, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	hooks := p.Hooks.normalized()

	grid, err := voxel.NewGrid(p.Mesh, p.VoxelSize)
	if err != nil {
		return nil, err
	}

	hooks.ProfileBegin("voxelize")
	grid.Voxelize(p.Mesh)
	hooks.ProfileEnd("voxelize")

	hooks.ProfileBegin("planes")
	grid.BuildPlanes()
	hooks.ProfileEnd("planes")

	hooks.ProfileBegin("fields")
	grid.BuildField()
	hooks.ProfileEnd("fields")

	if !grid.Watertight() {
		return nil, ErrNotWatertight
	}

	totalVolume := grid.InteriorVolume()

	hooks.ProfileBegin("extents")
	s := newSolver(grid, hooks)

	var extents []Extent
	volume := 0
	fill := float32(0)
	for fill < p.FillPercentage && volume != totalVolume {
		extent := s.maxExtent()
		hooks.Assert(extent.Volume > 0, "no extent found below fill target")

		s.clip(extent)
		s.updateDistanceField(extent)

		extents = append(extents, extent)
		fill += float32(extent.Volume) / float32(totalVolume)
		volume += extent.Volume
	}
	hooks.ProfileEnd("extents")

	voxelExtent := math32.Vec3(p.VoxelSize, p.VoxelSize, p.VoxelSize)
	halfVoxel := voxelExtent.MulScalar(0.5)

	mesh := &kernel.Mesh{
		Vertices: make([]math32.Vector3, 0, vertexCountPerBox*len(extents)),
		Indices:  make([]uint16, 0, indexCountPerBox(p.BoxTypes)*len(extents)),
	}
	for _, extent := range extents {
		center, half := extentBox(grid, extent, halfVoxel)
		addBox(mesh, center, half, p.BoxTypes, nil)
	}

	result := &Result{Mesh: mesh, Extents: extents}
	if p.Debug.Flags != 0 {
		result.DebugMesh = buildDebugMesh(grid, s, extents, p)
	}
	return result, nil
}

// extentBox converts a grid-space extent to its world-space box center
// and half-extent.
func extentBox(g *voxel.Grid, e Extent, halfVoxel math32.Vector3) (center, half math32.Vector3) {
	half = math32.Vec3(
		float32(e.Size.X)*halfVoxel.X,
		float32(e.Size.Y)*halfVoxel.Y,
		float32(e.Size.Z)*halfVoxel.Z,
	)
	position := math32.Vec3(
		float32(e.Position.X)*g.VoxelSize,
		float32(e.Position.Y)*g.VoxelSize,
		float32(e.Position.Z)*g.VoxelSize,
	)
	center = g.Bounds.Min.Add(position).Add(half).Add(halfVoxel)
	return center, half
}
