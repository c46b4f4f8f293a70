package occluder

import (
	"cogentcore.org/core/math32"

	"github.com/chazu/occlude/pkg/kernel"
	"github.com/chazu/occlude/pkg/voxel"
)

var colorSteelBlue = rgb(70, 130, 180)

// Palette for per-extent coloring in the result view; extents cycle
// through it in acceptance order.
var debugColors = []math32.Vector3{
	rgb(245, 245, 245),
	rgb(70, 130, 180),
	rgb(0, 255, 127),
	rgb(0, 128, 128),
	rgb(255, 182, 193),
	rgb(176, 224, 230),
	rgb(119, 136, 153),
	rgb(143, 188, 143),
	rgb(255, 250, 240),
}

func rgb(r, g, b uint8) math32.Vector3 {
	return math32.Vec3(float32(r)/255, float32(g)/255, float32(b)/255)
}

// cellCenter returns the world-space center of the grid cell at pos.
func cellCenter(g *voxel.Grid, pos math32.Vector3i) math32.Vector3 {
	return g.Bounds.Min.Add(math32.Vec3(
		float32(pos.X)*g.VoxelSize+g.VoxelSize,
		float32(pos.Y)*g.VoxelSize+g.VoxelSize,
		float32(pos.Z)*g.VoxelSize+g.VoxelSize,
	))
}

// buildDebugMesh renders the selected intermediate state as colored
// cubes. Every vertex position is followed by its color, so consumers
// must treat the vertex array as position/color pairs.
func buildDebugMesh(g *voxel.Grid, s *solver, extents []Extent, p Params) *kernel.Mesh {
	mesh := &kernel.Mesh{}

	halfVoxel := math32.Vec3(g.VoxelSize, g.VoxelSize, g.VoxelSize).MulScalar(0.5)
	scaledHalf := halfVoxel.MulScalar(p.Debug.VoxelScale)
	d := p.Debug

	if d.Flags&DebugShowOuter != 0 {
		for _, v := range g.Shell {
			addBox(mesh, v.Bounds.Center(), scaledHalf, BoxRegular, &colorSteelBlue)
		}
	}

	if d.Flags&DebugShowSliceSelection != 0 {
		addPlaneSlice := func(bucket []voxel.Voxel) {
			for _, v := range bucket {
				addBox(mesh, v.Bounds.Center(), scaledHalf, BoxRegular, &colorSteelBlue)
			}
		}
		if d.VoxelY > 0 && d.VoxelZ > 0 && d.VoxelY < g.Dim.Y && d.VoxelZ < g.Dim.Z {
			addPlaneSlice(g.PlanesX[voxel.Flatten2(d.VoxelY, d.VoxelZ, g.Dim.Y)])
		}
		if d.VoxelX > 0 && d.VoxelZ > 0 && d.VoxelX < g.Dim.X && d.VoxelZ < g.Dim.Z {
			addPlaneSlice(g.PlanesY[voxel.Flatten2(d.VoxelX, d.VoxelZ, g.Dim.X)])
		}
		if d.VoxelX > 0 && d.VoxelY > 0 && d.VoxelX < g.Dim.X && d.VoxelY < g.Dim.Y {
			addPlaneSlice(g.PlanesZ[voxel.Flatten2(d.VoxelX, d.VoxelY, g.Dim.X)])
		}
	}

	if d.Flags&DebugShowInner != 0 {
		// A negative cell coordinate selects all interior cells.
		if d.VoxelX < 0 || d.VoxelY < 0 || d.VoxelZ < 0 {
			for i := 0; i < g.Size; i++ {
				if !g.Status[i].Inner {
					continue
				}
				pos := voxel.Unflatten(i, g.Dim)
				addBox(mesh, cellCenter(g, pos), halfVoxel, BoxRegular, &colorSteelBlue)
			}
		}
	}

	if d.Flags&DebugShowMinDistance != 0 {
		pos := math32.Vec3i(d.VoxelX, d.VoxelY, d.VoxelZ)
		if pos.X >= 0 && pos.X < g.Dim.X &&
			pos.Y >= 0 && pos.Y < g.Dim.Y &&
			pos.Z >= 0 && pos.Z < g.Dim.Z {
			dist := g.Dist[voxel.Flatten(pos, g.Dim)]
			addBox(mesh, cellCenter(g, pos), halfVoxel, BoxRegular, &colorSteelBlue)
			for x := pos.X; x < pos.X+dist.X; x++ {
				addBox(mesh, cellCenter(g, math32.Vec3i(x, pos.Y, pos.Z)), halfVoxel, BoxRegular, &colorSteelBlue)
			}
			for y := pos.Y; y < pos.Y+dist.Y; y++ {
				addBox(mesh, cellCenter(g, math32.Vec3i(pos.X, y, pos.Z)), halfVoxel, BoxRegular, &colorSteelBlue)
			}
			for z := pos.Z; z < pos.Z+dist.Z; z++ {
				addBox(mesh, cellCenter(g, math32.Vec3i(pos.X, pos.Y, z)), halfVoxel, BoxRegular, &colorSteelBlue)
			}
		}
	}

	if d.Flags&DebugShowExtent != 0 {
		for i := 0; i < g.Size; i++ {
			if !g.Inner(i) {
				continue
			}
			anchor := voxel.Unflatten(i, g.Dim)
			size := s.maxBoxAt(anchor, g.Dist[i])
			for x := anchor.X; x < anchor.X+size.X; x++ {
				for y := anchor.Y; y < anchor.Y+size.Y; y++ {
					for z := anchor.Z; z < anchor.Z+size.Z; z++ {
						addBox(mesh, cellCenter(g, math32.Vec3i(x, y, z)), halfVoxel, BoxRegular, &colorSteelBlue)
					}
				}
			}
		}
	}

	if d.Flags&DebugShowResult != 0 {
		for i, extent := range extents {
			if int32(i) != d.ExtentIndex && d.ExtentIndex >= 0 {
				continue
			}
			center, half := extentBox(g, extent, halfVoxel)
			color := debugColors[i%len(debugColors)]
			addBox(mesh, center, half, p.BoxTypes, &color)
		}
	}

	return mesh
}
