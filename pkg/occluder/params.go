// Package occluder turns a closed triangle mesh into a small set of
// axis-aligned boxes conservatively filling its interior, for use as
// occlusion-culling proxies. The pipeline voxelizes the mesh shell,
// classifies interior cells from a six-direction visibility field, and
// greedily extracts maximum-volume interior boxes until a target fill
// ratio of the interior volume is covered.
package occluder

import (
	"errors"
	"fmt"

	"cogentcore.org/core/math32"

	"github.com/chazu/occlude/pkg/kernel"
)

// ErrNotWatertight is returned when the interior classification is
// inconsistent, i.e. the input mesh is not closed. No partial result
// accompanies it.
var ErrNotWatertight = errors.New("occluder: mesh is not watertight")

// BoxType selects which triangles of each output cuboid are emitted.
// Flags combine with bitwise OR; fewer faces mean fewer triangles for
// occluders that are never seen directly.
type BoxType int32

const (
	BoxNone      BoxType = 0
	BoxDiagonals BoxType = 1 << 0
	BoxTop       BoxType = 1 << 1
	BoxBottom    BoxType = 1 << 2
	BoxSides     BoxType = 1 << 3

	// BoxRegular is the full closed cuboid.
	BoxRegular BoxType = BoxSides | BoxTop | BoxBottom
)

// DebugFlag selects intermediate state to render into the debug mesh.
type DebugFlag int32

const (
	DebugShowInner DebugFlag = 1 << iota
	DebugShowExtent
	DebugShowResult
	DebugShowOuter
	DebugShowMinDistance
	DebugShowSliceSelection
)

// DebugParams configures the optional debug mesh. Voxel coordinates
// select a cell or plane slice to visualize; negative values select
// everything. VoxelScale scales the rendered voxel cubes (1 = true
// size); zero is treated as 1.
type DebugParams struct {
	Flags       DebugFlag
	VoxelX      int32
	VoxelY      int32
	VoxelZ      int32
	ExtentIndex int32
	VoxelScale  float32
}

// Params configures a generation run.
type Params struct {
	// Mesh is the input triangle mesh. It must be closed (watertight)
	// for the run to succeed.
	Mesh *kernel.Mesh

	// VoxelSize is the cubic cell edge length, in mesh units.
	VoxelSize float32

	// FillPercentage in (0,1] stops the greedy loop once the accepted
	// boxes cover this fraction of the interior volume.
	FillPercentage float32

	// BoxTypes selects the output cuboid topology.
	BoxTypes BoxType

	Debug DebugParams
	Hooks Hooks
}

func (p *Params) validate() error {
	if p.Mesh == nil || p.Mesh.IsEmpty() {
		return fmt.Errorf("occluder: params hold no input mesh")
	}
	if p.VoxelSize <= 0 {
		return fmt.Errorf("occluder: voxel size must be positive, got %v", p.VoxelSize)
	}
	if p.FillPercentage <= 0 || p.FillPercentage > 1 {
		return fmt.Errorf("occluder: fill percentage must be in (0,1], got %v", p.FillPercentage)
	}
	if p.Debug.VoxelScale == 0 {
		p.Debug.VoxelScale = 1
	}
	return nil
}

// Extent is an accepted box on the voxel grid: a minimum corner cell,
// an integer size per axis, and the covered cell count. Extents are
// appended to the accepted list when chosen and never mutated after.
type Extent struct {
	Position math32.Vector3i
	Size     math32.Vector3i
	Volume   int
}

// Result is the output of a generation run. Mesh holds the occluder
// cuboids; DebugMesh is only populated when debug flags were set and
// interleaves a color after every vertex position. Extents lists the
// accepted boxes in acceptance order.
type Result struct {
	Mesh      *kernel.Mesh
	DebugMesh *kernel.Mesh
	Extents   []Extent
}
