package occluder

import (
	"math"

	"cogentcore.org/core/math32"

	"github.com/chazu/occlude/pkg/voxel"
)

// solver runs the greedy box extraction over a classified grid. The
// per-Z-slice scratch buffer is reused across candidate evaluations.
type solver struct {
	grid   *voxel.Grid
	hooks  Hooks
	slices []sliceExtent
}

type sliceExtent struct {
	x, y int32
}

func newSolver(g *voxel.Grid, h Hooks) *solver {
	return &solver{
		grid:   g,
		hooks:  h,
		slices: make([]sliceExtent, 0, g.Dim.Z),
	}
}

// maxBoxAt returns the largest box extent anchored at the given interior
// cell, using its minimum-distance vector d as the search envelope.
//
// For each Z slice of the envelope, the admissible XY footprint is found
// by walking the slice's diagonal: every interior cell met on the
// diagonal caps the footprint by its own distances pushed out to the
// diagonal step, and the first non-interior cell cuts the footprint to
// the step itself. Clipped slices are skipped, capping the depth. The
// returned size maximizes volume over the admissible depths.
func (s *solver) maxBoxAt(anchor math32.Vector3i, d voxel.Dist) math32.Vector3i {
	g := s.grid
	s.slices = s.slices[:0]

	for z := anchor.Z; z < anchor.Z+d.Z; z++ {
		idx := voxel.Flatten(math32.Vec3i(anchor.X, anchor.Y, z), g.Dim)
		s.hooks.Assert(g.Status[idx].Inner, "extent slice is not interior")
		if g.Status[idx].Clipped {
			break
		}
		sd := g.Dist[idx]
		ext := sliceExtent{x: sd.X, y: sd.Y}

		x, y := anchor.X+1, anchor.Y+1
		for step := int32(1); x < anchor.X+sd.X && y < anchor.Y+sd.Y; step++ {
			j := voxel.Flatten(math32.Vec3i(x, y, z), g.Dim)
			if g.Inner(j) {
				dj := g.Dist[j]
				ext.x = min32(ext.x, dj.X+step)
				ext.y = min32(ext.y, dj.Y+step)
			} else {
				ext.x, ext.y = step, step
				break
			}
			x++
			y++
		}
		s.slices = append(s.slices, ext)
	}

	s.hooks.Assert(len(s.slices) > 0, "interior cell yields no extent slice")

	// Deeper boxes narrow the footprint; pick the depth maximizing
	// footprint*depth rather than committing to the full envelope.
	minX, minY := int32(math.MaxInt32), int32(math.MaxInt32)
	var best math32.Vector3i
	bestVolume := 0
	for k, e := range s.slices {
		minX = min32(minX, e.x)
		minY = min32(minY, e.y)
		v := int(minX) * int(minY) * (k + 1)
		if v > bestVolume {
			bestVolume = v
			best = math32.Vec3i(minX, minY, int32(k+1))
		}
	}
	return best
}

// maxExtent scans every unclipped interior cell and returns the largest
// box found. Ties keep the first candidate in flattened scan order, so
// a run is deterministic for a given input.
func (s *solver) maxExtent() Extent {
	g := s.grid
	var best Extent
	for i := 0; i < g.Size; i++ {
		if !g.Inner(i) {
			continue
		}
		anchor := voxel.Unflatten(i, g.Dim)
		size := s.maxBoxAt(anchor, g.Dist[i])
		volume := int(size.X) * int(size.Y) * int(size.Z)
		if volume > best.Volume {
			best = Extent{Position: anchor, Size: size, Volume: volume}
		}
	}
	return best
}

// clip marks every cell covered by e as consumed. Covered cells stay
// classified as interior but stop being candidates or corridors for
// later extents.
func (s *solver) clip(e Extent) {
	g := s.grid
	for x := e.Position.X; x < e.Position.X+e.Size.X; x++ {
		for y := e.Position.Y; y < e.Position.Y+e.Size.Y; y++ {
			for z := e.Position.Z; z < e.Position.Z+e.Size.Z; z++ {
				idx := voxel.Flatten(math32.Vec3i(x, y, z), g.Dim)
				s.hooks.Assert(!g.Status[idx].Clipped, "cell clipped twice")
				s.hooks.Assert(g.Status[idx].Inner, "clipped cell is not interior")
				g.Status[idx].Clipped = true
			}
		}
	}
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// updateDistanceField tightens the distance field after a clip: cells
// behind each face of e, still unclipped and interior, must not see
// through the box. Each axis is rewalked backward from the box's
// minimum face so a cell's new distance chains off its tightened
// neighbor.
func (s *solver) updateDistanceField(e Extent) {
	g := s.grid

	for y := e.Position.Y; y < e.Position.Y+e.Size.Y; y++ {
		for z := e.Position.Z; z < e.Position.Z+e.Size.Z; z++ {
			for x := e.Position.X - 1; x >= 0; x-- {
				idx := voxel.Flatten(math32.Vec3i(x, y, z), g.Dim)
				if !g.Inner(idx) {
					break
				}
				g.Dist[idx].X = min32(g.Dist[idx].X, e.Position.X-x)
			}
		}
	}
	for x := e.Position.X; x < e.Position.X+e.Size.X; x++ {
		for z := e.Position.Z; z < e.Position.Z+e.Size.Z; z++ {
			for y := e.Position.Y - 1; y >= 0; y-- {
				idx := voxel.Flatten(math32.Vec3i(x, y, z), g.Dim)
				if !g.Inner(idx) {
					break
				}
				g.Dist[idx].Y = min32(g.Dist[idx].Y, e.Position.Y-y)
			}
		}
	}
	for x := e.Position.X; x < e.Position.X+e.Size.X; x++ {
		for y := e.Position.Y; y < e.Position.Y+e.Size.Y; y++ {
			for z := e.Position.Z - 1; z >= 0; z-- {
				idx := voxel.Flatten(math32.Vec3i(x, y, z), g.Dim)
				if !g.Inner(idx) {
					break
				}
				g.Dist[idx].Z = min32(g.Dist[idx].Z, e.Position.Z-z)
			}
		}
	}
}
