package voxel

import "cogentcore.org/core/math32"

// fieldAt computes the visibility mask and minimum positive distances
// for one cell by scanning its three plane buckets. A shell voxel
// strictly beyond the cell sets the matching visibility bit and, on
// the positive side, tightens the minimum distance; a shell voxel
// sharing the cell's coordinate on an axis zeroes that distance.
func (g *Grid) fieldAt(p math32.Vector3i) (Dist, Status) {
	d := Dist{X: Infinite, Y: Infinite, Z: Infinite}
	var s Status

	for _, v := range g.PlanesX[Flatten2(p.Y, p.Z, g.Dim.Y)] {
		dist := v.Position.X - p.X
		switch {
		case dist > 0:
			s.Visibility |= VisPlusX
			d.X = min32(d.X, dist)
		case dist < 0:
			s.Visibility |= VisMinusX
		default:
			d.X = 0
		}
	}
	for _, v := range g.PlanesY[Flatten2(p.X, p.Z, g.Dim.X)] {
		dist := v.Position.Y - p.Y
		switch {
		case dist > 0:
			s.Visibility |= VisPlusY
			d.Y = min32(d.Y, dist)
		case dist < 0:
			s.Visibility |= VisMinusY
		default:
			d.Y = 0
		}
	}
	for _, v := range g.PlanesZ[Flatten2(p.X, p.Y, g.Dim.X)] {
		dist := v.Position.Z - p.Z
		switch {
		case dist > 0:
			s.Visibility |= VisPlusZ
			d.Z = min32(d.Z, dist)
		case dist < 0:
			s.Visibility |= VisMinusZ
		default:
			d.Z = 0
		}
	}

	// Interior means enclosed by shell in all six directions and not
	// itself on the shell: distances must be finite and non-zero.
	if s.Visibility == VisAll {
		infinite := d.X == Infinite && d.Y == Infinite && d.Z == Infinite
		zero := d.X == 0 && d.Y == 0 && d.Z == 0
		if !infinite && !zero {
			s.Inner = true
		}
	}
	return d, s
}

// BuildField fills the status and minimum-distance fields for every
// grid cell, in flattened scan order. The shell and plane index are
// read-only inputs; the grid's distance field becomes mutable state
// for the extent solver afterwards.
func (g *Grid) BuildField() {
	for i := 0; i < g.Size; i++ {
		g.Dist[i], g.Status[i] = g.fieldAt(Unflatten(i, g.Dim))
	}
}

// Watertight verifies the interior classification is consistent: every
// interior cell's positive-distance run along each axis must pass only
// through interior cells. A run touching a non-interior cell means the
// shell leaks, i.e. the input mesh was not closed.
func (g *Grid) Watertight() bool {
	for i := 0; i < g.Size; i++ {
		if !g.Inner(i) {
			continue
		}
		p := Unflatten(i, g.Dim)
		d := g.Dist[i]

		for x := p.X; x < p.X+d.X; x++ {
			if !g.Inner(Flatten(math32.Vec3i(x, p.Y, p.Z), g.Dim)) {
				return false
			}
		}
		for y := p.Y; y < p.Y+d.Y; y++ {
			if !g.Inner(Flatten(math32.Vec3i(p.X, y, p.Z), g.Dim)) {
				return false
			}
		}
		for z := p.Z; z < p.Z+d.Z; z++ {
			if !g.Inner(Flatten(math32.Vec3i(p.X, p.Y, z), g.Dim)) {
				return false
			}
		}
	}
	return true
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
