// Package geom provides the geometric primitives of the voxelization
// pipeline: triangle bounding boxes, the separating-axis triangle/box
// overlap test, and snapping of positions to the voxel lattice.
package geom

import "cogentcore.org/core/math32"

// Triangle is a triangle in mesh space.
type Triangle struct {
	A math32.Vector3
	B math32.Vector3
	C math32.Vector3
}

// Bounds returns the triangle's axis-aligned bounding box.
func (t Triangle) Bounds() math32.Box3 {
	b := math32.B3Empty()
	b.ExpandByPoint(t.A)
	b.ExpandByPoint(t.B)
	b.ExpandByPoint(t.C)
	return b
}

// planeOverlapsBox reports whether a box of the given half size centered
// at the origin straddles the plane dot(normal, p) + dist = 0.
//
// The boundary rule is asymmetric on purpose: the far corner counts a
// touching plane as overlap (>= 0) while the near corner counts it as
// outside (> 0). The asymmetry keeps the voxelization conservative: a
// box grazing the triangle's supporting plane is still rasterized.
func planeOverlapsBox(normal math32.Vector3, dist float32, half math32.Vector3) bool {
	var vmin, vmax math32.Vector3

	if normal.X > 0 {
		vmin.X, vmax.X = -half.X, half.X
	} else {
		vmin.X, vmax.X = half.X, -half.X
	}
	if normal.Y > 0 {
		vmin.Y, vmax.Y = -half.Y, half.Y
	} else {
		vmin.Y, vmax.Y = half.Y, -half.Y
	}
	if normal.Z > 0 {
		vmin.Z, vmax.Z = -half.Z, half.Z
	} else {
		vmin.Z, vmax.Z = half.Z, -half.Z
	}

	if normal.Dot(vmin)+dist > 0 {
		return false
	}
	return normal.Dot(vmax)+dist >= 0
}

// absVec returns the component-wise absolute value.
func absVec(v math32.Vector3) math32.Vector3 {
	return math32.Vec3(math32.Abs(v.X), math32.Abs(v.Y), math32.Abs(v.Z))
}

// axisSeparates reports whether the projections p and q of two triangle
// vertices fall entirely outside the box radius rad on a cross-product
// axis, proving a separating axis.
func axisSeparates(p, q, rad float32) bool {
	min, max := p, q
	if q < p {
		min, max = q, p
	}
	return min > rad || max < -rad
}

// spanSeparates reports whether the interval spanned by a, b, c lies
// entirely outside [-rad, rad].
func spanSeparates(a, b, c, rad float32) bool {
	min := math32.Min(a, math32.Min(b, c))
	max := math32.Max(a, math32.Max(b, c))
	return min > rad || max < -rad
}

// TriangleIntersectsBox tests triangle/box overlap with the separating
// axis theorem: nine edge cross-product axes, the three box face axes,
// and the triangle's supporting plane (Akenine-Moller's method, with
// the conservative plane rule of planeOverlapsBox).
func TriangleIntersectsBox(t Triangle, center, half math32.Vector3) bool {
	v0 := t.A.Sub(center)
	v1 := t.B.Sub(center)
	v2 := t.C.Sub(center)

	e0 := v1.Sub(v0)
	e1 := v2.Sub(v1)
	e2 := v0.Sub(v2)

	f := absVec(e0)
	if axisSeparates(e0.Z*v0.Y-e0.Y*v0.Z, e0.Z*v2.Y-e0.Y*v2.Z, f.Z*half.Y+f.Y*half.Z) {
		return false
	}
	if axisSeparates(-e0.Z*v0.X+e0.X*v0.Z, -e0.Z*v2.X+e0.X*v2.Z, f.Z*half.X+f.X*half.Z) {
		return false
	}
	if axisSeparates(e0.Y*v1.X-e0.X*v1.Y, e0.Y*v2.X-e0.X*v2.Y, f.Y*half.X+f.X*half.Y) {
		return false
	}

	f = absVec(e1)
	if axisSeparates(e1.Z*v0.Y-e1.Y*v0.Z, e1.Z*v2.Y-e1.Y*v2.Z, f.Z*half.Y+f.Y*half.Z) {
		return false
	}
	if axisSeparates(-e1.Z*v0.X+e1.X*v0.Z, -e1.Z*v2.X+e1.X*v2.Z, f.Z*half.X+f.X*half.Z) {
		return false
	}
	if axisSeparates(e1.Y*v0.X-e1.X*v0.Y, e1.Y*v1.X-e1.X*v1.Y, f.Y*half.X+f.X*half.Y) {
		return false
	}

	f = absVec(e2)
	if axisSeparates(e2.Z*v0.Y-e2.Y*v0.Z, e2.Z*v1.Y-e2.Y*v1.Z, f.Z*half.Y+f.Y*half.Z) {
		return false
	}
	if axisSeparates(-e2.Z*v0.X+e2.X*v0.Z, -e2.Z*v1.X+e2.X*v1.Z, f.Z*half.X+f.X*half.Z) {
		return false
	}
	if axisSeparates(e2.Y*v1.X-e2.X*v1.Y, e2.Y*v2.X-e2.X*v2.Y, f.Y*half.X+f.X*half.Y) {
		return false
	}

	if spanSeparates(v0.X, v1.X, v2.X, half.X) {
		return false
	}
	if spanSeparates(v0.Y, v1.Y, v2.Y, half.Y) {
		return false
	}
	if spanSeparates(v0.Z, v1.Z, v2.Z, half.Z) {
		return false
	}

	normal := e0.Cross(e1)
	return planeOverlapsBox(normal, -normal.Dot(v0), half)
}
