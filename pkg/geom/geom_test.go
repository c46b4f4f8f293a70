package geom

import (
	"testing"

	"cogentcore.org/core/math32"
)

func TestTriangleBounds(t *testing.T) {
	tri := Triangle{
		A: math32.Vec3(0, 0, 0),
		B: math32.Vec3(4, 0, 0),
		C: math32.Vec3(0, 3, 2),
	}
	b := tri.Bounds()
	if b.Min != math32.Vec3(0, 0, 0) {
		t.Errorf("bounds min = %v, expected (0,0,0)", b.Min)
	}
	if b.Max != math32.Vec3(4, 3, 2) {
		t.Errorf("bounds max = %v, expected (4,3,2)", b.Max)
	}
}

func TestTriangleIntersectsBox(t *testing.T) {
	// A triangle in the z=0 plane around the origin.
	tri := Triangle{
		A: math32.Vec3(-1, -1, 0),
		B: math32.Vec3(1, -1, 0),
		C: math32.Vec3(0, 1, 0),
	}
	half := math32.Vec3(0.5, 0.5, 0.5)

	cases := []struct {
		name   string
		center math32.Vector3
		want   bool
	}{
		{"box containing triangle center", math32.Vec3(0, 0, 0), true},
		{"box grazing the supporting plane", math32.Vec3(0, 0, 0.5), true},
		{"box just beyond the plane", math32.Vec3(0, 0, 0.6), false},
		{"box far along x", math32.Vec3(5, 0, 0), false},
		{"box far along z", math32.Vec3(0, 0, 3), false},
		{"box beside triangle but inside AABB", math32.Vec3(-0.9, 0.9, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TriangleIntersectsBox(tri, tc.center, half)
			if got != tc.want {
				t.Errorf("TriangleIntersectsBox(center=%v) = %v, expected %v", tc.center, got, tc.want)
			}
		})
	}
}

func TestTriangleIntersectsBoxLargeTriangle(t *testing.T) {
	// A triangle much larger than the box: the box sits in the middle of
	// the face, away from all edges and vertices.
	tri := Triangle{
		A: math32.Vec3(-100, -100, 1),
		B: math32.Vec3(100, -100, 1),
		C: math32.Vec3(0, 100, 1),
	}
	if !TriangleIntersectsBox(tri, math32.Vec3(0, 0, 1), math32.Vec3(0.5, 0.5, 0.5)) {
		t.Error("box inside large triangle face should intersect")
	}
	if TriangleIntersectsBox(tri, math32.Vec3(0, 0, 5), math32.Vec3(0.5, 0.5, 0.5)) {
		t.Error("box above large triangle should not intersect")
	}
}

func TestSnap(t *testing.T) {
	cases := []struct {
		v        float32
		wantDown float32
		wantUp   float32
	}{
		{0, 0, 1},
		{0.4, 0, 1},
		{0.6, 1, 2},
		{2, 2, 3},
		{-0.4, -1, 0},
		{-0.6, -2, -1},
		{-2, -3, -2},
	}
	for _, tc := range cases {
		if got := snapDown(tc.v, 1); got != tc.wantDown {
			t.Errorf("snapDown(%v, 1) = %v, expected %v", tc.v, got, tc.wantDown)
		}
		if got := snapUp(tc.v, 1); got != tc.wantUp {
			t.Errorf("snapUp(%v, 1) = %v, expected %v", tc.v, got, tc.wantUp)
		}
	}
}

func TestSnapBox(t *testing.T) {
	b := math32.Box3{
		Min: math32.Vec3(0, 0, 0),
		Max: math32.Vec3(2, 2, 2),
	}
	snapped := SnapBox(b, 1)
	if snapped.Min != math32.Vec3(-1, -1, -1) {
		t.Errorf("snapped min = %v, expected (-1,-1,-1)", snapped.Min)
	}
	if snapped.Max != math32.Vec3(4, 4, 4) {
		t.Errorf("snapped max = %v, expected (4,4,4)", snapped.Max)
	}

	// Snapping never shrinks the box.
	if snapped.Min.X > b.Min.X || snapped.Max.X < b.Max.X {
		t.Error("snapped box does not contain the original")
	}
}
