package voxel

import (
	"testing"

	"cogentcore.org/core/math32"

	"github.com/chazu/occlude/pkg/kernel"
)

// cubeMesh builds a closed axis-aligned cube from lo to hi on every
// axis: 8 vertices, 12 triangles.
func cubeMesh(lo, hi float32) *kernel.Mesh {
	return &kernel.Mesh{
		Vertices: []math32.Vector3{
			math32.Vec3(lo, lo, lo),
			math32.Vec3(hi, lo, lo),
			math32.Vec3(hi, hi, lo),
			math32.Vec3(lo, hi, lo),
			math32.Vec3(lo, lo, hi),
			math32.Vec3(hi, lo, hi),
			math32.Vec3(hi, hi, hi),
			math32.Vec3(lo, hi, hi),
		},
		Indices: []uint16{
			0, 1, 2, 0, 2, 3, // bottom
			4, 5, 6, 4, 6, 7, // top
			0, 1, 5, 0, 5, 4, // front
			3, 2, 6, 3, 6, 7, // back
			0, 3, 7, 0, 7, 4, // left
			1, 2, 6, 1, 6, 5, // right
		},
	}
}

// openBoxWithLid builds a cube missing its top face, with a detached
// square plate floating above the opening. Cells inside the box see
// shell in all six directions (the plate closes the view upward) but
// the upward runs pass through unenclosed space, so the interior
// classification must be rejected as leaking.
func openBoxWithLid(lo, hi, lid float32) *kernel.Mesh {
	return &kernel.Mesh{
		Vertices: []math32.Vector3{
			math32.Vec3(lo, lo, lo),
			math32.Vec3(hi, lo, lo),
			math32.Vec3(hi, hi, lo),
			math32.Vec3(lo, hi, lo),
			math32.Vec3(lo, lo, hi),
			math32.Vec3(hi, lo, hi),
			math32.Vec3(hi, hi, hi),
			math32.Vec3(lo, hi, hi),
			math32.Vec3(lo, lo, lid),
			math32.Vec3(hi, lo, lid),
			math32.Vec3(hi, hi, lid),
			math32.Vec3(lo, hi, lid),
		},
		Indices: []uint16{
			0, 1, 2, 0, 2, 3, // bottom
			0, 1, 5, 0, 5, 4, // front
			3, 2, 6, 3, 6, 7, // back
			0, 3, 7, 0, 7, 4, // left
			1, 2, 6, 1, 6, 5, // right
			8, 9, 10, 8, 10, 11, // detached lid
		},
	}
}

func TestFlattenUnflatten(t *testing.T) {
	dims := []math32.Vector3i{
		math32.Vec3i(10, 10, 10),
		math32.Vec3i(56, 43, 36),
		math32.Vec3i(3, 9, 17),
		math32.Vec3i(1, 1, 1),
	}
	for _, dim := range dims {
		size := int(dim.X) * int(dim.Y) * int(dim.Z)
		for i := 0; i < size; i++ {
			p := Unflatten(i, dim)
			if p.X < 0 || p.X >= dim.X || p.Y < 0 || p.Y >= dim.Y || p.Z < 0 || p.Z >= dim.Z {
				t.Fatalf("dim %v: Unflatten(%d) = %v out of range", dim, i, p)
			}
			if j := Flatten(p, dim); j != i {
				t.Fatalf("dim %v: Flatten(Unflatten(%d)) = %d", dim, i, j)
			}
		}
	}
}

func TestNewGridDimensions(t *testing.T) {
	cases := []struct {
		name      string
		lo, hi    float32
		voxelSize float32
		wantDim   int32
		wantMin   float32
	}{
		{"two unit cube", 0, 2, 1, 5, -1},
		{"four unit cube", 0, 4, 1, 7, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGrid(cubeMesh(tc.lo, tc.hi), tc.voxelSize)
			if err != nil {
				t.Fatalf("NewGrid failed: %v", err)
			}
			want := math32.Vec3i(tc.wantDim, tc.wantDim, tc.wantDim)
			if g.Dim != want {
				t.Errorf("dim = %v, expected %v", g.Dim, want)
			}
			if g.Size != int(tc.wantDim)*int(tc.wantDim)*int(tc.wantDim) {
				t.Errorf("size = %d, expected %d", g.Size, int(tc.wantDim)*int(tc.wantDim)*int(tc.wantDim))
			}
			if g.Bounds.Min.X != tc.wantMin {
				t.Errorf("bounds min x = %v, expected %v", g.Bounds.Min.X, tc.wantMin)
			}
			for _, occ := range g.Occupancy {
				if occ != -1 {
					t.Fatal("fresh grid must have empty occupancy")
				}
			}
		})
	}
}

func TestNewGridValidation(t *testing.T) {
	if _, err := NewGrid(nil, 1); err == nil {
		t.Error("expected error for nil mesh")
	}
	if _, err := NewGrid(&kernel.Mesh{}, 1); err == nil {
		t.Error("expected error for empty mesh")
	}
	if _, err := NewGrid(cubeMesh(0, 2), 0); err == nil {
		t.Error("expected error for zero voxel size")
	}
	if _, err := NewGrid(cubeMesh(0, 2), -1); err == nil {
		t.Error("expected error for negative voxel size")
	}

	bad := cubeMesh(0, 2)
	bad.Indices[0] = 99
	if _, err := NewGrid(bad, 1); err == nil {
		t.Error("expected error for out-of-range index")
	}
}

func TestVoxelizeCubeShell(t *testing.T) {
	g, err := NewGrid(cubeMesh(0, 4), 1)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	g.Voxelize(cubeMesh(0, 4))

	// The shell of a 4-unit cube at unit voxels is every cell with a
	// coordinate on the surface layer: 5^3 - 3^3.
	wantShell := 125 - 27
	if len(g.Shell) != wantShell {
		t.Errorf("shell count = %d, expected %d", len(g.Shell), wantShell)
	}

	for _, v := range g.Shell {
		onSurface := false
		for _, c := range []int32{v.Position.X, v.Position.Y, v.Position.Z} {
			if c < 0 || c > 4 {
				t.Fatalf("shell voxel %v outside the cube layer", v.Position)
			}
			if c == 0 || c == 4 {
				onSurface = true
			}
		}
		if !onSurface {
			t.Errorf("shell voxel %v is not on the cube surface", v.Position)
		}
		if g.Occupancy[Flatten(v.Position, g.Dim)] < 0 {
			t.Errorf("shell voxel %v missing from occupancy", v.Position)
		}
	}
}

func TestBuildPlanes(t *testing.T) {
	g, err := NewGrid(cubeMesh(0, 4), 1)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	g.Voxelize(cubeMesh(0, 4))
	g.BuildPlanes()

	// A column through the middle of the cube crosses the shell twice.
	mid := g.PlanesX[Flatten2(2, 2, g.Dim.Y)]
	if len(mid) != 2 {
		t.Fatalf("interior column bucket has %d voxels, expected 2", len(mid))
	}
	if mid[0].Position.X != 0 || mid[1].Position.X != 4 {
		t.Errorf("interior column shell at x=%d,%d, expected 0,4", mid[0].Position.X, mid[1].Position.X)
	}

	// A column along a cube edge is solid shell.
	edge := g.PlanesZ[Flatten2(0, 0, g.Dim.X)]
	if len(edge) != 5 {
		t.Errorf("edge column bucket has %d voxels, expected 5", len(edge))
	}
}

func TestBuildFieldCube(t *testing.T) {
	g, err := NewGrid(cubeMesh(0, 4), 1)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	g.Voxelize(cubeMesh(0, 4))
	g.BuildPlanes()
	g.BuildField()

	if got := g.InteriorVolume(); got != 27 {
		t.Fatalf("interior volume = %d, expected 27", got)
	}

	// The interior corner cell sees the far faces three cells away.
	i := Flatten(math32.Vec3i(1, 1, 1), g.Dim)
	if !g.Inner(i) {
		t.Fatal("cell (1,1,1) should be interior")
	}
	if d := g.Dist[i]; d != (Dist{X: 3, Y: 3, Z: 3}) {
		t.Errorf("dist at (1,1,1) = %+v, expected {3 3 3}", d)
	}
	if s := g.Status[i]; s.Visibility != VisAll {
		t.Errorf("visibility at (1,1,1) = %06b, expected full", s.Visibility)
	}

	// The center cell is two cells from every far face.
	i = Flatten(math32.Vec3i(2, 2, 2), g.Dim)
	if d := g.Dist[i]; d != (Dist{X: 2, Y: 2, Z: 2}) {
		t.Errorf("dist at (2,2,2) = %+v, expected {2 2 2}", d)
	}

	// Shell cells carry zero distance and are never interior.
	i = Flatten(math32.Vec3i(0, 2, 2), g.Dim)
	if g.Status[i].Inner {
		t.Error("shell cell (0,2,2) must not be interior")
	}

	// Cells outside the shell are not interior.
	i = Flatten(math32.Vec3i(g.Dim.X-1, 2, 2), g.Dim)
	if g.Status[i].Inner {
		t.Error("cell outside the shell must not be interior")
	}

	if !g.Watertight() {
		t.Error("closed cube must be watertight")
	}
}

func TestWatertightLeak(t *testing.T) {
	m := openBoxWithLid(0, 4, 8)
	g, err := NewGrid(m, 1)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	g.Voxelize(m)
	g.BuildPlanes()
	g.BuildField()

	// The box cells see shell in all six directions (the lid covers the
	// view upward) so some are classified interior.
	i := Flatten(math32.Vec3i(1, 1, 1), g.Dim)
	if !g.Status[i].Inner {
		t.Fatal("cell (1,1,1) should be classified interior under the lid")
	}

	// But the upward run crosses the open top into unenclosed space.
	if g.Watertight() {
		t.Error("open box with detached lid must not be watertight")
	}
}
