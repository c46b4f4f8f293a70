package scene

import (
	"strings"
	"testing"

	"github.com/chazu/occlude/pkg/occluder"
)

func TestEvaluateEmptySource(t *testing.T) {
	eng := NewEngine()
	for _, source := range []string{"", "   ", "\n\t\n"} {
		sc, evalErrs, err := eng.Evaluate(source)
		if err != nil {
			t.Fatalf("Evaluate(%q) fatal error: %v", source, err)
		}
		if len(evalErrs) != 0 {
			t.Fatalf("Evaluate(%q) eval errors: %v", source, evalErrs)
		}
		if sc == nil {
			t.Fatalf("Evaluate(%q) returned nil scene", source)
		}
		if sc.PrimitiveCount() != 0 {
			t.Errorf("empty source produced %d primitives", sc.PrimitiveCount())
		}
	}
}

func TestEvaluateDefaults(t *testing.T) {
	eng := NewEngine()
	sc, evalErrs, err := eng.Evaluate("(box 2 2 2)")
	if err != nil || len(evalErrs) != 0 {
		t.Fatalf("Evaluate failed: %v %v", err, evalErrs)
	}
	if sc.VoxelSize != 1 {
		t.Errorf("default voxel size = %v, expected 1", sc.VoxelSize)
	}
	if sc.FillPct != 0.8 {
		t.Errorf("default fill = %v, expected 0.8", sc.FillPct)
	}
	if sc.BoxTypes != occluder.BoxRegular {
		t.Errorf("default topology = %b, expected the full cuboid", sc.BoxTypes)
	}
}

func TestEvaluateSceneProgram(t *testing.T) {
	source := `
; occluder settings
(voxel-size 0.25)
(fill 0.9)
(topology :sides :top)
(resolution 48)

; geometry
(box 10 10 10)
(sphere 4 :at (vec3 0 0 12))
(cylinder 8 2 :at (vec3 12 0 0))
`
	eng := NewEngine()
	sc, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("Evaluate fatal error: %v", err)
	}
	if len(evalErrs) != 0 {
		t.Fatalf("Evaluate eval errors: %v", evalErrs)
	}

	if sc.VoxelSize != 0.25 {
		t.Errorf("voxel size = %v, expected 0.25", sc.VoxelSize)
	}
	if sc.FillPct != 0.9 {
		t.Errorf("fill = %v, expected 0.9", sc.FillPct)
	}
	if want := occluder.BoxSides | occluder.BoxTop; sc.BoxTypes != want {
		t.Errorf("topology = %b, expected %b", sc.BoxTypes, want)
	}
	if sc.MeshCells != 48 {
		t.Errorf("resolution = %d, expected 48", sc.MeshCells)
	}
	if sc.PrimitiveCount() != 3 {
		t.Errorf("primitive count = %d, expected 3", sc.PrimitiveCount())
	}

	if sc.prims[1].kind != primSphere {
		t.Errorf("second primitive kind = %d, expected sphere", sc.prims[1].kind)
	}
	if at := sc.prims[1].at; at != (Vec3{X: 0, Y: 0, Z: 12}) {
		t.Errorf("sphere position = %+v, expected (0,0,12)", at)
	}
	if dims := sc.prims[2].dims; dims[0] != 8 || dims[1] != 2 {
		t.Errorf("cylinder dims = %v, expected height 8 radius 2", dims)
	}
}

func TestEvaluateParseError(t *testing.T) {
	eng := NewEngine()
	sc, evalErrs, err := eng.Evaluate("(box 1 1") // unbalanced
	if err != nil {
		t.Fatalf("expected eval errors, got fatal error: %v", err)
	}
	if sc != nil {
		t.Error("expected nil scene on parse error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected at least one eval error")
	}
}

func TestEvaluateBuiltinErrors(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   string
	}{
		{"negative voxel size", `(voxel-size -1)`, "voxel-size"},
		{"fill out of range", `(fill 1.5)`, "fill"},
		{"bad topology", `(topology :everything)`, "topology"},
		{"box arity", `(box 1 1)`, "box"},
		{"vec3 arity", `(vec3 1 2)`, "vec3"},
		{"sphere bad position", `(sphere 2 :at 5)`, "sphere"},
	}
	eng := NewEngine()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sc, evalErrs, err := eng.Evaluate(tc.source)
			if err != nil {
				t.Fatalf("fatal error: %v", err)
			}
			if sc != nil {
				t.Error("expected nil scene")
			}
			if len(evalErrs) == 0 {
				t.Fatal("expected eval errors")
			}
			found := false
			for _, e := range evalErrs {
				if strings.Contains(e.Message, tc.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("errors %v do not mention %q", evalErrs, tc.want)
			}
		})
	}
}

func TestEvalErrorString(t *testing.T) {
	e := EvalError{Line: 3, Message: "boom"}
	if got := e.Error(); got != "line 3: boom" {
		t.Errorf("Error() = %q", got)
	}
	e = EvalError{Message: "boom"}
	if got := e.Error(); got != "boom" {
		t.Errorf("Error() = %q", got)
	}
}
