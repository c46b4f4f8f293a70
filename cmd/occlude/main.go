// Command occlude generates conservative occluder boxes for a closed
// triangle mesh. The input is either a Wavefront OBJ file or a Lisp
// scene program; the output is an OBJ file holding the occluder
// cuboids, with an optional second OBJ of debug geometry.
//
// Usage:
//
//	occlude -in model.obj -voxel 0.25 -fill 0.9 -out occluders.obj
//	occlude -scene scene.zy -out occluders.obj
//
// Scene-program parameters (voxel-size, fill, topology) override the
// corresponding flags.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/chazu/occlude/pkg/kernel"
	"github.com/chazu/occlude/pkg/kernel/sdfx"
	"github.com/chazu/occlude/pkg/objfile"
	"github.com/chazu/occlude/pkg/occluder"
	"github.com/chazu/occlude/pkg/scene"
)

func main() {
	var (
		inPath    = flag.String("in", "", "input OBJ mesh")
		scenePath = flag.String("scene", "", "input Lisp scene program (alternative to -in)")
		outPath   = flag.String("out", "occluders.obj", "output OBJ for the occluder boxes")
		debugPath = flag.String("debug-out", "", "optional output OBJ for debug geometry")
		voxelSize = flag.Float64("voxel", 1, "voxel edge length in mesh units")
		fillPct   = flag.Float64("fill", 0.8, "target interior fill ratio in (0,1]")
		topology  = flag.String("topology", "regular", "comma-separated box topology: regular,sides,top,bottom,diagonals")
	)
	flag.Parse()

	if (*inPath == "") == (*scenePath == "") {
		log.Fatal("exactly one of -in or -scene is required")
	}

	params := occluder.Params{
		VoxelSize:      float32(*voxelSize),
		FillPercentage: float32(*fillPct),
	}
	var err error
	params.BoxTypes, err = parseTopology(*topology)
	if err != nil {
		log.Fatal(err)
	}

	if *inPath != "" {
		params.Mesh, err = objfile.Load(*inPath)
		if err != nil {
			log.Fatalf("load %s: %v", *inPath, err)
		}
	} else {
		params = evaluateScene(*scenePath, params)
	}
	log.Printf("input mesh: %d vertices, %d triangles",
		params.Mesh.VertexCount(), params.Mesh.TriangleCount())

	if *debugPath != "" {
		params.Debug = occluder.DebugParams{
			Flags:       occluder.DebugShowResult,
			ExtentIndex: -1,
		}
	}

	result, err := occluder.Generate(params)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	log.Printf("accepted %d boxes, %d triangles",
		len(result.Extents), result.Mesh.TriangleCount())

	if err := objfile.Save(*outPath, result.Mesh); err != nil {
		log.Fatalf("save %s: %v", *outPath, err)
	}
	log.Printf("wrote %s", *outPath)

	if *debugPath != "" && result.DebugMesh != nil {
		if err := objfile.Save(*debugPath, stripColors(result.DebugMesh)); err != nil {
			log.Fatalf("save %s: %v", *debugPath, err)
		}
		log.Printf("wrote %s", *debugPath)
	}
}

// evaluateScene runs a scene program and tessellates it. The scene's
// generation parameters take precedence over the flag values in base.
func evaluateScene(path string, base occluder.Params) occluder.Params {
	source, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}

	eng := scene.NewEngine()
	sc, evalErrs, err := eng.Evaluate(string(source))
	if err != nil {
		log.Fatalf("evaluate %s: %v", path, err)
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			log.Printf("%s: %v", path, e)
		}
		os.Exit(1)
	}

	mesh, err := sc.Build(sdfx.New())
	if err != nil {
		log.Fatalf("build scene %s: %v", path, err)
	}

	base.Mesh = mesh
	base.VoxelSize = sc.VoxelSize
	base.FillPercentage = sc.FillPct
	base.BoxTypes = sc.BoxTypes
	return base
}

func parseTopology(list string) (occluder.BoxType, error) {
	flags := occluder.BoxNone
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		f, err := scene.ParseBoxType(name)
		if err != nil {
			return occluder.BoxNone, err
		}
		flags |= f
	}
	if flags == occluder.BoxNone {
		return occluder.BoxNone, fmt.Errorf("topology %q selects no box faces", list)
	}
	return flags, nil
}

// stripColors drops the interleaved colors from a debug mesh so it can
// be written as plain OBJ geometry.
func stripColors(m *kernel.Mesh) *kernel.Mesh {
	out := &kernel.Mesh{
		Indices: m.Indices,
	}
	for i := 0; i < len(m.Vertices); i += 2 {
		out.Vertices = append(out.Vertices, m.Vertices[i])
	}
	return out
}
