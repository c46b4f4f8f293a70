package scene

import (
	"fmt"

	"github.com/chazu/occlude/pkg/kernel"
	"github.com/chazu/occlude/pkg/occluder"
)

// Vec3 is a position in scene space.
type Vec3 struct {
	X, Y, Z float64
}

type primKind int

const (
	primBox primKind = iota
	primSphere
	primCylinder
)

// primitive is one placed solid in the scene. Dims holds box X,Y,Z,
// sphere radius, or cylinder height,radius depending on Kind.
type primitive struct {
	kind primKind
	dims [3]float64
	at   Vec3
}

// Scene is the evaluated output of a scene program: solid primitives to
// union into the input mesh, plus the occluder generation parameters
// the program selected.
type Scene struct {
	VoxelSize float32
	FillPct   float32
	BoxTypes  occluder.BoxType
	MeshCells int

	prims []primitive
}

// NewScene returns a Scene with the generation defaults: unit voxels,
// 80% fill, full cuboids.
func NewScene() *Scene {
	return &Scene{
		VoxelSize: 1,
		FillPct:   0.8,
		BoxTypes:  occluder.BoxRegular,
	}
}

// PrimitiveCount returns the number of placed solids.
func (s *Scene) PrimitiveCount() int {
	return len(s.prims)
}

// Build tessellates the scene through k: every primitive is placed at
// its position, the solids are unioned, and the union is meshed once.
func (s *Scene) Build(k kernel.Kernel) (*kernel.Mesh, error) {
	if len(s.prims) == 0 {
		return nil, fmt.Errorf("scene: no solids to build")
	}

	var solid kernel.Solid
	for _, p := range s.prims {
		var prim kernel.Solid
		switch p.kind {
		case primBox:
			prim = k.Box(p.dims[0], p.dims[1], p.dims[2])
		case primSphere:
			prim = k.Sphere(p.dims[0])
		case primCylinder:
			prim = k.Cylinder(p.dims[0], p.dims[1])
		default:
			return nil, fmt.Errorf("scene: unknown primitive kind %d", p.kind)
		}
		prim = k.Translate(prim, p.at.X, p.at.Y, p.at.Z)

		if solid == nil {
			solid = prim
		} else {
			solid = k.Union(solid, prim)
		}
	}

	mesh, err := k.ToMesh(solid, s.MeshCells)
	if err != nil {
		return nil, fmt.Errorf("scene: tessellation failed: %w", err)
	}
	return mesh, nil
}

// Params assembles the occluder parameters the scene program selected,
// to run against a mesh built from this scene.
func (s *Scene) Params(m *kernel.Mesh) occluder.Params {
	return occluder.Params{
		Mesh:           m,
		VoxelSize:      s.VoxelSize,
		FillPercentage: s.FillPct,
		BoxTypes:       s.BoxTypes,
	}
}
