// Package kernel defines the abstract solid-modeling kernel interface
// used to synthesize watertight input meshes for the occluder pipeline.
// Implementations provide primitives and boolean operations behind this
// interface so the rest of the system never touches a specific CAD
// backend.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract solid-modeling interface.
type Kernel interface {
	// Primitives
	Box(x, y, z float64) Solid
	Sphere(radius float64) Solid
	Cylinder(height, radius float64) Solid

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid

	// ToMesh tessellates the solid surface into an indexed triangle
	// mesh. The cells parameter controls tessellation resolution; the
	// resulting surface is closed. Returns an error if the tessellation
	// overflows the 16-bit index space.
	ToMesh(s Solid, cells int) (*Mesh, error)
}
