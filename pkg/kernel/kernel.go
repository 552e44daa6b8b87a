// Package kernel defines the abstract geometry kernel interface.
// Implementations (facet, sdfx) provide solid primitives and transforms
// behind this interface, so the building generator never depends on a
// particular geometry representation.
package kernel

// Solid is an opaque handle to a kernel solid.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Point2 is a 2D profile vertex used by Extrude.
type Point2 struct {
	X, Y float64
}

// Kernel is the abstract geometry kernel interface. All primitives are
// created centered on the origin; the generator positions them with
// Translate and RotateY.
//
// Conventions: Y is up. Cylinder's axis runs along Y.
// Extrude sweeps a convex counter-clockwise profile
// in the XY plane symmetrically along Z (from -depth/2 to +depth/2).
// Pyramid has a rectangular base in the XZ plane at Y=0 centered on the
// origin, with its apex at (0, height, 0).
type Kernel interface {
	Box(x, y, z float64) Solid
	Cylinder(height, radius float64, segments int) Solid
	Extrude(profile []Point2, depth float64) Solid
	Pyramid(baseX, baseZ, height float64) Solid

	Translate(s Solid, x, y, z float64) Solid
	RotateY(s Solid, degrees float64) Solid

	ToMesh(s Solid) (*Mesh, error)
}
