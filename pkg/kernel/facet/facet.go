// Package facet implements the kernel.Kernel interface with exact analytic
// triangle meshes. Primitives are constructed directly as closed triangle
// soups, so bounding boxes and vertex positions are exact rather than
// approximated by an implicit-surface tessellation. This is the default
// backend for building generation.
package facet

import (
	"fmt"
	"math"

	"github.com/chazu/housewright/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Kernel = (*FacetKernel)(nil)

// defaultCylinderSegments is used when the caller passes segments <= 2.
const defaultCylinderSegments = 24

type vec3 struct {
	x, y, z float64
}

// triangle is one face with counter-clockwise winding seen from outside.
type triangle [3]vec3

// facetSolid is an immutable triangle soup implementing kernel.Solid.
// Transforms produce a new solid; the input is never mutated.
type facetSolid struct {
	tris []triangle
}

// BoundingBox returns the axis-aligned bounding box.
func (s *facetSolid) BoundingBox() (min, max [3]float64) {
	min = [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	max = [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, t := range s.tris {
		for _, v := range t {
			min[0] = math.Min(min[0], v.x)
			min[1] = math.Min(min[1], v.y)
			min[2] = math.Min(min[2], v.z)
			max[0] = math.Max(max[0], v.x)
			max[1] = math.Max(max[1], v.y)
			max[2] = math.Max(max[2], v.z)
		}
	}
	return min, max
}

// FacetKernel implements kernel.Kernel with analytic triangle meshes.
type FacetKernel struct{}

// New returns a new FacetKernel.
func New() *FacetKernel {
	return &FacetKernel{}
}

// quad appends a planar quad a,b,c,d (counter-clockwise from outside) as
// two triangles.
func quad(tris []triangle, a, b, c, d vec3) []triangle {
	return append(tris, triangle{a, b, c}, triangle{a, c, d})
}

// Box creates a box with the given dimensions, centered on the origin.
func (k *FacetKernel) Box(x, y, z float64) kernel.Solid {
	hx, hy, hz := x/2, y/2, z/2
	var tris []triangle
	// +X, -X
	tris = quad(tris, vec3{hx, -hy, -hz}, vec3{hx, hy, -hz}, vec3{hx, hy, hz}, vec3{hx, -hy, hz})
	tris = quad(tris, vec3{-hx, -hy, -hz}, vec3{-hx, -hy, hz}, vec3{-hx, hy, hz}, vec3{-hx, hy, -hz})
	// +Y, -Y
	tris = quad(tris, vec3{-hx, hy, -hz}, vec3{-hx, hy, hz}, vec3{hx, hy, hz}, vec3{hx, hy, -hz})
	tris = quad(tris, vec3{-hx, -hy, -hz}, vec3{hx, -hy, -hz}, vec3{hx, -hy, hz}, vec3{-hx, -hy, hz})
	// +Z, -Z
	tris = quad(tris, vec3{-hx, -hy, hz}, vec3{hx, -hy, hz}, vec3{hx, hy, hz}, vec3{-hx, hy, hz})
	tris = quad(tris, vec3{-hx, -hy, -hz}, vec3{-hx, hy, -hz}, vec3{hx, hy, -hz}, vec3{hx, -hy, -hz})
	return &facetSolid{tris: tris}
}

// Cylinder creates a cylinder with its axis along Y, centered on the origin.
func (k *FacetKernel) Cylinder(height, radius float64, segments int) kernel.Solid {
	if segments <= 2 {
		segments = defaultCylinderSegments
	}
	hy := height / 2
	var tris []triangle
	for i := 0; i < segments; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(segments)
		a1 := 2 * math.Pi * float64(i+1) / float64(segments)
		x0, z0 := radius*math.Cos(a0), radius*math.Sin(a0)
		x1, z1 := radius*math.Cos(a1), radius*math.Sin(a1)

		// Side quad. The angle increases toward +Z, so the outward winding
		// runs from a1 to a0 when seen from outside.
		tris = quad(tris,
			vec3{x1, -hy, z1}, vec3{x0, -hy, z0},
			vec3{x0, hy, z0}, vec3{x1, hy, z1})
		// Caps as fans around the axis.
		tris = append(tris,
			triangle{vec3{0, hy, 0}, vec3{x1, hy, z1}, vec3{x0, hy, z0}},
			triangle{vec3{0, -hy, 0}, vec3{x0, -hy, z0}, vec3{x1, -hy, z1}})
	}
	return &facetSolid{tris: tris}
}

// Extrude sweeps a convex counter-clockwise profile in the XY plane
// symmetrically along Z. The profile must have at least 3 vertices.
func (k *FacetKernel) Extrude(profile []kernel.Point2, depth float64) kernel.Solid {
	if len(profile) < 3 {
		panic(fmt.Sprintf("facet.Extrude: profile needs at least 3 vertices, got %d", len(profile)))
	}
	hz := depth / 2
	var tris []triangle

	// Caps: fan triangulation, valid because the profile is convex.
	// Front cap (+Z) keeps profile order, back cap (-Z) reverses it.
	for i := 1; i < len(profile)-1; i++ {
		p0, p1, p2 := profile[0], profile[i], profile[i+1]
		tris = append(tris,
			triangle{vec3{p0.X, p0.Y, hz}, vec3{p1.X, p1.Y, hz}, vec3{p2.X, p2.Y, hz}},
			triangle{vec3{p0.X, p0.Y, -hz}, vec3{p2.X, p2.Y, -hz}, vec3{p1.X, p1.Y, -hz}})
	}

	// Sides: one quad per profile edge.
	for i := range profile {
		a := profile[i]
		b := profile[(i+1)%len(profile)]
		tris = quad(tris,
			vec3{a.X, a.Y, -hz}, vec3{b.X, b.Y, -hz},
			vec3{b.X, b.Y, hz}, vec3{a.X, a.Y, hz})
	}
	return &facetSolid{tris: tris}
}

// Pyramid creates a rectangular-base pyramid. The base sits in the XZ plane
// at Y=0 centered on the origin; the apex is at (0, height, 0). The solid is
// closed: four slope triangles plus the base quad.
func (k *FacetKernel) Pyramid(baseX, baseZ, height float64) kernel.Solid {
	hx, hz := baseX/2, baseZ/2
	apex := vec3{0, height, 0}
	c := [4]vec3{
		{-hx, 0, -hz},
		{hx, 0, -hz},
		{hx, 0, hz},
		{-hx, 0, hz},
	}
	var tris []triangle
	for i := 0; i < 4; i++ {
		a, b := c[i], c[(i+1)%4]
		tris = append(tris, triangle{b, a, apex})
	}
	// Base faces down.
	tris = append(tris, triangle{c[0], c[1], c[2]}, triangle{c[0], c[2], c[3]})
	return &facetSolid{tris: tris}
}

// Translate moves a solid by (x, y, z).
func (k *FacetKernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	return transform(s, func(v vec3) vec3 {
		return vec3{v.x + x, v.y + y, v.z + z}
	})
}

// RotateY rotates a solid about the vertical axis (right-handed, degrees).
func (k *FacetKernel) RotateY(s kernel.Solid, degrees float64) kernel.Solid {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	return transform(s, func(v vec3) vec3 {
		return vec3{v.x*cos + v.z*sin, v.y, -v.x*sin + v.z*cos}
	})
}

// transform applies f to every vertex, producing a new solid.
func transform(s kernel.Solid, f func(vec3) vec3) kernel.Solid {
	fs := s.(*facetSolid)
	out := make([]triangle, len(fs.tris))
	for i, t := range fs.tris {
		out[i] = triangle{f(t[0]), f(t[1]), f(t[2])}
	}
	return &facetSolid{tris: out}
}

// ToMesh converts a solid to a flat triangle mesh with per-face normals
// computed from vertex winding.
func (k *FacetKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	fs := s.(*facetSolid)
	numTri := len(fs.tris)

	vertices := make([]float32, 0, numTri*9)
	normals := make([]float32, 0, numTri*9)
	indices := make([]uint32, 0, numTri*3)

	for i, tri := range fs.tris {
		n := faceNormal(tri)
		nx, ny, nz := float32(n.x), float32(n.y), float32(n.z)
		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.x), float32(v.y), float32(v.z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}

// faceNormal returns the unit normal implied by the triangle's winding.
func faceNormal(t triangle) vec3 {
	ux, uy, uz := t[1].x-t[0].x, t[1].y-t[0].y, t[1].z-t[0].z
	vx, vy, vz := t[2].x-t[0].x, t[2].y-t[0].y, t[2].z-t[0].z
	n := vec3{
		uy*vz - uz*vy,
		uz*vx - ux*vz,
		ux*vy - uy*vx,
	}
	len := math.Sqrt(n.x*n.x + n.y*n.y + n.z*n.z)
	if len == 0 {
		return vec3{}
	}
	return vec3{n.x / len, n.y / len, n.z / len}
}
