// Package scene holds the renderer-facing scene graph: fixed furniture
// (ground, lights, grid) plus the generated building model, and the mutator
// that swaps generations in and out without touching the furniture.
package scene

import (
	"github.com/chazu/housewright/pkg/build"
	"github.com/chazu/housewright/pkg/kernel"
	"github.com/google/uuid"
)

// Object is one scene-graph entry. Generated objects carry the generation
// token of the build pass that produced them; furniture has Generated
// false and survives every rebuild.
type Object struct {
	ID        uuid.UUID
	Name      string
	Generated bool
	Token     uuid.UUID // zero for furniture
	Mesh      *kernel.Mesh
	Material  build.Material

	disposed bool
}

// Disposed reports whether the object's resources have been released.
// A disposed object must not be referenced again.
func (o *Object) Disposed() bool {
	return o.disposed
}

// dispose releases the object's mesh arrays.
func (o *Object) dispose() {
	if o.Mesh != nil {
		o.Mesh.Release()
	}
	o.disposed = true
}

// Scene is a flat scene graph. It is not safe for concurrent use; the
// rendering loop owns it and regenerations never overlap.
type Scene struct {
	objects []*Object
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{}
}

// AddFurniture inserts a non-generated object (ground plane, grid, light
// proxy). Furniture is never touched by Clear.
func (s *Scene) AddFurniture(name string, mesh *kernel.Mesh) *Object {
	obj := &Object{ID: uuid.New(), Name: name, Mesh: mesh}
	s.objects = append(s.objects, obj)
	return obj
}

// add inserts a generated object tagged with its generation token.
func (s *Scene) add(name string, token uuid.UUID, mesh *kernel.Mesh, mat build.Material) *Object {
	obj := &Object{
		ID: uuid.New(), Name: name,
		Generated: true, Token: token,
		Mesh: mesh, Material: mat,
	}
	s.objects = append(s.objects, obj)
	return obj
}

// Objects returns the live scene contents in insertion order.
func (s *Scene) Objects() []*Object {
	return s.objects
}

// GeneratedCount returns the number of live generated objects.
func (s *Scene) GeneratedCount() int {
	n := 0
	for _, o := range s.objects {
		if o.Generated {
			n++
		}
	}
	return n
}

// clearGenerated removes and disposes every generated object, identified
// by its generation marker rather than by type, leaving furniture alone.
func (s *Scene) clearGenerated() {
	kept := s.objects[:0]
	for _, o := range s.objects {
		if o.Generated {
			o.dispose()
			continue
		}
		kept = append(kept, o)
	}
	// Drop trailing pointers so disposed objects can be collected.
	for i := len(kept); i < len(s.objects); i++ {
		s.objects[i] = nil
	}
	s.objects = kept
}
