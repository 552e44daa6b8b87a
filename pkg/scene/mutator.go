package scene

import (
	"fmt"

	"github.com/chazu/housewright/pkg/build"
	"github.com/chazu/housewright/pkg/kernel"
	"github.com/chazu/housewright/pkg/plan"
)

// Mutator is the only writer of generated scene content. Every regeneration
// is a full rebuild: discard the previous generation, run the generator,
// tessellate, insert. There is no incremental diffing, so repeated calls
// with the same plan converge to identical scene contents.
type Mutator struct {
	scene  *Scene
	kernel kernel.Kernel
}

// NewMutator wires a mutator to its scene and geometry backend.
func NewMutator(s *Scene, k kernel.Kernel) *Mutator {
	return &Mutator{scene: s, kernel: k}
}

// Scene returns the scene this mutator writes to.
func (m *Mutator) Scene() *Scene {
	return m.scene
}

// Clear removes every generated object from the scene and releases its
// mesh resources. Furniture is untouched.
func (m *Mutator) Clear() {
	m.scene.clearGenerated()
}

// Regenerate replaces the scene's generated content with a fresh build of
// the given plan. The old generation is cleared first, so the scene is never
// in a mixed old/new state; a failed pass leaves the scene empty of
// generated content and the next call recovers it.
func (m *Mutator) Regenerate(p *plan.FloorPlan) (*build.Model, error) {
	m.Clear()

	model, err := build.Generate(m.kernel, p)
	if err != nil {
		return nil, err
	}

	for _, piece := range model.Pieces {
		mesh, err := m.kernel.ToMesh(piece.Solid)
		if err != nil {
			return nil, fmt.Errorf("scene: tessellating %s: %w", piece.Label, err)
		}
		mesh.Label = piece.Label
		m.scene.add(piece.Label, model.Token, mesh, piece.Material)
	}
	return model, nil
}
