package build

import (
	"fmt"

	"github.com/chazu/housewright/pkg/kernel"
	"github.com/chazu/housewright/pkg/plan"
	"github.com/google/uuid"
)

// slabThickness is the ground-floor slab height, scene units.
const slabThickness = 0.2

// Stats are the aggregate counts reported to the statistics UI. They are
// the sums of the plan's per-floor list lengths, independent of how many
// pieces were actually emitted or skipped.
type Stats struct {
	Floors  int `json:"floors"`
	Walls   int `json:"walls"`
	Doors   int `json:"doors"`
	Windows int `json:"windows"`
}

// Model is the output of one generation pass: every emitted piece, tagged
// with a generation token so the scene mutator can later find and discard
// exactly this set.
type Model struct {
	Token  uuid.UUID
	Pieces []Piece
	Stats  Stats
	Report plan.ValidationResult
}

// Generator drives one generation pass over an immutable plan snapshot.
// It is not reused across passes; Generate constructs one per call.
type Generator struct {
	kernel kernel.Kernel
	plan   *plan.FloorPlan
}

// Generate converts a plan snapshot into a generated model. The plan is
// only read. Per-wall and per-opening problems are skipped and reported as
// warnings on the model; only top-level misuse (nil plan, no floors,
// negative floor configuration) fails the whole pass.
func Generate(k kernel.Kernel, p *plan.FloorPlan) (*Model, error) {
	report := plan.Validate(p)
	if !report.OK() {
		return nil, fmt.Errorf("build: invalid plan: %s", report.Errors[0].Error())
	}

	g := &Generator{kernel: k, plan: p}
	model := &Model{
		Token:  uuid.New(),
		Report: report,
		Stats: Stats{
			Floors:  len(p.Floors),
			Walls:   p.WallCount(),
			Doors:   p.DoorCount(),
			Windows: p.WindowCount(),
		},
	}

	// Stack floors bottom-up. Each floor's base elevation is the sum of
	// the wall heights below it, using each floor's own height.
	cumulativeFeet := 0.0
	for i := range p.Floors {
		floor := &p.Floors[i]
		baseY := plan.FeetToScene(cumulativeFeet)

		for w := range floor.Walls {
			model.Pieces = append(model.Pieces, g.buildWall(floor, i, w, baseY)...)
		}

		// Only the ground floor gets a slab: intermediate stories are
		// separated by walls alone, and a roof or the next floor's walls
		// cap the space.
		if i == 0 {
			model.Pieces = append(model.Pieces, g.buildSlab(floor, i, baseY)...)
		}

		for pIdx, patio := range floor.Patios {
			model.Pieces = append(model.Pieces, g.buildPatio(patio, i, pIdx, baseY)...)
		}

		cumulativeFeet += floor.WallHeight

		if floor.HasRoof {
			roofY := plan.FeetToScene(cumulativeFeet)
			model.Pieces = append(model.Pieces, g.buildRoof(floor, i, roofY)...)
		}
	}

	return model, nil
}

// buildSlab emits the floor slab across the floor's wall footprint, with
// its top flush with the floor's base elevation. Empty floors get no slab.
func (g *Generator) buildSlab(floor *plan.Floor, floorIdx int, baseY float64) []Piece {
	b, ok := g.floorBounds(floor)
	if !ok {
		return nil
	}
	s := g.kernel.Box(b.width(), slabThickness, b.depth())
	s = g.kernel.Translate(s, b.centerX(), baseY-slabThickness/2, b.centerZ())
	return []Piece{{
		Kind:  PieceFloorSlab,
		Label: fmt.Sprintf("floor%d/slab", floorIdx),
		Floor: floorIdx, Material: materialFor(PieceFloorSlab), Solid: s,
	}}
}
