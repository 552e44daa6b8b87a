package build

import (
	"fmt"
	"math"

	"github.com/chazu/housewright/pkg/kernel"
	"github.com/chazu/housewright/pkg/plan"
)

const (
	// flatRoofThickness is the slab thickness of a flat roof, scene units.
	flatRoofThickness = 0.3

	// gableAngleTol classifies a wall as a gable end when the cosine (or
	// sine, for a Z-running ridge) of its heading is below this value.
	// A single tolerance is used everywhere a wall is tested against a
	// ridge axis.
	gableAngleTol = 0.1
)

// bounds is an axis-aligned footprint in scene units, built by folding
// over wall endpoints.
type bounds struct {
	minX, maxX float64
	minZ, maxZ float64
}

func (b bounds) width() float64   { return b.maxX - b.minX }
func (b bounds) depth() float64   { return b.maxZ - b.minZ }
func (b bounds) centerX() float64 { return (b.minX + b.maxX) / 2 }
func (b bounds) centerZ() float64 { return (b.minZ + b.maxZ) / 2 }

// expand grows the footprint by the given margin on all sides.
func (b bounds) expand(margin float64) bounds {
	return bounds{
		minX: b.minX - margin, maxX: b.maxX + margin,
		minZ: b.minZ - margin, maxZ: b.maxZ + margin,
	}
}

// floorBounds folds the floor's wall endpoints into a scene-space footprint.
// ok is false when the floor has no walls.
func (g *Generator) floorBounds(floor *plan.Floor) (bounds, bool) {
	if len(floor.Walls) == 0 {
		return bounds{}, false
	}
	b := bounds{
		minX: math.Inf(1), maxX: math.Inf(-1),
		minZ: math.Inf(1), maxZ: math.Inf(-1),
	}
	for _, w := range floor.Walls {
		for _, pt := range [2]plan.Point{w.Start, w.End} {
			x, z := g.plan.SceneX(pt), g.plan.SceneZ(pt)
			b.minX = math.Min(b.minX, x)
			b.maxX = math.Max(b.maxX, x)
			b.minZ = math.Min(b.minZ, z)
			b.maxZ = math.Max(b.maxZ, z)
		}
	}
	return b, true
}

// roofHeightFor derives the apex height from the pitch convention
// "rise per 12 units of run" applied to the half-span of the longer axis.
func roofHeightFor(b bounds, pitch float64) float64 {
	return math.Max(b.width(), b.depth()) / 2 * pitch / 12
}

// buildRoof emits one floor's roof at elevation roofY (the top plate of the
// floor's walls), plus gable-end wall infill for gable roofs. Empty floors
// get no roof.
func (g *Generator) buildRoof(floor *plan.Floor, floorIdx int, roofY float64) []Piece {
	base, ok := g.floorBounds(floor)
	if !ok {
		return nil
	}
	b := base.expand(plan.FeetToScene(floor.RoofOverhang))
	label := fmt.Sprintf("floor%d/roof", floorIdx)

	var pieces []Piece
	switch floor.RoofStyle {
	case plan.RoofFlat:
		s := g.kernel.Box(b.width(), flatRoofThickness, b.depth())
		s = g.kernel.Translate(s, b.centerX(), roofY, b.centerZ())
		pieces = append(pieces, roofPiece(label, floorIdx, s))

	case plan.RoofHip:
		s := g.kernel.Pyramid(b.width(), b.depth(), roofHeightFor(b, floor.RoofPitch))
		s = g.kernel.Translate(s, b.centerX(), roofY, b.centerZ())
		pieces = append(pieces, roofPiece(label, floorIdx, s))

	case plan.RoofGable:
		pieces = append(pieces, roofPiece(label, floorIdx, g.gablePrism(b, floor.RoofPitch, roofY)))
		pieces = append(pieces, g.gableEndFills(floor, floorIdx, b, roofHeightFor(b, floor.RoofPitch), roofY)...)
	}
	return pieces
}

func roofPiece(label string, floorIdx int, s kernel.Solid) Piece {
	return Piece{
		Kind: PieceRoof, Label: label, Floor: floorIdx,
		Material: materialFor(PieceRoof), Solid: s,
	}
}

// gablePrism builds the two-slope prism. The ridge runs along whichever
// footprint axis is longer; a square footprint resolves to an X-axis ridge.
func (g *Generator) gablePrism(b bounds, pitch, roofY float64) kernel.Solid {
	ridgeAlongX := b.width() >= b.depth()
	roofH := roofHeightFor(b, pitch)

	span, ridgeLen := b.depth(), b.width()
	if !ridgeAlongX {
		span, ridgeLen = b.width(), b.depth()
	}

	profile := []kernel.Point2{
		{X: -span / 2, Y: 0},
		{X: span / 2, Y: 0},
		{X: 0, Y: roofH},
	}
	s := g.kernel.Extrude(profile, ridgeLen)
	if ridgeAlongX {
		// Extrusion runs along Z; swing the ridge onto the X axis.
		s = g.kernel.RotateY(s, 90)
	}
	return g.kernel.Translate(s, b.centerX(), roofY, b.centerZ())
}

// gableEndFills emits the triangular wall infill under a gable roof. A wall
// qualifies when it runs nearly perpendicular to the ridge; its infill apex
// height tapers linearly from the full roof height at the ridge centerline
// to zero at the footprint's edge, so the silhouette meets the ridge at the
// center and the eave at the extremity.
func (g *Generator) gableEndFills(floor *plan.Floor, floorIdx int, b bounds, roofH, roofY float64) []Piece {
	ridgeAlongX := b.width() >= b.depth()
	thickness := plan.FeetToScene(plan.WallThicknessFeet)

	var pieces []Piece
	for wallIdx := range floor.Walls {
		frame, ok := g.frameWall(floor.Walls[wallIdx])
		if !ok {
			continue
		}

		heading := frame.headingDeg * math.Pi / 180
		midX, midZ := frame.at(0.5)

		var along, halfSpan, dist float64
		if ridgeAlongX {
			// Gable ends run along Z: the X component of the heading
			// vanishes for a qualifying wall.
			along = math.Abs(math.Cos(heading))
			halfSpan = b.depth() / 2
			dist = math.Abs(midZ - b.centerZ())
		} else {
			along = math.Abs(math.Sin(heading))
			halfSpan = b.width() / 2
			dist = math.Abs(midX - b.centerX())
		}
		if along >= gableAngleTol || halfSpan <= 0 {
			continue
		}

		fillH := roofH * (1 - dist/halfSpan)
		if fillH <= 0 {
			continue // wall sits beyond the roof footprint
		}

		profile := []kernel.Point2{
			{X: -frame.length / 2, Y: 0},
			{X: frame.length / 2, Y: 0},
			{X: 0, Y: fillH},
		}
		s := g.kernel.Extrude(profile, thickness)
		s = g.kernel.RotateY(s, -frame.headingDeg)
		s = g.kernel.Translate(s, midX, roofY, midZ)

		pieces = append(pieces, Piece{
			Kind:  PieceGableFill,
			Label: fmt.Sprintf("floor%d/wall%d/gable-fill", floorIdx, wallIdx),
			Floor: floorIdx, Material: materialFor(PieceGableFill), Solid: s,
		})
	}
	return pieces
}
