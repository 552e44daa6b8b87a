package build

import (
	"fmt"

	"github.com/chazu/housewright/pkg/kernel"
	"github.com/chazu/housewright/pkg/plan"
)

const (
	// deckThickness is the patio deck slab height, scene units.
	deckThickness = 0.2

	// Canopy geometry: posts are inset from the deck edges and stop short
	// of the canopy elevation; the canopy uses a fixed ridge rise and
	// overhang rather than a pitch-derived height.
	postInset       = 0.3
	postRadius      = 0.08
	postSegments    = 16
	postClearance   = 0.3
	canopyRidgeRise = 1.5
	canopyOverhang  = 0.5
)

// buildPatio emits a deck slab at the floor's base elevation and, for
// covered patios, four corner posts and a canopy roof. Degenerate
// footprints emit nothing.
func (g *Generator) buildPatio(patio plan.Patio, floorIdx, patioIdx int, baseY float64) []Piece {
	if patio.Width <= 0 || patio.Depth <= 0 {
		return nil
	}

	w := plan.ToScene(patio.Width, g.plan.GridSize)
	d := plan.ToScene(patio.Depth, g.plan.GridSize)
	cx := g.plan.SceneX(patio.Position) + w/2
	cz := g.plan.SceneZ(patio.Position) + d/2
	label := fmt.Sprintf("floor%d/patio%d", floorIdx, patioIdx)

	deck := g.kernel.Box(w, deckThickness, d)
	deck = g.kernel.Translate(deck, cx, baseY+deckThickness/2, cz)
	pieces := []Piece{{
		Kind: PieceDeck, Label: label + "/deck", Floor: floorIdx,
		Material: materialFor(PieceDeck), Solid: deck,
	}}

	if !patio.HasRoof {
		return pieces
	}

	canopyY := baseY + plan.FeetToScene(patio.RoofHeight)
	postH := canopyY - baseY - postClearance
	if postH > 0 {
		for i, corner := range [4][2]float64{
			{cx - w/2 + postInset, cz - d/2 + postInset},
			{cx + w/2 - postInset, cz - d/2 + postInset},
			{cx + w/2 - postInset, cz + d/2 - postInset},
			{cx - w/2 + postInset, cz + d/2 - postInset},
		} {
			post := g.kernel.Cylinder(postH, postRadius, postSegments)
			post = g.kernel.Translate(post, corner[0], baseY+postH/2, corner[1])
			pieces = append(pieces, Piece{
				Kind: PiecePost, Label: fmt.Sprintf("%s/post%d", label, i), Floor: floorIdx,
				Material: materialFor(PiecePost), Solid: post,
			})
		}
	}

	pieces = append(pieces, Piece{
		Kind: PieceCanopy, Label: label + "/canopy", Floor: floorIdx,
		Material: materialFor(PieceCanopy),
		Solid:    g.canopySolid(patio.RoofStyle, w, d, cx, cz, canopyY),
	})
	return pieces
}

// canopySolid builds the canopy roof with the same three shape families as
// the main roof, but with a fixed ridge rise instead of a pitch-derived
// apex and a fixed overhang.
func (g *Generator) canopySolid(style plan.RoofStyle, w, d, cx, cz, canopyY float64) kernel.Solid {
	cw := w + 2*canopyOverhang
	cd := d + 2*canopyOverhang

	var s kernel.Solid
	switch style {
	case plan.RoofHip:
		s = g.kernel.Pyramid(cw, cd, canopyRidgeRise)
	case plan.RoofGable:
		ridgeAlongX := cw >= cd
		span, ridgeLen := cd, cw
		if !ridgeAlongX {
			span, ridgeLen = cw, cd
		}
		s = g.kernel.Extrude([]kernel.Point2{
			{X: -span / 2, Y: 0},
			{X: span / 2, Y: 0},
			{X: 0, Y: canopyRidgeRise},
		}, ridgeLen)
		if ridgeAlongX {
			s = g.kernel.RotateY(s, 90)
		}
	default: // flat
		s = g.kernel.Box(cw, flatRoofThickness, cd)
	}
	return g.kernel.Translate(s, cx, canopyY, cz)
}
