package build

import (
	"fmt"
	"math"

	"github.com/chazu/housewright/pkg/kernel"
	"github.com/chazu/housewright/pkg/plan"
)

const (
	// minInfillScene is the smallest infill band worth emitting, in scene
	// units. Thinner bands are degenerate slivers.
	minInfillScene = 0.1

	// Panel depths relative to the structural wall thickness.
	doorPanelDepthRatio   = 0.5
	windowPanelDepthRatio = 0.3
)

// wallFrame is a wall resolved into scene coordinates: endpoints, length,
// and heading about the vertical axis.
type wallFrame struct {
	sx, sz     float64 // start
	ex, ez     float64 // end
	length     float64 // scene units
	headingDeg float64
}

// frameWall resolves a plan wall into scene space. ok is false for
// degenerate walls.
func (g *Generator) frameWall(w plan.Wall) (wallFrame, bool) {
	f := wallFrame{
		sx: g.plan.SceneX(w.Start),
		sz: g.plan.SceneZ(w.Start),
		ex: g.plan.SceneX(w.End),
		ez: g.plan.SceneZ(w.End),
	}
	dx, dz := f.ex-f.sx, f.ez-f.sz
	f.length = math.Hypot(dx, dz)
	if f.length <= 0 {
		return f, false
	}
	f.headingDeg = math.Atan2(dz, dx) * 180 / math.Pi
	return f, true
}

// at returns the scene position of a fractional point along the wall.
func (f wallFrame) at(fraction float64) (x, z float64) {
	return f.sx + (f.ex-f.sx)*fraction, f.sz + (f.ez-f.sz)*fraction
}

// buildWall emits the pieces for one wall: solid segments for the spans
// between openings, a panel per opening, and head/sill infill bands. Walls
// with no openings skip the partitioner and come out as one solid box.
// Degenerate walls emit nothing.
func (g *Generator) buildWall(floor *plan.Floor, floorIdx, wallIdx int, baseY float64) []Piece {
	frame, ok := g.frameWall(floor.Walls[wallIdx])
	if !ok {
		return nil
	}

	height := plan.FeetToScene(floor.WallHeight)
	thickness := plan.FeetToScene(plan.WallThicknessFeet)
	label := fmt.Sprintf("floor%d/wall%d", floorIdx, wallIdx)

	doors, windows := openingsOn(floor, wallIdx)
	if len(doors) == 0 && len(windows) == 0 {
		solid := g.placeBox(frame, 0, 1, height, thickness, baseY+height/2)
		return []Piece{{
			Kind: PieceWallSegment, Label: label, Floor: floorIdx,
			Material: materialFor(PieceWallSegment), Solid: solid,
		}}
	}

	wallFeet := plan.ToFeet(floor.Walls[wallIdx].Length(), g.plan.GridSize)
	var pieces []Piece
	for i, seg := range Partition(wallFeet, doors, windows) {
		segLabel := fmt.Sprintf("%s/seg%d", label, i)
		if seg.Kind == SegmentSolid {
			solid := g.placeBox(frame, seg.Start, seg.End, height, thickness, baseY+height/2)
			pieces = append(pieces, Piece{
				Kind: PieceWallSegment, Label: segLabel, Floor: floorIdx,
				Material: materialFor(PieceWallSegment), Solid: solid,
			})
			continue
		}
		pieces = append(pieces, g.buildOpening(frame, seg, segLabel, floorIdx, height, thickness, baseY)...)
	}
	return pieces
}

// buildOpening emits the panel and infill bands for one opening span.
func (g *Generator) buildOpening(frame wallFrame, seg Segment, label string, floorIdx int, wallHeight, thickness, baseY float64) []Piece {
	sill := plan.FeetToScene(seg.SillFeet)
	openH := plan.FeetToScene(seg.HeightFeet)

	panelKind := PieceDoor
	panelDepth := thickness * doorPanelDepthRatio
	if seg.Opening == OpeningWindow {
		panelKind = PieceWindow
		panelDepth = thickness * windowPanelDepthRatio
	}

	var pieces []Piece

	// Sill band below the opening (windows only; doors start at the floor).
	if sill > minInfillScene {
		solid := g.placeBox(frame, seg.Start, seg.End, sill, thickness, baseY+sill/2)
		pieces = append(pieces, Piece{
			Kind: PieceSillInfill, Label: label + "/sill", Floor: floorIdx,
			Material: materialFor(PieceSillInfill), Solid: solid,
		})
	}

	// The panel itself, thinner than the structural wall.
	panel := g.placeBox(frame, seg.Start, seg.End, openH, panelDepth, baseY+sill+openH/2)
	pieces = append(pieces, Piece{
		Kind: panelKind, Label: label + "/" + panelKind.String(), Floor: floorIdx,
		Material: materialFor(panelKind), Solid: panel,
	})

	// Head band between the opening top and the wall top.
	headH := wallHeight - (sill + openH)
	if headH > minInfillScene {
		solid := g.placeBox(frame, seg.Start, seg.End, headH, thickness, baseY+sill+openH+headH/2)
		pieces = append(pieces, Piece{
			Kind: PieceHeadInfill, Label: label + "/head", Floor: floorIdx,
			Material: materialFor(PieceHeadInfill), Solid: solid,
		})
	}

	return pieces
}

// placeBox emits a box spanning the given fractional range of the wall,
// rotated to the wall's heading and centered vertically at centerY.
func (g *Generator) placeBox(frame wallFrame, startFrac, endFrac, height, depth, centerY float64) kernel.Solid {
	segLen := (endFrac - startFrac) * frame.length
	cx, cz := frame.at((startFrac + endFrac) / 2)

	s := g.kernel.Box(segLen, height, depth)
	s = g.kernel.RotateY(s, -frame.headingDeg)
	return g.kernel.Translate(s, cx, centerY, cz)
}

// openingsOn collects the doors and windows that reference the given wall,
// silently skipping dangling wall references (validation reports them).
func openingsOn(floor *plan.Floor, wallIdx int) ([]plan.Door, []plan.Window) {
	var doors []plan.Door
	for _, d := range floor.Doors {
		if d.WallIndex == wallIdx {
			doors = append(doors, d)
		}
	}
	var windows []plan.Window
	for _, w := range floor.Windows {
		if w.WallIndex == wallIdx {
			windows = append(windows, w)
		}
	}
	return doors, windows
}
