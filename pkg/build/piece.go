// Package build is the floorplan-to-3D generation engine. It walks an
// immutable plan snapshot floor by floor and emits tagged solid pieces
// (wall segments, openings, slabs, roofs, patio structures) through an
// abstract geometry kernel.
package build

import (
	"fmt"

	"github.com/chazu/housewright/pkg/kernel"
)

// PieceKind classifies a generated solid.
type PieceKind int

const (
	PieceWallSegment PieceKind = iota // solid wall box between openings
	PieceDoor                         // door panel
	PieceWindow                       // glazing panel
	PieceHeadInfill                   // solid band above an opening
	PieceSillInfill                   // solid band below a window
	PieceFloorSlab                    // ground-floor slab
	PieceRoof                         // flat slab, hip pyramid, or gable prism
	PieceGableFill                    // triangular gable-end wall infill
	PieceDeck                         // patio deck slab
	PiecePost                         // patio canopy support post
	PieceCanopy                       // patio canopy roof
)

func (k PieceKind) String() string {
	switch k {
	case PieceWallSegment:
		return "wall"
	case PieceDoor:
		return "door"
	case PieceWindow:
		return "window"
	case PieceHeadInfill:
		return "head-infill"
	case PieceSillInfill:
		return "sill-infill"
	case PieceFloorSlab:
		return "slab"
	case PieceRoof:
		return "roof"
	case PieceGableFill:
		return "gable-fill"
	case PieceDeck:
		return "deck"
	case PiecePost:
		return "post"
	case PieceCanopy:
		return "canopy"
	default:
		return fmt.Sprintf("PieceKind(%d)", int(k))
	}
}

// Material describes how a piece should be rendered. Opacity 1 is opaque.
// DoubleSided matters for roof undersides seen from below.
type Material struct {
	Color       string  `json:"color"`
	Opacity     float64 `json:"opacity"`
	DoubleSided bool    `json:"double_sided"`
}

// Render materials per piece kind.
var (
	MaterialWall   = Material{Color: "#D8CFC0", Opacity: 1}
	MaterialDoor   = Material{Color: "#8B5A2B", Opacity: 1}
	MaterialGlass  = Material{Color: "#9FC8E8", Opacity: 0.45}
	MaterialSlab   = Material{Color: "#B0A89A", Opacity: 1}
	MaterialRoof   = Material{Color: "#7A4A32", Opacity: 1, DoubleSided: true}
	MaterialDeck   = Material{Color: "#A97B4F", Opacity: 1}
	MaterialPost   = Material{Color: "#6E4B2A", Opacity: 1}
	MaterialCanopy = Material{Color: "#7A4A32", Opacity: 1, DoubleSided: true}
)

// materialFor maps piece kinds to their default material.
func materialFor(kind PieceKind) Material {
	switch kind {
	case PieceDoor:
		return MaterialDoor
	case PieceWindow:
		return MaterialGlass
	case PieceFloorSlab:
		return MaterialSlab
	case PieceRoof, PieceGableFill:
		return MaterialRoof
	case PieceDeck:
		return MaterialDeck
	case PiecePost:
		return MaterialPost
	case PieceCanopy:
		return MaterialCanopy
	default:
		return MaterialWall
	}
}

// Piece is one generated solid, tagged with enough metadata to render it
// and to trace it back to its plan element.
type Piece struct {
	Kind     PieceKind
	Label    string
	Floor    int
	Material Material
	Solid    kernel.Solid
}
