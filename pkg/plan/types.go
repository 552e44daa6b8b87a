package plan

import (
	"encoding/json"
	"fmt"
	"math"
)

// RoofStyle enumerates the supported roof families.
type RoofStyle int

const (
	RoofFlat RoofStyle = iota // thin horizontal slab
	RoofHip                   // four-sided pyramid
	RoofGable                 // two slopes meeting at a ridge
)

func (s RoofStyle) String() string {
	switch s {
	case RoofFlat:
		return "flat"
	case RoofHip:
		return "hip"
	case RoofGable:
		return "gable"
	default:
		return fmt.Sprintf("RoofStyle(%d)", int(s))
	}
}

// ParseRoofStyle converts the editor's string form into a RoofStyle.
func ParseRoofStyle(name string) (RoofStyle, error) {
	switch name {
	case "flat":
		return RoofFlat, nil
	case "hip":
		return RoofHip, nil
	case "gable":
		return RoofGable, nil
	}
	return 0, fmt.Errorf("invalid roof style %q, expected flat, hip, or gable", name)
}

// MarshalJSON encodes the style as its editor-facing string form.
func (s RoofStyle) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes the editor-facing string form.
func (s *RoofStyle) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	style, err := ParseRoofStyle(name)
	if err != nil {
		return err
	}
	*s = style
	return nil
}

// Point is a 2D location in plan space (grid pixels, as authored in the
// editor). X maps to scene X, Y maps to scene Z.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Wall is a straight segment in plan space. Walls are referenced by their
// index in the owning floor's wall list.
type Wall struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// Length returns the wall length in plan-space pixels.
func (w Wall) Length() float64 {
	return math.Hypot(w.End.X-w.Start.X, w.End.Y-w.Start.Y)
}

// IsDegenerate reports whether the wall has coincident endpoints.
func (w Wall) IsDegenerate() bool {
	return w.Start == w.End
}

// Door is an opening in a wall. Position is the fractional distance of the
// door center along the wall; Width is in feet.
type Door struct {
	WallIndex int     `json:"wall_index"`
	Position  float64 `json:"position"`
	Width     float64 `json:"width"`
}

// Window is an opening in a wall, same shape as Door. Sill height and window
// height are engine constants (WindowSillFeet, WindowHeightFeet), not stored
// per instance.
type Window struct {
	WallIndex int     `json:"wall_index"`
	Position  float64 `json:"position"`
	Width     float64 `json:"width"`
}

// Patio is a rectangular deck footprint in plan space, optionally covered by
// a post-and-canopy roof.
type Patio struct {
	Position   Point     `json:"position"` // minimum corner in plan space
	Width      float64   `json:"width"`    // plan-space pixels along X
	Depth      float64   `json:"depth"`    // plan-space pixels along Y
	HasRoof    bool      `json:"has_roof"`
	RoofStyle  RoofStyle `json:"roof_style"`
	RoofHeight float64   `json:"roof_height"` // feet above the deck
}

// Floor is one story of the plan: its walls, openings, patios, and roof
// parameters. Doors and windows reference walls by index into Walls.
type Floor struct {
	WallHeight   float64   `json:"wall_height"`   // feet
	HasRoof      bool      `json:"has_roof"`
	RoofStyle    RoofStyle `json:"roof_style"`
	RoofPitch    float64   `json:"roof_pitch"`    // rise per 12 units of run
	RoofOverhang float64   `json:"roof_overhang"` // feet
	Walls        []Wall    `json:"walls"`
	Doors        []Door    `json:"doors,omitempty"`
	Windows      []Window  `json:"windows,omitempty"`
	Patios       []Patio   `json:"patios,omitempty"`
}

// FloorPlan is the immutable input snapshot for one generation pass.
// The generator only reads it; ownership stays with the editor.
type FloorPlan struct {
	GridSize float64 `json:"grid_size"` // pixels per foot
	Floors   []Floor `json:"floors"`
}

// New returns an empty plan with the default grid size.
func New() *FloorPlan {
	return &FloorPlan{GridSize: DefaultGridSize}
}

// WallCount is the total wall count across all floors.
func (p *FloorPlan) WallCount() int {
	n := 0
	for _, f := range p.Floors {
		n += len(f.Walls)
	}
	return n
}

// DoorCount is the total door count across all floors.
func (p *FloorPlan) DoorCount() int {
	n := 0
	for _, f := range p.Floors {
		n += len(f.Doors)
	}
	return n
}

// WindowCount is the total window count across all floors.
func (p *FloorPlan) WindowCount() int {
	n := 0
	for _, f := range p.Floors {
		n += len(f.Windows)
	}
	return n
}
