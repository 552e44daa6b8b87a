package plan

import "encoding/json"

// Per-floor defaults and engine-wide geometry constants. Door and window
// dimensions are fixed engine constants rather than per-instance fields;
// keeping them named in one place makes a future parametrization a one-line
// change.
const (
	DefaultGridSize     = 20.0 // pixels per foot
	DefaultWallHeight   = 8.0  // feet
	DefaultRoofPitch    = 6.0  // rise per 12 units of run
	DefaultRoofOverhang = 1.0  // feet

	WallThicknessFeet = 0.33 // 4 inch structural wall
	DoorHeightFeet    = 7.0
	WindowHeightFeet  = 3.0
	WindowSillFeet    = 3.0
)

// DefaultRoofStyle is applied to floors that omit a roof style.
const DefaultRoofStyle = RoofHip

// floorJSON mirrors Floor with pointer fields so that omitted keys can be
// distinguished from explicit zero values when applying defaults.
type floorJSON struct {
	WallHeight   *float64   `json:"wall_height"`
	HasRoof      *bool      `json:"has_roof"`
	RoofStyle    *RoofStyle `json:"roof_style"`
	RoofPitch    *float64   `json:"roof_pitch"`
	RoofOverhang *float64   `json:"roof_overhang"`
	Walls        []Wall     `json:"walls"`
	Doors        []Door     `json:"doors"`
	Windows      []Window   `json:"windows"`
	Patios       []Patio    `json:"patios"`
}

// UnmarshalJSON decodes a floor, filling omitted configuration keys with
// their documented defaults (wall height 8 ft, roof on, hip style, pitch 6,
// overhang 1 ft).
func (f *Floor) UnmarshalJSON(data []byte) error {
	var raw floorJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*f = Floor{
		WallHeight:   DefaultWallHeight,
		HasRoof:      true,
		RoofStyle:    DefaultRoofStyle,
		RoofPitch:    DefaultRoofPitch,
		RoofOverhang: DefaultRoofOverhang,
		Walls:        raw.Walls,
		Doors:        raw.Doors,
		Windows:      raw.Windows,
		Patios:       raw.Patios,
	}
	if raw.WallHeight != nil {
		f.WallHeight = *raw.WallHeight
	}
	if raw.HasRoof != nil {
		f.HasRoof = *raw.HasRoof
	}
	if raw.RoofStyle != nil {
		f.RoofStyle = *raw.RoofStyle
	}
	if raw.RoofPitch != nil {
		f.RoofPitch = *raw.RoofPitch
	}
	if raw.RoofOverhang != nil {
		f.RoofOverhang = *raw.RoofOverhang
	}
	return nil
}

// Decode parses a full plan from the editor's JSON form, applying defaults
// for omitted keys.
func Decode(data []byte) (*FloorPlan, error) {
	p := New()
	if err := json.Unmarshal(data, p); err != nil {
		return nil, err
	}
	if p.GridSize <= 0 {
		p.GridSize = DefaultGridSize
	}
	return p, nil
}

// NewFloor returns a floor with all configuration at its defaults.
func NewFloor() Floor {
	return Floor{
		WallHeight:   DefaultWallHeight,
		HasRoof:      true,
		RoofStyle:    DefaultRoofStyle,
		RoofPitch:    DefaultRoofPitch,
		RoofOverhang: DefaultRoofOverhang,
	}
}
