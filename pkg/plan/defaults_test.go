package plan

import (
	"encoding/json"
	"testing"
)

func TestDecodeAppliesFloorDefaults(t *testing.T) {
	data := []byte(`{
  "floors": [
    {"walls": [{"start": {"x": 0, "y": 0}, "end": {"x": 200, "y": 0}}]}
  ]
}`)
	p, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if p.GridSize != DefaultGridSize {
		t.Errorf("grid size = %v, want default %v", p.GridSize, DefaultGridSize)
	}

	f := p.Floors[0]
	if f.WallHeight != DefaultWallHeight {
		t.Errorf("wall height = %v, want %v", f.WallHeight, DefaultWallHeight)
	}
	if !f.HasRoof {
		t.Error("has_roof should default to true")
	}
	if f.RoofStyle != DefaultRoofStyle {
		t.Errorf("roof style = %v, want %v", f.RoofStyle, DefaultRoofStyle)
	}
	if f.RoofPitch != DefaultRoofPitch {
		t.Errorf("roof pitch = %v, want %v", f.RoofPitch, DefaultRoofPitch)
	}
	if f.RoofOverhang != DefaultRoofOverhang {
		t.Errorf("roof overhang = %v, want %v", f.RoofOverhang, DefaultRoofOverhang)
	}
	if len(f.Walls) != 1 {
		t.Errorf("walls = %d, want 1", len(f.Walls))
	}
}

func TestDecodeExplicitZeroNotDefaulted(t *testing.T) {
	// Explicit values, including falsy ones, must survive decoding.
	data := []byte(`{
  "grid_size": 40,
  "floors": [
    {
      "wall_height": 9,
      "has_roof": false,
      "roof_style": "gable",
      "roof_pitch": 0,
      "roof_overhang": 0,
      "walls": []
    }
  ]
}`)
	p, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if p.GridSize != 40 {
		t.Errorf("grid size = %v, want 40", p.GridSize)
	}
	f := p.Floors[0]
	if f.WallHeight != 9 {
		t.Errorf("wall height = %v, want 9", f.WallHeight)
	}
	if f.HasRoof {
		t.Error("explicit has_roof=false was overwritten")
	}
	if f.RoofStyle != RoofGable {
		t.Errorf("roof style = %v, want gable", f.RoofStyle)
	}
	if f.RoofPitch != 0 {
		t.Errorf("explicit zero pitch was overwritten: %v", f.RoofPitch)
	}
	if f.RoofOverhang != 0 {
		t.Errorf("explicit zero overhang was overwritten: %v", f.RoofOverhang)
	}
}

func TestDecodeMalformed(t *testing.T) {
	if _, err := Decode([]byte(`{"floors": [`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestRoofStyleJSONRoundTrip(t *testing.T) {
	for _, style := range []RoofStyle{RoofFlat, RoofHip, RoofGable} {
		data, err := json.Marshal(style)
		if err != nil {
			t.Fatalf("Marshal(%v) failed: %v", style, err)
		}
		var got RoofStyle
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", data, err)
		}
		if got != style {
			t.Errorf("round trip %v -> %s -> %v", style, data, got)
		}
	}
}

func TestRoofStyleRejectsUnknown(t *testing.T) {
	var s RoofStyle
	if err := json.Unmarshal([]byte(`"mansard"`), &s); err == nil {
		t.Error("expected error for unknown roof style")
	}
	if _, err := ParseRoofStyle("dome"); err == nil {
		t.Error("expected error for unknown roof style name")
	}
}

func TestNewFloorDefaults(t *testing.T) {
	f := NewFloor()
	if f.WallHeight != DefaultWallHeight || !f.HasRoof || f.RoofStyle != DefaultRoofStyle {
		t.Errorf("NewFloor() = %+v, want defaults", f)
	}
}
