package plan

import (
	"math"
	"testing"
)

func TestToFeet(t *testing.T) {
	tests := []struct {
		name     string
		pixels   float64
		gridSize float64
		want     float64
	}{
		{"default grid", 400, 20, 20},
		{"half foot", 10, 20, 0.5},
		{"coarse grid", 400, 40, 10},
		{"zero grid falls back", 400, 0, 20},
		{"negative grid falls back", 400, -5, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToFeet(tt.pixels, tt.gridSize); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("ToFeet(%v, %v) = %v, want %v", tt.pixels, tt.gridSize, got, tt.want)
			}
		})
	}
}

func TestFeetToScene(t *testing.T) {
	if got := FeetToScene(1); got != MetersPerFoot {
		t.Errorf("FeetToScene(1) = %v, want %v", got, MetersPerFoot)
	}
	if got := FeetToScene(10); math.Abs(got-3.048) > 1e-12 {
		t.Errorf("FeetToScene(10) = %v, want 3.048", got)
	}
}

func TestToSceneComposes(t *testing.T) {
	// 400 px at 20 px/ft is 20 ft is 6.096 m.
	if got := ToScene(400, 20); math.Abs(got-6.096) > 1e-12 {
		t.Errorf("ToScene(400, 20) = %v, want 6.096", got)
	}
}

func TestSceneAxisMapping(t *testing.T) {
	p := New()
	pt := Point{X: 200, Y: 100}

	// Plan X maps to scene X, plan Y to scene Z.
	if got := p.SceneX(pt); math.Abs(got-3.048) > 1e-12 {
		t.Errorf("SceneX = %v, want 3.048", got)
	}
	if got := p.SceneZ(pt); math.Abs(got-1.524) > 1e-12 {
		t.Errorf("SceneZ = %v, want 1.524", got)
	}
}

func TestWallLength(t *testing.T) {
	w := Wall{Start: Point{X: 0, Y: 0}, End: Point{X: 300, Y: 400}}
	if got := w.Length(); got != 500 {
		t.Errorf("Length() = %v, want 500", got)
	}
	if w.IsDegenerate() {
		t.Error("non-degenerate wall reported degenerate")
	}

	d := Wall{Start: Point{X: 7, Y: 7}, End: Point{X: 7, Y: 7}}
	if !d.IsDegenerate() {
		t.Error("coincident endpoints should be degenerate")
	}
	if d.Length() != 0 {
		t.Errorf("degenerate length = %v, want 0", d.Length())
	}
}
