package scene

import (
	"testing"

	"github.com/chazu/housewright/pkg/kernel"
	"github.com/chazu/housewright/pkg/kernel/facet"
	"github.com/chazu/housewright/pkg/plan"
)

// roomPlan returns a single-floor rectangular plan with a hip roof.
func roomPlan() *plan.FloorPlan {
	p := plan.New()
	f := plan.NewFloor()
	f.Walls = []plan.Wall{
		{Start: plan.Point{X: 0, Y: 0}, End: plan.Point{X: 400, Y: 0}},
		{Start: plan.Point{X: 400, Y: 0}, End: plan.Point{X: 400, Y: 200}},
		{Start: plan.Point{X: 400, Y: 200}, End: plan.Point{X: 0, Y: 200}},
		{Start: plan.Point{X: 0, Y: 200}, End: plan.Point{X: 0, Y: 0}},
	}
	p.Floors = []plan.Floor{f}
	return p
}

func groundMesh() *kernel.Mesh {
	return &kernel.Mesh{
		Vertices: []float32{-50, 0, -50, 50, 0, -50, 0, 0, 50},
		Normals:  []float32{0, 1, 0, 0, 1, 0, 0, 1, 0},
		Indices:  []uint32{0, 1, 2},
		Label:    "ground",
	}
}

func TestRegeneratePopulatesScene(t *testing.T) {
	sc := New()
	m := NewMutator(sc, facet.New())

	model, err := m.Regenerate(roomPlan())
	if err != nil {
		t.Fatalf("Regenerate failed: %v", err)
	}
	if len(model.Pieces) == 0 {
		t.Fatal("expected generated pieces")
	}
	if sc.GeneratedCount() != len(model.Pieces) {
		t.Errorf("scene has %d generated objects, model has %d pieces",
			sc.GeneratedCount(), len(model.Pieces))
	}

	for _, obj := range sc.Objects() {
		if !obj.Generated {
			continue
		}
		if obj.Token != model.Token {
			t.Errorf("object %s carries token %s, want %s", obj.Name, obj.Token, model.Token)
		}
		if obj.Mesh == nil || obj.Mesh.IsEmpty() {
			t.Errorf("object %s has no mesh", obj.Name)
		}
		if obj.Material.Color == "" {
			t.Errorf("object %s has no material color", obj.Name)
		}
	}
}

func TestRegenerateIsIdempotent(t *testing.T) {
	sc := New()
	m := NewMutator(sc, facet.New())
	p := roomPlan()

	first, err := m.Regenerate(p)
	if err != nil {
		t.Fatalf("first Regenerate failed: %v", err)
	}
	second, err := m.Regenerate(p)
	if err != nil {
		t.Fatalf("second Regenerate failed: %v", err)
	}

	if sc.GeneratedCount() != len(second.Pieces) {
		t.Errorf("scene accumulated objects: %d generated, want %d",
			sc.GeneratedCount(), len(second.Pieces))
	}
	if first.Token == second.Token {
		t.Error("each pass should mint a fresh token")
	}

	// No survivor carries the old token.
	for _, obj := range sc.Objects() {
		if obj.Generated && obj.Token == first.Token {
			t.Errorf("stale object %s survived regeneration", obj.Name)
		}
	}
}

func TestFurnitureSurvivesRegeneration(t *testing.T) {
	sc := New()
	m := NewMutator(sc, facet.New())

	ground := sc.AddFurniture("ground", groundMesh())
	grid := sc.AddFurniture("grid", groundMesh())

	if _, err := m.Regenerate(roomPlan()); err != nil {
		t.Fatalf("Regenerate failed: %v", err)
	}
	m.Clear()

	if ground.Disposed() || grid.Disposed() {
		t.Error("furniture must never be disposed by generated-content churn")
	}

	furniture := 0
	for _, obj := range sc.Objects() {
		if !obj.Generated {
			furniture++
		}
	}
	if furniture != 2 {
		t.Errorf("furniture count = %d, want 2", furniture)
	}
	if sc.GeneratedCount() != 0 {
		t.Errorf("generated count after clear = %d, want 0", sc.GeneratedCount())
	}
}

func TestClearDisposesGenerated(t *testing.T) {
	sc := New()
	m := NewMutator(sc, facet.New())

	if _, err := m.Regenerate(roomPlan()); err != nil {
		t.Fatalf("Regenerate failed: %v", err)
	}

	var generated []*Object
	for _, obj := range sc.Objects() {
		if obj.Generated {
			generated = append(generated, obj)
		}
	}
	if len(generated) == 0 {
		t.Fatal("expected generated objects before clear")
	}

	m.Clear()

	for _, obj := range generated {
		if !obj.Disposed() {
			t.Errorf("object %s not disposed on clear", obj.Name)
		}
		if obj.Mesh != nil && !obj.Mesh.IsEmpty() {
			t.Errorf("object %s mesh not released", obj.Name)
		}
	}
}

func TestRegenerateInvalidPlanLeavesSceneEmpty(t *testing.T) {
	sc := New()
	m := NewMutator(sc, facet.New())

	if _, err := m.Regenerate(roomPlan()); err != nil {
		t.Fatalf("Regenerate failed: %v", err)
	}

	bad := plan.New() // no floors
	if _, err := m.Regenerate(bad); err == nil {
		t.Fatal("expected error for invalid plan")
	}

	// The failed pass cleared the old generation and added nothing; the next
	// good pass recovers.
	if sc.GeneratedCount() != 0 {
		t.Errorf("generated count after failed pass = %d, want 0", sc.GeneratedCount())
	}
	if _, err := m.Regenerate(roomPlan()); err != nil {
		t.Fatalf("recovery Regenerate failed: %v", err)
	}
	if sc.GeneratedCount() == 0 {
		t.Error("scene should be repopulated after recovery")
	}
}

func TestClearOnEmptySceneIsNoop(t *testing.T) {
	sc := New()
	m := NewMutator(sc, facet.New())
	m.Clear()
	if len(sc.Objects()) != 0 {
		t.Errorf("objects = %d, want 0", len(sc.Objects()))
	}
}
