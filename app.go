package main

import (
	"context"
	"log"

	"github.com/chazu/housewright/pkg/build"
	"github.com/chazu/housewright/pkg/engine"
	"github.com/chazu/housewright/pkg/kernel/facet"
	"github.com/chazu/housewright/pkg/plan"
	"github.com/chazu/housewright/pkg/scene"
)

// App is the Wails backend. It exposes methods to the frontend via bindings.
type App struct {
	ctx     context.Context
	engine  *engine.Engine
	scene   *scene.Scene
	mutator *scene.Mutator
}

// MeshData is the JSON-serializable mesh format sent to the frontend.
type MeshData struct {
	Vertices    []float32 `json:"vertices"`
	Normals     []float32 `json:"normals"`
	Indices     []uint32  `json:"indices"`
	Label       string    `json:"label"`
	Color       string    `json:"color"`
	Opacity     float64   `json:"opacity"`
	DoubleSided bool      `json:"doubleSided"`
}

// EvalErrorData is a JSON-serializable eval or validation finding for the
// frontend.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Floor   int    `json:"floor"`
	Message string `json:"message"`
}

// EvalResult is the full result returned to the frontend. Vertices and
// Triangles are totals across all generated meshes.
type EvalResult struct {
	Meshes    []MeshData      `json:"meshes"`
	Stats     build.Stats     `json:"stats"`
	Vertices  int             `json:"vertices"`
	Triangles int             `json:"triangles"`
	Errors    []EvalErrorData `json:"errors"`
	Warnings  []EvalErrorData `json:"warnings"`
}

// NewApp creates a new App with an engine, the exact facet kernel, and an
// empty scene.
func NewApp() *App {
	sc := scene.New()
	return &App{
		engine:  engine.NewEngine(),
		scene:   sc,
		mutator: scene.NewMutator(sc, facet.New()),
	}
}

// startup is called by Wails on app startup. The context is saved
// so we can call Wails runtime methods later if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// Evaluate takes plan script source, rebuilds the scene, and returns mesh
// data + stats + findings. This is the primary binding called by the
// frontend editor.
func (a *App) Evaluate(source string) EvalResult {
	result := emptyResult()

	p, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Floor: -1, Message: err.Error()})
		return result
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line: e.Line, Col: e.Col, Floor: -1, Message: e.Message,
			})
		}
		return result
	}

	return a.regenerate(p)
}

// EvaluateJSON rebuilds the scene from the editor's JSON plan form instead
// of the script form.
func (a *App) EvaluateJSON(data string) EvalResult {
	result := emptyResult()

	p, err := plan.Decode([]byte(data))
	if err != nil {
		result.Errors = append(result.Errors, EvalErrorData{Floor: -1, Message: err.Error()})
		return result
	}

	return a.regenerate(p)
}

// regenerate runs a full scene rebuild from a decoded plan and converts the
// outcome to the frontend format.
func (a *App) regenerate(p *plan.FloorPlan) EvalResult {
	result := emptyResult()

	// An empty plan is what an empty editor produces; show an empty scene
	// rather than a validation error.
	if p == nil || len(p.Floors) == 0 {
		a.mutator.Clear()
		return result
	}

	model, err := a.mutator.Regenerate(p)
	if err != nil {
		log.Printf("Regenerate error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Floor: -1, Message: err.Error()})
		return result
	}

	result.Stats = model.Stats
	for _, w := range model.Report.Warnings {
		result.Warnings = append(result.Warnings, EvalErrorData{Floor: w.Floor, Message: w.Message})
	}

	for _, obj := range a.scene.Objects() {
		if !obj.Generated || obj.Mesh == nil {
			continue
		}
		result.Vertices += obj.Mesh.VertexCount()
		result.Triangles += obj.Mesh.TriangleCount()
		result.Meshes = append(result.Meshes, MeshData{
			Vertices:    obj.Mesh.Vertices,
			Normals:     obj.Mesh.Normals,
			Indices:     obj.Mesh.Indices,
			Label:       obj.Mesh.Label,
			Color:       obj.Material.Color,
			Opacity:     obj.Material.Opacity,
			DoubleSided: obj.Material.DoubleSided,
		})
	}
	return result
}

// Clear removes the generated building from the scene.
func (a *App) Clear() {
	a.mutator.Clear()
}

func emptyResult() EvalResult {
	return EvalResult{
		Meshes:   []MeshData{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}
}
