package plan

// MetersPerFoot converts real-world feet into the renderer's scene units.
const MetersPerFoot = 0.3048

// ToFeet converts a plan-space distance (grid pixels) into feet.
// A non-positive grid size falls back to the default.
func ToFeet(pixels, gridSize float64) float64 {
	if gridSize <= 0 {
		gridSize = DefaultGridSize
	}
	return pixels / gridSize
}

// FeetToScene converts feet into scene units (meters).
func FeetToScene(feet float64) float64 {
	return feet * MetersPerFoot
}

// ToScene converts a plan-space distance straight into scene units.
func ToScene(pixels, gridSize float64) float64 {
	return FeetToScene(ToFeet(pixels, gridSize))
}

// SceneX returns the scene-space X coordinate of a plan point.
func (p *FloorPlan) SceneX(pt Point) float64 {
	return ToScene(pt.X, p.GridSize)
}

// SceneZ returns the scene-space Z coordinate of a plan point. Plan-space Y
// maps onto the scene's horizontal Z axis; scene Y is up.
func (p *FloorPlan) SceneZ(pt Point) float64 {
	return ToScene(pt.Y, p.GridSize)
}
