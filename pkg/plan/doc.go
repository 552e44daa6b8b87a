// Package plan defines the 2D floor-plan data model consumed by the
// geometry generator: per-floor wall segments, door and window openings,
// patios, and roof parameters, plus unit conversion and validation.
package plan
