package plan

import (
	"fmt"
	"sort"
)

// ValidationSeverity indicates whether a finding blocks generation or is
// merely advisory.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks generation
	SeverityWarning                           // generation proceeds, piece skipped or suspect
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding. Floor is the index
// of the affected floor, or -1 for plan-level findings.
type ValidationError struct {
	Floor    int
	Message  string
	Severity ValidationSeverity
}

func (e ValidationError) Error() string {
	if e.Floor < 0 {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] floor %d: %s", e.Severity, e.Floor, e.Message)
}

// ValidationResult bundles blocking errors and advisory warnings.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// OK reports whether the plan can be generated at all. Warnings describe
// pieces the generator will skip; they never block the rest of the plan.
func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// Validate checks a plan snapshot before generation. Only top-level misuse
// (nil plan, no floors, negative floor configuration) is an error; per-wall
// and per-opening problems are warnings because the generator skips those
// pieces and keeps rendering the rest, so partial plans stay viewable while
// the user is still drawing.
func Validate(p *FloorPlan) ValidationResult {
	var result ValidationResult

	if p == nil {
		result.Errors = append(result.Errors, ValidationError{
			Floor:    -1,
			Message:  "plan is nil",
			Severity: SeverityError,
		})
		return result
	}
	if len(p.Floors) == 0 {
		result.Errors = append(result.Errors, ValidationError{
			Floor:    -1,
			Message:  "plan has no floors",
			Severity: SeverityError,
		})
		return result
	}

	for i := range p.Floors {
		f := &p.Floors[i]
		result.Errors = append(result.Errors, validateFloorConfig(i, f)...)
		result.Warnings = append(result.Warnings, validateWalls(i, f)...)
		result.Warnings = append(result.Warnings, validateOpenings(p, i, f)...)
		result.Warnings = append(result.Warnings, validatePatios(i, f)...)
	}

	return result
}

// validateFloorConfig checks the numeric floor configuration.
func validateFloorConfig(idx int, f *Floor) []ValidationError {
	var errs []ValidationError
	if f.WallHeight <= 0 {
		errs = append(errs, ValidationError{
			Floor:    idx,
			Message:  fmt.Sprintf("wall height is %.2f ft, must be positive", f.WallHeight),
			Severity: SeverityError,
		})
	}
	if f.RoofPitch < 0 {
		errs = append(errs, ValidationError{
			Floor:    idx,
			Message:  fmt.Sprintf("roof pitch is %.2f, must be non-negative", f.RoofPitch),
			Severity: SeverityError,
		})
	}
	if f.RoofOverhang < 0 {
		errs = append(errs, ValidationError{
			Floor:    idx,
			Message:  fmt.Sprintf("roof overhang is %.2f ft, must be non-negative", f.RoofOverhang),
			Severity: SeverityError,
		})
	}
	return errs
}

// validateWalls flags degenerate walls and empty floors.
func validateWalls(idx int, f *Floor) []ValidationError {
	var warnings []ValidationError

	if len(f.Walls) == 0 {
		warnings = append(warnings, ValidationError{
			Floor:    idx,
			Message:  "floor has no walls; no slab or roof will be emitted for it",
			Severity: SeverityWarning,
		})
		return warnings
	}

	for w, wall := range f.Walls {
		if wall.IsDegenerate() {
			warnings = append(warnings, ValidationError{
				Floor:    idx,
				Message:  fmt.Sprintf("wall %d has zero length and will be skipped", w),
				Severity: SeverityWarning,
			})
		}
	}
	return warnings
}

// openingRef is a door or window viewed uniformly for span checks.
type openingRef struct {
	kind      string
	wallIndex int
	position  float64
	width     float64 // feet
}

// validateOpenings flags dangling wall references, openings wider than their
// wall, and overlapping openings on the same wall.
func validateOpenings(p *FloorPlan, idx int, f *Floor) []ValidationError {
	var warnings []ValidationError

	refs := make([]openingRef, 0, len(f.Doors)+len(f.Windows))
	for _, d := range f.Doors {
		refs = append(refs, openingRef{kind: "door", wallIndex: d.WallIndex, position: d.Position, width: d.Width})
	}
	for _, w := range f.Windows {
		refs = append(refs, openingRef{kind: "window", wallIndex: w.WallIndex, position: w.Position, width: w.Width})
	}

	perWall := make(map[int][][2]float64) // wall index -> fractional spans
	for _, r := range refs {
		if r.wallIndex < 0 || r.wallIndex >= len(f.Walls) {
			warnings = append(warnings, ValidationError{
				Floor:    idx,
				Message:  fmt.Sprintf("%s references wall %d which does not exist; opening skipped", r.kind, r.wallIndex),
				Severity: SeverityWarning,
			})
			continue
		}

		wallFeet := ToFeet(f.Walls[r.wallIndex].Length(), p.GridSize)
		if wallFeet <= 0 {
			continue // degenerate wall already reported
		}
		frac := r.width / wallFeet
		if r.width <= 0 || frac >= 1 {
			warnings = append(warnings, ValidationError{
				Floor:    idx,
				Message:  fmt.Sprintf("%s width %.2f ft does not fit wall %d (%.2f ft); opening skipped", r.kind, r.width, r.wallIndex, wallFeet),
				Severity: SeverityWarning,
			})
			continue
		}
		perWall[r.wallIndex] = append(perWall[r.wallIndex], [2]float64{r.position - frac/2, r.position + frac/2})
	}

	// Overlap detection mirrors the partitioner's sort-and-walk: spans are
	// ordered by start and any span beginning before the previous one ends
	// overlaps it. Overlaps are advisory; the generator emits them as-is.
	for wallIdx, spans := range perWall {
		if len(spans) < 2 {
			continue
		}
		sort.Slice(spans, func(a, b int) bool { return spans[a][0] < spans[b][0] })
		for i := 1; i < len(spans); i++ {
			if spans[i][0] < spans[i-1][1] {
				warnings = append(warnings, ValidationError{
					Floor:    idx,
					Message:  fmt.Sprintf("openings on wall %d overlap; resulting geometry will overlap", wallIdx),
					Severity: SeverityWarning,
				})
				break
			}
		}
	}

	return warnings
}

// validatePatios flags patios with non-positive footprints.
func validatePatios(idx int, f *Floor) []ValidationError {
	var warnings []ValidationError
	for i, patio := range f.Patios {
		if patio.Width <= 0 || patio.Depth <= 0 {
			warnings = append(warnings, ValidationError{
				Floor:    idx,
				Message:  fmt.Sprintf("patio %d has a degenerate footprint and will be skipped", i),
				Severity: SeverityWarning,
			})
		}
	}
	return warnings
}
