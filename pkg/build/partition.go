package build

import (
	"sort"

	"github.com/chazu/housewright/pkg/plan"
)

// SegmentKind distinguishes solid wall spans from opening spans.
type SegmentKind int

const (
	SegmentSolid SegmentKind = iota
	SegmentOpening
)

// OpeningKind distinguishes door and window openings.
type OpeningKind int

const (
	OpeningDoor OpeningKind = iota
	OpeningWindow
)

// Segment is one span along a wall, in fractions of the wall length.
// For opening segments, SillFeet and HeightFeet give the opening's vertical
// extent above the floor.
type Segment struct {
	Kind       SegmentKind
	Start      float64
	End        float64
	Opening    OpeningKind // valid when Kind == SegmentOpening
	SillFeet   float64
	HeightFeet float64
}

// Width returns the fractional width of the segment.
func (s Segment) Width() float64 {
	return s.End - s.Start
}

// span is one opening viewed uniformly during partitioning.
type span struct {
	position   float64
	start, end float64
	kind       OpeningKind
	sill       float64
	height     float64
}

// Partition computes the ordered solid/opening spans along a wall of the
// given real-world length (feet) for the doors and windows placed on it.
// Openings that cannot fit the wall (non-positive width, or width at least
// the wall length) are dropped, matching the generator's skip-don't-abort
// policy for degenerate geometry.
//
// Overlapping openings are not merged or rejected: each is emitted as
// given, and the running fraction simply advances past the later one, so
// overlapping input yields overlapping geometry. Validation reports this
// case; the partitioner trusts its input.
func Partition(wallFeet float64, doors []plan.Door, windows []plan.Window) []Segment {
	spans := collectSpans(wallFeet, doors, windows)
	if len(spans) == 0 {
		return []Segment{{Kind: SegmentSolid, Start: 0, End: 1}}
	}

	// Stable sort by center position so equal-position openings keep their
	// door-before-window input order.
	sort.SliceStable(spans, func(a, b int) bool {
		return spans[a].position < spans[b].position
	})

	segments := make([]Segment, 0, len(spans)*2+1)
	last := 0.0
	for _, o := range spans {
		if o.start > last {
			segments = append(segments, Segment{Kind: SegmentSolid, Start: last, End: o.start})
		}
		segments = append(segments, Segment{
			Kind:       SegmentOpening,
			Start:      o.start,
			End:        o.end,
			Opening:    o.kind,
			SillFeet:   o.sill,
			HeightFeet: o.height,
		})
		last = o.end
	}
	if last < 1 {
		segments = append(segments, Segment{Kind: SegmentSolid, Start: last, End: 1})
	}
	return segments
}

// collectSpans converts doors and windows into fractional spans, dropping
// openings that cannot fit and clamping spans to the wall's extent.
func collectSpans(wallFeet float64, doors []plan.Door, windows []plan.Window) []span {
	if wallFeet <= 0 {
		return nil
	}
	spans := make([]span, 0, len(doors)+len(windows))

	add := func(position, widthFeet float64, kind OpeningKind, sill, height float64) {
		frac := widthFeet / wallFeet
		if widthFeet <= 0 || frac >= 1 {
			return
		}
		s := span{
			position: position,
			start:    clamp01(position - frac/2),
			end:      clamp01(position + frac/2),
			kind:     kind,
			sill:     sill,
			height:   height,
		}
		if s.end <= s.start {
			return
		}
		spans = append(spans, s)
	}

	for _, d := range doors {
		add(d.Position, d.Width, OpeningDoor, 0, plan.DoorHeightFeet)
	}
	for _, w := range windows {
		add(w.Position, w.Width, OpeningWindow, plan.WindowSillFeet, plan.WindowHeightFeet)
	}
	return spans
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
