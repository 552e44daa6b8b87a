package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/housewright/pkg/plan"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms Housewright plan source before passing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: grid-size -> grid_size
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpWall wraps a plan.Wall so it can be returned from `wall` and consumed
// by `floor`.
type sexpWall struct {
	wall plan.Wall
}

func (w *sexpWall) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(wall %.0f %.0f %.0f %.0f)",
		w.wall.Start.X, w.wall.Start.Y, w.wall.End.X, w.wall.End.Y)
}
func (w *sexpWall) Type() *zygo.RegisteredType { return nil }

// sexpDoor wraps a plan.Door.
type sexpDoor struct {
	door plan.Door
}

func (d *sexpDoor) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(door :wall %d :at %.2f)", d.door.WallIndex, d.door.Position)
}
func (d *sexpDoor) Type() *zygo.RegisteredType { return nil }

// sexpWindow wraps a plan.Window.
type sexpWindow struct {
	window plan.Window
}

func (w *sexpWindow) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(window :wall %d :at %.2f)", w.window.WallIndex, w.window.Position)
}
func (w *sexpWindow) Type() *zygo.RegisteredType { return nil }

// sexpPatio wraps a plan.Patio.
type sexpPatio struct {
	patio plan.Patio
}

func (p *sexpPatio) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(patio %.0fx%.0f)", p.patio.Width, p.patio.Depth)
}
func (p *sexpPatio) Type() *zygo.RegisteredType { return nil }

// sexpFloorRef refers to a completed floor by its index in the plan.
type sexpFloorRef struct {
	index int
}

func (f *sexpFloorRef) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(floorref %d)", f.index)
}
func (f *sexpFloorRef) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value, treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toInt extracts an int from a Sexp.
func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_hip) and plain strings ("hip").
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], nil
	}
	return str.S, nil
}

// toRoofStyle converts a keyword or string to a plan.RoofStyle. The name
// "none" is valid and reported through the second return.
func toRoofStyle(s zygo.Sexp) (plan.RoofStyle, bool, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, false, fmt.Errorf("expected roof keyword (:flat, :hip, :gable, :none): %w", err)
	}
	if name == "none" {
		return 0, false, nil
	}
	style, err := plan.ParseRoofStyle(name)
	if err != nil {
		return 0, false, err
	}
	return style, true, nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// planBuilder accumulates the plan as builtins run. Builtins close over one
// builder per evaluation, so evaluations never share state.
type planBuilder struct {
	plan *plan.FloorPlan
}

// registerBuiltins installs all Housewright plan builtins into a zygomys
// environment. The builtins populate the builder's plan during evaluation.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, b *planBuilder) {

	// -----------------------------------------------------------------------
	// (grid-size 20)
	//
	// Note: registered as "grid_size" because zygomys does not support
	// hyphens in identifiers. The preprocessor converts grid-size to
	// grid_size in the source.
	// -----------------------------------------------------------------------
	env.AddFunction("grid_size", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("grid-size requires exactly 1 argument, got %d", len(args))
		}
		g, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("grid-size: %w", err)
		}
		if g <= 0 {
			return zygo.SexpNull, fmt.Errorf("grid-size must be positive, got %g", g)
		}
		b.plan.GridSize = g
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (wall x1 y1 x2 y2)
	// -----------------------------------------------------------------------
	env.AddFunction("wall", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 4 {
			return zygo.SexpNull, fmt.Errorf("wall requires x1 y1 x2 y2, got %d arguments", len(args))
		}
		coords := [4]float64{}
		for i, a := range args {
			f, err := toFloat64(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("wall: argument %d: %w", i+1, err)
			}
			coords[i] = f
		}
		return &sexpWall{wall: plan.Wall{
			Start: plan.Point{X: coords[0], Y: coords[1]},
			End:   plan.Point{X: coords[2], Y: coords[3]},
		}}, nil
	})

	// -----------------------------------------------------------------------
	// (door :wall 0 :at 0.5 :width 3)
	// -----------------------------------------------------------------------
	env.AddFunction("door", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		d, err := openingArgs("door", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpDoor{door: d}, nil
	})

	// -----------------------------------------------------------------------
	// (window :wall 1 :at 0.3 :width 4)
	// -----------------------------------------------------------------------
	env.AddFunction("window", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		d, err := openingArgs("window", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpWindow{window: plan.Window(d)}, nil
	})

	// -----------------------------------------------------------------------
	// (patio :x 420 :y 0 :width 100 :depth 80 :roof :flat :height 8)
	//
	// :roof is optional; omitting it (or :roof :none) gives an uncovered
	// deck. :height is the canopy elevation above the deck, in feet.
	// -----------------------------------------------------------------------
	env.AddFunction("patio", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		p := plan.Patio{RoofHeight: plan.DefaultWallHeight}

		for kw, dst := range map[string]*float64{
			"x": &p.Position.X, "y": &p.Position.Y,
			"width": &p.Width, "depth": &p.Depth,
			"height": &p.RoofHeight,
		} {
			if v, ok := pa.kw[kw]; ok {
				f, err := toFloat64(v)
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("patio: %s: %w", kw, err)
				}
				*dst = f
			}
		}
		if v, ok := pa.kw["roof"]; ok {
			style, has, err := toRoofStyle(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("patio: roof: %w", err)
			}
			p.HasRoof = has
			p.RoofStyle = style
		}
		return &sexpPatio{patio: p}, nil
	})

	// -----------------------------------------------------------------------
	// (floor :wall-height 8 :roof :gable :pitch 6 :overhang 1
	//   (wall 0 0 400 0) ... (door ...) (window ...) (patio ...))
	//
	// Appends a completed floor to the plan. Floors stack in the order
	// they are declared, ground floor first.
	// -----------------------------------------------------------------------
	env.AddFunction("floor", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		f := plan.NewFloor()

		if v, ok := pa.kw["wall-height"]; ok {
			h, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("floor: wall-height: %w", err)
			}
			f.WallHeight = h
		}
		if v, ok := pa.kw["roof"]; ok {
			style, has, err := toRoofStyle(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("floor: roof: %w", err)
			}
			f.HasRoof = has
			if has {
				f.RoofStyle = style
			}
		}
		if v, ok := pa.kw["pitch"]; ok {
			p, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("floor: pitch: %w", err)
			}
			f.RoofPitch = p
		}
		if v, ok := pa.kw["overhang"]; ok {
			o, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("floor: overhang: %w", err)
			}
			f.RoofOverhang = o
		}

		for i, child := range pa.positional {
			switch c := child.(type) {
			case *sexpWall:
				f.Walls = append(f.Walls, c.wall)
			case *sexpDoor:
				f.Doors = append(f.Doors, c.door)
			case *sexpWindow:
				f.Windows = append(f.Windows, c.window)
			case *sexpPatio:
				f.Patios = append(f.Patios, c.patio)
			default:
				return zygo.SexpNull, fmt.Errorf("floor: child %d: expected wall, door, window, or patio, got %T (%s)",
					i+1, child, child.SexpString(nil))
			}
		}

		b.plan.Floors = append(b.plan.Floors, f)
		return &sexpFloorRef{index: len(b.plan.Floors) - 1}, nil
	})
}

// openingArgs parses the shared :wall/:at/:width keyword form of door and
// window.
func openingArgs(fn string, args []zygo.Sexp) (plan.Door, error) {
	pa := parseArgs(args)
	var d plan.Door

	v, ok := pa.kw["wall"]
	if !ok {
		return d, fmt.Errorf("%s: missing :wall", fn)
	}
	idx, err := toInt(v)
	if err != nil {
		return d, fmt.Errorf("%s: wall: %w", fn, err)
	}
	d.WallIndex = idx

	v, ok = pa.kw["at"]
	if !ok {
		return d, fmt.Errorf("%s: missing :at", fn)
	}
	at, err := toFloat64(v)
	if err != nil {
		return d, fmt.Errorf("%s: at: %w", fn, err)
	}
	d.Position = at

	v, ok = pa.kw["width"]
	if !ok {
		return d, fmt.Errorf("%s: missing :width", fn)
	}
	w, err := toFloat64(v)
	if err != nil {
		return d, fmt.Errorf("%s: width: %w", fn, err)
	}
	d.Width = w

	return d, nil
}
