package properties

import (
	"fmt"
	"math"
	"strings"
)

// ------------- Top levels types, implementing CssProperty ------------

type Float Fl

var Inf = Float(math.Inf(+1))

func Max(x, y Float) Float {
	if x > y {
		return x
	}
	return y
}

func Min(x, y Float) Float {
	if x < y {
		return x
	}
	return y
}

type Int int

type String string

type Strings []string

// Intersects returns true if at least one value in [values]
// is also in the list.
func (ss Strings) Intersects(values ...string) bool {
	for _, v1 := range ss {
		for _, v2 := range values {
			if v1 == v2 {
				return true
			}
		}
	}
	return false
}

func (ss Strings) String() string { return strings.Join(ss, " ") }

// Tag marks special values of composite properties.
type Tag uint8

const (
	_ Tag = iota
	None
	Auto
	Span
	Subgrid
)

// DimOrS is either a keyword or a [Dimension].
type DimOrS struct {
	S string
	Dimension
}

func (ds DimOrS) String() string {
	if ds.S != "" {
		return ds.S
	}
	return ds.Dimension.String()
}

func (v DimOrS) IsNone() bool { return v == DimOrS{} }

// SToV returns the keyword `s`.
func SToV(s string) DimOrS { return DimOrS{S: s} }

// FToV returns a length in pixels.
func FToV(f Fl) DimOrS { return Dimension{Value: Float(f), Unit: Px}.ToValue() }

// PercToD returns a percentage.
func PercToD(f Fl) Dimension { return Dimension{Value: Float(f), Unit: Perc} }

type Unit uint8

const ( // zero field corresponds to null content
	Scalar Unit = iota + 1 // means no unit, but a valid value
	Perc                   // percentage (%)
	Ex
	Em
	Ch
	Rem
	Px
	Pt
	Pc
	In
	Cm
	Mm
	Q
	Fr
)

func (u Unit) String() string {
	switch u {
	case Scalar:
		return ""
	case Perc:
		return "%"
	case Ex:
		return "ex"
	case Em:
		return "em"
	case Ch:
		return "ch"
	case Rem:
		return "rem"
	case Px:
		return "px"
	case Pt:
		return "pt"
	case Pc:
		return "pc"
	case In:
		return "in"
	case Cm:
		return "cm"
	case Mm:
		return "mm"
	case Q:
		return "q"
	case Fr:
		return "fr"
	default:
		return "<invalid unit>"
	}
}

// How many CSS pixels is one <unit>?
// http://www.w3.org/TR/CSS21/syndata.html#length-units
//
// Font relative units use a fixed 16px font size, with
// ex and ch taken as half of it.
var LengthsToPixels = map[Unit]Float{
	Px:  1,
	Pt:  1. / 0.75,
	Pc:  16.,
	In:  96.,
	Cm:  96. / 2.54,
	Mm:  96. / 25.4,
	Q:   96. / 25.4 / 4.,
	Em:  16,
	Rem: 16,
	Ex:  8,
	Ch:  8,
}

// Dimension without unit is interpreted as float
type Dimension struct {
	Value Float
	Unit  Unit
}

func NewDim(v Float, u Unit) Dimension { return Dimension{v, u} }

func (d Dimension) String() string {
	return fmt.Sprintf("<%g %s>", d.Value, d.Unit)
}

func (d Dimension) IsNone() bool { return d == Dimension{} }

func (d Dimension) ToValue() DimOrS { return DimOrS{Dimension: d} }

// ToPixels converts absolute and font relative lengths
// to pixels. Other units are returned unchanged.
func (d Dimension) ToPixels() Dimension {
	if factor, ok := LengthsToPixels[d.Unit]; ok {
		return Dimension{Value: d.Value * factor, Unit: Px}
	}
	if d.Unit == Scalar && d.Value == 0 {
		return ZeroPixels
	}
	return d
}

// GridDims is a compact form for a grid template
// dimension. It is either :
//   - a single value V
//   - minmax(V, V2)
//   - fit-content(V)
type GridDims struct {
	V, v2 DimOrS
	tag   byte // 0, 'm' for minmax()' or 'f' for fit-content()
}

// NewGridDimsValue returns a non tagged value.
func NewGridDimsValue(v DimOrS) GridDims { return GridDims{V: v} }

// NewGridDimsMinmax returns minmax(...)
func NewGridDimsMinmax(v1, v2 DimOrS) GridDims { return GridDims{tag: 'm', V: v1, v2: v2} }

// NewGridDimsFitcontent returns fit-content(...)
func NewGridDimsFitcontent(v Dimension) GridDims { return GridDims{tag: 'f', V: v.ToValue()} }

// SizingFunctions returns the min and max track sizing functions.
// A flexible min sizing function is treated as auto, and fit-content
// has auto and max-content as bounds (the limit is available with [IsFitcontent]).
func (size GridDims) SizingFunctions() [2]DimOrS {
	minSizing, maxSizing := size.V, size.V
	if size.tag == 'm' {
		minSizing, maxSizing = size.V, size.v2
	}
	if size.tag == 'f' {
		minSizing, maxSizing = SToV("auto"), SToV("max-content")
	} else if minSizing.Unit == Fr {
		minSizing = SToV("auto")
	}
	return [2]DimOrS{minSizing, maxSizing}
}

func (size GridDims) IsMinmax() (min, max DimOrS, ok bool) {
	return size.V, size.v2, size.tag == 'm'
}

func (size GridDims) IsFitcontent() (v DimOrS, ok bool) {
	return size.V, size.tag == 'f'
}

func (v GridDims) IsNone() bool {
	return v.tag == 0 && v.V.IsNone() && v.v2.IsNone()
}

func (v GridDims) String() string {
	switch v.tag {
	case 'm':
		return fmt.Sprintf("minmax(%s, %s)", v.V, v.v2)
	case 'f':
		return fmt.Sprintf("fit-content(%s)", v.V)
	default:
		return v.V.String()
	}
}

type GridAuto []GridDims

func (ga GridAuto) Cycle() *GridAutoIter {
	return &GridAutoIter{ga, 0}
}

// Reverse returns a new, reversed slice
func (ga GridAuto) Reverse() GridAuto {
	out := make(GridAuto, len(ga))
	for i, v := range ga {
		out[len(ga)-1-i] = v
	}
	return out
}

type GridAutoIter struct {
	src GridAuto
	pos int
}

func (gai *GridAutoIter) Next() GridDims {
	out := gai.src[gai.pos%len(gai.src)]
	gai.pos++
	return out
}

// See https://developer.mozilla.org/en-US/docs/Web/CSS/grid-row-start
type GridLine struct {
	Ident string
	Val   int
	Tag   Tag // Auto, Span or 0
}

func (gl GridLine) IsCustomIdent() bool { return gl.Val == 0 && gl.Tag == 0 }

// IsSpan returns true for "span" attributes. In this case, the [Val] field is valid.
func (gl GridLine) IsSpan() bool { return gl.Tag == Span }

func (gl GridLine) IsAuto() bool { return gl.Tag == Auto }

func (gl GridLine) String() string {
	var chunks []string
	switch gl.Tag {
	case Auto:
		return "auto"
	case Span:
		chunks = append(chunks, "span")
	}
	if gl.Val != 0 {
		chunks = append(chunks, fmt.Sprint(gl.Val))
	}
	if gl.Ident != "" {
		chunks = append(chunks, gl.Ident)
	}
	return strings.Join(chunks, " ")
}

// An empty list means 'none'.
// Empty strings are used for null cell tokens ('.').
type GridTemplateAreas [][]string

// IsNone returns true for the CSS 'none' keyword
func (gt GridTemplateAreas) IsNone() bool { return len(gt) == 0 }

// Area returns the area named `name`, as 0-based
// [start, end) indices, and false if not found.
func (gt GridTemplateAreas) Area(name string) (rows, columns [2]int, ok bool) {
	for y, row := range gt {
		for x, cell := range row {
			if cell != name {
				continue
			}
			if !ok {
				rows, columns, ok = [2]int{y, y + 1}, [2]int{x, x + 1}, true
				continue
			}
			rows[1] = y + 1
			if x+1 > columns[1] {
				columns[1] = x + 1
			}
		}
	}
	return rows, columns, ok
}

type GridTemplate struct {
	Tag Tag // None, Subgrid or 0
	// Every even value is a [GridNames]
	Names []GridSpec
}

type (
	GridSpec interface {
		isGridSpec()
	}
	GridNames      []string
	GridNameRepeat struct { // only found in subgrid
		Names  [][]string
		Repeat int // RepeatAutoFill, >= 1 otherwise
	}

	GridRepeat struct {
		// Every even value is a [GridNames]
		Names  []GridSpec
		Repeat int // RepeatAutoFill, RepeatAutoFit, >= 1 otherwise
	}
)

func (GridNames) isGridSpec()      {}
func (GridDims) isGridSpec()       {}
func (GridRepeat) isGridSpec()     {}
func (GridNameRepeat) isGridSpec() {}

const (
	RepeatAutoFill = -1
	RepeatAutoFit  = -2
)

// method tags

func (Float) isCssProperty()             {}
func (Int) isCssProperty()               {}
func (String) isCssProperty()            {}
func (Strings) isCssProperty()           {}
func (DimOrS) isCssProperty()            {}
func (GridAuto) isCssProperty()          {}
func (GridLine) isCssProperty()          {}
func (GridTemplateAreas) isCssProperty() {}
func (GridTemplate) isCssProperty()      {}

func (Float) isDeclaredValue()             {}
func (Int) isDeclaredValue()               {}
func (String) isDeclaredValue()            {}
func (Strings) isDeclaredValue()           {}
func (DimOrS) isDeclaredValue()            {}
func (GridAuto) isDeclaredValue()          {}
func (GridLine) isDeclaredValue()          {}
func (GridTemplateAreas) isDeclaredValue() {}
func (GridTemplate) isDeclaredValue()      {}

// MaybeFloat is either a [Float] or [AutoF].
type MaybeFloat interface {
	V() Float
}

func (f Float) V() Float { return f }

type auto struct{}

func (auto) V() Float       { return 0 }
func (auto) String() string { return "auto" }

// AutoF is used for indefinite sizes.
var AutoF = auto{}

// IsAuto returns true for [AutoF].
func IsAuto(v MaybeFloat) bool { return v == AutoF }

// ResoudPercentage resolves a length or percentage against
// `referTo`. The "auto" keyword, and percentages of an indefinite
// size, give [AutoF]. Other keywords are not supported and return nil.
func ResoudPercentage(value DimOrS, referTo MaybeFloat) MaybeFloat {
	switch {
	case value.S == "auto":
		return AutoF
	case value.S != "":
		return nil
	case value.Unit == Perc:
		if referTo == AutoF {
			return AutoF
		}
		return referTo.V() * value.Value / 100
	default:
		return value.ToPixels().Value
	}
}
