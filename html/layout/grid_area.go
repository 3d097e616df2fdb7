package layout

import "fmt"

// maxGridTracks is the number of tracks an axis may have,
// on each side of the explicit grid start line.
// Line numbers are clamped to [-maxGridTracks, maxGridTracks].
const maxGridTracks = 10000

// Axis selects the tracks of a grid : columns are along the
// inline axis, rows along the block axis.
type Axis uint8

const (
	ForColumns Axis = iota
	ForRows
)

// Other returns the orthogonal axis.
func (a Axis) Other() Axis { return 1 - a }

func (a Axis) String() string {
	if a == ForColumns {
		return "columns"
	}
	return "rows"
}

// LineSpan is a range of grid lines [Start, End), or an indefinite
// span, to be resolved by the auto-placement.
//
// Before translation, lines are relative to the start of the explicit grid
// and may be negative. After translation, they are indexes in the
// implicit grid, starting at 0.
type LineSpan struct {
	Start, End int
	definite   bool
}

func IndefiniteSpan() LineSpan { return LineSpan{} }

// DefiniteSpan panics if end <= start.
func DefiniteSpan(start, end int) LineSpan {
	if end <= start {
		panic(fmt.Sprintf("invalid span [%d, %d)", start, end))
	}
	return LineSpan{Start: start, End: end, definite: true}
}

func (s LineSpan) IsIndefinite() bool { return !s.definite }

// IntegerSpan returns the number of tracks covered by the span,
// which must be definite.
func (s LineSpan) IntegerSpan() int { return s.End - s.Start }

// Translate shifts a definite span by `offset` lines.
func (s LineSpan) Translate(offset int) LineSpan {
	if !s.definite {
		return s
	}
	s.Start += offset
	s.End += offset
	return s
}

func (s LineSpan) String() string {
	if !s.definite {
		return "[indefinite]"
	}
	return fmt.Sprintf("[%d, %d)", s.Start, s.End)
}

// GridArea is the rectangle of cells occupied by an item.
type GridArea struct {
	Rows, Columns LineSpan
}

// Span returns the span in the given axis.
func (a GridArea) Span(axis Axis) LineSpan {
	if axis == ForColumns {
		return a.Columns
	}
	return a.Rows
}

func newGridArea(axis Axis, span, other LineSpan) GridArea {
	if axis == ForColumns {
		return GridArea{Columns: span, Rows: other}
	}
	return GridArea{Rows: span, Columns: other}
}

func (a GridArea) String() string {
	return fmt.Sprintf("rows %s columns %s", a.Rows, a.Columns)
}
