package tracer

import (
	"math"
	"strings"

	"github.com/benoitkugler/gridlayout/css/properties"
)

type fl = properties.Float

// Drawer is a debugging canvas, rendering boxes and
// grid lines as text, one character per `scale` pixels.
type Drawer struct {
	scale fl
	cells [][]rune // [row][column]
}

// NewDrawer returns a blank canvas covering [0, width] x [0, height].
// `scale` must be positive.
func NewDrawer(width, height, scale fl) *Drawer {
	dr := &Drawer{scale: scale}
	columns, rows := dr.index(width)+1, dr.index(height)+1
	dr.cells = make([][]rune, rows)
	for i := range dr.cells {
		dr.cells[i] = []rune(strings.Repeat(" ", columns))
	}
	return dr
}

func (dr *Drawer) index(v fl) int {
	return int(math.Round(float64(v / dr.scale)))
}

func (dr *Drawer) set(row, column int, r rune) {
	if row < 0 || row >= len(dr.cells) || column < 0 || column >= len(dr.cells[row]) {
		return
	}
	current := dr.cells[row][column]
	if (current == '|' && r == '-') || (current == '-' && r == '|') {
		r = '+'
	}
	dr.cells[row][column] = r
}

// VerticalLine draws a line at abscissa `x`.
func (dr *Drawer) VerticalLine(x fl) {
	column := dr.index(x)
	for row := range dr.cells {
		dr.set(row, column, '|')
	}
}

// HorizontalLine draws a line at ordinate `y`.
func (dr *Drawer) HorizontalLine(y fl) {
	row := dr.index(y)
	if row < 0 || row >= len(dr.cells) {
		return
	}
	for column := range dr.cells[row] {
		dr.set(row, column, '-')
	}
}

// FillRect fills the rectangle with `label`.
// Empty rectangles are drawn as one character.
func (dr *Drawer) FillRect(x, y, width, height fl, label rune) {
	x0, y0 := dr.index(x), dr.index(y)
	x1, y1 := max(x0+1, dr.index(x+width)), max(y0+1, dr.index(y+height))
	for row := y0; row < y1; row++ {
		for column := x0; column < x1; column++ {
			if row >= 0 && row < len(dr.cells) && column >= 0 && column < len(dr.cells[row]) {
				dr.cells[row][column] = label
			}
		}
	}
}

// String returns the canvas, with trailing spaces trimmed.
func (dr *Drawer) String() string {
	var b strings.Builder
	for _, row := range dr.cells {
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
