// Package layout implements the CSS grid layout algorithm: it places the items
// of the grid containers on their grid, sizes the tracks, and positions and
// aligns the items.
//
// Boxes laid out have `used values` in their PositionX,
// PositionY, Width and Height attributes, amongst others.
// (see http://www.w3.org/TR/CSS21/cascade.html#used-value)
package layout

import (
	"os"
	"path/filepath"

	pr "github.com/benoitkugler/gridlayout/css/properties"
	bo "github.com/benoitkugler/gridlayout/html/boxes"
	"github.com/benoitkugler/gridlayout/html/tree"
	"github.com/benoitkugler/gridlayout/logger"
	"github.com/benoitkugler/gridlayout/utils/testutils/tracer"
)

// if true, dump debug information into a temporary file
const traceMode = false

var traceLogger tracer.Tracer // used only when traceMode is true

func init() {
	if traceMode {
		traceLogger = tracer.NewTracer(filepath.Join(os.TempDir(), "trace_grid.txt"))
	}
}

// Layout lays out the outermost grid containers of the document, in a
// viewport of the given size, stacked vertically as block-level boxes.
func Layout(doc *tree.Document, width pr.Float, height pr.MaybeFloat) []*GridContainer {
	roots := bo.BuildDocument(doc)

	logger.ProgressLogger.Println("Step 4 - Laying out grids")

	out := make([]*GridContainer, 0, len(roots))
	var y pr.Float
	for _, box := range roots {
		box.PositionX, box.PositionY = 0, y
		gc := LayoutGrid(box, width, height)
		y += box.MarginHeight()
		out = append(out, gc)
	}

	logger.ProgressLogger.Println("Step 5 - Layout done")
	return out
}
