package main

import (
	"fmt"
	"io"

	pr "github.com/benoitkugler/gridlayout/css/properties"
	bo "github.com/benoitkugler/gridlayout/html/boxes"
	"github.com/benoitkugler/gridlayout/html/layout"
	"github.com/benoitkugler/gridlayout/utils/testutils/tracer"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type rect struct {
	X      pr.Float `json:"x"`
	Y      pr.Float `json:"y"`
	Width  pr.Float `json:"width"`
	Height pr.Float `json:"height"`
}

func borderBox(box *bo.Box) rect {
	return rect{X: box.BorderBoxX(), Y: box.BorderBoxY(), Width: box.BorderWidth(), Height: box.BorderHeight()}
}

type axisReport struct {
	Lines []pr.Float `json:"lines"`
	Sizes []pr.Float `json:"sizes"`
	Gap   pr.Float   `json:"gap"`
}

type itemReport struct {
	Element   string      `json:"element"`
	Rect      rect        `json:"rect"`
	Rows      *[2]int     `json:"rows,omitempty"` // [start, end) lines, only for in-flow items
	Columns   *[2]int     `json:"columns,omitempty"`
	OutOfFlow bool        `json:"outOfFlow,omitempty"`
	Grid      *gridReport `json:"grid,omitempty"`
}

type gridReport struct {
	Element  string       `json:"element"`
	Rect     rect         `json:"rect"`
	Baseline *pr.Float    `json:"baseline,omitempty"`
	Columns  axisReport   `json:"columns"`
	Rows     axisReport   `json:"rows"`
	Items    []itemReport `json:"items"`
}

func newAxisReport(gc *layout.GridContainer, axis layout.Axis) axisReport {
	return axisReport{Lines: gc.Lines(axis), Sizes: gc.TrackSizes(axis), Gap: gc.Gap(axis)}
}

func newGridReport(gc *layout.GridContainer) *gridReport {
	box := gc.Box()
	out := &gridReport{
		Element: box.String(),
		Rect:    borderBox(box),
		Columns: newAxisReport(gc, layout.ForColumns),
		Rows:    newAxisReport(gc, layout.ForRows),
	}
	if baseline, ok := box.Baseline.(pr.Float); ok {
		out.Baseline = &baseline
	}
	items := gc.Items()
	out.Items = make([]itemReport, len(items))
	for i, item := range items {
		out.Items[i] = itemReport{Element: item.String(), Rect: borderBox(item), OutOfFlow: true}
		if nested := gc.Nested(layout.ItemID(i)); nested != nil {
			out.Items[i].Grid = newGridReport(nested)
		}
	}
	for _, id := range gc.InFlowItems() {
		area := gc.Grid().GridItemArea(id)
		rows, columns := [2]int{area.Rows.Start, area.Rows.End}, [2]int{area.Columns.Start, area.Columns.End}
		out.Items[id].Rows, out.Items[id].Columns, out.Items[id].OutOfFlow = &rows, &columns, false
	}
	return out
}

func writeJSON(out io.Writer, containers []*layout.GridContainer) error {
	reports := make([]*gridReport, len(containers))
	for i, gc := range containers {
		reports[i] = newGridReport(gc)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

// drawASCII renders the grid lines of the containers, and
// their items labeled a, b, c, ... in document order.
func drawASCII(containers []*layout.GridContainer, width, scale pr.Float) string {
	var height pr.Float
	for _, gc := range containers {
		height = max(height, gc.Box().PositionY+gc.Box().MarginHeight())
	}
	dr := tracer.NewDrawer(width, height, scale)
	for _, gc := range containers {
		horizontal, vertical := layout.ForRows, layout.ForColumns
		if gc.WritingMode().Vertical {
			horizontal, vertical = vertical, horizontal
		}
		for _, x := range gc.Lines(vertical) {
			dr.VerticalLine(x)
		}
		for _, y := range gc.Lines(horizontal) {
			dr.HorizontalLine(y)
		}
	}
	label := 0
	for _, gc := range containers {
		for _, item := range gc.Items() {
			r := borderBox(item)
			dr.FillRect(r.X, r.Y, r.Width, r.Height, rune('a'+label%26))
			label++
		}
	}
	return dr.String()
}

func writeTree(out io.Writer, containers []*layout.GridContainer) {
	tr := tracer.NewTracerWriter(out)
	for i, gc := range containers {
		tr.DumpTree(gc.Box(), fmt.Sprintf("grid container %d", i+1))
	}
}
