package layout

import (
	"fmt"

	pr "github.com/benoitkugler/gridlayout/css/properties"
	"github.com/benoitkugler/gridlayout/logger"
	"github.com/benoitkugler/gridlayout/utils"
)

// Grid item placement, see https://drafts.csswg.org/css-grid/#auto-placement-algo

// itemLines returns the grid-*-start and grid-*-end of an item.
func (gc *GridContainer) itemLines(id ItemID, axis Axis) (start, end pr.GridLine) {
	style := gc.items[id].box.Style
	if axis == ForColumns {
		return style.GetGridColumnStart(), style.GetGridColumnEnd()
	}
	return style.GetGridRowStart(), style.GetGridRowEnd()
}

// autoPlacedSpanSize returns the number of tracks spanned in `axis` by
// an item without a definite position in this axis.
func (gc *GridContainer) autoPlacedSpanSize(id ItemID, axis Axis) int {
	start, end := gc.itemLines(id, axis)
	return spanSizeForAutoPlacedItem(start, end)
}

// explicitGrids returns the explicit grids matching the auto repeat
// tracks of `grid`.
func (gc *GridContainer) explicitGrids(grid *Grid) [2]explicitGrid {
	var out [2]explicitGrid
	for _, axis := range [2]Axis{ForColumns, ForRows} {
		out[axis] = newExplicitGrid(axis, gc.templates[axis], grid.AutoRepeatTracks(axis), gc.areas)
	}
	return out
}

// placeItems computes the auto repeat tracks and, if needed, places
// every in-flow item of the container on `grid`.
// It is a no-op when the grid is up to date.
func (gc *GridContainer) placeItems(grid *Grid, constraints [2]repeatConstraints) {
	autoRepeatColumns := computeAutoRepeatTracksCount(gc.templates[ForColumns], constraints[ForColumns])
	autoRepeatRows := computeAutoRepeatTracksCount(gc.templates[ForRows], constraints[ForRows])
	if autoRepeatColumns != grid.AutoRepeatTracks(ForColumns) || autoRepeatRows != grid.AutoRepeatTracks(ForRows) {
		grid.SetNeedsItemsPlacement(true)
		grid.SetAutoRepeatTracks(autoRepeatRows, autoRepeatColumns)
	}

	if !grid.NeedsItemsPlacement() {
		return
	}

	grid.clear()
	gc.populateExplicitGrid(grid)

	var autoMajorAxisItems, specifiedMajorAxisItems []ItemID
	for _, id := range grid.OrderedItems() {
		area := grid.GridItemArea(id)
		area.Rows = area.Rows.Translate(grid.ExplicitGridStart(ForRows))
		area.Columns = area.Columns.Translate(grid.ExplicitGridStart(ForColumns))

		if area.Rows.IsIndefinite() || area.Columns.IsIndefinite() {
			grid.SetGridItemArea(id, area)
			if area.Span(gc.autoFlow.major).IsIndefinite() {
				autoMajorAxisItems = append(autoMajorAxisItems, id)
			} else {
				specifiedMajorAxisItems = append(specifiedMajorAxisItems, id)
			}
			continue
		}
		grid.Insert(id, area)
	}

	gc.placeSpecifiedMajorAxisItems(grid, specifiedMajorAxisItems)
	gc.placeAutoMajorAxisItems(grid, autoMajorAxisItems)

	for _, axis := range [2]Axis{ForColumns, ForRows} {
		grid.SetAutoRepeatEmptyTracks(axis, computeEmptyTracksForAutoRepeat(grid, axis, gc.templates[axis]))
	}

	grid.SetNeedsItemsPlacement(false)

	if traceMode {
		for _, id := range grid.OrderedItems() {
			traceLogger.Dump(fmt.Sprintf("placeItems %s: %s", gc.items[id].box, grid.GridItemArea(id)))
		}
	}
}

// populateExplicitGrid resolves the definite positions (relative to the
// explicit grid start) and grows the grid so that the explicit grid and
// every definite item fit.
func (gc *GridContainer) populateExplicitGrid(grid *Grid) {
	grid.setOrderedItems(gc.inFlow, func(id ItemID) int { return int(gc.items[id].box.Style.GetOrder()) })

	explicit := gc.explicitGrids(grid)
	var explicitStart, maximumIndex [2]int
	for _, axis := range [2]Axis{ForColumns, ForRows} {
		maximumIndex[axis] = explicit[axis].count
	}

	for _, id := range gc.inFlow {
		var spans [2]LineSpan
		for _, axis := range [2]Axis{ForColumns, ForRows} {
			start, end := gc.itemLines(id, axis)
			span := explicit[axis].resolveSpan(start, end)
			if span.IsIndefinite() {
				size := spanSizeForAutoPlacedItem(start, end)
				if requested := requestedSpanSize(start, end); requested != size {
					logger.WarningLogger.Printf("grid span %d out of range, clamped to %d", requested, size)
				}
				maximumIndex[axis] = max(maximumIndex[axis], size)
			} else {
				explicitStart[axis] = max(explicitStart[axis], -span.Start)
				maximumIndex[axis] = max(maximumIndex[axis], span.End)
			}
			spans[axis] = span
		}
		grid.SetGridItemArea(id, GridArea{Rows: spans[ForRows], Columns: spans[ForColumns]})
	}

	grid.SetExplicitGridStart(explicitStart[ForRows], explicitStart[ForColumns])
	grid.EnsureSize(maximumIndex[ForRows]+explicitStart[ForRows], maximumIndex[ForColumns]+explicitStart[ForColumns])
}

// createEmptyGridAreaAtSpecifiedPositionsOutsideGrid returns an area
// starting after the last track of the axis orthogonal to `specifiedAxis`.
func (gc *GridContainer) createEmptyGridAreaAtSpecifiedPositionsOutsideGrid(grid *Grid, id ItemID,
	specifiedAxis Axis, specifiedPositions LineSpan,
) GridArea {
	crossAxis := specifiedAxis.Other()
	endOfCrossAxis := grid.NumTracks(crossAxis)
	// stay below the ceiling unless the axis is already full
	crossSize := utils.MinInt(gc.autoPlacedSpanSize(id, crossAxis), utils.MaxInt(maxGridTracks-endOfCrossAxis, 1))
	crossPositions := DefiniteSpan(endOfCrossAxis, endOfCrossAxis+crossSize)
	return newGridArea(specifiedAxis, specifiedPositions, crossPositions)
}

// placeSpecifiedMajorAxisItems places the items with a definite position
// in the major axis, scanning their major track from a cursor.
func (gc *GridContainer) placeSpecifiedMajorAxisItems(grid *Grid, items []ItemID) {
	major, minor := gc.autoFlow.major, gc.autoFlow.major.Other()

	// cursors are only used for sparse packing
	minorAxisCursors := make(map[int]int)
	for _, id := range items {
		majorAxisPositions := grid.GridItemArea(id).Span(major)
		minorAxisSpanSize := gc.autoPlacedSpanSize(id, minor)

		cursor := 0
		if !gc.autoFlow.dense {
			cursor = minorAxisCursors[majorAxisPositions.Start]
		}
		iterator := newGridIterator(grid, major, majorAxisPositions.Start, cursor)
		area, ok := iterator.nextEmptyGridArea(majorAxisPositions.IntegerSpan(), minorAxisSpanSize)
		if !ok {
			area = gc.createEmptyGridAreaAtSpecifiedPositionsOutsideGrid(grid, id, major, majorAxisPositions)
		}

		grid.Insert(id, area)

		if !gc.autoFlow.dense {
			minorAxisCursors[majorAxisPositions.Start] = area.Span(minor).Start
		}
	}
}

// placeAutoMajorAxisItems places the remaining items, walking a shared cursor.
func (gc *GridContainer) placeAutoMajorAxisItems(grid *Grid, items []ItemID) {
	var cursor [2]int // indexed by [Axis]
	for _, id := range items {
		gc.placeAutoMajorAxisItem(grid, id, &cursor)

		if gc.autoFlow.dense {
			cursor = [2]int{}
		}
	}
}

func (gc *GridContainer) placeAutoMajorAxisItem(grid *Grid, id ItemID, cursor *[2]int) {
	major, minor := gc.autoFlow.major, gc.autoFlow.major.Other()
	majorAxisSpanSize := gc.autoPlacedSpanSize(id, major)
	majorAxisAutoPlacementCursor, minorAxisAutoPlacementCursor := cursor[major], cursor[minor]

	var (
		area  GridArea
		found bool
	)
	endOfMajorAxis := grid.NumTracks(major)
	minorAxisPositions := grid.GridItemArea(id).Span(minor)
	if !minorAxisPositions.IsIndefinite() {
		// move to the next major track if the item would be placed before the cursor
		if minorAxisPositions.Start < minorAxisAutoPlacementCursor {
			majorAxisAutoPlacementCursor++
		}

		if majorAxisAutoPlacementCursor < endOfMajorAxis {
			iterator := newGridIterator(grid, minor, minorAxisPositions.Start, majorAxisAutoPlacementCursor)
			area, found = iterator.nextEmptyGridArea(minorAxisPositions.IntegerSpan(), majorAxisSpanSize)
		}

		if !found {
			area = gc.createEmptyGridAreaAtSpecifiedPositionsOutsideGrid(grid, id, minor, minorAxisPositions)
		}
	} else {
		minorAxisSpanSize := gc.autoPlacedSpanSize(id, minor)

		for majorAxisIndex := majorAxisAutoPlacementCursor; majorAxisIndex < endOfMajorAxis; majorAxisIndex++ {
			iterator := newGridIterator(grid, major, majorAxisIndex, minorAxisAutoPlacementCursor)
			area, found = iterator.nextEmptyGridArea(majorAxisSpanSize, minorAxisSpanSize)

			if found {
				// the minor axis is never grown by auto placed items
				if area.Span(minor).End <= grid.NumTracks(minor) {
					break
				}
				found = false
			}

			// the cursor only applies to the first major track scanned
			minorAxisAutoPlacementCursor = 0
		}

		if !found {
			area = gc.createEmptyGridAreaAtSpecifiedPositionsOutsideGrid(grid, id, minor, DefiniteSpan(0, minorAxisSpanSize))
		}
	}

	grid.Insert(id, area)
	cursor[ForRows] = area.Rows.Start
	cursor[ForColumns] = area.Columns.Start
}
