package layout

import (
	"sort"

	"github.com/benoitkugler/gridlayout/utils"
)

// ItemID identifies a grid item in the arena of its container.
type ItemID int

type cell struct{ row, column int }

// Grid stores the result of the placement : the occupied cells,
// the size of the implicit grid and the auto repeat tracks.
//
// Every access to the cells goes through its methods.
type Grid struct {
	cells map[cell][]ItemID
	areas map[ItemID]GridArea

	order []ItemID // in-flow items, in order-modified document order

	numTracks        [2]int
	explicitStart    [2]int
	autoRepeatTracks [2]int
	emptyAutoRepeat  [2]utils.IntSet

	needsItemsPlacement bool
}

// NewGrid returns an empty grid, needing placement.
func NewGrid() *Grid {
	return &Grid{
		cells:               make(map[cell][]ItemID),
		areas:               make(map[ItemID]GridArea),
		needsItemsPlacement: true,
	}
}

// clear removes the items, keeping the auto repeat tracks.
func (g *Grid) clear() {
	g.cells = make(map[cell][]ItemID)
	g.areas = make(map[ItemID]GridArea)
	g.order = nil
	g.numTracks = [2]int{}
	g.explicitStart = [2]int{}
	g.emptyAutoRepeat = [2]utils.IntSet{}
}

func (g *Grid) NumTracks(axis Axis) int { return g.numTracks[axis] }

// EnsureSize grows the grid so that it has at least `rows` and `columns` tracks.
func (g *Grid) EnsureSize(rows, columns int) {
	g.numTracks[ForRows] = utils.MaxInt(g.numTracks[ForRows], rows)
	g.numTracks[ForColumns] = utils.MaxInt(g.numTracks[ForColumns], columns)
}

// Insert records `area` for `id` and fills the cells it covers.
// The grid grows if needed. `area` must be translated and definite.
func (g *Grid) Insert(id ItemID, area GridArea) {
	g.EnsureSize(area.Rows.End, area.Columns.End)
	for row := area.Rows.Start; row < area.Rows.End; row++ {
		for column := area.Columns.Start; column < area.Columns.End; column++ {
			c := cell{row, column}
			g.cells[c] = append(g.cells[c], id)
		}
	}
	g.areas[id] = area
}

// Cell returns the items covering the cell, in insertion order.
func (g *Grid) Cell(row, column int) []ItemID { return g.cells[cell{row, column}] }

func (g *Grid) isCellEmpty(row, column int) bool { return len(g.cells[cell{row, column}]) == 0 }

// GridItemArea returns the area of `id`, which may be indefinite
// in one or both axis before the auto-placement.
func (g *Grid) GridItemArea(id ItemID) GridArea { return g.areas[id] }

// SetGridItemArea records the area without filling the cells.
func (g *Grid) SetGridItemArea(id ItemID, area GridArea) { g.areas[id] = area }

// ExplicitGridStart returns the index of the first line of the
// explicit grid in the implicit grid.
func (g *Grid) ExplicitGridStart(axis Axis) int { return g.explicitStart[axis] }

func (g *Grid) SetExplicitGridStart(rows, columns int) {
	g.explicitStart[ForRows] = rows
	g.explicitStart[ForColumns] = columns
}

// AutoRepeatTracks returns the number of tracks generated by
// the repeat(auto-fill) or repeat(auto-fit) notation.
func (g *Grid) AutoRepeatTracks(axis Axis) int { return g.autoRepeatTracks[axis] }

func (g *Grid) SetAutoRepeatTracks(rows, columns int) {
	g.autoRepeatTracks[ForRows] = rows
	g.autoRepeatTracks[ForColumns] = columns
}

// SetAutoRepeatEmptyTracks records the collapsed auto-fit tracks of `axis`,
// as indexes in the implicit grid.
func (g *Grid) SetAutoRepeatEmptyTracks(axis Axis, tracks utils.IntSet) {
	g.emptyAutoRepeat[axis] = tracks
}

// HasAutoRepeatEmptyTracks returns true if some tracks of `axis` are collapsed.
func (g *Grid) HasAutoRepeatEmptyTracks(axis Axis) bool { return len(g.emptyAutoRepeat[axis]) != 0 }

// AutoRepeatEmptyTracks returns the number of collapsed tracks.
func (g *Grid) AutoRepeatEmptyTracks(axis Axis) int { return len(g.emptyAutoRepeat[axis]) }

// IsEmptyAutoRepeatTrack returns true if the track `index` of `axis` is
// a collapsed auto-fit track.
func (g *Grid) IsEmptyAutoRepeatTrack(axis Axis, index int) bool {
	return g.emptyAutoRepeat[axis].Has(index)
}

// emptyTracks returns the collapsed tracks of `axis`, which must not be modified.
func (g *Grid) emptyTracks(axis Axis) utils.IntSet { return g.emptyAutoRepeat[axis] }

// HasGridItems returns true if at least one item is placed.
func (g *Grid) HasGridItems() bool { return len(g.cells) != 0 }

func (g *Grid) NeedsItemsPlacement() bool { return g.needsItemsPlacement }

func (g *Grid) SetNeedsItemsPlacement(b bool) { g.needsItemsPlacement = b }

// OrderedItems returns the in-flow items, sorted by their "order"
// property, document order breaking ties.
func (g *Grid) OrderedItems() []ItemID { return g.order }

// setOrderedItems sorts `items` (given in document order) by `order`.
func (g *Grid) setOrderedItems(items []ItemID, order func(ItemID) int) {
	g.order = append([]ItemID(nil), items...)
	sort.SliceStable(g.order, func(i, j int) bool { return order(g.order[i]) < order(g.order[j]) })
}

// gridIterator walks the cells of one track of `direction`, along the
// orthogonal axis.
type gridIterator struct {
	grid      *Grid
	direction Axis
	row       int
	column    int
	childIdx  int
}

// newGridIterator iterates over the `fixedTrack` of `direction`, starting
// at the `varyingTrack` of the other axis.
func newGridIterator(grid *Grid, direction Axis, fixedTrack, varyingTrack int) *gridIterator {
	it := &gridIterator{grid: grid, direction: direction}
	if direction == ForColumns {
		it.row, it.column = varyingTrack, fixedTrack
	} else {
		it.row, it.column = fixedTrack, varyingTrack
	}
	return it
}

func (it *gridIterator) varying() *int {
	if it.direction == ForColumns {
		return &it.row
	}
	return &it.column
}

func (it *gridIterator) endOfVarying() int {
	return it.grid.numTracks[it.direction.Other()]
}

// nextGridItem returns the next item found in the track, or false.
func (it *gridIterator) nextGridItem() (ItemID, bool) {
	varying := it.varying()
	for end := it.endOfVarying(); *varying < end; *varying++ {
		children := it.grid.Cell(it.row, it.column)
		if it.childIdx < len(children) {
			id := children[it.childIdx]
			it.childIdx++
			return id, true
		}
		it.childIdx = 0
	}
	return 0, false
}

// isEmptyAreaEnough ignores cells outside the grid, which will grow if needed.
func (it *gridIterator) isEmptyAreaEnough(rowSpan, columnSpan int) bool {
	maxRows := utils.MinInt(it.row+rowSpan, it.grid.numTracks[ForRows])
	maxColumns := utils.MinInt(it.column+columnSpan, it.grid.numTracks[ForColumns])
	for row := it.row; row < maxRows; row++ {
		for column := it.column; column < maxColumns; column++ {
			if !it.grid.isCellEmpty(row, column) {
				return false
			}
		}
	}
	return true
}

// nextEmptyGridArea returns the first empty area of the given spans found
// from the current position, or false. The iterator is advanced past the
// returned position.
func (it *gridIterator) nextEmptyGridArea(fixedTrackSpan, varyingTrackSpan int) (GridArea, bool) {
	if it.grid.numTracks[ForRows] == 0 || it.grid.numTracks[ForColumns] == 0 {
		return GridArea{}, false
	}
	rowSpan, columnSpan := fixedTrackSpan, varyingTrackSpan
	if it.direction == ForColumns {
		rowSpan, columnSpan = varyingTrackSpan, fixedTrackSpan
	}
	varying := it.varying()
	for end := it.endOfVarying(); *varying < end; *varying++ {
		if it.isEmptyAreaEnough(rowSpan, columnSpan) {
			area := GridArea{
				Rows:    DefiniteSpan(it.row, it.row+rowSpan),
				Columns: DefiniteSpan(it.column, it.column+columnSpan),
			}
			*varying++
			return area, true
		}
	}
	return GridArea{}, false
}
