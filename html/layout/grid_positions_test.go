package layout

import (
	"testing"

	"github.com/benoitkugler/gridlayout/utils"
	tu "github.com/benoitkugler/gridlayout/utils/testutils"
)

func TestGridPositions(t *testing.T) {
	grid := NewGrid()
	grid.EnsureSize(1, 3)
	sizes := []Fl{10, 20, 30}

	positions := populateGridPositionsForDirection(grid, ForColumns, sizes, 5, ContentAlignmentOffset{})
	tu.AssertEqual(t, positions, []Fl{0, 15, 40, 70})

	positions = populateGridPositionsForDirection(grid, ForColumns, sizes, 5, ContentAlignmentOffset{PositionOffset: 7, DistributionOffset: 2})
	tu.AssertEqual(t, positions, []Fl{7, 24, 51, 81})

	tu.AssertEqual(t, populateGridPositionsForDirection(grid, ForRows, nil, 5, ContentAlignmentOffset{}), []Fl{0})
}

func TestGridPositionsCollapsedTracks(t *testing.T) {
	grid := NewGrid()
	grid.EnsureSize(1, 4)
	grid.SetAutoRepeatEmptyTracks(ForColumns, utils.IntSet{1: {}, 2: {}})
	sizes := []Fl{10, 0, 0, 10}

	// a single gap remains between the two non collapsed tracks
	positions := populateGridPositionsForDirection(grid, ForColumns, sizes, 5, ContentAlignmentOffset{})
	tu.AssertEqual(t, positions, []Fl{0, 15, 15, 15, 25})
	tu.AssertEqual(t, gridAreaBreadth(positions, sizes, DefiniteSpan(0, 4)), Fl(25))
	tu.AssertEqual(t, gridAreaBreadth(positions, sizes, DefiniteSpan(1, 3)), Fl(0))

	tu.AssertEqual(t, freeSpaceForContentAlignment(grid, ForColumns, 100, sizes, 5), Fl(75))

	// collapsed tracks at the end of the grid
	grid = NewGrid()
	grid.EnsureSize(1, 2)
	grid.SetAutoRepeatEmptyTracks(ForColumns, utils.IntSet{1: {}})
	positions = populateGridPositionsForDirection(grid, ForColumns, []Fl{10, 0}, 5, ContentAlignmentOffset{})
	tu.AssertEqual(t, positions, []Fl{0, 10, 10})
}

func TestGridAreaBreadth(t *testing.T) {
	positions, sizes := []Fl{0, 15, 40, 70}, []Fl{10, 20, 30}
	tu.AssertEqual(t, gridAreaBreadth(positions, sizes, DefiniteSpan(0, 1)), Fl(10))
	tu.AssertEqual(t, gridAreaBreadth(positions, sizes, DefiniteSpan(1, 3)), Fl(55))
	tu.AssertEqual(t, gridAreaBreadth(positions, sizes, IndefiniteSpan()), Fl(0))
	tu.AssertEqual(t, gridAreaBreadth(positions, sizes, DefiniteSpan(2, 5)), Fl(0))
}

func TestPhysicalOffset(t *testing.T) {
	tu.AssertEqual(t, physicalOffset(10, 20, 100, false), Fl(10))
	tu.AssertEqual(t, physicalOffset(10, 20, 100, true), Fl(70))
}
