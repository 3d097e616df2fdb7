package layout

import (
	pr "github.com/benoitkugler/gridlayout/css/properties"
)

// populateGridPositionsForDirection returns the position of each line of `axis`,
// relative to the start of the content box of the container, in the direction
// of the axis.
//
// The gaps around collapsed tracks coincide, and become 0 at the edges of the grid.
func populateGridPositionsForDirection(grid *Grid, axis Axis, sizes []pr.Float, gap pr.Float,
	offset ContentAlignmentOffset,
) []pr.Float {
	numberOfTracks := len(sizes)
	numberOfLines := numberOfTracks + 1
	lastLine := numberOfLines - 1
	hasCollapsedTracks := grid.HasAutoRepeatEmptyTracks(axis)
	numberOfCollapsedTracks := grid.AutoRepeatEmptyTracks(axis)

	positions := make([]pr.Float, numberOfLines)
	positions[0] = offset.PositionOffset
	if numberOfLines <= 1 {
		return positions
	}

	// with collapsed tracks, the gaps are added in a second pass
	initialGap := gap
	if hasCollapsedTracks {
		initialGap = 0
	}
	nextToLastLine := numberOfLines - 2
	for i := 0; i < nextToLastLine; i++ {
		positions[i+1] = positions[i] + offset.DistributionOffset + sizes[i] + initialGap
	}
	positions[lastLine] = positions[nextToLastLine] + sizes[nextToLastLine]

	if !hasCollapsedTracks {
		return positions
	}

	remainingEmptyTracks := numberOfCollapsedTracks
	var offsetAccumulator, gapAccumulator pr.Float
	for i := 1; i < lastLine; i++ {
		if grid.IsEmptyAutoRepeatTrack(axis, i-1) {
			remainingEmptyTracks--
			offsetAccumulator += offset.DistributionOffset
		} else {
			// one gap between two non empty tracks, whatever
			// the number of empty tracks between them. It is added
			// right after the non empty track, so the collapsed
			// lines share the position following the gap: sizes
			// [10 0 0 10] with a 5 gap give [0 15 15 15 25].
			allRemainingTracksAreEmpty := remainingEmptyTracks == lastLine-i
			if !allRemainingTracksAreEmpty || !grid.IsEmptyAutoRepeatTrack(axis, i) {
				gapAccumulator += gap
			}
		}
		positions[i] += gapAccumulator - offsetAccumulator
	}
	positions[lastLine] += gapAccumulator - offsetAccumulator

	return positions
}

// gridAreaBreadth returns the size of the tracks spanned by `span`,
// including the gaps and the distribution offsets between them.
func gridAreaBreadth(positions, sizes []pr.Float, span LineSpan) pr.Float {
	if span.IsIndefinite() || span.End > len(sizes) {
		return 0
	}
	return positions[span.End-1] - positions[span.Start] + sizes[span.End-1]
}

// freeSpaceForContentAlignment returns the space left by the tracks and the gaps.
func freeSpaceForContentAlignment(grid *Grid, axis Axis, available pr.Float, sizes []pr.Float, gap pr.Float) pr.Float {
	free := available
	tracks := 0
	for i, size := range sizes {
		free -= size
		if !grid.IsEmptyAutoRepeatTrack(axis, i) {
			tracks++
		}
	}
	return free - gapsBetween(tracks, gap)
}

// physicalOffset converts a logical offset of a box of size `extent`, in
// a container of size `containerSize`, into a physical offset.
func physicalOffset(logical, extent, containerSize pr.Float, reversed bool) pr.Float {
	if reversed {
		return containerSize - logical - extent
	}
	return logical
}
