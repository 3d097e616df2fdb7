package layout

import (
	pr "github.com/benoitkugler/gridlayout/css/properties"
	"github.com/benoitkugler/gridlayout/utils"
)

// Auto repeat, see https://drafts.csswg.org/css-grid/#auto-repeat

// repeatConstraints are the sizes of the content box of the
// container in one axis. Indefinite sizes are [pr.AutoF].
type repeatConstraints struct {
	available pr.MaybeFloat
	max       pr.MaybeFloat
	min       pr.MaybeFloat
	gap       pr.DimOrS
}

// fixedBreadth returns the size of a definite sizing function.
func fixedBreadth(v pr.DimOrS, percentBasis pr.MaybeFloat) (pr.Float, bool) {
	if v.S != "" || v.Unit == pr.Fr {
		return 0, false
	}
	if v.Unit == pr.Perc {
		if pr.IsAuto(percentBasis) {
			return 0, false
		}
		return percentBasis.V() * v.Value / 100, true
	}
	return v.Value, true
}

// definiteTrackSize uses the max sizing function if it is definite,
// the min sizing function otherwise.
func definiteTrackSize(dims pr.GridDims, size pr.Float) pr.Float {
	functions := dims.SizingFunctions()
	if v, ok := fixedBreadth(functions[1], size); ok {
		return v
	}
	v, _ := fixedBreadth(functions[0], size)
	return v
}

// resolveGap returns 0 for percentages of an indefinite size.
func resolveGap(gap pr.DimOrS, size pr.MaybeFloat) pr.Float {
	v, _ := fixedBreadth(gap, size)
	return v
}

// computeAutoRepeatTracksCount returns the number of tracks generated by
// the auto repeat pattern of `tl` (a multiple of the pattern length), or 0.
func computeAutoRepeatTracksCount(tl trackList, cs repeatConstraints) int {
	if !tl.hasAutoRepeat() {
		return 0
	}
	patternLength := len(tl.autoRepeat)

	needsToFulfillMinimumSize := false
	size := cs.available
	if pr.IsAuto(size) {
		max, hasMax := cs.max.(pr.Float)
		if hasMax && max == pr.Inf {
			hasMax = false
		}
		min, hasMin := cs.min.(pr.Float)
		switch {
		case hasMax:
			size = pr.Max(max, min)
		case hasMin:
			size = min
			needsToFulfillMinimumSize = true
		default:
			return patternLength
		}
	}
	available := size.V()

	// floor the track sizes to 1px to avoid division by zero
	var repeatSize pr.Float
	for _, track := range tl.autoRepeat {
		repeatSize += pr.Max(1, definiteTrackSize(track, available))
	}
	repeatSize = pr.Max(1, repeatSize)

	// there is always at least one repetition
	tracksSize := repeatSize
	for _, track := range tl.fixedTracks {
		tracksSize += definiteTrackSize(track, available)
	}
	gap := resolveGap(cs.gap, size)
	if numTracks := len(tl.fixedTracks) + patternLength; numTracks > 1 {
		tracksSize += gap * pr.Float(numTracks-1)
	}

	freeSpace := available - tracksSize
	if freeSpace <= 0 {
		return patternLength
	}

	repeatSizeWithGap := repeatSize + gap*pr.Float(patternLength)
	repetitions := 1 + int(freeSpace/repeatSizeWithGap)
	freeSpace -= repeatSizeWithGap * pr.Float(repetitions-1)

	if needsToFulfillMinimumSize && freeSpace > 0 {
		repetitions++
	}

	maxRepetitions := (maxGridTracks - tl.insertionPoint) / patternLength
	repetitions = utils.ClampInt(repetitions, 0, utils.MaxInt(maxRepetitions, 0))
	return repetitions * patternLength
}

// computeEmptyTracksForAutoRepeat returns the auto-fit tracks
// containing no item, as indexes in the implicit grid.
func computeEmptyTracksForAutoRepeat(grid *Grid, axis Axis, tl trackList) utils.IntSet {
	if tl.autoRepeatType != pr.RepeatAutoFit {
		return nil
	}
	first := grid.ExplicitGridStart(axis) + tl.insertionPoint
	last := first + grid.AutoRepeatTracks(axis)
	out := utils.IntSet{}
	for track := first; track < last; track++ {
		it := newGridIterator(grid, axis, track, 0)
		if _, ok := it.nextGridItem(); !ok {
			out.Add(track)
		}
	}
	return out
}
