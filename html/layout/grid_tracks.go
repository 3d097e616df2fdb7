package layout

import (
	"fmt"
	"sort"

	pr "github.com/benoitkugler/gridlayout/css/properties"
	"github.com/benoitkugler/gridlayout/utils"
	"github.com/benoitkugler/gridlayout/utils/testutils/tracer"
)

// Track sizing, see https://drafts.csswg.org/css-grid/#algo-track-sizing

// SizingConstraint is the constraint under which the
// tracks of the grid container are sized.
type SizingConstraint uint8

const (
	// LayoutSizing uses the available size, which may be indefinite.
	LayoutSizing SizingConstraint = iota
	// MinContentSizing sizes the tracks with no free space.
	MinContentSizing
	// MaxContentSizing sizes the tracks with an infinite free space.
	MaxContentSizing
)

// TrackSizingItem is the contribution of one in-flow item
// to the tracks it spans, margins included.
type TrackSizingItem struct {
	Span LineSpan // translated and definite

	// Minimum is the minimum contribution, used for tracks
	// with an auto minimum sizing function.
	Minimum    pr.Float
	MinContent pr.Float
	MaxContent pr.Float
}

// TrackSizingInput gathers what the sizing of the tracks of one axis needs.
type TrackSizingInput struct {
	Axis Axis

	// Tracks are the sizing functions of every track of the implicit grid.
	Tracks []pr.GridDims

	// AvailableSize is the size of the content box of the container
	// in this axis, or [pr.AutoF].
	AvailableSize pr.MaybeFloat
	Gap           pr.Float

	Items []TrackSizingItem

	// Collapsed are the empty auto-fit tracks, always sized to 0.
	Collapsed utils.IntSet

	// StretchAutoTracks is true for normal and stretch content alignment.
	StretchAutoTracks bool

	Constraint SizingConstraint
}

// TrackSizer computes the base size of each track of one axis.
// The returned slice has the same length as [TrackSizingInput.Tracks].
type TrackSizer interface {
	SizeTracks(input TrackSizingInput) []pr.Float
}

// DefaultTrackSizer implements the track sizing algorithm of CSS Grid.
type DefaultTrackSizer struct{}

var _ TrackSizer = DefaultTrackSizer{}

type track struct {
	min, max   pr.DimOrS
	fitContent pr.MaybeFloat // argument of fit-content(), or nil
	flex       pr.Float      // flex factor of the max sizing function

	base, limit        pr.Float
	infinitelyGrowable bool
	collapsed          bool
}

func isIntrinsic(v pr.DimOrS) bool {
	return v.S == "min-content" || v.S == "max-content" || v.S == "auto"
}

// resolveSizingFunction turns percentages against an indefinite
// size into auto.
func resolveSizingFunction(v pr.DimOrS, percentBasis pr.MaybeFloat) pr.DimOrS {
	if v.S == "" && v.Unit == pr.Perc {
		if pr.IsAuto(percentBasis) {
			return pr.SToV("auto")
		}
		return pr.FToV(pr.Fl(percentBasis.V() * v.Value / 100))
	}
	return v
}

func newTracks(input TrackSizingInput) []track {
	out := make([]track, len(input.Tracks))
	for i, dims := range input.Tracks {
		functions := dims.SizingFunctions()
		t := track{
			min: resolveSizingFunction(functions[0], input.AvailableSize),
			max: resolveSizingFunction(functions[1], input.AvailableSize),
		}
		if arg, ok := dims.IsFitcontent(); ok {
			if v, ok := fixedBreadth(arg, input.AvailableSize); ok {
				t.fitContent = v
			}
		}
		if t.max.S == "" && t.max.Unit == pr.Fr {
			t.flex = t.max.Value
		}
		t.collapsed = input.Collapsed.Has(i)
		out[i] = t
	}
	return out
}

func (t track) isFlexible() bool { return t.max.S == "" && t.max.Unit == pr.Fr }

// SizeTracks implements [TrackSizer].
func (DefaultTrackSizer) SizeTracks(input TrackSizingInput) []pr.Float {
	tracks := newTracks(input)
	gaps := gapsSize(tracks, input.Gap)

	available := input.AvailableSize
	if input.Constraint != LayoutSizing {
		available = pr.AutoF
	}

	// 1.1 Initialize track sizes.
	for i := range tracks {
		t := &tracks[i]
		if t.collapsed {
			continue
		}
		if v, ok := fixedBreadth(t.min, available); ok {
			t.base = v
		}
		t.limit = pr.Inf
		if v, ok := fixedBreadth(t.max, available); ok {
			t.limit = pr.Max(v, t.base)
		}
	}

	// 1.2 Resolve intrinsic track sizes.
	// 1.2.1 Baseline shims are included in the contributions.
	var spanning, flexible []TrackSizingItem
	for _, item := range input.Items {
		crossesFlexible, crossesCollapsed := false, false
		for i := item.Span.Start; i < item.Span.End; i++ {
			crossesFlexible = crossesFlexible || tracks[i].isFlexible()
			crossesCollapsed = crossesCollapsed || tracks[i].collapsed
		}
		switch {
		case crossesCollapsed:
			// only empty tracks are collapsed
			continue
		case crossesFlexible:
			flexible = append(flexible, item)
		case item.Span.IntegerSpan() == 1:
			// 1.2.2 Size tracks to fit non-spanning items.
			sizeTrackForItem(&tracks[item.Span.Start], item, input.Constraint)
		default:
			spanning = append(spanning, item)
		}
	}
	for i := range tracks {
		if t := &tracks[i]; t.limit != pr.Inf && t.limit < t.base {
			t.limit = t.base
		}
	}

	// 1.2.3 Increase sizes to accommodate items spanning content-sized tracks.
	sort.SliceStable(spanning, func(i, j int) bool {
		return spanning[i].Span.IntegerSpan() < spanning[j].Span.IntegerSpan()
	})
	for start := 0; start < len(spanning); {
		end := start
		for end < len(spanning) && spanning[end].Span.IntegerSpan() == spanning[start].Span.IntegerSpan() {
			end++
		}
		group := spanning[start:end]
		start = end

		minimum := minimumContribution(input.Constraint)
		// 1.2.3.1 For intrinsic minimums.
		distributeExtraSpace(tracks, group, affectBase, isIntrinsicMinimum, minimum, input.Gap)
		// 1.2.3.2 For content-based minimums.
		distributeExtraSpace(tracks, group, affectBase, isContentMinimum, minContentContribution, input.Gap)
		// 1.2.3.3 For max-content minimums.
		distributeExtraSpace(tracks, group, affectBase, maxContentMinimum(input.Constraint), maxContentContribution, input.Gap)
		// 1.2.3.4 Increase growth limit.
		for i := range tracks {
			if t := &tracks[i]; t.limit != pr.Inf && t.limit < t.base {
				t.limit = t.base
			}
		}
		// 1.2.3.5 For intrinsic maximums.
		distributeExtraSpace(tracks, group, affectLimit, isIntrinsicMaximum, minContentContribution, input.Gap)
		// 1.2.3.6 For max-content maximums.
		distributeExtraSpace(tracks, group, affectLimit, isMaxContentMaximum, maxContentContribution, input.Gap)
	}

	// 1.2.4 Increase sizes to accommodate items spanning flexible tracks.
	for _, item := range flexible {
		distributeToFlexibleTracks(tracks, item, minimumContribution(input.Constraint)(item), input.Gap)
	}

	// 1.2.5 Fix infinite growth limits.
	for i := range tracks {
		if t := &tracks[i]; t.limit == pr.Inf {
			t.limit = t.base
		}
		tracks[i].infinitelyGrowable = false
	}

	// 1.3 Maximize tracks.
	switch {
	case input.Constraint == MinContentSizing:
	case pr.IsAuto(available):
		for i := range tracks {
			tracks[i].base = tracks[i].limit
		}
	default:
		maximizeTracks(tracks, available.V()-sumBases(tracks)-gaps)
	}

	// 1.4 Expand flexible tracks.
	var frSize pr.Float
	switch {
	case input.Constraint == MinContentSizing:
	case !pr.IsAuto(available):
		if available.V()-sumBases(tracks)-gaps > 0 {
			frSize = findFrSize(tracks, 0, len(tracks), available.V()-gaps)
		}
	default:
		for _, t := range tracks {
			if t.isFlexible() && !t.collapsed {
				if t.flex > 1 {
					frSize = pr.Max(frSize, t.base/t.flex)
				} else {
					frSize = pr.Max(frSize, t.base)
				}
			}
		}
		for _, item := range flexible {
			span := item.Span
			space := item.MaxContent - gapsBetween(span.IntegerSpan(), input.Gap)
			frSize = pr.Max(frSize, findFrSize(tracks, span.Start, span.End, space))
		}
	}
	for i := range tracks {
		if t := &tracks[i]; t.isFlexible() && !t.collapsed {
			t.base = pr.Max(t.base, frSize*t.flex)
		}
	}

	// 1.5 Expand stretched auto tracks.
	if input.StretchAutoTracks && !pr.IsAuto(available) && input.Constraint == LayoutSizing {
		freeSpace := available.V() - sumBases(tracks) - gaps
		var autoTracks []int
		for i, t := range tracks {
			if t.max.S == "auto" && !t.collapsed {
				autoTracks = append(autoTracks, i)
			}
		}
		if freeSpace > 0 && len(autoTracks) != 0 {
			distributedFreeSpace := freeSpace / pr.Float(len(autoTracks))
			for _, i := range autoTracks {
				tracks[i].base += distributedFreeSpace
			}
		}
	}

	out := make([]pr.Float, len(tracks))
	for i, t := range tracks {
		out[i] = t.base
	}

	if traceMode {
		traceLogger.Dump(fmt.Sprintf("SizeTracks %s (available %s): %v", input.Axis,
			tracer.FormatMaybeFloat(input.AvailableSize), out))
	}
	return out
}

// gapsSize returns the space used by the gaps between the tracks
// not collapsed.
func gapsSize(tracks []track, gap pr.Float) pr.Float {
	n := 0
	for _, t := range tracks {
		if !t.collapsed {
			n++
		}
	}
	return gapsBetween(n, gap)
}

func gapsBetween(n int, gap pr.Float) pr.Float {
	if n <= 1 {
		return 0
	}
	return gap * pr.Float(n-1)
}

func sumBases(tracks []track) pr.Float {
	var sum pr.Float
	for _, t := range tracks {
		sum += t.base
	}
	return sum
}

func sizeTrackForItem(t *track, item TrackSizingItem, constraint SizingConstraint) {
	switch t.min.S {
	case "min-content":
		t.base = pr.Max(t.base, item.MinContent)
	case "max-content":
		t.base = pr.Max(t.base, item.MaxContent)
	case "auto":
		if constraint == MaxContentSizing {
			t.base = pr.Max(t.base, item.MaxContent)
		} else if constraint == MinContentSizing {
			t.base = pr.Max(t.base, item.MinContent)
		} else {
			t.base = pr.Max(t.base, item.Minimum)
		}
	}

	var contribution pr.Float
	switch t.max.S {
	case "min-content":
		contribution = item.MinContent
	case "max-content", "auto":
		contribution = item.MaxContent
		if fc, ok := t.fitContent.(pr.Float); ok {
			contribution = pr.Max(t.base, pr.Min(contribution, fc))
		}
	default:
		return
	}
	if t.limit == pr.Inf {
		t.limit = contribution
	} else {
		t.limit = pr.Max(t.limit, contribution)
	}
}

type contributionFunc = func(TrackSizingItem) pr.Float

func minContentContribution(item TrackSizingItem) pr.Float { return item.MinContent }

func maxContentContribution(item TrackSizingItem) pr.Float { return item.MaxContent }

func minimumContribution(constraint SizingConstraint) contributionFunc {
	switch constraint {
	case MinContentSizing:
		return minContentContribution
	case MaxContentSizing:
		return maxContentContribution
	default:
		return func(item TrackSizingItem) pr.Float { return item.Minimum }
	}
}

type trackFilter = func(track) bool

func isIntrinsicMinimum(t track) bool { return isIntrinsic(t.min) }

func isContentMinimum(t track) bool { return t.min.S == "min-content" || t.min.S == "max-content" }

func maxContentMinimum(constraint SizingConstraint) trackFilter {
	return func(t track) bool {
		return t.min.S == "max-content" || (constraint == MaxContentSizing && t.min.S == "auto")
	}
}

func isIntrinsicMaximum(t track) bool { return isIntrinsic(t.max) }

func isMaxContentMaximum(t track) bool { return t.max.S == "max-content" || t.max.S == "auto" }

const (
	affectBase = iota
	affectLimit
)

// affectedSize returns the base size or the growth limit, infinite
// growth limits being replaced by the base size.
func affectedSize(t track, affected int) pr.Float {
	if affected == affectBase || t.limit == pr.Inf {
		return t.base
	}
	return t.limit
}

// distributeExtraSpace distributes the contributions of `items` to the tracks
// they span, matching `isAffected`.
func distributeExtraSpace(tracks []track, items []TrackSizingItem, affected int,
	isAffected trackFilter, contribution contributionFunc, gap pr.Float,
) {
	// 1. Maintain separately for each affected track a planned increase.
	plannedIncreases := make([]pr.Float, len(tracks))
	touched := false

	for _, item := range items {
		var affectedTracks []int
		// 2.1 Find the space to distribute.
		space := contribution(item) - gapsBetween(item.Span.IntegerSpan(), gap)
		for i := item.Span.Start; i < item.Span.End; i++ {
			space -= affectedSize(tracks[i], affected)
			if isAffected(tracks[i]) {
				affectedTracks = append(affectedTracks, i)
			}
		}
		if space <= 0 || len(affectedTracks) == 0 {
			continue
		}
		touched = true

		// 2.2 Distribute space up to limits.
		itemIncurredIncreases := make(map[int]pr.Float, len(affectedTracks))
		frozen := utils.IntSet{}
		for space > 0 && len(frozen) < len(affectedTracks) {
			frozenBefore := len(frozen)
			distributedSpace := space / pr.Float(len(affectedTracks)-len(frozen))
			for _, i := range affectedTracks {
				if frozen.Has(i) {
					continue
				}
				t := tracks[i]
				limit := pr.Inf
				if affected == affectBase || (!t.infinitelyGrowable && t.limit != pr.Inf) {
					limit = t.limit
				}
				increase := distributedSpace
				current := affectedSize(t, affected) + itemIncurredIncreases[i]
				if current+increase >= limit {
					increase = pr.Max(0, limit-current)
					frozen.Add(i)
				}
				itemIncurredIncreases[i] += increase
				space -= increase
			}
			if len(frozen) == frozenBefore {
				space = 0
			}
		}
		// 2.4 Distribute space beyond limits.
		if space > 0 {
			distributedSpace := space / pr.Float(len(affectedTracks))
			for _, i := range affectedTracks {
				itemIncurredIncreases[i] += distributedSpace
			}
		}

		// 2.5 Set the track's planned increase.
		for i, increase := range itemIncurredIncreases {
			if increase > plannedIncreases[i] {
				plannedIncreases[i] = increase
			}
		}
	}
	if !touched {
		return
	}

	// 3. Update the tracks' affected size.
	for i, increase := range plannedIncreases {
		t := &tracks[i]
		if affected == affectLimit && t.limit == pr.Inf {
			if increase == 0 {
				continue
			}
			t.limit = t.base + increase
			t.infinitelyGrowable = true
		} else if affected == affectLimit {
			t.limit += increase
		} else {
			t.base += increase
		}
	}
}

// distributeToFlexibleTracks grows the flexible tracks spanned by
// `item`, proportionally to their flex factor.
func distributeToFlexibleTracks(tracks []track, item TrackSizingItem, contribution, gap pr.Float) {
	space := contribution - gapsBetween(item.Span.IntegerSpan(), gap)
	var flexSum pr.Float
	var affected []int
	for i := item.Span.Start; i < item.Span.End; i++ {
		space -= tracks[i].base
		if tracks[i].isFlexible() && isIntrinsic(tracks[i].min) {
			affected = append(affected, i)
			flexSum += tracks[i].flex
		}
	}
	if space <= 0 || len(affected) == 0 {
		return
	}
	for _, i := range affected {
		share := 1 / pr.Float(len(affected))
		if flexSum > 0 {
			share = tracks[i].flex / flexSum
		}
		tracks[i].base += space * share
	}
}

// maximizeTracks distributes `freeSpace` equally to the tracks,
// up to their growth limits.
func maximizeTracks(tracks []track, freeSpace pr.Float) {
	frozen := utils.IntSet{}
	for i, t := range tracks {
		if t.collapsed || t.base >= t.limit {
			frozen.Add(i)
		}
	}
	for freeSpace > 0 && len(frozen) < len(tracks) {
		frozenBefore := len(frozen)
		distributedFreeSpace := freeSpace / pr.Float(len(tracks)-len(frozen))
		for i := range tracks {
			if frozen.Has(i) {
				continue
			}
			t := &tracks[i]
			if t.base+distributedFreeSpace >= t.limit {
				freeSpace -= t.limit - t.base
				t.base = t.limit
				frozen.Add(i)
			} else {
				t.base += distributedFreeSpace
				freeSpace -= distributedFreeSpace
			}
		}
		if len(frozen) == frozenBefore {
			return
		}
	}
}

// findFrSize returns the used size of 1fr, filling `spaceToFill`
// with the tracks [start, end).
func findFrSize(tracks []track, start, end int, spaceToFill pr.Float) pr.Float {
	inflexible := utils.IntSet{}
	for {
		leftoverSpace := spaceToFill
		var flexFactorSum pr.Float
		for i := start; i < end; i++ {
			t := tracks[i]
			if t.isFlexible() && !inflexible.Has(i) && !t.collapsed {
				flexFactorSum += t.flex
			} else {
				leftoverSpace -= t.base
			}
		}
		flexFactorSum = pr.Max(1, flexFactorSum)
		hypotheticalFrSize := pr.Max(0, leftoverSpace/flexFactorSum)

		stop := true
		for i := start; i < end; i++ {
			t := tracks[i]
			if t.isFlexible() && !inflexible.Has(i) && !t.collapsed && hypotheticalFrSize*t.flex < t.base {
				inflexible.Add(i)
				stop = false
			}
		}
		if stop {
			return hypotheticalFrSize
		}
	}
}
