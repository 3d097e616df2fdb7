package layout

import (
	pr "github.com/benoitkugler/gridlayout/css/properties"
	kw "github.com/benoitkugler/gridlayout/css/properties/keywords"
)

// Box alignment, see https://drafts.csswg.org/css-align-3/

// ContentAlignmentOffset is the result of the content distribution
// of one axis : the offset of the first track, and the extra space
// added between two tracks.
type ContentAlignmentOffset struct {
	PositionOffset     pr.Float
	DistributionOffset pr.Float
}

func invalidContentAlignmentOffset() ContentAlignmentOffset {
	return ContentAlignmentOffset{PositionOffset: -1, DistributionOffset: -1}
}

// IsValid returns false for the sentinel value, used when
// the distribution does not apply.
func (c ContentAlignmentOffset) IsValid() bool {
	return c.PositionOffset >= 0 && c.DistributionOffset >= 0
}

// contentAlignment is a parsed justify-content or align-content value.
type contentAlignment struct {
	position     kw.Keyword
	distribution kw.Keyword // 0 if not specified
	safe         bool
}

func newContentAlignment(value pr.Strings) contentAlignment {
	keywords, ok := kw.NewKeywords(value)
	if !ok || len(keywords) == 0 {
		return contentAlignment{position: kw.Normal}
	}
	var out contentAlignment
	switch keywords[0] {
	case kw.Safe:
		out.safe = true
		keywords = keywords[1:]
	case kw.Unsafe:
		keywords = keywords[1:]
	case kw.First, kw.Last:
		// baseline content alignment is not supported: it falls back to start
		return contentAlignment{position: kw.Start}
	}
	if len(keywords) == 0 {
		return contentAlignment{position: kw.Normal}
	}
	switch k := keywords[0]; k {
	case kw.SpaceBetween, kw.SpaceAround, kw.SpaceEvenly, kw.Stretch:
		out.distribution = k
		out.position = kw.Normal
	default:
		out.position = k
	}
	return out
}

// fallbackPosition returns the position used when the
// distribution can't be applied.
func (ca contentAlignment) fallbackPosition() kw.Keyword {
	if ca.position != kw.Normal {
		return ca.position
	}
	switch ca.distribution {
	case kw.SpaceAround, kw.SpaceEvenly:
		return kw.Center
	default:
		return kw.Start
	}
}

// contentDistributionOffset returns an invalid offset if the
// distribution does not apply.
func contentDistributionOffset(freeSpace pr.Float, distribution kw.Keyword, numberOfGridTracks int) ContentAlignmentOffset {
	if distribution != 0 && numberOfGridTracks == 0 {
		return invalidContentAlignmentOffset()
	}
	if freeSpace <= 0 {
		return invalidContentAlignmentOffset()
	}

	var distributionOffset pr.Float
	switch distribution {
	case kw.SpaceBetween:
		if numberOfGridTracks < 2 {
			return invalidContentAlignmentOffset()
		}
		return ContentAlignmentOffset{0, freeSpace / pr.Float(numberOfGridTracks-1)}
	case kw.SpaceAround:
		distributionOffset = freeSpace / pr.Float(numberOfGridTracks)
		return ContentAlignmentOffset{distributionOffset / 2, distributionOffset}
	case kw.SpaceEvenly:
		distributionOffset = freeSpace / pr.Float(numberOfGridTracks+1)
		return ContentAlignmentOffset{distributionOffset, distributionOffset}
	default:
		// stretch is handled by the track sizing
		return invalidContentAlignmentOffset()
	}
}

// computeContentPositionAndDistributionOffset resolves the content alignment of
// `axis`, given the free space and the number of tracks not collapsed.
// For the columns axis, `rtl` is the direction of the container.
func computeContentPositionAndDistributionOffset(axis Axis, value pr.Strings, freeSpace pr.Float,
	numberOfGridTracks int, rtl bool,
) ContentAlignmentOffset {
	ca := newContentAlignment(value)

	if offset := contentDistributionOffset(freeSpace, ca.distribution, numberOfGridTracks); offset.IsValid() {
		return offset
	}

	if freeSpace <= 0 && ca.safe {
		return ContentAlignmentOffset{0, 0}
	}

	switch ca.fallbackPosition() {
	case kw.Left:
		// left and right only apply in the inline axis
		if axis == ForColumns && rtl {
			return ContentAlignmentOffset{freeSpace, 0}
		}
		return ContentAlignmentOffset{0, 0}
	case kw.Right:
		if axis == ForColumns && !rtl {
			return ContentAlignmentOffset{freeSpace, 0}
		}
		return ContentAlignmentOffset{0, 0}
	case kw.Center:
		return ContentAlignmentOffset{freeSpace / 2, 0}
	case kw.End, kw.FlexEnd:
		return ContentAlignmentOffset{freeSpace, 0}
	default:
		return ContentAlignmentOffset{0, 0}
	}
}

// stretchesAutoTracks returns true if the auto tracks are expanded
// to fill the free space.
func stretchesAutoTracks(value pr.Strings) bool {
	ca := newContentAlignment(value)
	return ca.distribution == kw.Stretch || (ca.distribution == 0 && ca.position == kw.Normal)
}

// ItemPosition is the resolved self alignment of an item in one axis.
type ItemPosition uint8

const (
	PositionStart ItemPosition = iota
	PositionEnd
	PositionCenter
	PositionStretch
	PositionBaseline
	PositionLastBaseline
)

func (p ItemPosition) String() string {
	switch p {
	case PositionStart:
		return "start"
	case PositionEnd:
		return "end"
	case PositionCenter:
		return "center"
	case PositionStretch:
		return "stretch"
	case PositionBaseline:
		return "baseline"
	case PositionLastBaseline:
		return "last baseline"
	default:
		return "<invalid position>"
	}
}

// SelfAlignment is the alignment of an item in its grid area.
type SelfAlignment struct {
	Position ItemPosition
	// Safe is true if the item is aligned to the start
	// when it overflows its area.
	Safe bool
}

// ResolveSelfAlignment resolves the justify-self (for the columns axis) or align-self
// (for the rows axis) value `self` of an item, `items` being the justify-items or align-items
// value of its container.
// `hasAutoSize` is true if the size of the item in `axis` is auto, so that the item may be stretched.
func ResolveSelfAlignment(self, items pr.Strings, axis Axis, container, item WritingMode, hasAutoSize bool) SelfAlignment {
	value := self
	if len(value) == 0 || value[0] == "auto" {
		value = items
		if len(value) != 0 && value[0] == "legacy" {
			value = value[1:]
		}
	}
	keywords, ok := kw.NewKeywords(value)
	if !ok || len(keywords) == 0 {
		keywords = []kw.Keyword{kw.Normal}
	}

	var out SelfAlignment
	lastBaseline := false
	switch keywords[0] {
	case kw.Safe:
		out.Safe = true
		keywords = keywords[1:]
	case kw.Unsafe:
		keywords = keywords[1:]
	case kw.First:
		keywords = keywords[1:]
	case kw.Last:
		lastBaseline = true
		keywords = keywords[1:]
	}
	if len(keywords) == 0 {
		keywords = []kw.Keyword{kw.Normal}
	}

	switch keywords[0] {
	case kw.Normal, kw.Stretch:
		out.Position = PositionStart
		if hasAutoSize {
			out.Position = PositionStretch
		}
	case kw.End, kw.FlexEnd:
		out.Position = PositionEnd
	case kw.Center:
		out.Position = PositionCenter
	case kw.SelfStart, kw.SelfEnd:
		isStart := container.reversed(axis) == item.reversedAlong(container.physicalX(axis))
		if keywords[0] == kw.SelfEnd {
			isStart = !isStart
		}
		out.Position = PositionEnd
		if isStart {
			out.Position = PositionStart
		}
	case kw.Left, kw.Right:
		out.Position = PositionStart
		if axis == ForColumns && (keywords[0] == kw.Left) == container.RTL {
			out.Position = PositionEnd
		}
	case kw.Baseline:
		// baselines are horizontal : baseline alignment only applies
		// to the vertical block axis
		switch {
		case axis == ForRows && !container.Vertical && lastBaseline:
			out.Position = PositionLastBaseline
		case axis == ForRows && !container.Vertical:
			out.Position = PositionBaseline
		case lastBaseline:
			out.Position = PositionEnd
		default:
			out.Position = PositionStart
		}
	default:
		out.Position = PositionStart
	}
	return out
}

// selfAlignment returns the alignment of an item in `axis`.
func (gc *GridContainer) selfAlignment(id ItemID, axis Axis) SelfAlignment {
	item := gc.items[id]
	style, containerStyle := item.box.Style, gc.box.Style
	var self, items pr.Strings
	if axis == ForColumns {
		self, items = style.GetJustifySelf(), containerStyle.GetJustifyItems()
	} else {
		self, items = style.GetAlignSelf(), containerStyle.GetAlignItems()
	}
	return ResolveSelfAlignment(self, items, axis, gc.wm, item.wm, gc.hasAutoSize(id, axis))
}

// computeBaselineParticipation returns the items aligned on their
// first or last baseline in `axis`.
func (gc *GridContainer) computeBaselineParticipation(axis Axis) map[ItemID]bool {
	out := make(map[ItemID]bool)
	for _, id := range gc.inFlow {
		switch gc.selfAlignment(id, axis).Position {
		case PositionBaseline, PositionLastBaseline:
			out[id] = true
		}
	}
	return out
}

// alignmentOffset returns the offset of an item of size `itemSize`
// (margin box) in an area of size `areaSize`.
func alignmentOffset(alignment SelfAlignment, areaSize, itemSize pr.Float) pr.Float {
	freeSpace := areaSize - itemSize
	if freeSpace < 0 && alignment.Safe {
		return 0
	}
	switch alignment.Position {
	case PositionEnd:
		return freeSpace
	case PositionCenter:
		return freeSpace / 2
	default:
		return 0
	}
}
