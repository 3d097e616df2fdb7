package layout

import (
	"fmt"

	pr "github.com/benoitkugler/gridlayout/css/properties"
	bo "github.com/benoitkugler/gridlayout/html/boxes"
	"github.com/benoitkugler/gridlayout/utils/testutils/tracer"
)

// Layout for grid containers, see https://drafts.csswg.org/css-grid/#layout-algorithm

// gridItem is the record of an item in the arena of its container.
type gridItem struct {
	box    *bo.Box
	wm     WritingMode
	sizes  usedSizes      // resolved at each layout
	nested *GridContainer // non nil for items which are grid containers
}

type autoFlow struct {
	major Axis // ForRows for "row", ForColumns for "column"
	dense bool
}

// baselineShim is the space added before (first baseline) or
// after (last baseline) an item to align its baseline with
// the other items of its row.
type baselineShim struct {
	before, after pr.Float
}

// GridContainer lays out a grid container box and its items.
//
// The container owns its [Grid], which is only placed again when
// the number of auto repeat tracks changes.
type GridContainer struct {
	box *bo.Box
	wm  WritingMode

	items     []gridItem // indexed by [ItemID], in document order
	inFlow    []ItemID
	outOfFlow []ItemID

	templates  [2]trackList // indexed by [Axis]
	autoTracks [2]pr.GridAuto
	areas      pr.GridTemplateAreas
	autoFlow   autoFlow

	grid  *Grid
	sizer TrackSizer

	sizes usedSizes // of the container

	// precomputed at each layout, for the rows axis
	baselineParticipation map[ItemID]bool
	shims                 map[ItemID]baselineShim

	// outOfFlowLines stores the translated start line of the out-of-flow
	// items whose start is not the padding edge.
	outOfFlowLines [2]map[ItemID]int

	// results of the last layout, indexed by [Axis]
	trackSizes [2][]pr.Float
	positions  [2][]pr.Float // logical, relative to the content box
	offsets    [2]ContentAlignmentOffset
	gaps       [2]pr.Float
}

// NewGridContainer builds the arena of the items of `box`,
// which must be a grid container.
func NewGridContainer(box *bo.Box) *GridContainer {
	style := box.Style
	gc := &GridContainer{
		box:   box,
		wm:    NewWritingMode(style),
		grid:  NewGrid(),
		sizer: DefaultTrackSizer{},
		templates: [2]trackList{
			newTrackList(style.GetGridTemplateColumns()),
			newTrackList(style.GetGridTemplateRows()),
		},
		autoTracks:     [2]pr.GridAuto{style.GetGridAutoColumns(), style.GetGridAutoRows()},
		areas:          style.GetGridTemplateAreas(),
		outOfFlowLines: [2]map[ItemID]int{{}, {}},
		offsets:        [2]ContentAlignmentOffset{invalidContentAlignmentOffset(), invalidContentAlignmentOffset()},
	}

	flow := style.GetGridAutoFlow()
	gc.autoFlow = autoFlow{major: ForRows, dense: flow.Intersects("dense")}
	if flow.Intersects("column") {
		gc.autoFlow.major = ForColumns
	}

	for _, child := range box.Children {
		id := ItemID(len(gc.items))
		item := gridItem{box: child, wm: NewWritingMode(child.Style)}
		if child.IsGridContainer() {
			item.nested = NewGridContainer(child)
		}
		gc.items = append(gc.items, item)
		if child.IsAbsolutelyPositioned() {
			gc.outOfFlow = append(gc.outOfFlow, id)
		} else {
			gc.inFlow = append(gc.inFlow, id)
		}
	}
	return gc
}

// SetTrackSizer replaces the track sizing algorithm of the container
// and of its nested grid containers.
func (gc *GridContainer) SetTrackSizer(sizer TrackSizer) {
	gc.sizer = sizer
	for _, item := range gc.items {
		if item.nested != nil {
			item.nested.SetTrackSizer(sizer)
		}
	}
}

func (gc *GridContainer) Box() *bo.Box { return gc.box }

func (gc *GridContainer) Grid() *Grid { return gc.grid }

func (gc *GridContainer) WritingMode() WritingMode { return gc.wm }

// Items returns the boxes of the items, indexed by [ItemID].
func (gc *GridContainer) Items() []*bo.Box {
	out := make([]*bo.Box, len(gc.items))
	for i, item := range gc.items {
		out[i] = item.box
	}
	return out
}

// InFlowItems returns the items placed on the grid, in document order.
func (gc *GridContainer) InFlowItems() []ItemID { return gc.inFlow }

// OutOfFlowItems returns the absolutely positioned items, in document order.
func (gc *GridContainer) OutOfFlowItems() []ItemID { return gc.outOfFlow }

// Nested returns the container of an item which is a grid container, or nil.
func (gc *GridContainer) Nested(id ItemID) *GridContainer { return gc.items[id].nested }

// TrackSizes returns the size of each track of `axis`.
func (gc *GridContainer) TrackSizes(axis Axis) []pr.Float { return gc.trackSizes[axis] }

// Gap returns the used gap between the tracks of `axis`.
func (gc *GridContainer) Gap(axis Axis) pr.Float { return gc.gaps[axis] }

// ContentAlignment returns the content distribution of `axis`.
func (gc *GridContainer) ContentAlignment(axis Axis) ContentAlignmentOffset { return gc.offsets[axis] }

// OutOfFlowStartLine returns the line used as start edge by an
// out-of-flow item, or false if the padding edge is used.
func (gc *GridContainer) OutOfFlowStartLine(id ItemID, axis Axis) (int, bool) {
	line, ok := gc.outOfFlowLines[axis][id]
	return line, ok
}

// Lines returns the absolute physical coordinates of the lines of `axis`,
// the first line of the grid first.
func (gc *GridContainer) Lines(axis Axis) []pr.Float {
	origin := gc.box.ContentBoxY()
	if gc.wm.physicalX(axis) {
		origin = gc.box.ContentBoxX()
	}
	size := gc.wm.contentSize(gc.box, axis).V()
	out := make([]pr.Float, len(gc.positions[axis]))
	for i, p := range gc.positions[axis] {
		out[i] = origin + physicalOffset(p, 0, size, gc.wm.reversed(axis))
	}
	return out
}

// LayoutGrid lays out the grid container `box`, whose margin box is placed at
// (box.PositionX, box.PositionY), in a containing block of the given size.
func LayoutGrid(box *bo.Box, availableWidth pr.Float, availableHeight pr.MaybeFloat) *GridContainer {
	gc := NewGridContainer(box)
	gc.Layout(availableWidth, availableHeight)
	return gc
}

// Layout resolves the size of the container in a containing block
// of the given size, and lays out its content.
func (gc *GridContainer) Layout(availableWidth pr.Float, availableHeight pr.MaybeFloat) {
	box, wm := gc.box, gc.wm
	resolvePercentages(box, availableWidth)
	gc.sizes = resolveSizes(box, availableWidth, availableHeight)
	isBlockLevel := box.Style.GetDisplay() != "inline-grid"

	for _, horizontal := range [2]bool{true, false} {
		axis := wm.axisFor(horizontal)
		if v, ok := gc.sizes.size(horizontal).(pr.Float); ok {
			setPhysicalSize(box, horizontal, gc.sizes.clamp(v, horizontal))
			continue
		}

		var size pr.MaybeFloat = pr.AutoF
		switch {
		case horizontal && axis == ForColumns:
			available := availableWidth - wm.margins(box, axis) - wm.extras(box, axis)
			if isBlockLevel {
				size = gc.sizes.clamp(pr.Max(0, available), true)
			} else {
				minContent, maxContent := gc.IntrinsicInlineSizes()
				size = gc.sizes.clamp(pr.Min(maxContent, pr.Max(minContent, available)), true)
			}
		case !horizontal && axis == ForColumns && isBlockLevel:
			if available, ok := availableHeight.(pr.Float); ok {
				available -= wm.margins(box, axis) + wm.extras(box, axis)
				size = gc.sizes.clamp(pr.Max(0, available), false)
			}
		}
		// the block size is resolved from the rows
		setPhysicalSize(box, horizontal, size)
	}
	gc.resolveContainerMargins(availableWidth, isBlockLevel)

	gc.layoutContent()

	if traceMode {
		traceLogger.DumpTree(box, fmt.Sprintf("LayoutGrid %s", tracer.FormatMaybeFloat(availableWidth)))
	}
}

func setPhysicalSize(box *bo.Box, horizontal bool, v pr.MaybeFloat) {
	if horizontal {
		box.Width = v
	} else {
		box.Height = v
	}
}

// resolveContainerMargins centers block-level containers with auto horizontal margins.
// Other auto margins are 0.
func (gc *GridContainer) resolveContainerMargins(availableWidth pr.Float, isBlockLevel bool) {
	box := gc.box
	leftAuto, rightAuto := pr.IsAuto(box.MarginLeft), pr.IsAuto(box.MarginRight)
	for _, s := range [4]side{sideTop, sideRight, sideBottom, sideLeft} {
		if pr.IsAuto(margin(box, s)) {
			setMargin(box, s, pr.Float(0))
		}
	}
	if !isBlockLevel || pr.IsAuto(box.Width) || !(leftAuto || rightAuto) {
		return
	}
	free := pr.Max(0, availableWidth-box.MarginWidth())
	switch {
	case leftAuto && rightAuto:
		box.MarginLeft, box.MarginRight = free/2, free/2
	case leftAuto:
		box.MarginLeft = free
	default:
		box.MarginRight = free
	}
}

// layoutWithContentSize lays out the container with the given content box size,
// [pr.AutoF] meaning content-based.
func (gc *GridContainer) layoutWithContentSize(width, height pr.MaybeFloat) {
	gc.box.Width, gc.box.Height = width, height
	gc.layoutContent()
}

// layoutContent places the items, sizes the tracks, then positions the items.
// The sizes of the content box of the container which are [pr.AutoF] are
// computed from the tracks.
func (gc *GridContainer) layoutContent() {
	box, wm := gc.box, gc.wm
	gc.resolveItems(box.Width, box.Height)

	inline, block := wm.contentSize(box, ForColumns), wm.contentSize(box, ForRows)
	gc.placeItems(gc.grid, gc.repeatConstraints(inline, block))
	gc.baselineParticipation = gc.computeBaselineParticipation(ForRows)

	// the columns are sized first, so that the heights of the
	// items are known when sizing the rows
	gc.gaps[ForColumns] = gc.gap(ForColumns, inline)
	gc.trackSizes[ForColumns] = gc.sizeTracks(gc.grid, ForColumns, inline, LayoutSizing, nil, nil)
	if pr.IsAuto(inline) {
		inline = gc.contentBasedSize(gc.grid, ForColumns, gc.trackSizes[ForColumns], gc.gaps[ForColumns])
		wm.setContentSize(box, ForColumns, inline)
	}
	gc.computePositions(ForColumns, inline.V())

	columnBreadth := func(id ItemID) pr.Float {
		return gridAreaBreadth(gc.positions[ForColumns], gc.trackSizes[ForColumns], gc.grid.GridItemArea(id).Columns)
	}
	gc.shims = gc.computeBaselineShims(gc.grid, columnBreadth)
	gc.gaps[ForRows] = gc.gap(ForRows, block)
	gc.trackSizes[ForRows] = gc.sizeTracks(gc.grid, ForRows, block, LayoutSizing, columnBreadth, gc.shims)
	if pr.IsAuto(block) {
		contentSize := gc.contentBasedSize(gc.grid, ForRows, gc.trackSizes[ForRows], gc.gaps[ForRows])
		if contentSize != tracksSize(gc.grid, ForRows, gc.trackSizes[ForRows], gc.gaps[ForRows]) {
			// min or max constraint: the rows are sized again with a definite size
			gc.trackSizes[ForRows] = gc.sizeTracks(gc.grid, ForRows, contentSize, LayoutSizing, columnBreadth, gc.shims)
		}
		block = contentSize
		wm.setContentSize(box, ForRows, block)
	}
	gc.computePositions(ForRows, block.V())

	for _, id := range gc.inFlow {
		area := gc.grid.GridItemArea(id)
		var start, breadth [2]pr.Float
		for _, axis := range [2]Axis{ForColumns, ForRows} {
			span := area.Span(axis)
			start[axis] = gc.positions[axis][span.Start]
			breadth[axis] = gridAreaBreadth(gc.positions[axis], gc.trackSizes[axis], span)
		}
		gc.layoutItem(id, start, breadth)
	}
	gc.layoutOutOfFlowItems()

	box.Baseline = gc.firstLineBaseline()
}

// resolveItems resolves the margins, paddings, borders and sizes of the items,
// against the content box of the container.
func (gc *GridContainer) resolveItems(cbWidth, cbHeight pr.MaybeFloat) {
	inline := cbWidth
	if gc.wm.Vertical {
		inline = cbHeight
	}
	for i := range gc.items {
		item := &gc.items[i]
		resolvePercentages(item.box, inline)
		item.sizes = resolveSizes(item.box, cbWidth, cbHeight)
		if item.nested != nil {
			item.nested.sizes = item.sizes
		}
	}
}

func (gc *GridContainer) gapStyle(axis Axis) pr.DimOrS {
	if axis == ForColumns {
		return gc.box.Style.GetColumnGap()
	}
	return gc.box.Style.GetRowGap()
}

func (gc *GridContainer) gap(axis Axis, available pr.MaybeFloat) pr.Float {
	return resolveGap(gc.gapStyle(axis), available)
}

func (gc *GridContainer) contentAlignmentStyle(axis Axis) pr.Strings {
	if axis == ForColumns {
		return gc.box.Style.GetJustifyContent()
	}
	return gc.box.Style.GetAlignContent()
}

func (gc *GridContainer) repeatConstraints(inline, block pr.MaybeFloat) [2]repeatConstraints {
	var out [2]repeatConstraints
	for axis, available := range [2]pr.MaybeFloat{inline, block} {
		horizontal := gc.wm.physicalX(Axis(axis))
		out[axis] = repeatConstraints{
			available: available,
			min:       gc.sizes.min(horizontal),
			max:       gc.sizes.max(horizontal),
			gap:       gc.gapStyle(Axis(axis)),
		}
	}
	return out
}

// tracksSize returns the size of the tracks and of the gaps between them.
func tracksSize(grid *Grid, axis Axis, sizes []pr.Float, gap pr.Float) pr.Float {
	var sum pr.Float
	n := 0
	for i, size := range sizes {
		sum += size
		if !grid.IsEmptyAutoRepeatTrack(axis, i) {
			n++
		}
	}
	return sum + gapsBetween(n, gap)
}

// contentBasedSize returns the size of the content box of the container
// when it is computed from the tracks.
func (gc *GridContainer) contentBasedSize(grid *Grid, axis Axis, sizes []pr.Float, gap pr.Float) pr.Float {
	return gc.sizes.clamp(tracksSize(grid, axis, sizes, gap), gc.wm.physicalX(axis))
}

// sizeTracks runs the track sizing algorithm for the items placed on `grid`.
// `crossBreadth` returns the size of the area of the items in the other axis, if known.
func (gc *GridContainer) sizeTracks(grid *Grid, axis Axis, available pr.MaybeFloat, constraint SizingConstraint,
	crossBreadth func(ItemID) pr.Float, shims map[ItemID]baselineShim,
) []pr.Float {
	explicit := gc.explicitGrids(grid)[axis]
	input := TrackSizingInput{
		Axis:              axis,
		Tracks:            explicit.sizingFunctions(grid.NumTracks(axis), grid.ExplicitGridStart(axis), gc.autoTracks[axis]),
		AvailableSize:     available,
		Gap:               gc.gap(axis, available),
		Collapsed:         grid.emptyTracks(axis),
		StretchAutoTracks: stretchesAutoTracks(gc.contentAlignmentStyle(axis)),
		Constraint:        constraint,
	}
	for _, id := range grid.OrderedItems() {
		var cross pr.MaybeFloat = pr.AutoF
		if crossBreadth != nil {
			cross = crossBreadth(id)
		}
		minimum, minContent, maxContent := gc.contributions(id, axis, cross)
		shim := shims[id]
		extra := shim.before + shim.after
		input.Items = append(input.Items, TrackSizingItem{
			Span:       grid.GridItemArea(id).Span(axis),
			Minimum:    minimum + extra,
			MinContent: minContent + extra,
			MaxContent: maxContent + extra,
		})
	}
	return gc.sizer.SizeTracks(input)
}

// computePositions resolves the content alignment and the position of the lines of `axis`.
func (gc *GridContainer) computePositions(axis Axis, available pr.Float) {
	grid, sizes := gc.grid, gc.trackSizes[axis]
	freeSpace := freeSpaceForContentAlignment(grid, axis, available, sizes, gc.gaps[axis])
	numberOfGridTracks := grid.NumTracks(axis) - grid.AutoRepeatEmptyTracks(axis)
	gc.offsets[axis] = computeContentPositionAndDistributionOffset(axis, gc.contentAlignmentStyle(axis),
		freeSpace, numberOfGridTracks, gc.wm.RTL)
	gc.positions[axis] = populateGridPositionsForDirection(grid, axis, sizes, gc.gaps[axis], gc.offsets[axis])
}

// IntrinsicInlineSizes returns the min-content and max-content inline sizes
// of the content box of the container.
// The items are placed on a disposable grid: the grid of the container is not modified.
func (gc *GridContainer) IntrinsicInlineSizes() (minContent, maxContent pr.Float) {
	gc.resolveItems(pr.AutoF, pr.AutoF)
	grid := NewGrid()
	gc.placeItems(grid, gc.repeatConstraints(pr.AutoF, pr.AutoF))
	gap := gc.gap(ForColumns, pr.AutoF)
	var out [2]pr.Float
	for i, constraint := range [2]SizingConstraint{MinContentSizing, MaxContentSizing} {
		sizes := gc.sizeTracks(grid, ForColumns, pr.AutoF, constraint, nil, nil)
		out[i] = tracksSize(grid, ForColumns, sizes, gap)
	}
	return out[0], out[1]
}

// Items sizing

// hasAutoSize returns true if the item may be stretched in `axis`.
func (gc *GridContainer) hasAutoSize(id ItemID, axis Axis) bool {
	item := gc.items[id]
	if !pr.IsAuto(item.sizes.size(gc.wm.physicalX(axis))) {
		return false
	}
	return !pr.IsAuto(margin(item.box, gc.wm.startSide(axis))) && !pr.IsAuto(margin(item.box, gc.wm.endSide(axis)))
}

// contentWidths returns the min-content and max-content widths of the content box.
func (gc *GridContainer) contentWidths(item *gridItem) (minContent, maxContent pr.Float) {
	if item.nested == nil {
		return item.box.Content.MinContent, item.box.Content.MaxContent
	}
	if !item.nested.wm.Vertical {
		return item.nested.IntrinsicInlineSizes()
	}
	// the width of a vertical grid is the size of its rows
	item.nested.layoutWithContentSize(pr.AutoF, item.sizes.height)
	w := item.box.Width.V()
	return w, w
}

// contentHeight returns the height of the content box, for the given content width.
func (gc *GridContainer) contentHeight(item *gridItem, width pr.Float) pr.Float {
	if item.nested == nil {
		return item.box.Content.HeightFor(width)
	}
	if item.nested.wm.Vertical {
		_, maxContent := item.nested.IntrinsicInlineSizes()
		return maxContent
	}
	item.nested.layoutWithContentSize(width, item.sizes.height)
	return item.box.Height.V()
}

// contentBaseline returns the first baseline of the content, relative to
// the top of the content box, or nil.
func (gc *GridContainer) contentBaseline(item *gridItem, width, height pr.Float) pr.MaybeFloat {
	if item.nested == nil {
		return item.box.Content.Baseline
	}
	item.nested.layoutWithContentSize(width, height)
	baseline, ok := item.box.Baseline.(pr.Float)
	if !ok {
		return nil
	}
	return baseline - margin(item.box, sideTop).V() - borderAndPadding(item.box, sideTop)
}

// contributions returns the minimum, min-content and max-content contributions
// of an item in `axis`, for its margin box.
func (gc *GridContainer) contributions(id ItemID, axis Axis, crossBreadth pr.MaybeFloat) (minimum, minContent, maxContent pr.Float) {
	item := &gc.items[id]
	box, sizes := item.box, item.sizes
	horizontal := gc.wm.physicalX(axis)
	outer := gc.wm.extras(box, axis) + gc.wm.margins(box, axis)

	if size, ok := sizes.size(horizontal).(pr.Float); ok {
		v := sizes.clamp(size, horizontal) + outer
		return v, v, v
	}

	if horizontal {
		minC, maxC := gc.contentWidths(item)
		minContent = sizes.clamp(minC, true) + outer
		maxContent = sizes.clamp(maxC, true) + outer
		return minContent, minContent, maxContent
	}

	width := gc.usedWidth(id, crossBreadth)
	height := sizes.clamp(gc.contentHeight(item, width), false) + outer
	return height, height, height
}

// usedWidth returns the width of the content box of an item placed in an area
// of width `areaWidth`, or [pr.AutoF] if the area is not known yet.
func (gc *GridContainer) usedWidth(id ItemID, areaWidth pr.MaybeFloat) pr.Float {
	item := &gc.items[id]
	box, sizes := item.box, item.sizes
	if w, ok := sizes.width.(pr.Float); ok {
		return sizes.clamp(w, true)
	}
	minContent, maxContent := gc.contentWidths(item)
	if pr.IsAuto(areaWidth) {
		return sizes.clamp(maxContent, true)
	}
	axis := gc.wm.axisFor(true)
	available := pr.Max(0, areaWidth.V()-gc.wm.margins(box, axis)-gc.wm.extras(box, axis))
	if gc.selfAlignment(id, axis).Position == PositionStretch {
		return sizes.clamp(available, true)
	}
	// shrink-to-fit
	return sizes.clamp(pr.Min(maxContent, pr.Max(minContent, available)), true)
}

// usedHeight returns the height of the content box of an item of the given
// width, placed in an area of height `areaHeight` (or [pr.AutoF]).
func (gc *GridContainer) usedHeight(id ItemID, width pr.Float, areaHeight pr.MaybeFloat) pr.Float {
	item := &gc.items[id]
	box, sizes := item.box, item.sizes
	if h, ok := sizes.height.(pr.Float); ok {
		return sizes.clamp(h, false)
	}
	axis := gc.wm.axisFor(false)
	if !pr.IsAuto(areaHeight) && gc.selfAlignment(id, axis).Position == PositionStretch {
		available := pr.Max(0, areaHeight.V()-gc.wm.margins(box, axis)-gc.wm.extras(box, axis))
		return sizes.clamp(available, false)
	}
	return sizes.clamp(gc.contentHeight(item, width), false)
}

// itemAscent returns the first baseline of an item (with the given content size),
// relative to the top of its margin box. Items without baseline use
// the bottom of their border box.
func (gc *GridContainer) itemAscent(id ItemID, width, height pr.Float) pr.Float {
	item := &gc.items[id]
	top := margin(item.box, sideTop).V() + borderAndPadding(item.box, sideTop)
	if baseline, ok := gc.contentBaseline(item, width, height).(pr.Float); ok {
		return top + baseline
	}
	return top + height + borderAndPadding(item.box, sideBottom)
}

// computeBaselineShims aligns the baselines of the items of each row
// participating in baseline alignment.
// Items spanning several rows are not aligned.
func (gc *GridContainer) computeBaselineShims(grid *Grid, columnBreadth func(ItemID) pr.Float) map[ItemID]baselineShim {
	if gc.wm.Vertical {
		return nil
	}
	type metrics struct {
		row             int
		last            bool
		ascent, descent pr.Float
	}
	var (
		items       = make(map[ItemID]metrics)
		maxAscents  = make(map[int]pr.Float)
		maxDescents = make(map[int]pr.Float)
	)
	for _, id := range grid.OrderedItems() {
		if !gc.baselineParticipation[id] {
			continue
		}
		rows := grid.GridItemArea(id).Rows
		if rows.IntegerSpan() != 1 {
			continue
		}
		box := gc.items[id].box
		width := gc.usedWidth(id, columnBreadth(id))
		height := gc.usedHeight(id, width, pr.AutoF)
		ascent := gc.itemAscent(id, width, height)
		marginHeight := height + gc.wm.extras(box, ForRows) + gc.wm.margins(box, ForRows)
		m := metrics{
			row:     rows.Start,
			last:    gc.selfAlignment(id, ForRows).Position == PositionLastBaseline,
			ascent:  ascent,
			descent: marginHeight - ascent,
		}
		items[id] = m
		if m.last {
			maxDescents[m.row] = pr.Max(maxDescents[m.row], m.descent)
		} else {
			maxAscents[m.row] = pr.Max(maxAscents[m.row], m.ascent)
		}
	}

	out := make(map[ItemID]baselineShim, len(items))
	for id, m := range items {
		if m.last {
			out[id] = baselineShim{after: maxDescents[m.row] - m.descent}
		} else {
			out[id] = baselineShim{before: maxAscents[m.row] - m.ascent}
		}
	}
	return out
}

// Items positioning

// layoutItem sizes an item and aligns it in its area, given in logical
// coordinates relative to the content box of the container.
func (gc *GridContainer) layoutItem(id ItemID, start, breadth [2]pr.Float) {
	item := &gc.items[id]
	box, wm := item.box, gc.wm
	alignments := [2]SelfAlignment{gc.selfAlignment(id, ForColumns), gc.selfAlignment(id, ForRows)}

	xAxis, yAxis := wm.axisFor(true), wm.axisFor(false)
	width := gc.usedWidth(id, breadth[xAxis])
	height := gc.usedHeight(id, width, breadth[yAxis])
	box.Width, box.Height = width, height

	for _, axis := range [2]Axis{ForColumns, ForRows} {
		borderBoxSize := wm.contentSize(box, axis).V() + wm.extras(box, axis)
		gc.resolveAutoMargins(box, axis, breadth[axis], borderBoxSize)
		marginBoxSize := borderBoxSize + wm.margins(box, axis)

		var offset pr.Float
		switch alignment := alignments[axis]; alignment.Position {
		case PositionBaseline:
			offset = gc.shims[id].before
		case PositionLastBaseline:
			offset = breadth[axis] - marginBoxSize - gc.shims[id].after
		default:
			offset = alignmentOffset(alignment, breadth[axis], marginBoxSize)
		}

		containerSize := wm.contentSize(gc.box, axis).V()
		physical := physicalOffset(start[axis]+offset, marginBoxSize, containerSize, wm.reversed(axis))
		if wm.physicalX(axis) {
			box.PositionX = gc.box.ContentBoxX() + physical
		} else {
			box.PositionY = gc.box.ContentBoxY() + physical
		}
	}

	if item.nested != nil {
		item.nested.layoutWithContentSize(width, height)
	}
}

// resolveAutoMargins gives the free space of the area to the auto margins of `axis`.
func (gc *GridContainer) resolveAutoMargins(box *bo.Box, axis Axis, areaSize, borderBoxSize pr.Float) {
	startSide, endSide := gc.wm.startSide(axis), gc.wm.endSide(axis)
	startAuto, endAuto := pr.IsAuto(margin(box, startSide)), pr.IsAuto(margin(box, endSide))
	if !startAuto && !endAuto {
		return
	}
	free := pr.Max(0, areaSize-borderBoxSize-gc.wm.margins(box, axis))
	switch {
	case startAuto && endAuto:
		setMargin(box, startSide, free/2)
		setMargin(box, endSide, free/2)
	case startAuto:
		setMargin(box, startSide, free)
	default:
		setMargin(box, endSide, free)
	}
}

// layoutOutOfFlowItems positions the absolutely positioned items, whose
// containing block is the area defined by their grid lines.
func (gc *GridContainer) layoutOutOfFlowItems() {
	explicit := gc.explicitGrids(gc.grid)
	for _, id := range gc.outOfFlow {
		var start, breadth [2]pr.Float
		for _, axis := range [2]Axis{ForColumns, ForRows} {
			start[axis], breadth[axis] = gc.outOfFlowArea(explicit[axis], id, axis)
		}
		gc.layoutItem(id, start, breadth)
	}
}

// outOfFlowArea returns the start and the size of the containing block of an
// out-of-flow item in `axis`. Auto lines, and lines outside of the grid, are
// replaced by the padding edges of the container.
func (gc *GridContainer) outOfFlowArea(explicit explicitGrid, id ItemID, axis Axis) (start, breadth pr.Float) {
	grid, wm := gc.grid, gc.wm
	startLine, endLine := gc.itemLines(id, axis)
	span := explicit.resolveSpan(startLine, endLine)
	startIsAuto, endIsAuto := startLine.IsAuto(), endLine.IsAuto()
	if span.IsIndefinite() {
		startIsAuto, endIsAuto = true, true
	}
	span = span.Translate(grid.ExplicitGridStart(axis))
	lastLine := grid.NumTracks(axis)
	startIsAuto = startIsAuto || span.Start < 0 || span.Start > lastLine
	endIsAuto = endIsAuto || span.End < 0 || span.End > lastLine

	positions := gc.positions[axis]
	start = -padding(gc.box, wm.startSide(axis))
	if startIsAuto {
		delete(gc.outOfFlowLines[axis], id)
	} else {
		start = positions[span.Start]
		gc.outOfFlowLines[axis][id] = span.Start
	}

	end := wm.contentSize(gc.box, axis).V() + padding(gc.box, wm.endSide(axis))
	if !endIsAuto {
		end = positions[span.End]
		if span.End < lastLine {
			// the position of a line includes the gap before it
			end -= gc.gaps[axis] + gc.offsets[axis].DistributionOffset
		}
	}
	return start, pr.Max(0, end-start)
}

// firstLineBaseline returns the baseline of the first item of the first row
// aligned on its baseline, or of the first item of the first row, relative
// to the top of the margin box of the container.
func (gc *GridContainer) firstLineBaseline() pr.MaybeFloat {
	grid := gc.grid
	if gc.wm.Vertical || grid.NumTracks(ForRows) == 0 {
		return nil
	}
	first, baseline := ItemID(-1), ItemID(-1)
	for column := 0; column < grid.NumTracks(ForColumns) && baseline == -1; column++ {
		for _, id := range grid.Cell(0, column) {
			if first == -1 {
				first = id
			}
			if gc.baselineParticipation[id] && gc.selfAlignment(id, ForRows).Position == PositionBaseline {
				baseline = id
				break
			}
		}
	}
	if baseline == -1 {
		baseline = first
	}
	if baseline == -1 {
		return nil
	}
	box := gc.items[baseline].box
	ascent := gc.itemAscent(baseline, box.Width.V(), box.Height.V())
	return box.PositionY + ascent - gc.box.PositionY
}
