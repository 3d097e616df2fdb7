package layout

import (
	pr "github.com/benoitkugler/gridlayout/css/properties"
	bo "github.com/benoitkugler/gridlayout/html/boxes"
)

// WritingMode is the writing-mode and direction of a box, which
// map the grid axes to the physical axes.
// Columns follow the inline axis, rows the block axis.
type WritingMode struct {
	Vertical bool // vertical-rl or vertical-lr
	// FlippedBlocks is true for vertical-rl, where the blocks
	// progress from right to left.
	FlippedBlocks bool
	RTL           bool
}

func NewWritingMode(style pr.Properties) WritingMode {
	mode := style.GetWritingMode()
	return WritingMode{
		Vertical:      mode == "vertical-rl" || mode == "vertical-lr",
		FlippedBlocks: mode == "vertical-rl",
		RTL:           style.GetDirection() == "rtl",
	}
}

// physicalX returns true if the tracks of `axis` are laid out
// along the horizontal axis.
func (wm WritingMode) physicalX(axis Axis) bool { return (axis == ForColumns) != wm.Vertical }

// reversed returns true if the lines of `axis` progress
// towards decreasing physical coordinates.
func (wm WritingMode) reversed(axis Axis) bool {
	if axis == ForColumns {
		return wm.RTL
	}
	return wm.FlippedBlocks
}

// reversedAlong returns true if the start side of the box in the given
// physical axis is the right (or bottom) side.
func (wm WritingMode) reversedAlong(horizontal bool) bool {
	if wm.physicalX(ForColumns) == horizontal {
		return wm.reversed(ForColumns)
	}
	return wm.reversed(ForRows)
}

// axisFor returns the grid axis laid out along the given physical axis.
func (wm WritingMode) axisFor(horizontal bool) Axis {
	if wm.physicalX(ForColumns) == horizontal {
		return ForColumns
	}
	return ForRows
}

type side uint8

const (
	sideTop side = iota
	sideRight
	sideBottom
	sideLeft
)

// startSide returns the physical side where the first line of `axis` is.
func (wm WritingMode) startSide(axis Axis) side {
	switch x, r := wm.physicalX(axis), wm.reversed(axis); {
	case x && !r:
		return sideLeft
	case x:
		return sideRight
	case !r:
		return sideTop
	default:
		return sideBottom
	}
}

// endSide returns the side opposite to [startSide].
func (wm WritingMode) endSide(axis Axis) side { return (wm.startSide(axis) + 2) % 4 }

func margin(box *bo.Box, s side) pr.MaybeFloat {
	switch s {
	case sideTop:
		return box.MarginTop
	case sideRight:
		return box.MarginRight
	case sideBottom:
		return box.MarginBottom
	default:
		return box.MarginLeft
	}
}

func setMargin(box *bo.Box, s side, v pr.MaybeFloat) {
	switch s {
	case sideTop:
		box.MarginTop = v
	case sideRight:
		box.MarginRight = v
	case sideBottom:
		box.MarginBottom = v
	default:
		box.MarginLeft = v
	}
}

func borderAndPadding(box *bo.Box, s side) pr.Float {
	switch s {
	case sideTop:
		return box.BorderTopWidth + box.PaddingTop
	case sideRight:
		return box.BorderRightWidth + box.PaddingRight
	case sideBottom:
		return box.BorderBottomWidth + box.PaddingBottom
	default:
		return box.BorderLeftWidth + box.PaddingLeft
	}
}

func padding(box *bo.Box, s side) pr.Float {
	switch s {
	case sideTop:
		return box.PaddingTop
	case sideRight:
		return box.PaddingRight
	case sideBottom:
		return box.PaddingBottom
	default:
		return box.PaddingLeft
	}
}

// contentSize returns the width or the height of the content box,
// following the physical direction of `axis`.
func (wm WritingMode) contentSize(box *bo.Box, axis Axis) pr.MaybeFloat {
	if wm.physicalX(axis) {
		return box.Width
	}
	return box.Height
}

func (wm WritingMode) setContentSize(box *bo.Box, axis Axis, v pr.MaybeFloat) {
	if wm.physicalX(axis) {
		box.Width = v
	} else {
		box.Height = v
	}
}

// extras returns the borders and paddings of the box in `axis`.
func (wm WritingMode) extras(box *bo.Box, axis Axis) pr.Float {
	return borderAndPadding(box, wm.startSide(axis)) + borderAndPadding(box, wm.endSide(axis))
}

// margins returns the margins of the box in `axis`, auto being 0.
func (wm WritingMode) margins(box *bo.Box, axis Axis) pr.Float {
	return margin(box, wm.startSide(axis)).V() + margin(box, wm.endSide(axis)).V()
}

// contentOffset returns the distance between the start of the margin box
// and the start of the content box along `axis`.
func (wm WritingMode) contentOffset(box *bo.Box, axis Axis) pr.Float {
	s := wm.startSide(axis)
	return margin(box, s).V() + borderAndPadding(box, s)
}
