// Package boxes builds the formatting structure of grid containers:
// one [Box] per grid container and per (in-flow or absolutely positioned) item.
//
// The sizes of the content of the items are not measured from glyphs:
// they are given by the data-* attributes of the elements, or
// estimated from their text with a fixed advance per character.
package boxes

import (
	"fmt"

	pr "github.com/benoitkugler/gridlayout/css/properties"
	"github.com/benoitkugler/gridlayout/html/tree"
)

// Box is a grid container or a grid item.
//
// Layout fills the used values: positions and sizes are in pixels,
// relative to the border box of the root container.
type Box struct {
	Element  *tree.Element
	Style    pr.Properties
	Children []*Box

	// Content stores the intrinsic sizes of the content, ignored
	// for grid containers.
	Content Content

	// origin of the margin box
	PositionX, PositionY pr.Float

	// size of the content box
	Width, Height pr.MaybeFloat

	MarginTop, MarginRight, MarginBottom, MarginLeft                     pr.MaybeFloat
	PaddingTop, PaddingRight, PaddingBottom, PaddingLeft                 pr.Float
	BorderTopWidth, BorderRightWidth, BorderBottomWidth, BorderLeftWidth pr.Float

	// Baseline is the position of the first baseline, relative to the top
	// of the margin box, or nil.
	Baseline pr.MaybeFloat
}

func (b *Box) String() string {
	return fmt.Sprintf("<%s %s>", b.ElementTag(), b.Element.ID())
}

// ElementTag returns the tag of the element generating the box.
func (b *Box) ElementTag() string { return b.Element.Tag }

// IsGridContainer returns true for grid and inline-grid boxes.
func (b *Box) IsGridContainer() bool {
	d := b.Style.GetDisplay()
	return d == "grid" || d == "inline-grid"
}

// IsAbsolutelyPositioned returns true for out-of-flow boxes.
func (b *Box) IsAbsolutelyPositioned() bool {
	p := b.Style.GetPosition()
	return p == "absolute" || p == "fixed"
}

// InFlowChildren returns the children participating in the grid.
func (b *Box) InFlowChildren() []*Box {
	var out []*Box
	for _, child := range b.Children {
		if !child.IsAbsolutelyPositioned() {
			out = append(out, child)
		}
	}
	return out
}

func (b *Box) PaddingWidth() pr.Float {
	return b.Width.V() + b.PaddingLeft + b.PaddingRight
}

func (b *Box) PaddingHeight() pr.Float {
	return b.Height.V() + b.PaddingTop + b.PaddingBottom
}

func (b *Box) BorderWidth() pr.Float {
	return b.PaddingWidth() + b.BorderLeftWidth + b.BorderRightWidth
}

func (b *Box) BorderHeight() pr.Float {
	return b.PaddingHeight() + b.BorderTopWidth + b.BorderBottomWidth
}

func (b *Box) MarginWidth() pr.Float {
	return b.BorderWidth() + b.MarginLeft.V() + b.MarginRight.V()
}

func (b *Box) MarginHeight() pr.Float {
	return b.BorderHeight() + b.MarginTop.V() + b.MarginBottom.V()
}

// BorderBoxX returns the absolute horizontal position of the border box.
func (b *Box) BorderBoxX() pr.Float { return b.PositionX + b.MarginLeft.V() }

// BorderBoxY returns the absolute vertical position of the border box.
func (b *Box) BorderBoxY() pr.Float { return b.PositionY + b.MarginTop.V() }

// ContentBoxX returns the absolute horizontal position of the content box.
func (b *Box) ContentBoxX() pr.Float {
	return b.BorderBoxX() + b.BorderLeftWidth + b.PaddingLeft
}

// ContentBoxY returns the absolute vertical position of the content box.
func (b *Box) ContentBoxY() pr.Float {
	return b.BorderBoxY() + b.BorderTopWidth + b.PaddingTop
}

// Translate moves the box and its children by (dx, dy).
func (b *Box) Translate(dx, dy pr.Float) {
	if dx == 0 && dy == 0 {
		return
	}
	b.PositionX += dx
	b.PositionY += dy
	for _, child := range b.Children {
		child.Translate(dx, dy)
	}
}

// Descendants calls `f` for the box and its descendants, in tree order.
func (b *Box) Descendants(f func(*Box)) {
	f(b)
	for _, child := range b.Children {
		child.Descendants(f)
	}
}
