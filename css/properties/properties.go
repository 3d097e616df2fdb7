package properties

// This file is used to generate typed accessors
//go:generate go run gen/gen.go

const (
	_ KnownProp = iota
	PDisplay
	PPosition
	PDirection
	PWritingMode
	POrder

	PTop
	PRight
	PBottom
	PLeft

	// the following properties are grouped by side,
	// in the [bottom, left, right, top] order,
	// so that, if side in an index (0, 1, 2 or 3),
	// the property is a PBorderBottomWidth + side * 3
	// DO NOT CHANGE the order
	PBorderBottomWidth
	PMarginBottom
	PPaddingBottom

	PBorderLeftWidth
	PMarginLeft
	PPaddingLeft

	PBorderRightWidth
	PMarginRight
	PPaddingRight

	PBorderTopWidth
	PMarginTop
	PPaddingTop

	PWidth
	PHeight
	PMinWidth
	PMinHeight
	PMaxWidth
	PMaxHeight

	PGridTemplateColumns
	PGridTemplateRows
	PGridTemplateAreas
	PGridAutoColumns
	PGridAutoRows
	PGridAutoFlow
	PGridRowStart
	PGridRowEnd
	PGridColumnStart
	PGridColumnEnd
	PRowGap
	PColumnGap

	PJustifyContent
	PJustifyItems
	PJustifySelf
	PAlignContent
	PAlignItems
	PAlignSelf
)

var (
	ZeroPixels      = Dimension{Unit: Px}
	zeroPixelsValue = ZeroPixels.ToValue()
	autoGridLine    = GridLine{Tag: Auto}
)

// InitialValues stores the default values for the CSS properties.
var InitialValues = Properties{
	// CSS 2.1: https://www.w3.org/TR/CSS21/propidx.html
	PDisplay:   String("inline"),
	PPosition:  String("static"),
	PDirection: String("ltr"),
	PTop:       SToV("auto"),
	PRight:     SToV("auto"),
	PBottom:    SToV("auto"),
	PLeft:      SToV("auto"),

	PMarginTop:    zeroPixelsValue,
	PMarginRight:  zeroPixelsValue,
	PMarginBottom: zeroPixelsValue,
	PMarginLeft:   zeroPixelsValue,

	PPaddingTop:    zeroPixelsValue,
	PPaddingRight:  zeroPixelsValue,
	PPaddingBottom: zeroPixelsValue,
	PPaddingLeft:   zeroPixelsValue,

	// border-style is not modelled: widths apply as specified
	PBorderTopWidth:    zeroPixelsValue,
	PBorderRightWidth:  zeroPixelsValue,
	PBorderBottomWidth: zeroPixelsValue,
	PBorderLeftWidth:   zeroPixelsValue,

	// Writing Modes 3 (CR): https://www.w3.org/TR/css-writing-modes-3/
	PWritingMode: String("horizontal-tb"),

	// Sizing 3 (WD): https://www.w3.org/TR/css-sizing-3/
	PWidth:     SToV("auto"),
	PHeight:    SToV("auto"),
	PMinWidth:  SToV("auto"),
	PMinHeight: SToV("auto"),
	PMaxWidth:  Dimension{Value: Inf, Unit: Px}.ToValue(), // parsed value for "none"
	PMaxHeight: Dimension{Value: Inf, Unit: Px}.ToValue(),

	// Grid Layout 2 (CR): https://www.w3.org/TR/css-grid-2/
	PGridTemplateColumns: GridTemplate{Tag: None},
	PGridTemplateRows:    GridTemplate{Tag: None},
	PGridTemplateAreas:   GridTemplateAreas{},
	PGridAutoColumns:     GridAuto{NewGridDimsValue(SToV("auto"))},
	PGridAutoRows:        GridAuto{NewGridDimsValue(SToV("auto"))},
	PGridAutoFlow:        Strings{"row"},
	PGridRowStart:        autoGridLine,
	PGridRowEnd:          autoGridLine,
	PGridColumnStart:     autoGridLine,
	PGridColumnEnd:       autoGridLine,
	PRowGap:              SToV("normal"),
	PColumnGap:           SToV("normal"),
	POrder:               Int(0),

	// Box Alignment 3 (WD): https://www.w3.org/TR/css-align-3/
	PJustifyContent: Strings{"normal"},
	PJustifyItems:   Strings{"normal"},
	PJustifySelf:    Strings{"auto"},
	PAlignContent:   Strings{"normal"},
	PAlignItems:     Strings{"normal"},
	PAlignSelf:      Strings{"auto"},
}

// Inherited stores the properties inherited by default.
var Inherited = NewPropSet(PDirection, PWritingMode)
