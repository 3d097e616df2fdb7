package tree

import (
	pr "github.com/benoitkugler/gridlayout/css/properties"
	"github.com/benoitkugler/gridlayout/logger"
)

// Convert *specified* property values (the result of the cascade and
// inheritance) into *computed* values (that are inherited).

type computer struct {
	element     *Element
	specified   pr.Properties
	parentStyle pr.Properties // nil for the root element
}

func (c computer) isRootElement() bool { return c.parentStyle == nil }

type computerFunc = func(computer, pr.KnownProp, pr.CssProperty) pr.CssProperty

// Maps property names to functions returning the computed values
var computerFunctions = map[pr.KnownProp]computerFunc{
	pr.PTop:          length,
	pr.PRight:        length,
	pr.PLeft:         length,
	pr.PBottom:       length,
	pr.PMarginTop:    length,
	pr.PMarginRight:  length,
	pr.PMarginBottom: length,
	pr.PMarginLeft:   length,
	pr.PHeight:       length,
	pr.PWidth:        length,
	pr.PMinWidth:     length,
	pr.PMinHeight:    length,
	pr.PMaxWidth:     length,
	pr.PMaxHeight:    length,

	pr.PPaddingTop:    length,
	pr.PPaddingRight:  length,
	pr.PPaddingBottom: length,
	pr.PPaddingLeft:   length,

	pr.PBorderTopWidth:    length,
	pr.PBorderRightWidth:  length,
	pr.PBorderLeftWidth:   length,
	pr.PBorderBottomWidth: length,

	pr.PRowGap:    gap,
	pr.PColumnGap: gap,

	pr.PGridTemplateColumns: gridTemplate,
	pr.PGridTemplateRows:    gridTemplate,
	pr.PGridAutoColumns:     gridAuto,
	pr.PGridAutoRows:        gridAuto,

	pr.PDisplay: display,
}

func dimOrS(value pr.DimOrS) pr.DimOrS {
	if value.S != "" {
		return value
	}
	return value.Dimension.ToPixels().ToValue()
}

// Compute a length, converting absolute and font relative
// units to pixels. Percentages are kept.
func length(_ computer, _ pr.KnownProp, value pr.CssProperty) pr.CssProperty {
	return dimOrS(value.(pr.DimOrS))
}

// "normal" is 0 in grid containers.
func gap(_ computer, _ pr.KnownProp, value pr.CssProperty) pr.CssProperty {
	v := value.(pr.DimOrS)
	if v.S == "normal" {
		return pr.ZeroPixels.ToValue()
	}
	return dimOrS(v)
}

func gridDims(dims pr.GridDims) pr.GridDims {
	if limit, ok := dims.IsFitcontent(); ok {
		return pr.NewGridDimsFitcontent(limit.Dimension.ToPixels())
	}
	if min, max, ok := dims.IsMinmax(); ok {
		return pr.NewGridDimsMinmax(dimOrS(min), dimOrS(max))
	}
	return pr.NewGridDimsValue(dimOrS(dims.V))
}

func gridSpecs(specs []pr.GridSpec) []pr.GridSpec {
	out := make([]pr.GridSpec, len(specs))
	for i, spec := range specs {
		switch spec := spec.(type) {
		case pr.GridDims:
			out[i] = gridDims(spec)
		case pr.GridRepeat:
			out[i] = pr.GridRepeat{Names: gridSpecs(spec.Names), Repeat: spec.Repeat}
		default:
			out[i] = spec
		}
	}
	return out
}

// Compute the lengths of the track sizes.
// Subgrids are not supported and fall back to "none".
func gridTemplate(c computer, name pr.KnownProp, value pr.CssProperty) pr.CssProperty {
	template := value.(pr.GridTemplate)
	switch template.Tag {
	case pr.None:
		return template
	case pr.Subgrid:
		logger.WarningLogger.Printf("<%s>: %s: subgrid is not supported, using none", c.element.Tag, name)
		return pr.GridTemplate{Tag: pr.None}
	}
	return pr.GridTemplate{Names: gridSpecs(template.Names)}
}

func gridAuto(_ computer, _ pr.KnownProp, value pr.CssProperty) pr.CssProperty {
	list := value.(pr.GridAuto)
	out := make(pr.GridAuto, len(list))
	for i, dims := range list {
		out[i] = gridDims(dims)
	}
	return out
}

// Compute the “display“ property, blockifying the root element,
// the absolutely positioned elements and the children of grid containers.
// See https://www.w3.org/TR/css-display-3/#transformations
func display(c computer, _ pr.KnownProp, value pr.CssProperty) pr.CssProperty {
	d := value.(pr.String)
	position := c.specified.GetPosition()
	blockify := c.isRootElement() || position == "absolute" || position == "fixed"
	if !c.isRootElement() {
		if parent := c.parentStyle.GetDisplay(); parent == "grid" || parent == "inline-grid" {
			blockify = true
		}
	}
	if !blockify {
		return d
	}
	switch d {
	case "inline", "inline-block":
		return pr.String("block")
	case "inline-grid":
		return pr.String("grid")
	}
	return d
}
