package layout

import (
	"fmt"

	pr "github.com/benoitkugler/gridlayout/css/properties"
	bo "github.com/benoitkugler/gridlayout/html/boxes"
	"github.com/benoitkugler/gridlayout/utils/testutils/tracer"
)

// Resolve percentages into fixed values.

// Compute a used length value from a computed length value.
// Percentages of an indefinite size are auto.
func resolveOnePercentage(value pr.DimOrS, propertyName string, referTo pr.MaybeFloat) pr.MaybeFloat {
	// box attributes are used values
	percent := pr.ResoudPercentage(value, referTo)

	if traceMode {
		traceLogger.Dump(fmt.Sprintf("resolveOnePercentage %s: %s %s -> %s", propertyName,
			value, tracer.FormatMaybeFloat(referTo), tracer.FormatMaybeFloat(percent)))
	}

	return percent
}

// resolveLength is [resolveOnePercentage], with auto mapped to `auto`.
func resolveLength(value pr.DimOrS, propertyName string, referTo pr.MaybeFloat, auto pr.Float) pr.Float {
	if v, ok := resolveOnePercentage(value, propertyName, referTo).(pr.Float); ok {
		return v
	}
	return auto
}

// resolvePercentages sets the used margins, paddings and borders of the box.
// As for block layout, vertical margins and paddings also refer to
// the inline size `cbInlineSize`.
func resolvePercentages(box *bo.Box, cbInlineSize pr.MaybeFloat) {
	style := box.Style

	if traceMode {
		traceLogger.Dump(fmt.Sprintf("resolvePercentages %s: %s", box, tracer.FormatMaybeFloat(cbInlineSize)))
	}

	box.MarginTop = resolveMargin(style.GetMarginTop(), "margin-top", cbInlineSize)
	box.MarginRight = resolveMargin(style.GetMarginRight(), "margin-right", cbInlineSize)
	box.MarginBottom = resolveMargin(style.GetMarginBottom(), "margin-bottom", cbInlineSize)
	box.MarginLeft = resolveMargin(style.GetMarginLeft(), "margin-left", cbInlineSize)

	box.PaddingTop = resolveLength(style.GetPaddingTop(), "padding-top", cbInlineSize, 0)
	box.PaddingRight = resolveLength(style.GetPaddingRight(), "padding-right", cbInlineSize, 0)
	box.PaddingBottom = resolveLength(style.GetPaddingBottom(), "padding-bottom", cbInlineSize, 0)
	box.PaddingLeft = resolveLength(style.GetPaddingLeft(), "padding-left", cbInlineSize, 0)

	box.BorderTopWidth = style.GetBorderTopWidth().Value
	box.BorderRightWidth = style.GetBorderRightWidth().Value
	box.BorderBottomWidth = style.GetBorderBottomWidth().Value
	box.BorderLeftWidth = style.GetBorderLeftWidth().Value
}

// resolveMargin keeps auto margins, and maps percentages of
// an indefinite size to 0.
func resolveMargin(value pr.DimOrS, propertyName string, referTo pr.MaybeFloat) pr.MaybeFloat {
	if value.S == "auto" {
		return pr.AutoF
	}
	return resolveLength(value, propertyName, referTo, 0)
}

// usedSizes stores the used values of the sizing properties of a box,
// for its content box.
type usedSizes struct {
	width, height       pr.MaybeFloat // [pr.AutoF] if auto
	minWidth, minHeight pr.Float
	maxWidth, maxHeight pr.Float // [pr.Inf] for none
}

// resolveSizes resolves the width, height, min-* and max-* properties.
// Percentages refer to the content box of the containing block, and
// are ignored when its size is indefinite.
func resolveSizes(box *bo.Box, cbWidth, cbHeight pr.MaybeFloat) usedSizes {
	style := box.Style
	out := usedSizes{
		width:     resolveOnePercentage(style.GetWidth(), "width", cbWidth),
		height:    resolveOnePercentage(style.GetHeight(), "height", cbHeight),
		minWidth:  resolveLength(style.GetMinWidth(), "min-width", cbWidth, 0),
		minHeight: resolveLength(style.GetMinHeight(), "min-height", cbHeight, 0),
		maxWidth:  resolveLength(style.GetMaxWidth(), "max-width", cbWidth, pr.Inf),
		maxHeight: resolveLength(style.GetMaxHeight(), "max-height", cbHeight, pr.Inf),
	}
	if out.width == nil {
		out.width = pr.AutoF
	}
	if out.height == nil {
		out.height = pr.AutoF
	}
	return out
}

// min returns min-width or min-height.
func (s usedSizes) min(horizontal bool) pr.Float {
	if horizontal {
		return s.minWidth
	}
	return s.minHeight
}

// max returns max-width or max-height.
func (s usedSizes) max(horizontal bool) pr.Float {
	if horizontal {
		return s.maxWidth
	}
	return s.maxHeight
}

// size returns width or height.
func (s usedSizes) size(horizontal bool) pr.MaybeFloat {
	if horizontal {
		return s.width
	}
	return s.height
}

// clamp applies the min and max constraints, min winning over max.
func (s usedSizes) clamp(v pr.Float, horizontal bool) pr.Float {
	return pr.Max(s.min(horizontal), pr.Min(v, s.max(horizontal)))
}
