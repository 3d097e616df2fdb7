package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	pa "github.com/benoitkugler/gridlayout/css/parser"
	pr "github.com/benoitkugler/gridlayout/css/properties"
	"github.com/benoitkugler/gridlayout/utils"
)

// Expand shorthands and validate property values.
// See http://www.w3.org/TR/CSS21/propidx.html and various CSS3 modules.

type Token = pa.Token

var (
	ErrInvalidValue = errors.New("invalid or unsupported values for a known CSS property")

	LENGTHUNITS = map[string]pr.Unit{"ex": pr.Ex, "em": pr.Em, "ch": pr.Ch, "rem": pr.Rem, "px": pr.Px, "pt": pr.Pt, "pc": pr.Pc, "in": pr.In, "cm": pr.Cm, "mm": pr.Mm, "q": pr.Q}

	borderWidthKeywords = map[string]pr.Fl{"thin": 1, "medium": 3, "thick": 5}

	// yes/no validators for non-shorthand properties
	// Maps property names to functions taking a value list,
	// returning a value or nil for invalid.
	validators = [...]validator{
		pr.PDisplay:     display,
		pr.PPosition:    position,
		pr.PDirection:   direction,
		pr.PWritingMode: writingMode,
		pr.POrder:       order,

		pr.PTop:    lengthPercOrAuto,
		pr.PRight:  lengthPercOrAuto,
		pr.PBottom: lengthPercOrAuto,
		pr.PLeft:   lengthPercOrAuto,

		pr.PMarginTop:    lengthPercOrAuto,
		pr.PMarginRight:  lengthPercOrAuto,
		pr.PMarginBottom: lengthPercOrAuto,
		pr.PMarginLeft:   lengthPercOrAuto,

		pr.PPaddingTop:    padding,
		pr.PPaddingRight:  padding,
		pr.PPaddingBottom: padding,
		pr.PPaddingLeft:   padding,

		pr.PBorderTopWidth:    borderWidth,
		pr.PBorderRightWidth:  borderWidth,
		pr.PBorderBottomWidth: borderWidth,
		pr.PBorderLeftWidth:   borderWidth,

		pr.PWidth:     width,
		pr.PHeight:    width,
		pr.PMinWidth:  minWidth,
		pr.PMinHeight: minWidth,
		pr.PMaxWidth:  maxWidth,
		pr.PMaxHeight: maxWidth,

		pr.PGridTemplateColumns: gridTemplate,
		pr.PGridTemplateRows:    gridTemplate,
		pr.PGridTemplateAreas:   gridTemplateAreas,
		pr.PGridAutoColumns:     gridAuto,
		pr.PGridAutoRows:        gridAuto,
		pr.PGridAutoFlow:        gridAutoFlow,
		pr.PGridRowStart:        gridLine,
		pr.PGridRowEnd:          gridLine,
		pr.PGridColumnStart:     gridLine,
		pr.PGridColumnEnd:       gridLine,
		pr.PRowGap:              gap,
		pr.PColumnGap:           gap,

		pr.PJustifyContent: justifyContent,
		pr.PJustifyItems:   justifyItems,
		pr.PJustifySelf:    justifySelf,
		pr.PAlignContent:   alignContent,
		pr.PAlignItems:     alignItems,
		pr.PAlignSelf:      alignSelf,
	}
)

type validator func(tokens []Token) pr.CssProperty

// Declaration is a validated CSS property.
type Declaration struct {
	Name      pr.KnownProp
	Value     pr.DeclaredValue
	Important bool
}

// ValidateKnown validates `tokens` for the given non shorthand property.
// It returns nil if the value is invalid.
func ValidateKnown(name pr.KnownProp, tokens []Token) pr.CssProperty {
	if int(name) >= len(validators) || validators[name] == nil {
		return nil
	}
	return validators[name](tokens)
}

// Default validator for non-shorthand properties.
// If `required` is false, unknown names are reported with a specific error.
func validateNonShorthand(name string, tokens []Token, required bool) (Declaration, error) {
	prop, isKnown := pr.PropsFromNames[name]
	if !isKnown {
		if required {
			return Declaration{}, fmt.Errorf("invalid expanded property %s", name)
		}
		return Declaration{}, errors.New("unknown property")
	}

	var value pr.DeclaredValue
	keyword := getSingleKeyword(tokens)
	if keyword == "initial" || keyword == "inherit" {
		value = pr.NewDefaultValue(keyword)
	} else {
		v := ValidateKnown(prop, tokens)
		if v == nil {
			return Declaration{}, ErrInvalidValue
		}
		value = v
	}

	return Declaration{Name: prop, Value: value}, nil
}

// PreprocessDeclarations filters unsupported properties or parsing errors,
// and expands shortand properties.
//
// Invalid declarations are skipped, and reported in the returned error,
// which aggregates every failure.
func PreprocessDeclarations(declarations []pa.Declaration) ([]Declaration, error) {
	var (
		out  []Declaration
		errs *multierror.Error
	)
	for _, declaration := range declarations {
		name := utils.AsciiLower(declaration.Name)

		validationError := func(reason string) {
			errs = multierror.Append(errs, fmt.Errorf("ignored `%s: %s` (%s), %s",
				declaration.Name, pa.Serialize(declaration.Value), declaration.Pos, reason))
		}

		if strings.HasPrefix(name, "-") {
			validationError("prefixed properties are ignored")
			continue
		}

		tokens := pa.RemoveWhitespace(declaration.Value)

		// Having no tokens is allowed by grammar but refused by all
		// properties and expanders.
		if len(tokens) == 0 {
			validationError("no value")
			continue
		}

		var (
			result []Declaration
			err    error
		)
		if expand := expanders[name]; expand != nil {
			result, err = expand(name, tokens)
		} else {
			var r Declaration
			r, err = validateNonShorthand(name, tokens, false)
			result = append(result, r)
		}
		if err != nil {
			validationError(err.Error())
			continue
		}

		for _, decl := range result {
			decl.Important = declaration.Important
			out = append(out, decl)
		}
	}
	return out, errs.ErrorOrNil()
}

// If `token` is [pa.Ident], return its lower name.
// Otherwise return empty string.
func getKeyword(token Token) string {
	if ident, ok := token.(pa.Ident); ok {
		return utils.AsciiLower(ident.Value)
	}
	return ""
}

// If `tokens` is a 1-element list of [pa.Ident], return its name.
// Otherwise return empty string.
func getSingleKeyword(tokens []Token) string {
	if len(tokens) == 1 {
		return getKeyword(tokens[0])
	}
	return ""
}

// getCustomIdent returns the case sensitive value of an identifier,
// or an empty string.
func getCustomIdent(token Token) string {
	if ident, ok := token.(pa.Ident); ok {
		return ident.Value
	}
	return ""
}

func getLength(token Token, negative, percentage bool) pr.Dimension {
	switch token := token.(type) {
	case pa.Percentage:
		if percentage && (negative || token.ValueF >= 0) {
			return pr.PercToD(token.ValueF)
		}
	case pa.Dimension:
		unit, isKnown := LENGTHUNITS[token.Unit]
		if isKnown && (negative || token.ValueF >= 0) {
			return pr.NewDim(pr.Float(token.ValueF), unit)
		}
	case pa.Number:
		if token.ValueF == 0 {
			return pr.NewDim(0, pr.Scalar)
		}
	}
	return pr.Dimension{}
}

func singleKeywordIn(tokens []Token, allowed ...string) pr.CssProperty {
	keyword := getSingleKeyword(tokens)
	if keyword != "" && utils.IsIn(allowed, keyword) {
		return pr.String(keyword)
	}
	return nil
}

// @validator()
// @singleKeyword
func display(tokens []Token) pr.CssProperty {
	return singleKeywordIn(tokens, "inline", "block", "inline-block", "flow-root",
		"grid", "inline-grid", "none")
}

// @validator()
// @singleKeyword
func position(tokens []Token) pr.CssProperty {
	return singleKeywordIn(tokens, "static", "relative", "absolute", "fixed")
}

// @validator()
// @singleKeyword
func direction(tokens []Token) pr.CssProperty {
	return singleKeywordIn(tokens, "ltr", "rtl")
}

// @validator()
// @singleKeyword
func writingMode(tokens []Token) pr.CssProperty {
	return singleKeywordIn(tokens, "horizontal-tb", "vertical-rl", "vertical-lr")
}

// @validator()
// @singleToken
func order(tokens []Token) pr.CssProperty {
	if len(tokens) != 1 {
		return nil
	}
	if number, ok := tokens[0].(pa.Number); ok && number.IsInt() {
		return pr.Int(number.Int())
	}
	return nil
}

// “margin-*“ and position offsets validation.
func lengthPercOrAuto(tokens []Token) pr.CssProperty {
	if len(tokens) != 1 {
		return nil
	}
	length := getLength(tokens[0], true, true)
	if !length.IsNone() {
		return length.ToValue()
	}
	if getKeyword(tokens[0]) == "auto" {
		return pr.SToV("auto")
	}
	return nil
}

// “padding-*“ validation.
func padding(tokens []Token) pr.CssProperty {
	if len(tokens) != 1 {
		return nil
	}
	length := getLength(tokens[0], false, true)
	if !length.IsNone() {
		return length.ToValue()
	}
	return nil
}

// “border-*-width“ validation.
func borderWidth(tokens []Token) pr.CssProperty {
	if len(tokens) != 1 {
		return nil
	}
	length := getLength(tokens[0], false, false)
	if !length.IsNone() {
		return length.ToValue()
	}
	if v, ok := borderWidthKeywords[getKeyword(tokens[0])]; ok {
		return pr.FToV(v)
	}
	return nil
}

// “width“ and “height“ validation.
func width(tokens []Token) pr.CssProperty {
	if len(tokens) != 1 {
		return nil
	}
	length := getLength(tokens[0], false, true)
	if !length.IsNone() {
		return length.ToValue()
	}
	if getKeyword(tokens[0]) == "auto" {
		return pr.SToV("auto")
	}
	return nil
}

// “min-width“ and “min-height“ validation.
func minWidth(tokens []Token) pr.CssProperty {
	return width(tokens)
}

// “max-width“ and “max-height“ validation.
func maxWidth(tokens []Token) pr.CssProperty {
	if len(tokens) != 1 {
		return nil
	}
	length := getLength(tokens[0], false, true)
	if !length.IsNone() {
		return length.ToValue()
	}
	if getKeyword(tokens[0]) == "none" {
		return pr.Dimension{Value: pr.Inf, Unit: pr.Px}.ToValue()
	}
	return nil
}

// Validation for the “column-gap“ and "row-gap" property.
func gap(tokens []Token) pr.CssProperty {
	if len(tokens) != 1 {
		return nil
	}
	token := tokens[0]
	length := getLength(token, false, true)
	if !length.IsNone() {
		return length.ToValue()
	}
	if getKeyword(token) == "normal" {
		return pr.SToV("normal")
	}
	return nil
}
