package tree

import (
	"errors"
	"strings"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/text/unicode/bidi"

	"github.com/benoitkugler/gridlayout/css/parser"
	pr "github.com/benoitkugler/gridlayout/css/properties"
	"github.com/benoitkugler/gridlayout/css/validation"
	"github.com/benoitkugler/gridlayout/logger"
)

// uaDisplay is the display of the elements in the user agent
// style sheet. Other elements are inline.
var uaDisplay = map[string]string{
	"html": "block", "body": "block", "div": "block", "section": "block",
	"main": "block", "article": "block", "header": "block", "footer": "block",
	"nav": "block", "aside": "block", "p": "block", "ul": "block", "ol": "block",
	"li": "block", "h1": "block", "h2": "block", "h3": "block", "h4": "block",
	"h5": "block", "h6": "block", "form": "block", "figure": "block",

	"head": "none", "script": "none", "style": "none", "title": "none",
	"meta": "none", "link": "none", "template": "none",
}

// precedence of a declaration in the cascade
type precedence uint8

const (
	uaOrigin precedence = iota + 1
	authorOrigin
	authorImportant
)

type weightedValue struct {
	value  pr.DeclaredValue
	weight precedence
}

type cascadedStyle map[pr.KnownProp]weightedValue

func (cs cascadedStyle) add(decl validation.Declaration, weight precedence) {
	if decl.Important {
		weight = authorImportant
	}
	if old, has := cs[decl.Name]; has && old.weight > weight {
		return
	}
	cs[decl.Name] = weightedValue{value: decl.Value, weight: weight}
}

func cascade(element *Element) cascadedStyle {
	out := cascadedStyle{}
	if display, ok := uaDisplay[element.Tag]; ok {
		out.add(validation.Declaration{Name: pr.PDisplay, Value: pr.String(display)}, uaOrigin)
	}
	if dir := directionFromAttribute(element); dir != "" {
		out.add(validation.Declaration{Name: pr.PDirection, Value: pr.String(dir)}, uaOrigin)
	}
	if style := element.Get("style"); style != "" {
		for _, decl := range parseStyleAttribute(element, style) {
			out.add(decl, authorOrigin)
		}
	}
	return out
}

// parseStyleAttribute logs invalid declarations and returns the valid ones.
func parseStyleAttribute(element *Element, style string) []validation.Declaration {
	declarations, errs := parser.ParseDeclarationListString(style)
	for _, err := range errs {
		logger.WarningLogger.Printf("<%s>: %s", element.Tag, err)
	}
	out, err := validation.PreprocessDeclarations(declarations)
	var merr *multierror.Error
	if errors.As(err, &merr) {
		for _, err := range merr.Errors {
			logger.WarningLogger.Printf("<%s>: %s", element.Tag, err)
		}
	} else if err != nil {
		logger.WarningLogger.Printf("<%s>: %s", element.Tag, err)
	}
	return out
}

// directionFromAttribute returns the direction given by the "dir" attribute,
// or an empty string.
func directionFromAttribute(element *Element) string {
	switch strings.ToLower(strings.TrimSpace(element.Get("dir"))) {
	case "ltr":
		return "ltr"
	case "rtl":
		return "rtl"
	case "auto":
		return firstStrongDirection(element.Text())
	default:
		return ""
	}
}

// firstStrongDirection implements the "dir=auto" heuristic :
// the first character with a strong bidi class wins, defaulting to ltr.
func firstStrongDirection(text string) string {
	for _, r := range text {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return "ltr"
		case bidi.R, bidi.AL:
			return "rtl"
		}
	}
	return "ltr"
}

// computeStyle resolves the cascade, the inheritance and the
// computed values for `element`. `parentStyle` is nil for the root.
func computeStyle(element *Element, parentStyle pr.Properties) pr.Properties {
	cascaded := cascade(element)

	style := make(pr.Properties, len(pr.InitialValues))
	for prop, initial := range pr.InitialValues {
		value := initial
		cv, isCascaded := cascaded[prop]
		inherit := (!isCascaded && prop.IsInherited()) || (isCascaded && cv.value == pr.Inherit)
		if inherit {
			if parentStyle != nil {
				value = parentStyle[prop]
			}
		} else if isCascaded {
			if v, ok := cv.value.(pr.CssProperty); ok {
				value = v
			}
		}
		style[prop] = value
	}

	computer := computer{element: element, specified: style, parentStyle: parentStyle}
	for prop, fn := range computerFunctions {
		style[prop] = fn(computer, prop, style[prop])
	}
	return style
}
