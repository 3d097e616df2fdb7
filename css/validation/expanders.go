package validation

import (
	"fmt"
	"strings"

	pa "github.com/benoitkugler/gridlayout/css/parser"
	pr "github.com/benoitkugler/gridlayout/css/properties"
	"github.com/benoitkugler/gridlayout/utils"
)

type expander func(name string, tokens []Token) ([]Declaration, error)

var expanders = map[string]expander{
	"margin":        expandFourSides,
	"padding":       expandFourSides,
	"border-width":  expandFourSides,
	"gap":           genericExpander("row-gap", "column-gap")(_expandGap),
	"grid-column":   genericExpander("-start", "-end")(_expandGridColumnRow),
	"grid-row":      genericExpander("-start", "-end")(_expandGridColumnRow),
	"grid-area":     genericExpander("grid-row-start", "grid-column-start", "grid-row-end", "grid-column-end")(_expandGridArea),
	"grid-template": genericExpander("-columns", "-rows", "-areas")(_expandGridTemplate),
	"grid":          genericExpander("-template-columns", "-template-rows", "-template-areas", "-auto-columns", "-auto-rows", "-auto-flow")(_expandGrid),
	"place-content": genericExpander("align-content", "justify-content")(expandPlace(alignContent, justifyContent)),
	"place-items":   genericExpander("align-items", "justify-items")(expandPlace(alignItems, justifyItems)),
	"place-self":    genericExpander("align-self", "justify-self")(expandPlace(alignSelf, justifySelf)),
}

type namedTokens struct {
	name   string
	tokens []Token
}

type beforeGeneric = func(name string, tokens []Token) ([]namedTokens, error)

// Decorator helping expanders to handle 'inherit' and 'initial'.
// Wrap an expander so that it does not have to handle the 'inherit' and
// 'initial' cases, and can just yield name suffixes. Missing suffixes
// get the initial value.
func genericExpander(expandedNames ...string) func(beforeGeneric) expander {
	_expandedNames := utils.NewSet(expandedNames...)
	return func(wrapped beforeGeneric) expander {
		return func(shorthand string, tokens []Token) (out []Declaration, err error) {
			results := map[string]pr.DeclaredValue{}
			keyword := getSingleKeyword(tokens)
			skipValidation := keyword == "inherit" || keyword == "initial"
			raw := map[string][]Token{}
			if skipValidation {
				val := pr.NewDefaultValue(keyword)
				for _, name := range expandedNames {
					results[name] = val
				}
			} else {
				result, err := wrapped(shorthand, tokens)
				if err != nil {
					return nil, err
				}
				for _, nameToken := range result {
					newName := nameToken.name
					if !_expandedNames.Has(newName) {
						return nil, fmt.Errorf("unknown expanded property %s", newName)
					}
					if _, isIn := raw[newName]; isIn {
						return nil, fmt.Errorf("got multiple %s values in a %s shorthand",
							strings.Trim(newName, "-"), shorthand)
					}
					raw[newName] = nameToken.tokens
				}
			}

			for _, newName := range expandedNames {
				actualNewName := newName
				if strings.HasPrefix(newName, "-") {
					// newName is a suffix
					actualNewName = shorthand + newName
				}

				var decl Declaration
				if value, ok := results[newName]; ok {
					decl = Declaration{Name: pr.PropsFromNames[actualNewName], Value: value}
				} else if tokens, ok := raw[newName]; ok {
					decl, err = validateNonShorthand(actualNewName, tokens, true)
					if err != nil {
						return nil, fmt.Errorf("validating %s: %s", actualNewName, err)
					}
				} else {
					decl = Declaration{Name: pr.PropsFromNames[actualNewName], Value: pr.Initial}
				}
				out = append(out, decl)
			}
			return out, nil
		}
	}
}

// Expand properties setting a token for the four sides of a box.
// "border-width", "margin", "padding"
func expandFourSides(name string, tokens []Token) (out []Declaration, err error) {
	// Define expanded names
	indexM := strings.LastIndex(name, "-")
	var expandedNames [4]string
	for i, suffix := range [4]string{"-top", "-right", "-bottom", "-left"} {
		if indexM == -1 {
			expandedNames[i] = name + suffix
		} else {
			// eg. border-width becomes border-*-width, not border-width-*
			expandedNames[i] = name[:indexM] + suffix + name[indexM:]
		}
	}

	// Make sure we have 4 tokens
	if len(tokens) == 1 {
		tokens = []Token{tokens[0], tokens[0], tokens[0], tokens[0]}
	} else if len(tokens) == 2 {
		tokens = []Token{tokens[0], tokens[1], tokens[0], tokens[1]} // (bottom, left) defaults to (top, right)
	} else if len(tokens) == 3 {
		tokens = append(tokens, tokens[1]) // left defaults to right
	} else if len(tokens) != 4 {
		return out, fmt.Errorf("expected 1 to 4 token components got %d", len(tokens))
	}

	for index, expandedName := range expandedNames {
		decl, err := validateNonShorthand(expandedName, []Token{tokens[index]}, true)
		if err != nil {
			return nil, err
		}
		out = append(out, decl)
	}
	return out, nil
}

// Expand the “gap“ property.
func _expandGap(_ string, tokens []Token) ([]namedTokens, error) {
	switch len(tokens) {
	case 1:
		return []namedTokens{{"row-gap", tokens}, {"column-gap", tokens}}, nil
	case 2:
		return []namedTokens{{"row-gap", tokens[:1]}, {"column-gap", tokens[1:]}}, nil
	}
	return nil, ErrInvalidValue
}

// expandPlace returns the expander for the "place-*" properties,
// whose first value is the align-* one.
// A single value applies to both, except when the justify-* property rejects it,
// in which case it falls back to "start".
func expandPlace(alignV, justifyV validator) beforeGeneric {
	return func(name string, tokens []Token) ([]namedTokens, error) {
		suffix := strings.TrimPrefix(name, "place-")
		alignName, justifyName := "align-"+suffix, "justify-"+suffix
		if alignV(tokens) != nil {
			justify := tokens
			if justifyV(tokens) == nil {
				justify = []Token{pa.Ident{Pos: tokens[0].Position(), Value: "start"}}
			}
			return []namedTokens{{alignName, tokens}, {justifyName, justify}}, nil
		}
		for i := 1; i < len(tokens); i++ {
			if alignV(tokens[:i]) != nil && justifyV(tokens[i:]) != nil {
				return []namedTokens{{alignName, tokens[:i]}, {justifyName, tokens[i:]}}, nil
			}
		}
		return nil, ErrInvalidValue
	}
}

func hasAutoRepeat(template pr.GridTemplate) bool {
	for _, spec := range template.Names {
		if repeat, ok := spec.(pr.GridRepeat); ok && repeat.Repeat < 0 {
			return true
		}
	}
	return false
}

func expandGridTemplateImpl(tokens []Token) ([]namedTokens, error) {
	pos := tokens[0].Position()
	none := pa.Ident{Pos: pos, Value: "none"}
	auto := pa.Ident{Pos: pos, Value: "auto"}
	if len(tokens) == 1 && getKeyword(tokens[0]) == "none" {
		return []namedTokens{{"-columns", []Token{none}}, {"-rows", []Token{none}}, {"-areas", []Token{none}}}, nil
	}
	chunks := pa.SplitOnLiteral(tokens, "/")
	columns := []Token{none}
	switch len(chunks) {
	case 2:
		_, okR := parseTrackList(chunks[0])
		columnsTemplate, okC := parseTrackList(chunks[1])
		if !okC {
			return nil, ErrInvalidValue
		}
		if okR {
			return []namedTokens{{"-columns", chunks[1]}, {"-rows", chunks[0]}, {"-areas", []Token{none}}}, nil
		}
		if hasAutoRepeat(columnsTemplate) {
			return nil, ErrInvalidValue
		}
		columns = chunks[1]
	case 1:
	default:
		return nil, ErrInvalidValue
	}

	// [ <line-names>? <string> <track-size>? <line-names>? ]+
	var (
		rows, areas []Token
		names       []Token // pending line names, merged
		rowOpen     bool    // a string without track size yet
	)
	flushNames := func() {
		if len(names) != 0 {
			rows = append(rows, pa.SquareBracketsBlock{Pos: pos, Arguments: names})
			names = nil
		}
	}
	for _, token := range chunks[0] {
		switch token := token.(type) {
		case pa.String:
			if rowOpen {
				rows = append(rows, auto)
			}
			flushNames()
			areas = append(areas, token)
			rowOpen = true
		case pa.SquareBracketsBlock:
			if parseLineNames(token) == nil {
				return nil, ErrInvalidValue
			}
			if rowOpen {
				rows = append(rows, auto)
				rowOpen = false
			}
			if len(names) != 0 {
				names = append(names, pa.Whitespace{Pos: pos, Value: " "})
			}
			names = append(names, token.Arguments...)
		default:
			if !rowOpen || parseTrackSize(token).IsNone() {
				return nil, ErrInvalidValue
			}
			rows = append(rows, token)
			rowOpen = false
		}
	}
	if rowOpen {
		rows = append(rows, auto)
	}
	flushNames()
	if len(areas) == 0 {
		return nil, ErrInvalidValue
	}
	return []namedTokens{{"-columns", columns}, {"-rows", rows}, {"-areas", areas}}, nil
}

// Expand the “grid-template“ property.
func _expandGridTemplate(_ string, tokens []Token) ([]namedTokens, error) {
	return expandGridTemplateImpl(tokens)
}

// Expand the “grid“ property.
func _expandGrid(_ string, tokens []Token) (out []namedTokens, _ error) {
	pos := tokens[0].Position()
	auto := pa.Ident{Pos: pos, Value: "auto"}
	none := pa.Ident{Pos: pos, Value: "none"}
	row := pa.Ident{Pos: pos, Value: "row"}
	column := pa.Ident{Pos: pos, Value: "column"}

	template, err := expandGridTemplateImpl(tokens)
	if err == nil {
		for _, value := range template {
			l := strings.Split(value.name, "-")
			out = append(out, namedTokens{name: "-template-" + l[len(l)-1], tokens: value.tokens})
		}
		out = append(out, namedTokens{"-auto-columns", []Token{auto}}, namedTokens{"-auto-rows", []Token{auto}}, namedTokens{"-auto-flow", []Token{row}})
		return out, nil
	}

	chunks := pa.SplitOnLiteral(tokens, "/")
	if len(chunks) != 2 {
		return nil, ErrInvalidValue
	}

	var (
		autoTrack  = -1
		denseTrack = -1
		dense      Token
		templates [2][]Token // "row", "column"
	)
	const (
		rowT    = 0
		columnT = 1
	)
	for track, tokens := range chunks {
		for _, token := range tokens {
			if getKeyword(token) == "dense" {
				if dense != nil || (autoTrack != -1 && autoTrack != track) {
					return nil, ErrInvalidValue
				}
				dense, denseTrack = token, track
			} else if getKeyword(token) == "auto-flow" {
				if autoTrack != -1 {
					return nil, ErrInvalidValue
				}
				autoTrack = track
			} else {
				templates[track] = append(templates[track], token)
			}
		}
	}
	if autoTrack == -1 || (dense != nil && denseTrack != autoTrack) {
		return nil, ErrInvalidValue
	}

	nonAutoTrack := columnT
	autoTrackToken := row
	if autoTrack == columnT {
		nonAutoTrack = rowT
		autoTrackToken = column
	}

	val := []Token{autoTrackToken}
	if dense != nil {
		val = []Token{autoTrackToken, dense}
	}
	autoTracks := templates[autoTrack]
	if len(autoTracks) == 0 {
		autoTracks = []Token{auto}
	}

	names := [2]string{rowT: "row", columnT: "column"}
	return []namedTokens{
		{"-auto-flow", val},
		{fmt.Sprintf("-auto-%ss", names[autoTrack]), autoTracks},
		{fmt.Sprintf("-auto-%ss", names[nonAutoTrack]), []Token{auto}},
		{fmt.Sprintf("-template-%ss", names[autoTrack]), []Token{none}},
		{fmt.Sprintf("-template-%ss", names[nonAutoTrack]), templates[nonAutoTrack]},
		{"-template-areas", []Token{none}},
	}, nil
}

// expandGridColumnRowArea splits `tokens` on '/' and completes
// the missing lines : a custom ident is copied, other values
// default to auto.
func expandGridColumnRowArea(tokens []Token, maxNumber int) (out [][]Token, _ error) {
	gridLines := pa.SplitOnLiteral(tokens, "/")
	if !(1 <= len(gridLines) && len(gridLines) <= maxNumber) {
		return nil, ErrInvalidValue
	}
	var validations []pr.GridLine
	for _, tokens := range gridLines {
		validation, ok := parseGridLine(tokens)
		if !ok {
			return nil, ErrInvalidValue
		}
		validations = append(validations, validation)
		out = append(out, tokens)
	}
	auto := []Token{pa.Ident{Pos: tokens[0].Position(), Value: "auto"}}
	// the omitted value at index i copies the value at index i - 2
	// (i - 1 for grid-row and grid-column)
	step := 2
	if maxNumber == 2 {
		step = 1
	}
	for i := len(gridLines); i < maxNumber; i++ {
		ref := i - step
		if ref < 0 {
			ref = 0
		}
		if validations[ref].IsCustomIdent() {
			out = append(out, out[ref])
			validations = append(validations, validations[ref])
		} else {
			out = append(out, auto)
			validations = append(validations, pr.GridLine{Tag: pr.Auto})
		}
	}
	return out, nil
}

// Expand the “grid-[column|row]“ properties.
func _expandGridColumnRow(_ string, tokens []Token) (out []namedTokens, _ error) {
	tokensList, err := expandGridColumnRowArea(tokens, 2)
	if err != nil {
		return nil, err
	}
	sides := [2]string{"-start", "-end"}
	for index, tokens := range tokensList {
		out = append(out, namedTokens{name: sides[index], tokens: tokens})
	}
	return out, nil
}

// Expand the “grid-area“ property.
func _expandGridArea(_ string, tokens []Token) (out []namedTokens, _ error) {
	tokensList, err := expandGridColumnRowArea(tokens, 4)
	if err != nil {
		return nil, err
	}
	sides := [4]string{"row-start", "column-start", "row-end", "column-end"}
	for index, tokens := range tokensList {
		out = append(out, namedTokens{name: "grid-" + sides[index], tokens: tokens})
	}
	return out, nil
}
