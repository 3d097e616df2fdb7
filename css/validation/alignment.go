package validation

import (
	pr "github.com/benoitkugler/gridlayout/css/properties"
	"github.com/benoitkugler/gridlayout/utils"
)

// Box alignment properties, see https://www.w3.org/TR/css-align-3/

// matchAlignment accepts a single keyword from `positions` (or from `extra`),
// an overflow position followed by a keyword from `positions`,
// or a baseline position when `baseline` is true.
// Single "baseline" is normalized to "first baseline".
func matchAlignment(tokens []Token, positions, extra []string, baseline bool) pr.CssProperty {
	if len(tokens) == 1 {
		keyword := getKeyword(tokens[0])
		if utils.IsIn(positions, keyword) || utils.IsIn(extra, keyword) {
			return pr.Strings{keyword}
		}
		if baseline && keyword == "baseline" {
			return pr.Strings{"first", keyword}
		}
	} else if len(tokens) == 2 {
		kw1, kw2 := getKeyword(tokens[0]), getKeyword(tokens[1])
		if kw1 == "safe" || kw1 == "unsafe" {
			if utils.IsIn(positions, kw2) {
				return pr.Strings{kw1, kw2}
			}
		} else if baseline && kw1 == "baseline" {
			if kw2 == "first" || kw2 == "last" {
				return pr.Strings{kw2, kw1}
			}
		} else if baseline && kw2 == "baseline" {
			if kw1 == "first" || kw1 == "last" {
				return pr.Strings{kw1, kw2}
			}
		}
	}
	return nil
}

var (
	contentDistributions = []string{"space-between", "space-around", "space-evenly", "stretch", "normal"}
	contentPositions     = []string{"center", "start", "end", "flex-start", "flex-end"}
	selfPositions        = []string{"center", "start", "end", "self-start", "self-end", "flex-start", "flex-end"}
	leftRight            = []string{"left", "right"}
)

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// “justify-content“ property validation.
func justifyContent(tokens []Token) pr.CssProperty {
	return matchAlignment(tokens, concat(contentPositions, leftRight), contentDistributions, false)
}

// “align-content“ property validation.
func alignContent(tokens []Token) pr.CssProperty {
	return matchAlignment(tokens, contentPositions, contentDistributions, true)
}

// “justify-items“ property validation.
func justifyItems(tokens []Token) pr.CssProperty {
	if v := matchAlignment(tokens, concat(selfPositions, leftRight), []string{"normal", "stretch", "legacy"}, true); v != nil {
		return v
	}
	if len(tokens) == 2 {
		kw1, kw2 := getKeyword(tokens[0]), getKeyword(tokens[1])
		if kw1 == "legacy" {
			if kw2 == "left" || kw2 == "right" || kw2 == "center" {
				return pr.Strings{kw1, kw2}
			}
		} else if kw2 == "legacy" {
			if kw1 == "left" || kw1 == "right" || kw1 == "center" {
				return pr.Strings{kw2, kw1}
			}
		}
	}
	return nil
}

// “justify-self“ property validation.
func justifySelf(tokens []Token) pr.CssProperty {
	return matchAlignment(tokens, concat(selfPositions, leftRight), []string{"auto", "normal", "stretch"}, true)
}

// “align-items“ property validation.
func alignItems(tokens []Token) pr.CssProperty {
	return matchAlignment(tokens, selfPositions, []string{"normal", "stretch"}, true)
}

// “align-self“ property validation.
func alignSelf(tokens []Token) pr.CssProperty {
	return matchAlignment(tokens, selfPositions, []string{"auto", "normal", "stretch"}, true)
}
