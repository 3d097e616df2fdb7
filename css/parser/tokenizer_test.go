package parser

import (
	"testing"

	tu "github.com/benoitkugler/gridlayout/utils/testutils"
)

func TestTokenizeGridValues(t *testing.T) {
	tokens := RemoveWhitespace(TokenizeString("[a b] 100px repeat(auto-fill, minmax(10%, 1fr)) / span 2"))
	tu.AssertEqual(t, len(tokens), 6)

	names, ok := tokens[0].(SquareBracketsBlock)
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, Serialize(names.Arguments), "a b")

	dim := tokens[1].(Dimension)
	tu.AssertEqual(t, dim.ValueF, float32(100))
	tu.AssertEqual(t, dim.Unit, "px")

	name, args := ParseFunction(tokens[2])
	tu.AssertEqual(t, name, "repeat")
	tu.AssertEqual(t, len(args), 2)
	tu.AssertEqual(t, args[0].(Ident).Value, "auto-fill")
	inner, innerArgs := ParseFunction(args[1])
	tu.AssertEqual(t, inner, "minmax")
	tu.AssertEqual(t, innerArgs[0].(Percentage).ValueF, float32(10))
	tu.AssertEqual(t, innerArgs[1].(Dimension).Unit, "fr")

	tu.AssertEqual(t, tokens[3].(Literal).Value, "/")
	tu.AssertEqual(t, tokens[4].(Ident).Value, "span")
	n := tokens[5].(Number)
	tu.AssertEqual(t, n.IsInt(), true)
	tu.AssertEqual(t, n.Int(), 2)
}

func TestTokenizeStringsAndComments(t *testing.T) {
	tokens := RemoveWhitespace(TokenizeString(`"a b" /* skipped */ 'c\2e d' -1.5`))
	tu.AssertEqual(t, len(tokens), 3)
	tu.AssertEqual(t, tokens[0].(String).Value, "a b")
	tu.AssertEqual(t, tokens[1].(String).Value, "c.d")
	n := tokens[2].(Number)
	tu.AssertEqual(t, n.ValueF, float32(-1.5))
	tu.AssertEqual(t, n.IsInt(), false)
}

func TestTokenizeErrors(t *testing.T) {
	tokens := TokenizeString("a ] \"b\nc")
	var errs int
	for _, tok := range tokens {
		if _, ok := tok.(ParseError); ok {
			errs++
		}
	}
	tu.AssertEqual(t, errs, 2)
}

func TestTokenPositions(t *testing.T) {
	tokens := TokenizeString("a\n  bb")
	tu.AssertEqual(t, tokens[0].Position(), Pos{Line: 1, Column: 1})
	tu.AssertEqual(t, tokens[2].Position(), Pos{Line: 2, Column: 3})
}

func TestSplitOnLiteral(t *testing.T) {
	parts := SplitOnLiteral(TokenizeString("1 / -1"), "/")
	tu.AssertEqual(t, len(parts), 2)
	tu.AssertEqual(t, Serialize(RemoveWhitespace(parts[1])), "-1")
}

func TestDeclarationList(t *testing.T) {
	decls, errs := ParseDeclarationListString("display: grid; Grid-Row: 1 / 3 !important;; 12: x; gap 2px")
	tu.AssertEqual(t, len(decls), 2)
	tu.AssertEqual(t, len(errs), 2)

	tu.AssertEqual(t, decls[0].Name, "display")
	tu.AssertEqual(t, Serialize(decls[0].Value), "grid")
	tu.AssertEqual(t, decls[0].Important, false)

	tu.AssertEqual(t, decls[1].Name, "grid-row")
	tu.AssertEqual(t, Serialize(decls[1].Value), "1 / 3")
	tu.AssertEqual(t, decls[1].Important, true)
}
