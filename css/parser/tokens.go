package parser

import (
	"fmt"
	"strings"

	"github.com/benoitkugler/gridlayout/utils"
)

// Pos locates a token in its source, 1-based.
type Pos struct {
	Line, Column int
}

func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

// Token is one CSS component value.
// Blocks and functions hold their nested tokens.
type Token interface {
	Position() Pos
	isToken()
}

type (
	Whitespace struct {
		Pos
		Value string
	}
	Ident struct {
		Pos
		Value string
	}
	// Number is a bare number, like in `span 2`.
	Number struct {
		Pos
		Representation string
		ValueF         utils.Fl
		IsInteger      bool
	}
	Percentage struct {
		Number
	}
	Dimension struct {
		Number
		Unit string // lower case
	}
	String struct {
		Pos
		Value string
	}
	// Literal is a single delimiter, like ':', ';', ',' or '/'.
	Literal struct {
		Pos
		Value string
	}
	FunctionBlock struct {
		Pos
		Name      string // lower case
		Arguments []Token
	}
	SquareBracketsBlock struct {
		Pos
		Arguments []Token
	}
	ParenthesesBlock struct {
		Pos
		Arguments []Token
	}
	// ParseError is emitted in place of invalid input.
	ParseError struct {
		Pos
		Message string
	}
)

func (t Whitespace) Position() Pos          { return t.Pos }
func (t Ident) Position() Pos               { return t.Pos }
func (t Number) Position() Pos              { return t.Pos }
func (t String) Position() Pos              { return t.Pos }
func (t Literal) Position() Pos             { return t.Pos }
func (t FunctionBlock) Position() Pos       { return t.Pos }
func (t SquareBracketsBlock) Position() Pos { return t.Pos }
func (t ParenthesesBlock) Position() Pos    { return t.Pos }
func (t ParseError) Position() Pos          { return t.Pos }

func (Whitespace) isToken()          {}
func (Ident) isToken()               {}
func (Number) isToken()              {}
func (Percentage) isToken()          {}
func (Dimension) isToken()           {}
func (String) isToken()              {}
func (Literal) isToken()             {}
func (FunctionBlock) isToken()       {}
func (SquareBracketsBlock) isToken() {}
func (ParenthesesBlock) isToken()    {}
func (ParseError) isToken()          {}

func (e ParseError) Error() string { return fmt.Sprintf("%s: %s", e.Pos, e.Message) }

// Int returns the integer value of an integer number.
func (n Number) Int() int { return int(n.ValueF) }

// IsInt returns true for integer numbers, including "2.0".
func (n Number) IsInt() bool {
	return n.IsInteger || n.ValueF == utils.Fl(int(n.ValueF))
}

// RemoveWhitespace returns the tokens without the whitespaces
// (top level only).
func RemoveWhitespace(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if _, isWs := t.(Whitespace); !isWs {
			out = append(out, t)
		}
	}
	return out
}

// SplitOnLiteral splits tokens on the top level [Literal] `sep`,
// like `/` in `grid-row: 1 / 3`.
func SplitOnLiteral(tokens []Token, sep string) [][]Token {
	out := [][]Token{nil}
	for _, t := range tokens {
		if lit, ok := t.(Literal); ok && lit.Value == sep {
			out = append(out, nil)
			continue
		}
		out[len(out)-1] = append(out[len(out)-1], t)
	}
	return out
}

// ParseFunction returns the name and arguments of a function token.
// Arguments separated by commas or whitespace are flattened.
// An empty name is returned if the token is not a function or
// has invalid arguments.
func ParseFunction(token Token) (string, []Token) {
	fn, ok := token.(FunctionBlock)
	if !ok {
		return "", nil
	}
	var args []Token
	for _, arg := range fn.Arguments {
		switch arg := arg.(type) {
		case Whitespace:
			continue
		case Literal:
			if arg.Value != "," {
				return "", nil
			}
		default:
			args = append(args, arg)
		}
	}
	return fn.Name, args
}

// Serialize returns a CSS string for the tokens, used in error messages.
func Serialize(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		serializeOne(&b, t)
	}
	return b.String()
}

func serializeOne(b *strings.Builder, t Token) {
	switch t := t.(type) {
	case Whitespace:
		b.WriteString(" ")
	case Ident:
		b.WriteString(t.Value)
	case Number:
		b.WriteString(t.Representation)
	case Percentage:
		b.WriteString(t.Representation + "%")
	case Dimension:
		b.WriteString(t.Representation + t.Unit)
	case String:
		fmt.Fprintf(b, "%q", t.Value)
	case Literal:
		b.WriteString(t.Value)
	case FunctionBlock:
		b.WriteString(t.Name + "(")
		b.WriteString(Serialize(t.Arguments))
		b.WriteString(")")
	case SquareBracketsBlock:
		b.WriteString("[" + Serialize(t.Arguments) + "]")
	case ParenthesesBlock:
		b.WriteString("(" + Serialize(t.Arguments) + ")")
	case ParseError:
		b.WriteString("<error>")
	}
}
