package parser

import (
	"fmt"

	"github.com/benoitkugler/gridlayout/utils"
)

// Declaration is a `name: value` pair, as found in a `style` attribute.
type Declaration struct {
	Pos
	Name      string // lower case
	Value     []Token
	Important bool
}

// ParseDeclarationListString parses the content of a `style` attribute.
// Invalid declarations are returned as errors and skipped.
func ParseDeclarationListString(css string) ([]Declaration, []error) {
	return ParseDeclarationList(TokenizeString(css))
}

// ParseDeclarationList splits `input` on top level semicolons
// and parses each chunk as a declaration.
func ParseDeclarationList(input []Token) ([]Declaration, []error) {
	var (
		decls []Declaration
		errs  []error
	)
	for _, chunk := range SplitOnLiteral(input, ";") {
		chunk = trimWhitespace(chunk)
		if len(chunk) == 0 {
			continue
		}
		decl, err := parseDeclaration(chunk)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		decls = append(decls, decl)
	}
	return decls, errs
}

func trimWhitespace(tokens []Token) []Token {
	for len(tokens) != 0 {
		if _, ok := tokens[0].(Whitespace); !ok {
			break
		}
		tokens = tokens[1:]
	}
	for len(tokens) != 0 {
		if _, ok := tokens[len(tokens)-1].(Whitespace); !ok {
			break
		}
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

// tokens is not empty and trimmed
func parseDeclaration(tokens []Token) (Declaration, error) {
	name, ok := tokens[0].(Ident)
	if !ok {
		return Declaration{}, ParseError{Pos: tokens[0].Position(),
			Message: fmt.Sprintf("expected <ident> for declaration name, got %s", Serialize(tokens[:1]))}
	}
	rest := trimWhitespace(tokens[1:])
	if len(rest) == 0 {
		return Declaration{}, ParseError{Pos: name.Pos, Message: "expected ':' after declaration name, got EOF"}
	}
	if colon, ok := rest[0].(Literal); !ok || colon.Value != ":" {
		return Declaration{}, ParseError{Pos: rest[0].Position(),
			Message: fmt.Sprintf("expected ':' after declaration name, got %s", Serialize(rest[:1]))}
	}
	value := trimWhitespace(rest[1:])

	important := false
	if L := len(value); L >= 2 {
		bang, isLit := value[L-2].(Literal)
		ident, isIdent := value[L-1].(Ident)
		if isLit && bang.Value == "!" && isIdent && utils.AsciiLower(ident.Value) == "important" {
			important = true
			value = trimWhitespace(value[:L-2])
		}
	}

	for _, t := range value {
		if err, isErr := t.(ParseError); isErr {
			return Declaration{}, err
		}
	}

	return Declaration{
		Pos:       name.Pos,
		Name:      utils.AsciiLower(name.Value),
		Value:     value,
		Important: important,
	}, nil
}
