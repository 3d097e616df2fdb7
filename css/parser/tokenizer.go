package parser

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/benoitkugler/gridlayout/utils"
)

var (
	numberRe    = regexp.MustCompile(`^[-+]?([0-9]*\.)?[0-9]+([eE][+-]?[0-9]+)?`)
	hexEscapeRe = regexp.MustCompile(`^([0-9A-Fa-f]{1,6})[ \n\t]?`)
)

type tokenizer struct {
	css         []byte
	pos         int
	line        int
	lastNewline int
}

// TokenizeString is a convenience wrapper around [Tokenize].
func TokenizeString(css string) []Token { return Tokenize([]byte(css)) }

// Tokenize parses a list of component values.
// Comments are dropped and unmatched closing characters
// are reported as [ParseError] tokens.
func Tokenize(css []byte) []Token {
	css = bytes.ReplaceAll(css, []byte("\u0000"), []byte("\uFFFD"))
	css = bytes.ReplaceAll(css, []byte("\r\n"), []byte("\n"))
	css = bytes.ReplaceAll(css, []byte("\r"), []byte("\n"))
	css = bytes.ReplaceAll(css, []byte("\f"), []byte("\n"))

	tk := tokenizer{css: css, line: 1, lastNewline: -1}
	return tk.tokenizeUntil(0)
}

func (tk *tokenizer) position() Pos {
	return Pos{Line: tk.line, Column: tk.pos - tk.lastNewline}
}

// advance moves to `newPos`, keeping track of lines.
func (tk *tokenizer) advance(newPos int) {
	for i := tk.pos; i < newPos; i++ {
		if tk.css[i] == '\n' {
			tk.line++
			tk.lastNewline = i
		}
	}
	tk.pos = newPos
}

// tokenizeUntil consumes tokens until `endChar` (or EOF when 0),
// which is consumed as well.
func (tk *tokenizer) tokenizeUntil(endChar byte) []Token {
	var out []Token
	css, length := tk.css, len(tk.css)
	for tk.pos < length {
		tokenPos := tk.position()
		start := tk.pos
		c := css[start]

		switch c {
		case ' ', '\n', '\t':
			end := start + 1
			for end < length && (css[end] == ' ' || css[end] == '\n' || css[end] == '\t') {
				end++
			}
			tk.advance(end)
			out = append(out, Whitespace{Pos: tokenPos, Value: string(css[start:end])})
			continue
		}

		if isIdentStart(css, start) {
			value, end := consumeIdent(css, start)
			tk.advance(end)
			if !(end < length && css[end] == '(') {
				out = append(out, Ident{Pos: tokenPos, Value: value})
				continue
			}
			tk.advance(end + 1)
			args := tk.tokenizeUntil(')')
			out = append(out, FunctionBlock{Pos: tokenPos, Name: utils.AsciiLower(value), Arguments: args})
			continue
		}

		if match := numberRe.FindIndex(css[start:]); match != nil {
			repr := string(css[start : start+match[1]])
			end := start + match[1]
			value, _ := strconv.ParseFloat(repr, 32)
			if value == 0 {
				value = 0 // avoid -0
			}
			_, err := strconv.ParseInt(repr, 10, 0)
			n := Number{Pos: tokenPos, Representation: repr, IsInteger: err == nil, ValueF: utils.Fl(value)}
			if end < length && isIdentStart(css, end) {
				var unit string
				unit, end = consumeIdent(css, end)
				out = append(out, Dimension{Number: n, Unit: utils.AsciiLower(unit)})
			} else if end < length && css[end] == '%' {
				end++
				out = append(out, Percentage{Number: n})
			} else {
				out = append(out, n)
			}
			tk.advance(end)
			continue
		}

		switch c {
		case '[':
			tk.advance(start + 1)
			out = append(out, SquareBracketsBlock{Pos: tokenPos, Arguments: tk.tokenizeUntil(']')})
		case '(':
			tk.advance(start + 1)
			out = append(out, ParenthesesBlock{Pos: tokenPos, Arguments: tk.tokenizeUntil(')')})
		case '}', ']', ')':
			tk.advance(start + 1)
			if c == endChar {
				return out
			}
			out = append(out, ParseError{Pos: tokenPos, Message: "unmatched " + string(rune(c))})
		case '\'', '"':
			value, end, ok := consumeQuotedString(css, start)
			tk.advance(end)
			if ok {
				out = append(out, String{Pos: tokenPos, Value: value})
			} else {
				out = append(out, ParseError{Pos: tokenPos, Message: "bad string token"})
			}
		default:
			if bytes.HasPrefix(css[start:], []byte("/*")) {
				index := bytes.Index(css[start+2:], []byte("*/"))
				if index == -1 {
					tk.advance(length)
					return out
				}
				tk.advance(start + 2 + index + 2)
				continue
			}
			r, w := utf8.DecodeRune(css[start:])
			tk.advance(start + w)
			out = append(out, Literal{Pos: tokenPos, Value: string(r)})
		}
	}
	return out
}

func isNameStart(css []byte, pos int) bool {
	// https://www.w3.org/TR/css-syntax-3/#name-start-code-point
	c, _ := utf8.DecodeRune(css[pos:])
	return c > 0x7F || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

// https://www.w3.org/TR/css-syntax-3/#would-start-an-identifier
func isIdentStart(css []byte, pos int) bool {
	if isNameStart(css, pos) {
		return true
	} else if css[pos] == '-' {
		pos++
		if pos >= len(css) {
			return false
		}
		nameStart := isNameStart(css, pos) || css[pos] == '-'
		validEscape := css[pos] == '\\' && !bytes.HasPrefix(css[pos:], []byte("\\\n"))
		return nameStart || validEscape
	} else if css[pos] == '\\' {
		return !bytes.HasPrefix(css[pos:], []byte("\\\n"))
	}
	return false
}

func isNameChar(c rune) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' ||
		c == '-' || c == '_' || c > 0x7F
}

func consumeIdent(css []byte, pos int) (string, int) {
	var chunks strings.Builder
	startPos := pos
	for pos < len(css) {
		c, w := utf8.DecodeRune(css[pos:])
		if isNameChar(c) {
			pos += w
		} else if c == '\\' && !bytes.HasPrefix(css[pos:], []byte("\\\n")) {
			chunks.Write(css[startPos:pos])
			var char string
			char, pos = consumeEscape(css, pos+w)
			chunks.WriteString(char)
			startPos = pos
		} else {
			break
		}
	}
	chunks.Write(css[startPos:pos])
	return chunks.String(), pos
}

// css[pos] is a quote; ok is false for a bad-string
// (unescaped newline).
func consumeQuotedString(css []byte, pos int) (value string, end int, ok bool) {
	quote := rune(css[pos])
	pos++
	var chunks strings.Builder
	startPos := pos
	for pos < len(css) {
		c, w := utf8.DecodeRune(css[pos:])
		switch c {
		case quote:
			chunks.Write(css[startPos:pos])
			return chunks.String(), pos + w, true
		case '\\':
			chunks.Write(css[startPos:pos])
			pos += w
			if pos < len(css) {
				if css[pos] == '\n' {
					pos++
				} else {
					var char string
					char, pos = consumeEscape(css, pos)
					chunks.WriteString(char)
				}
			}
			startPos = pos
		case '\n':
			return "", pos, false
		default:
			pos += w
		}
	}
	// EOF in string is accepted
	chunks.Write(css[startPos:pos])
	return chunks.String(), pos, true
}

// pos is just after the backslash.
func consumeEscape(css []byte, pos int) (string, int) {
	if hexMatch := hexEscapeRe.FindSubmatch(css[pos:]); len(hexMatch) >= 2 {
		codepoint, _ := strconv.ParseInt(string(hexMatch[1]), 16, 0)
		char := "\uFFFD"
		if 0 < codepoint && codepoint <= unicode.MaxRune {
			char = string(rune(codepoint))
		}
		return char, pos + len(hexMatch[0])
	} else if pos < len(css) {
		r, w := utf8.DecodeRune(css[pos:])
		return string(r), pos + w
	}
	return "\uFFFD", pos
}
