package boxes

import (
	"strings"
	"unicode/utf8"

	pr "github.com/benoitkugler/gridlayout/css/properties"
)

const (
	// advance of one character, matching the "ch" unit
	charAdvance pr.Float = 8
	// height of one line of text, matching the "em" unit
	lineHeight pr.Float = 16
	// first baseline of a line of text
	lineAscent pr.Float = 12
)

// Content describes the intrinsic sizes of the content of an item,
// in the physical axes of the item.
type Content struct {
	// MinContent and MaxContent are the min-content and max-content widths.
	MinContent, MaxContent pr.Float

	// Height is the height of the content, or [pr.AutoF]
	// when it depends on the width (text content).
	Height pr.MaybeFloat

	// Baseline is the first baseline, relative to the top
	// of the content box, or nil if the content has no baseline.
	Baseline pr.MaybeFloat

	words []int // length of each word, in characters
}

// textContent measures `text` with a fixed advance per character :
// the min-content width is the longest word, the max-content width the whole
// text on one line.
func textContent(text string) Content {
	var out Content
	for _, word := range strings.Fields(text) {
		out.words = append(out.words, utf8.RuneCountInString(word))
	}
	if len(out.words) == 0 {
		out.Height = pr.Float(0)
		return out
	}
	total := len(out.words) - 1 // spaces
	longest := 0
	for _, w := range out.words {
		total += w
		if w > longest {
			longest = w
		}
	}
	out.MinContent = pr.Float(longest) * charAdvance
	out.MaxContent = pr.Float(total) * charAdvance
	out.Height = pr.AutoF
	out.Baseline = lineAscent
	return out
}

// lines returns the number of lines needed to
// display the words in `width`, breaking greedily.
func (c Content) lines(width pr.Float) int {
	if len(c.words) == 0 {
		return 0
	}
	lines, current := 1, pr.Float(-1)
	for _, w := range c.words {
		advance := pr.Float(w) * charAdvance
		if current < 0 {
			current = advance
			continue
		}
		if current+charAdvance+advance > width {
			lines++
			current = advance
		} else {
			current += charAdvance + advance
		}
	}
	return lines
}

// HeightFor returns the height of the content laid out in `width`.
func (c Content) HeightFor(width pr.Float) pr.Float {
	if h, ok := c.Height.(pr.Float); ok {
		return h
	}
	return pr.Float(c.lines(width)) * lineHeight
}
