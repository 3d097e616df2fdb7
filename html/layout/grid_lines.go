package layout

import (
	pr "github.com/benoitkugler/gridlayout/css/properties"
	"github.com/benoitkugler/gridlayout/logger"
	"github.com/benoitkugler/gridlayout/utils"
)

// Line-based placement, see https://drafts.csswg.org/css-grid/#line-placement

// auto and span positions are resolved against the opposite line
func resolvedAgainstOpposite(line pr.GridLine) bool { return line.IsAuto() || line.IsSpan() }

// resolveSpan returns the lines of an item in one axis, relative to the
// explicit grid start, or an indefinite span if the item is auto placed.
func (eg explicitGrid) resolveSpan(start, end pr.GridLine) LineSpan {
	if resolvedAgainstOpposite(start) && resolvedAgainstOpposite(end) {
		return IndefiniteSpan()
	}

	var s, e int
	switch {
	case resolvedAgainstOpposite(start):
		e = eg.resolveLine(end, false)
		s = eg.resolveAgainstOpposite(e, start, true)
	case resolvedAgainstOpposite(end):
		s = eg.resolveLine(start, true)
		e = eg.resolveAgainstOpposite(s, end, false)
	default:
		s, e = eg.resolveLine(start, true), eg.resolveLine(end, false)
		if e < s {
			s, e = e, s
		} else if e == s {
			e = s + 1
		}
	}

	cs, ce := utils.ClampInt(s, -maxGridTracks, maxGridTracks), utils.ClampInt(e, -maxGridTracks, maxGridTracks)
	if cs != s || ce != e {
		logger.WarningLogger.Printf("grid lines [%d, %d) out of range, clamped to [%d, %d)", s, e, cs, ce)
	}
	if ce <= cs {
		return IndefiniteSpan()
	}
	return DefiniteSpan(cs, ce)
}

// resolveLine resolves a line number or a named line.
func (eg explicitGrid) resolveLine(line pr.GridLine, isStart bool) int {
	switch {
	case line.Ident == "":
		if line.Val > 0 {
			return line.Val - 1
		}
		// negative lines count from the end of the explicit grid
		return eg.count + 1 + line.Val
	case line.Val == 0:
		side := "-end"
		if isStart {
			side = "-start"
		}
		if lines := eg.lines[line.Ident+side]; len(lines) != 0 {
			return lines[0]
		}
		return eg.nthNamedLine(line.Ident, 1)
	default:
		return eg.nthNamedLine(line.Ident, line.Val)
	}
}

// nthNamedLine returns the n-th line called `name`, counting from the end if n < 0.
// If there are not enough lines, the implicit lines are assumed to have that name.
func (eg explicitGrid) nthNamedLine(name string, n int) int {
	if n > 0 {
		return findNamedLineForward(eg.lines[name], -1, n, eg.count)
	}
	return findNamedLineBackward(eg.lines[name], eg.count+1, -n)
}

func (eg explicitGrid) resolveAgainstOpposite(opposite int, line pr.GridLine, isStart bool) int {
	if line.IsAuto() {
		if isStart {
			return opposite - 1
		}
		return opposite + 1
	}
	n := utils.MaxInt(line.Val, 1)
	if line.Ident == "" {
		if isStart {
			return opposite - n
		}
		return opposite + n
	}
	if isStart {
		return findNamedLineBackward(eg.lines[line.Ident], opposite, n)
	}
	return findNamedLineForward(eg.lines[line.Ident], opposite, n, eg.count)
}

// findNamedLineForward returns the n-th line in `lines` (sorted) after `from`,
// the lines after `lastLine` being implicitly named.
func findNamedLineForward(lines []int, from, n, lastLine int) int {
	for _, l := range lines {
		if l > from {
			n--
			if n == 0 {
				return l
			}
		}
	}
	return utils.MaxInt(from, lastLine) + n
}

// findNamedLineBackward returns the n-th line in `lines` (sorted) before `from`,
// the lines before 0 being implicitly named.
func findNamedLineBackward(lines []int, from, n int) int {
	for i := len(lines) - 1; i >= 0; i-- {
		if l := lines[i]; l < from {
			n--
			if n == 0 {
				return l
			}
		}
	}
	return utils.MinInt(from, 0) - n
}

// spanSizeForAutoPlacedItem returns the number of tracks an item
// with an indefinite position spans, at most maxGridTracks.
func spanSizeForAutoPlacedItem(start, end pr.GridLine) int {
	return utils.MinInt(requestedSpanSize(start, end), maxGridTracks)
}

// requestedSpanSize is the span asked for by `start` and `end`.
// Named spans count as one.
func requestedSpanSize(start, end pr.GridLine) int {
	for _, line := range [2]pr.GridLine{start, end} {
		if line.IsSpan() {
			if line.Ident != "" {
				return 1
			}
			return utils.MaxInt(line.Val, 1)
		}
	}
	return 1
}
