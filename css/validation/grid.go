package validation

import (
	pa "github.com/benoitkugler/gridlayout/css/parser"
	pr "github.com/benoitkugler/gridlayout/css/properties"
	"github.com/benoitkugler/gridlayout/utils"
)

// parseInflexibleBreadth accepts a non negative length or percentage,
// or one of the auto, min-content and max-content keywords.
func parseInflexibleBreadth(token Token) pr.DimOrS {
	switch keyword := getKeyword(token); keyword {
	case "auto", "min-content", "max-content":
		return pr.SToV(keyword)
	case "":
		if length := getLength(token, false, true); !length.IsNone() {
			return length.ToValue()
		}
	}
	return pr.DimOrS{}
}

// parseTrackBreadth also accepts flexible lengths.
func parseTrackBreadth(token Token) pr.DimOrS {
	if dim, ok := token.(pa.Dimension); ok && dim.Unit == "fr" && dim.ValueF >= 0 {
		return pr.NewDim(pr.Float(dim.ValueF), pr.Fr).ToValue()
	}
	return parseInflexibleBreadth(token)
}

// parseTrackSize parses a breadth, a minmax() or a fit-content() function.
func parseTrackSize(token Token) pr.GridDims {
	if breadth := parseTrackBreadth(token); !breadth.IsNone() {
		return pr.NewGridDimsValue(breadth)
	}
	switch name, args := pa.ParseFunction(token); {
	case name == "minmax" && len(args) == 2:
		lo, hi := parseInflexibleBreadth(args[0]), parseTrackBreadth(args[1])
		if !lo.IsNone() && !hi.IsNone() {
			return pr.NewGridDimsMinmax(lo, hi)
		}
	case name == "fit-content" && len(args) == 1:
		if limit := getLength(args[0], false, true); !limit.IsNone() {
			return pr.NewGridDimsFitcontent(limit)
		}
	}
	return pr.GridDims{}
}

// parseFixedSize is the restriction of parseTrackSize used by auto
// repetitions: at least one bound of the track must be a length.
func parseFixedSize(token Token) pr.GridDims {
	if length := getLength(token, false, true); !length.IsNone() {
		return pr.NewGridDimsValue(length.ToValue())
	}
	name, args := pa.ParseFunction(token)
	if name != "minmax" || len(args) != 2 {
		return pr.GridDims{}
	}
	lo, hi := parseInflexibleBreadth(args[0]), parseTrackBreadth(args[1])
	if lo.IsNone() || hi.IsNone() {
		return pr.GridDims{}
	}
	if !getLength(args[0], false, true).IsNone() || !getLength(args[1], false, true).IsNone() {
		return pr.NewGridDimsMinmax(lo, hi)
	}
	return pr.GridDims{}
}

// parseLineNames parses a bracketed list of identifiers.
// It returns nil for an invalid token and an empty (non nil) slice for [].
func parseLineNames(token Token) []string {
	block, ok := token.(pa.SquareBracketsBlock)
	if !ok {
		return nil
	}
	names := []string{}
	for _, arg := range block.Arguments {
		switch arg := arg.(type) {
		case pa.Whitespace:
		case pa.Ident:
			if lower := utils.AsciiLower(arg.Value); lower == "span" || lower == "auto" {
				return nil
			}
			names = append(names, arg.Value)
		default:
			return nil
		}
	}
	return names
}

// “grid-auto-columns“ and “grid-auto-rows“ properties validation.
func gridAuto(tokens []Token) pr.CssProperty {
	if len(tokens) == 0 {
		return nil
	}
	sizes := make(pr.GridAuto, 0, len(tokens))
	for _, token := range tokens {
		size := parseTrackSize(token)
		if size.IsNone() {
			return nil
		}
		sizes = append(sizes, size)
	}
	return sizes
}

// “grid-auto-flow“ property validation.
// The keywords are kept in their source order, a lone dense meaning
// dense row.
func gridAutoFlow(tokens []Token) pr.CssProperty {
	var (
		out              pr.Strings
		hasAxis, isDense bool
	)
	for _, token := range tokens {
		switch keyword := getKeyword(token); keyword {
		case "row", "column":
			if hasAxis {
				return nil
			}
			hasAxis = true
			out = append(out, keyword)
		case "dense":
			if isDense {
				return nil
			}
			isDense = true
			out = append(out, keyword)
		default:
			return nil
		}
	}
	if len(out) == 0 {
		return nil
	}
	if !hasAxis {
		out = append(out, "row")
	}
	return out
}

// parseRepetitions parses the first argument of repeat(): a positive
// integer, auto-fill, or auto-fit when `allowAutoFit` is true.
// Automatic repetitions are returned as the negative pr.RepeatAutoFill
// and pr.RepeatAutoFit constants.
func parseRepetitions(token Token, allowAutoFit bool) (int, bool) {
	if nb, ok := token.(pa.Number); ok && nb.IsInt() && nb.ValueF >= 1 {
		return nb.Int(), true
	}
	switch getKeyword(token) {
	case "auto-fill":
		return pr.RepeatAutoFill, true
	case "auto-fit":
		return pr.RepeatAutoFit, allowAutoFit
	}
	return 0, false
}

// parseSubgrid parses the line name list following the subgrid keyword.
// Repetitions only contain line names.
func parseSubgrid(tokens []Token) ([]pr.GridSpec, bool) {
	var out []pr.GridSpec
	for _, token := range tokens {
		if names := parseLineNames(token); names != nil {
			out = append(out, pr.GridNames(names))
			continue
		}
		name, args := pa.ParseFunction(token)
		if name != "repeat" || len(args) < 2 {
			return nil, false
		}
		count, ok := parseRepetitions(args[0], false)
		if !ok {
			return nil, false
		}
		repeat := pr.GridNameRepeat{Repeat: count}
		for _, arg := range args[1:] {
			names := parseLineNames(arg)
			if names == nil {
				return nil, false
			}
			repeat.Names = append(repeat.Names, names)
		}
		out = append(out, repeat)
	}
	return out, true
}

// trackList accumulates line names and tracks, so that the resulting
// list alternates between them and starts and ends with line names.
// Missing names are empty.
type trackList struct {
	specs       []pr.GridSpec
	tracks      int
	endsByNames bool
}

// addNames returns false for two consecutive name lists.
func (tl *trackList) addNames(names []string) bool {
	if tl.endsByNames {
		return false
	}
	tl.specs = append(tl.specs, pr.GridNames(names))
	tl.endsByNames = true
	return true
}

func (tl *trackList) addTrack(track pr.GridSpec) {
	if !tl.endsByNames {
		tl.specs = append(tl.specs, pr.GridNames{})
	}
	tl.specs = append(tl.specs, track)
	tl.tracks++
	tl.endsByNames = false
}

func (tl *trackList) close() []pr.GridSpec {
	if !tl.endsByNames {
		tl.specs = append(tl.specs, pr.GridNames{})
		tl.endsByNames = true
	}
	return tl.specs
}

// parseSize returns the track size of `token`, and whether it is a
// fixed size. The size is None for invalid tokens.
func parseSize(token Token) (pr.GridDims, bool) {
	if size := parseFixedSize(token); !size.IsNone() {
		return size, true
	}
	return parseTrackSize(token), false
}

// parseTrackRepeat parses a repeat() function of a track list, also
// reporting whether one of its tracks is not a fixed size.
func parseTrackRepeat(token Token) (repeat pr.GridRepeat, hasIntrinsic, ok bool) {
	name, args := pa.ParseFunction(token)
	if name != "repeat" || len(args) < 2 {
		return repeat, false, false
	}
	count, ok := parseRepetitions(args[0], true)
	if !ok {
		return repeat, false, false
	}
	var body trackList
	for _, arg := range args[1:] {
		if names := parseLineNames(arg); names != nil {
			if !body.addNames(names) {
				return repeat, false, false
			}
			continue
		}
		size, fixed := parseSize(arg)
		if size.IsNone() {
			return repeat, false, false
		}
		hasIntrinsic = hasIntrinsic || !fixed
		body.addTrack(size)
	}
	if body.tracks == 0 {
		return repeat, false, false
	}
	return pr.GridRepeat{Names: body.close(), Repeat: count}, hasIntrinsic, true
}

// “grid-template-columns“ and “grid-template-rows“ validation.
func gridTemplate(tokens []Token) pr.CssProperty {
	if v, ok := parseTrackList(tokens); ok {
		return v
	}
	return nil
}

// parseTrackList parses the value of grid-template-columns or
// grid-template-rows: none, a subgrid, or a list of tracks separated by
// line names. A list holds at most one automatic repetition, and only
// fixed sizes when it does.
func parseTrackList(tokens []Token) (pr.GridTemplate, bool) {
	switch {
	case len(tokens) == 0:
		return pr.GridTemplate{}, false
	case len(tokens) == 1 && getKeyword(tokens[0]) == "none":
		return pr.GridTemplate{Tag: pr.None}, true
	case getKeyword(tokens[0]) == "subgrid":
		names, ok := parseSubgrid(tokens[1:])
		if !ok {
			return pr.GridTemplate{}, false
		}
		return pr.GridTemplate{Tag: pr.Subgrid, Names: names}, true
	}

	var (
		list                     trackList
		hasAutoRepeat, intrinsic bool
	)
	for _, token := range tokens {
		if names := parseLineNames(token); names != nil {
			if !list.addNames(names) {
				return pr.GridTemplate{}, false
			}
			continue
		}
		if size, fixed := parseSize(token); !size.IsNone() {
			intrinsic = intrinsic || !fixed
			list.addTrack(size)
			continue
		}
		repeat, repeatIntrinsic, ok := parseTrackRepeat(token)
		if !ok {
			return pr.GridTemplate{}, false
		}
		if repeat.Repeat < 0 {
			if hasAutoRepeat || repeatIntrinsic {
				return pr.GridTemplate{}, false
			}
			hasAutoRepeat = true
		}
		intrinsic = intrinsic || repeatIntrinsic
		list.addTrack(repeat)
	}
	if hasAutoRepeat && intrinsic {
		return pr.GridTemplate{}, false
	}
	return pr.GridTemplate{Names: list.close()}, true
}

// “grid-template-areas“ property validation.
func gridTemplateAreas(tokens []Token) pr.CssProperty {
	if len(tokens) == 1 && getKeyword(tokens[0]) == "none" {
		return pr.GridTemplateAreas{}
	}
	var gridAreas pr.GridTemplateAreas
	for _, token := range tokens {
		s, ok := token.(pa.String)
		if !ok {
			return nil
		}
		row := parseAreasRow(s.Value)
		if row == nil {
			return nil
		}
		gridAreas = append(gridAreas, row)
	}
	if !areasAreValid(gridAreas) {
		return nil
	}
	return gridAreas
}

// parseAreasRow splits one string of the grid-template-areas
// property, returning nil if invalid.
// Consecutive dots form one null cell token.
func parseAreasRow(s string) []string {
	var (
		row       []string
		lastIsDot = false
	)
	for _, value := range pa.TokenizeString(s) {
		switch value := value.(type) {
		case pa.Ident:
			row = append(row, value.Value)
			lastIsDot = false
		case pa.Literal:
			if value.Value != "." {
				return nil
			}
			if lastIsDot {
				continue
			}
			row = append(row, "")
			lastIsDot = true
		case pa.Whitespace:
			lastIsDot = false
		default:
			return nil
		}
	}
	return row
}

// areasAreValid checks that the rows have the same length and that
// every named area fills its bounding box.
func areasAreValid(rows pr.GridTemplateAreas) bool {
	if len(rows) == 0 {
		return false
	}
	type bounds struct{ left, right, top, bottom, cells int }
	areas := map[string]*bounds{}
	for y, row := range rows {
		if len(row) != len(rows[0]) {
			return false
		}
		for x, name := range row {
			if name == "" {
				continue
			}
			b := areas[name]
			if b == nil {
				b = &bounds{left: x, right: x, top: y}
				areas[name] = b
			}
			b.left, b.right, b.bottom = min(b.left, x), max(b.right, x), y
			b.cells++
		}
	}
	for _, b := range areas {
		if (b.right-b.left+1)*(b.bottom-b.top+1) != b.cells {
			return false
		}
	}
	return true
}

// “grid-[row|column]-[start—end]“ properties validation.
func gridLine(tokens []Token) pr.CssProperty {
	if v, ok := parseGridLine(tokens); ok {
		return v
	}
	return nil
}

// parseGridLine parses auto, a line name, a non zero integer with an
// optional name, or the span keyword with a positive integer, a name
// or both. The components may come in any order.
func parseGridLine(tokens []Token) (pr.GridLine, bool) {
	if len(tokens) == 1 && getKeyword(tokens[0]) == "auto" {
		return pr.GridLine{Tag: pr.Auto}, true
	}
	var line pr.GridLine
	for _, token := range tokens {
		switch keyword := getKeyword(token); {
		case keyword == "auto":
			return pr.GridLine{}, false
		case keyword == "span":
			if line.Tag == pr.Span {
				return pr.GridLine{}, false
			}
			line.Tag = pr.Span
		case keyword != "":
			if line.Ident != "" {
				return pr.GridLine{}, false
			}
			line.Ident = getCustomIdent(token)
		default:
			nb, ok := token.(pa.Number)
			if !ok || !nb.IsInt() || nb.ValueF == 0 || line.Val != 0 {
				return pr.GridLine{}, false
			}
			line.Val = nb.Int()
		}
	}
	if line.Tag == pr.Span {
		return line, line.Val > 0 || (line.Val == 0 && line.Ident != "")
	}
	return line, line.Val != 0 || line.Ident != ""
}
