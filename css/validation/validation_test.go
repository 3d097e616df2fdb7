package validation

import (
	"fmt"
	"strings"
	"testing"

	"github.com/benoitkugler/gridlayout/css/parser"
	pr "github.com/benoitkugler/gridlayout/css/properties"
	tu "github.com/benoitkugler/gridlayout/utils/testutils"
)

// Helper to test shorthand properties expander functions.
func expandToDict(t *testing.T, css string, expectedError string) map[pr.KnownProp]pr.DeclaredValue {
	t.Helper()

	declarations, errs := parser.ParseDeclarationListString(css)
	if len(errs) != 0 {
		t.Fatalf("unexpected syntax errors for %s: %v", css, errs)
	}

	validated, err := PreprocessDeclarations(declarations)

	if expectedError != "" {
		if err == nil || !strings.Contains(err.Error(), expectedError) {
			t.Fatalf("for %s expected error \n%s\n got\n%v", css, expectedError, err)
		}
	} else if err != nil {
		t.Fatalf("for %s unexpected error %s", css, err)
	}
	out := map[pr.KnownProp]pr.DeclaredValue{}
	for _, v := range validated {
		if v.Value != pr.Initial {
			out[v.Name] = v.Value
		}
	}
	return out
}

func assertInvalid(t *testing.T, css, message string) {
	t.Helper()

	d := expandToDict(t, css, message)
	if len(d) != 0 {
		t.Fatalf("expected no properties, got %v", d)
	}
}

func assertValidDict(t *testing.T, css string, ref map[pr.KnownProp]pr.DeclaredValue) {
	t.Helper()

	got := expandToDict(t, css, "")
	tu.AssertEqual(t, got, ref)
}

func px(v pr.Float) pr.DimOrS { return pr.NewDim(v, pr.Px).ToValue() }

func fr(v pr.Float) pr.DimOrS { return pr.NewDim(v, pr.Fr).ToValue() }

func TestPrefixedProperty(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	assertInvalid(t, "-moz-grid-row: 1", "prefixed properties are ignored")
}

func TestUnknownProperty(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	assertInvalid(t, "color: red", "unknown property")
}

func TestEmptyPropertyValue(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	assertInvalid(t, "display:", "no value")
}

func TestErrorsAreAggregated(t *testing.T) {
	declarations, _ := parser.ParseDeclarationListString("display: grid; order: 1.5; grid-row: 2; width: -3px")
	validated, err := PreprocessDeclarations(declarations)
	if err == nil {
		t.Fatal("expected errors")
	}
	msg := err.Error()
	if !strings.Contains(msg, "order") || !strings.Contains(msg, "width") {
		t.Fatalf("missing declaration in error %s", msg)
	}
	tu.AssertEqual(t, len(validated), 3) // display + grid-row-start/end
}

func TestImportant(t *testing.T) {
	declarations, _ := parser.ParseDeclarationListString("order: 2 !important")
	validated, err := PreprocessDeclarations(declarations)
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, validated, []Declaration{{Name: pr.POrder, Value: pr.Int(2), Important: true}})
}

func TestKeywords(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	assertValidDict(t, "display: GRID", map[pr.KnownProp]pr.DeclaredValue{pr.PDisplay: pr.String("grid")})
	assertValidDict(t, "display: inline-grid", map[pr.KnownProp]pr.DeclaredValue{pr.PDisplay: pr.String("inline-grid")})
	assertValidDict(t, "position: absolute", map[pr.KnownProp]pr.DeclaredValue{pr.PPosition: pr.String("absolute")})
	assertValidDict(t, "direction: rtl", map[pr.KnownProp]pr.DeclaredValue{pr.PDirection: pr.String("rtl")})
	assertValidDict(t, "writing-mode: vertical-lr", map[pr.KnownProp]pr.DeclaredValue{pr.PWritingMode: pr.String("vertical-lr")})
	assertValidDict(t, "direction: inherit", map[pr.KnownProp]pr.DeclaredValue{pr.PDirection: pr.Inherit})
	assertValidDict(t, "order: -3", map[pr.KnownProp]pr.DeclaredValue{pr.POrder: pr.Int(-3)})

	assertInvalid(t, "display: table", "invalid")
	assertInvalid(t, "direction: auto", "invalid")
	assertInvalid(t, "writing-mode: sideways-lr", "invalid")
	assertInvalid(t, "order: 1.5", "invalid")
	assertInvalid(t, "order: a", "invalid")
}

func TestMinMaxWidthHeight(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	assertValidDict(t, "width: 12%", map[pr.KnownProp]pr.DeclaredValue{pr.PWidth: pr.PercToD(12).ToValue()})
	assertValidDict(t, "height: auto", map[pr.KnownProp]pr.DeclaredValue{pr.PHeight: pr.SToV("auto")})
	assertValidDict(t, "min-width: 1em", map[pr.KnownProp]pr.DeclaredValue{pr.PMinWidth: pr.NewDim(1, pr.Em).ToValue()})
	assertValidDict(t, "max-height: none", map[pr.KnownProp]pr.DeclaredValue{pr.PMaxHeight: pr.Dimension{Value: pr.Inf, Unit: pr.Px}.ToValue()})
	assertValidDict(t, "max-width: 10px", map[pr.KnownProp]pr.DeclaredValue{pr.PMaxWidth: px(10)})

	assertInvalid(t, "width: -1px", "invalid")
	assertInvalid(t, "max-width: auto", "invalid")
	assertInvalid(t, "min-height: none", "invalid")
}

func TestOffsetsAndBorders(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	assertValidDict(t, "top: -2px", map[pr.KnownProp]pr.DeclaredValue{pr.PTop: px(-2)})
	assertValidDict(t, "left: auto", map[pr.KnownProp]pr.DeclaredValue{pr.PLeft: pr.SToV("auto")})
	assertValidDict(t, "border-top-width: thick", map[pr.KnownProp]pr.DeclaredValue{pr.PBorderTopWidth: px(5)})

	assertInvalid(t, "border-left-width: 10%", "invalid")
	assertInvalid(t, "padding-left: -1px", "invalid")
}

func TestGaps(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	assertValidDict(t, "row-gap: normal", map[pr.KnownProp]pr.DeclaredValue{pr.PRowGap: pr.SToV("normal")})
	assertValidDict(t, "column-gap: 10%", map[pr.KnownProp]pr.DeclaredValue{pr.PColumnGap: pr.PercToD(10).ToValue()})
	assertValidDict(t, "column-gap: 0", map[pr.KnownProp]pr.DeclaredValue{pr.PColumnGap: pr.NewDim(0, pr.Scalar).ToValue()})

	assertInvalid(t, "row-gap: auto", "invalid")
	assertInvalid(t, "row-gap: -3px", "invalid")
}

func TestGridAutoColumnsRows(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	for _, test := range []struct {
		css   string
		value pr.GridAuto
	}{
		{"40px", pr.GridAuto{pr.NewGridDimsValue(px(40))}},
		{"2fr", pr.GridAuto{pr.NewGridDimsValue(fr(2))}},
		{"18%", pr.GridAuto{pr.NewGridDimsValue(pr.PercToD(18).ToValue())}},
		{"auto", pr.GridAuto{pr.NewGridDimsValue(pr.SToV("auto"))}},
		{"min-content", pr.GridAuto{pr.NewGridDimsValue(pr.SToV("min-content"))}},
		{"max-content", pr.GridAuto{pr.NewGridDimsValue(pr.SToV("max-content"))}},
		{"fit-content(20%)", pr.GridAuto{pr.NewGridDimsFitcontent(pr.PercToD(20))}},
		{"minmax(20px, 25px)", pr.GridAuto{pr.NewGridDimsMinmax(px(20), px(25))}},
		{"minmax(min-content, max-content)", pr.GridAuto{pr.NewGridDimsMinmax(pr.SToV("min-content"), pr.SToV("max-content"))}},
		{"min-content max-content", pr.GridAuto{pr.NewGridDimsValue(pr.SToV("min-content")), pr.NewGridDimsValue(pr.SToV("max-content"))}},
	} {
		assertValidDict(t, fmt.Sprintf("grid-auto-columns: %s", test.css), map[pr.KnownProp]pr.DeclaredValue{
			pr.PGridAutoColumns: test.value,
		})
		assertValidDict(t, fmt.Sprintf("grid-auto-rows: %s", test.css), map[pr.KnownProp]pr.DeclaredValue{
			pr.PGridAutoRows: test.value,
		})
	}

	for _, css := range [...]string{
		"40",
		"coucou",
		"fit-content",
		"fit-content(min-content)",
		"minmax(40px)",
		"minmax(2fr, 1fr)",
		"1fr 1fr coucou",
		"fit-content()",
		"fit-content(2%, 18%)",
	} {
		assertInvalid(t, fmt.Sprintf("grid-auto-columns: %s", css), "invalid")
		assertInvalid(t, fmt.Sprintf("grid-auto-rows: %s", css), "invalid")
	}
}

func TestGridAutoFlow(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	for _, test := range []struct {
		css   string
		value pr.Strings
	}{
		{"row", pr.Strings{"row"}},
		{"column", pr.Strings{"column"}},
		{"row dense", pr.Strings{"row", "dense"}},
		{"column dense", pr.Strings{"column", "dense"}},
		{"dense row", pr.Strings{"dense", "row"}},
		{"dense column", pr.Strings{"dense", "column"}},
		{"dense", pr.Strings{"dense", "row"}},
	} {
		assertValidDict(t, fmt.Sprintf("grid-auto-flow: %s", test.css), map[pr.KnownProp]pr.DeclaredValue{
			pr.PGridAutoFlow: test.value,
		})
	}

	for _, css := range [...]string{
		"row row",
		"dense dense",
		"coucou",
		"row column",
		"column row",
		"coucou column",
		"row column dense",
	} {
		assertInvalid(t, fmt.Sprintf("grid-auto-flow: %s", css), "invalid")
	}
}

func TestGridTemplateColumnsRows(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	for _, test := range []struct {
		css   string
		value pr.GridTemplate
	}{
		{"none", pr.GridTemplate{Tag: pr.None}},
		{"subgrid", pr.GridTemplate{Tag: pr.Subgrid, Names: nil}},
		{"subgrid [a] repeat(auto-fill, [b]) [c]", pr.GridTemplate{Tag: pr.Subgrid, Names: []pr.GridSpec{pr.GridNames{"a"}, pr.GridNameRepeat{Repeat: pr.RepeatAutoFill, Names: [][]string{{"b"}}}, pr.GridNames{"c"}}}},
		{"subgrid [] [a]", pr.GridTemplate{Tag: pr.Subgrid, Names: []pr.GridSpec{pr.GridNames{}, pr.GridNames{"a"}}}},
		{"[outer-edge] 20px [main-start] 1fr [center] 1fr max-content [main-end]", pr.GridTemplate{Names: []pr.GridSpec{
			pr.GridNames{"outer-edge"},
			pr.NewGridDimsValue(px(20)),
			pr.GridNames{"main-start"},
			pr.NewGridDimsValue(fr(1)),
			pr.GridNames{"center"},
			pr.NewGridDimsValue(fr(1)),
			pr.GridNames{},
			pr.NewGridDimsValue(pr.SToV("max-content")),
			pr.GridNames{"main-end"},
		}}},
		{"repeat(auto-fill, minmax(25ch, 1fr))", pr.GridTemplate{
			Names: []pr.GridSpec{
				pr.GridNames{},
				pr.GridRepeat{Repeat: pr.RepeatAutoFill, Names: []pr.GridSpec{
					pr.GridNames{},
					pr.NewGridDimsMinmax(pr.NewDim(25, pr.Ch).ToValue(), fr(1)),
					pr.GridNames{},
				}},
				pr.GridNames{},
			},
		}},
		{"[Side] 10px repeat(auto-fit, [col] 100px) [End]", pr.GridTemplate{
			Names: []pr.GridSpec{
				pr.GridNames{"Side"},
				pr.NewGridDimsValue(px(10)),
				pr.GridNames{},
				pr.GridRepeat{Repeat: pr.RepeatAutoFit, Names: []pr.GridSpec{
					pr.GridNames{"col"},
					pr.NewGridDimsValue(px(100)),
					pr.GridNames{},
				}},
				pr.GridNames{"End"},
			},
		}},
		{"[a] auto [b] minmax(min-content, 1fr) [b c d] repeat(2, [e] 40px) repeat(5, auto)", pr.GridTemplate{Names: []pr.GridSpec{
			pr.GridNames{"a"},
			pr.NewGridDimsValue(pr.SToV("auto")),
			pr.GridNames{"b"},
			pr.NewGridDimsMinmax(pr.SToV("min-content"), fr(1)),
			pr.GridNames{"b", "c", "d"},
			pr.GridRepeat{Repeat: 2, Names: []pr.GridSpec{
				pr.GridNames{"e"},
				pr.NewGridDimsValue(px(40)),
				pr.GridNames{},
			}},
			pr.GridNames{},
			pr.GridRepeat{Repeat: 5, Names: []pr.GridSpec{
				pr.GridNames{},
				pr.NewGridDimsValue(pr.SToV("auto")),
				pr.GridNames{},
			}},
			pr.GridNames{},
		}}},
	} {
		assertValidDict(t, fmt.Sprintf("grid-template-columns: %s", test.css), map[pr.KnownProp]pr.DeclaredValue{
			pr.PGridTemplateColumns: test.value,
		})
		assertValidDict(t, fmt.Sprintf("grid-template-rows: %s", test.css), map[pr.KnownProp]pr.DeclaredValue{
			pr.PGridTemplateRows: test.value,
		})
	}

	for _, css := range [...]string{
		"coucou",
		"subgrid subgrid",
		"subgrid coucou",
		"subgrid [coucou] repeat(0, [wow])",
		"subgrid repeat(2, [a] 10px)",
		"subgrid [coucou] repeat(auto-fit [wow])",
		"fit-content(18%) repeat(auto-fill, 15em)",
		"repeat(auto-fill, 1fr)",
		"repeat(auto-fill, 10px) repeat(auto-fit, 10px)",
		"repeat(2, [a])",
		"[coucou] [wow]",
		"[span] 10px",
	} {
		assertInvalid(t, fmt.Sprintf("grid-template-columns: %s", css), "invalid")
		assertInvalid(t, fmt.Sprintf("grid-template-rows: %s", css), "invalid")
	}
}

func TestGridTemplateAreas(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	for _, test := range []struct {
		css   string
		value pr.GridTemplateAreas
	}{
		{"none", pr.GridTemplateAreas{}},
		{`"head head" "nav main" "foot ...."`, pr.GridTemplateAreas{{"head", "head"}, {"nav", "main"}, {"foot", ""}}},
		{`"title board" "stats board"`, pr.GridTemplateAreas{{"title", "board"}, {"stats", "board"}}},
		{`". a" "b a" ".a"`, pr.GridTemplateAreas{{"", "a"}, {"b", "a"}, {"", "a"}}},
	} {
		assertValidDict(t, fmt.Sprintf("grid-template-areas: %s", test.css), map[pr.KnownProp]pr.DeclaredValue{
			pr.PGridTemplateAreas: test.value,
		})
	}

	for _, css := range [...]string{
		`"head head coucou" "nav main" "foot ...."`,
		`". a" "b c" ". a"`,
		`". a" "b a" "a a"`,
		`"a a a a" "a b b a" "a a a a"`,
		`" "`,
		`"a" 12px`,
	} {
		assertInvalid(t, fmt.Sprintf("grid-template-areas: %s", css), "invalid")
	}
}

func TestGridLine(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	for _, test := range []struct {
		css   string
		value pr.GridLine
	}{
		{"auto", pr.GridLine{Tag: pr.Auto}},
		{"4", pr.GridLine{Val: 4}},
		{"-1", pr.GridLine{Val: -1}},
		{"C", pr.GridLine{Ident: "C"}},
		{"4 c", pr.GridLine{Val: 4, Ident: "c"}},
		{"col -4", pr.GridLine{Val: -4, Ident: "col"}},
		{"span c 4", pr.GridLine{Tag: pr.Span, Val: 4, Ident: "c"}},
		{"span 4 c", pr.GridLine{Tag: pr.Span, Val: 4, Ident: "c"}},
		{"4 span c", pr.GridLine{Tag: pr.Span, Val: 4, Ident: "c"}},
		{"super 4 span", pr.GridLine{Tag: pr.Span, Val: 4, Ident: "super"}},
	} {
		assertValidDict(t, fmt.Sprintf("grid-row-start: %s", test.css), map[pr.KnownProp]pr.DeclaredValue{
			pr.PGridRowStart: test.value,
		})
		assertValidDict(t, fmt.Sprintf("grid-column-end: %s", test.css), map[pr.KnownProp]pr.DeclaredValue{
			pr.PGridColumnEnd: test.value,
		})
	}

	for _, css := range [...]string{
		"span",
		"0",
		"1.1",
		"span 0",
		"span -1",
		"span 2.1",
		"span auto",
		"auto auto",
		"-4 cOL span",
		"span 1.1 col",
	} {
		assertInvalid(t, fmt.Sprintf("grid-row-start: %s", css), "invalid")
		assertInvalid(t, fmt.Sprintf("grid-column-end: %s", css), "invalid")
	}
}

func TestAlignContent(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	for _, test := range []struct {
		css   string
		value pr.Strings
	}{
		{"normal", pr.Strings{"normal"}},
		{"baseline", pr.Strings{"first", "baseline"}},
		{"first baseline", pr.Strings{"first", "baseline"}},
		{"last baseline", pr.Strings{"last", "baseline"}},
		{"baseline last", pr.Strings{"last", "baseline"}},
		{"space-between", pr.Strings{"space-between"}},
		{"space-around", pr.Strings{"space-around"}},
		{"space-evenly", pr.Strings{"space-evenly"}},
		{"stretch", pr.Strings{"stretch"}},
		{"center", pr.Strings{"center"}},
		{"flex-end", pr.Strings{"flex-end"}},
		{"safe center", pr.Strings{"safe", "center"}},
		{"unsafe start", pr.Strings{"unsafe", "start"}},
	} {
		assertValidDict(t, fmt.Sprintf("align-content: %s", test.css), map[pr.KnownProp]pr.DeclaredValue{
			pr.PAlignContent: test.value,
		})
	}

	for _, css := range []string{
		"auto",
		"none",
		"auto auto",
		"first last",
		"baseline baseline",
		"start safe",
		"start end",
		"safe unsafe",
		"left",
		"safe stretch",
	} {
		assertInvalid(t, fmt.Sprintf("align-content: %s", css), "invalid")
	}
}

func TestJustifyContent(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	for _, test := range []struct {
		css   string
		value pr.Strings
	}{
		{"normal", pr.Strings{"normal"}},
		{"space-evenly", pr.Strings{"space-evenly"}},
		{"left", pr.Strings{"left"}},
		{"safe right", pr.Strings{"safe", "right"}},
		{"end", pr.Strings{"end"}},
	} {
		assertValidDict(t, fmt.Sprintf("justify-content: %s", test.css), map[pr.KnownProp]pr.DeclaredValue{
			pr.PJustifyContent: test.value,
		})
	}

	for _, css := range []string{"baseline", "first baseline", "auto", "self-start"} {
		assertInvalid(t, fmt.Sprintf("justify-content: %s", css), "invalid")
	}
}

func TestSelfAndItems(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	assertValidDict(t, "align-items: baseline", map[pr.KnownProp]pr.DeclaredValue{pr.PAlignItems: pr.Strings{"first", "baseline"}})
	assertValidDict(t, "align-items: safe self-end", map[pr.KnownProp]pr.DeclaredValue{pr.PAlignItems: pr.Strings{"safe", "self-end"}})
	assertValidDict(t, "align-self: auto", map[pr.KnownProp]pr.DeclaredValue{pr.PAlignSelf: pr.Strings{"auto"}})
	assertValidDict(t, "justify-self: left", map[pr.KnownProp]pr.DeclaredValue{pr.PJustifySelf: pr.Strings{"left"}})
	assertValidDict(t, "justify-items: legacy", map[pr.KnownProp]pr.DeclaredValue{pr.PJustifyItems: pr.Strings{"legacy"}})
	assertValidDict(t, "justify-items: right legacy", map[pr.KnownProp]pr.DeclaredValue{pr.PJustifyItems: pr.Strings{"legacy", "right"}})
	assertValidDict(t, "justify-items: legacy center", map[pr.KnownProp]pr.DeclaredValue{pr.PJustifyItems: pr.Strings{"legacy", "center"}})

	assertInvalid(t, "align-items: auto", "invalid")
	assertInvalid(t, "align-self: left", "invalid")
	assertInvalid(t, "justify-items: legacy start", "invalid")
	assertInvalid(t, "justify-self: space-between", "invalid")
}
