package validation

import (
	"testing"

	pr "github.com/benoitkugler/gridlayout/css/properties"
	tu "github.com/benoitkugler/gridlayout/utils/testutils"
)

type props = map[pr.KnownProp]pr.DeclaredValue

func TestExpandFourSides(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	assertValidDict(t, "margin: inherit", props{
		pr.PMarginTop:    pr.Inherit,
		pr.PMarginRight:  pr.Inherit,
		pr.PMarginBottom: pr.Inherit,
		pr.PMarginLeft:   pr.Inherit,
	})
	assertValidDict(t, "margin: 1em", props{
		pr.PMarginTop:    pr.NewDim(1, pr.Em).ToValue(),
		pr.PMarginRight:  pr.NewDim(1, pr.Em).ToValue(),
		pr.PMarginBottom: pr.NewDim(1, pr.Em).ToValue(),
		pr.PMarginLeft:   pr.NewDim(1, pr.Em).ToValue(),
	})
	assertValidDict(t, "margin: -1em auto 20%", props{
		pr.PMarginTop:    pr.NewDim(-1, pr.Em).ToValue(),
		pr.PMarginRight:  pr.SToV("auto"),
		pr.PMarginBottom: pr.PercToD(20).ToValue(),
		pr.PMarginLeft:   pr.SToV("auto"),
	})
	assertValidDict(t, "padding: 1em 0", props{
		pr.PPaddingTop:    pr.NewDim(1, pr.Em).ToValue(),
		pr.PPaddingRight:  pr.NewDim(0, pr.Scalar).ToValue(),
		pr.PPaddingBottom: pr.NewDim(1, pr.Em).ToValue(),
		pr.PPaddingLeft:   pr.NewDim(0, pr.Scalar).ToValue(),
	})
	assertValidDict(t, "padding: 1em 0 2em 5px", props{
		pr.PPaddingTop:    pr.NewDim(1, pr.Em).ToValue(),
		pr.PPaddingRight:  pr.NewDim(0, pr.Scalar).ToValue(),
		pr.PPaddingBottom: pr.NewDim(2, pr.Em).ToValue(),
		pr.PPaddingLeft:   px(5),
	})
	assertValidDict(t, "border-width: thin 2px", props{
		pr.PBorderTopWidth:    px(1),
		pr.PBorderRightWidth:  px(2),
		pr.PBorderBottomWidth: px(1),
		pr.PBorderLeftWidth:   px(2),
	})

	assertInvalid(t, "padding: 1 2 3 4 5", "expected 1 to 4 token components got 5")
	assertInvalid(t, "margin: rgb(0, 0, 0)", "invalid")
	assertInvalid(t, "padding: auto", "invalid")
	assertInvalid(t, "padding: -12px", "invalid")
	assertInvalid(t, "border-width: -3em", "invalid")
	assertInvalid(t, "border-width: 12%", "invalid")
}

func TestExpandGap(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	assertValidDict(t, "gap: 10px", props{pr.PRowGap: px(10), pr.PColumnGap: px(10)})
	assertValidDict(t, "gap: 10px 5%", props{pr.PRowGap: px(10), pr.PColumnGap: pr.PercToD(5).ToValue()})
	assertValidDict(t, "gap: normal 2px", props{pr.PRowGap: pr.SToV("normal"), pr.PColumnGap: px(2)})
	assertValidDict(t, "gap: initial", props{})

	assertInvalid(t, "gap: 1px 2px 3px", "invalid")
	assertInvalid(t, "gap: auto", "invalid")
}

func TestExpandGridColumnRow(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	auto := pr.GridLine{Tag: pr.Auto}
	assertValidDict(t, "grid-row: 1 / 3", props{
		pr.PGridRowStart: pr.GridLine{Val: 1},
		pr.PGridRowEnd:   pr.GridLine{Val: 3},
	})
	assertValidDict(t, "grid-column: 2", props{
		pr.PGridColumnStart: pr.GridLine{Val: 2},
		pr.PGridColumnEnd:   auto,
	})
	assertValidDict(t, "grid-column: main", props{
		pr.PGridColumnStart: pr.GridLine{Ident: "main"},
		pr.PGridColumnEnd:   pr.GridLine{Ident: "main"},
	})
	assertValidDict(t, "grid-row: span 2 / -1", props{
		pr.PGridRowStart: pr.GridLine{Tag: pr.Span, Val: 2},
		pr.PGridRowEnd:   pr.GridLine{Val: -1},
	})

	assertInvalid(t, "grid-row: 1 / 2 / 3", "invalid")
	assertInvalid(t, "grid-column: span", "invalid")
	assertInvalid(t, "grid-column: 1 / 0", "invalid")
}

func TestExpandGridArea(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	auto := pr.GridLine{Tag: pr.Auto}
	assertValidDict(t, "grid-area: head", props{
		pr.PGridRowStart:    pr.GridLine{Ident: "head"},
		pr.PGridColumnStart: pr.GridLine{Ident: "head"},
		pr.PGridRowEnd:      pr.GridLine{Ident: "head"},
		pr.PGridColumnEnd:   pr.GridLine{Ident: "head"},
	})
	assertValidDict(t, "grid-area: 1 / 2 / 3 / 4", props{
		pr.PGridRowStart:    pr.GridLine{Val: 1},
		pr.PGridColumnStart: pr.GridLine{Val: 2},
		pr.PGridRowEnd:      pr.GridLine{Val: 3},
		pr.PGridColumnEnd:   pr.GridLine{Val: 4},
	})
	assertValidDict(t, "grid-area: a / 2", props{
		pr.PGridRowStart:    pr.GridLine{Ident: "a"},
		pr.PGridColumnStart: pr.GridLine{Val: 2},
		pr.PGridRowEnd:      pr.GridLine{Ident: "a"},
		pr.PGridColumnEnd:   auto,
	})
	assertValidDict(t, "grid-area: 1 / b / 2", props{
		pr.PGridRowStart:    pr.GridLine{Val: 1},
		pr.PGridColumnStart: pr.GridLine{Ident: "b"},
		pr.PGridRowEnd:      pr.GridLine{Val: 2},
		pr.PGridColumnEnd:   pr.GridLine{Ident: "b"},
	})
	assertValidDict(t, "grid-area: 3", props{
		pr.PGridRowStart:    pr.GridLine{Val: 3},
		pr.PGridColumnStart: auto,
		pr.PGridRowEnd:      auto,
		pr.PGridColumnEnd:   auto,
	})

	assertInvalid(t, "grid-area: 1 / 2 / 3 / 4 / 5", "invalid")
}

func TestExpandGridTemplate(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	none := pr.GridTemplate{Tag: pr.None}
	assertValidDict(t, "grid-template: none", props{
		pr.PGridTemplateColumns: none,
		pr.PGridTemplateRows:    none,
		pr.PGridTemplateAreas:   pr.GridTemplateAreas{},
	})
	assertValidDict(t, "grid-template: 10px 1fr / [a] 20px", props{
		pr.PGridTemplateRows: pr.GridTemplate{Names: []pr.GridSpec{
			pr.GridNames{}, pr.NewGridDimsValue(px(10)), pr.GridNames{}, pr.NewGridDimsValue(fr(1)), pr.GridNames{},
		}},
		pr.PGridTemplateColumns: pr.GridTemplate{Names: []pr.GridSpec{
			pr.GridNames{"a"}, pr.NewGridDimsValue(px(20)), pr.GridNames{},
		}},
		pr.PGridTemplateAreas: pr.GridTemplateAreas{},
	})
	assertValidDict(t, `grid-template: [top] "a a" 40px [mid] [center] "b c" [bottom] / 1fr 2fr`, props{
		pr.PGridTemplateRows: pr.GridTemplate{Names: []pr.GridSpec{
			pr.GridNames{"top"}, pr.NewGridDimsValue(px(40)), pr.GridNames{"mid", "center"},
			pr.NewGridDimsValue(pr.SToV("auto")), pr.GridNames{"bottom"},
		}},
		pr.PGridTemplateColumns: pr.GridTemplate{Names: []pr.GridSpec{
			pr.GridNames{}, pr.NewGridDimsValue(fr(1)), pr.GridNames{}, pr.NewGridDimsValue(fr(2)), pr.GridNames{},
		}},
		pr.PGridTemplateAreas: pr.GridTemplateAreas{{"a", "a"}, {"b", "c"}},
	})
	assertValidDict(t, `grid-template: "a" "b"`, props{
		pr.PGridTemplateRows: pr.GridTemplate{Names: []pr.GridSpec{
			pr.GridNames{}, pr.NewGridDimsValue(pr.SToV("auto")), pr.GridNames{}, pr.NewGridDimsValue(pr.SToV("auto")), pr.GridNames{},
		}},
		pr.PGridTemplateColumns: none,
		pr.PGridTemplateAreas:   pr.GridTemplateAreas{{"a"}, {"b"}},
	})

	assertInvalid(t, "grid-template: 10px", "invalid")
	assertInvalid(t, `grid-template: "a" [x] 10px`, "invalid")
	assertInvalid(t, `grid-template: "a b" / repeat(auto-fill, 10px)`, "invalid")
	assertInvalid(t, `grid-template: "a" / 1fr / 2fr`, "invalid")
}

func TestExpandGrid(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	none := pr.GridTemplate{Tag: pr.None}
	auto := pr.GridAuto{pr.NewGridDimsValue(pr.SToV("auto"))}
	assertValidDict(t, "grid: auto-flow 20px / 100px", props{
		pr.PGridTemplateRows: none,
		pr.PGridTemplateColumns: pr.GridTemplate{Names: []pr.GridSpec{
			pr.GridNames{}, pr.NewGridDimsValue(px(100)), pr.GridNames{},
		}},
		pr.PGridTemplateAreas: pr.GridTemplateAreas{},
		pr.PGridAutoRows:      pr.GridAuto{pr.NewGridDimsValue(px(20))},
		pr.PGridAutoColumns:   auto,
		pr.PGridAutoFlow:      pr.Strings{"row"},
	})
	assertValidDict(t, "grid: 1fr / auto-flow dense", props{
		pr.PGridTemplateRows: pr.GridTemplate{Names: []pr.GridSpec{
			pr.GridNames{}, pr.NewGridDimsValue(fr(1)), pr.GridNames{},
		}},
		pr.PGridTemplateColumns: none,
		pr.PGridTemplateAreas:   pr.GridTemplateAreas{},
		pr.PGridAutoRows:        auto,
		pr.PGridAutoColumns:     auto,
		pr.PGridAutoFlow:        pr.Strings{"column", "dense"},
	})
	assertValidDict(t, "grid: none", props{
		pr.PGridTemplateRows:    none,
		pr.PGridTemplateColumns: none,
		pr.PGridTemplateAreas:   pr.GridTemplateAreas{},
		pr.PGridAutoRows:        auto,
		pr.PGridAutoColumns:     auto,
		pr.PGridAutoFlow:        pr.Strings{"row"},
	})

	assertInvalid(t, "grid: auto-flow / auto-flow", "invalid")
	assertInvalid(t, "grid: dense / auto-flow 1fr", "invalid")
	assertInvalid(t, "grid: 10px", "invalid")
}

func TestExpandPlace(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	assertValidDict(t, "place-content: center", props{
		pr.PAlignContent:   pr.Strings{"center"},
		pr.PJustifyContent: pr.Strings{"center"},
	})
	assertValidDict(t, "place-content: baseline", props{
		pr.PAlignContent:   pr.Strings{"first", "baseline"},
		pr.PJustifyContent: pr.Strings{"start"},
	})
	assertValidDict(t, "place-content: safe end space-between", props{
		pr.PAlignContent:   pr.Strings{"safe", "end"},
		pr.PJustifyContent: pr.Strings{"space-between"},
	})
	assertValidDict(t, "place-items: last baseline left", props{
		pr.PAlignItems:   pr.Strings{"last", "baseline"},
		pr.PJustifyItems: pr.Strings{"left"},
	})
	assertValidDict(t, "place-self: auto stretch", props{
		pr.PAlignSelf:   pr.Strings{"auto"},
		pr.PJustifySelf: pr.Strings{"stretch"},
	})
	assertValidDict(t, "place-self: inherit", props{
		pr.PAlignSelf:   pr.Inherit,
		pr.PJustifySelf: pr.Inherit,
	})

	assertInvalid(t, "place-items: left", "invalid")
	assertInvalid(t, "place-content: center center center", "invalid")
}
