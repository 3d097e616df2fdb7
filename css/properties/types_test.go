package properties

import (
	"testing"

	tu "github.com/benoitkugler/gridlayout/utils/testutils"
)

func TestSizingFunctions(t *testing.T) {
	px := FToV(10)
	fr := Dimension{Value: 1, Unit: Fr}.ToValue()

	tu.AssertEqual(t, NewGridDimsValue(px).SizingFunctions(), [2]DimOrS{px, px})
	tu.AssertEqual(t, NewGridDimsValue(fr).SizingFunctions(), [2]DimOrS{SToV("auto"), fr})
	tu.AssertEqual(t, NewGridDimsMinmax(px, fr).SizingFunctions(), [2]DimOrS{px, fr})
	fc := NewGridDimsFitcontent(Dimension{Value: 50, Unit: Px})
	tu.AssertEqual(t, fc.SizingFunctions(), [2]DimOrS{SToV("auto"), SToV("max-content")})
	limit, ok := fc.IsFitcontent()
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, limit, FToV(50))
	tu.AssertEqual(t, fc.String(), "fit-content(<50 px>)")
}

func TestGridAutoCycle(t *testing.T) {
	a, b := NewGridDimsValue(FToV(1)), NewGridDimsValue(FToV(2))
	it := GridAuto{a, b}.Cycle()
	tu.AssertEqual(t, []GridDims{it.Next(), it.Next(), it.Next()}, []GridDims{a, b, a})

	back := GridAuto{a, b}.Reverse().Cycle()
	tu.AssertEqual(t, back.Next(), b)
}

func TestTemplateArea(t *testing.T) {
	areas := GridTemplateAreas{
		{"head", "head", "head"},
		{"nav", "main", ""},
		{"nav", "main", ""},
	}
	rows, cols, ok := areas.Area("main")
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, rows, [2]int{1, 3})
	tu.AssertEqual(t, cols, [2]int{1, 2})

	rows, cols, _ = areas.Area("head")
	tu.AssertEqual(t, rows, [2]int{0, 1})
	tu.AssertEqual(t, cols, [2]int{0, 3})

	_, _, ok = areas.Area("foot")
	tu.AssertEqual(t, ok, false)
}

func TestToPixels(t *testing.T) {
	tu.AssertEqual(t, Dimension{Value: 2, Unit: Em}.ToPixels(), Dimension{Value: 32, Unit: Px})
	tu.AssertEqual(t, Dimension{Value: 1, Unit: In}.ToPixels(), Dimension{Value: 96, Unit: Px})
	tu.AssertEqual(t, Dimension{Value: 0, Unit: Scalar}.ToPixels(), ZeroPixels)
	tu.AssertEqual(t, PercToD(10).ToPixels(), PercToD(10))
}

func TestGridLineString(t *testing.T) {
	tu.AssertEqual(t, GridLine{Tag: Span, Val: 2, Ident: "a"}.String(), "span 2 a")
	tu.AssertEqual(t, GridLine{Tag: Auto}.String(), "auto")
	tu.AssertEqual(t, GridLine{Val: -1}.String(), "-1")
}

func TestAccessors(t *testing.T) {
	style := InitialValues.Copy()
	tu.AssertEqual(t, style.GetGridAutoFlow(), Strings{"row"})
	style.SetOrder(3)
	tu.AssertEqual(t, style.GetOrder(), Int(3))
	tu.AssertEqual(t, InitialValues.GetOrder(), Int(0))
	tu.AssertEqual(t, PropsFromNames["grid-template-columns"], PGridTemplateColumns)
	tu.AssertEqual(t, PDirection.IsInherited(), true)
	tu.AssertEqual(t, PWidth.IsInherited(), false)
}

func TestResolvePercentage(t *testing.T) {
	tu.AssertEqual(t, ResoudPercentage(SToV("auto"), Float(100)), MaybeFloat(AutoF))
	tu.AssertEqual(t, ResoudPercentage(PercToD(20).ToValue(), Float(300)), MaybeFloat(Float(60)))
	tu.AssertEqual(t, ResoudPercentage(PercToD(20).ToValue(), AutoF), MaybeFloat(AutoF))
	tu.AssertEqual(t, ResoudPercentage(Dimension{Value: 2, Unit: Em}.ToValue(), AutoF), MaybeFloat(Float(32)))
	tu.AssertEqual(t, ResoudPercentage(SToV("normal"), Float(1)), nil)
	tu.AssertEqual(t, IsAuto(AutoF), true)
	tu.AssertEqual(t, IsAuto(Float(0)), false)
}
