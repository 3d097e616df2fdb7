package boxes

import (
	"testing"

	pr "github.com/benoitkugler/gridlayout/css/properties"
	"github.com/benoitkugler/gridlayout/html/tree"
	tu "github.com/benoitkugler/gridlayout/utils/testutils"
)

func parse(t *testing.T, content string) *tree.Document {
	t.Helper()
	doc, err := tree.ParseString(content)
	tu.AssertNoErr(t, err)
	return doc
}

func TestBuild(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	doc := parse(t, `
		<div id="g" style="display: grid">
			<div id="a" data-min-content="10" data-max-content="50px" data-content-height="20"></div>
			<span id="hidden" style="display: none"></span>
			<img id="img" width="30" height="40">
			<div id="abs" style="position: absolute"></div>
			<div id="nested" style="display: grid"><div id="inner"></div></div>
		</div>
	`)
	box, err := Build(doc.Root.Find("g"))
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, box.IsGridContainer(), true)
	tu.AssertEqual(t, len(box.Children), 4)
	tu.AssertEqual(t, len(box.InFlowChildren()), 3)

	a := box.Children[0]
	tu.AssertEqual(t, a.Content.MinContent, pr.Float(10))
	tu.AssertEqual(t, a.Content.MaxContent, pr.Float(50))
	tu.AssertEqual(t, a.Content.HeightFor(0), pr.Float(20))
	tu.AssertEqual(t, a.Content.Baseline, nil)

	img := box.Children[1]
	tu.AssertEqual(t, img.Content.MinContent, pr.Float(30))
	tu.AssertEqual(t, img.Content.HeightFor(100), pr.Float(40))

	tu.AssertEqual(t, box.Children[2].IsAbsolutelyPositioned(), true)
	nested := box.Children[3]
	tu.AssertEqual(t, nested.IsGridContainer(), true)
	tu.AssertEqual(t, nested.Children[0].Element.ID(), "inner")
	tu.AssertEqual(t, nested.String(), "<div nested>")
}

func TestBuildNotGrid(t *testing.T) {
	doc := parse(t, `<div id="d"></div>`)
	_, err := Build(doc.Root.Find("d"))
	tu.AssertEqual(t, err != nil, true)
}

func TestInvalidAttribute(t *testing.T) {
	logs := tu.CaptureLogs()
	doc := parse(t, `
		<div style="display: grid"><div data-min-content="wide"></div></div>
		<div id="ok" style="display: grid"></div>
	`)
	boxes := BuildDocument(doc)
	logs.CheckLogs(t, `invalid data-min-content attribute on <div>: "wide"`)
	tu.AssertEqual(t, len(boxes), 1)
	tu.AssertEqual(t, boxes[0].Element.ID(), "ok")
}

func TestTextContent(t *testing.T) {
	c := textContent("  grid  layout engine ")
	tu.AssertEqual(t, c.MinContent, 6*charAdvance)
	tu.AssertEqual(t, c.MaxContent, 18*charAdvance)
	tu.AssertEqual(t, c.Baseline, pr.MaybeFloat(lineAscent))
	tu.AssertEqual(t, c.HeightFor(c.MaxContent), lineHeight)
	tu.AssertEqual(t, c.HeightFor(c.MinContent), 3*lineHeight)
	tu.AssertEqual(t, c.HeightFor(11*charAdvance), 2*lineHeight)

	empty := textContent(" ")
	tu.AssertEqual(t, empty.MaxContent, pr.Float(0))
	tu.AssertEqual(t, empty.HeightFor(10), pr.Float(0))
}

func TestBoxGeometry(t *testing.T) {
	b := Box{
		PositionX: 10, PositionY: 20,
		Width: pr.Float(100), Height: pr.Float(50),
		MarginTop: pr.Float(1), MarginRight: pr.Float(2), MarginBottom: pr.Float(3), MarginLeft: pr.Float(4),
		PaddingTop: 5, PaddingLeft: 6, PaddingRight: 6, PaddingBottom: 5,
		BorderTopWidth: 1, BorderLeftWidth: 1, BorderRightWidth: 1, BorderBottomWidth: 1,
	}
	tu.AssertEqual(t, b.BorderWidth(), pr.Float(114))
	tu.AssertEqual(t, b.MarginWidth(), pr.Float(120))
	tu.AssertEqual(t, b.MarginHeight(), pr.Float(66))
	tu.AssertEqual(t, b.ContentBoxX(), pr.Float(21))
	tu.AssertEqual(t, b.ContentBoxY(), pr.Float(27))
	b.Translate(1, 1)
	tu.AssertEqual(t, b.ContentBoxX(), pr.Float(22))
}
