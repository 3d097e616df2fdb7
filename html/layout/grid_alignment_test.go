package layout

import (
	"testing"

	pr "github.com/benoitkugler/gridlayout/css/properties"
	tu "github.com/benoitkugler/gridlayout/utils/testutils"
)

func TestContentDistribution(t *testing.T) {
	for _, test := range []struct {
		value     pr.Strings
		axis      Axis
		freeSpace Fl
		tracks    int
		rtl       bool
		expected  ContentAlignmentOffset
	}{
		{pr.Strings{"normal"}, ForColumns, 90, 3, false, ContentAlignmentOffset{0, 0}},
		{pr.Strings{"space-between"}, ForColumns, 90, 3, false, ContentAlignmentOffset{0, 45}},
		{pr.Strings{"space-around"}, ForColumns, 90, 3, false, ContentAlignmentOffset{15, 30}},
		{pr.Strings{"space-evenly"}, ForRows, 90, 3, false, ContentAlignmentOffset{22.5, 22.5}},
		// fallbacks
		{pr.Strings{"space-between"}, ForColumns, 90, 1, false, ContentAlignmentOffset{0, 0}},
		{pr.Strings{"space-around"}, ForColumns, -10, 2, false, ContentAlignmentOffset{-5, 0}},
		{pr.Strings{"space-evenly"}, ForColumns, 0, 2, false, ContentAlignmentOffset{0, 0}},
		{pr.Strings{"stretch"}, ForColumns, 90, 3, false, ContentAlignmentOffset{0, 0}},
		{pr.Strings{"first", "baseline"}, ForColumns, 90, 3, false, ContentAlignmentOffset{0, 0}},
		// positions
		{pr.Strings{"end"}, ForRows, 90, 3, false, ContentAlignmentOffset{90, 0}},
		{pr.Strings{"flex-end"}, ForRows, 90, 3, false, ContentAlignmentOffset{90, 0}},
		{pr.Strings{"center"}, ForColumns, -10, 3, false, ContentAlignmentOffset{-5, 0}},
		{pr.Strings{"safe", "center"}, ForColumns, -10, 3, false, ContentAlignmentOffset{0, 0}},
		{pr.Strings{"unsafe", "end"}, ForColumns, -10, 3, false, ContentAlignmentOffset{-10, 0}},
		{pr.Strings{"right"}, ForColumns, 90, 3, false, ContentAlignmentOffset{90, 0}},
		{pr.Strings{"right"}, ForColumns, 90, 3, true, ContentAlignmentOffset{0, 0}},
		{pr.Strings{"left"}, ForColumns, 90, 3, true, ContentAlignmentOffset{90, 0}},
		// left and right are start in the block axis
		{pr.Strings{"right"}, ForRows, 90, 3, false, ContentAlignmentOffset{0, 0}},
		{pr.Strings{"left"}, ForRows, 90, 3, true, ContentAlignmentOffset{0, 0}},
	} {
		got := computeContentPositionAndDistributionOffset(test.axis, test.value, test.freeSpace, test.tracks, test.rtl)
		tu.AssertEqual(t, got, test.expected)
	}
}

func TestStretchesAutoTracks(t *testing.T) {
	tu.AssertEqual(t, stretchesAutoTracks(pr.Strings{"normal"}), true)
	tu.AssertEqual(t, stretchesAutoTracks(pr.Strings{"stretch"}), true)
	tu.AssertEqual(t, stretchesAutoTracks(pr.Strings{"start"}), false)
	tu.AssertEqual(t, stretchesAutoTracks(pr.Strings{"space-between"}), false)
}

func TestResolveSelfAlignment(t *testing.T) {
	horizontal, rtl := WritingMode{}, WritingMode{RTL: true}
	vertical := WritingMode{Vertical: true, FlippedBlocks: true}
	for _, test := range []struct {
		self, items     pr.Strings
		axis            Axis
		container, item WritingMode
		hasAutoSize     bool
		expected        SelfAlignment
	}{
		{nil, pr.Strings{"normal"}, ForRows, horizontal, horizontal, true, SelfAlignment{Position: PositionStretch}},
		{nil, pr.Strings{"normal"}, ForRows, horizontal, horizontal, false, SelfAlignment{Position: PositionStart}},
		{pr.Strings{"stretch"}, nil, ForColumns, horizontal, horizontal, false, SelfAlignment{Position: PositionStart}},
		{pr.Strings{"auto"}, pr.Strings{"legacy", "center"}, ForColumns, horizontal, horizontal, true, SelfAlignment{Position: PositionCenter}},
		{pr.Strings{"safe", "end"}, nil, ForColumns, horizontal, horizontal, true, SelfAlignment{Position: PositionEnd, Safe: true}},
		{pr.Strings{"unsafe", "center"}, nil, ForColumns, horizontal, horizontal, true, SelfAlignment{Position: PositionCenter}},
		// self-start uses the direction of the item
		{pr.Strings{"self-start"}, nil, ForColumns, horizontal, horizontal, true, SelfAlignment{Position: PositionStart}},
		{pr.Strings{"self-start"}, nil, ForColumns, horizontal, rtl, true, SelfAlignment{Position: PositionEnd}},
		{pr.Strings{"self-end"}, nil, ForColumns, horizontal, rtl, true, SelfAlignment{Position: PositionStart}},
		// left and right depend on the direction of the container
		{pr.Strings{"left"}, nil, ForColumns, rtl, horizontal, true, SelfAlignment{Position: PositionEnd}},
		{pr.Strings{"right"}, nil, ForColumns, rtl, horizontal, true, SelfAlignment{Position: PositionStart}},
		{pr.Strings{"right"}, nil, ForColumns, horizontal, horizontal, true, SelfAlignment{Position: PositionEnd}},
		{pr.Strings{"left"}, nil, ForRows, rtl, horizontal, true, SelfAlignment{Position: PositionStart}},
		// baselines
		{pr.Strings{"baseline"}, nil, ForRows, horizontal, horizontal, true, SelfAlignment{Position: PositionBaseline}},
		{pr.Strings{"first", "baseline"}, nil, ForRows, horizontal, horizontal, true, SelfAlignment{Position: PositionBaseline}},
		{pr.Strings{"last", "baseline"}, nil, ForRows, horizontal, horizontal, true, SelfAlignment{Position: PositionLastBaseline}},
		{pr.Strings{"baseline"}, nil, ForColumns, horizontal, horizontal, true, SelfAlignment{Position: PositionStart}},
		{pr.Strings{"last", "baseline"}, nil, ForColumns, horizontal, horizontal, true, SelfAlignment{Position: PositionEnd}},
		{pr.Strings{"baseline"}, nil, ForRows, vertical, vertical, true, SelfAlignment{Position: PositionStart}},
	} {
		got := ResolveSelfAlignment(test.self, test.items, test.axis, test.container, test.item, test.hasAutoSize)
		tu.AssertEqual(t, got, test.expected)
	}
}

func TestItemPositionString(t *testing.T) {
	tu.AssertEqual(t, PositionLastBaseline.String(), "last baseline")
	tu.AssertEqual(t, ItemPosition(42).String(), "<invalid position>")
}

func TestAlignmentOffset(t *testing.T) {
	tu.AssertEqual(t, alignmentOffset(SelfAlignment{Position: PositionCenter}, 100, 20), Fl(40))
	tu.AssertEqual(t, alignmentOffset(SelfAlignment{Position: PositionEnd}, 100, 20), Fl(80))
	tu.AssertEqual(t, alignmentOffset(SelfAlignment{Position: PositionStretch}, 100, 20), Fl(0))
	tu.AssertEqual(t, alignmentOffset(SelfAlignment{Position: PositionBaseline}, 100, 20), Fl(0))
	// overflowing items
	tu.AssertEqual(t, alignmentOffset(SelfAlignment{Position: PositionEnd}, 10, 20), Fl(-10))
	tu.AssertEqual(t, alignmentOffset(SelfAlignment{Position: PositionEnd, Safe: true}, 10, 20), Fl(0))
}
