package main

import (
	"testing"

	"github.com/benoitkugler/gridlayout/css/properties"
	tu "github.com/benoitkugler/gridlayout/utils/testutils"
)

func TestKebabCase(t *testing.T) {
	tu.AssertEqual(t, kebabCase("GridTemplateColumns"), "grid-template-columns")
	tu.AssertEqual(t, kebabCase("RowGap"), "row-gap")
}

func TestConstants(t *testing.T) {
	props := parseConstants("../properties.go")
	tu.AssertEqual(t, props[0], prop{properties.PDisplay, "PDisplay", "display"})
	for _, p := range props {
		if p.value.String() != p.propName {
			t.Fatalf("inconsistent generated names for %s", p.varName)
		}
		if _, has := properties.InitialValues[p.value]; !has {
			t.Fatalf("missing initial value for %s", p.propName)
		}
	}
}
