// Package tracer provides a function to dump the current layout tree,
// which may be used in debug mode.
package tracer

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/benoitkugler/gridlayout/css/properties"
	"github.com/benoitkugler/gridlayout/html/boxes"
	"github.com/benoitkugler/gridlayout/utils"
)

type Tracer struct {
	out io.Writer
}

// NewTracer panics if an error occurs.
func NewTracer(outFile string) Tracer {
	f, err := os.Create(outFile)
	if err != nil {
		panic(err)
	}

	return Tracer{out: f}
}

// NewTracerWriter dumps to `out`.
func NewTracerWriter(out io.Writer) Tracer { return Tracer{out: out} }

func FormatMaybeFloat(v properties.MaybeFloat) string {
	if v, ok := v.(properties.Float); ok {
		return strconv.FormatFloat(float64(utils.RoundPrec(float32(v), 2)), 'g', -1, 32)
	}
	return fmt.Sprintf("%v", v)
}

func (t Tracer) Dump(line string) {
	fmt.Fprintln(t.out, line)
}

// DumpTree prints the position and the size of the margin box
// of `box` and its descendants.
func (t Tracer) DumpTree(box *boxes.Box, context string) {
	fmt.Fprintln(t.out, context)

	var printer func(box *boxes.Box, indent int)
	printer = func(box *boxes.Box, indent int) {
		fmt.Fprint(t.out, strings.Repeat(" ", indent))
		fmt.Fprintf(t.out, "%s: %s %s %s %s\n", box,
			FormatMaybeFloat(box.PositionX),
			FormatMaybeFloat(box.PositionY),
			FormatMaybeFloat(box.MarginWidth()),
			FormatMaybeFloat(box.MarginHeight()),
		)

		for _, child := range box.Children {
			printer(child, indent+1)
		}
	}

	printer(box, 0)

	fmt.Fprintln(t.out)
}
