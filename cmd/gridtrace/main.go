// Command gridtrace lays out the grid containers of an HTML file and
// prints the resulting item rectangles and grid lines.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
