package terminal

import (
	"fmt"
	"io"
)

const (
	pointsPerDot = 100
	dotsPerLine  = 80
)

// Progress returns a callback printing a dot to w every 100 items, and a new
// line every 80 dots.
func Progress(w io.Writer) func(n int) {
	return func(n int) {
		if n%pointsPerDot != 0 {
			return
		}
		fmt.Fprint(w, ".")
		if n%(pointsPerDot*dotsPerLine) == 0 {
			fmt.Fprint(w, "\n")
		}
	}
}
