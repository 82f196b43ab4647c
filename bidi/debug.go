package bidi

import (
	"fmt"
	"io"
)

// traceBuffer writes one line per rich character to w: index, scalar,
// original class, current class, and level. Purely diagnostic; see
// Options.Debug. The format is unspecified for machine consumption and may
// change without notice.
func traceBuffer(w io.Writer, label string, buf []richChar) {
	fmt.Fprintf(w, "-- %s (%d chars) --\n", label, len(buf))
	for i, rc := range buf {
		fmt.Fprintf(w, "%4d  %U  orig=%-3s  type=%-3s  level=%d\n",
			i, rc.scalar, rc.origType, rc.typ, rc.level)
	}
}
