package bidi

import "github.com/bidiorder/bidi/bidiclass"

// paragraphLevel implements P2 and P3: scan classes forward, skipping any
// run whose unmatched isolate-initiator count is above zero, and return 0
// for the first L, 1 for the first AL or R found at depth zero. Returns 0
// if no such class is found (P3's default).
//
// It is shared between the top-level call and X5c's FSI sub-scan, per the
// design note that both should use one parameterized routine.
func paragraphLevel(classes []bidiclass.Class) int {
	depth := 0
	for _, c := range classes {
		if c == bidiclass.PDI {
			if depth > 0 {
				depth--
			}
			continue
		}
		if depth > 0 {
			if c.IsIsolateInitiator() {
				depth++
			}
			continue
		}
		switch c {
		case bidiclass.L:
			return 0
		case bidiclass.AL, bidiclass.R:
			return 1
		}
		if c.IsIsolateInitiator() {
			depth++
		}
	}
	return 0
}

// matchingPDIOffset scans classes (which begins immediately after an
// isolate initiator) for the offset of its matching PDI, honoring nested
// isolate initiators. Returns len(classes) if there is no match, meaning
// the isolate runs to the end of input.
func matchingPDIOffset(classes []bidiclass.Class) int {
	depth := 1
	for i, c := range classes {
		if c.IsIsolateInitiator() {
			depth++
		} else if c == bidiclass.PDI {
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(classes)
}
