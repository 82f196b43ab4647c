package bidi

import "github.com/bidiorder/bidi/bidiclass"

// resolveImplicit applies I1-I2 to the characters of run in place.
// Precondition: every character's type is one of L, R, EN, AN.
func resolveImplicit(buf []richChar, run levelRun) {
	for i := run.start; i < run.end; i++ {
		rc := &buf[i]
		if rc.level%2 == 0 {
			switch rc.typ {
			case bidiclass.R:
				rc.level++
			case bidiclass.EN, bidiclass.AN:
				rc.level += 2
			}
		} else {
			switch rc.typ {
			case bidiclass.L, bidiclass.EN, bidiclass.AN:
				rc.level++
			}
		}
	}
}
