package bidi

import "github.com/bidiorder/bidi/bidiclass"

// strongForNeutralBoundary maps EN/AN to R for the purposes of N1's
// same-direction comparison; every other type passes through unchanged.
func strongForNeutralBoundary(c bidiclass.Class) bidiclass.Class {
	if c == bidiclass.EN || c == bidiclass.AN {
		return bidiclass.R
	}
	return c
}

// resolveNeutral applies N1-N2 to the characters of run in place.
func resolveNeutral(buf []richChar, run levelRun) {
	i := run.start
	for i < run.end {
		if !buf[i].typ.IsNeutral() {
			i++
			continue
		}

		j := i + 1
		for j < run.end && buf[j].typ.IsNeutral() {
			j++
		}

		var prev bidiclass.Class
		if i == run.start {
			prev = run.sor
		} else {
			prev = buf[i-1].typ
		}
		var next bidiclass.Class
		if j == run.end {
			next = run.eor
		} else {
			next = buf[j].typ
		}

		prev = strongForNeutralBoundary(prev)
		next = strongForNeutralBoundary(next)

		if prev == next {
			for k := i; k < j; k++ {
				buf[k].typ = prev
			}
		} else {
			for k := i; k < j; k++ {
				buf[k].typ = strongFromLevel(buf[k].level)
			}
		}

		i = j
	}
}
