package bidi

import "github.com/bidiorder/bidi/bidiclass"

// resolveWeak applies W1-W7 to the characters of run in place.
func resolveWeak(buf []richChar, run levelRun) {
	resolveW1toW3(buf, run)
	resolveW4(buf, run)
	resolveW5(buf, run)
	resolveW6(buf, run)
	resolveW7(buf, run)
}

// resolveW1toW3 resolves NSM-follows-previous-type (W1), EN-after-AL
// becomes AN (W2), and AL becomes R (W3), in that order, matching the
// original algorithm's single combined sweep for W1/W2 followed by a
// second sweep for W3 (AL must still read as AL during W2).
func resolveW1toW3(buf []richChar, run levelRun) {
	prevType := run.sor
	prevStrong := run.sor

	for i := run.start; i < run.end; i++ {
		rc := &buf[i]

		if rc.typ == bidiclass.NSM {
			rc.typ = prevType
		}

		if rc.typ == bidiclass.EN && prevStrong == bidiclass.AL {
			rc.typ = bidiclass.AN
		}

		if rc.typ == bidiclass.R || rc.typ == bidiclass.L || rc.typ == bidiclass.AL {
			prevStrong = rc.typ
		}
		prevType = rc.typ
	}

	for i := run.start; i < run.end; i++ {
		if buf[i].typ == bidiclass.AL {
			buf[i].typ = bidiclass.R
		}
	}
}

func neighborType(buf []richChar, run levelRun, idx int, delta int, edge bidiclass.Class) bidiclass.Class {
	j := idx + delta
	if j < run.start || j >= run.end {
		return edge
	}
	return buf[j].typ
}

// resolveW4 resolves a single ES between two EN, and a single CS between
// two numbers of the same type.
func resolveW4(buf []richChar, run levelRun) {
	type change struct {
		idx int
		to  bidiclass.Class
	}
	var changes []change

	for i := run.start; i < run.end; i++ {
		prev := neighborType(buf, run, i, -1, run.sor)
		next := neighborType(buf, run, i, 1, run.eor)

		switch buf[i].typ {
		case bidiclass.ES:
			if prev == bidiclass.EN && next == bidiclass.EN {
				changes = append(changes, change{i, bidiclass.EN})
			}
		case bidiclass.CS:
			if prev == next && (prev == bidiclass.EN || prev == bidiclass.AN) {
				changes = append(changes, change{i, prev})
			}
		}
	}

	for _, c := range changes {
		buf[c.idx].typ = c.to
	}
}

// resolveW5 turns runs of ET adjacent to an EN into EN, transitively
// across other ET characters.
func resolveW5(buf []richChar, run levelRun) {
	for i := run.start; i < run.end; i++ {
		if buf[i].typ != bidiclass.EN {
			continue
		}
		for j := i - 1; j >= run.start && buf[j].typ == bidiclass.ET; j-- {
			buf[j].typ = bidiclass.EN
		}
		for j := i + 1; j < run.end && buf[j].typ == bidiclass.ET; j++ {
			buf[j].typ = bidiclass.EN
		}
	}
}

// resolveW6 turns any remaining ES, ET, CS into ON.
func resolveW6(buf []richChar, run levelRun) {
	for i := run.start; i < run.end; i++ {
		switch buf[i].typ {
		case bidiclass.ES, bidiclass.ET, bidiclass.CS:
			buf[i].typ = bidiclass.ON
		}
	}
}

// resolveW7 turns EN into L when the nearest preceding strong type
// (R, L, or sor) is L.
func resolveW7(buf []richChar, run levelRun) {
	prevStrong := run.sor
	for i := run.start; i < run.end; i++ {
		switch buf[i].typ {
		case bidiclass.R, bidiclass.L:
			prevStrong = buf[i].typ
		case bidiclass.EN:
			if prevStrong == bidiclass.L {
				buf[i].typ = bidiclass.L
			}
		}
	}
}
