package bidi

import "github.com/bidiorder/bidi/bidiclass"

// levelRun is a maximal contiguous range of the post-X9 buffer sharing one
// embedding level, together with its start-of-run and end-of-run virtual
// strong directionalities (X10).
type levelRun struct {
	start, end int // [start, end) into the post-X9 buffer
	sor, eor   bidiclass.Class
}

// strongFromLevel maps a level to its virtual strong direction: odd
// levels are R, even levels are L.
func strongFromLevel(level int) bidiclass.Class {
	if level%2 == 1 {
		return bidiclass.R
	}
	return bidiclass.L
}

func runDirection(a, b int) bidiclass.Class {
	if a > b {
		return strongFromLevel(a)
	}
	return strongFromLevel(b)
}

// splitLevelRuns implements X10: it partitions buf into maximal level runs
// and computes each run's sor/eor from the levels at its boundaries and
// the paragraph level.
func splitLevelRuns(buf []richChar, paragraphLvl int) []levelRun {
	if len(buf) == 0 {
		return nil
	}

	var runs []levelRun
	start := 0
	for i := 1; i <= len(buf); i++ {
		if i < len(buf) && buf[i].level == buf[start].level {
			continue
		}
		var nextLevel int
		if i < len(buf) {
			nextLevel = buf[i].level
		} else {
			nextLevel = paragraphLvl
		}
		var prevLevel int
		if start == 0 {
			prevLevel = paragraphLvl
		} else {
			prevLevel = buf[start-1].level
		}

		runs = append(runs, levelRun{
			start: start,
			end:   i,
			sor:   runDirection(prevLevel, buf[start].level),
			eor:   runDirection(buf[i-1].level, nextLevel),
		})
		start = i
	}
	return runs
}
