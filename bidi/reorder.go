package bidi

import "github.com/bidiorder/bidi/bidiclass"

// applyL1 resets the embedding level to paragraphLvl for every RC whose
// orig_type is B or S, for any contiguous run of BN/WS immediately
// preceding such an RC, and for any contiguous trailing run of BN/WS at
// the very end of the buffer (this last case applies even when the
// buffer's final line has no explicit B, per the design note that L1
// clause 4 must also fire at end of input).
func applyL1(buf []richChar, paragraphLvl int) {
	for i := range buf {
		if buf[i].origType == bidiclass.B || buf[i].origType == bidiclass.S {
			buf[i].level = paragraphLvl
			for j := i - 1; j >= 0 && isBNOrWS(buf[j]); j-- {
				buf[j].level = paragraphLvl
			}
		}
	}
	for j := len(buf) - 1; j >= 0 && isBNOrWS(buf[j]); j-- {
		buf[j].level = paragraphLvl
	}
}

func isBNOrWS(rc richChar) bool {
	return rc.origType == bidiclass.BN || rc.origType == bidiclass.WS
}

// lineRange is a half-open [start, end) span of buf belonging to one line.
type lineRange struct {
	start, end int
}

// splitLines partitions buf into lines: each line is a maximal prefix
// ending at an RC whose orig_type is B, or at end of buffer.
func splitLines(buf []richChar) []lineRange {
	var lines []lineRange
	start := 0
	for i, rc := range buf {
		if rc.origType == bidiclass.B {
			lines = append(lines, lineRange{start, i + 1})
			start = i + 1
		}
	}
	if start < len(buf) {
		lines = append(lines, lineRange{start, len(buf)})
	}
	return lines
}

// reorderLine applies L2 to the [start, end) span of buf: for each level
// from the line's highest level down to its lowest odd level, reverse
// every maximal contiguous sub-slice at or above that level.
func reorderLine(buf []richChar, lr lineRange) {
	if lr.end-lr.start < 2 {
		return
	}

	highest := 0
	lowestOdd := -1
	for i := lr.start; i < lr.end; i++ {
		level := buf[i].level
		if level > highest {
			highest = level
		}
		if level%2 == 1 && (lowestOdd == -1 || level < lowestOdd) {
			lowestOdd = level
		}
	}
	if lowestOdd == -1 {
		return
	}

	for level := highest; level >= lowestOdd; level-- {
		i := lr.start
		for i < lr.end {
			if buf[i].level < level {
				i++
				continue
			}
			j := i
			for j < lr.end && buf[j].level >= level {
				j++
			}
			reverseRange(buf, i, j)
			i = j
		}
	}
}

func reverseRange(buf []richChar, start, end int) {
	for i, j := start, end-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}

// applyMirroring applies L4: any character whose final level is odd and
// which has the Bidi_Mirrored property is replaced by its mirror glyph.
func applyMirroring(buf []richChar) {
	for i := range buf {
		if buf[i].level%2 != 1 {
			continue
		}
		if m, ok := bidiclass.Mirror(buf[i].scalar); ok {
			buf[i].scalar = m
		}
	}
}
