package bidi

import (
	"testing"

	"github.com/bidiorder/bidi/bidiclass"
)

func levelsOf(buf []richChar) []int {
	out := make([]int, len(buf))
	for i, rc := range buf {
		out[i] = rc.level
	}
	return out
}

func TestLeastGreaterOddEven(t *testing.T) {
	cases := []struct {
		level       int
		wantOdd     int
		wantEven    int
	}{
		{0, 1, 2},
		{1, 3, 2},
		{2, 3, 4},
		{3, 5, 4},
	}
	for _, c := range cases {
		if got := leastGreaterOdd(c.level); got != c.wantOdd {
			t.Errorf("leastGreaterOdd(%d) = %d, want %d", c.level, got, c.wantOdd)
		}
		if got := leastGreaterEven(c.level); got != c.wantEven {
			t.Errorf("leastGreaterEven(%d) = %d, want %d", c.level, got, c.wantEven)
		}
	}
}

func TestX9RemovesExplicitFormatting(t *testing.T) {
	// LRE 'a' PDF -> 'a' survives, LRE/PDF do not.
	text := "‪a‬"
	buf := newBuffer(text, false)
	out := resolveExplicit(buf, 0)
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out))
	}
	if out[0].scalar != 'a' {
		t.Errorf("out[0].scalar = %q, want 'a'", out[0].scalar)
	}
}

func TestExplicitEmbeddingLevels(t *testing.T) {
	// 'a' LRE 'b' RLE 'c' PDF PDF 'd' -- nested embeddings bump the level.
	text := "a‪b‫c‬‬d"
	buf := newBuffer(text, false)
	out := resolveExplicit(buf, 0)

	letters := make(map[rune]int)
	for _, rc := range out {
		letters[rc.scalar] = rc.level
	}
	if letters['a'] != 0 {
		t.Errorf("level(a) = %d, want 0", letters['a'])
	}
	if letters['b'] != 2 {
		t.Errorf("level(b) = %d, want 2", letters['b'])
	}
	if letters['c'] != 3 {
		t.Errorf("level(c) = %d, want 3", letters['c'])
	}
	if letters['d'] != 0 {
		t.Errorf("level(d) = %d, want 0", letters['d'])
	}
}

func TestIsolateOverflowCounters(t *testing.T) {
	// Push isolates past MaxDepth to force overflow_isolate bookkeeping;
	// the algorithm must remain total (no panics, no invalid levels).
	text := ""
	for i := 0; i < 200; i++ {
		text += "⁧" // RLI
	}
	text += "x"
	for i := 0; i < 200; i++ {
		text += "⁩" // PDI
	}

	buf := newBuffer(text, false)
	out := resolveExplicit(buf, 0)
	for _, rc := range out {
		if rc.level < 0 || rc.level > MaxDepth {
			t.Fatalf("level %d out of bounds", rc.level)
		}
	}
}

func TestParagraphLevelSkipsIsolateContent(t *testing.T) {
	classes := []bidiclass.Class{
		bidiclass.L,
		bidiclass.LRI, bidiclass.R, bidiclass.PDI,
		bidiclass.L,
	}
	if got := paragraphLevel(classes); got != 0 {
		t.Errorf("paragraphLevel = %d, want 0", got)
	}

	classes2 := []bidiclass.Class{
		bidiclass.LRI, bidiclass.L, bidiclass.PDI,
		bidiclass.R,
	}
	if got := paragraphLevel(classes2); got != 1 {
		t.Errorf("paragraphLevel = %d, want 1", got)
	}
}

func TestParagraphLevelDefaultsToZero(t *testing.T) {
	classes := []bidiclass.Class{bidiclass.EN, bidiclass.WS, bidiclass.ON}
	if got := paragraphLevel(classes); got != 0 {
		t.Errorf("paragraphLevel = %d, want 0", got)
	}
}
