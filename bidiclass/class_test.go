package bidiclass

import "testing"

func TestClassOfBasicLatin(t *testing.T) {
	cases := []struct {
		r    rune
		want Class
	}{
		{'a', L},
		{'Z', L},
		{'0', EN},
		{'9', EN},
		{' ', WS},
		{'\t', S},
		{'\n', B},
		{',', CS},
		{'.', CS},
		{'+', ES},
		{'-', ES},
		{'$', ET},
		{'%', ET},
		{'!', ON},
		{'(', ON},
	}
	for _, c := range cases {
		if got := ClassOf(c.r, false); got != c.want {
			t.Errorf("ClassOf(%q) = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestClassOfUpperIsRTLHook(t *testing.T) {
	if got := ClassOf('A', true); got != R {
		t.Errorf("ClassOf('A', upperIsRTL=true) = %v, want R", got)
	}
	if got := ClassOf('a', true); got != L {
		t.Errorf("ClassOf('a', upperIsRTL=true) = %v, want L", got)
	}
	if got := ClassOf('A', false); got != L {
		t.Errorf("ClassOf('A', upperIsRTL=false) = %v, want L", got)
	}
}

func TestClassOfExplicitFormatting(t *testing.T) {
	cases := []struct {
		r    rune
		want Class
	}{
		{'‪', LRE},
		{'‫', RLE},
		{'‬', PDF},
		{'‭', LRO},
		{'‮', RLO},
		{'⁦', LRI},
		{'⁧', RLI},
		{'⁨', FSI},
		{'⁩', PDI},
		{'‎', L},
		{'‏', R},
	}
	for _, c := range cases {
		if got := ClassOf(c.r, false); got != c.want {
			t.Errorf("ClassOf(%U) = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestClassOfArabicIndicDigits(t *testing.T) {
	if got := ClassOf('١', false); got != AN {
		t.Errorf("ClassOf(arabic-indic 1) = %v, want AN", got)
	}
	if got := ClassOf('۱', false); got != EN {
		t.Errorf("ClassOf(extended arabic-indic 1) = %v, want EN", got)
	}
}

func TestClassOfArabicLetterIsAL(t *testing.T) {
	if got := ClassOf('ا', false); got != AL { // ARABIC LETTER ALEF
		t.Errorf("ClassOf(alef) = %v, want AL", got)
	}
}

func TestClassOfHebrewIsR(t *testing.T) {
	if got := ClassOf('א', false); got != R { // HEBREW LETTER ALEF
		t.Errorf("ClassOf(hebrew alef) = %v, want R", got)
	}
}

func TestClassOfCombiningMarkIsNSM(t *testing.T) {
	if got := ClassOf('́', false); got != NSM { // COMBINING ACUTE ACCENT
		t.Errorf("ClassOf(combining acute) = %v, want NSM", got)
	}
}

func TestStringNamesEveryClass(t *testing.T) {
	for c := L; c <= PDI; c++ {
		if c.String() == "" {
			t.Errorf("Class(%d).String() is empty", int(c))
		}
	}
}

func TestIsIsolateInitiator(t *testing.T) {
	for _, c := range []Class{LRI, RLI, FSI} {
		if !c.IsIsolateInitiator() {
			t.Errorf("%v.IsIsolateInitiator() = false, want true", c)
		}
	}
	if PDI.IsIsolateInitiator() {
		t.Errorf("PDI.IsIsolateInitiator() = true, want false")
	}
}

func TestIsRemovedByX9(t *testing.T) {
	for _, c := range []Class{RLE, LRE, RLO, LRO, PDF, BN} {
		if !c.IsRemovedByX9() {
			t.Errorf("%v.IsRemovedByX9() = false, want true", c)
		}
	}
	if L.IsRemovedByX9() {
		t.Errorf("L.IsRemovedByX9() = true, want false")
	}
}

func TestIsNeutral(t *testing.T) {
	for _, c := range []Class{B, S, WS, ON} {
		if !c.IsNeutral() {
			t.Errorf("%v.IsNeutral() = false, want true", c)
		}
	}
	if L.IsNeutral() {
		t.Errorf("L.IsNeutral() = true, want false")
	}
}

func TestMirrorPairs(t *testing.T) {
	cases := []struct {
		r, want rune
	}{
		{'(', ')'},
		{')', '('},
		{'[', ']'},
		{'{', '}'},
		{'<', '>'},
	}
	for _, c := range cases {
		got, ok := Mirror(c.r)
		if !ok {
			t.Errorf("Mirror(%q) not found", c.r)
			continue
		}
		if got != c.want {
			t.Errorf("Mirror(%q) = %q, want %q", c.r, got, c.want)
		}
	}
}

func TestMirrorNonMirroredChar(t *testing.T) {
	if _, ok := Mirror('a'); ok {
		t.Errorf("Mirror('a') ok = true, want false")
	}
	if _, ok := Mirror('('); !ok {
		t.Errorf("Mirror('(') ok = false, want true")
	}
}
