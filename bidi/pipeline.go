package bidi

import (
	"os"
	"strings"
	"unicode/utf8"
)

// Paragraph holds one invocation's state: the post-X9 rich-character
// buffer and the resolved paragraph embedding level. It is not safe for
// concurrent mutation, but independent Paragraph values over disjoint
// input are fully independent (see the concurrency model).
type Paragraph struct {
	buf  []richChar
	base int
}

// NewParagraph builds a Paragraph from text and opts and runs the full
// seven-pass pipeline (Oracle through Reorderer & Mirrorer) except for
// emitting the final string, so that callers and tests can inspect the
// result through Level, Len and String. Display wraps it.
func NewParagraph(text string, opts Options) (*Paragraph, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidUTF8
	}

	w := opts.DebugWriter
	if opts.Debug && w == nil {
		w = os.Stderr
	}

	buf0 := newBuffer(text, opts.UpperIsRTL)

	var base int
	switch opts.BaseDirection {
	case DirectionLTR:
		base = 0
	case DirectionRTL:
		base = 1
	default:
		base = paragraphLevel(classesOf(buf0))
	}

	if opts.Debug {
		traceBuffer(w, "initial", buf0)
	}

	buf1 := resolveExplicit(buf0, base)

	if opts.Debug {
		traceBuffer(w, "post-X9", buf1)
	}

	for _, run := range splitLevelRuns(buf1, base) {
		resolveWeak(buf1, run)
		resolveNeutral(buf1, run)
		resolveImplicit(buf1, run)
	}

	if opts.Debug {
		traceBuffer(w, "resolved", buf1)
	}

	applyL1(buf1, base)
	for _, line := range splitLines(buf1) {
		reorderLine(buf1, line)
	}
	applyMirroring(buf1)

	if opts.Debug {
		traceBuffer(w, "final", buf1)
	}

	return &Paragraph{buf: buf1, base: base}, nil
}

// Level returns the resolved paragraph embedding level (0 or 1).
func (p *Paragraph) Level() int {
	return p.base
}

// Len returns the number of runes remaining after X9 removal.
func (p *Paragraph) Len() int {
	return len(p.buf)
}

// String renders the paragraph's rich-character buffer, in its current
// (already reordered, already mirrored) order, as a Unicode string.
func (p *Paragraph) String() string {
	var b strings.Builder
	b.Grow(len(p.buf))
	for _, rc := range p.buf {
		b.WriteRune(rc.scalar)
	}
	return b.String()
}

// Display reorders text into UBA visual order and returns it as a string.
// The returned string has exactly the same rune count as text minus the
// count of X9-removed characters.
func Display(text string, opts Options) (string, error) {
	p, err := NewParagraph(text, opts)
	if err != nil {
		return "", err
	}
	return p.String(), nil
}
