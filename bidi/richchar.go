// Package bidi implements the Unicode Bidirectional Algorithm (UAX #9):
// paragraph-level detection, explicit embedding/override/isolate
// processing, weak- and neutral-type resolution, implicit level
// assignment, level-run reordering, and mirroring. It reorders a
// logical-order rune sequence into the visual order a display engine
// expects.
//
// Line breaking, text shaping, and font/glyph selection are out of scope;
// see bidiencoding for a byte-string convenience wrapper and cmd/bidi for
// a command-line front end.
package bidi

import (
	"errors"
	"io"

	"github.com/bidiorder/bidi/bidiclass"
)

// ErrInvalidUTF8 is returned by Display when text is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("bidi: invalid UTF-8 in input")

// Direction is a caller-supplied or resolved paragraph base direction.
type Direction int

const (
	// DirectionAuto means the base direction is computed from the text
	// itself via rules P2/P3.
	DirectionAuto Direction = iota
	DirectionLTR
	DirectionRTL
)

// Options configures a call to Display.
type Options struct {
	// BaseDirection overrides P2/P3's computed paragraph level. Leave as
	// DirectionAuto to let the algorithm detect it.
	BaseDirection Direction

	// Debug, when true, writes a trace of every rich character's type and
	// level to DebugWriter (or os.Stderr if nil) at four stages: initial,
	// post-X9, resolved (after W/N/I), and final. It never affects the
	// returned string.
	Debug       bool
	DebugWriter io.Writer

	// UpperIsRTL treats every ASCII uppercase letter as strong R. It
	// exists purely so tests can exercise RTL behavior without literal
	// Hebrew or Arabic text.
	UpperIsRTL bool
}

// richChar is one scalar value carried through the pipeline, tracking both
// its immutable original class and its progressively rewritten current
// class and embedding level.
type richChar struct {
	scalar   rune
	origType bidiclass.Class
	typ      bidiclass.Class
	level    int
}

func newBuffer(text string, upperIsRTL bool) []richChar {
	buf := make([]richChar, 0, len(text))
	for _, r := range text {
		c := bidiclass.ClassOf(r, upperIsRTL)
		buf = append(buf, richChar{scalar: r, origType: c, typ: c})
	}
	return buf
}

// classesOf returns the origType of every rich character, used by the
// paragraph-level scan (P2/P3) and by FSI's sub-scan (X5c).
func classesOf(buf []richChar) []bidiclass.Class {
	classes := make([]bidiclass.Class, len(buf))
	for i, rc := range buf {
		classes[i] = rc.origType
	}
	return classes
}
