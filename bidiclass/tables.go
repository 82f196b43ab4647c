package bidiclass

import (
	xbidi "golang.org/x/text/unicode/bidi"
)

// fromXText maps golang.org/x/text/unicode/bidi's Class enum onto our own,
// so that the rest of this package (and package bidi) never imports x/text
// types directly.
func fromXText(c xbidi.Class) Class {
	switch c {
	case xbidi.L:
		return L
	case xbidi.R:
		return R
	case xbidi.AL:
		return AL
	case xbidi.EN:
		return EN
	case xbidi.ES:
		return ES
	case xbidi.ET:
		return ET
	case xbidi.AN:
		return AN
	case xbidi.CS:
		return CS
	case xbidi.NSM:
		return NSM
	case xbidi.BN:
		return BN
	case xbidi.B:
		return B
	case xbidi.S:
		return S
	case xbidi.WS:
		return WS
	case xbidi.ON:
		return ON
	case xbidi.LRE:
		return LRE
	case xbidi.LRO:
		return LRO
	case xbidi.RLE:
		return RLE
	case xbidi.RLO:
		return RLO
	case xbidi.PDF:
		return PDF
	case xbidi.LRI:
		return LRI
	case xbidi.RLI:
		return RLI
	case xbidi.FSI:
		return FSI
	case xbidi.PDI:
		return PDI
	default:
		return ON
	}
}

// ClassOf reports the bidirectional class of r, read from
// golang.org/x/text/unicode/bidi's generated Unicode Character Database
// trie (the same library the teacher calls for paragraph bidi analysis).
//
// When upperIsRTL is true, every ASCII uppercase letter (A-Z) is reported
// as strong R regardless of its UCD class, a debug-only hook used by tests
// to exercise the algorithm without needing literal Hebrew/Arabic input
// (see the testable scenarios in the accompanying documentation).
func ClassOf(r rune, upperIsRTL bool) Class {
	if upperIsRTL && r >= 'A' && r <= 'Z' {
		return R
	}

	props, _ := xbidi.LookupRune(r)
	return fromXText(props.Class())
}
