package bidi

import "github.com/bidiorder/bidi/bidiclass"

// MaxDepth is the maximum explicit embedding level, per UAX #9 (revision
// 6.3 and later). Older revisions use 61; this module targets the modern
// limit throughout.
const MaxDepth = 125

// maxStackDepth bounds the directional status stack at MaxDepth+2 entries,
// per the data model's DSE description.
const maxStackDepth = MaxDepth + 2

// override is the directional override carried by a directional status
// stack entry.
type override int

const (
	overrideNeutral override = iota
	overrideL
	overrideR
)

// dse is a directional status stack entry: (level, override, is_isolate).
type dse struct {
	level     int
	override  override
	isIsolate bool
}

// dseStack is the bounded stack of directional status entries maintained
// by the explicit-levels engine (X1-X8).
type dseStack struct {
	entries []dse
}

func newDSEStack(paragraphLevel int) *dseStack {
	s := &dseStack{entries: make([]dse, 0, maxStackDepth)}
	s.entries = append(s.entries, dse{level: paragraphLevel, override: overrideNeutral})
	return s
}

func (s *dseStack) top() dse {
	return s.entries[len(s.entries)-1]
}

func (s *dseStack) push(e dse) {
	if len(s.entries) >= maxStackDepth {
		return
	}
	s.entries = append(s.entries, e)
}

func (s *dseStack) pop() {
	if len(s.entries) > 1 {
		s.entries = s.entries[:len(s.entries)-1]
	}
}

func (s *dseStack) reset(paragraphLevel int) {
	s.entries = s.entries[:1]
	s.entries[0] = dse{level: paragraphLevel, override: overrideNeutral}
}

func leastGreaterOdd(level int) int {
	return (level + 1) | 1
}

func leastGreaterEven(level int) int {
	return (level + 2) &^ 1
}

// explicitState carries the stack and the three overflow/valid counters
// threaded through X1-X8, in place of any process- or module-level state.
type explicitState struct {
	stack           *dseStack
	overflowIsolate int
	overflowEmbed   int
	validIsolate    int
}

// resolveExplicit applies X1-X8 to buf in place, then returns the slice
// with X9's removed characters filtered out. buf's classes must still be
// the untouched origType values (this must run before any weak/neutral
// resolution has a chance to mutate typ).
func resolveExplicit(buf []richChar, paragraphLvl int) []richChar {
	st := &explicitState{stack: newDSEStack(paragraphLvl)}

	for i := range buf {
		processExplicit(st, buf, i, paragraphLvl)
	}

	return removeX9(buf)
}

func processExplicit(st *explicitState, buf []richChar, i int, paragraphLvl int) {
	rc := &buf[i]

	switch rc.origType {
	case bidiclass.RLE, bidiclass.LRE, bidiclass.RLO, bidiclass.LRO:
		handleEmbeddingOrOverride(st, rc)
	case bidiclass.RLI:
		handleIsolateInitiator(st, rc, leastGreaterOdd)
	case bidiclass.LRI:
		handleIsolateInitiator(st, rc, leastGreaterEven)
	case bidiclass.FSI:
		handleFSI(st, buf, i)
	case bidiclass.PDI:
		handlePDI(st, rc)
	case bidiclass.PDF:
		handlePDF(st)
	case bidiclass.B:
		st.stack.reset(paragraphLvl)
		st.overflowIsolate, st.overflowEmbed, st.validIsolate = 0, 0, 0
		rc.level = paragraphLvl
	case bidiclass.BN:
		// Removed by X9; no assignment needed.
	default:
		// X6.
		top := st.stack.top()
		rc.level = top.level
		switch top.override {
		case overrideL:
			rc.typ = bidiclass.L
		case overrideR:
			rc.typ = bidiclass.R
		}
	}
}

func handleEmbeddingOrOverride(st *explicitState, rc *richChar) {
	var newLevel int
	var ov override
	switch rc.origType {
	case bidiclass.RLE:
		newLevel, ov = leastGreaterOdd(st.stack.top().level), overrideNeutral
	case bidiclass.LRE:
		newLevel, ov = leastGreaterEven(st.stack.top().level), overrideNeutral
	case bidiclass.RLO:
		newLevel, ov = leastGreaterOdd(st.stack.top().level), overrideR
	case bidiclass.LRO:
		newLevel, ov = leastGreaterEven(st.stack.top().level), overrideL
	}

	if newLevel <= MaxDepth && st.overflowIsolate == 0 && st.overflowEmbed == 0 {
		st.stack.push(dse{level: newLevel, override: ov})
	} else if st.overflowIsolate == 0 {
		st.overflowEmbed++
	}
}

func handleIsolateInitiator(st *explicitState, rc *richChar, leastGreater func(int) int) {
	top := st.stack.top()
	rc.level = top.level

	newLevel := leastGreater(top.level)
	if newLevel <= MaxDepth && st.overflowIsolate == 0 && st.overflowEmbed == 0 {
		st.stack.push(dse{level: newLevel, override: overrideNeutral, isIsolate: true})
		st.validIsolate++
	} else {
		st.overflowIsolate++
	}
}

func handleFSI(st *explicitState, buf []richChar, i int) {
	var classes []bidiclass.Class
	if i+1 < len(buf) {
		classes = make([]bidiclass.Class, len(buf)-i-1)
		for j := range classes {
			classes[j] = buf[i+1+j].origType
		}
	}
	offset := matchingPDIOffset(classes)
	sub := classes[:offset]

	rc := &buf[i]
	if paragraphLevel(sub) == 1 {
		handleIsolateInitiator(st, rc, leastGreaterOdd)
	} else {
		handleIsolateInitiator(st, rc, leastGreaterEven)
	}
}

func handlePDI(st *explicitState, rc *richChar) {
	switch {
	case st.overflowIsolate > 0:
		st.overflowIsolate--
	case st.validIsolate == 0:
		// ignore
	default:
		st.overflowEmbed = 0
		for !st.stack.top().isIsolate {
			st.stack.pop()
		}
		st.stack.pop()
		st.validIsolate--
	}
	rc.level = st.stack.top().level
}

func handlePDF(st *explicitState) {
	switch {
	case st.overflowIsolate > 0:
		// ignore
	case st.overflowEmbed > 0:
		st.overflowEmbed--
	case !st.stack.top().isIsolate && len(st.stack.entries) >= 2:
		st.stack.pop()
	}
}

// removeX9 filters out characters whose original class is removed by X9:
// RLE, LRE, RLO, LRO, PDF, BN.
func removeX9(buf []richChar) []richChar {
	out := make([]richChar, 0, len(buf))
	for _, rc := range buf {
		if rc.origType.IsRemovedByX9() {
			continue
		}
		out = append(out, rc)
	}
	return out
}
