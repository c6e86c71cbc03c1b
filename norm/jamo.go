package norm

import (
	"github.com/boxesandglue/textnorm/buffer"
	"github.com/boxesandglue/textnorm/ucd"
)

// jamoState is the state of the Hangul composition micro-machine.
type jamoState uint8

const (
	jamoEmpty jamoState = iota
	jamoL               // holding a leading consonant
	jamoLV              // holding a precomposed LV syllable
)

// jamoBuffer accumulates a pending Hangul fragment: a leading consonant
// waiting for its vowel, or an LV syllable waiting for an optional
// trailing consonant.
type jamoBuffer struct {
	state jamoState
	li    int  // leading-consonant index, valid in jamoL
	lv    rune // precomposed LV syllable, valid in jamoLV
}

// setLV loads a precomposed LV syllable, so a following T Jamo may still
// extend it to an LVT syllable.
func (jb *jamoBuffer) setLV(lv rune) {
	jb.state = jamoLV
	jb.lv = lv
}

// feed consumes one scalar. Scalars that cannot extend the pending
// fragment flush it and are then reconsidered against the empty buffer.
func (jb *jamoBuffer) feed(c rune, out *buffer.Buffer) {
	switch jb.state {
	case jamoEmpty:
		if li, ok := ucd.JamoLIndex(c); ok {
			jb.state = jamoL
			jb.li = li
			return
		}
		out.Add(c)
	case jamoL:
		if vi, ok := ucd.JamoVIndex(c); ok {
			jb.setLV(ucd.ComposeHangulLV(jb.li, vi))
			return
		}
		jb.flush(out)
		jb.feed(c, out)
	case jamoLV:
		if ti, ok := ucd.JamoTIndex(c); ok {
			out.Add(jb.lv + rune(ti))
			jb.state = jamoEmpty
			return
		}
		jb.flush(out)
		jb.feed(c, out)
	}
}

// flush emits the pending fragment, if any, and empties the buffer.
func (jb *jamoBuffer) flush(out *buffer.Buffer) {
	switch jb.state {
	case jamoL:
		out.Add(ucd.LBase + rune(jb.li))
	case jamoLV:
		out.Add(jb.lv)
	}
	jb.state = jamoEmpty
}
