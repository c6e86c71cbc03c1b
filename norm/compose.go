package norm

import (
	"github.com/boxesandglue/textnorm/buffer"
	"github.com/boxesandglue/textnorm/ucd"
)

// composerState is the state of the compose-path accumulator.
type composerState uint8

const (
	// stateNoStarter: no starter seen yet in the current run; leading
	// combining marks collect in the reorder buffer.
	stateNoStarter composerState = iota

	// stateStarter: holding a starter plus the marks seen after it.
	stateStarter

	// stateJamo: the most recent scalar was a Hangul syllable or
	// conjoining Jamo; the jamo buffer holds any pending fragment.
	stateJamo
)

// composer drives the NFC/NFKC path. Each input scalar runs through a
// LIFO worklist so that decomposition expansions are processed left to
// right with O(1) stack usage regardless of depth.
type composer struct {
	mode    ucd.Mode
	state   composerState
	starter rune
	marks   reorderBuffer
	jamo    jamoBuffer
	work    []rune
	scratch []rune
	out     *buffer.Buffer
}

// feed consumes one input scalar.
func (c *composer) feed(r rune) {
	c.work = append(c.work[:0], r)
	for len(c.work) > 0 {
		ch := c.work[len(c.work)-1]
		c.work = c.work[:len(c.work)-1]
		c.step(ch)
	}
}

// step processes one scalar from the worklist.
func (c *composer) step(ch rune) {
	switch {
	case ucd.IsHangul(ch):
		c.flush()
		if ucd.IsHangulLV(ch) {
			c.jamo.setLV(ch)
		} else {
			c.out.Add(ch)
		}
		c.state = stateJamo

	case ucd.IsJamo(ch):
		if c.state != stateJamo {
			c.flush()
		}
		c.jamo.feed(ch, c.out)
		c.state = stateJamo

	case ucd.Decomposes(c.mode, ch):
		// Prepend the expansion to the worklist: pushed in reverse so
		// the leftmost element pops first.
		xs := ucd.Decompose(c.mode, ch)
		for i := len(xs) - 1; i >= 0; i-- {
			c.work = append(c.work, xs[i])
		}

	case ucd.IsCombining(ch):
		if c.state == stateJamo {
			c.jamo.flush(c.out)
			c.state = stateNoStarter
		}
		c.marks.insert(ch)

	default: // starter
		if c.state == stateStarter && c.marks.empty() && ucd.ComposesWithStarter(ch) {
			if x, ok := ucd.ComposePairNonCombining(c.starter, ch); ok {
				c.starter = x
				return
			}
		}
		c.flush()
		c.state = stateStarter
		c.starter = ch
	}
}

// flush emits the pending state and returns the composer to an empty
// no-starter state.
func (c *composer) flush() {
	switch c.state {
	case stateNoStarter:
		c.marks.flush(c.out)
	case stateStarter:
		c.composeAndWrite()
	case stateJamo:
		c.jamo.flush(c.out)
	}
	c.state = stateNoStarter
}

// close flushes the composer at end of input.
func (c *composer) close() {
	c.flush()
}

// composeAndWrite combines the held starter with its mark run and emits
// the result.
//
// Marks are tried left to right. A successful combination consumes only
// that mark. A failed combination leaves the mark uncombined and blocks
// the contiguous run of equal-class marks behind it (a starter cannot
// combine across a mark of equal or higher class, and grouping the
// equal-class run keeps its relative order). Marks of a strictly higher
// class may still combine with the updated starter afterwards.
func (c *composer) composeAndWrite() {
	starter := c.starter
	n := c.marks.n
	c.scratch = c.scratch[:0]

	for i := 0; i < n; {
		m := c.marks.at(i)
		if x, ok := ucd.ComposePair(starter, m); ok {
			starter = x
			i++
			continue
		}
		cc := ucd.CombiningClass(m)
		c.scratch = append(c.scratch, m)
		i++
		for i < n && ucd.CombiningClass(c.marks.at(i)) == cc {
			c.scratch = append(c.scratch, c.marks.at(i))
			i++
		}
	}

	c.out.Add(starter)
	for _, m := range c.scratch {
		c.out.Add(m)
	}
	c.marks.reset()
}
