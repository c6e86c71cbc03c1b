package norm

import (
	"github.com/boxesandglue/textnorm/buffer"
	"github.com/boxesandglue/textnorm/ucd"
)

// reorderBuffer holds the run of combining marks seen since the last
// starter, kept in non-decreasing canonical combining class order. Marks
// of equal class keep their input order.
//
// The first two marks live inline; longer runs spill to a slice. The
// vast majority of runs are 0-2 marks, so the hot path never allocates.
type reorderBuffer struct {
	inline [2]rune
	spill  []rune
	n      int
}

func (rb *reorderBuffer) empty() bool {
	return rb.n == 0
}

func (rb *reorderBuffer) at(i int) rune {
	if i < 2 {
		return rb.inline[i]
	}
	return rb.spill[i-2]
}

func (rb *reorderBuffer) set(i int, c rune) {
	if i < 2 {
		rb.inline[i] = c
		return
	}
	rb.spill[i-2] = c
}

// insert places c after every buffered mark of equal or lower combining
// class. The precondition is that c is a combining mark; a starter here
// is a programming error.
func (rb *reorderBuffer) insert(c rune) {
	cc := ucd.CombiningClass(c)
	if cc == 0 {
		panic("norm: starter inserted into reorder buffer")
	}

	if rb.n >= 2 && len(rb.spill) < rb.n-1 {
		rb.spill = append(rb.spill, 0)
	}

	i := rb.n
	for i > 0 && ucd.CombiningClass(rb.at(i-1)) > cc {
		rb.set(i, rb.at(i-1))
		i--
	}
	rb.set(i, c)
	rb.n++
}

// flush writes the buffered marks in order and empties the buffer.
func (rb *reorderBuffer) flush(out *buffer.Buffer) {
	for i := 0; i < rb.n; i++ {
		out.Add(rb.at(i))
	}
	rb.reset()
}

func (rb *reorderBuffer) reset() {
	rb.n = 0
	rb.spill = rb.spill[:0]
}
