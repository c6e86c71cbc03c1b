package norm

import (
	"github.com/boxesandglue/textnorm/buffer"
	"github.com/boxesandglue/textnorm/ucd"
)

// decomposer drives the NFD/NFKD path: each input scalar is expanded
// against the decomposition mapping (Hangul syllables algorithmically)
// and the resulting scalars pass through the reorder buffer on their way
// to the output.
type decomposer struct {
	mode ucd.Mode
	rb   reorderBuffer
	out  *buffer.Buffer
}

// feed consumes one input scalar.
func (d *decomposer) feed(c rune) {
	if ucd.IsHangul(c) {
		d.rb.flush(d.out)
		l, v, t := ucd.DecomposeHangul(c)
		d.out.Add(l)
		d.out.Add(v)
		if t != ucd.TBase {
			d.out.Add(t)
		}
		return
	}
	d.expand(c)
}

// expand applies the decomposition mapping depth-first and left to
// right until every element is terminal. Expansion elements are not
// routed back through the Hangul branch: the decomposition data never
// yields precomposed syllables. Depth is bounded because the table data
// is acyclic with expansions of at most MaxDecomposeLen scalars.
func (d *decomposer) expand(c rune) {
	if ucd.Decomposes(d.mode, c) {
		for _, x := range ucd.Decompose(d.mode, c) {
			d.expand(x)
		}
		return
	}
	d.reorder(c)
}

// reorder buffers combining marks and flushes the pending run at each
// starter boundary.
func (d *decomposer) reorder(c rune) {
	if ucd.IsCombining(c) {
		d.rb.insert(c)
		return
	}
	d.rb.flush(d.out)
	d.out.Add(c)
}

// close flushes the pending mark run at end of input.
func (d *decomposer) close() {
	d.rb.flush(d.out)
}
