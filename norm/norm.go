// Package norm normalizes Unicode text into the four normalization forms
// of Unicode Standard Annex #15.
//
// The normalizer is a character-at-a-time transducer: it consumes one
// scalar value of input, keeps a small bounded window around the current
// starter, and emits normalized scalars into a growing output buffer.
// The pipeline has three working parts: a recursive decomposer driving
// the canonical and compatibility mappings (with algorithmic Hangul
// decomposition), a reorder buffer that keeps runs of combining marks
// sorted by canonical combining class, and a composer state machine that
// greedily recombines starters with their mark runs and conjoining Jamo.
//
// Unicode data comes from the ucd package; output goes through the
// buffer package.
package norm

import (
	"github.com/boxesandglue/textnorm/buffer"
	"github.com/boxesandglue/textnorm/ucd"
)

// A Form denotes a canonical representation of Unicode code points.
// The Unicode-defined normalization and equivalence forms are:
//
//	NFC   Unicode Normalization Form C
//	NFD   Unicode Normalization Form D
//	NFKC  Unicode Normalization Form KC
//	NFKD  Unicode Normalization Form KD
//
// References: https://unicode.org/reports/tr15/.
type Form int

const (
	NFC Form = iota
	NFD
	NFKC
	NFKD
)

// MaxDecomposeLen is the worst-case expansion length of a single scalar
// value. The outer drive loop reserves 1 + MaxDecomposeLen scalars of
// output headroom before handling each input scalar, so the per-scalar
// write path never reallocates.
const MaxDecomposeLen = 32

// composing returns true for the forms that recompose after decomposing.
func (f Form) composing() bool {
	return f == NFC || f == NFKC
}

// mode returns the decomposition mapping the form uses.
func (f Form) mode() ucd.Mode {
	if f == NFKC || f == NFKD {
		return ucd.Compatibility
	}
	return ucd.Canonical
}

// String returns f(s).
func (f Form) String(s string) string {
	out := buffer.NewSized(len(s))
	f.normalize(inputString(s), out)
	return out.String()
}

// Bytes returns f(b) as a new slice.
func (f Form) Bytes(b []byte) []byte {
	out := buffer.NewSized(len(b))
	f.normalize(inputString(string(b)), out)
	return []byte(out.String())
}

// Runes returns f applied to a slice of scalar values.
func (f Form) Runes(rs []rune) []rune {
	out := buffer.NewSized(len(rs) + len(rs)/2)
	f.normalize(inputRunes(rs), out)
	res := make([]rune, out.Len())
	copy(res, out.Runes())
	return res
}

// Append returns f(append(out, src...)).
func (f Form) Append(out []byte, src ...byte) []byte {
	b := make([]byte, 0, len(out)+len(src))
	b = append(b, out...)
	b = append(b, src...)
	return f.Bytes(b)
}

// IsNormal returns true if s == f(s).
func (f Form) IsNormal(s string) bool {
	return f.String(s) == s
}

// IsNormalBytes returns true if b == f(b).
func (f Form) IsNormalBytes(b []byte) bool {
	return string(f.Bytes(b)) == string(b)
}

// normalize is the outer drive loop: one pass over the input stream,
// with the headroom check hoisted out of the per-scalar write path.
func (f Form) normalize(in *input, out *buffer.Buffer) {
	if f.composing() {
		c := composer{mode: f.mode(), out: out}
		for {
			r, ok := in.next()
			if !ok {
				break
			}
			if !out.Headroom(1 + MaxDecomposeLen) {
				return
			}
			c.feed(r)
		}
		c.close()
		return
	}

	d := decomposer{mode: f.mode(), out: out}
	for {
		r, ok := in.next()
		if !ok {
			break
		}
		if !out.Headroom(1 + MaxDecomposeLen) {
			return
		}
		d.feed(r)
	}
	d.close()
}
