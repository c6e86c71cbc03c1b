package norm

import (
	"golang.org/x/text/transform"

	"github.com/boxesandglue/textnorm/buffer"
)

// Transform implements the transform.Transformer interface, so a Form
// can sit in a transform chain. The normalizer works on one complete
// text value at a time: the adapter requests the full source via
// ErrShortSrc until atEOF and then normalizes in a single pass. Nothing
// is committed to dst until the whole result fits.
func (f Form) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if !atEOF {
		return 0, 0, transform.ErrShortSrc
	}

	out := buffer.NewSized(len(src))
	f.normalize(inputString(string(src)), out)
	if out.InError() {
		return 0, 0, transform.ErrShortDst
	}

	res := out.String()
	if len(dst) < len(res) {
		return 0, 0, transform.ErrShortDst
	}
	return copy(dst, res), len(src), nil
}

// Reset implements the transform.Transformer interface. The transducer
// keeps no state between text values.
func (f Form) Reset() {}
