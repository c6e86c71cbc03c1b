// Package buffer implements the scalar-value buffer shared by the
// normalization pipeline stages.
//
// A Buffer holds a growing sequence of Unicode scalar values. The input
// side decodes text into scalars (AddString, AddRunes); the output side is
// written one scalar at a time by the normalizer (Add) and converted back
// to text at the end (String).
//
// Allocation failures are latched rather than returned from every call:
// once an operation would exceed the configured maximum length, the buffer
// enters an error state and all further writes are ignored. Callers check
// InError once, after the whole pipeline has run.
package buffer

// Codepoint represents a Unicode scalar value.
type Codepoint = rune

// Buffer size limits
const (
	maxLenDefault = 0x3FFFFFFF // ~1 billion scalars
)

// Buffer is a growable sequence of scalar values.
type Buffer struct {
	info []Codepoint

	// Length in use; info may have spare capacity beyond it.
	len int

	// State flags
	successful bool // No allocation failures
	maxLen     int  // Maximum allowed length
}

// New creates a new empty buffer with default settings.
func New() *Buffer {
	return &Buffer{
		successful: true,
		maxLen:     maxLenDefault,
	}
}

// NewSized creates a new empty buffer with capacity for at least size
// scalars. Callers that know the input length pre-size optimistically and
// let the buffer grow on demand (by 1.5x + 32, see enlarge).
func NewSized(size int) *Buffer {
	b := New()
	if size > 0 {
		b.info = make([]Codepoint, 0, size)
	}
	return b
}

// Clear empties the buffer, keeping its storage for reuse.
func (b *Buffer) Clear() {
	b.len = 0
	b.info = b.info[:0]
	b.successful = true
}

// Len returns the number of scalars in the buffer.
func (b *Buffer) Len() int {
	return b.len
}

// Runes returns the buffered scalars. The slice aliases the buffer's
// storage and is valid until the next write.
func (b *Buffer) Runes() []Codepoint {
	return b.info[:b.len]
}

// String returns the buffered scalars encoded as UTF-8.
func (b *Buffer) String() string {
	return string(b.info[:b.len])
}

// InError returns true if an operation exceeded the maximum length.
func (b *Buffer) InError() bool {
	return !b.successful
}

// --- Adding content ---

// Add appends a single scalar value.
func (b *Buffer) Add(c Codepoint) {
	if !b.ensure(b.len + 1) {
		return
	}
	b.info = b.info[:b.len+1]
	b.info[b.len] = c
	b.len++
}

// AddRunes appends scalar values from a rune slice.
func (b *Buffer) AddRunes(runes []Codepoint) {
	if !b.ensure(b.len + len(runes)) {
		return
	}
	b.info = b.info[:b.len+len(runes)]
	copy(b.info[b.len:], runes)
	b.len += len(runes)
}

// AddString appends the scalar values of a UTF-8 string.
func (b *Buffer) AddString(s string) {
	for _, r := range s {
		b.Add(r)
	}
}

// --- Internal buffer management ---

// Headroom makes sure the buffer can take at least n more scalars without
// reallocating mid-write. It reports false only when the buffer is in the
// error state; the normalizer checks it once per input scalar so the write
// path itself stays branch-predictable.
func (b *Buffer) Headroom(n int) bool {
	return b.ensure(b.len + n)
}

// ensure makes sure the buffer can hold at least size scalars.
func (b *Buffer) ensure(size int) bool {
	if size > b.maxLen {
		b.successful = false
		return false
	}
	if size <= cap(b.info) {
		return b.successful
	}
	return b.enlarge(size)
}

// enlarge grows the buffer to accommodate size scalars.
func (b *Buffer) enlarge(size int) bool {
	if !b.successful {
		return false
	}

	// Grow by 1.5x + 32
	newAlloc := cap(b.info)
	for size >= newAlloc {
		newAlloc = newAlloc + newAlloc/2 + 32
	}

	newInfo := make([]Codepoint, b.len, newAlloc)
	copy(newInfo, b.info[:b.len])
	b.info = newInfo

	return true
}
