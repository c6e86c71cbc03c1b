package buffer

// SetDigest is a Bloom filter for fast scalar-set membership checks.
//
// The composition tables front their map lookups with a digest so that the
// common case (a scalar that is the second element of no primary composite)
// is rejected without hashing.
//
// The digest is not perfectly accurate (false positives possible), but
// false negatives never occur: if MayHave returns false, the scalar is
// definitely not in the set.
type SetDigest struct {
	mask uint64
}

// Add adds a scalar value to the digest.
func (d *SetDigest) Add(c Codepoint) {
	d.mask |= 1 << (uint32(c) & 63)
}

// AddArray adds multiple scalar values to the digest.
func (d *SetDigest) AddArray(cs []Codepoint) {
	for _, c := range cs {
		d.Add(c)
	}
}

// MayHave returns true if the scalar might be in the set.
// Returns false only if the scalar is definitely not in the set.
func (d *SetDigest) MayHave(c Codepoint) bool {
	return d.mask&(1<<(uint32(c)&63)) != 0
}

// MayIntersect returns true if the two digests might have common elements.
func (d *SetDigest) MayIntersect(other SetDigest) bool {
	return d.mask&other.mask != 0
}

// Union combines this digest with another.
func (d *SetDigest) Union(other SetDigest) {
	d.mask |= other.mask
}

// Clear resets the digest to empty.
func (d *SetDigest) Clear() {
	d.mask = 0
}
