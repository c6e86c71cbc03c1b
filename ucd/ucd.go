// Package ucd is the Unicode data oracle backing the normalizer.
//
// It exposes pure lookup functions over the Unicode Character Database:
// canonical combining classes, canonical and compatibility decomposition
// mappings, primary composition pairs (with the Full Composition
// Exclusions already applied), and the algorithmic Hangul syllable
// constants and predicates.
//
// The tables in tables.go are generated from UnicodeData.txt and
// CompositionExclusions.txt; see cmd/gen-ucd. Everything here is immutable
// after package init and safe for concurrent use.
package ucd

//go:generate go run ../cmd/gen-ucd -o tables.go UnicodeData.txt CompositionExclusions.txt

import "sort"

// Mode selects between the canonical and compatibility decomposition
// mappings. Compatibility is a superset: where no compatibility mapping
// exists, the canonical one applies.
type Mode int

const (
	Canonical Mode = iota
	Compatibility
)

// --- Combining classes ---

// CombiningClass returns the Canonical Combining Class of a scalar value.
// Starters have class 0.
func CombiningClass(c rune) uint8 {
	n := len(cccRanges)
	i := sort.Search(n, func(i int) bool { return cccRanges[i].hi >= c })
	if i < n && cccRanges[i].lo <= c {
		return cccRanges[i].ccc
	}
	return 0
}

// IsCombining returns true if the scalar is a combining mark, i.e. its
// combining class is nonzero.
func IsCombining(c rune) bool {
	return CombiningClass(c) != 0
}

// --- Decomposition ---

// Decomposes returns true if the scalar has a decomposition mapping under
// the given mode. Hangul syllables decompose algorithmically and are NOT
// covered here; callers test IsHangul first.
func Decomposes(m Mode, c rune) bool {
	if _, ok := canonicalDecomp[c]; ok {
		return true
	}
	if m == Compatibility {
		_, ok := compatDecomp[c]
		return ok
	}
	return false
}

// Decompose returns the decomposition mapping of a scalar under the given
// mode. The mapping is one level only, not fully recursive: elements of
// the result may themselves decompose further. Returns nil when the scalar
// has no mapping.
func Decompose(m Mode, c rune) []rune {
	if d, ok := canonicalDecomp[c]; ok {
		return d
	}
	if m == Compatibility {
		if d, ok := compatDecomp[c]; ok {
			return d
		}
	}
	return nil
}

// --- Hangul ---

// Hangul syllable composition constants, per Unicode chapter 3.12.
const (
	SBase rune = 0xAC00 // first precomposed syllable
	LBase rune = 0x1100 // first leading consonant Jamo
	VBase rune = 0x1161 // first vowel Jamo
	TBase rune = 0x11A7 // one before the first trailing consonant Jamo

	LCount = 19
	VCount = 21
	TCount = 28
	NCount = VCount * TCount // 588
	SCount = LCount * NCount // 11172
)

// IsHangul returns true for precomposed Hangul syllables (U+AC00..U+D7A3).
func IsHangul(c rune) bool {
	return c >= SBase && c < SBase+SCount
}

// IsHangulLV returns true for precomposed syllables with no trailing
// consonant, i.e. those a following T Jamo may still extend.
func IsHangulLV(c rune) bool {
	return IsHangul(c) && (c-SBase)%TCount == 0
}

// IsJamo returns true for the conjoining Jamo that take part in
// algorithmic composition: L in U+1100..U+1112, V in U+1161..U+1175,
// T in U+11A8..U+11C2.
func IsJamo(c rune) bool {
	return (c >= LBase && c < LBase+LCount) ||
		(c >= VBase && c < VBase+VCount) ||
		(c > TBase && c < TBase+TCount)
}

// JamoLIndex returns the leading-consonant index (0..18) of a conjoining
// L Jamo.
func JamoLIndex(c rune) (int, bool) {
	if c >= LBase && c < LBase+LCount {
		return int(c - LBase), true
	}
	return 0, false
}

// JamoVIndex returns the vowel index (0..20) of a conjoining V Jamo.
func JamoVIndex(c rune) (int, bool) {
	if c >= VBase && c < VBase+VCount {
		return int(c - VBase), true
	}
	return 0, false
}

// JamoTIndex returns the trailing-consonant index (1..27) of a conjoining
// T Jamo. Index 0 (no trailing consonant) is never returned.
func JamoTIndex(c rune) (int, bool) {
	if c > TBase && c < TBase+TCount {
		return int(c - TBase), true
	}
	return 0, false
}

// DecomposeHangul splits a precomposed syllable into its L, V and T Jamo.
// A returned t equal to TBase means the syllable has no trailing
// consonant.
func DecomposeHangul(c rune) (l, v, t rune) {
	si := c - SBase
	l = LBase + si/NCount
	v = VBase + (si%NCount)/TCount
	t = TBase + si%TCount
	return l, v, t
}

// ComposeHangulLV returns the precomposed syllable for a leading-consonant
// index and a vowel index.
func ComposeHangulLV(li, vi int) rune {
	return SBase + rune(li*NCount+vi*TCount)
}
