package ucd

import (
	"sort"

	"github.com/boxesandglue/textnorm/buffer"
)

// The primary composition table is derived from the canonical
// decomposition mappings at init, the same way the UCD derives primary
// composites: a pair <a, b> composes to c exactly when c canonically
// decomposes to <a, b>, a and c are starters, and c is not a Full
// Composition Exclusion. Hangul composition is algorithmic and not part
// of this table.
var (
	composePairs map[[2]rune]rune

	// starterSeconds holds the starters that occur as the second element
	// of some primary composite (e.g. the two-part Indic vowel signs).
	starterSeconds map[rune]bool

	// secondDigest fronts the pair lookups: most scalars are the second
	// element of no composite at all, and the digest rejects those
	// without hashing.
	secondDigest buffer.SetDigest

	starterSecondDigest buffer.SetDigest
)

func init() {
	composePairs = make(map[[2]rune]rune, len(canonicalDecomp))
	starterSeconds = make(map[rune]bool)

	for c, d := range canonicalDecomp {
		if len(d) != 2 {
			continue // singleton decomposition
		}
		if CombiningClass(d[0]) != 0 || CombiningClass(c) != 0 {
			continue // non-starter decomposition
		}
		if isExcluded(c) {
			continue
		}
		composePairs[[2]rune{d[0], d[1]}] = c
		secondDigest.Add(d[1])
		if CombiningClass(d[1]) == 0 {
			starterSeconds[d[1]] = true
			starterSecondDigest.Add(d[1])
		}
	}
}

func isExcluded(c rune) bool {
	n := len(compositionExclusions)
	i := sort.Search(n, func(i int) bool { return compositionExclusions[i] >= c })
	return i < n && compositionExclusions[i] == c
}

// ComposePair returns the primary composition of a starter a with a
// following scalar b, if one exists. Pairs on the Full Composition
// Exclusions list are never returned.
func ComposePair(a, b rune) (rune, bool) {
	if !secondDigest.MayHave(b) {
		return 0, false
	}
	c, ok := composePairs[[2]rune{a, b}]
	return c, ok
}

// ComposesWithStarter returns true when b is a starter that occurs as
// the second element of some primary composite. It is a fast negative
// guard for the starter-starter composition path: false means no pair
// <a, b> can compose for any a.
func ComposesWithStarter(b rune) bool {
	if !starterSecondDigest.MayHave(b) {
		return false
	}
	return starterSeconds[b]
}

// ComposePairNonCombining is ComposePair restricted to starter-starter
// pairs. Callers guard with ComposesWithStarter first.
func ComposePairNonCombining(a, b rune) (rune, bool) {
	if !starterSeconds[b] {
		return 0, false
	}
	return ComposePair(a, b)
}
