package norm

import (
	"testing"
)

func TestNFC(t *testing.T) {
	tests := []struct {
		name string
		in   []rune
		want []rune
	}{
		{"e acute stays composed", []rune{0x00E9}, []rune{0x00E9}},
		{"e plus acute composes", []rune{0x0065, 0x0301}, []rune{0x00E9}},
		{"d dot-above plus dot-below", []rune{0x1E0B, 0x0323}, []rune{0x1E0D, 0x0307}},
		{"q keeps reordered marks", []rune{0x0071, 0x0307, 0x0323}, []rune{0x0071, 0x0323, 0x0307}},
		{"hangul GAG stays", []rune{0xAC01}, []rune{0xAC01}},
		{"conjoining jamo compose", []rune{0x1100, 0x1161, 0x11A8}, []rune{0xAC01}},
		{"angstrom composes to ring A", []rune{0x212B}, []rune{0x00C5}},
		{"ohm composes to omega", []rune{0x2126}, []rune{0x03A9}},
		{"multi-mark recomposition", []rune{0x0055, 0x0308, 0x0304}, []rune{0x01D5}},
		{"same-class mark blocks", []rune{0x00C4, 0x0306}, []rune{0x00C4, 0x0306}},
		{"lower class does not block higher", []rune{0x0041, 0x0328, 0x0301}, []rune{0x0104, 0x0301}},
		{"exclusion stays decomposed", []rune{0x0915, 0x093C}, []rune{0x0915, 0x093C}},
		{"excluded source decomposes", []rune{0x0958}, []rune{0x0915, 0x093C}},
		{"leading marks have no starter", []rune{0x0301, 0x0065}, []rune{0x0301, 0x0065}},
		{"kana voicing", []rune{0x304B, 0x3099}, []rune{0x304C}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NFC.Runes(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("NFC(%U) = %U, want %U", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("NFC(%U)[%d] = %U, want %U", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNFCStarterStarterFastPath(t *testing.T) {
	// The Bengali two-part vowel composes from two starters.
	got := NFC.Runes([]rune{0x09C7, 0x09BE})
	if len(got) != 1 || got[0] != 0x09CB {
		t.Fatalf("NFC(U+09C7 U+09BE) = %U, want [U+09CB]", got)
	}

	// A pending mark run disables the fast path; the mark stays between
	// the starters and the two starters stay uncomposed.
	got = NFC.Runes([]rune{0x09C7, 0x0301, 0x09BE})
	want := []rune{0x09C7, 0x0301, 0x09BE}
	if len(got) != len(want) {
		t.Fatalf("NFC(U+09C7 U+0301 U+09BE) = %U, want %U", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("out[%d] = %U, want %U", i, got[i], want[i])
		}
	}
}

func TestNFCHangulSyllableWithTail(t *testing.T) {
	// A precomposed LV syllable followed by a trailing Jamo extends to
	// the full LVT syllable.
	got := NFC.Runes([]rune{0xAC00, 0x11A8})
	if len(got) != 1 || got[0] != 0xAC01 {
		t.Fatalf("NFC(U+AC00 U+11A8) = %U, want [U+AC01]", got)
	}

	// An LVT syllable takes no further trailing Jamo.
	got = NFC.Runes([]rune{0xAC01, 0x11A8})
	want := []rune{0xAC01, 0x11A8}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("NFC(U+AC01 U+11A8) = %U, want %U", got, want)
	}
}

func TestNFCJamoAfterLatin(t *testing.T) {
	// Switching from a Latin starter to Jamo flushes the held starter.
	got := NFC.Runes([]rune{0x0065, 0x0301, 0x1100, 0x1161})
	want := []rune{0x00E9, 0xAC00}
	if len(got) != len(want) {
		t.Fatalf("got %U, want %U", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("out[%d] = %U, want %U", i, got[i], want[i])
		}
	}

	// A combining mark after a Hangul syllable starts a new mark run; it
	// does not attach to the syllable via the pair table.
	got = NFC.Runes([]rune{0xAC00, 0x0301, 0x0065})
	want = []rune{0xAC00, 0x0301, 0x0065}
	if len(got) != len(want) {
		t.Fatalf("got %U, want %U", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("out[%d] = %U, want %U", i, got[i], want[i])
		}
	}
}

func TestNFKC(t *testing.T) {
	tests := []struct {
		name string
		in   []rune
		want []rune
	}{
		{"fi ligature decomposes", []rune{0xFB01}, []rune{0x0066, 0x0069}},
		{"DZ caron recomposes the caron", []rune{0x01C4}, []rune{0x0044, 0x017D}},
		{"long s dot above", []rune{0x1E9B}, []rune{0x1E61}},
		{"fullwidth A", []rune{0xFF21}, []rune{0x0041}},
		{"canonical composition still applies", []rune{0x0065, 0x0301}, []rune{0x00E9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NFKC.Runes(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("NFKC(%U) = %U, want %U", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("NFKC(%U)[%d] = %U, want %U", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}
