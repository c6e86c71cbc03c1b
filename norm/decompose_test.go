package norm

import (
	"testing"

	"github.com/boxesandglue/textnorm/ucd"
)

func TestNFD(t *testing.T) {
	tests := []struct {
		name string
		in   []rune
		want []rune
	}{
		{"e acute", []rune{0x00E9}, []rune{0x0065, 0x0301}},
		{"d dot-above plus dot-below", []rune{0x1E0B, 0x0323}, []rune{0x0064, 0x0323, 0x0307}},
		{"q with reordered marks", []rune{0x0071, 0x0307, 0x0323}, []rune{0x0071, 0x0323, 0x0307}},
		{"hangul GAG", []rune{0xAC01}, []rune{0x1100, 0x1161, 0x11A8}},
		{"conjoining jamo pass through", []rune{0x1100, 0x1161, 0x11A8}, []rune{0x1100, 0x1161, 0x11A8}},
		{"angstrom sign", []rune{0x212B}, []rune{0x0041, 0x030A}},
		{"hangul LV", []rune{0xAC00}, []rune{0x1100, 0x1161}},
		{"multi-level expansion", []rune{0x01D5}, []rune{0x0055, 0x0308, 0x0304}},
		{"iota dialytika tonos", []rune{0x0390}, []rune{0x03B9, 0x0308, 0x0301}},
		{"dialytika tonos alone", []rune{0x0344}, []rune{0x0308, 0x0301}},
		{"marks reorder across expansion", []rune{0x00E4, 0x0323}, []rune{0x0061, 0x0323, 0x0308}},
		{"ligature stays put canonically", []rune{0xFB01}, []rune{0xFB01}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NFD.Runes(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("NFD(%U) = %U, want %U", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("NFD(%U)[%d] = %U, want %U", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNFKD(t *testing.T) {
	tests := []struct {
		name string
		in   []rune
		want []rune
	}{
		{"fi ligature", []rune{0xFB01}, []rune{0x0066, 0x0069}},
		{"no-break space", []rune{0x00A0}, []rune{0x0020}},
		{"fraction", []rune{0x00BC}, []rune{0x0031, 0x2044, 0x0034}},
		{"DZ caron recurses into canonical", []rune{0x01C4}, []rune{0x0044, 0x005A, 0x030C}},
		{"long s t recurses into compat", []rune{0xFB05}, []rune{0x0073, 0x0074}},
		{"long s with dot above", []rune{0x1E9B}, []rune{0x0073, 0x0307}},
		{"canonical mapping still applies", []rune{0x00E9}, []rune{0x0065, 0x0301}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NFKD.Runes(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("NFKD(%U) = %U, want %U", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("NFKD(%U)[%d] = %U, want %U", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestNFDOrdering checks that no reorderable pair survives in NFD output:
// for every adjacent <A, B>, either B is a starter or ccc(A) <= ccc(B).
func TestNFDOrdering(t *testing.T) {
	inputs := [][]rune{
		{0x0071, 0x0307, 0x0323},
		{0x00E4, 0x0323, 0x0301, 0x0316},
		{0x1E69, 0x0334, 0x0301},
		{0x0344, 0x0323, 0x0300},
		{0xAC01, 0x0301},
	}

	for _, in := range inputs {
		got := NFD.Runes(in)
		for i := 1; i < len(got); i++ {
			a := ucd.CombiningClass(got[i-1])
			b := ucd.CombiningClass(got[i])
			if b != 0 && a > b {
				t.Errorf("NFD(%U): reorderable pair %U (%d) before %U (%d)", in, got[i-1], a, got[i], b)
			}
		}
	}
}
