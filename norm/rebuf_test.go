package norm

import (
	"testing"

	"github.com/boxesandglue/textnorm/buffer"
)

func flushed(rb *reorderBuffer) []rune {
	out := buffer.New()
	rb.flush(out)
	return append([]rune(nil), out.Runes()...)
}

func TestReorderBufferInsert(t *testing.T) {
	tests := []struct {
		name   string
		insert []rune
		want   []rune
	}{
		{
			"single mark",
			[]rune{0x0301},
			[]rune{0x0301},
		},
		{
			"already ordered",
			[]rune{0x0323, 0x0301}, // 220, 230
			[]rune{0x0323, 0x0301},
		},
		{
			"reordered",
			[]rune{0x0301, 0x0323}, // 230, 220
			[]rune{0x0323, 0x0301},
		},
		{
			"equal classes keep input order",
			[]rune{0x0307, 0x0301, 0x0300}, // all 230
			[]rune{0x0307, 0x0301, 0x0300},
		},
		{
			"low class sinks below equal run",
			[]rune{0x0307, 0x0301, 0x0323}, // 230, 230, 220
			[]rune{0x0323, 0x0307, 0x0301},
		},
		{
			"overlay first",
			[]rune{0x0301, 0x0334, 0x0323}, // 230, 1, 220
			[]rune{0x0334, 0x0323, 0x0301},
		},
		{
			"spill past the inline slots",
			[]rune{0x0301, 0x0323, 0x0327, 0x0300, 0x0316}, // 230, 220, 202, 230, 220
			[]rune{0x0327, 0x0323, 0x0316, 0x0301, 0x0300},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rb reorderBuffer
			for _, c := range tt.insert {
				rb.insert(c)
			}
			got := flushed(&rb)
			if len(got) != len(tt.want) {
				t.Fatalf("flush yielded %U, want %U", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("flush[%d] = %U, want %U", i, got[i], tt.want[i])
				}
			}
			if !rb.empty() {
				t.Error("buffer should be empty after flush")
			}
		})
	}
}

func TestReorderBufferReuse(t *testing.T) {
	var rb reorderBuffer
	out := buffer.New()

	for i := 0; i < 3; i++ {
		rb.insert(0x0301)
		rb.insert(0x0323)
		rb.flush(out)
	}

	want := []rune{0x0323, 0x0301, 0x0323, 0x0301, 0x0323, 0x0301}
	got := out.Runes()
	if len(got) != len(want) {
		t.Fatalf("got %U, want %U", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("out[%d] = %U, want %U", i, got[i], want[i])
		}
	}
}

func TestReorderBufferRejectsStarter(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("inserting a starter should panic")
		}
	}()
	var rb reorderBuffer
	rb.insert('A')
}
