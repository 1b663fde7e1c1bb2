package textutil

import "testing"

func TestAdvance(t *testing.T) {
	tests := []struct {
		name   string
		ch     byte
		column uint64
		want   uint64
	}{
		{"printable", 'a', 3, 4},
		{"carriage return", '\r', 17, 0},
		{"tab from zero", '\t', 0, 8},
		{"tab mid stop", '\t', 5, 8},
		{"tab on stop", '\t', 8, 16},
		{"backspace", '\b', 4, 3},
		{"backspace clamps", '\b', 0, 0},
		{"bell", 0x07, 9, 9},
		{"escape", 0x1b, 9, 9},
		{"delete", 0x7f, 2, 2},
		{"continuation low", 0x80, 5, 5},
		{"continuation high", 0xbf, 5, 5},
		{"lead byte", 0xe4, 5, 6},
		{"latin1 range", 0xc3, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Advance(tt.ch, tt.column); got != tt.want {
				t.Fatalf("Advance(%#x, %d)=%d want %d", tt.ch, tt.column, got, tt.want)
			}
		})
	}
}

func TestPrintable(t *testing.T) {
	for _, ch := range []byte{'a', ' ', '\t', 0xe4, 0xf0} {
		if !Printable(ch) {
			t.Fatalf("expected %#x to consume a column", ch)
		}
	}
	for _, ch := range []byte{'\r', '\b', '\n', 0x1b, 0x85} {
		if Printable(ch) {
			t.Fatalf("expected %#x not to consume a column", ch)
		}
	}
}
