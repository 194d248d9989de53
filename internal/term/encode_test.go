package term

import (
	"bytes"
	"testing"
	"unicode/utf8"
)

func TestEncodePrintableASCII(t *testing.T) {
	for c := byte(0x20); c <= 0x7E; c++ {
		plain := Encode(Event{Key: KeyRune, Rune: rune(c)})
		if len(plain) != 1 || plain[0] != c {
			t.Fatalf("Encode(%q) = %v, want [%#02x]", c, plain, c)
		}

		ctrl := Encode(Event{Key: KeyRune, Rune: rune(c), Ctrl: true})
		if len(ctrl) != 1 || ctrl[0] != c&0x1F {
			t.Fatalf("Encode(Ctrl+%q) = %v, want [%#02x]", c, ctrl, c&0x1F)
		}
	}
}

func TestEncodeCtrlL(t *testing.T) {
	got := Encode(Event{Key: KeyRune, Rune: 'l', Ctrl: true})
	if !bytes.Equal(got, []byte{0x0C}) {
		t.Errorf("Encode(Ctrl+l) = %v, want [0x0C]", got)
	}
}

func TestEncodeArrows(t *testing.T) {
	tests := []struct {
		key   Key
		final byte
	}{
		{KeyLeft, 'D'},
		{KeyRight, 'C'},
		{KeyUp, 'A'},
		{KeyDown, 'B'},
	}
	for _, tt := range tests {
		got := Encode(Event{Key: tt.key})
		if len(got) != 3 {
			t.Fatalf("Encode(arrow %d) = %v, want 3 bytes", tt.key, got)
		}
		if got[0] != 0x1B || got[1] != '[' {
			t.Errorf("Encode(arrow %d) = %v, want ESC [ prefix", tt.key, got)
		}
		if got[2] != tt.final {
			t.Errorf("Encode(arrow %d) final byte = %q, want %q", tt.key, got[2], tt.final)
		}
	}
}

func TestEncodeEscapeProducesNothing(t *testing.T) {
	if got := Encode(Event{Key: KeyEscape}); got != nil {
		t.Errorf("Encode(Escape) = %v, want nil (exit key is never transmitted)", got)
	}
}

func TestEncodeEnterIsCarriageReturn(t *testing.T) {
	got := Encode(Event{Key: KeyEnter})
	if len(got) != 1 {
		t.Fatalf("Encode(Enter) = %v, want a single byte", got)
	}
	r, _ := utf8.DecodeRune(got)
	if r != '\r' {
		t.Errorf("Encode(Enter) decodes to %q, want carriage return", r)
	}
	if r == '\n' {
		t.Error("Encode(Enter) must not produce a line feed")
	}
}

func TestEncodeSimpleKeys(t *testing.T) {
	tests := []struct {
		ev   Event
		want []byte
	}{
		{Event{Key: KeyBackspace}, []byte{0x08}},
		{Event{Key: KeyTab}, []byte{0x09}},
		{Event{Key: KeyOther}, nil},
	}
	for _, tt := range tests {
		if got := Encode(tt.ev); !bytes.Equal(got, tt.want) {
			t.Errorf("Encode(%+v) = %v, want %v", tt.ev, got, tt.want)
		}
	}
}
