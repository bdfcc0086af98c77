package palette

import (
	"errors"
	"image/color"
	"testing"
)

func TestColor_RGB(t *testing.T) {
	r, g, b := Color(0x4a0b58).RGB()
	if r != 0x4a || g != 0x0b || b != 0x58 {
		t.Errorf("RGB() = (%#x, %#x, %#x), want (0x4a, 0x0b, 0x58)", r, g, b)
	}

	// Bits above the low 24 are ignored.
	r, g, b = Color(0xff123456).RGB()
	if r != 0x12 || g != 0x34 || b != 0x56 {
		t.Errorf("RGB() = (%#x, %#x, %#x), want (0x12, 0x34, 0x56)", r, g, b)
	}
}

func TestColor_RGBA(t *testing.T) {
	got := color.RGBAModel.Convert(Color(0x1fa0cf)).(color.RGBA)
	want := color.RGBA{R: 0x1f, G: 0xa0, B: 0xcf, A: 0xff}
	if got != want {
		t.Errorf("Convert(#1fa0cf) = %v, want %v", got, want)
	}
}

func TestColor_String(t *testing.T) {
	if got := Color(0x00ff00).String(); got != "#00ff00" {
		t.Errorf("String() = %q, want %q", got, "#00ff00")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "#4a0b58", want: 0x4a0b58},
		{in: "0x39538E", want: 0x39538e},
		{in: "1fa0cf", want: 0x1fa0cf},
		{in: " #56b861 ", want: 0x56b861},
		{in: "#fff", wantErr: true},
		{in: "zzzzzz", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidColor", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseAll(t *testing.T) {
	got, err := ParseAll([]string{"#ff0000", "00ff00"})
	if err != nil {
		t.Fatalf("ParseAll() error = %v", err)
	}
	if len(got) != 2 || got[0] != 0xff0000 || got[1] != 0x00ff00 {
		t.Errorf("ParseAll() = %v, want [#ff0000 #00ff00]", got)
	}

	if _, err := ParseAll([]string{"#ff0000", "nope"}); err == nil {
		t.Error("ParseAll() with invalid entry returned nil error")
	}
}
