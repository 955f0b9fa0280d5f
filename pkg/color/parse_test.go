package color

import (
	"errors"
	"strings"
	"testing"
)

func TestParseFullForm(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"1a2b3c", Color{R: 0x1A, G: 0x2B, B: 0x3C, A: 255}},
		{"#1a2b3c", Color{R: 0x1A, G: 0x2B, B: 0x3C, A: 255}},
		{"000000", Color{A: 255}},
		{"#FFFFFF", Color{R: 255, G: 255, B: 255, A: 255}},
		{"ff0000", Color{R: 255, A: 255}},
		{"0A0b0C", Color{R: 10, G: 11, B: 12, A: 255}},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseShorthandDuplicatesNibble(t *testing.T) {
	for i := 0; i < len(hexDigits); i++ {
		for _, d := range []string{hexDigits[i : i+1], strings.ToUpper(hexDigits[i : i+1])} {
			in := d + "0" + d
			got, err := Parse(in)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", in, err)
			}
			want := uint8(17 * i)
			if got.R != want || got.G != 0 || got.B != want || got.A != Opaque {
				t.Errorf("Parse(%q) = %+v want r=b=%d g=0 a=255", in, got, want)
			}
		}
	}
}

func TestParseHashPrefixIsNotCounted(t *testing.T) {
	a, errA := Parse("#fff")
	b, errB := Parse("fff")
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v, %v", errA, errB)
	}
	if a != b {
		t.Fatalf("#fff = %+v, fff = %+v", a, b)
	}
}

func TestParseIsCaseInsensitive(t *testing.T) {
	a, _ := Parse("FfF")
	b, _ := Parse("fff")
	if a != b {
		t.Fatalf("FfF = %+v, fff = %+v", a, b)
	}
	c, _ := Parse("ABCDEF")
	d, _ := Parse("abcdef")
	if c != d {
		t.Fatalf("ABCDEF = %+v, abcdef = %+v", c, d)
	}
}

func TestParseBadLength(t *testing.T) {
	inputs := []string{"", "#", "1", "12", "1234", "12345", "1234567", "#12", "#1234", "##fff", "zz", "zzzzzzz", "ffffffff", "é12", "12é345"}
	for _, in := range inputs {
		_, err := Parse(in)
		if !errors.Is(err, ErrBadLength) {
			t.Errorf("Parse(%q) error = %v want ErrBadLength", in, err)
		}
		var pe *ParseError
		if !errors.As(err, &pe) || pe.Kind != BadLength || pe.Input != in {
			t.Errorf("Parse(%q) error = %#v want *ParseError{Kind: BadLength}", in, err)
		}
	}
}

func TestParseInvalidChar(t *testing.T) {
	inputs := []string{"zzz", "#zzz", "12345g", "#12345G", " ff", "ff ", "-12", "0x1234", "é1", "#1234é"}
	for _, in := range inputs {
		_, err := Parse(in)
		if !errors.Is(err, ErrInvalidChar) {
			t.Errorf("Parse(%q) error = %v want ErrInvalidChar", in, err)
		}
	}
}

func TestParseErrorMessageEchoesInput(t *testing.T) {
	_, err := Parse("#12345g")
	if err == nil || !strings.Contains(err.Error(), "#12345g") {
		t.Fatalf("error %v does not mention input", err)
	}
}

func TestColorHexAndRGBA(t *testing.T) {
	c := RGB(0x1a, 0x2b, 0x3c)
	if got := c.Hex(); got != "#1a2b3c" {
		t.Fatalf("Hex() = %q", got)
	}
	r, g, b, a := c.RGBA()
	if r != 0x1a1a || g != 0x2b2b || b != 0x3c3c || a != 0xffff {
		t.Fatalf("RGBA() = %x %x %x %x", r, g, b, a)
	}
}

func TestContrast(t *testing.T) {
	if got := RGB(255, 255, 255).Contrast(); got != RGB(0, 0, 0) {
		t.Errorf("white contrast = %v want black", got)
	}
	if got := RGB(0, 0, 0).Contrast(); got != RGB(255, 255, 255) {
		t.Errorf("black contrast = %v want white", got)
	}
	if got := RGB(0xff, 0xff, 0x00).Contrast(); got != RGB(0, 0, 0) {
		t.Errorf("yellow contrast = %v want black", got)
	}
	if got := RGB(0x00, 0x00, 0x80).Contrast(); got != RGB(255, 255, 255) {
		t.Errorf("navy contrast = %v want white", got)
	}
}
