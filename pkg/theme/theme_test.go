// ABOUTME: Tests for theme types: ID parsing and validity, hex Color decoding
// ABOUTME: Covers whitespace trimming, unknown IDs, malformed colors, and luminance

package theme

import "testing"

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   ID
		wantOK bool
	}{
		{"theme1", Minimalist, true},
		{"theme2", DarkElite, true},
		{" theme3\n", ColorfulFun, true},
		{"", "", false},
		{"Theme1", "", false},
		{"dark", "", false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Parse(%q) = (%q, %v); want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestID_Valid(t *testing.T) {
	t.Parallel()
	for _, id := range IDs() {
		if !id.Valid() {
			t.Errorf("%q.Valid() = false", id)
		}
	}
	if ID("theme4").Valid() {
		t.Error(`"theme4".Valid() = true`)
	}
}

func TestDefault_IsFirstID(t *testing.T) {
	t.Parallel()
	if IDs()[0] != Default {
		t.Errorf("IDs()[0] = %q; want Default %q", IDs()[0], Default)
	}
}

func TestColor_RGB(t *testing.T) {
	t.Parallel()
	r, g, b, err := Color("#3B82F6").RGB()
	if err != nil {
		t.Fatalf("RGB() error: %v", err)
	}
	if r != 0x3B || g != 0x82 || b != 0xF6 {
		t.Errorf("RGB() = (%d, %d, %d); want (59, 130, 246)", r, g, b)
	}
}

func TestColor_RGB_Invalid(t *testing.T) {
	t.Parallel()
	for _, c := range []Color{"", "#FFF", "#GGGGGG", "3B82F6FF"} {
		if _, _, _, err := c.RGB(); err == nil {
			t.Errorf("Color(%q).RGB() should fail", c)
		}
	}
}

func TestColor_Hex(t *testing.T) {
	t.Parallel()
	if got := Color("#ec4899").Hex(); got != "#EC4899" {
		t.Errorf("Hex() = %q; want %q", got, "#EC4899")
	}
}

func TestColor_IsDark(t *testing.T) {
	t.Parallel()
	if Color("#FFFFFF").IsDark() {
		t.Error("white should not be dark")
	}
	if !Color("#0F172A").IsDark() {
		t.Error("#0F172A should be dark")
	}
	if got := Color("#FFFFFF").Luminance(); got < 0.99 {
		t.Errorf("Luminance(white) = %v; want ~1", got)
	}
	if got := Color("bogus").Luminance(); got != 0 {
		t.Errorf("Luminance(bogus) = %v; want 0", got)
	}
}
