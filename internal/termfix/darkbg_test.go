// ABOUTME: Tests for COLORFGBG background classification
// ABOUTME: Table of dark, light and malformed values

package termfix

import "testing"

func TestDarkFromColorFGBG(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"15;0", true},
		{"0;15", false},
		{"0;7", false},
		{"15;8", true},
		{"12;default;0", true},
		{"0;default;15", false},
		{"garbage", true},
	}
	for _, tt := range tests {
		if got := DarkFromColorFGBG(tt.in); got != tt.want {
			t.Errorf("DarkFromColorFGBG(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
