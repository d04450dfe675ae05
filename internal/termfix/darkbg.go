// ABOUTME: Presets lipgloss background detection from COLORFGBG before Bubble Tea starts
// ABOUTME: Import with _ ahead of any package that imports bubbletea

package termfix

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func init() {
	// Setting the background explicitly makes lipgloss skip its OSC 11
	// query, which would otherwise race Bubble Tea for stdin. This package
	// must not import bubbletea so its init runs first.
	lipgloss.SetHasDarkBackground(DarkFromColorFGBG(os.Getenv("COLORFGBG")))
}

// DarkFromColorFGBG interprets a COLORFGBG value ("fg;bg" or "fg;x;bg").
// ANSI background indexes 0-6 and 8 are dark; anything unparseable is
// treated as dark, which matches most terminal defaults.
func DarkFromColorFGBG(v string) bool {
	if v == "" {
		return true
	}
	parts := strings.Split(v, ";")
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return true
	}
	return bg <= 6 || bg == 8
}
