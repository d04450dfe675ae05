// ABOUTME: Tests for palette-derived styles and the Markdown renderer cache
// ABOUTME: Checks colors per theme, the faint transition variant, and glamour fallbacks

package ui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/themeswitch-go/pkg/theme"
)

func TestNewStyles_UsesPalette(t *testing.T) {
	t.Parallel()

	r := lipgloss.NewRenderer(io.Discard)
	for _, cfg := range theme.All() {
		t.Run(string(cfg.ID), func(t *testing.T) {
			t.Parallel()

			s := NewStyles(r, cfg, false)
			if got := s.App.GetBackground(); got != lipgloss.Color(cfg.Colors.Background.Hex()) {
				t.Errorf("App background = %v, want %s", got, cfg.Colors.Background)
			}
			if got := s.Logo.GetForeground(); got != lipgloss.Color(cfg.Colors.Primary.Hex()) {
				t.Errorf("Logo foreground = %v, want %s", got, cfg.Colors.Primary)
			}
			if s.App.GetFaint() {
				t.Error("non-transition styles should not be faint")
			}
		})
	}
}

func TestNewStyles_FaintDuringTransition(t *testing.T) {
	t.Parallel()

	s := NewStyles(lipgloss.NewRenderer(io.Discard), theme.Lookup(theme.DarkElite), true)
	for name, st := range map[string]lipgloss.Style{"App": s.App, "Card": s.Card, "Title": s.Title, "Footer": s.Footer} {
		if !st.GetFaint() {
			t.Errorf("%s should be faint", name)
		}
	}
}

func TestNewStyles_GridInvertsButton(t *testing.T) {
	t.Parallel()

	cfg := theme.Lookup(theme.ColorfulFun)
	s := NewStyles(lipgloss.NewRenderer(io.Discard), cfg, false)
	if got := s.Button.GetBackground(); got != white {
		t.Errorf("grid button background = %v, want white", got)
	}
	if got := s.Hero.GetBackground(); got != lipgloss.Color(cfg.Colors.Primary.Hex()) {
		t.Errorf("grid hero background = %v", got)
	}
}

func TestMarkdownRenderer(t *testing.T) {
	t.Parallel()

	md := NewMarkdownRenderer(lipgloss.NewRenderer(io.Discard))
	if got := md.Render("", 40, true); got != "" {
		t.Errorf("empty render = %q", got)
	}

	first := md.Render("## Stack\n\n- Go", 40, true)
	if !strings.Contains(first, "Stack") || !strings.Contains(first, "Go") {
		t.Errorf("render = %q", first)
	}
	if md.Render("## Stack\n\n- Go", 40, true) != first {
		t.Error("cached render differs")
	}
	if len(md.cache) != 1 {
		t.Errorf("cache size = %d, want 1", len(md.cache))
	}
	md.Render("## Stack\n\n- Go", 40, false)
	if len(md.cache) != 2 {
		t.Errorf("light style should be cached separately, size = %d", len(md.cache))
	}
}
