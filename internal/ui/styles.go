// ABOUTME: Lipgloss styles built from a theme palette for one renderer
// ABOUTME: Faint variants render the whole page dimmed while a theme transition runs

package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/themeswitch-go/pkg/theme"
)

const white = lipgloss.Color("#FFFFFF")

// Styles is the full set of styles the views use.
type Styles struct {
	App            lipgloss.Style
	Header         lipgloss.Style
	Logo           lipgloss.Style
	Nav            lipgloss.Style
	NavActive      lipgloss.Style
	Switcher       lipgloss.Style
	SwitcherActive lipgloss.Style
	Sidebar        lipgloss.Style
	Hero           lipgloss.Style
	Title          lipgloss.Style
	Subtitle       lipgloss.Style
	Button         lipgloss.Style
	Stat           lipgloss.Style
	StatValue      lipgloss.Style
	Heading        lipgloss.Style
	Card           lipgloss.Style
	CardSelected   lipgloss.Style
	CardTitle      lipgloss.Style
	Muted          lipgloss.Style
	Price          lipgloss.Style
	Quote          lipgloss.Style
	Error          lipgloss.Style
	Footer         lipgloss.Style
}

func hex(c theme.Color) lipgloss.Color { return lipgloss.Color(c.Hex()) }

// NewStyles derives every style from cfg's palette.
func NewStyles(r *lipgloss.Renderer, cfg theme.Config, faint bool) Styles {
	c := cfg.Colors
	grid := cfg.Layout == theme.LayoutGrid

	base := r.NewStyle().
		Foreground(hex(c.Text)).
		Background(hex(c.Background)).
		Faint(faint)
	surface := base.Background(hex(c.Surface))
	muted := base.Foreground(hex(c.TextSecondary))

	s := Styles{
		App:            base,
		Header:         surface.Padding(0, 1).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(hex(c.Border)).BorderBackground(hex(c.Surface)),
		Logo:           surface.Bold(true).Foreground(hex(c.Primary)),
		Nav:            surface,
		NavActive:      surface.Bold(true).Foreground(hex(c.Primary)),
		Switcher:       surface.Foreground(hex(c.TextSecondary)),
		SwitcherActive: surface.Bold(true).Foreground(hex(c.Accent)),
		Sidebar:        surface.Padding(1, 2).BorderStyle(lipgloss.NormalBorder()).BorderRight(true).BorderForeground(hex(c.Border)).BorderBackground(hex(c.Background)),
		Hero:           surface.Padding(1, 2).Align(lipgloss.Center),
		Title:          surface.Bold(true),
		Subtitle:       surface.Foreground(hex(c.TextSecondary)),
		Button:         base.Background(hex(c.Primary)).Foreground(white).Bold(true).Padding(0, 2),
		Stat:           base.Padding(0, 1).Align(lipgloss.Center).Border(lipgloss.RoundedBorder()).BorderForeground(hex(c.Border)).BorderBackground(hex(c.Background)),
		StatValue:      base.Bold(true).Foreground(hex(c.Primary)),
		Heading:        base.Bold(true).MarginTop(1),
		Card:           base.Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(hex(c.Border)).BorderBackground(hex(c.Background)),
		CardTitle:      base.Bold(true),
		Muted:          muted,
		Price:          base.Bold(true).Foreground(hex(c.Accent)),
		Quote:          muted.Italic(true).Padding(1, 4),
		Error:          muted.Padding(1, 2),
		Footer:         muted.Padding(0, 1),
	}
	s.CardSelected = s.Card.BorderForeground(hex(c.Primary))

	if grid {
		// Colorful Fun shouts: a primary banner with inverted button.
		s.Hero = s.Hero.Background(hex(c.Primary))
		s.Title = s.Title.Background(hex(c.Primary)).Foreground(white)
		s.Subtitle = s.Subtitle.Background(hex(c.Primary)).Foreground(white)
		s.Button = s.Button.Background(white).Foreground(hex(c.Text))
	}
	return s
}
