// ABOUTME: Rendering for the storefront pages; arrangement follows the theme layout
// ABOUTME: default is a single column, sidebar moves navigation left, grid lays cards in columns

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/themeswitch-go/internal/pages"
	"github.com/mauromedda/themeswitch-go/pkg/catalog"
	"github.com/mauromedda/themeswitch-go/pkg/theme"
	"github.com/mauromedda/themeswitch-go/pkg/tui/width"
)

const (
	sidebarWidth = 18
	minCardWidth = 26
)

var (
	homePage    = pages.MustLoad(pages.Home)
	aboutPage   = pages.MustLoad(pages.About)
	contactPage = pages.MustLoad(pages.Contact)
)

// View renders the whole screen.
func (m Model) View() string {
	var body string
	switch m.page {
	case PageAbout:
		body = m.viewAbout()
	case PageContact:
		body = m.viewContact()
	case PageProduct:
		body = m.viewProduct()
	default:
		body = m.viewHome()
	}

	if m.cfg.Layout == theme.LayoutSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.styles.Sidebar.Height(lipgloss.Height(body)).Render(m.viewNav(true)),
			body,
		)
	}

	screen := lipgloss.JoinVertical(lipgloss.Left, m.viewHeader(), body, m.viewFooter())
	return m.styles.App.Width(m.width).Render(screen)
}

// contentWidth is the width available to page bodies.
func (m Model) contentWidth() int {
	w := m.width
	if m.cfg.Layout == theme.LayoutSidebar {
		w -= sidebarWidth + 5 // padding plus border
	}
	return max(w-2, minCardWidth)
}

// columns is how many product cards go in a row.
func (m Model) columns() int {
	want := 1
	switch m.cfg.Layout {
	case theme.LayoutGrid:
		want = 3
	case theme.LayoutSidebar:
		want = 2
	}
	fit := max(m.contentWidth()/(minCardWidth+2), 1)
	return min(want, fit)
}

func (m Model) viewHeader() string {
	s := m.styles
	logo := s.Logo.Render("◆ ThemeSwitch")

	var parts []string
	for i, id := range theme.IDs() {
		label := fmt.Sprintf("%d %s", i+1, m.deps.Store.ConfigFor(id).DisplayName)
		if id == m.state.Current {
			parts = append(parts, s.SwitcherActive.Render("["+label+"]"))
		} else {
			parts = append(parts, s.Switcher.Render(" "+label+" "))
		}
	}
	switcher := strings.Join(parts, s.Switcher.Render(" "))

	left := logo
	if m.cfg.Layout != theme.LayoutSidebar {
		left = lipgloss.JoinHorizontal(lipgloss.Top, logo, s.Nav.Render("   "), m.viewNav(false))
	}
	gap := max(m.width-2-lipgloss.Width(left)-lipgloss.Width(switcher), 1)
	return s.Header.Width(m.width).Render(left + s.Nav.Render(strings.Repeat(" ", gap)) + switcher)
}

func (m Model) viewNav(vertical bool) string {
	s := m.styles
	var items []string
	for _, n := range pages.Names() {
		label := n.Label()
		active := (n == pages.Home && (m.page == PageHome || m.page == PageProduct)) ||
			(n == pages.About && m.page == PageAbout) ||
			(n == pages.Contact && m.page == PageContact)
		if active {
			items = append(items, s.NavActive.Render(label))
		} else {
			items = append(items, s.Nav.Render(label))
		}
	}
	if vertical {
		return lipgloss.JoinVertical(lipgloss.Left, items...)
	}
	return strings.Join(items, s.Nav.Render("  "))
}

func (m Model) viewHome() string {
	s := m.styles
	cw := m.contentWidth()
	hp := homePage
	layout := m.cfg.Layout

	hero := s.Hero.Width(cw).Render(lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Render(hp.Title.For(layout)),
		"",
		s.Subtitle.Render(hp.Subtitle.For(layout)),
		"",
		s.Button.Render(hp.Button.For(layout)),
	))

	statW := max(cw/len(hp.Stats)-2, 10)
	var stats []string
	for _, st := range hp.Stats {
		stats = append(stats, s.Stat.Width(statW).Render(
			s.StatValue.Render(st.Value)+"\n"+s.Muted.Render(st.Label)))
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, stats...)

	heading := s.Heading.Render(hp.Heading.For(layout))
	var list string
	switch {
	case m.loading:
		list = s.Muted.Render("Loading products…")
	case m.loadErr != nil:
		list = s.Error.Render("Failed to load products")
	case m.searching:
		list = lipgloss.JoinVertical(lipgloss.Left,
			s.Price.Render("/ ")+s.App.Render(m.query+"▏"),
			m.viewCards(m.visible()),
		)
	default:
		list = m.viewCards(m.visible())
		if cats := m.viewCategories(); cats != "" {
			list = lipgloss.JoinVertical(lipgloss.Left, cats, list)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, hero, strip, heading, list)
}

// viewCategories is the filter strip; empty when categories failed to load.
func (m Model) viewCategories() string {
	if len(m.home.Categories) == 0 {
		return ""
	}
	s := m.styles
	items := []string{"All"}
	items = append(items, m.home.Categories...)
	out := make([]string, len(items))
	for i, label := range items {
		active := (i == 0 && m.category == "") || (i > 0 && label == m.category)
		if active {
			out[i] = s.NavActive.Render(label)
		} else {
			out[i] = s.Nav.Render(label)
		}
	}
	return m.renderer.NewStyle().MaxWidth(m.contentWidth()).Render(strings.Join(out, s.Nav.Render(" · ")))
}

func (m Model) viewCards(products []catalog.Product) string {
	s := m.styles
	if len(products) == 0 {
		return s.Muted.Render("No products found")
	}

	cols := m.columns()
	cardW := m.contentWidth()/cols - 2
	inner := cardW - 2

	var rows []string
	for start := 0; start < len(products); start += cols {
		end := min(start+cols, len(products))
		var cards []string
		for i := start; i < end; i++ {
			p := products[i]
			st := s.Card
			if i == m.cursor {
				st = s.CardSelected
			}
			cards = append(cards, st.Width(cardW).Render(lipgloss.JoinVertical(lipgloss.Left,
				s.CardTitle.Render(width.Truncate(p.Title, inner)),
				s.Muted.Render(width.Truncate(p.Category, inner)),
				s.Price.Render(catalog.FormatPrice(p.Price))+s.App.Render("  ")+s.Muted.Render("★ "+catalog.FormatRating(p.Rating)),
			)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewAbout() string {
	s := m.styles
	cw := m.contentWidth()
	p := aboutPage
	layout := m.cfg.Layout

	lines := []string{
		s.Title.Render(p.Title.For(layout)),
		s.Subtitle.Render(strings.Join(width.Wrap(p.Subtitle.For(layout), cw), "\n")),
		"",
	}
	for _, it := range p.Items {
		lines = append(lines,
			s.CardTitle.Render("• "+it.Title),
			s.Muted.Render("  "+it.Text),
		)
	}
	lines = append(lines,
		m.sh.md.Render(p.Body, cw, m.cfg.Dark()),
		s.Quote.Render(p.Quote.For(layout)),
	)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewContact() string {
	s := m.styles
	cw := m.contentWidth()
	p := contactPage
	layout := m.cfg.Layout

	lines := []string{
		s.Title.Render(p.Title.For(layout)),
		s.Subtitle.Render(strings.Join(width.Wrap(p.Subtitle.For(layout), cw), "\n")),
		s.Heading.Render(p.Heading.For(layout)),
	}
	for _, it := range p.Items {
		lines = append(lines, s.Card.Width(min(cw, 60)).Render(
			s.CardTitle.Render(it.Title)+"\n"+s.Muted.Render(it.Text)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewProduct() string {
	s := m.styles
	cw := m.contentWidth()
	p := m.product

	if m.productErr != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.Error.Render("Failed to load product"),
			s.Muted.Render("esc back"),
		)
	}

	info := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(strings.Join(width.Wrap(p.Title, max(cw-thumbCols-2, 20)), "\n")),
		s.Muted.Render(p.Category),
		"",
		s.Price.Render(catalog.FormatPrice(p.Price)),
		s.Muted.Render("★ "+catalog.FormatRating(p.Rating)),
	)
	top := info
	if len(m.thumb) > 0 {
		top = lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(m.thumb, "\n"), s.App.Render("  "), info)
	}

	desc := p.Description
	if m.productLoading && desc == "" {
		desc = "_Loading…_"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		s.Muted.Render("← esc back"),
		top,
		m.sh.md.Render(desc, cw, m.cfg.Dark()),
	)
}

func (m Model) viewFooter() string {
	s := m.styles
	help := "1-3 theme · t cycle · h/a/c pages · ↑↓ select · enter open · f category · / search · r reload · q quit"
	if m.searching {
		help = "type to search · ↑↓ select · enter open · esc cancel"
	}
	var status []string
	if m.state.Transitioning {
		status = append(status, "switching theme…")
	}
	if m.deps.Store.LastError() != nil {
		status = append(status, "theme not saved")
	}
	if len(status) > 0 {
		help = strings.Join(status, " · ") + " │ " + help
	}
	return s.Footer.Render(width.Truncate(help, max(m.width-2, 1)))
}
