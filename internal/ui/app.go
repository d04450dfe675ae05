// ABOUTME: Root storefront model: theme switching, page navigation, product browsing
// ABOUTME: Fetches are tagged with sequence numbers so results for abandoned views are dropped

package ui

import (
	"context"
	"slices"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	pilog "github.com/mauromedda/themeswitch-go/internal/log"
	"github.com/mauromedda/themeswitch-go/internal/storefront"
	"github.com/mauromedda/themeswitch-go/internal/themestore"
	"github.com/mauromedda/themeswitch-go/pkg/catalog"
	"github.com/mauromedda/themeswitch-go/pkg/theme"
	tuiimage "github.com/mauromedda/themeswitch-go/pkg/tui/image"
)

// Page is the view currently on screen.
type Page int

const (
	PageHome Page = iota
	PageAbout
	PageContact
	PageProduct
)

const (
	thumbCols    = 32
	thumbRows    = 12
	maxSearchHit = 10
)

// shared holds state that must survive Model value copies.
type shared struct {
	ctx    context.Context
	cancel context.CancelFunc
	md     *MarkdownRenderer
}

// Model is the root Bubble Tea model.
type Model struct {
	sh       *shared
	deps     Deps
	renderer *lipgloss.Renderer

	state  themestore.State
	cfg    theme.Config
	styles Styles

	page          Page
	width, height int

	homeSeq int
	loading bool
	loadErr error
	home     storefront.Home
	category string // "" shows the featured products
	cursor   int

	searching bool
	query     string
	matches   []storefront.Match

	productSeq     int
	product        catalog.Product
	productLoading bool
	productErr     error
	thumb          []string
}

// NewModel builds the model and its initial theme from the store.
func NewModel(deps Deps) Model {
	r := deps.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m := Model{
		sh:       &shared{ctx: ctx, cancel: cancel, md: NewMarkdownRenderer(r)},
		deps:     deps,
		renderer: r,
		width:    80,
		height:   24,
		homeSeq:  1,
		loading:  true,
	}
	return m.applyState(deps.Store.State())
}

// Init starts the home page fetch.
func (m Model) Init() tea.Cmd {
	return m.loadHome(m.homeSeq)
}

// Update routes messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case ThemeStateMsg:
		return m.applyState(msg.State), nil

	case homeLoadedMsg:
		if msg.seq != m.homeSeq {
			pilog.Debug("ui: dropping stale home result %d (want %d)", msg.seq, m.homeSeq)
			return m, nil
		}
		m.loading = false
		m.loadErr = msg.err
		if msg.err != nil {
			pilog.Warn("ui: loading products: %v", msg.err)
			return m, nil
		}
		m.home = msg.home
		if !slices.Contains(m.home.Categories, m.category) {
			m.category = ""
		}
		m.cursor = clamp(m.cursor, len(m.visible()))
		return m, nil

	case productLoadedMsg:
		if msg.seq != m.productSeq || m.page != PageProduct {
			pilog.Debug("ui: dropping stale product result %d", msg.seq)
			return m, nil
		}
		m.productLoading = false
		m.productErr = msg.err
		if msg.err != nil {
			pilog.Warn("ui: loading product: %v", msg.err)
			return m, nil
		}
		m.product = msg.product
		return m, m.loadImage(msg.seq, msg.product.Image)

	case imageLoadedMsg:
		if msg.seq != m.productSeq || m.page != PageProduct {
			return m, nil
		}
		if msg.err != nil {
			pilog.Debug("ui: thumbnail: %v", msg.err)
			m.thumb = nil
			return m, nil
		}
		m.thumb = msg.lines
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch key := msg.String(); key {
	case "ctrl+c", "q":
		m.sh.cancel()
		return m, tea.Quit
	case "1", "2", "3":
		ids := theme.IDs()
		return m.switchTheme(ids[key[0]-'1']), nil
	case "t":
		return m.switchTheme(nextTheme(m.state.Current)), nil
	case "h":
		m.page = PageHome
	case "a":
		m.page = PageAbout
	case "c":
		m.page = PageContact
	case "tab":
		m.page = (m.page + 1) % PageProduct
	case "up", "k", "left":
		m.cursor = clamp(m.cursor-m.step(key), len(m.visible()))
	case "down", "j", "right":
		m.cursor = clamp(m.cursor+m.step(key), len(m.visible()))
	case "enter":
		if m.page == PageHome {
			return m.openSelected()
		}
	case "esc", "backspace":
		if m.page == PageProduct {
			m.productSeq++ // abandon in-flight fetches
			m.page = PageHome
		}
	case "f":
		if m.page == PageHome && !m.loading && m.loadErr == nil {
			m.category = nextCategory(m.home.Categories, m.category)
			m.cursor = 0
		}
	case "/":
		if m.page == PageHome && !m.loading && m.loadErr == nil {
			m.searching = true
			m.query = ""
			m.matches = storefront.Search(m.home.Products, "")
			m.cursor = 0
		}
	case "r":
		if m.page == PageHome {
			m.homeSeq++
			m.loading = true
			m.loadErr = nil
			return m, m.loadHome(m.homeSeq)
		}
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.sh.cancel()
		return m, tea.Quit
	case tea.KeyEsc:
		m.searching = false
		m.matches = nil
		m.cursor = 0
		return m, nil
	case tea.KeyEnter:
		return m.openSelected()
	case tea.KeyUp:
		m.cursor = clamp(m.cursor-1, len(m.visible()))
		return m, nil
	case tea.KeyDown:
		m.cursor = clamp(m.cursor+1, len(m.visible()))
		return m, nil
	case tea.KeyBackspace:
		if m.query != "" {
			_, size := utf8.DecodeLastRuneInString(m.query)
			m.query = m.query[:len(m.query)-size]
		}
	case tea.KeyRunes, tea.KeySpace:
		m.query += string(msg.Runes)
	default:
		return m, nil
	}
	m.matches = storefront.Search(m.home.Products, m.query)
	m.cursor = 0
	return m, nil
}

// step is the cursor movement for key in the current card arrangement:
// vertical keys jump a whole row of cards.
func (m Model) step(key string) int {
	if key == "left" || key == "right" || m.searching {
		return 1
	}
	return m.columns()
}

// visible is the product list the cursor moves over.
func (m Model) visible() []catalog.Product {
	if m.searching {
		n := min(len(m.matches), maxSearchHit)
		out := make([]catalog.Product, n)
		for i := range n {
			out[i] = m.matches[i].Product
		}
		return out
	}
	if m.category != "" {
		return storefront.Featured(storefront.InCategory(m.home.Products, m.category), m.featuredLimit())
	}
	return m.home.Featured
}

func (m Model) featuredLimit() int {
	if m.deps.FeaturedLimit <= 0 {
		return storefront.DefaultFeatured
	}
	return m.deps.FeaturedLimit
}

// nextCategory cycles "" -> categories[0] -> ... -> "".
func nextCategory(categories []string, current string) string {
	if current == "" {
		if len(categories) == 0 {
			return ""
		}
		return categories[0]
	}
	i := slices.Index(categories, current)
	if i < 0 || i+1 >= len(categories) {
		return ""
	}
	return categories[i+1]
}

func (m Model) openSelected() (tea.Model, tea.Cmd) {
	list := m.visible()
	if len(list) == 0 {
		return m, nil
	}
	p := list[clamp(m.cursor, len(list))]
	m.searching = false
	m.page = PageProduct
	m.productSeq++
	m.product = p
	m.productLoading = true
	m.productErr = nil
	m.thumb = nil
	return m, m.loadProduct(m.productSeq, p.ID)
}

func (m Model) switchTheme(id theme.ID) Model {
	if !m.deps.Store.SwitchTheme(id) {
		return m
	}
	return m.applyState(m.deps.Store.State())
}

func (m Model) applyState(st themestore.State) Model {
	m.state = st
	m.cfg = m.deps.Store.ConfigFor(st.Current)
	m.styles = NewStyles(m.renderer, m.cfg, st.Transitioning)
	return m
}

func (m Model) loadHome(seq int) tea.Cmd {
	ctx, c, limit := m.sh.ctx, m.deps.Catalog, m.deps.FeaturedLimit
	return func() tea.Msg {
		home, err := storefront.LoadHome(ctx, c, limit)
		return homeLoadedMsg{seq: seq, home: home, err: err}
	}
}

func (m Model) loadProduct(seq, id int) tea.Cmd {
	ctx, c := m.sh.ctx, m.deps.Catalog
	return func() tea.Msg {
		p, err := c.GetProduct(ctx, id)
		return productLoadedMsg{seq: seq, product: p, err: err}
	}
}

func (m Model) loadImage(seq int, url string) tea.Cmd {
	if url == "" {
		return nil
	}
	ctx, c := m.sh.ctx, m.deps.Catalog
	return func() tea.Msg {
		data, err := c.FetchImage(ctx, url)
		if err != nil {
			return imageLoadedMsg{seq: seq, err: err}
		}
		lines, err := tuiimage.Thumbnail(data, thumbCols, thumbRows)
		return imageLoadedMsg{seq: seq, lines: lines, err: err}
	}
}

func nextTheme(id theme.ID) theme.ID {
	ids := theme.IDs()
	for i, v := range ids {
		if v == id {
			return ids[(i+1)%len(ids)]
		}
	}
	return theme.Default
}

// clamp bounds i to [0, n).
func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
