// ABOUTME: Shared fixtures for UI tests: fake catalog, virtual-clock theme store, update helper
// ABOUTME: Renders through an io.Discard lipgloss renderer so views are plain text

package ui

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/themeswitch-go/internal/clock"
	"github.com/mauromedda/themeswitch-go/internal/kv"
	"github.com/mauromedda/themeswitch-go/internal/themestore"
	"github.com/mauromedda/themeswitch-go/pkg/catalog"
)

type fakeCatalog struct {
	products []catalog.Product
	err      error
	catErr   error
	gets     atomic.Int32
	image    []byte
}

func (f *fakeCatalog) ListProducts(context.Context) ([]catalog.Product, error) {
	return f.products, f.err
}

func (f *fakeCatalog) ListCategories(context.Context) ([]string, error) {
	if f.catErr != nil {
		return nil, f.catErr
	}
	return []string{"electronics", "jewelery"}, nil
}

func (f *fakeCatalog) GetProduct(_ context.Context, id int) (catalog.Product, error) {
	f.gets.Add(1)
	for _, p := range f.products {
		if p.ID == id {
			p.Description = "Detailed description of " + p.Title
			return p, nil
		}
	}
	return catalog.Product{}, &catalog.HTTPError{StatusCode: 404}
}

func (f *fakeCatalog) FetchImage(context.Context, string) ([]byte, error) {
	if f.image == nil {
		return nil, fmt.Errorf("no image")
	}
	return f.image, nil
}

func fixtureProducts() []catalog.Product {
	titles := []string{
		"Fjallraven Backpack", "Mens Casual T-Shirt", "Mens Cotton Jacket",
		"Solid Gold Petite Micropave", "WD 2TB Elements Portable Hard Drive",
		"Rain Jacket Women Windbreaker", "Samsung 49-Inch Monitor", "Opna Short Sleeve",
	}
	out := make([]catalog.Product, len(titles))
	for i, t := range titles {
		out[i] = catalog.Product{
			ID:       i + 1,
			Title:    t,
			Price:    catalog.MustPrice("10.5"),
			Category: "misc",
			Image:    fmt.Sprintf("https://img/%d.png", i+1),
			Rating:   catalog.Rating{Rate: 4.1, Count: 100 + i},
		}
	}
	return out
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := range 8 {
		for x := range 8 {
			img.Set(x, y, color.RGBA{B: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

type harness struct {
	store *themestore.Store
	clock *clock.Fake
	cat   *fakeCatalog
}

func newHarness(t *testing.T) (Model, *harness) {
	t.Helper()
	clk := clock.NewFake(time.Unix(0, 0))
	st := themestore.New(kv.NewMemory(), clk)
	st.Initialize()
	t.Cleanup(st.Close)

	fc := &fakeCatalog{products: fixtureProducts(), image: pngBytes(t)}
	m := NewModel(Deps{
		Store:         st,
		Catalog:       fc,
		FeaturedLimit: 6,
		Renderer:      lipgloss.NewRenderer(io.Discard),
	})
	m = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, &harness{store: st, clock: clk, cat: fc}
}

// update applies msg and returns the resulting model.
func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

// updateCmd applies msg and returns the model and command.
func updateCmd(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// loaded runs Init's fetch and feeds the result back.
func loaded(t *testing.T, m Model) Model {
	t.Helper()
	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init returned nil cmd")
	}
	return update(m, cmd())
}
