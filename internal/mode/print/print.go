// ABOUTME: Headless print mode: featured products as text or JSON, then exit
// ABOUTME: Text output follows the active theme's layout copy; JSON is encoded with easyjson

package print

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mailru/easyjson/jwriter"

	"github.com/mauromedda/themeswitch-go/internal/pages"
	"github.com/mauromedda/themeswitch-go/internal/storefront"
	"github.com/mauromedda/themeswitch-go/pkg/catalog"
	"github.com/mauromedda/themeswitch-go/pkg/theme"
	"github.com/mauromedda/themeswitch-go/pkg/tui/width"
)

// Config configures print mode.
type Config struct {
	Format string // "text" (default) or "json"
	Limit  int    // featured products; <= 0 means the storefront default
	Theme  theme.Config
	Out    io.Writer // defaults to os.Stdout
	// Width is the terminal width in cells; 0 uses a fixed layout.
	Width int
}

// Run fetches the home page and writes it in the configured format.
func Run(ctx context.Context, cfg Config, c storefront.Catalog) error {
	f, err := newFormatter(cfg.Format, cfg.Width)
	if err != nil {
		return err
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	home, err := storefront.LoadHome(ctx, c, cfg.Limit)
	if err != nil {
		return err
	}
	return f.render(out, cfg.Theme, home.Featured)
}

type formatter interface {
	render(w io.Writer, t theme.Config, products []catalog.Product) error
}

func newFormatter(format string, termWidth int) (formatter, error) {
	switch format {
	case "", "text":
		return textFormatter{titleCells: titleCellsFor(termWidth)}, nil
	case "json":
		return jsonFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text or json)", format)
	}
}

const (
	defaultTitleCells = 44
	minTitleCells     = 16
	// index, price and rating columns around the title
	fixedCells = 32
)

func titleCellsFor(termWidth int) int {
	if termWidth <= 0 {
		return defaultTitleCells
	}
	return max(termWidth-fixedCells, minTitleCells)
}

// textFormatter prints an aligned list.
type textFormatter struct {
	titleCells int
}

func (f textFormatter) render(w io.Writer, t theme.Config, products []catalog.Product) error {
	home, err := pages.Load(pages.Home)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s · %s\n", home.Title.For(t.Layout), t.DisplayName)
	fmt.Fprintf(&b, "%s\n\n", home.Heading.For(t.Layout))
	for i, p := range products {
		title := width.Truncate(p.Title, f.titleCells)
		pad := strings.Repeat(" ", f.titleCells-width.Cells(title))
		fmt.Fprintf(&b, "%2d. %s%s  %10s  ★ %s\n", i+1, title, pad,
			catalog.FormatPrice(p.Price), catalog.FormatRating(p.Rating))
		fmt.Fprintf(&b, "    %s\n", p.Category)
	}
	_, err = io.WriteString(w, b.String())
	return err
}

// jsonFormatter writes {"theme": ..., "products": [...]}.
type jsonFormatter struct{}

func (jsonFormatter) render(w io.Writer, t theme.Config, products []catalog.Product) error {
	var jw jwriter.Writer
	jw.RawString(`{"theme":`)
	jw.String(string(t.ID))
	jw.RawString(`,"layout":`)
	jw.String(string(t.Layout))
	jw.RawString(`,"products":`)
	if products == nil {
		products = []catalog.Product{}
	}
	catalog.Products(products).MarshalEasyJSON(&jw)
	jw.RawString("}\n")
	if jw.Error != nil {
		return fmt.Errorf("encoding products: %w", jw.Error)
	}
	_, err := jw.DumpTo(w)
	return err
}
