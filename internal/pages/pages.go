// ABOUTME: Static storefront copy (Home, About, Contact) with per-layout variants
// ABOUTME: Pages are embedded Markdown files whose YAML frontmatter carries the copy

package pages

import (
	"embed"
	"fmt"
	"strings"

	"github.com/mauromedda/themeswitch-go/pkg/theme"
)

//go:embed content/*.md
var content embed.FS

// Name identifies one of the embedded pages.
type Name string

const (
	Home    Name = "home"
	About   Name = "about"
	Contact Name = "contact"
)

// Names lists the pages in navigation order.
func Names() []Name { return []Name{Home, About, Contact} }

// Label is the navigation label.
func (n Name) Label() string {
	switch n {
	case About:
		return "About"
	case Contact:
		return "Contact"
	default:
		return "Home"
	}
}

// Copy is text that varies by layout. The "default" entry is the fallback.
type Copy map[theme.Layout]string

// For returns the text for layout, falling back to the default layout.
func (c Copy) For(l theme.Layout) string {
	if s, ok := c[l]; ok {
		return s
	}
	return c[theme.LayoutDefault]
}

// Stat is one entry of the home page stats strip.
type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Item is a titled line: an About feature or a Contact detail.
type Item struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

// Page is the decoded content of one page.
type Page struct {
	Name     Name   `yaml:"-"`
	Title    Copy   `yaml:"title"`
	Subtitle Copy   `yaml:"subtitle"`
	Button   Copy   `yaml:"button"`
	Heading  Copy   `yaml:"heading"`
	Quote    Copy   `yaml:"quote"`
	Stats    []Stat `yaml:"stats"`
	Items    []Item `yaml:"items"`
	// Body is the Markdown after the frontmatter.
	Body string `yaml:"-"`
}

// Load returns the embedded page n.
func Load(n Name) (Page, error) {
	raw, err := content.ReadFile("content/" + string(n) + ".md")
	if err != nil {
		return Page{}, fmt.Errorf("loading page %q: %w", n, err)
	}
	return Parse(n, string(raw))
}

// Parse decodes a page from Markdown with frontmatter.
func Parse(n Name, raw string) (Page, error) {
	p, body, err := parseFrontmatter[Page](raw)
	if err != nil {
		return Page{}, fmt.Errorf("page %q: %w", n, err)
	}
	p.Name = n
	p.Body = strings.TrimSpace(body)
	return p, nil
}

// MustLoad is Load for the built-in pages, which are known to parse.
func MustLoad(n Name) Page {
	p, err := Load(n)
	if err != nil {
		panic(err)
	}
	return p
}
