// ABOUTME: Glamour Markdown renderer with a cache keyed by content, width, and palette darkness
// ABOUTME: Used for product descriptions and the About page body

package ui

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// MarkdownRenderer wraps glamour with caching.
type MarkdownRenderer struct {
	mu    sync.Mutex
	r     *lipgloss.Renderer
	cache map[string]string
}

// NewMarkdownRenderer renders for the color profile of r.
func NewMarkdownRenderer(r *lipgloss.Renderer) *MarkdownRenderer {
	return &MarkdownRenderer{r: r, cache: make(map[string]string)}
}

// Render returns md styled for a dark or light page at the given width.
// On renderer failure the raw Markdown is returned.
func (m *MarkdownRenderer) Render(md string, width int, dark bool) string {
	if md == "" {
		return ""
	}
	style := "light"
	if dark {
		style = "dark"
	}

	key := cacheKey(md, width, style)
	m.mu.Lock()
	cached, ok := m.cache[key]
	m.mu.Unlock()
	if ok {
		return cached
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithColorProfile(m.r.ColorProfile()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := tr.Render(md)
	if err != nil {
		return md
	}
	out = strings.TrimRight(out, "\n ")

	m.mu.Lock()
	m.cache[key] = out
	m.mu.Unlock()
	return out
}

func cacheKey(content string, width int, style string) string {
	h := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x:%d:%s", h[:8], width, style)
}
