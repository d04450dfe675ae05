// ABOUTME: Dependencies injected into the storefront TUI
// ABOUTME: Catalog is an interface so tests run against an in-memory fake

package ui

import (
	"context"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/themeswitch-go/internal/storefront"
	"github.com/mauromedda/themeswitch-go/internal/themestore"
	"github.com/mauromedda/themeswitch-go/pkg/catalog"
)

// Catalog is the read side of the catalog client the UI needs.
type Catalog interface {
	storefront.Catalog
	GetProduct(ctx context.Context, id int) (catalog.Product, error)
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

// Deps bundles everything the model talks to.
type Deps struct {
	Store         *themestore.Store
	Catalog       Catalog
	FeaturedLimit int
	// Renderer targets the output; SSH sessions pass their own. Nil means
	// the default stdout renderer.
	Renderer *lipgloss.Renderer
	Version  string
	// LogFile receives log lines while Run owns the terminal; empty discards them.
	LogFile string
}
