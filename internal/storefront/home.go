// ABOUTME: Home page data: featured products and categories fetched concurrently
// ABOUTME: Product failures fail the load; category failures only drop the category strip

package storefront

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	pilog "github.com/mauromedda/themeswitch-go/internal/log"
	"github.com/mauromedda/themeswitch-go/pkg/catalog"
)

// DefaultFeatured is how many products the home page shows.
const DefaultFeatured = 6

// Catalog is the subset of catalog.Client the storefront reads from.
type Catalog interface {
	ListProducts(ctx context.Context) ([]catalog.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
}

// Home is everything the home page renders.
type Home struct {
	Featured   []catalog.Product
	Products   []catalog.Product // full list, for search
	Categories []string
}

// LoadHome fetches products and categories in parallel. limit <= 0 means
// DefaultFeatured.
func LoadHome(ctx context.Context, c Catalog, limit int) (Home, error) {
	if limit <= 0 {
		limit = DefaultFeatured
	}

	var (
		products   []catalog.Product
		categories []string
	)
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := c.ListProducts(gCtx)
		if err != nil {
			return fmt.Errorf("loading products: %w", err)
		}
		products = p
		return nil
	})

	g.Go(func() error {
		cats, err := c.ListCategories(gCtx)
		if err != nil {
			pilog.Warn("storefront: categories unavailable: %v", err)
			return nil
		}
		categories = cats
		return nil
	})

	if err := g.Wait(); err != nil {
		return Home{}, err
	}

	return Home{
		Featured:   Featured(products, limit),
		Products:   products,
		Categories: categories,
	}, nil
}

// Featured returns the first n products.
func Featured(products []catalog.Product, n int) []catalog.Product {
	if n < 0 {
		n = 0
	}
	if n > len(products) {
		n = len(products)
	}
	return products[:n:n]
}

// InCategory filters products by exact category name. An empty category
// returns products unchanged.
func InCategory(products []catalog.Product, category string) []catalog.Product {
	if category == "" {
		return products
	}
	var out []catalog.Product
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
