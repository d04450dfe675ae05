// ABOUTME: Tests for home page loading: featured slicing, concurrent fetch, error policy
// ABOUTME: Uses an in-memory fake catalog; no network

package storefront

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mauromedda/themeswitch-go/pkg/catalog"
)

type fakeCatalog struct {
	products   []catalog.Product
	categories []string
	prodErr    error
	catErr     error
}

func (f *fakeCatalog) ListProducts(context.Context) ([]catalog.Product, error) {
	return f.products, f.prodErr
}

func (f *fakeCatalog) ListCategories(context.Context) ([]string, error) {
	return f.categories, f.catErr
}

func makeProducts(n int) []catalog.Product {
	out := make([]catalog.Product, n)
	for i := range out {
		out[i] = catalog.Product{ID: i + 1, Title: fmt.Sprintf("Product %d", i+1), Category: "misc"}
	}
	return out
}

func TestLoadHome_FirstSix(t *testing.T) {
	t.Parallel()

	fc := &fakeCatalog{products: makeProducts(20), categories: []string{"misc"}}
	home, err := LoadHome(context.Background(), fc, 0)
	if err != nil {
		t.Fatalf("LoadHome() error: %v", err)
	}
	if len(home.Featured) != DefaultFeatured {
		t.Fatalf("len(Featured) = %d, want %d", len(home.Featured), DefaultFeatured)
	}
	for i, p := range home.Featured {
		if p.ID != i+1 {
			t.Errorf("Featured[%d].ID = %d, want %d", i, p.ID, i+1)
		}
	}
	if len(home.Products) != 20 || len(home.Categories) != 1 {
		t.Errorf("Products=%d Categories=%d", len(home.Products), len(home.Categories))
	}
}

func TestLoadHome_FewerThanLimit(t *testing.T) {
	t.Parallel()

	home, err := LoadHome(context.Background(), &fakeCatalog{products: makeProducts(2)}, 6)
	if err != nil {
		t.Fatal(err)
	}
	if len(home.Featured) != 2 {
		t.Errorf("len(Featured) = %d, want 2", len(home.Featured))
	}
}

func TestLoadHome_ProductErrorFails(t *testing.T) {
	t.Parallel()

	want := &catalog.HTTPError{StatusCode: 500}
	_, err := LoadHome(context.Background(), &fakeCatalog{prodErr: want}, 6)
	var he *catalog.HTTPError
	if !errors.As(err, &he) || he.StatusCode != 500 {
		t.Errorf("err = %v, want wrapped HTTPError 500", err)
	}
}

func TestLoadHome_CategoryErrorIsSoft(t *testing.T) {
	t.Parallel()

	fc := &fakeCatalog{products: makeProducts(3), catErr: errors.New("down")}
	home, err := LoadHome(context.Background(), fc, 6)
	if err != nil {
		t.Fatalf("LoadHome() error: %v", err)
	}
	if home.Categories != nil || len(home.Featured) != 3 {
		t.Errorf("home = %+v", home)
	}
}

func TestFeatured_DoesNotAliasAppend(t *testing.T) {
	t.Parallel()

	all := makeProducts(5)
	f := Featured(all, 2)
	f = append(f, catalog.Product{ID: 99})
	if all[2].ID != 3 {
		t.Errorf("append to Featured overwrote source: all[2].ID = %d", all[2].ID)
	}
	if len(Featured(all, -1)) != 0 {
		t.Error("Featured(-1) should be empty")
	}
}

func TestInCategory(t *testing.T) {
	t.Parallel()

	ps := []catalog.Product{
		{ID: 1, Category: "electronics"},
		{ID: 2, Category: "jewelery"},
		{ID: 3, Category: "electronics"},
	}
	got := InCategory(ps, "electronics")
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("InCategory() = %+v", got)
	}
	if len(InCategory(ps, "")) != 3 {
		t.Error("empty category should return all")
	}
}
