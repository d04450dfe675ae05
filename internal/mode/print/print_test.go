// ABOUTME: Tests for print mode text and JSON output
// ABOUTME: Uses a fake catalog; JSON output is checked by decoding it back

package print

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mauromedda/themeswitch-go/pkg/catalog"
	"github.com/mauromedda/themeswitch-go/pkg/theme"
)

type fakeCatalog struct {
	products []catalog.Product
	err      error
}

func (f fakeCatalog) ListProducts(context.Context) ([]catalog.Product, error) {
	return f.products, f.err
}

func (f fakeCatalog) ListCategories(context.Context) ([]string, error) { return nil, nil }

func products() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Title: "Fjallraven - Foldsack No. 1 Backpack, Fits 15 Laptops", Price: catalog.MustPrice("109.95"), Category: "men's clothing", Rating: catalog.Rating{Rate: 3.9, Count: 120}},
		{ID: 2, Title: "Mens Casual Premium Slim Fit T-Shirts", Price: catalog.MustPrice("22.3"), Category: "men's clothing", Rating: catalog.Rating{Rate: 4.1, Count: 259}},
		{ID: 3, Title: "Mens Cotton Jacket", Price: catalog.MustPrice("55.99"), Category: "men's clothing", Rating: catalog.Rating{Rate: 4.7, Count: 500}},
	}
}

func TestRun_Text(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := Run(context.Background(), Config{Limit: 2, Theme: theme.Lookup(theme.ColorfulFun), Out: &out}, fakeCatalog{products: products()})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()
	for _, want := range []string{"Fun Shopping Adventure! · Colorful Fun", "Amazing Products!", " 1. Fjallraven", "…", "$109.95", "$22.30", "★ 4.1 (259)"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Cotton Jacket") {
		t.Error("limit not applied")
	}
}

func TestRun_JSON(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := Run(context.Background(), Config{Format: "json", Theme: theme.Lookup(theme.DarkElite), Out: &out}, fakeCatalog{products: products()})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	var doc struct {
		Theme    string `json:"theme"`
		Layout   string `json:"layout"`
		Products []struct {
			ID    int     `json:"id"`
			Price float64 `json:"price"`
		} `json:"products"`
	}
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if doc.Theme != "theme2" || doc.Layout != "sidebar" {
		t.Errorf("theme=%q layout=%q", doc.Theme, doc.Layout)
	}
	if len(doc.Products) != 3 || doc.Products[0].Price != 109.95 {
		t.Errorf("products = %+v", doc.Products)
	}
}

func TestRun_JSONEmptyList(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := Run(context.Background(), Config{Format: "json", Theme: theme.Lookup(theme.Default), Out: &out}, fakeCatalog{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), `"products":[]`) {
		t.Errorf("output = %s", out.String())
	}
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	if err := Run(context.Background(), Config{Format: "yaml"}, fakeCatalog{}); err == nil || !strings.Contains(err.Error(), "yaml") {
		t.Errorf("unknown format err = %v", err)
	}

	boom := errors.New("boom")
	err := Run(context.Background(), Config{Out: &bytes.Buffer{}}, fakeCatalog{err: boom})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped boom", err)
	}
}

func TestTitleCellsFor(t *testing.T) {
	t.Parallel()

	tests := []struct{ width, want int }{
		{0, defaultTitleCells},
		{100, 68},
		{20, minTitleCells},
	}
	for _, tt := range tests {
		if got := titleCellsFor(tt.width); got != tt.want {
			t.Errorf("titleCellsFor(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}
