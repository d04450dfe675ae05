// ABOUTME: Catalog data types: Product, Rating, Price and the list wrappers
// ABOUTME: Decoded by easyjson-generated code; Price keeps the exact decimal from the wire

//go:generate easyjson -all product.go

package catalog

import "github.com/shopspring/decimal"

// Product is a catalog item exactly as the remote service describes it.
type Product struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Price       Price  `json:"price"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Rating      Rating `json:"rating"`
}

// Rating is the aggregate review score of a product.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Products is a decoded /products response.
//
//easyjson:json
type Products []Product

// Categories is a decoded /products/categories response.
//
//easyjson:json
type Categories []string

// Price is an exact decimal amount. It decodes from JSON numbers or strings
// and encodes as a bare JSON number.
//
//easyjson:skip
type Price struct {
	decimal.Decimal
}

// MustPrice parses a constant amount; it panics on malformed input.
func MustPrice(s string) Price {
	return Price{Decimal: decimal.RequireFromString(s)}
}

// MarshalJSON implements json.Marshaler.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.Decimal.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Price) UnmarshalJSON(data []byte) error {
	return p.Decimal.UnmarshalJSON(data)
}
