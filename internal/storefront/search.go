// ABOUTME: Fuzzy product search over title and category using sahilm/fuzzy
// ABOUTME: Results are ranked best first; an empty query returns the input order

package storefront

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/mauromedda/themeswitch-go/pkg/catalog"
)

// productSource adapts a product slice to fuzzy.Source.
type productSource []catalog.Product

func (s productSource) String(i int) string {
	return s[i].Title + " " + s[i].Category
}

func (s productSource) Len() int { return len(s) }

// Match is a ranked search hit.
type Match struct {
	Product catalog.Product
	// Indexes are byte offsets into Product.Title that matched the query.
	Indexes []int
	Score   int
}

// Search ranks products against query.
func Search(products []catalog.Product, query string) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		out := make([]Match, len(products))
		for i, p := range products {
			out[i] = Match{Product: p}
		}
		return out
	}

	results := fuzzy.FindFrom(query, productSource(products))
	out := make([]Match, len(results))
	for i, r := range results {
		p := products[r.Index]
		out[i] = Match{
			Product: p,
			Indexes: titleIndexes(r.MatchedIndexes, len(p.Title)),
			Score:   r.Score,
		}
	}
	return out
}

// titleIndexes keeps the matched offsets that fall inside the title.
func titleIndexes(idx []int, titleLen int) []int {
	var out []int
	for _, i := range idx {
		if i < titleLen {
			out = append(out, i)
		}
	}
	return out
}
