// ABOUTME: tea.Msg types for theme state and asynchronous catalog fetches
// ABOUTME: Fetch results carry the sequence number of the request that produced them

package ui

import (
	"github.com/mauromedda/themeswitch-go/internal/storefront"
	"github.com/mauromedda/themeswitch-go/internal/themestore"
	"github.com/mauromedda/themeswitch-go/pkg/catalog"
)

// ThemeStateMsg delivers a theme store snapshot.
type ThemeStateMsg struct{ State themestore.State }

type homeLoadedMsg struct {
	seq  int
	home storefront.Home
	err  error
}

type productLoadedMsg struct {
	seq     int
	product catalog.Product
	err     error
}

type imageLoadedMsg struct {
	seq   int
	lines []string
	err   error
}
