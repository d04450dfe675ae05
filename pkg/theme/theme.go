// ABOUTME: Theme types: ID enumeration, Layout, hex Color, Palette, Config
// ABOUTME: Color parses #RRGGBB and reports luminance for dark/light decisions

package theme

import (
	"fmt"
	"strconv"
	"strings"
)

// ID identifies one of the built-in themes.
type ID string

const (
	Minimalist  ID = "theme1"
	DarkElite   ID = "theme2"
	ColorfulFun ID = "theme3"
)

// Default is the theme used when nothing valid has been persisted.
const Default = Minimalist

// IDs returns all theme identifiers in declaration order.
func IDs() []ID {
	return []ID{Minimalist, DarkElite, ColorfulFun}
}

// Valid reports whether id is a member of the built-in set.
func (id ID) Valid() bool {
	switch id {
	case Minimalist, DarkElite, ColorfulFun:
		return true
	}
	return false
}

// Parse converts a stored or user-supplied string into an ID.
// Surrounding whitespace is ignored; matching is exact otherwise.
func Parse(s string) (ID, bool) {
	id := ID(strings.TrimSpace(s))
	if !id.Valid() {
		return "", false
	}
	return id, true
}

// Layout is the page arrangement a theme asks for.
type Layout string

const (
	LayoutDefault Layout = "default"
	LayoutSidebar Layout = "sidebar"
	LayoutGrid    Layout = "grid"
)

// Color is a 24-bit color in #RRGGBB form.
type Color string

// Hex returns the color as an upper-case #RRGGBB string.
func (c Color) Hex() string {
	return strings.ToUpper(string(c))
}

// RGB returns the 8-bit components of the color.
func (c Color) RGB() (r, g, b uint8, err error) {
	s := strings.TrimPrefix(string(c), "#")
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", string(c))
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q: %w", string(c), err)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// Luminance returns the relative luminance in [0, 1] (BT.709 weights, no
// gamma correction). Unparseable colors report 0.
func (c Color) Luminance() float64 {
	r, g, b, err := c.RGB()
	if err != nil {
		return 0
	}
	return (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 255
}

// IsDark reports whether text on this color should be light.
func (c Color) IsDark() bool {
	return c.Luminance() < 0.5
}

// Palette holds the eight named colors of a theme.
type Palette struct {
	Primary       Color `json:"primary"`
	Secondary     Color `json:"secondary"`
	Background    Color `json:"background"`
	Surface       Color `json:"surface"`
	Text          Color `json:"text"`
	TextSecondary Color `json:"textSecondary"`
	Accent        Color `json:"accent"`
	Border        Color `json:"border"`
}

// Config is the resolved, immutable description of a theme.
type Config struct {
	ID          ID      `json:"name"`
	DisplayName string  `json:"displayName"`
	Layout      Layout  `json:"layout"`
	FontFamily  string  `json:"fontFamily"`
	Colors      Palette `json:"colors"`
}

// Dark reports whether the theme uses a dark background.
func (c Config) Dark() bool {
	return c.Colors.Background.IsDark()
}
