// ABOUTME: Built-in themes: Minimalist, Dark Elite, Colorful Fun
// ABOUTME: Lookup is total over the ID enumeration; unknown IDs resolve to Default

package theme

// Lookup returns the configuration for id. It never fails: an ID outside the
// built-in set resolves to the Default theme.
func Lookup(id ID) Config {
	switch id {
	case DarkElite:
		return Config{
			ID:          DarkElite,
			DisplayName: "Dark Elite",
			Layout:      LayoutSidebar,
			FontFamily:  "Playfair Display, serif",
			Colors: Palette{
				Primary:       "#F59E0B",
				Secondary:     "#8B5CF6",
				Background:    "#0F172A",
				Surface:       "#1E293B",
				Text:          "#F1F5F9",
				TextSecondary: "#94A3B8",
				Accent:        "#EF4444",
				Border:        "#334155",
			},
		}
	case ColorfulFun:
		return Config{
			ID:          ColorfulFun,
			DisplayName: "Colorful Fun",
			Layout:      LayoutGrid,
			FontFamily:  "Pacifico, cursive",
			Colors: Palette{
				Primary:       "#EC4899",
				Secondary:     "#8B5CF6",
				Background:    "#FEF3C7",
				Surface:       "#FFFFFF",
				Text:          "#1F2937",
				TextSecondary: "#6B7280",
				Accent:        "#10B981",
				Border:        "#F59E0B",
			},
		}
	default:
		return Config{
			ID:          Minimalist,
			DisplayName: "Minimalist",
			Layout:      LayoutDefault,
			FontFamily:  "Inter, system-ui, sans-serif",
			Colors: Palette{
				Primary:       "#3B82F6",
				Secondary:     "#6B7280",
				Background:    "#FFFFFF",
				Surface:       "#F9FAFB",
				Text:          "#111827",
				TextSecondary: "#6B7280",
				Accent:        "#10B981",
				Border:        "#E5E7EB",
			},
		}
	}
}

// All returns the configuration of every built-in theme in ID order.
func All() []Config {
	ids := IDs()
	out := make([]Config, len(ids))
	for i, id := range ids {
		out[i] = Lookup(id)
	}
	return out
}
