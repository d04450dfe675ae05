// ABOUTME: Truncation and word wrapping of plain text to a column budget
// ABOUTME: Cuts only at grapheme boundaries so wide runes are never split

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

const ellipsis = "…"

// Truncate shortens s to at most maxCells columns, ending in an ellipsis when
// anything was cut. Input is treated as plain text.
func Truncate(s string, maxCells int) string {
	if maxCells <= 0 {
		return ""
	}
	if Cells(s) <= maxCells {
		return s
	}
	budget := maxCells - 1 // room for the ellipsis
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cw := clusterWidth(g.Str())
		if used+cw > budget {
			break
		}
		b.WriteString(g.Str())
		used += cw
	}
	return strings.TrimRight(b.String(), " ") + ellipsis
}

// Wrap breaks s into lines of at most maxCells columns, preferring word
// boundaries. Words longer than a line are split. Existing newlines are kept.
func Wrap(s string, maxCells int) []string {
	if maxCells <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapParagraph(para, maxCells)...)
	}
	return lines
}

func wrapParagraph(para string, maxCells int) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		lines []string
		line  strings.Builder
		used  int
	)
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		used = 0
	}

	for _, w := range words {
		ww := Cells(w)
		if used > 0 && used+1+ww <= maxCells {
			line.WriteByte(' ')
			line.WriteString(w)
			used += 1 + ww
			continue
		}
		if used > 0 {
			flush()
		}
		if ww <= maxCells {
			line.WriteString(w)
			used = ww
			continue
		}
		// Hard-split an overlong word.
		g := uniseg.NewGraphemes(w)
		for g.Next() {
			cw := clusterWidth(g.Str())
			if used+cw > maxCells {
				flush()
			}
			line.WriteString(g.Str())
			used += cw
		}
	}
	if used > 0 {
		flush()
	}
	return lines
}
