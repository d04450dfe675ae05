// ABOUTME: YAML frontmatter splitter for embedded page files
// ABOUTME: Normalizes CRLF and decodes the --- delimited header into a typed value

package pages

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const fence = "---"

// errUnterminated is returned when the opening fence has no closing partner.
var errUnterminated = errors.New("unterminated frontmatter: missing closing ---")

// parseFrontmatter decodes the YAML header of content into T and returns the
// remaining Markdown body. Content without a header yields the zero T and
// the content unchanged.
func parseFrontmatter[T any](content string) (T, string, error) {
	var meta T

	text := strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(text, fence+"\n") {
		return meta, content, nil
	}
	rest := text[len(fence)+1:]

	var header, body string
	switch {
	case rest == fence:
		body = ""
	case strings.HasPrefix(rest, fence+"\n"):
		body = rest[len(fence)+1:]
	default:
		h, b, ok := strings.Cut(rest, "\n"+fence)
		if !ok {
			return meta, "", errUnterminated
		}
		header = h
		body = strings.TrimPrefix(b, "\n")
	}

	if err := yaml.Unmarshal([]byte(header), &meta); err != nil {
		return meta, "", fmt.Errorf("parsing frontmatter: %w", err)
	}
	return meta, body, nil
}
