// ABOUTME: Product image thumbnails rendered as true-color half-block ANSI art
// ABOUTME: Decodes PNG/JPEG/GIF/WebP, scales with CatmullRom to fit a cell box

package image

import (
	"bytes"
	"errors"
	"fmt"
	goimage "image"
	"image/color"
	"strings"

	// Register decoders for the formats the catalog serves.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ErrEmpty is returned for zero-length image data.
var ErrEmpty = errors.New("empty image data")

// Dimensions is an image size in pixels.
type Dimensions struct {
	Width  int
	Height int
}

// Probe reads the image header without decoding pixels.
func Probe(data []byte) (Dimensions, string, error) {
	if len(data) == 0 {
		return Dimensions{}, "", ErrEmpty
	}
	cfg, format, err := goimage.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Dimensions{}, "", fmt.Errorf("reading image header: %w", err)
	}
	return Dimensions{Width: cfg.Width, Height: cfg.Height}, format, nil
}

// Thumbnail decodes data and renders it into at most cols columns and
// maxRows terminal rows (maxRows <= 0 means unbounded). Each row covers two
// pixel rows: the upper pixel is the background and the lower the foreground
// of a ▄ cell. Transparent pixels are composited onto white.
func Thumbnail(data []byte, cols, maxRows int) ([]string, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	src, _, err := goimage.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return RenderHalfBlock(src, cols, maxRows), nil
}

// RenderHalfBlock scales img to fit the cell box and renders it.
func RenderHalfBlock(img goimage.Image, cols, maxRows int) []string {
	b := img.Bounds()
	w, h := fit(b.Dx(), b.Dy(), cols, maxRows*2)
	if w == 0 || h == 0 {
		return nil
	}

	dst := goimage.NewRGBA(goimage.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), goimage.NewUniform(color.White), goimage.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)

	lines := make([]string, 0, (h+1)/2)
	for y := 0; y < h; y += 2 {
		var sb strings.Builder
		for x := range w {
			top := dst.RGBAAt(x, y)
			if y+1 < h {
				bot := dst.RGBAAt(x, y+1)
				fmt.Fprintf(&sb, "\x1b[48;2;%d;%d;%dm\x1b[38;2;%d;%d;%dm▄",
					top.R, top.G, top.B, bot.R, bot.G, bot.B)
				continue
			}
			// Odd final row: paint only the upper half.
			fmt.Fprintf(&sb, "\x1b[49m\x1b[38;2;%d;%d;%dm▀", top.R, top.G, top.B)
		}
		sb.WriteString("\x1b[0m")
		lines = append(lines, sb.String())
	}
	return lines
}

// fit scales (w, h) down to the (maxW, maxH) box keeping the aspect ratio.
// maxH <= 0 leaves height unbounded. Images are never scaled up.
func fit(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 || maxW <= 0 {
		return 0, 0
	}
	if w > maxW {
		h = h * maxW / w
		w = maxW
	}
	if maxH > 0 && h > maxH {
		w = w * maxH / h
		h = maxH
	}
	return max(w, 1), max(h, 1)
}

// Placeholder is the text shown when an image cannot be rendered.
func Placeholder(data []byte) string {
	dim, format, err := Probe(data)
	if err != nil {
		return "[image]"
	}
	return fmt.Sprintf("[%s image %dx%d]", format, dim.Width, dim.Height)
}
