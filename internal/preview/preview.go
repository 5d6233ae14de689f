// Package preview renders images into the terminal as ANSI half-block
// cells and reads the EXIF captions shown next to them.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xdraw "golang.org/x/image/draw"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Render draws the image at path into a box of width cells by rows
// terminal rows, keeping the aspect ratio and never upscaling. Each
// cell carries two vertically stacked pixels: the upper one as the
// foreground of '▀', the lower one as its background.
func Render(path string, width, rows int) (string, error) {
	if width < 1 || rows < 1 {
		return "", fmt.Errorf("preview box %dx%d is too small", width, rows)
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", path, err)
	}

	bounds := src.Bounds()
	w, h := fit(bounds.Dx(), bounds.Dy(), width, rows*2)
	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, bounds, xdraw.Over, nil)

	var b strings.Builder
	for y := 0; y < h; y += 2 {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			upper := hexColor(scaled.RGBAAt(x, y))
			cell := lipgloss.NewStyle().Foreground(lipgloss.Color(upper))
			if y+1 < h {
				cell = cell.Background(lipgloss.Color(hexColor(scaled.RGBAAt(x, y+1))))
			}
			b.WriteString(cell.Render("▀"))
		}
	}
	return b.String(), nil
}

// fit shrinks srcW x srcH into maxW x maxH preserving aspect ratio.
// Images already inside the box keep their size.
func fit(srcW, srcH, maxW, maxH int) (int, int) {
	if srcW <= maxW && srcH <= maxH {
		return srcW, srcH
	}
	r := math.Min(float64(maxW)/float64(srcW), float64(maxH)/float64(srcH))
	w := int(float64(srcW) * r)
	h := int(float64(srcH) * r)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
