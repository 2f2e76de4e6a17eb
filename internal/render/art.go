package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"

	"github.com/arcanaland/spiderdeck/internal/card"
)

// ArtFromCard decodes a card's embedded artwork and converts it to ANSI art
func ArtFromCard(c card.Card, width, height int, trueColor bool) (string, error) {
	data, err := c.Artwork()
	if err != nil {
		return "", fmt.Errorf("failed to read artwork: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	return ImageToANSI(img, width, height, trueColor), nil
}

// ImageToANSI converts an image to ANSI art using upper half blocks, so each
// character cell covers two rows of pixels.
func ImageToANSI(img image.Image, width, height int, trueColor bool) string {
	// Resize image to desired dimensions (doubled for half-block characters)
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			c1, _ := colorful.MakeColor(getColorAt(resized, x, y))
			c2, _ := colorful.MakeColor(getColorAt(resized, x+1, y))
			c3, _ := colorful.MakeColor(getColorAt(resized, x, y+1))
			c4, _ := colorful.MakeColor(getColorAt(resized, x+1, y+1))

			// Top pixels as foreground, bottom pixels as background
			fg := averageColor(c1, c2)
			bg := averageColor(c3, c4)

			buffer.WriteString(ansiColorString('▀', fg, bg, trueColor))
		}
		buffer.WriteString("\n")
	}

	return buffer.String()
}

// getColorAt returns the color at a specific coordinate
func getColorAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		return img.At(x, y)
	}
	return color.RGBA{0, 0, 0, 255}
}

// averageColor calculates the average of multiple colors
func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}.Clamped()
}

// ansiColorString formats a character with ANSI color codes
func ansiColorString(char rune, fg, bg colorful.Color, trueColor bool) string {
	r1, g1, b1 := fg.RGB255()
	r2, g2, b2 := bg.RGB255()

	if trueColor {
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
			r1, g1, b1, r2, g2, b2, char)
	}

	return fmt.Sprintf("\x1b[38;5;%dm\x1b[48;5;%dm%c\x1b[0m",
		ansi256(r1, g1, b1), ansi256(r2, g2, b2), char)
}

// ansi256 maps an RGB color onto the 6x6x6 cube of the 256-color palette
func ansi256(r, g, b uint8) int {
	level := func(v uint8) int {
		return (int(v)*5 + 127) / 255
	}
	return 16 + 36*level(r) + 6*level(g) + level(b)
}
