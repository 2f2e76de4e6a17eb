package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	colorize "github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/spiderdeck/internal/card"
)

func init() {
	colorize.NoColor = true
}

func solidPNG(t *testing.T, c color.Color, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func sampleCard(t *testing.T) card.Card {
	return card.Card{
		ID:            "1700000000000-spider-man-abcd1234",
		CharacterName: card.SpiderMan,
		PowerLevel:    card.Hard,
		Stats:         card.Stats{Intelligence: 80, Strength: 90, Speed: 95, Durability: 75},
		Backstory:     "Bitten by a radioactive spider, Peter Parker learned that with great power comes great responsibility.",
		ImageURL:      card.PNGDataURI(solidPNG(t, color.RGBA{255, 0, 0, 255}, 6, 8)),
		Rarity:        card.Epic,
	}
}

func TestArtFromCard(t *testing.T) {
	art, err := ArtFromCard(sampleCard(t), 4, 3, true)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(art, "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, "▀▀▀▀", stripAnsi(line))
	}
	assert.Regexp(t, `\x1b\[38;2;25[0-5];0;0m`, art)
}

func TestArtFromCardPalette(t *testing.T) {
	art, err := ArtFromCard(sampleCard(t), 2, 1, false)
	require.NoError(t, err)
	assert.Contains(t, art, "\x1b[38;5;196m")
}

func TestArtFromCardBadReference(t *testing.T) {
	_, err := ArtFromCard(card.Card{ImageURL: "https://example.com/x.png"}, 4, 3, true)
	assert.ErrorIs(t, err, card.ErrNotDataURI)

	_, err = ArtFromCard(card.Card{ImageURL: card.PNGDataURI([]byte("not a png"))}, 4, 3, true)
	assert.Error(t, err)
}

func TestAnsi256(t *testing.T) {
	assert.Equal(t, 16, ansi256(0, 0, 0))
	assert.Equal(t, 231, ansi256(255, 255, 255))
	assert.Equal(t, 196, ansi256(255, 0, 0))
}

func TestStatBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░", StatBar(50, 10))
	assert.Equal(t, "░░░░░░░░░░", StatBar(-5, 10))
	assert.Equal(t, "██████████", StatBar(150, 10))
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, []string{"one two", "three"}, wrapText("one two three", 10))
	assert.Equal(t, []string{""}, wrapText("   ", 10))
	// Unreasonably small widths fall back to 40 columns
	assert.Equal(t, []string{"one two three"}, wrapText("one two three", 3))
}

func TestStripAnsi(t *testing.T) {
	assert.Equal(t, "▀x", stripAnsi("\x1b[38;2;1;2;3m\x1b[48;2;4;5;6m▀\x1b[0mx"))
}

func TestDisplayCard(t *testing.T) {
	c := sampleCard(t)
	art, err := ArtFromCard(c, 4, 3, true)
	require.NoError(t, err)

	var buf bytes.Buffer
	DisplayCard(&buf, c, art, 60)
	out := stripAnsi(buf.String())

	assert.Contains(t, out, "Card:   Spider-Man")
	assert.Contains(t, out, "Rarity: Epic")
	assert.Contains(t, out, "Power:  Hard")
	assert.Contains(t, out, "Speed")
	assert.Contains(t, out, " 95")
	assert.Contains(t, out, "Backstory:")
	assert.Contains(t, out, "radioactive")

	// Art sits to the left of the first info line
	first := strings.Split(out, "\n")[1]
	assert.True(t, strings.HasPrefix(first, "  ▀▀▀▀    Card:"), first)
}

func TestDisplayCardWithoutArt(t *testing.T) {
	var buf bytes.Buffer
	DisplayCard(&buf, sampleCard(t), "", 80)
	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "  Card:   Spider-Man", lines[1])
}

func TestDisplayDeck(t *testing.T) {
	var buf bytes.Buffer
	DisplayDeck(&buf, nil)
	assert.Contains(t, buf.String(), "Your deck is empty")

	buf.Reset()
	DisplayDeck(&buf, []card.Card{
		{ID: "b", CharacterName: card.Mysterio, PowerLevel: card.Low, Rarity: card.Rare},
		{ID: "a", CharacterName: card.MaryJane, PowerLevel: card.Medium, Rarity: card.Common},
	})
	out := buf.String()
	assert.Contains(t, out, "Your deck (2):")
	assert.Contains(t, out, "  1. Mysterio         Low    Rare    b")
	assert.Contains(t, out, "  2. Mary Jane        Medium Common  a")
}

func TestDisplayRarityCounts(t *testing.T) {
	var buf bytes.Buffer
	DisplayRarityCounts(&buf, map[card.Rarity]int{card.Common: 2, card.Epic: 1})
	assert.Equal(t, "Common: 2  Rare: 0  Epic: 1\n", buf.String())
}

func TestDisplayChoices(t *testing.T) {
	var buf bytes.Buffer
	DisplayChoices(&buf)
	assert.Contains(t, buf.String(), "Doctor Octopus   (doctor-octopus)")
	assert.Contains(t, buf.String(), "  Medium")
}
