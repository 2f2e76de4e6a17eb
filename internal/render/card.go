package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/spiderdeck/internal/card"
)

const statBarWidth = 20

// TerminalWidth returns the width of stdout, or 80 if it is not a terminal
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// RarityColor returns the color used for a rarity label
func RarityColor(r card.Rarity) *colorize.Color {
	switch r {
	case card.Epic:
		return colorize.New(colorize.FgHiMagenta, colorize.Bold)
	case card.Rare:
		return colorize.New(colorize.FgHiBlue, colorize.Bold)
	default:
		return colorize.New(colorize.FgWhite)
	}
}

// StatBar draws value (1-100) as a bar of width cells
func StatBar(value, width int) string {
	value = min(max(value, 0), 100)
	filled := value * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// CardInfo builds the text lines shown next to the artwork
func CardInfo(c card.Card, width int) []string {
	label := colorize.CyanString

	lines := []string{
		label("Card:   ") + colorize.HiWhiteString("%s", c.CharacterName),
		label("Rarity: ") + RarityColor(c.Rarity).Sprint(c.Rarity),
		label("Power:  ") + colorize.HiWhiteString("%s", c.PowerLevel),
		label("ID:     ") + colorize.HiWhiteString("%s", c.ID),
		"",
	}

	stats := []struct {
		name  string
		value int
	}{
		{"Intelligence", c.Stats.Intelligence},
		{"Strength", c.Stats.Strength},
		{"Speed", c.Stats.Speed},
		{"Durability", c.Stats.Durability},
	}
	for _, s := range stats {
		lines = append(lines, fmt.Sprintf("%s %s %3d",
			label("%-12s", s.name), colorize.YellowString(StatBar(s.value, statBarWidth)), s.value))
	}

	if c.Backstory != "" {
		lines = append(lines, "", label("Backstory:"))
		lines = append(lines, wrapText(c.Backstory, width)...)
	}

	return lines
}

// DisplayCard writes the artwork on the left and the card info on the right.
// An empty art string prints the info alone.
func DisplayCard(w io.Writer, c card.Card, art string, termWidth int) {
	var ansiLines []string
	if art != "" {
		ansiLines = strings.Split(strings.TrimRight(art, "\n"), "\n")
	}

	maxAnsiWidth := 0
	for _, line := range ansiLines {
		if visible := len([]rune(stripAnsi(line))); visible > maxAnsiWidth {
			maxAnsiWidth = visible
		}
	}

	spacing := 4
	infoStartCol := maxAnsiWidth + spacing
	if maxAnsiWidth == 0 {
		infoStartCol = 0
	}

	// Leave a small margin, but keep at least 20 columns for text
	infoWidth := max(termWidth-infoStartCol-4, 20)
	infoLines := CardInfo(c, infoWidth)

	fmt.Fprintln(w)
	for i := 0; i < max(len(ansiLines), len(infoLines)); i++ {
		fmt.Fprint(w, "  ")
		if i < len(ansiLines) {
			fmt.Fprint(w, ansiLines[i])
			visible := len([]rune(stripAnsi(ansiLines[i])))
			fmt.Fprint(w, strings.Repeat(" ", infoStartCol-visible))
		} else {
			fmt.Fprint(w, strings.Repeat(" ", infoStartCol))
		}

		if i < len(infoLines) {
			fmt.Fprint(w, infoLines[i])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
