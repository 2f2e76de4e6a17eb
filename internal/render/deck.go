package render

import (
	"fmt"
	"io"
	"strings"

	colorize "github.com/fatih/color"

	"github.com/arcanaland/spiderdeck/internal/card"
)

// DisplayDeck writes a numbered list of cards, newest first
func DisplayDeck(w io.Writer, cards []card.Card) {
	if len(cards) == 0 {
		fmt.Fprintln(w, "Your deck is empty. Generate a card and accept it to start collecting.")
		return
	}

	fmt.Fprintf(w, "Your deck (%d):\n", len(cards))
	for i, c := range cards {
		fmt.Fprintf(w, "%3d. %-16s %-6s %s  %s\n",
			i+1,
			c.CharacterName,
			c.PowerLevel,
			RarityColor(c.Rarity).Sprintf("%-6s", c.Rarity),
			colorize.HiBlackString("%s", c.ID))
	}
}

// DisplayRarityCounts writes one line summarising the deck by rarity
func DisplayRarityCounts(w io.Writer, counts map[card.Rarity]int) {
	parts := make([]string, 0, len(card.Rarities))
	for _, r := range card.Rarities {
		parts = append(parts, RarityColor(r).Sprintf("%s: %d", r, counts[r]))
	}
	fmt.Fprintln(w, strings.Join(parts, "  "))
}

// DisplayChoices writes the available characters and power levels
func DisplayChoices(w io.Writer) {
	fmt.Fprintln(w, colorize.CyanString("Characters:"))
	for _, c := range card.Characters {
		fmt.Fprintf(w, "  %-16s (%s)\n", c, c.Slug())
	}
	fmt.Fprintln(w, colorize.CyanString("Power levels:"))
	for _, p := range card.PowerLevels {
		fmt.Fprintf(w, "  %s\n", p)
	}
}
