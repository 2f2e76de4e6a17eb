package generator

import (
	"fmt"

	"github.com/arcanaland/spiderdeck/internal/card"
)

const systemInstruction = `You are a creative writer for a trading card game based on the Spider-Man universe. Create compelling and appropriate details for the cards.`

// DetailsPrompt builds the instruction sent to the details model
func DetailsPrompt(character card.Character, level card.PowerLevel) string {
	return fmt.Sprintf(`Generate stats and a backstory for the character "%s" at a "%s" power level. `+
		`The stats should be numbers between 1 and 100, reflecting the specified power level. `+
		`For example, 'Low' should have stats generally below 40, 'Medium' between 40-70, and 'Hard' above 70. `+
		`For '%s', if power level is '%s', describe her as a regular person. `+
		`If '%s' or '%s', imagine an alternate reality where she has powers and describe that.`,
		character, level, card.MaryJane, card.Low, card.Medium, card.Hard)
}

// ImagePrompt builds the artwork prompt from the generated backstory
func ImagePrompt(character card.Character, level card.PowerLevel, backstory string) string {
	return fmt.Sprintf("Dynamic cinematic comic book art of %s, with a power level of %s. "+
		"Background reflects their backstory: %s. Epic, detailed, vibrant action pose.",
		character, level, backstory)
}
