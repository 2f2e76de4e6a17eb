package cmd

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	colorize "github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/spiderdeck/internal/card"
	"github.com/arcanaland/spiderdeck/internal/config"
	"github.com/arcanaland/spiderdeck/internal/generator"
)

func init() {
	colorize.NoColor = true
}

type fakeGenerator struct {
	details    generator.Details
	detailsErr error
	image      string
}

func (f *fakeGenerator) RequestCardDetails(ctx context.Context, character card.Character, level card.PowerLevel) (generator.Details, error) {
	return f.details, f.detailsErr
}

func (f *fakeGenerator) RequestCardImage(ctx context.Context, prompt string) (string, error) {
	return f.image, nil
}

func bluePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 3, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 3; x++ {
			img.Set(x, y, color.RGBA{0, 0, 255, 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newTestSession(t *testing.T) (*session, *fakeGenerator, *bytes.Buffer) {
	gen := &fakeGenerator{
		details: generator.Details{
			Stats:     card.Stats{Intelligence: 50, Strength: 60, Speed: 40, Durability: 70},
			Backstory: "Peter Parker swings through Queens. He never gives up.",
		},
		image: card.PNGDataURI(bluePNG(t)),
	}
	var buf bytes.Buffer
	s := newSession(gen, &buf, config.Default().Art, 100)
	s.showArt = false
	return s, gen, &buf
}

func TestSessionGenerateAndAccept(t *testing.T) {
	s, _, out := newTestSession(t)
	ctx := context.Background()

	s.handle(ctx, "generate spider-man hard")
	text := out.String()
	assert.Contains(t, text, "Consulting the Multiverse...")
	assert.Contains(t, text, "Painting your card...")
	assert.Contains(t, text, "Card:   Spider-Man")
	assert.Contains(t, text, "Power:  Hard")
	assert.Contains(t, text, "Type 'accept'")
	assert.Less(t, strings.Index(text, "Consulting"), strings.Index(text, "Painting"))

	out.Reset()
	s.handle(ctx, "accept")
	assert.Contains(t, out.String(), "Added Spider-Man")
	assert.Contains(t, out.String(), "You now have 1 cards.")
	assert.Equal(t, 1, s.deck.Len())

	out.Reset()
	s.handle(ctx, "accept")
	assert.Contains(t, out.String(), "Error: no generated card")
	assert.Equal(t, 1, s.deck.Len())
}

func TestSessionMultiWordCharacter(t *testing.T) {
	s, _, out := newTestSession(t)

	s.handle(context.Background(), "g Doctor Octopus medium")
	assert.Contains(t, out.String(), "Card:   Doctor Octopus")
	assert.Contains(t, out.String(), "Power:  Medium")
}

func TestSessionDiscard(t *testing.T) {
	s, _, out := newTestSession(t)
	ctx := context.Background()

	s.handle(ctx, "generate mary-jane low")
	out.Reset()
	s.handle(ctx, "discard")
	assert.Contains(t, out.String(), "Card discarded.")
	assert.Equal(t, 0, s.deck.Len())

	out.Reset()
	s.handle(ctx, "discard")
	assert.Contains(t, out.String(), "Error:")
}

func TestSessionFailureShowsGenericMessage(t *testing.T) {
	s, gen, out := newTestSession(t)
	gen.detailsErr = errors.New("401 invalid API key sk-secret")

	s.handle(context.Background(), "generate mysterio hard")
	text := out.String()
	assert.Contains(t, text, "Failed to generate card. The cosmic forces are not aligned. Please try again.")
	assert.NotContains(t, text, "sk-secret")
	assert.NotContains(t, text, "Painting your card...")
	assert.NotContains(t, text, "Card:")
}

func TestSessionBadChoice(t *testing.T) {
	s, _, out := newTestSession(t)
	ctx := context.Background()

	s.handle(ctx, "generate venom hard")
	assert.Contains(t, out.String(), "unknown character")

	out.Reset()
	s.handle(ctx, "generate spider-man")
	assert.Contains(t, out.String(), "usage: generate <character> <power>")

	out.Reset()
	s.handle(ctx, "generate spider-man ultra")
	assert.Contains(t, out.String(), "unknown power level")
}

func TestSessionDeckViewRemove(t *testing.T) {
	s, _, out := newTestSession(t)
	ctx := context.Background()

	s.handle(ctx, "generate spider-man low")
	s.handle(ctx, "accept")
	s.handle(ctx, "generate green-goblin hard")
	s.handle(ctx, "accept")
	cards := s.deck.List()
	require.Len(t, cards, 2)
	assert.Equal(t, card.GreenGoblin, cards[0].CharacterName)

	out.Reset()
	s.handle(ctx, "deck")
	assert.Contains(t, out.String(), "Your deck (2):")
	assert.Contains(t, out.String(), "  1. Green Goblin")
	assert.Contains(t, out.String(), "  2. Spider-Man")
	assert.Contains(t, out.String(), "Common:")

	out.Reset()
	s.handle(ctx, "deck "+string(cards[0].Rarity))
	assert.Contains(t, out.String(), "Green Goblin")

	out.Reset()
	s.handle(ctx, "deck legendary")
	assert.Contains(t, out.String(), "unknown rarity")

	out.Reset()
	s.handle(ctx, "view "+cards[1].ID)
	assert.Contains(t, out.String(), "Card:   Spider-Man")

	out.Reset()
	s.handle(ctx, "remove 1")
	assert.Contains(t, out.String(), "Removed Green Goblin")
	require.Equal(t, 1, s.deck.Len())
	assert.Equal(t, cards[1].ID, s.deck.List()[0].ID)

	out.Reset()
	s.handle(ctx, "view 5")
	assert.Contains(t, out.String(), "card not found")

	out.Reset()
	s.handle(ctx, "remove")
	assert.Contains(t, out.String(), "usage: remove")
}

func TestSessionShowsArt(t *testing.T) {
	s, _, out := newTestSession(t)
	s.showArt = true

	s.handle(context.Background(), "generate spider-man low")
	assert.Contains(t, out.String(), "▀")
	assert.Contains(t, out.String(), "\x1b[38;2;")
}

func TestSessionRun(t *testing.T) {
	s, _, out := newTestSession(t)

	in := strings.NewReader("help\n\nbogus\ncharacters\nquit\ngenerate spider-man low\n")
	require.NoError(t, s.run(context.Background(), in))

	text := out.String()
	assert.Contains(t, text, "Spider-Verse Card Generator")
	assert.Contains(t, text, "generate <character> <power>")
	assert.Contains(t, text, `Unknown command "bogus"`)
	assert.Contains(t, text, "Doctor Octopus")
	assert.NotContains(t, text, "Consulting the Multiverse...")
}

func TestSessionRunStopsAtEOF(t *testing.T) {
	s, _, _ := newTestSession(t)
	assert.NoError(t, s.run(context.Background(), strings.NewReader("generate spider-man low\naccept\n")))
	assert.Equal(t, 1, s.deck.Len())
}
