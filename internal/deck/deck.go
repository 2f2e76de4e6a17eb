package deck

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/arcanaland/spiderdeck/internal/card"
)

// ErrCardNotFound is returned when a lookup matches no card in the deck
var ErrCardNotFound = errors.New("card not found")

// Deck is the session's collection of accepted cards, newest first.
// It is owned by a single caller and is not safe for concurrent mutation.
type Deck struct {
	cards []card.Card
}

// New returns an empty deck
func New() *Deck {
	return &Deck{}
}

// Add puts a card at the front of the deck
func (d *Deck) Add(c card.Card) {
	d.cards = append([]card.Card{c}, d.cards...)
}

// Remove drops the card with the given ID. Unknown IDs are ignored.
func (d *Deck) Remove(id string) {
	kept := d.cards[:0:0]
	for _, c := range d.cards {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	d.cards = kept
}

// List returns a copy of the cards, newest first
func (d *Deck) List() []card.Card {
	out := make([]card.Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Len returns the number of cards in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// Get gets a card by its ID
func (d *Deck) Get(id string) (card.Card, error) {
	for _, c := range d.cards {
		if c.ID == id {
			return c, nil
		}
	}
	return card.Card{}, fmt.Errorf("%w: %s", ErrCardNotFound, id)
}

// Resolve looks a card up by ID or by its 1-based position in List
func (d *Deck) Resolve(ref string) (card.Card, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(d.cards) {
			return card.Card{}, fmt.Errorf("%w: no card at position %d", ErrCardNotFound, n)
		}
		return d.cards[n-1], nil
	}
	return d.Get(ref)
}

// Filter returns the cards of the given rarity, newest first
func (d *Deck) Filter(r card.Rarity) []card.Card {
	var out []card.Card
	for _, c := range d.cards {
		if c.Rarity == r {
			out = append(out, c)
		}
	}
	return out
}

// CountByRarity tallies the deck per rarity
func (d *Deck) CountByRarity() map[card.Rarity]int {
	counts := make(map[card.Rarity]int, len(card.Rarities))
	for _, c := range d.cards {
		counts[c.Rarity]++
	}
	return counts
}
