package card

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Character is one of the playable Spider-Verse characters
type Character string

const (
	SpiderMan     Character = "Spider-Man"
	GreenGoblin   Character = "Green Goblin"
	MaryJane      Character = "Mary Jane"
	DoctorOctopus Character = "Doctor Octopus"
	Mysterio      Character = "Mysterio"
)

// Characters lists every character in display order
var Characters = []Character{SpiderMan, GreenGoblin, MaryJane, DoctorOctopus, Mysterio}

// PowerLevel is the tier requested for a generated card
type PowerLevel string

const (
	Low    PowerLevel = "Low"
	Medium PowerLevel = "Medium"
	Hard   PowerLevel = "Hard"
)

// PowerLevels lists every power level in ascending order
var PowerLevels = []PowerLevel{Low, Medium, Hard}

var (
	ErrUnknownCharacter  = errors.New("unknown character")
	ErrUnknownPowerLevel = errors.New("unknown power level")
)

// Stats are the four card attributes, each in 1..100
type Stats struct {
	Intelligence int `json:"intelligence"`
	Strength     int `json:"strength"`
	Speed        int `json:"speed"`
	Durability   int `json:"durability"`
}

// Total returns the sum of all four stats
func (s Stats) Total() int {
	return s.Intelligence + s.Strength + s.Speed + s.Durability
}

// Card represents a generated trading card
type Card struct {
	ID            string     `json:"id"`
	CharacterName Character  `json:"characterName"`
	PowerLevel    PowerLevel `json:"powerLevel"`
	Stats         Stats      `json:"stats"`
	Backstory     string     `json:"backstory"`
	ImageURL      string     `json:"imageUrl,omitempty"`
	Rarity        Rarity     `json:"rarity"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// New assembles a card from generated details and artwork.
// The rarity is drawn once from src.
func New(character Character, level PowerLevel, stats Stats, backstory, imageURL string, src Source, now time.Time) Card {
	return Card{
		ID:            NewID(character, now),
		CharacterName: character,
		PowerLevel:    level,
		Stats:         stats,
		Backstory:     backstory,
		ImageURL:      imageURL,
		Rarity:        AssignRarity(src),
		CreatedAt:     now,
	}
}

// NewID builds a card ID from the creation time and character name.
// A random suffix keeps IDs distinct within the same millisecond.
func NewID(character Character, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%d-%s-%s", now.UnixMilli(), character.Slug(), suffix)
}

// Slug returns the lower-case, dash separated form of the character name
func (c Character) Slug() string {
	return slugify(string(c))
}

// ParseCharacter resolves a display name or slug to a Character
func ParseCharacter(s string) (Character, error) {
	key := slugify(s)
	for _, c := range Characters {
		if c.Slug() == key {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCharacter, s)
}

// ParsePowerLevel resolves a power level name, ignoring case
func ParsePowerLevel(s string) (PowerLevel, error) {
	key := slugify(s)
	for _, p := range PowerLevels {
		if slugify(string(p)) == key {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPowerLevel, s)
}

// slugify lower-cases s and joins its words with dashes
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return strings.Join(strings.Fields(s), "-")
}
