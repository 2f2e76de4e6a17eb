package card

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Rarity is the tier assigned to a card at creation
type Rarity string

const (
	Common Rarity = "Common"
	Rare   Rarity = "Rare"
	Epic   Rarity = "Epic"
)

// Rarities lists every rarity from most to least frequent
var Rarities = []Rarity{Common, Rare, Epic}

// Source yields uniform draws in [0,1)
type Source interface {
	Float64() float64
}

// DefaultSource draws from the shared math/rand generator
var DefaultSource Source = globalSource{}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// RarityFor maps a uniform draw in [0,1) onto a rarity:
// Common 60%, Rare 30%, Epic 10%.
func RarityFor(draw float64) Rarity {
	switch {
	case draw < 0.6:
		return Common
	case draw < 0.9:
		return Rare
	default:
		return Epic
	}
}

// AssignRarity draws once from src and returns the matching rarity
func AssignRarity(src Source) Rarity {
	if src == nil {
		src = DefaultSource
	}
	return RarityFor(src.Float64())
}

// ParseRarity resolves a rarity name, ignoring case
func ParseRarity(s string) (Rarity, error) {
	for _, r := range Rarities {
		if strings.EqualFold(string(r), strings.TrimSpace(s)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown rarity: %q", s)
}
