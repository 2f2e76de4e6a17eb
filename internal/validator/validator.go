package validator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"

	"github.com/arcanaland/spiderdeck/internal/card"
)

const (
	MinStat = 1
	MaxStat = 100

	MinBackstorySentences = 2
	MaxBackstorySentences = 4
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were recorded
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

// Payload mirrors the card details schema. Every field is a pointer so a
// missing field can be told apart from a zero value.
type Payload struct {
	Stats     *PayloadStats `json:"stats"`
	Backstory *string       `json:"backstory"`
}

type PayloadStats struct {
	Intelligence *float64 `json:"intelligence"`
	Strength     *float64 `json:"strength"`
	Speed        *float64 `json:"speed"`
	Durability   *float64 `json:"durability"`
}

// Decode parses a details payload. Surrounding whitespace is ignored.
func Decode(data []byte) (*Payload, error) {
	var p Payload
	if err := json.Unmarshal(bytes.TrimSpace(data), &p); err != nil {
		return nil, fmt.Errorf("error parsing details payload: %w", err)
	}
	return &p, nil
}

type Validator struct {
	Payload *Payload
	Results ValidationResults
}

func NewValidator(p *Payload) *Validator {
	return &Validator{
		Payload: p,
		Results: ValidationResults{},
	}
}

func (v *Validator) Validate() ValidationResults {
	v.validateStats()
	v.validateBackstory()
	return v.Results
}

func (v *Validator) validateStats() {
	if v.Payload.Stats == nil {
		v.Results.Errors = append(v.Results.Errors, "stats is required")
		return
	}

	s := v.Payload.Stats
	fields := []struct {
		name  string
		value *float64
	}{
		{"intelligence", s.Intelligence},
		{"strength", s.Strength},
		{"speed", s.Speed},
		{"durability", s.Durability},
	}

	for _, f := range fields {
		switch {
		case f.value == nil:
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("stats.%s is required", f.name))
		case *f.value != math.Trunc(*f.value):
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("stats.%s must be a whole number, got %v", f.name, *f.value))
		case *f.value < MinStat || *f.value > MaxStat:
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("stats.%s must be between %d and %d, got %v", f.name, MinStat, MaxStat, *f.value))
		}
	}
}

var sentenceEnd = regexp.MustCompile(`[.!?]+(\s|$)`)

func (v *Validator) validateBackstory() {
	if v.Payload.Backstory == nil {
		v.Results.Errors = append(v.Results.Errors, "backstory is required")
		return
	}
	if *v.Payload.Backstory == "" {
		v.Results.Errors = append(v.Results.Errors, "backstory must not be empty")
		return
	}

	n := CountSentences(*v.Payload.Backstory)
	if n < MinBackstorySentences || n > MaxBackstorySentences {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("backstory has %d sentences (expected %d-%d)", n, MinBackstorySentences, MaxBackstorySentences))
	}
}

// CountSentences counts sentence terminators in text. Trailing text without
// a terminator counts as one more sentence.
func CountSentences(text string) int {
	ends := sentenceEnd.FindAllStringIndex(text, -1)
	n := len(ends)
	last := 0
	if n > 0 {
		last = ends[n-1][1]
	}
	if len(bytes.TrimSpace([]byte(text[last:]))) > 0 {
		n++
	}
	return n
}

// Details converts a validated payload into card stats and backstory.
// It must only be called when Validate reported no errors.
func (p *Payload) Details() (card.Stats, string) {
	return card.Stats{
		Intelligence: int(*p.Stats.Intelligence),
		Strength:     int(*p.Stats.Strength),
		Speed:        int(*p.Stats.Speed),
		Durability:   int(*p.Stats.Durability),
	}, *p.Backstory
}
