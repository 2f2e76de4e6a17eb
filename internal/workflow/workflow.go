// Package workflow drives card generation: it runs the details and image
// requests in order, tracks loading and failure state, and holds the single
// pending card until the user accepts or discards it.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/arcanaland/spiderdeck/internal/card"
	"github.com/arcanaland/spiderdeck/internal/generator"
	"github.com/arcanaland/spiderdeck/internal/logger"
)

// FailureMessage is the only failure text ever shown to the user
const FailureMessage = "Failed to generate card. The cosmic forces are not aligned. Please try again."

const (
	detailsMessage = "Consulting the Multiverse..."
	imageMessage   = "Painting your card..."
)

var (
	ErrBusy             = errors.New("a card is already being generated")
	ErrNoPendingCard    = errors.New("no generated card to accept or discard")
	ErrGenerationFailed = errors.New("card generation failed")
)

// Stage is the controller's current state
type Stage int

const (
	Idle Stage = iota
	LoadingDetails
	LoadingImage
	Ready
	Failed
)

func (s Stage) String() string {
	switch s {
	case Idle:
		return "idle"
	case LoadingDetails:
		return "loading:details"
	case LoadingImage:
		return "loading:image"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Loading reports whether a generation request is in flight
func (s Stage) Loading() bool {
	return s == LoadingDetails || s == LoadingImage
}

// Generator produces card details and artwork
type Generator interface {
	RequestCardDetails(ctx context.Context, character card.Character, level card.PowerLevel) (generator.Details, error)
	RequestCardImage(ctx context.Context, prompt string) (string, error)
}

// Collection receives accepted cards
type Collection interface {
	Add(c card.Card)
}

// Snapshot is a read-only copy of the controller state
type Snapshot struct {
	Stage   Stage
	Message string
	Error   string
	Pending *card.Card
}

// Controller owns the generation state machine. State changes only through
// Submit, Accept, Discard and Dismiss.
type Controller struct {
	gen    Generator
	deck   Collection
	source card.Source
	now    func() time.Time

	mu      sync.Mutex
	stage   Stage
	message string
	errMsg  string
	pending *card.Card
	subs    map[chan Snapshot]struct{}
}

// Option customises a Controller
type Option func(*Controller)

// WithSource sets the random source used for rarity draws
func WithSource(src card.Source) Option {
	return func(c *Controller) { c.source = src }
}

// WithClock sets the clock used for card IDs and timestamps
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// New creates an idle controller that adds accepted cards to deck
func New(gen Generator, deck Collection, opts ...Option) *Controller {
	c := &Controller{
		gen:    gen,
		deck:   deck,
		source: card.DefaultSource,
		now:    time.Now,
		subs:   make(map[chan Snapshot]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit generates a new card for character at level. It blocks until both
// remote calls finish and fails with ErrBusy if another request is in flight.
// Any previous pending card or error is cleared.
func (c *Controller) Submit(ctx context.Context, character card.Character, level card.PowerLevel) (card.Card, error) {
	c.mu.Lock()
	if c.stage.Loading() {
		c.mu.Unlock()
		return card.Card{}, ErrBusy
	}
	c.pending = nil
	c.errMsg = ""
	c.setStageLocked(LoadingDetails, detailsMessage)
	c.mu.Unlock()

	details, err := c.gen.RequestCardDetails(ctx, character, level)
	if err != nil {
		return card.Card{}, c.fail(character, level, err)
	}

	c.mu.Lock()
	c.setStageLocked(LoadingImage, imageMessage)
	c.mu.Unlock()

	imageURL, err := c.gen.RequestCardImage(ctx, generator.ImagePrompt(character, level, details.Backstory))
	if err != nil {
		return card.Card{}, c.fail(character, level, err)
	}

	generated := card.New(character, level, details.Stats, details.Backstory, imageURL, c.source, c.now())

	c.mu.Lock()
	c.pending = &generated
	c.setStageLocked(Ready, "")
	c.mu.Unlock()

	logger.Info().Str("id", generated.ID).Str("rarity", string(generated.Rarity)).Msg("card generated")
	return generated, nil
}

func (c *Controller) fail(character card.Character, level card.PowerLevel, cause error) error {
	logger.Error().Err(cause).Str("character", string(character)).Str("power_level", string(level)).
		Msg("card generation failed")

	c.mu.Lock()
	c.pending = nil
	c.errMsg = FailureMessage
	c.setStageLocked(Failed, "")
	c.mu.Unlock()

	return fmt.Errorf("%w: %w", ErrGenerationFailed, cause)
}

// Accept moves the pending card to the front of the deck
func (c *Controller) Accept() (card.Card, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stage != Ready || c.pending == nil {
		return card.Card{}, ErrNoPendingCard
	}
	accepted := *c.pending
	c.deck.Add(accepted)
	c.pending = nil
	c.setStageLocked(Idle, "")
	return accepted, nil
}

// Discard drops the pending card without touching the deck
func (c *Controller) Discard() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stage != Ready || c.pending == nil {
		return ErrNoPendingCard
	}
	c.pending = nil
	c.setStageLocked(Idle, "")
	return nil
}

// Dismiss clears a failure and returns to idle. It does nothing otherwise.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stage != Failed {
		return
	}
	c.errMsg = ""
	c.setStageLocked(Idle, "")
}

// Snapshot returns the current state
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Subscribe returns a channel that receives a snapshot after every
// transition. Slow readers miss intermediate snapshots rather than blocking
// the controller.
func (c *Controller) Subscribe() <-chan Snapshot {
	ch := make(chan Snapshot, 8)
	c.mu.Lock()
	c.subs[ch] = struct{}{}
	c.mu.Unlock()
	return ch
}

// Unsubscribe stops delivery to ch and closes it
func (c *Controller) Unsubscribe(ch <-chan Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for sub := range c.subs {
		if sub == ch {
			delete(c.subs, sub)
			close(sub)
			return
		}
	}
}

func (c *Controller) setStageLocked(stage Stage, message string) {
	c.stage = stage
	c.message = message

	snap := c.snapshotLocked()
	for sub := range c.subs {
		select {
		case sub <- snap:
		default:
		}
	}
}

func (c *Controller) snapshotLocked() Snapshot {
	snap := Snapshot{
		Stage:   c.stage,
		Message: c.message,
		Error:   c.errMsg,
	}
	if c.pending != nil {
		pending := *c.pending
		snap.Pending = &pending
	}
	return snap
}
