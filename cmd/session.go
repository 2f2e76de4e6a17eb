package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	colorize "github.com/fatih/color"

	"github.com/arcanaland/spiderdeck/internal/card"
	"github.com/arcanaland/spiderdeck/internal/config"
	"github.com/arcanaland/spiderdeck/internal/deck"
	"github.com/arcanaland/spiderdeck/internal/logger"
	"github.com/arcanaland/spiderdeck/internal/render"
	"github.com/arcanaland/spiderdeck/internal/workflow"
)

const sessionHelp = `Commands:
  generate <character> <power>  Generate a new card (e.g. generate spider-man hard)
  accept                        Add the generated card to the front of your deck
  discard                       Throw the generated card away
  deck [rarity]                 List the cards in your deck
  view <id|number>              Show a card from your deck
  remove <id|number>            Remove a card from your deck
  characters                    List characters and power levels
  help                          Show this help
  quit                          Leave (your deck is not saved)`

// session is one interactive run: a controller, the deck it fills and the
// terminal it draws on.
type session struct {
	ctrl  *workflow.Controller
	deck  *deck.Deck
	out   io.Writer
	art   config.ArtConfig
	width int

	showArt bool
}

func newSession(gen workflow.Generator, out io.Writer, art config.ArtConfig, width int) *session {
	d := deck.New()
	return &session{
		ctrl:    workflow.New(gen, d),
		deck:    d,
		out:     out,
		art:     art,
		width:   width,
		showArt: true,
	}
}

// run reads commands from in until EOF or quit
func (s *session) run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(s.out, colorize.HiRedString("Spider-Verse Card Generator"))
	fmt.Fprintln(s.out, "Create and collect cards from across the Spider-Verse! Type 'help' for commands.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			break
		}
		if s.handle(ctx, scanner.Text()) {
			break
		}
	}

	fmt.Fprintln(s.out)
	return scanner.Err()
}

// handle executes one command line and reports whether the session should end
func (s *session) handle(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	args := fields[1:]

	switch strings.ToLower(fields[0]) {
	case "generate", "gen", "g":
		if generated, ok := s.generate(ctx, args); ok {
			s.showCard(generated)
			fmt.Fprintln(s.out, "Type 'accept' to add it to your deck or 'discard' to throw it away.")
		}
	case "accept", "add", "a":
		s.accept()
	case "discard", "d":
		s.discard()
	case "deck", "ls":
		s.listDeck(args)
	case "view", "show":
		s.view(args)
	case "remove", "rm":
		s.remove(args)
	case "characters", "chars":
		render.DisplayChoices(s.out)
	case "help", "?":
		fmt.Fprintln(s.out, sessionHelp)
	case "quit", "exit", "q":
		return true
	default:
		fmt.Fprintf(s.out, "Unknown command %q. Type 'help' for a list of commands.\n", fields[0])
	}
	return false
}

// parseChoice splits "<character words...> <power>" into its parts
func parseChoice(args []string) (card.Character, card.PowerLevel, error) {
	if len(args) < 2 {
		return "", "", errors.New("usage: generate <character> <power>")
	}
	level, err := card.ParsePowerLevel(args[len(args)-1])
	if err != nil {
		return "", "", err
	}
	character, err := card.ParseCharacter(strings.Join(args[:len(args)-1], " "))
	if err != nil {
		return "", "", err
	}
	return character, level, nil
}

// generate runs one generation, printing progress and any failure message
func (s *session) generate(ctx context.Context, args []string) (card.Card, bool) {
	character, level, err := parseChoice(args)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return card.Card{}, false
	}

	stop := s.watch()
	generated, err := s.ctrl.Submit(ctx, character, level)
	stop()

	if err != nil {
		if errors.Is(err, workflow.ErrBusy) {
			fmt.Fprintln(s.out, "A card is already being generated. Please wait.")
			return card.Card{}, false
		}
		fmt.Fprintln(s.out, colorize.RedString(s.ctrl.Snapshot().Error))
		return card.Card{}, false
	}

	return generated, true
}

// watch prints each loading message while a generation is running.
// The returned func stops watching and waits for pending output.
func (s *session) watch() func() {
	updates := s.ctrl.Subscribe()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		last := ""
		for snap := range updates {
			if snap.Stage.Loading() && snap.Message != last {
				fmt.Fprintln(s.out, colorize.CyanString(snap.Message))
				last = snap.Message
			}
		}
	}()

	return func() {
		s.ctrl.Unsubscribe(updates)
		wg.Wait()
	}
}

func (s *session) accept() {
	accepted, err := s.ctrl.Accept()
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Added %s (%s) to your deck. You now have %d cards.\n",
		accepted.CharacterName, render.RarityColor(accepted.Rarity).Sprint(accepted.Rarity), s.deck.Len())
}

func (s *session) discard() {
	if err := s.ctrl.Discard(); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "Card discarded.")
}

func (s *session) listDeck(args []string) {
	cards := s.deck.List()
	if len(args) > 0 {
		r, err := card.ParseRarity(args[0])
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return
		}
		cards = s.deck.Filter(r)
	}

	render.DisplayDeck(s.out, cards)
	if len(args) == 0 && len(cards) > 0 {
		render.DisplayRarityCounts(s.out, s.deck.CountByRarity())
	}
}

func (s *session) view(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "usage: view <id|number>")
		return
	}
	c, err := s.deck.Resolve(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	s.showCard(c)
}

func (s *session) remove(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "usage: remove <id|number>")
		return
	}
	c, err := s.deck.Resolve(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	s.deck.Remove(c.ID)
	fmt.Fprintf(s.out, "Removed %s (%s) from your deck.\n", c.CharacterName, c.ID)
}

func (s *session) showCard(c card.Card) {
	var art string
	if s.showArt {
		var err error
		art, err = render.ArtFromCard(c, s.art.Width, s.art.Height, s.art.TrueColor)
		if err != nil {
			logger.Warn().Err(err).Str("id", c.ID).Msg("error rendering artwork")
		}
	}
	render.DisplayCard(s.out, c, art, s.width)
}
