package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/spiderdeck/internal/generator"
	"github.com/arcanaland/spiderdeck/internal/render"
	"github.com/arcanaland/spiderdeck/internal/workflow"
)

// generateCmd generates a single card and prints it
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a single card",
	Long: `Generate asks Gemini for stats and a backstory and Imagen for artwork, then
prints the resulting card.

Examples:
  spiderdeck generate --character spider-man --power hard
  spiderdeck generate -c "Mary Jane" -p low --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		characterFlag, _ := cmd.Flags().GetString("character")
		powerFlag, _ := cmd.Flags().GetString("power")
		asJSON, _ := cmd.Flags().GetBool("json")
		includeImage, _ := cmd.Flags().GetBool("include-image")
		noArt, _ := cmd.Flags().GetBool("no-art")

		// Reject bad choices before touching the network
		if _, _, err := parseChoice([]string{characterFlag, powerFlag}); err != nil {
			return err
		}

		ctx := context.Background()
		client, err := generator.Dial(ctx, cfg)
		if err != nil {
			return err
		}
		defer client.Close()

		out := cmd.OutOrStdout()

		// Progress goes to stderr so JSON output stays clean
		s := newSession(client, cmd.ErrOrStderr(), cfg.Art, render.TerminalWidth())
		s.showArt = !noArt && term.IsTerminal(int(os.Stdout.Fd()))

		generated, ok := s.generate(ctx, []string{characterFlag, powerFlag})
		if !ok {
			return errors.New(workflow.FailureMessage)
		}

		if !asJSON {
			s.out = out
			s.showCard(generated)
			return nil
		}

		if !includeImage {
			generated.ImageURL = ""
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(generated); err != nil {
			return fmt.Errorf("error encoding card: %w", err)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("character", "c", "", "Character to generate (see 'spiderdeck characters')")
	generateCmd.Flags().StringP("power", "p", "", "Power level: low, medium or hard")
	generateCmd.Flags().Bool("json", false, "Print the card as JSON instead of drawing it")
	generateCmd.Flags().Bool("include-image", false, "Include the base64 artwork in JSON output")
	generateCmd.Flags().Bool("no-art", false, "Do not draw card artwork in the terminal")
	generateCmd.MarkFlagRequired("character")
	generateCmd.MarkFlagRequired("power")
}
