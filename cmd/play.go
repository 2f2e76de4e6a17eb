package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/spiderdeck/internal/generator"
	"github.com/arcanaland/spiderdeck/internal/render"
)

// playCmd represents the interactive session
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive card generation session",
	Long: `Play starts an interactive session where you can generate cards, keep the
ones you like in your deck, inspect them and remove them again.

The deck only lives for the length of the session.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		client, err := generator.Dial(ctx, cfg)
		if err != nil {
			return err
		}
		defer client.Close()

		s := newSession(client, cmd.OutOrStdout(), cfg.Art, render.TerminalWidth())
		noArt, _ := cmd.Flags().GetBool("no-art")
		s.showArt = !noArt && term.IsTerminal(int(os.Stdout.Fd()))

		return s.run(ctx, cmd.InOrStdin())
	},
}

func init() {
	playCmd.Flags().Bool("no-art", false, "Do not draw card artwork in the terminal")
}
