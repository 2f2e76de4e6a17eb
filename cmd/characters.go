package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/spiderdeck/internal/render"
)

// charactersCmd lists the characters and power levels
var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "List the characters and power levels you can generate",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		render.DisplayChoices(cmd.OutOrStdout())
	},
}
