package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/spiderdeck/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a saved card details payload",
	Long: `Validate checks a JSON card details payload, as returned by the details model,
against the card details schema: every stat present, whole and between 1 and
100, and a backstory of two to four sentences.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		out := cmd.OutOrStdout()

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("error reading payload: %w", err)
		}

		payload, err := validator.Decode(data)
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		results := validator.NewValidator(payload).Validate()

		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if results.Valid() {
			fmt.Fprintf(out, "✅ Payload '%s' is valid card details.\n", path)
		} else {
			fmt.Fprintf(out, "❌ Payload '%s' has %d validation errors:\n", path, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
