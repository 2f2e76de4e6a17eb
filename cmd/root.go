package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/spiderdeck/internal/config"
	"github.com/arcanaland/spiderdeck/internal/logger"
)

var (
	cfg      *config.Config
	envFile  string
	logLevel string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "spiderdeck",
	Short: "Generate and collect Spider-Verse trading cards",
	Long: `Spiderdeck generates Spider-Verse trading cards with Gemini and Imagen.
Pick a character and a power level to get stats, a backstory and artwork,
then keep the cards you like in your deck for the rest of the session.

An API key must be available as GEMINI_API_KEY (or API_KEY), either in the
environment or in a .env file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(envFile)
		if err != nil {
			return err
		}

		level := cfg.LogLevel
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		logger.Init(level)
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Load environment variables from this file if it exists")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	RootCmd.AddCommand(generateCmd)
	RootCmd.AddCommand(playCmd)
	RootCmd.AddCommand(charactersCmd)
	RootCmd.AddCommand(validateCmd)
	RootCmd.AddCommand(configCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
