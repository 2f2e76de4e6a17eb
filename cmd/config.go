package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/spiderdeck/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the spiderdeck config file",
}

// configInitCmd creates the config file with defaults
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file if it does not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// configPathCmd prints where the config file lives
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the path of the config file",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigFilePath())
	},
}

// configShowCmd prints the effective configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "text_model  = %s\n", cfg.TextModel)
		fmt.Fprintf(out, "image_model = %s\n", cfg.ImageModel)
		fmt.Fprintf(out, "log_level   = %s\n", cfg.LogLevel)
		fmt.Fprintf(out, "art         = %dx%d (true color: %t)\n", cfg.Art.Width, cfg.Art.Height, cfg.Art.TrueColor)
		if cfg.APIKey == "" {
			fmt.Fprintln(out, "api_key     = (not set)")
		} else {
			fmt.Fprintln(out, "api_key     = (set)")
		}
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
}
