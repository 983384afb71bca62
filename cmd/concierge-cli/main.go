// Package main provides the concierge CLI entrypoint.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/scentdesk/concierge/internal/config"
	"github.com/scentdesk/concierge/internal/observability"
)

var (
	// Global flags
	cfgFile    string
	outputJSON bool
	noColor    bool

	// Configuration, logger, and terminal output
	cfg    *config.Config
	logger *observability.Logger
	ui     *UI
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "concierge-cli",
	Short: "Concierge CLI for seeding, catalog inspection, and local chat",
	Long: `Concierge CLI provides commands for working with the perfume bot locally.

Use this tool to:
- Seed a sample training-data file
- Inspect the loaded catalog
- Chat with the bot in-process, without the HTTP service

All commands support --json for automation.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logFormat := cfg.Observability.LogFormat
		if outputJSON {
			logFormat = "json"
		}

		logger = observability.NewLogger(observability.LogConfig{
			Level:       cfg.Observability.LogLevel,
			Format:      logFormat,
			ServiceName: "concierge-cli",
		})

		ui = NewUI(outputJSON, noColor)
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default: uses env vars)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newCatalogCmd())
	rootCmd.AddCommand(newChatCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newVersionCmd creates the version subcommand.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			if outputJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.Encode(map[string]string{"version": "2.0"})
				return
			}
			fmt.Println("concierge-cli v2.0")
		},
	}
}
