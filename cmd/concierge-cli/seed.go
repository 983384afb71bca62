package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scentdesk/concierge/internal/catalog"
)

// newSeedCmd creates the seed subcommand.
func newSeedCmd() *cobra.Command {
	var (
		out   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write a sample training-data file",
		Long: `Seed writes the built-in sample catalog (perfumes, FAQs, intent
definitions) as indented JSON, ready for the API and the chat command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = cfg.Catalog.TrainingDataPath
			}

			if !force {
				if _, err := os.Stat(out); err == nil {
					return fmt.Errorf("%s already exists, use --force to overwrite", out)
				}
			}

			data := catalog.SampleData()

			raw, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("encode training data: %w", err)
			}
			if err := os.WriteFile(out, raw, 0644); err != nil {
				return fmt.Errorf("write training data: %w", err)
			}

			logger.Info().
				Str("path", out).
				Int("perfumes", len(data.Perfumes)).
				Int("faqs", len(data.FAQs)).
				Int("intents", len(data.Intents)).
				Msg("Sample training data written")

			if outputJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]interface{}{
					"path":     out,
					"perfumes": len(data.Perfumes),
					"faqs":     len(data.FAQs),
					"intents":  len(data.Intents),
				})
			}

			ui.Success("Wrote %s", out)
			ui.KeyValue("Perfumes", len(data.Perfumes))
			ui.KeyValue("FAQs", len(data.FAQs))
			ui.KeyValue("Intents", len(data.Intents))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default: catalog.training_data_path)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}
