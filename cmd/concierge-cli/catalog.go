package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scentdesk/concierge/internal/catalog"
)

// newCatalogCmd creates the catalog subcommand.
func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Show the loaded catalog",
		Long: `Catalog loads the configured training data and prints the products,
the category set, and the loaded counts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := catalog.Load(cfg.Catalog.TrainingDataPath, logger)

			if outputJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]interface{}{
					"perfumes":   store.Perfumes(),
					"categories": store.Categories(),
					"faqs":       store.NumFAQs(),
					"intents":    store.NumIntents(),
				})
			}

			ui.Section("Catalog")

			rows := make([][]string, 0, store.NumPerfumes())
			for _, p := range store.Perfumes() {
				rows = append(rows, []string{
					strconv.Itoa(p.ID),
					p.Name,
					catalog.Title(p.Category),
					fmt.Sprintf("$%.2f", p.Price),
					strings.Join(p.Notes, ", "),
				})
			}
			ui.Table([]string{"ID", "Name", "Category", "Price", "Notes"}, rows)

			ui.Newline()
			ui.KeyValue("Categories", strings.Join(store.Categories(), ", "))
			ui.KeyValue("Perfumes", store.NumPerfumes())
			ui.KeyValue("FAQs", store.NumFAQs())
			ui.KeyValue("Intents", store.NumIntents())
			return nil
		},
	}
}
