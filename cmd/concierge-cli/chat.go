package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scentdesk/concierge/internal/dialog"
	"github.com/scentdesk/concierge/pkg/bot"
)

// newChatCmd creates the chat subcommand.
func newChatCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the bot in-process",
		Long: `Chat starts an interactive session against the configured catalog,
without going through the HTTP service. Type "exit" or "quit" to leave.

With --json every reply is printed as one JSON object per line, for piping.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rng dialog.Rand
			if cmd.Flags().Changed("seed") {
				rng = rand.New(rand.NewSource(seed))
			}

			b := bot.Open(cfg.Catalog.TrainingDataPath, bot.Options{
				Rand:   rng,
				Logger: logger,
			})

			ui.Section("Perfume Concierge")
			ui.Info("Ask about perfumes, prices, or categories. Type \"exit\" to leave.")
			ui.Newline()

			prompt := IsTerminal() && !outputJSON
			scanner := bufio.NewScanner(os.Stdin)
			for {
				if prompt {
					fmt.Print("you> ")
				}
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					break
				}

				resp := b.Reply(line)

				if outputJSON {
					if err := json.NewEncoder(os.Stdout).Encode(resp); err != nil {
						return err
					}
					continue
				}

				fmt.Printf("bot> %s\n", resp.Text)
				ui.KeyValue("type", resp.Type)
				ui.KeyValue("confidence", fmt.Sprintf("%.2f", resp.Confidence))
				if len(resp.Suggestions) > 0 {
					ui.KeyValue("try", strings.Join(resp.Suggestions, " | "))
				}
				ui.Newline()
			}

			ui.Newline()
			ui.Success("Session ended")
			return scanner.Err()
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for the reply random source (reproducible replies)")

	return cmd
}
