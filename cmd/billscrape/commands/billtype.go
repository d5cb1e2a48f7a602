package commands

import (
	"context"
	"fmt"

	"congress-scraper/internal/legislature"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// suggestions below this similarity are not worth showing
const minSuggestionScore = 0.7

func init() {
	rootCmd.AddCommand(billTypeCmd)
}

var billTypeCmd = &cobra.Command{
	Use:   "billtype [abbreviation]...",
	Short: "Resolves bill type abbreviations, lists every known type when none are given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTraced(cmd, func(ctx context.Context) error {
			abbreviations := args
			if len(abbreviations) == 0 {
				abbreviations = legislature.BillTypes()
			}

			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Abbreviation", "Category"})

			var unknown []string
			for _, abbreviation := range abbreviations {
				category, ok := legislature.BillType(abbreviation)
				if !ok {
					unknown = append(unknown, abbreviation)
					category = "unknown"
					if suggestion, score := legislature.SuggestBillType(abbreviation); score >= minSuggestionScore {
						category = fmt.Sprintf("unknown, did you mean %q?", suggestion)
					}
				}
				t.AppendRow(table.Row{abbreviation, category})
			}
			t.Render()

			if len(unknown) > 0 {
				return fmt.Errorf("unknown bill types: %v", unknown)
			}
			return nil
		})
	},
}
