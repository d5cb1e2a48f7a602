package commands

import (
	"context"
	"fmt"

	"congress-scraper/internal/components/chrono"
	"congress-scraper/internal/legislature"

	"github.com/spf13/cobra"
)

var congressYear int

func init() {
	congressCmd.Flags().IntVar(&congressYear, "year", 0, "Print the congress sitting during this legislative year instead.")
	rootCmd.AddCommand(congressCmd)
}

var congressCmd = &cobra.Command{
	Use:   "congress [--year <yyyy>]",
	Short: "Prints the number of the congress currently in session.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTraced(cmd, func(ctx context.Context) error {
			var number int
			if congressYear != 0 {
				number = legislature.CongressFromYear(congressYear)
			} else {
				clock, err := chrono.NewStandardImpl()
				if err != nil {
					return err
				}
				number = legislature.CurrentCongress(clock)
			}

			if number < 1 {
				return fmt.Errorf("no congress sat in %d", congressYear)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s Congress\n", legislature.Ordinal(number))
			return err
		})
	},
}
