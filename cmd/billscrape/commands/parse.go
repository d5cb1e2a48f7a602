package commands

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"

	"congress-scraper/internal/scrapers/congress"

	"github.com/spf13/cobra"
)

var (
	parseFormat  string
	parseBaseUrl string
	parseSummary bool
)

func init() {
	parseCmd.Flags().StringVar(&parseFormat, "format", formatJson, "The output format, json or table.")
	parseCmd.Flags().StringVar(&parseBaseUrl, "base-url", "", "Resolve bill links against this url.")
	parseCmd.Flags().BoolVar(&parseSummary, "summary", false, "Only print the results count of the page.")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <page.html|->",
	Short: "Parses a saved search results page, - reads it from stdin.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTraced(cmd, func(ctx context.Context) error {
			err := validateFormat(parseFormat)
			if err != nil {
				return err
			}

			var input io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()
				input = file
			}

			page, err := congress.ParseReader(input)
			if err != nil {
				return err
			}

			if parseBaseUrl != "" {
				base, err := url.Parse(parseBaseUrl)
				if err != nil {
					return fmt.Errorf("parse base url: %w", err)
				}
				page = page.ResolveHrefs(base)
			}

			if parseSummary {
				_, err = fmt.Fprintf(
					cmd.OutOrStdout(),
					"%d-%d of %d (%d bills on this page)\n",
					page.Start, page.End, page.Of, len(page.Bills),
				)
				return err
			}
			return renderBills(cmd.OutOrStdout(), parseFormat, page.Bills)
		})
	},
}
