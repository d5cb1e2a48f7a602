package commands

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"congress-scraper/internal/scrapers/congress"

	"github.com/spf13/cobra"
)

var (
	scrapeQuery    *queryFlags
	scrapeFormat   string
	scrapeDumpHttp string
	scrapeAbsolute bool
)

func init() {
	scrapeQuery = addQueryFlags(scrapeCmd)
	scrapeCmd.Flags().StringVar(&scrapeFormat, "format", formatJson, "The output format, json or table.")
	scrapeCmd.Flags().StringVar(&scrapeDumpHttp, "dump-http", "", "Write every http exchange into this directory.")
	scrapeCmd.Flags().BoolVar(&scrapeAbsolute, "absolute-hrefs", false, "Resolve bill links against the listing url.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--congress <n>]... [--chamber House|Senate] [--format json|table]",
	Short: "Scrapes every page of a bill search and prints the bills found.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTraced(cmd, func(ctx context.Context) error {
			err := validateFormat(scrapeFormat)
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			query, err := scrapeQuery.query(cfg)
			if err != nil {
				return err
			}
			scraper, err := newScraper(cfg, scrapeDumpHttp)
			if err != nil {
				return err
			}

			t1 := time.Now()
			bills, err := scraper.Scrape(ctx, query)
			if err != nil {
				return err
			}
			slog.Info("scraping time", "seconds", time.Since(t1).Seconds(), "bills", len(bills))

			if scrapeAbsolute {
				base, err := url.Parse(scraper.ListingUrl())
				if err != nil {
					return err
				}
				bills = congress.ListingPage{Bills: bills}.ResolveHrefs(base).Bills
			}
			return renderBills(cmd.OutOrStdout(), scrapeFormat, bills)
		})
	},
}
