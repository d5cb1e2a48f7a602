package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	fetchQuery    *queryFlags
	fetchOut      string
	fetchDumpHttp string
)

func init() {
	fetchQuery = addQueryFlags(fetchCmd)
	fetchCmd.Flags().StringVarP(&fetchOut, "out", "o", "", "Write the page to this file instead of stdout.")
	fetchCmd.Flags().StringVar(&fetchDumpHttp, "dump-http", "", "Write every http exchange into this directory.")
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch [--page <n>] [-o <page.html>]",
	Short: "Downloads the raw HTML of a single search results page.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTraced(cmd, func(ctx context.Context) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			query, err := fetchQuery.query(cfg)
			if err != nil {
				return err
			}
			scraper, err := newScraper(cfg, fetchDumpHttp)
			if err != nil {
				return err
			}

			html, err := scraper.FetchPage(ctx, query)
			if err != nil {
				return err
			}

			if fetchOut == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), html)
				return err
			}
			return os.WriteFile(fetchOut, []byte(html), 0644)
		})
	},
}
