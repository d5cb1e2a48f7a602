package commands

import (
	"fmt"
	"strings"

	"congress-scraper/internal/scrapers/congress"

	"github.com/spf13/cobra"
)

type queryFlags struct {
	pageSize int
	page     int
	congress []int
	chamber  string
}

func addQueryFlags(cmd *cobra.Command) *queryFlags {
	flags := &queryFlags{}
	cmd.Flags().IntVar(&flags.pageSize, "page-size", 0, "The number of results per page, defaults to the config or 250.")
	cmd.Flags().IntVar(&flags.page, "page", congress.DEFAULT_PAGE, "The page to start from.")
	cmd.Flags().IntSliceVar(&flags.congress, "congress", nil, "The congress to search, repeatable. Defaults to the current congress.")
	cmd.Flags().StringVar(&flags.chamber, "chamber", "", "Only search bills of a chamber, House or Senate.")
	return flags
}

// normalizeChamber accepts the chamber in any case.
func normalizeChamber(chamber string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(chamber)) {
	case "":
		return "", nil
	case "house":
		return "House", nil
	case "senate":
		return "Senate", nil
	default:
		return "", fmt.Errorf("unknown chamber %q, expected House or Senate", chamber)
	}
}

func (f *queryFlags) query(cfg Config) (congress.Query, error) {
	query := congress.Query{
		PageSize: cfg.PageSize,
		Page:     f.page,
		Congress: cfg.Congress,
		Chamber:  cfg.Chamber,
	}
	if f.pageSize > 0 {
		query.PageSize = f.pageSize
	}
	if len(f.congress) > 0 {
		query.Congress = f.congress
	}
	if f.chamber != "" {
		query.Chamber = f.chamber
	}

	chamber, err := normalizeChamber(query.Chamber)
	if err != nil {
		return congress.Query{}, err
	}
	query.Chamber = chamber

	for _, n := range query.Congress {
		if n < 1 {
			return congress.Query{}, fmt.Errorf("invalid congress %d", n)
		}
	}
	return query, nil
}
