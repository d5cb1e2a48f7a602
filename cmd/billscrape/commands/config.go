package commands

import (
	"fmt"
	"log/slog"
	"time"

	"congress-scraper/internal/components/chrono"
	"congress-scraper/internal/components/telemetry"
	"congress-scraper/internal/scrapers/congress"
	"congress-scraper/lib/configutil"
	"congress-scraper/lib/restyutil"
)

// Config is read from billscrape.json5, flags override it.
//
// TimeoutSeconds and RequestsPerSecond are pointers so that an explicit 0 in the
// file (no timeout, no rate limit) is kept instead of replaced by the default.
type Config struct {
	ListingUrl              string   `json:"listing_url"`
	UserAgent               string   `json:"user_agent"`
	TimeoutSeconds          *int     `json:"timeout_seconds"`
	RequestsPerSecond       *float64 `json:"requests_per_second"`
	DisableCloudflareBypass bool     `json:"disable_cloudflare_bypass"`
	PageSize                int      `json:"page_size"`
	Congress                []int    `json:"congress"`
	Chamber                 string   `json:"chamber"`
}

func defaultConfig() Config {
	opts := congress.DefaultClientOptions()
	timeoutSeconds := int(opts.Timeout / time.Second)
	requestsPerSecond := opts.RequestsPerSecond
	return Config{
		ListingUrl:        congress.LISTING_URL,
		UserAgent:         opts.UserAgent,
		TimeoutSeconds:    &timeoutSeconds,
		RequestsPerSecond: &requestsPerSecond,
		PageSize:          congress.DEFAULT_PAGE_SIZE,
	}
}

func loadConfig() (Config, error) {
	cfg, err := configutil.Load(configPath, defaultConfig())
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", configPath, err)
	}
	return cfg, nil
}

func (c Config) clientOptions() congress.ClientOptions {
	opts := congress.ClientOptions{
		UserAgent:               c.UserAgent,
		DisableCloudflareBypass: c.DisableCloudflareBypass,
	}
	if c.TimeoutSeconds != nil {
		opts.Timeout = time.Duration(*c.TimeoutSeconds) * time.Second
	}
	if c.RequestsPerSecond != nil {
		opts.RequestsPerSecond = *c.RequestsPerSecond
	}
	return opts
}

// newScraper creates a scraper over HTTP, exchanges are written to dumpDir when
// it is not empty.
func newScraper(cfg Config, dumpDir string) (congress.Scraper, error) {
	clock, err := chrono.NewStandardImpl()
	if err != nil {
		return congress.Scraper{}, fmt.Errorf("load timezone: %w", err)
	}
	tel := telemetry.NewSlogAPI(slog.Default())

	client := congress.NewClient(cfg.clientOptions(), tel)

	var output restyutil.InstrumentOutput
	if dumpDir != "" {
		fsOutput, err := restyutil.NewFilesystemOutput(dumpDir)
		if err != nil {
			return congress.Scraper{}, err
		}
		slog.Info("writing http exchanges", "dir", fsOutput.Directory())
		output = fsOutput
	}
	restyutil.InstrumentClient(client.Http(), tracer, output)

	return congress.NewScraper(client, clock, tel).WithListingUrl(cfg.ListingUrl), nil
}
