// scraper.go walks the pages of a bill search, client.go and parse.go do the
// fetching and the reading of each page.

package congress

import (
	"context"
	"fmt"

	"congress-scraper/internal/components/assert"
	"congress-scraper/internal/components/chrono"
	"congress-scraper/internal/components/telemetry"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("congress-scraper/internal/scrapers/congress")

const (
	report_scraper_fetch_page = "scraper.fetch-page"
	report_scraper_parse_page = "scraper.parse-page"
	report_scraper_records    = "scraper.records"
)

// Scraper collects every bill of a search by walking its result pages in order.
type Scraper struct {
	fetcher    Fetcher
	clock      chrono.API
	tel        telemetry.API
	listingUrl string
}

func NewScraper(fetcher Fetcher, clock chrono.API, tel telemetry.API) Scraper {
	assert.NotNil(fetcher)
	assert.NotNil(clock)
	assert.NotNil(tel)

	return Scraper{
		fetcher:    fetcher,
		clock:      clock,
		tel:        telemetry.NewScopedAPI("congress_scraper", tel),
		listingUrl: LISTING_URL,
	}
}

// WithListingUrl returns a copy of s that searches listingUrl instead of congress.gov.
func (s Scraper) WithListingUrl(listingUrl string) Scraper {
	assert.NotEmptyStr(listingUrl)
	s.listingUrl = listingUrl
	return s
}

func (s Scraper) ListingUrl() string {
	return s.listingUrl
}

func (s Scraper) fetch(ctx context.Context, query Query) (string, error) {
	req, err := query.fetchRequest(s.listingUrl)
	if err != nil {
		s.tel.ReportBroken(
			report_scraper_fetch_page,
			fmt.Errorf("build request: %w", err),
			query.Page,
		)
		return "", err
	}

	// the fetcher reports its own failures
	html, err := s.fetcher.Fetch(ctx, req)
	if err != nil {
		return "", fmt.Errorf("fetch page %d: %w", query.Page, err)
	}
	return html, nil
}

func (s Scraper) fetchAndParse(ctx context.Context, query Query) (ListingPage, error) {
	ctx, span := tracer.Start(ctx, "scraper:fetchAndParse")
	defer span.End()
	span.SetAttributes(attribute.Int("page", query.Page))

	html, err := s.fetch(ctx, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch page")
		return ListingPage{}, err
	}

	page, err := Parse(html)
	if err != nil {
		s.tel.ReportBroken(
			report_scraper_parse_page,
			err,
			query.Page,
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse page")
		return ListingPage{}, fmt.Errorf("parse page %d: %w", query.Page, err)
	}

	if page.Start > page.End || page.End > page.Of {
		s.tel.ReportWarning(
			report_scraper_parse_page,
			fmt.Errorf("inconsistent results count %d-%d of %d", page.Start, page.End, page.Of),
			query.Page,
		)
	}
	s.tel.ReportDebug("parsed page", query.Page, page.Start, page.End, page.Of, len(page.Bills))

	span.SetAttributes(
		attribute.Int("results.start", page.Start),
		attribute.Int("results.end", page.End),
		attribute.Int("results.of", page.Of),
	)
	return page, nil
}

// FetchPage returns the raw HTML of the page described by query, defaults are
// applied the same way Scrape applies them.
func (s Scraper) FetchPage(ctx context.Context, query Query) (string, error) {
	return s.fetch(ctx, query.withDefaults(s.clock))
}

// ScrapePage fetches and parses the single page described by query.
func (s Scraper) ScrapePage(ctx context.Context, query Query) (ListingPage, error) {
	return s.fetchAndParse(ctx, query.withDefaults(s.clock))
}

// Scrape fetches query.Page and every page after it until the reported total is
// covered, returning the bills of all pages in page order. Pages are fetched one
// at a time, the first failure aborts the scrape and no partial result is
// returned. query itself is never modified.
func (s Scraper) Scrape(ctx context.Context, query Query) ([]BillRecord, error) {
	ctx, span := tracer.Start(ctx, "scraper:Scrape")
	defer span.End()

	current := query.withDefaults(s.clock)
	startPage := current.Page

	first, err := s.fetchAndParse(ctx, current)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to scrape first page")
		return nil, err
	}

	if first.Complete() {
		s.tel.ReportCount(report_scraper_records, int64(len(first.Bills)))
		return first.Bills, nil
	}

	numPages := PageCount(first.Of, current.PageSize)
	span.SetAttributes(attribute.Int("pages", numPages))

	bills := append([]BillRecord{}, first.Bills...)

	for page := startPage + 1; page <= numPages; page++ {
		current.Page = page
		s.tel.ReportDebug("scrape page", page, numPages)

		next, err := s.fetchAndParse(ctx, current)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to scrape page")
			return nil, err
		}
		bills = append(bills, next.Bills...)
	}

	s.tel.ReportCount(report_scraper_records, int64(len(bills)))
	return bills, nil
}
