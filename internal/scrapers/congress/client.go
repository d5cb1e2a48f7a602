// client.go contains the HTTP side of scraping congress.gov, it knows nothing
// about the structure of the pages it downloads.

package congress

import (
	"context"
	"fmt"
	"time"

	"congress-scraper/internal/components/assert"
	"congress-scraper/internal/components/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	report_client_fetch = "client.fetch"
)

// Fetcher downloads one page of search results.
type Fetcher interface {
	Fetch(ctx context.Context, req FetchRequest) (string, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, req FetchRequest) (string, error)

func (f FetcherFunc) Fetch(ctx context.Context, req FetchRequest) (string, error) {
	return f(ctx, req)
}

// StatusError is returned by Client when the server answers with a 4xx or 5xx status.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

type ClientOptions struct {
	UserAgent string
	Timeout   time.Duration
	// RequestsPerSecond caps the request rate, 0 disables the limit.
	RequestsPerSecond float64
	// DisableCloudflareBypass leaves the default transport untouched.
	DisableCloudflareBypass bool
}

func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		UserAgent:         "congress-scraper (+https://github.com/congress-scraper/congress-scraper)",
		Timeout:           time.Second * 60,
		RequestsPerSecond: 1,
	}
}

// Client is the default Fetcher, it downloads pages over HTTP.
type Client struct {
	http *resty.Client
	tel  telemetry.API
}

func NewClient(opts ClientOptions, tel telemetry.API) *Client {
	assert.NotNil(tel)

	tel = telemetry.NewScopedAPI("congress_scraper", tel)

	httpClient := resty.New()
	if !opts.DisableCloudflareBypass {
		httpClient.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(httpClient.GetClient().Transport)
	}
	if opts.UserAgent != "" {
		httpClient.SetHeader("user-agent", opts.UserAgent)
	}
	if opts.Timeout > 0 {
		httpClient.SetTimeout(opts.Timeout)
	}

	if opts.RequestsPerSecond > 0 {
		// max burst 1 spaces requests out evenly
		rateLimiter := rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
		httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return rateLimiter.Wait(req.Context())
		})
	}

	telemetry.InstrumentResty(httpClient, tel)

	return &Client{
		http: httpClient,
		tel:  tel,
	}
}

// Http exposes the underlying resty client so callers can attach more instrumentation.
func (c *Client) Http() *resty.Client {
	return c.http
}

func (c *Client) Fetch(ctx context.Context, req FetchRequest) (string, error) {
	c.tel.ReportDebug(report_client_fetch, req.URL, req.QueryParams)

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(req.QueryParams).
		Get(req.URL)
	if err != nil {
		// reported by InstrumentResty
		return "", err
	}
	if res.IsError() {
		err := &StatusError{StatusCode: res.StatusCode(), URL: res.Request.URL}
		c.tel.ReportBroken(report_client_fetch, err)
		return "", err
	}

	return res.String(), nil
}
