package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"congress-scraper/internal/scrapers/congress"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(stdin)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

// listingPage renders page of a search with total results split into pages of pageSize.
func listingPage(page, pageSize, total int) string {
	start := (page-1)*pageSize + 1
	end := min(page*pageSize, total)

	var out strings.Builder
	fmt.Fprintf(&out, `<span class="results-number">%d-%d of %d</span><ul class="results_list">`, start, end, total)
	for n := start; n <= end; n++ {
		fmt.Fprintf(&out, `
			<li>
				<h2><a href="/bill/114th-congress/house-bill/%d">H.R.%d</a> — 114th Congress (2015-2016)</h2>
				<h3>Bill number %d</h3>
				<table>
					<tr><th>Sponsor:</th><td>Rep. Doe, Jane [D-CA-1] (Introduced 03/0%d/2015)</td></tr>
					<tr><th>Latest Action:</th><td>No actions yet.</td></tr>
				</table>
			</li>`, n, n, n, n%9+1)
	}
	out.WriteString("</ul>")
	return out.String()
}

func TestCongressCommand(t *testing.T) {
	out, err := execute(t, nil, "congress", "--year", "2015")
	require.NoError(t, err)
	require.Equal(t, "114th Congress\n", out)

	out, err = execute(t, nil, "congress", "--year", "1789")
	require.NoError(t, err)
	require.Equal(t, "1st Congress\n", out)

	_, err = execute(t, nil, "congress", "--year", "1700")
	require.Error(t, err)
}

func TestBillTypeCommand(t *testing.T) {
	out, err := execute(t, nil, "billtype", "hr", "SJRES")
	require.NoError(t, err)
	require.Contains(t, out, "house-bill")
	require.Contains(t, out, "senate-joint-resolution")

	out, err = execute(t, nil, "billtype", "hjre")
	require.Error(t, err)
	require.Contains(t, out, `did you mean "hjres"?`)
}

func TestParseCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(listingPage(1, 3, 3)), 0600))

	out, err := execute(t, nil,
		"parse", path,
		"--format", "json",
		"--base-url", "https://congress.gov/legislation",
		"--summary=false",
	)
	require.NoError(t, err)

	var bills []congress.BillRecord
	require.NoError(t, json.Unmarshal([]byte(out), &bills))
	require.Len(t, bills, 3)
	require.Equal(t, "114-hr1", bills[0].ID)
	require.Equal(t, "https://congress.gov/bill/114th-congress/house-bill/1", bills[0].Href)
	require.Nil(t, bills[0].LastAction)

	out, err = execute(t, nil, "parse", path, "--summary", "--base-url", "")
	require.NoError(t, err)
	require.Equal(t, "1-3 of 3 (3 bills on this page)\n", out)
}

func TestParseCommandStdin(t *testing.T) {
	out, err := execute(t, strings.NewReader(listingPage(1, 2, 2)),
		"parse", "-",
		"--format", "table",
		"--base-url", "",
		"--summary=false",
	)
	require.NoError(t, err)
	require.Contains(t, out, "114-hr2")
	require.Contains(t, out, "house-bill")
	require.Contains(t, out, "114th")
	require.Contains(t, strings.ToLower(out), "total")

	_, err = execute(t, strings.NewReader(""), "parse", "-", "--format", "yaml")
	require.Error(t, err)
}

func TestScrapeCommand(t *testing.T) {
	var pages []int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("q") != `{"type":"bills","congress":114,"chamber":"House"}` {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		pages = append(pages, page)
		w.Write([]byte(listingPage(page, 2, 5)))
	}))
	defer server.Close()

	dir := t.TempDir()
	configFile := filepath.Join(dir, "billscrape.json5")
	require.NoError(t, os.WriteFile(configFile, []byte(fmt.Sprintf(`{
		listing_url: %q,
		requests_per_second: 1000,
		disable_cloudflare_bypass: true,
		page_size: 2,
	}`, server.URL+"/legislation")), 0600))

	dumpDir := filepath.Join(dir, "http")
	out, err := execute(t, nil,
		"scrape",
		"--config", configFile,
		"--congress", "114",
		"--chamber", "house",
		"--page", "1",
		"--format", "json",
		"--dump-http", dumpDir,
	)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, pages)

	var bills []congress.BillRecord
	require.NoError(t, json.Unmarshal([]byte(out), &bills))
	require.Len(t, bills, 5)
	for i, bill := range bills {
		require.Equal(t, i+1, bill.Number)
	}

	dumped, err := os.ReadDir(dumpDir)
	require.NoError(t, err)
	require.Len(t, dumped, 3)
}

func TestLoadConfigExplicitZero(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "billscrape.json5")
	require.NoError(t, os.WriteFile(configFile, []byte(`{
		requests_per_second: 0,
		timeout_seconds: 0,
	}`), 0600))

	previous := configPath
	configPath = configFile
	t.Cleanup(func() {
		configPath = previous
	})

	cfg, err := loadConfig()
	require.NoError(t, err)

	opts := cfg.clientOptions()
	require.Equal(t, 0.0, opts.RequestsPerSecond)
	require.Equal(t, time.Duration(0), opts.Timeout)
	require.Equal(t, congress.DefaultClientOptions().UserAgent, opts.UserAgent)

	require.NoError(t, os.WriteFile(configFile, []byte(`{user_agent: "custom"}`), 0600))
	cfg, err = loadConfig()
	require.NoError(t, err)
	require.Equal(t, congress.DefaultClientOptions().RequestsPerSecond, cfg.clientOptions().RequestsPerSecond)
	require.Equal(t, congress.DefaultClientOptions().Timeout, cfg.clientOptions().Timeout)
}

func TestQueryFlags(t *testing.T) {
	flags := &queryFlags{page: 2, chamber: "SENATE"}
	query, err := flags.query(Config{PageSize: 100, Congress: []int{113}})
	require.NoError(t, err)
	require.Equal(t, congress.Query{PageSize: 100, Page: 2, Congress: []int{113}, Chamber: "Senate"}, query)

	flags = &queryFlags{pageSize: 10, page: 1, congress: []int{110, 111}}
	query, err = flags.query(Config{PageSize: 100, Congress: []int{113}, Chamber: "House"})
	require.NoError(t, err)
	require.Equal(t, congress.Query{PageSize: 10, Page: 1, Congress: []int{110, 111}, Chamber: "House"}, query)

	_, err = (&queryFlags{chamber: "joint"}).query(Config{})
	require.Error(t, err)
	_, err = (&queryFlags{congress: []int{0}}).query(Config{})
	require.Error(t, err)
}
