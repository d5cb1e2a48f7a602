package congress

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"congress-scraper/pkg/htmlutil"
)

// ErrHeadingMismatch is returned when a result item's heading is not of the form
// "<type><number> — <congress>". The whole page fails to parse when any item
// mismatches.
var ErrHeadingMismatch = errors.New("bill heading does not match expected format")

// ErrResultsCount is returned when the results count line is present but one of
// its counters is not a representable number.
var ErrResultsCount = errors.New("results count out of range")

var (
	punctuationRegex  = regexp.MustCompile(`[,.]`)
	resultsCountRegex = regexp.MustCompile(`([\d,]+)-([\d,]+)\s+of ([\d,]+)`)
	billHeadingRegex  = regexp.MustCompile(`^([A-Za-z.]+)(\d{1,5}) — (\d{2,3})`)
	listingDateRegex  = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)
)

const (
	selectorResultsCount = "span.results-number"
	selectorResultItems  = "ul.results_list > li"

	labelSponsor      = "Sponsor:"
	labelLatestAction = "Latest Action:"

	listingDateLayout = "01/02/2006"
)

// parseCount converts a number that may contain thousands separators.
func parseCount(text string) (int, error) {
	return strconv.Atoi(punctuationRegex.ReplaceAllString(text, ""))
}

// parseResultsCount extracts the counters of a "<start>-<end> of <total>" line.
// found is false when text has no such line.
func parseResultsCount(text string) (start, end, of int, found bool, err error) {
	groups := resultsCountRegex.FindStringSubmatch(text)
	if groups == nil {
		return 0, 0, 0, false, nil
	}

	counters := make([]int, 3)
	for i, group := range groups[1:] {
		counters[i], err = parseCount(group)
		if err != nil {
			return 0, 0, 0, true, fmt.Errorf("%w: %q", ErrResultsCount, strings.TrimSpace(groups[0]))
		}
	}
	return counters[0], counters[1], counters[2], true, nil
}

type billHeading struct {
	billType string
	number   int
	congress int
}

// parseHeading reads the bill type, number and congress out of a heading like
// "H.R.1234 — 114th Congress (2015-2016)".
func parseHeading(text string) (billHeading, error) {
	text = htmlutil.Normalize(text)

	groups := billHeadingRegex.FindStringSubmatch(text)
	if groups == nil {
		return billHeading{}, fmt.Errorf("%w: %q", ErrHeadingMismatch, text)
	}

	number, err := strconv.Atoi(groups[2])
	if err != nil {
		return billHeading{}, fmt.Errorf("%w: number: %w", ErrHeadingMismatch, err)
	}
	congress, err := strconv.Atoi(groups[3])
	if err != nil {
		return billHeading{}, fmt.Errorf("%w: congress: %w", ErrHeadingMismatch, err)
	}

	return billHeading{
		billType: strings.ToLower(punctuationRegex.ReplaceAllString(groups[1], "")),
		number:   number,
		congress: congress,
	}, nil
}

// parseListingDate returns the first MM/DD/YYYY date in text, or nil when there
// is none or it is not a real calendar date.
func parseListingDate(text string) *Date {
	match := listingDateRegex.FindString(text)
	if match == "" {
		return nil
	}
	t, err := time.Parse(listingDateLayout, match)
	if err != nil {
		return nil
	}
	date := NewDate(t)
	return &date
}

// labeledCell returns the text of the cell next to the first table header of
// item containing label.
func labeledCell(item Selection, label string) string {
	var found Selection
	item.Children("table").Find("th").Each(func(_ int, th Selection) {
		if found != nil {
			return
		}
		if strings.Contains(th.Text(), label) {
			found = th.Next()
		}
	})
	if found == nil {
		return ""
	}
	return found.Text()
}

func parseItem(item Selection) (BillRecord, error) {
	link := item.Children("h2").Find("a")

	heading, err := parseHeading(link.Parent().Text())
	if err != nil {
		return BillRecord{}, err
	}

	title := htmlutil.Normalize(item.Children("h3").Text())
	href, _ := link.Attr("href")

	return NewBillRecord(
		heading.billType,
		heading.number,
		heading.congress,
		title,
		parseListingDate(labeledCell(item, labelSponsor)),
		parseListingDate(labeledCell(item, labelLatestAction)),
		href,
	), nil
}

// ParseSelection parses a search results page that has already been loaded.
func ParseSelection(root Selection) (ListingPage, error) {
	page := ListingPage{Bills: []BillRecord{}}

	start, end, of, found, err := parseResultsCount(root.Find(selectorResultsCount).Text())
	if err != nil {
		return page, err
	}
	if !found {
		return page, nil
	}
	page.Start = start
	page.End = end
	page.Of = of

	var itemErr error
	root.Find(selectorResultItems).Each(func(i int, item Selection) {
		if itemErr != nil {
			return
		}
		bill, err := parseItem(item)
		if err != nil {
			itemErr = fmt.Errorf("result item %d: %w", i, err)
			return
		}
		page.Bills = append(page.Bills, bill)
	})
	if itemErr != nil {
		return ListingPage{Bills: []BillRecord{}}, itemErr
	}

	return page, nil
}

// ParseReader parses the HTML of a search results page read from r.
func ParseReader(r io.Reader) (ListingPage, error) {
	root, err := LoadHTML(r)
	if err != nil {
		return ListingPage{Bills: []BillRecord{}}, fmt.Errorf("load html: %w", err)
	}
	return ParseSelection(root)
}

// Parse parses the HTML of a search results page. Markup without a results-count
// line, including the empty string, is the "no results" page and not an error.
func Parse(html string) (ListingPage, error) {
	return ParseReader(strings.NewReader(html))
}

// ResolveHrefs returns a copy of page whose bill hrefs are resolved against base.
func (p ListingPage) ResolveHrefs(base *url.URL) ListingPage {
	resolved := p
	resolved.Bills = make([]BillRecord, len(p.Bills))
	for i, bill := range p.Bills {
		bill.Href = htmlutil.ResolveHref(base, bill.Href)
		resolved.Bills[i] = bill
	}
	return resolved
}
