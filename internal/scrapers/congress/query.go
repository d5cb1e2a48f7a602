package congress

import (
	"encoding/json"
	"strconv"

	"congress-scraper/internal/components/chrono"
	"congress-scraper/internal/legislature"
)

const LISTING_URL = "https://congress.gov/legislation"

// FetchRequest is a GET request for one page of search results.
type FetchRequest struct {
	URL         string
	QueryParams map[string]string
}

// withDefaults returns a copy of q with defaults filled in. The copy does not
// share its Congress slice with q.
func (q Query) withDefaults(clock chrono.API) Query {
	out := q
	if out.PageSize <= 0 {
		out.PageSize = DEFAULT_PAGE_SIZE
	}
	if out.Page <= 0 {
		out.Page = DEFAULT_PAGE
	}
	if len(q.Congress) == 0 {
		out.Congress = []int{legislature.CurrentCongress(clock)}
	} else {
		out.Congress = make([]int, len(q.Congress))
		copy(out.Congress, q.Congress)
	}
	return out
}

// listingFilter is sent JSON encoded as the single "q" query parameter, the
// field order is part of the site's contract.
type listingFilter struct {
	Type     string `json:"type"`
	Congress any    `json:"congress"`
	Chamber  string `json:"chamber,omitempty"`
}

func (q Query) filter() ([]byte, error) {
	var congress any = q.Congress
	if len(q.Congress) == 1 {
		congress = q.Congress[0]
	}
	return json.Marshal(listingFilter{
		Type:     "bills",
		Congress: congress,
		Chamber:  q.Chamber,
	})
}

// fetchRequest serializes a query that already has its defaults applied.
func (q Query) fetchRequest(listingUrl string) (FetchRequest, error) {
	filter, err := q.filter()
	if err != nil {
		return FetchRequest{}, err
	}
	return FetchRequest{
		URL: listingUrl,
		QueryParams: map[string]string{
			"pageSize": strconv.Itoa(q.PageSize),
			"page":     strconv.Itoa(q.Page),
			"q":        string(filter),
		},
	}, nil
}

// BuildFetchRequest builds the request for the page described by query, filling
// in defaults from clock.
func BuildFetchRequest(listingUrl string, query Query, clock chrono.API) (FetchRequest, error) {
	return query.withDefaults(clock).fetchRequest(listingUrl)
}
