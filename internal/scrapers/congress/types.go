package congress

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	DEFAULT_PAGE_SIZE = 250
	DEFAULT_PAGE      = 1
)

// Date is a calendar date without a time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses a date in the YYYY-MM-DD form produced by Date.String.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return Date{}, err
	}
	return NewDate(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns midnight of the date in loc.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var value string
	err := json.Unmarshal(data, &value)
	if err != nil {
		return err
	}
	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// BillRecord is one bill of a search results listing.
type BillRecord struct {
	// ID is derived from Congress, Type and Number, ex. "114-hr1234".
	ID       string `json:"id"`
	Type     string `json:"type"`
	Number   int    `json:"number"`
	Congress int    `json:"congress"`
	Title    string `json:"title"`
	// IntroducedAt and LastAction are nil when the listing did not show a date.
	IntroducedAt *Date  `json:"introduced_at"`
	LastAction   *Date  `json:"last_action"`
	Href         string `json:"href"`
}

// BillID formats the identifier of a bill.
func BillID(congress int, billType string, number int) string {
	return fmt.Sprintf("%d-%s%d", congress, billType, number)
}

// NewBillRecord creates a BillRecord, deriving its ID from congress, billType and number.
func NewBillRecord(
	billType string,
	number, congress int,
	title string,
	introducedAt, lastAction *Date,
	href string,
) BillRecord {
	return BillRecord{
		ID:           BillID(congress, billType, number),
		Type:         billType,
		Number:       number,
		Congress:     congress,
		Title:        title,
		IntroducedAt: introducedAt,
		LastAction:   lastAction,
		Href:         href,
	}
}

// ListingPage is the result of parsing one page of search results. A page
// without a results-count line has all counters at 0 and no bills.
type ListingPage struct {
	Start int          `json:"start"`
	End   int          `json:"end"`
	Of    int          `json:"of"`
	Bills []BillRecord `json:"bills"`
}

// Complete reports whether the page's range reaches the end of the result set.
func (p ListingPage) Complete() bool {
	return p.End >= p.Of
}

// Query describes a bill search. Zero values mean defaults: PageSize 250,
// Page 1 and the current congress. Chamber is only sent when not empty.
type Query struct {
	PageSize int
	Page     int
	Congress []int
	// Chamber is "House" or "Senate".
	Chamber string
}

// PageCount returns how many pages of pageSize are needed to cover total results.
func PageCount(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
