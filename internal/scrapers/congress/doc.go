// Package congress scrapes the bill listing of the congress.gov legislation search.
//
// Every page goes through the same three steps:
// 1) Query -> FetchRequest (query.go)
// 2) FetchRequest -> HTML, done by a Fetcher (client.go)
// 3) HTML -> ListingPage, various selectors into a struct (parse.go)
//
// Scraper (scraper.go) guides the program through the pages of a search until
// the reported total is covered and combines them into one ordered []BillRecord.
//
// The scraper is read-only and stateless, the output of each step depends
// solely on its input.
package congress
