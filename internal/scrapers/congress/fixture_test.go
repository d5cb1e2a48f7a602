package congress

import (
	"fmt"
	"strconv"
	"strings"
)

type fixtureItem struct {
	heading      string
	href         string
	title        string
	sponsor      string
	latestAction string
}

var fixtureTypes = []struct {
	heading string
	slug    string
}{
	{heading: "H.R.", slug: "house-bill"},
	{heading: "S.", slug: "senate-bill"},
	{heading: "H.Res.", slug: "house-resolution"},
	{heading: "S.Res.", slug: "senate-resolution"},
	{heading: "H.J.Res.", slug: "house-joint-resolution"},
	{heading: "S.J.Res.", slug: "senate-joint-resolution"},
	{heading: "H.Con.Res.", slug: "house-concurrent-resolution"},
	{heading: "S.Con.Res.", slug: "senate-concurrent-resolution"},
}

// withCommas formats n with thousands separators, the way the results count shows it.
func withCommas(n int) string {
	digits := strconv.Itoa(n)
	var out strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}

func newFixtureItem(congress, index int) fixtureItem {
	billType := fixtureTypes[index%len(fixtureTypes)]
	number := index + 1

	latestAction := fmt.Sprintf(
		"House - 02/%02d/2015 Referred to the Subcommittee on Health. (All Actions)",
		index%28+1,
	)
	// every tenth bill has no dated action yet
	if index%10 == 9 {
		latestAction = "No actions yet."
	}

	return fixtureItem{
		heading: fmt.Sprintf(
			`<a href="/bill/%dth-congress/%s/%d">%s%d</a> — %dth Congress (2015-2016)`,
			congress, billType.slug, number, billType.heading, number, congress,
		),
		href:  fmt.Sprintf("/bill/%dth-congress/%s/%d", congress, billType.slug, number),
		title: fmt.Sprintf("To amend title %d of the United States Code, and for other purposes.", number),
		sponsor: fmt.Sprintf(
			`<a href="/member/john-smith/S000%03d">Rep. Smith, John [R-TX-%d]</a> (Introduced 01/%02d/2015) <strong>Cosponsors:</strong> (%d)`,
			index%1000, index%36+1, index%28+1, index%7,
		),
		latestAction: latestAction,
	}
}

func fixtureItems(congress, n int) []fixtureItem {
	items := make([]fixtureItem, n)
	for i := range items {
		items[i] = newFixtureItem(congress, i)
	}
	return items
}

func renderItem(out *strings.Builder, item fixtureItem) {
	out.WriteString(`
		<li class="compact">
			<span class="visualIndicator">BILL</span>
			<h2>` + item.heading + `</h2>
			<h3>` + item.title + `</h3>
			<table class="item_table">
				<tbody>
					<tr><th>Sponsor:</th><td>` + item.sponsor + `</td></tr>
					<tr><th>Committees:</th><td>House - Energy and Commerce</td></tr>
					<tr><th>Latest Action:</th><td>` + item.latestAction + `</td></tr>
				</tbody>
			</table>
		</li>`)
}

func renderListing(start, end, of int, items []fixtureItem) string {
	var out strings.Builder
	out.WriteString(`<!DOCTYPE html>
<html lang="en">
<head><title>Legislative Search Results | Congress.gov | Library of Congress</title></head>
<body>
	<div id="main" class="search-column-main">
		<div class="basic-search-tune-number">
			<span class="results-number">`)
	out.WriteString(fmt.Sprintf("%s-%s of %s", withCommas(start), withCommas(end), withCommas(of)))
	out.WriteString(`</span>
		</div>
		<ol class="basic-search-results-lists">
			<ul class="results_list">`)
	for _, item := range items {
		renderItem(&out, item)
	}
	out.WriteString(`
			</ul>
		</ol>
	</div>
</body>
</html>`)
	return out.String()
}

// bigFixture mirrors the first page of the 114th congress search: 250 of 8,913 bills.
func bigFixture() string {
	return renderListing(1, 250, 8913, fixtureItems(114, 250))
}
