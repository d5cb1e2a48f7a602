package legislature

import (
	"strings"

	"github.com/antzucaro/matchr"
)

var billTypeAbbreviations = []string{
	"hr",
	"hres",
	"hjres",
	"hconres",
	"s",
	"sres",
	"sjres",
	"sconres",
}

var billTypes = map[string]string{
	"hr":      "house-bill",
	"hres":    "house-resolution",
	"hjres":   "house-joint-resolution",
	"hconres": "house-concurrent-resolution",
	"s":       "senate-bill",
	"sres":    "senate-resolution",
	"sjres":   "senate-joint-resolution",
	"sconres": "senate-concurrent-resolution",
}

// BillType resolves a bill type abbreviation (case-insensitive) to its canonical
// category name. Unknown abbreviations report false.
func BillType(abbreviation string) (string, bool) {
	name, ok := billTypes[strings.ToLower(abbreviation)]
	return name, ok
}

// BillTypes returns the known abbreviations, house types first.
func BillTypes() []string {
	out := make([]string, len(billTypeAbbreviations))
	copy(out, billTypeAbbreviations)
	return out
}

// SuggestBillType returns the known abbreviation most similar to abbreviation
// along with its Jaro-Winkler similarity in [0, 1].
func SuggestBillType(abbreviation string) (string, float64) {
	needle := strings.ToLower(strings.NewReplacer(".", "", ",", "", " ", "").Replace(abbreviation))

	best := ""
	bestScore := -1.0
	for _, candidate := range billTypeAbbreviations {
		score := matchr.JaroWinkler(needle, candidate, false)
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}
	return best, bestScore
}
