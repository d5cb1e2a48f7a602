package legislature

import (
	"fmt"
	"strings"
)

type congressNumber interface {
	~int | ~int32 | ~int64 | ~uint | ~string
}

// CongressSuffix returns the ordinal suffix of a congress number given either as
// an integer or as its decimal string form. A bare "0" has no suffix.
func CongressSuffix[T congressNumber](congress T) string {
	digits := strings.TrimSpace(fmt.Sprint(congress))

	if len(digits) >= 2 {
		switch digits[len(digits)-2:] {
		case "11", "12", "13":
			return "th"
		}
	}
	if digits == "" {
		return "th"
	}

	switch digits[len(digits)-1] {
	case '1':
		return "st"
	case '2':
		return "nd"
	case '3':
		return "rd"
	case '0':
		return ""
	default:
		return "th"
	}
}

// Ordinal returns the congress number followed by its suffix, ex. "114th".
func Ordinal[T congressNumber](congress T) string {
	return fmt.Sprintf("%v%s", congress, CongressSuffix(congress))
}
