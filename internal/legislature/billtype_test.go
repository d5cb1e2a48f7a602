package legislature

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBillType(t *testing.T) {
	upper, ok := BillType("HR")
	require.True(t, ok)
	lower, ok := BillType("hr")
	require.True(t, ok)
	require.Equal(t, "house-bill", upper)
	require.Equal(t, upper, lower)

	testCases := []struct {
		abbreviation string
		expected     string
	}{
		{abbreviation: "hres", expected: "house-resolution"},
		{abbreviation: "HJRes", expected: "house-joint-resolution"},
		{abbreviation: "hconres", expected: "house-concurrent-resolution"},
		{abbreviation: "S", expected: "senate-bill"},
		{abbreviation: "sres", expected: "senate-resolution"},
		{abbreviation: "sjres", expected: "senate-joint-resolution"},
		{abbreviation: "SCONRES", expected: "senate-concurrent-resolution"},
	}
	for _, test := range testCases {
		name, ok := BillType(test.abbreviation)
		require.True(t, ok, test.abbreviation)
		require.Equal(t, test.expected, name)
	}
}

func TestBillTypeUnknown(t *testing.T) {
	for _, abbreviation := range []string{"", "h.r.", "bill", "hr1"} {
		name, ok := BillType(abbreviation)
		require.False(t, ok, abbreviation)
		require.Empty(t, name)
	}
}

func TestBillTypesCoversMapping(t *testing.T) {
	abbreviations := BillTypes()
	require.Len(t, abbreviations, 8)
	for _, abbreviation := range abbreviations {
		_, ok := BillType(abbreviation)
		require.True(t, ok, abbreviation)
	}

	// callers get their own copy
	abbreviations[0] = "changed"
	require.Equal(t, "hr", BillTypes()[0])
}

func TestSuggestBillType(t *testing.T) {
	suggestion, score := SuggestBillType("H.R.")
	require.Equal(t, "hr", suggestion)
	require.InDelta(t, 1.0, score, 0.0001)

	suggestion, _ = SuggestBillType("sjre")
	require.Equal(t, "sjres", suggestion)

	suggestion, _ = SuggestBillType("hconr")
	require.Equal(t, "hconres", suggestion)
}
