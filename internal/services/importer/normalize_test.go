package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1.234,56", "1234.56"},   // dot thousands, comma decimal
		{"1234,56", "1234.56"},    // comma decimal
		{"19.80", "19.8"},         // single dot, two trailing digits: decimal
		{"1.234", "1234"},         // single dot, three trailing digits: thousands
		{"1.234.567", "1234567"},  // multiple dots: thousands
		{"S/ 25.50", "25.5"},      // currency marker stripped
		{"$100", "100"},           // currency marker stripped
		{"-50.25", "-50.25"},      // sign preserved
		{"0", "0"},                // parses; rejected later by validation
		{"  19,5 ", "19.5"},       // surrounding whitespace
	}

	for _, tc := range cases {
		got, ok := parseAmount(tc.in)
		require.True(t, ok, "parseAmount(%q)", tc.in)
		assert.Equal(t, tc.want, got.String(), "parseAmount(%q)", tc.in)
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "no-monto"} {
		_, ok := parseAmount(in)
		assert.False(t, ok, "parseAmount(%q)", in)
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"17/11/2025", "2025-11-17"},
		{"2025-11-17", "2025-11-17"},
		{"17-11-2025", "2025-11-17"},
		{"01/02/2024", "2024-02-01"},
	}

	for _, tc := range cases {
		got, ok := parseDate(tc.in)
		require.True(t, ok, "parseDate(%q)", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestParseDate_NoMatch(t *testing.T) {
	for _, in := range []string{"", "2025/13/40", "17/11/25", "not a date", "17/11/2025 19:16:08"} {
		_, ok := parseDate(in)
		assert.False(t, ok, "parseDate(%q)", in)
	}
}

func TestParseYapeDate(t *testing.T) {
	got, ok := parseYapeDate("17/11/2025 19:16:08")
	require.True(t, ok)
	assert.Equal(t, "2025-11-17", got)

	// Date without the operation time is not the Yape shape.
	_, ok = parseYapeDate("17/11/2025")
	assert.False(t, ok)

	_, ok = parseYapeDate("")
	assert.False(t, ok)
}
