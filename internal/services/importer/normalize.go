package importer

import (
	"log"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Date shapes accepted in generic exports, plus the Yape timestamp.
var (
	dateDMYSlash = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
	dateYMDDash  = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	dateDMYDash  = regexp.MustCompile(`^(\d{2})-(\d{2})-(\d{4})$`)
	dateYape     = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})\s+(\d{2}):(\d{2}):(\d{2})$`)

	// Leading currency markers: "S/" (sol), "$", stray whitespace.
	currencyPrefix = regexp.MustCompile(`^[S/$\s]+`)
)

// parseDate normalizes DD/MM/YYYY, YYYY-MM-DD or DD-MM-YYYY to YYYY-MM-DD.
// Any other shape yields no match.
func parseDate(s string) (string, bool) {
	if s == "" {
		return "", false
	}

	if m := dateDMYSlash.FindStringSubmatch(s); m != nil {
		return m[3] + "-" + m[2] + "-" + m[1], true
	}
	if m := dateYMDDash.FindStringSubmatch(s); m != nil {
		return m[1] + "-" + m[2] + "-" + m[3], true
	}
	if m := dateDMYDash.FindStringSubmatch(s); m != nil {
		return m[3] + "-" + m[2] + "-" + m[1], true
	}
	return "", false
}

// parseYapeDate normalizes the Yape operation timestamp
// (DD/MM/YYYY HH:MM:SS) to YYYY-MM-DD.
func parseYapeDate(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	if m := dateYape.FindStringSubmatch(s); m != nil {
		return m[3] + "-" + m[2] + "-" + m[1], true
	}
	return "", false
}

// parseAmount normalizes an amount string with ambiguous decimal/thousands
// separators:
//   - "1.234,56" → dot is thousands, comma is decimal
//   - "1234,56"  → comma is decimal
//   - "1.234.567" → dots are thousands
//   - "1.234"   → a single dot followed by exactly three digits is taken as
//     a thousands separator (1234, not 1.234)
//   - "19.80"   → single dot with one or two trailing digits is decimal
func parseAmount(s string) (decimal.Decimal, bool) {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return decimal.Zero, false
	}

	cleaned = currencyPrefix.ReplaceAllString(cleaned, "")

	hasDot := strings.Contains(cleaned, ".")
	hasComma := strings.Contains(cleaned, ",")

	switch {
	case hasDot && hasComma:
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	case hasComma:
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	case hasDot:
		if strings.Count(cleaned, ".") > 1 {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
		} else {
			parts := strings.SplitN(cleaned, ".", 2)
			if len(parts[1]) == 3 {
				cleaned = parts[0] + parts[1]
			}
		}
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		log.Printf("importer: cannot parse amount %q (cleaned %q): %v", s, cleaned, err)
		return decimal.Zero, false
	}
	return amount, true
}
