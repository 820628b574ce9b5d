package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// cellString renders a raw cell as a trimmed string. Returns false for nil
// cells and for strings that trim to empty.
func cellString(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		s := strings.TrimSpace(x)
		return s, s != ""
	case fmt.Stringer:
		s := strings.TrimSpace(x.String())
		return s, s != ""
	default:
		s := strings.TrimSpace(fmt.Sprint(x))
		return s, s != ""
	}
}

// cellFloat coerces a raw cell to float64. Non-parseable values report false
// (missing), never an error.
func cellFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case float64:
		if math.IsNaN(x) {
			return 0, false
		}
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// cellInt coerces a raw cell to int, accepting float-typed whole numbers
// (CSV readers and Parquet decoders frequently hand integers back as floats).
func cellInt(v any) (int, bool) {
	f, ok := cellFloat(v)
	if !ok {
		return 0, false
	}
	if f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
	"2006/01/02",
}

// parseDateCell coerces a raw cell to a calendar date. String cells try the
// known layouts first, then the packed year-month path: strip non-digits,
// slice the first four digits as year and the next two as month, day = 1.
func parseDateCell(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return parsePackedYearMonth(s)
	case int, int32, int64, float64, float32:
		n, ok := cellInt(v)
		if !ok {
			return time.Time{}, false
		}
		return parsePackedYearMonth(strconv.Itoa(n))
	default:
		return time.Time{}, false
	}
}

// parsePackedYearMonth handles numerals like "202103" or "2021-03".
func parsePackedYearMonth(s string) (time.Time, bool) {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) < 6 {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(d[:4])
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(d[4:6])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), true
}
