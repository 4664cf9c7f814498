package markup

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	abbreviatedCount  = regexp.MustCompile(`^([0-9]*\.?[0-9]+)\s*([km])?(?:\s*views?)?$`)
	relativeTimestamp = regexp.MustCompile(`(?i)\b(\d+|an?)\s+(second|minute|hour|day|week|month|year)s?\s+ago\b`)
)

// ParseAbbreviatedCount parses counts such as "1,234", "2.3k" or "1.1M",
// rounding to the nearest integer. It returns 0 when s is not a count or
// the count does not fit in an int.
func ParseAbbreviatedCount(s string) int {
	s = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
	m := abbreviatedCount.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	switch m[2] {
	case "k":
		n *= 1e3
	case "m":
		n *= 1e6
	}
	n = math.Round(n)
	if n >= math.MaxInt {
		return 0
	}
	return int(n)
}

// Relative time units. Months and years are fixed approximations.
var relativeUnits = map[string]time.Duration{
	"second": time.Second,
	"minute": time.Minute,
	"hour":   time.Hour,
	"day":    24 * time.Hour,
	"week":   7 * 24 * time.Hour,
	"month":  30 * 24 * time.Hour,
	"year":   365 * 24 * time.Hour,
}

// ParseRelativeTimestamp parses phrases such as "3 days ago" into the
// instant that far before now. A month counts as 30 days and a year as 365.
// It reports false when s holds no such phrase.
func ParseRelativeTimestamp(s string, now time.Time) (time.Time, bool) {
	m := relativeTimestamp.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	n := 1
	if c := strings.ToLower(m[1]); c != "a" && c != "an" {
		var err error
		if n, err = strconv.Atoi(m[1]); err != nil {
			return time.Time{}, false
		}
	}
	unit := relativeUnits[strings.ToLower(m[2])]
	return now.Add(-time.Duration(n) * unit), true
}
