package search

import (
	"regexp"
	"time"
)

// timestampRule pairs a pattern with a parser for its match.
type timestampRule struct {
	re    *regexp.Regexp
	parse func(match string) (time.Time, error)
}

var timestampRules = []timestampRule{
	// RFC3339 with optional fractional seconds: 2025-12-30T21:57:51.388772685Z
	{
		re: regexp.MustCompile(`\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?Z`),
		parse: func(m string) (time.Time, error) {
			t, err := time.Parse(time.RFC3339Nano, m)
			return t.UTC(), err
		},
	},
	// zoneless with milliseconds, assumed UTC: 2025-12-30 21:58:14.266
	{
		re: regexp.MustCompile(`\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3}`),
		parse: func(m string) (time.Time, error) {
			return time.ParseInLocation("2006-01-02 15:04:05.000", m, time.UTC)
		},
	},
}

// extractTimestamp infers an event time from a raw log line. The first
// pattern matching anywhere in the line wins. A match that does not parse
// as a valid date fails only that line's extraction: the result is nil,
// the same as no match at all.
func extractTimestamp(line string) *time.Time {
	for _, rule := range timestampRules {
		m := rule.re.FindString(line)
		if m == "" {
			continue
		}
		t, err := rule.parse(m)
		if err != nil {
			return nil
		}
		return &t
	}
	return nil
}
