package itinerary

import (
	"regexp"
	"strconv"
	"strings"
)

// Duration fallbacks and keyword spans, in minutes.
const (
	defaultMinutes = 60
	halfDayMinutes = 240
	fullDayMinutes = 480
)

// firstNumber matches the first integer or decimal token in a duration string.
var firstNumber = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ParseDuration turns a candidate's free-text duration into a minute count.
//
// Keywords are checked before numeric extraction so "Full day tour" yields a
// full day rather than a numeric parse of a stray digit. Rules, in order:
// empty → 60; contains "half" → 240; contains "day" → 480; otherwise the
// first numeric token is read as hours; no token at all → 60.
func ParseDuration(text string) int {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return defaultMinutes
	}
	if strings.Contains(s, "half") {
		return halfDayMinutes
	}
	if strings.Contains(s, "day") {
		return fullDayMinutes
	}
	if m := firstNumber.FindString(s); m != "" {
		hours, err := strconv.ParseFloat(m, 64)
		if err == nil {
			return int(hours * 60)
		}
	}
	return defaultMinutes
}
