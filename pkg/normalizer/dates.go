package normalizer

import (
	"strings"
	"time"
)

// dobLayouts are the candidate date of birth formats, tried in order.
// A string valid under more than one layout parses per the earlier entry.
var dobLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
	"2006/01/02",
	"02.01.2006",
	"20060102",
	"02 01 2006",
	"01 02 2006",
}

// ParseDOB parses a free-text date of birth against the candidate
// layouts, first match wins. The second return value is false when no
// layout matched. Unparseable input is not an error, just no match.
func ParseDOB(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dobLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Age returns the number of whole years between dob and today. A dob in
// the future yields a negative age, which is passed through unchecked.
func Age(dob, today time.Time) int {
	years := today.Year() - dob.Year()
	if today.Month() < dob.Month() ||
		(today.Month() == dob.Month() && today.Day() < dob.Day()) {
		years--
	}
	return years
}
