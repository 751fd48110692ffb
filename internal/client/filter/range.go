// Package filter derives the visible, ordered subset of a collection from
// the operator's current criteria. Everything here is pure.
package filter

import (
	"fmt"
	"strings"
	"time"
)

type Range string

const (
	LastHour  Range = "lastHour"
	Today     Range = "today"
	ThisWeek  Range = "thisWeek"
	ThisMonth Range = "thisMonth"
	All       Range = "all"
)

var rangeLabels = map[Range]string{
	LastHour:  "Last 1 Hour",
	Today:     "Today",
	ThisWeek:  "Weekly",
	ThisMonth: "Monthly",
	All:       "All",
}

// Ranges lists every range from narrowest to widest.
func Ranges() []Range {
	return []Range{LastHour, Today, ThisWeek, ThisMonth, All}
}

func (r Range) Label() string {
	if l, ok := rangeLabels[r]; ok {
		return l
	}
	return string(r)
}

// ParseRange accepts range identifiers ("thisWeek") and their labels
// ("Weekly"), case-insensitively. An empty string means All.
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return All, nil
	}
	for r, label := range rangeLabels {
		if strings.EqualFold(s, string(r)) || strings.EqualFold(s, label) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown range %q", s)
}

// RangeStart returns the earliest instant included by r, computed in now's
// location. Weeks start on Monday; Sunday belongs to the week that began six
// days earlier. Unknown ranges behave like All.
func RangeStart(r Range, now time.Time) time.Time {
	switch r {
	case LastHour:
		return now.Add(-time.Hour)
	case Today:
		return midnight(now)
	case ThisWeek:
		back := (int(now.Weekday()) + 6) % 7
		return midnight(now.AddDate(0, 0, -back))
	case ThisMonth:
		y, m, _ := now.Date()
		return time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	}
	return time.Unix(0, 0).In(now.Location())
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
