package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// WeekdaySet is the set of weekdays a goal is active on
type WeekdaySet []time.Weekday

var weekdayNames = map[string]time.Weekday{
	"sun":       time.Sunday,
	"sunday":    time.Sunday,
	"mon":       time.Monday,
	"monday":    time.Monday,
	"tue":       time.Tuesday,
	"tuesday":   time.Tuesday,
	"wed":       time.Wednesday,
	"wednesday": time.Wednesday,
	"thu":       time.Thursday,
	"thursday":  time.Thursday,
	"fri":       time.Friday,
	"friday":    time.Friday,
	"sat":       time.Saturday,
	"saturday":  time.Saturday,
}

// ParseWeekday parses a weekday name ("Mon", "monday") or number (0=Sunday, 6=Saturday)
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if wd, ok := weekdayNames[s]; ok {
		return wd, nil
	}
	num, err := strconv.Atoi(s)
	if err == nil && num >= 0 && num <= 6 {
		return time.Weekday(num), nil
	}
	return 0, fmt.Errorf("invalid weekday: %s", s)
}

// ParseWeekdays parses a comma-separated list of weekdays
func ParseWeekdays(s string) (WeekdaySet, error) {
	if strings.TrimSpace(s) == "" {
		return WeekdaySet{}, nil
	}
	var set WeekdaySet
	for _, part := range strings.Split(s, ",") {
		wd, err := ParseWeekday(part)
		if err != nil {
			return nil, err
		}
		set = append(set, wd)
	}
	return set.Normalize(), nil
}

// Contains reports whether wd is in the set
func (s WeekdaySet) Contains(wd time.Weekday) bool {
	for _, d := range s {
		if d == wd {
			return true
		}
	}
	return false
}

// Normalize removes duplicates and orders the set Monday first
func (s WeekdaySet) Normalize() WeekdaySet {
	seen := make(map[time.Weekday]bool, len(s))
	out := make(WeekdaySet, 0, len(s))
	for _, d := range s {
		if d < time.Sunday || d > time.Saturday || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		return mondayIndex(out[i]) < mondayIndex(out[j])
	})
	return out
}

// Names returns the short weekday names ("Mon", "Tue", ...)
func (s WeekdaySet) Names() []string {
	names := make([]string, 0, len(s))
	for _, d := range s.Normalize() {
		names = append(names, d.String()[:3])
	}
	return names
}

// String formats the set as a comma-separated list of short names
func (s WeekdaySet) String() string {
	return strings.Join(s.Names(), ",")
}

func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
