package model

import (
	"fmt"
	"strconv"
	"time"
)

// YearRange holds inclusive analysis window bounds. A zero bound means
// unbounded on that side.
type YearRange struct {
	From int
	To   int
}

// ParseYearRange parses from/to year strings into a YearRange.
// Returns the zero range if both are empty.
func ParseYearRange(fromStr, toStr string) (YearRange, error) {
	var yr YearRange

	if fromStr != "" {
		y, err := parseYear(fromStr)
		if err != nil {
			return yr, fmt.Errorf("invalid -from value %q: %w", fromStr, err)
		}
		yr.From = y
	}

	if toStr != "" {
		y, err := parseYear(toStr)
		if err != nil {
			return yr, fmt.Errorf("invalid -to value %q: %w", toStr, err)
		}
		yr.To = y
	}

	if yr.From != 0 && yr.To != 0 && yr.To < yr.From {
		return YearRange{}, fmt.Errorf("-to year %d precedes -from year %d", yr.To, yr.From)
	}

	return yr, nil
}

// Contains reports whether t falls inside the range.
func (yr YearRange) Contains(t time.Time) bool {
	y := t.Year()
	if yr.From != 0 && y < yr.From {
		return false
	}
	if yr.To != 0 && y > yr.To {
		return false
	}
	return true
}

// Filter returns the messages within the range, preserving order.
func (yr YearRange) Filter(msgs []Message) []Message {
	if yr.From == 0 && yr.To == 0 {
		return msgs
	}
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if yr.Contains(m.Timestamp) {
			out = append(out, m)
		}
	}
	return out
}

func parseYear(s string) (int, error) {
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("expected a four-digit year")
	}
	if y < 1970 || y > 9999 {
		return 0, fmt.Errorf("year %d out of range", y)
	}
	return y, nil
}
