// Package trend classifies relationship trajectories by comparing baseline
// and recent messaging rates per contact.
package trend

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"wrapped/internal/model"
)

// Fading thresholds. Decay detection wants a long, stable baseline so a
// natural lull doesn't read as a fading friendship.
const (
	DefaultMinMessages     = 100
	DefaultMaxInactiveDays = 365

	minActiveMonths   = 3
	minTwoYearWindow  = 30
	minBaselineWindow = 15
	fadingFloorRate   = 1.0 // msgs/week the baseline must have reached
	fadingDropFactor  = 0.3 // recent rate below 30% of baseline
)

// Emerging thresholds. Burst detection reacts faster: the burst is the
// signal being found.
const (
	minRecentMessages   = 4
	minRelationshipDays = 60
	maxDaysSinceLast    = 30
	revivedBaselineCeil = 0.2 // dormant below this rate
	revivedRecentFloor  = 0.5
	growingFactor       = 5.0
)

const topTrendResults = 10

// Fading is a contact whose recent rate collapsed against an established
// baseline.
type Fading struct {
	Contact       string  `json:"contact"`
	TotalMessages int     `json:"total_messages"`
	ActiveMonths  int     `json:"active_months"`
	BaselineRate  float64 `json:"baseline_rate"`
	RecentRate    float64 `json:"recent_rate"`
	DropPct       float64 `json:"drop_percentage"`
	DaysSince     int     `json:"days_since_contact"`
	LastContact   string  `json:"last_contact_date"`
}

// DetectFading finds relationships that were recently active but have gone
// quiet. Baseline prefers the year-long window ending one year before now;
// when that window is too thin it falls back to the six months immediately
// preceding the trailing 90 days. Returns the ten sharpest drops.
func DetectFading(msgs []model.Message, now time.Time, minMessages, maxInactiveDays int) []Fading {
	var out []Fading
	byContact := model.ByContact(msgs)

	for contact, group := range byContact {
		if isNonPerson(contact) {
			continue
		}
		if len(group) < minMessages {
			continue
		}

		last := group[len(group)-1].Timestamp
		daysSince := int(now.Sub(last).Hours() / 24)
		if daysSince > maxInactiveDays {
			continue
		}

		// Sustained history, not a short burst.
		months := activeMonths(group)
		if months < minActiveMonths {
			continue
		}
		if countSince(group, now.AddDate(0, 0, -730)) < minTwoYearWindow {
			continue
		}

		baseline, ok := baselineWindow(group, now)
		if !ok {
			continue
		}
		recent := model.RelationshipWindow{
			Count: countSince(group, now.AddDate(0, 0, -90)),
			Days:  90,
		}

		priorRate := baseline.RatePerWeek()
		recentRate := recent.RatePerWeek()
		if priorRate < fadingFloorRate || recentRate >= priorRate*fadingDropFactor {
			continue
		}

		out = append(out, Fading{
			Contact:       contact,
			TotalMessages: len(group),
			ActiveMonths:  months,
			BaselineRate:  priorRate,
			RecentRate:    recentRate,
			DropPct:       (1 - recentRate/priorRate) * 100,
			DaysSince:     daysSince,
			LastContact:   last.Format("2006-01-02"),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].DropPct != out[j].DropPct {
			return out[i].DropPct > out[j].DropPct
		}
		return out[i].Contact < out[j].Contact
	})
	if len(out) > topTrendResults {
		out = out[:topTrendResults]
	}
	return out
}

// baselineWindow picks the baseline interval for fading detection: the
// prior-year window when it holds enough messages, else the fallback window
// covering days 90 through 270 before now.
func baselineWindow(group []model.Message, now time.Time) (model.RelationshipWindow, bool) {
	priorYear := model.RelationshipWindow{
		Count: countBetween(group, now.AddDate(0, 0, -730), now.AddDate(0, 0, -365)),
		Days:  365,
	}
	if priorYear.Count >= minBaselineWindow {
		return priorYear, true
	}

	fallback := model.RelationshipWindow{
		Count: countBetween(group, now.AddDate(0, 0, -270), now.AddDate(0, 0, -90)),
		Days:  180,
	}
	if fallback.Count >= minBaselineWindow {
		return fallback, true
	}
	return model.RelationshipWindow{}, false
}

// Emerging is a contact whose recent rate rose sharply from a low or
// moderate baseline. Growth is "Revived" for dormant baselines, else the
// multiplicative factor ("6x").
type Emerging struct {
	Contact          string  `json:"contact"`
	TotalMessages    int     `json:"total_messages"`
	RecentMessages   int     `json:"recent_messages"`
	BaselineRate     float64 `json:"baseline_rate"`
	RecentRate       float64 `json:"msgs_per_week"`
	Growth           string  `json:"growth"`
	Revived          bool    `json:"is_revived"`
	RelationshipDays int     `json:"relationship_days"`
}

// DetectEmerging finds revived and growing connections: contacts known for
// at least 60 days, active within the last 30, whose trailing-30-day rate
// beats their 180-day baseline per the revival/growth rules. The two labels
// are mutually exclusive: the baseline-rate threshold partitions at 0.2.
// Returns the ten most active.
func DetectEmerging(msgs []model.Message, now time.Time) []Emerging {
	var out []Emerging

	for contact, group := range model.ByContact(msgs) {
		if isNonPerson(contact) || isAllDigits(contact) {
			continue
		}

		first := group[0].Timestamp
		last := group[len(group)-1].Timestamp
		if int(now.Sub(last).Hours()/24) > maxDaysSinceLast {
			continue
		}
		relationshipDays := int(now.Sub(first).Hours() / 24)
		if relationshipDays < minRelationshipDays {
			continue
		}

		recentCount := countSince(group, now.AddDate(0, 0, -30))
		if recentCount < minRecentMessages {
			continue
		}

		recent := model.RelationshipWindow{Count: recentCount, Days: 30}
		prior := model.RelationshipWindow{
			Count: countBetween(group, now.AddDate(0, 0, -210), now.AddDate(0, 0, -30)),
			Days:  180,
		}

		priorRate := prior.RatePerWeek()
		recentRate := recent.RatePerWeek()

		e := Emerging{
			Contact:          contact,
			TotalMessages:    len(group),
			RecentMessages:   recentCount,
			BaselineRate:     priorRate,
			RecentRate:       recentRate,
			RelationshipDays: relationshipDays,
		}

		switch {
		case priorRate < revivedBaselineCeil && recentRate >= revivedRecentFloor:
			e.Growth = "Revived"
			e.Revived = true
		case priorRate >= revivedBaselineCeil && recentRate >= priorRate*growingFactor:
			e.Growth = fmt.Sprintf("%.0fx", recentRate/priorRate)
		default:
			continue
		}

		out = append(out, e)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].RecentRate != out[j].RecentRate {
			return out[i].RecentRate > out[j].RecentRate
		}
		return out[i].Contact < out[j].Contact
	})
	if len(out) > topTrendResults {
		out = out[:topTrendResults]
	}
	return out
}

// isNonPerson filters obvious business and unresolved identifiers.
func isNonPerson(contact string) bool {
	return strings.HasPrefix(contact, "urn:") || strings.HasPrefix(contact, "+")
}

func isAllDigits(contact string) bool {
	stripped := strings.ReplaceAll(contact, " ", "")
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// activeMonths counts distinct calendar months with at least one message.
func activeMonths(group []model.Message) int {
	type month struct {
		year int
		mon  time.Month
	}
	seen := make(map[month]struct{})
	for _, m := range group {
		seen[month{m.Timestamp.Year(), m.Timestamp.Month()}] = struct{}{}
	}
	return len(seen)
}

// countSince counts messages at or after from.
func countSince(group []model.Message, from time.Time) int {
	n := 0
	for _, m := range group {
		if !m.Timestamp.Before(from) {
			n++
		}
	}
	return n
}

// countBetween counts messages in [from, to).
func countBetween(group []model.Message, from, to time.Time) int {
	n := 0
	for _, m := range group {
		if !m.Timestamp.Before(from) && m.Timestamp.Before(to) {
			n++
		}
	}
	return n
}
