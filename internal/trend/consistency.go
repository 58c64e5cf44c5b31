package trend

import (
	"math"
	"sort"

	"wrapped/internal/model"
)

// Burst-vs-consistent thresholds over per-year message counts.
const (
	consistencyMinTotal    = 500
	meaningfulYearMessages = 50
	consistentMinYears     = 5
	consistentMaxShare     = 0.4
	burstyMinShare         = 0.7
)

// Consistency describes how evenly a relationship's volume spreads across
// years. Concentration is the peak year's share of all messages.
type Consistency struct {
	Contact       string  `json:"contact"`
	TotalMessages int     `json:"total_messages"`
	YearsActive   int     `json:"years_active"`
	PeakYear      int     `json:"peak_year"`
	PeakMessages  int     `json:"peak_messages"`
	Concentration float64 `json:"concentration"`
	CV            float64 `json:"cv"`
	Label         string  `json:"label"`
}

// ClassifyConsistency labels long-history contacts as "consistent" (five or
// more meaningful years, no dominant peak) or "bursty" (one year holds most
// of the volume). Contacts matching neither are omitted.
func ClassifyConsistency(msgs []model.Message) []Consistency {
	var out []Consistency
	for contact, group := range model.ByContact(msgs) {
		if len(group) < consistencyMinTotal {
			continue
		}

		yearly := make(map[int]int)
		for _, m := range group {
			yearly[m.Year()]++
		}

		c := Consistency{Contact: contact, TotalMessages: len(group)}
		for year, n := range yearly {
			if n > meaningfulYearMessages {
				c.YearsActive++
			}
			if n > c.PeakMessages || (n == c.PeakMessages && year < c.PeakYear) {
				c.PeakYear = year
				c.PeakMessages = n
			}
		}
		c.Concentration = float64(c.PeakMessages) / float64(c.TotalMessages)
		c.CV = coefficientOfVariation(yearly)

		switch {
		case c.YearsActive >= consistentMinYears && c.Concentration < consistentMaxShare:
			c.Label = "consistent"
		case c.Concentration > burstyMinShare:
			c.Label = "bursty"
		default:
			continue
		}
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalMessages != out[j].TotalMessages {
			return out[i].TotalMessages > out[j].TotalMessages
		}
		return out[i].Contact < out[j].Contact
	})
	return out
}

// coefficientOfVariation is sample stddev over mean of the nonzero yearly
// counts. Lower means steadier.
func coefficientOfVariation(yearly map[int]int) float64 {
	var counts []float64
	for _, n := range yearly {
		if n > 0 {
			counts = append(counts, float64(n))
		}
	}
	if len(counts) < 2 {
		return 0
	}

	var sum float64
	for _, c := range counts {
		sum += c
	}
	mean := sum / float64(len(counts))
	if mean == 0 {
		return 0
	}

	var ss float64
	for _, c := range counts {
		ss += (c - mean) * (c - mean)
	}
	std := math.Sqrt(ss / float64(len(counts)-1))
	return std / mean
}
