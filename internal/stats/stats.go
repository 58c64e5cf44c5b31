// Package stats computes per-contact and per-period rollups over the
// filtered message set. Every function here is a pure fold over its input.
package stats

import (
	"sort"
	"time"

	"wrapped/internal/model"
)

// lopsidednessEpsilon keeps the received denominator away from zero for
// contacts that never wrote back. It is a smoothing constant, not a
// statistical correction.
const lopsidednessEpsilon = 0.1

// ContactTotals is the all-time rollup for one contact.
type ContactTotals struct {
	Contact      string    `json:"contact"`
	Total        int       `json:"total"`
	Sent         int       `json:"sent"`
	Received     int       `json:"received"`
	YearsActive  int       `json:"years_active"`
	FirstMessage time.Time `json:"first_message"`
	LastMessage  time.Time `json:"last_message"`
}

// Totals computes all-time totals for every contact, highest volume first.
func Totals(msgs []model.Message) []ContactTotals {
	byContact := model.ByContact(msgs)

	out := make([]ContactTotals, 0, len(byContact))
	for contact, group := range byContact {
		t := ContactTotals{
			Contact:      contact,
			Total:        len(group),
			FirstMessage: group[0].Timestamp,
			LastMessage:  group[len(group)-1].Timestamp,
		}
		years := make(map[int]struct{})
		for _, m := range group {
			if m.FromMe {
				t.Sent++
			}
			years[m.Year()] = struct{}{}
		}
		t.Received = t.Total - t.Sent
		t.YearsActive = len(years)
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Contact < out[j].Contact
	})
	return out
}

// TopContacts returns the n highest-volume contacts.
func TopContacts(msgs []model.Message, n int) []ContactTotals {
	totals := Totals(msgs)
	if len(totals) > n {
		totals = totals[:n]
	}
	return totals
}

// YearContact is one contact's count within one calendar year, with its
// rank among that year's contacts.
type YearContact struct {
	Year     int    `json:"year"`
	Contact  string `json:"contact"`
	Total    int    `json:"total"`
	Sent     int    `json:"sent"`
	Received int    `json:"received"`
	Rank     int    `json:"rank"`
}

// TopByYear ranks contacts within each year and keeps those at rank <= n.
// Ties share the lowest rank in their group: counts {10, 10, 5} rank 1, 1, 3.
func TopByYear(msgs []model.Message, n int) []YearContact {
	type key struct {
		year    int
		contact string
	}
	totals := make(map[key]*YearContact)
	for _, m := range msgs {
		k := key{m.Year(), m.Contact}
		yc := totals[k]
		if yc == nil {
			yc = &YearContact{Year: k.year, Contact: k.contact}
			totals[k] = yc
		}
		yc.Total++
		if m.FromMe {
			yc.Sent++
		}
	}

	byYear := make(map[int][]*YearContact)
	for _, yc := range totals {
		yc.Received = yc.Total - yc.Sent
		byYear[yc.Year] = append(byYear[yc.Year], yc)
	}

	var out []YearContact
	for _, group := range byYear {
		sort.Slice(group, func(i, j int) bool {
			if group[i].Total != group[j].Total {
				return group[i].Total > group[j].Total
			}
			return group[i].Contact < group[j].Contact
		})
		assignMinRanks(group)
		for _, yc := range group {
			if yc.Rank <= n {
				out = append(out, *yc)
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		return out[i].Contact < out[j].Contact
	})
	return out
}

// assignMinRanks assigns "min" ranks over a count-descending group: tied
// counts share the rank of the first entry in the tie.
func assignMinRanks(group []*YearContact) {
	for i, yc := range group {
		if i > 0 && yc.Total == group[i-1].Total {
			yc.Rank = group[i-1].Rank
		} else {
			yc.Rank = i + 1
		}
	}
}

// Lopsidedness is the sent-to-received balance for one contact. Ratio above
// 1 means the user sends more volume than they get back.
type Lopsidedness struct {
	Contact  string  `json:"contact"`
	Total    int     `json:"total"`
	Sent     int     `json:"sent"`
	Received int     `json:"received"`
	Ratio    float64 `json:"lopsidedness"`
}

// CalculateLopsidedness computes sent/(received+epsilon) per contact,
// excluding contacts below minTotal messages, most lopsided first.
func CalculateLopsidedness(msgs []model.Message, minTotal int) []Lopsidedness {
	var out []Lopsidedness
	for _, t := range Totals(msgs) {
		if t.Total < minTotal {
			continue
		}
		out = append(out, Lopsidedness{
			Contact:  t.Contact,
			Total:    t.Total,
			Sent:     t.Sent,
			Received: t.Received,
			Ratio:    float64(t.Sent) / (float64(t.Received) + lopsidednessEpsilon),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Ratio != out[j].Ratio {
			return out[i].Ratio > out[j].Ratio
		}
		return out[i].Contact < out[j].Contact
	})
	return out
}
