package trend

import (
	"sort"

	"wrapped/internal/model"
	"wrapped/internal/stats"
)

// Rank thresholds for year-over-year movement. A contact ranked deeper
// than rankUniverse in a year is treated as unranked for that year.
const (
	rankUniverse = 100
	chartTopRank = 10
	chartOffRank = 20
)

// RankShift is a contact's ranking movement between two years. A zero
// rank means the contact did not chart in that year.
type RankShift struct {
	Contact  string `json:"contact"`
	YearFrom int    `json:"year_from"`
	YearTo   int    `json:"year_to"`
	RankFrom int    `json:"rank_from"`
	RankTo   int    `json:"rank_to"`
}

// RisingStars finds contacts that were outside the top twenty (or absent)
// in yearFrom and reached the top ten in yearTo.
func RisingStars(msgs []model.Message, yearFrom, yearTo int) []RankShift {
	from, to := yearRanks(msgs, yearFrom, yearTo)

	var out []RankShift
	for contact, rankTo := range to {
		if rankTo > chartTopRank {
			continue
		}
		rankFrom := from[contact]
		if rankFrom != 0 && rankFrom <= chartOffRank {
			continue
		}
		out = append(out, RankShift{
			Contact:  contact,
			YearFrom: yearFrom,
			YearTo:   yearTo,
			RankFrom: rankFrom,
			RankTo:   rankTo,
		})
	}
	sortByRank(out, func(s RankShift) int { return s.RankTo })
	return out
}

// FadedConnections finds contacts that were in the top ten in yearFrom
// and fell below rank twenty (or off the chart) in yearTo.
func FadedConnections(msgs []model.Message, yearFrom, yearTo int) []RankShift {
	from, to := yearRanks(msgs, yearFrom, yearTo)

	var out []RankShift
	for contact, rankFrom := range from {
		if rankFrom > chartTopRank {
			continue
		}
		rankTo := to[contact]
		if rankTo != 0 && rankTo <= chartOffRank {
			continue
		}
		out = append(out, RankShift{
			Contact:  contact,
			YearFrom: yearFrom,
			YearTo:   yearTo,
			RankFrom: rankFrom,
			RankTo:   rankTo,
		})
	}
	sortByRank(out, func(s RankShift) int { return s.RankFrom })
	return out
}

func sortByRank(shifts []RankShift, key func(RankShift) int) {
	sort.Slice(shifts, func(i, j int) bool {
		if key(shifts[i]) != key(shifts[j]) {
			return key(shifts[i]) < key(shifts[j])
		}
		return shifts[i].Contact < shifts[j].Contact
	})
}

func yearRanks(msgs []model.Message, yearFrom, yearTo int) (map[string]int, map[string]int) {
	from := make(map[string]int)
	to := make(map[string]int)
	for _, yc := range stats.TopByYear(msgs, rankUniverse) {
		switch yc.Year {
		case yearFrom:
			from[yc.Contact] = yc.Rank
		case yearTo:
			to[yc.Contact] = yc.Rank
		}
	}
	return from, to
}
