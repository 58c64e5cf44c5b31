package stats

import (
	"sort"
	"time"

	"wrapped/internal/model"
)

// YearVolume is the total message volume for one calendar year.
type YearVolume struct {
	Year     int `json:"year"`
	Total    int `json:"total"`
	Sent     int `json:"sent"`
	Received int `json:"received"`
}

// YearlyVolume counts messages sent and received per year.
func YearlyVolume(msgs []model.Message) []YearVolume {
	byYear := make(map[int]*YearVolume)
	for _, m := range msgs {
		v := byYear[m.Year()]
		if v == nil {
			v = &YearVolume{Year: m.Year()}
			byYear[m.Year()] = v
		}
		v.Total++
		if m.FromMe {
			v.Sent++
		}
	}

	out := make([]YearVolume, 0, len(byYear))
	for _, v := range byYear {
		v.Received = v.Total - v.Sent
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// Heatmap is message counts by weekday and hour. Rows run Monday through
// Sunday.
type Heatmap [7][24]int

// HourDayHeatmap buckets messages into weekday x hour cells.
func HourDayHeatmap(msgs []model.Message) Heatmap {
	var h Heatmap
	for _, m := range msgs {
		day := (int(m.Timestamp.Weekday()) + 6) % 7 // Monday first
		h[day][m.Timestamp.Hour()]++
	}
	return h
}

// PeakHour is the busiest texting hour of one year.
type PeakHour struct {
	Year           int `json:"year"`
	Hour           int `json:"peak_hour"`
	MessagesAtPeak int `json:"messages_at_peak"`
}

// PeakHoursByYear finds the hour of day with the most messages per year.
func PeakHoursByYear(msgs []model.Message) []PeakHour {
	counts := make(map[int]*[24]int)
	for _, m := range msgs {
		hours := counts[m.Year()]
		if hours == nil {
			hours = &[24]int{}
			counts[m.Year()] = hours
		}
		hours[m.Timestamp.Hour()]++
	}

	out := make([]PeakHour, 0, len(counts))
	for year, hours := range counts {
		peak := PeakHour{Year: year}
		for hour, n := range hours {
			if n > peak.MessagesAtPeak {
				peak.Hour = hour
				peak.MessagesAtPeak = n
			}
		}
		out = append(out, peak)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// ActiveDays counts days with at least one sent message, per year.
type ActiveDays struct {
	Year int `json:"year"`
	Days int `json:"active_days"`
}

// ActiveDaysPerYear counts distinct calendar dates with a sent message.
func ActiveDaysPerYear(msgs []model.Message) []ActiveDays {
	type dateKey struct {
		year int
		date time.Time
	}
	seen := make(map[dateKey]struct{})
	for _, m := range msgs {
		if !m.FromMe {
			continue
		}
		seen[dateKey{m.Year(), m.Date()}] = struct{}{}
	}

	byYear := make(map[int]int)
	for k := range seen {
		byYear[k.year]++
	}

	out := make([]ActiveDays, 0, len(byYear))
	for year, days := range byYear {
		out = append(out, ActiveDays{Year: year, Days: days})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// Streak is a contact's longest run of consecutive calendar days with at
// least one sent message.
type Streak struct {
	Contact   string    `json:"contact"`
	Length    int       `json:"streak_length"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// LongestStreaks finds each contact's longest daily streak and returns the
// topN longest overall. A gap of more than one day breaks the streak.
func LongestStreaks(msgs []model.Message, topN int) []Streak {
	sent := make([]model.Message, 0, len(msgs))
	for _, m := range msgs {
		if m.FromMe {
			sent = append(sent, m)
		}
	}

	var out []Streak
	for contact, group := range model.ByContact(sent) {
		dates := distinctDates(group)
		if len(dates) == 0 {
			continue
		}

		best := Streak{Contact: contact, Length: 1, StartDate: dates[0], EndDate: dates[0]}
		cur := best
		for i := 1; i < len(dates); i++ {
			if dates[i].Sub(dates[i-1]) == 24*time.Hour {
				cur.Length++
				cur.EndDate = dates[i]
			} else {
				cur = Streak{Contact: contact, Length: 1, StartDate: dates[i], EndDate: dates[i]}
			}
			if cur.Length > best.Length {
				best = cur
			}
		}
		out = append(out, best)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Length != out[j].Length {
			return out[i].Length > out[j].Length
		}
		return out[i].Contact < out[j].Contact
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// distinctDates returns the sorted distinct calendar dates of a contact's
// time-sorted messages, normalized to UTC midnights so day arithmetic is
// exact across DST transitions.
func distinctDates(group []model.Message) []time.Time {
	var out []time.Time
	for _, m := range group {
		y, mo, d := m.Timestamp.Date()
		day := time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
		if len(out) == 0 || !out[len(out)-1].Equal(day) {
			out = append(out, day)
		}
	}
	return out
}
