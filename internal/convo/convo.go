// Package convo segments per-contact message streams into conversations and
// response pairs.
package convo

import (
	"sort"
	"time"

	"wrapped/internal/model"
)

// Response-pair windows. Per-contact median response times ignore replies
// slower than a day; cross-contact response mining tolerates up to a week.
const (
	MedianResponseWindow = 24 * time.Hour
	MiningResponseWindow = 7 * 24 * time.Hour
)

// minConversationStarts is the floor below which initiation percentages are
// noise.
const minConversationStarts = 10

// Events annotates every message with its gap since the previous message in
// the same contact's sorted stream and flags conversation starts: the first
// message ever, or any message after more than gapHours of silence.
func Events(msgs []model.Message, gapHours float64) []model.ConversationEvent {
	var out []model.ConversationEvent
	byContact := model.ByContact(msgs)
	for _, contact := range model.Contacts(msgs) {
		group := byContact[contact]
		for i, m := range group {
			ev := model.ConversationEvent{
				Contact:   contact,
				Timestamp: m.Timestamp,
				FromMe:    m.FromMe,
			}
			if i == 0 {
				ev.HoursSincePrior = -1
				ev.Start = true
			} else {
				ev.HoursSincePrior = m.Timestamp.Sub(group[i-1].Timestamp).Hours()
				ev.Start = ev.HoursSincePrior > gapHours
			}
			out = append(out, ev)
		}
	}
	return out
}

// InitiatorStats is who opens conversations with one contact.
type InitiatorStats struct {
	Contact        string  `json:"contact"`
	Conversations  int     `json:"total_conversations"`
	YouInitiated   int     `json:"you_initiated"`
	TheyInitiated  int     `json:"they_initiated"`
	YouInitiatePct float64 `json:"you_initiate_pct"`
}

// Initiators aggregates conversation starts per contact. Contacts with
// fewer than ten starts carry too little signal and are dropped.
func Initiators(msgs []model.Message, gapHours float64) []InitiatorStats {
	byContact := make(map[string]*InitiatorStats)
	for _, ev := range Events(msgs, gapHours) {
		if !ev.Start {
			continue
		}
		st := byContact[ev.Contact]
		if st == nil {
			st = &InitiatorStats{Contact: ev.Contact}
			byContact[ev.Contact] = st
		}
		st.Conversations++
		if ev.FromMe {
			st.YouInitiated++
		}
	}

	var out []InitiatorStats
	for _, st := range byContact {
		if st.Conversations < minConversationStarts {
			continue
		}
		st.TheyInitiated = st.Conversations - st.YouInitiated
		st.YouInitiatePct = float64(st.YouInitiated) / float64(st.Conversations) * 100
		out = append(out, *st)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].YouInitiatePct != out[j].YouInitiatePct {
			return out[i].YouInitiatePct > out[j].YouInitiatePct
		}
		return out[i].Contact < out[j].Contact
	})
	return out
}

// ResponsePairs finds sender changes within the window in each contact's
// sorted stream. Zero-gap pairs are discarded; the latency belongs to the
// responder.
func ResponsePairs(msgs []model.Message, window time.Duration) []model.ResponsePair {
	var out []model.ResponsePair
	byContact := model.ByContact(msgs)
	for _, contact := range model.Contacts(msgs) {
		group := byContact[contact]
		for i := 1; i < len(group); i++ {
			prev, cur := group[i-1], group[i]
			if cur.FromMe == prev.FromMe {
				continue
			}
			latency := cur.Timestamp.Sub(prev.Timestamp)
			if latency <= 0 || latency >= window {
				continue
			}
			out = append(out, model.ResponsePair{
				Contact: contact,
				FromMe:  cur.FromMe,
				Latency: latency,
			})
		}
	}
	return out
}

// ResponseTimes is the per-contact median reply latency in each direction.
// A direction with no response pairs has its OK flag unset.
type ResponseTimes struct {
	Contact        string  `json:"contact"`
	YourMedianMin  float64 `json:"your_response_time_min"`
	YourOK         bool    `json:"-"`
	TheirMedianMin float64 `json:"their_response_time_min"`
	TheirOK        bool    `json:"-"`
}

// MedianResponseTimes computes median reply latency per contact within the
// one-day window, separately for each direction. A contact with messages in
// only one direction has no pairs and is simply absent.
func MedianResponseTimes(msgs []model.Message) []ResponseTimes {
	yours := make(map[string][]time.Duration)
	theirs := make(map[string][]time.Duration)
	for _, p := range ResponsePairs(msgs, MedianResponseWindow) {
		if p.FromMe {
			yours[p.Contact] = append(yours[p.Contact], p.Latency)
		} else {
			theirs[p.Contact] = append(theirs[p.Contact], p.Latency)
		}
	}

	contacts := make(map[string]struct{})
	for c := range yours {
		contacts[c] = struct{}{}
	}
	for c := range theirs {
		contacts[c] = struct{}{}
	}

	var out []ResponseTimes
	for contact := range contacts {
		rt := ResponseTimes{Contact: contact}
		if ds := yours[contact]; len(ds) > 0 {
			rt.YourMedianMin = median(ds).Minutes()
			rt.YourOK = true
		}
		if ds := theirs[contact]; len(ds) > 0 {
			rt.TheirMedianMin = median(ds).Minutes()
			rt.TheirOK = true
		}
		out = append(out, rt)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Contact < out[j].Contact })
	return out
}

// median returns the middle latency, averaging the two central values for
// even-length input. Median rather than mean: reply times are heavy-tailed.
func median(ds []time.Duration) time.Duration {
	sorted := make([]time.Duration, len(ds))
	copy(sorted, ds)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
