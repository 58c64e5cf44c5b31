package convo

import (
	"fmt"
	"sort"
	"time"

	"wrapped/internal/model"
)

// minMinedResponses is the floor for a contact to appear in the
// fastest/slowest responder lists.
const minMinedResponses = 5

// ResponderSpeed is one contact's median reply latency with a sample count.
type ResponderSpeed struct {
	Contact       string  `json:"contact"`
	MedianSeconds float64 `json:"median_seconds"`
	Responses     int     `json:"response_count"`
	Formatted     string  `json:"time_formatted"`
}

// SpeedReport is the cross-contact response-time mining output: for each
// direction, the five fastest and five slowest responders among topContacts.
type SpeedReport struct {
	TheyRespondFast []ResponderSpeed `json:"they_respond_fast"`
	TheyRespondSlow []ResponderSpeed `json:"they_respond_slow"`
	YouRespondFast  []ResponderSpeed `json:"you_respond_fast"`
	YouRespondSlow  []ResponderSpeed `json:"you_respond_slow"`
	TotalResponses  int              `json:"total_responses_analyzed"`
}

// MineResponseSpeeds ranks contacts by median reply latency using the
// week-long window, restricted to topContacts (nil means no restriction).
func MineResponseSpeeds(msgs []model.Message, topContacts map[string]struct{}) SpeedReport {
	yours := make(map[string][]time.Duration)
	theirs := make(map[string][]time.Duration)

	var total int
	for _, p := range ResponsePairs(msgs, MiningResponseWindow) {
		if topContacts != nil {
			if _, ok := topContacts[p.Contact]; !ok {
				continue
			}
		}
		total++
		if p.FromMe {
			yours[p.Contact] = append(yours[p.Contact], p.Latency)
		} else {
			theirs[p.Contact] = append(theirs[p.Contact], p.Latency)
		}
	}

	theirSpeeds := speeds(theirs)
	yourSpeeds := speeds(yours)

	return SpeedReport{
		TheyRespondFast: fastest(theirSpeeds, 5),
		TheyRespondSlow: slowest(theirSpeeds, 5),
		YouRespondFast:  fastest(yourSpeeds, 5),
		YouRespondSlow:  slowest(yourSpeeds, 5),
		TotalResponses:  total,
	}
}

func speeds(latencies map[string][]time.Duration) []ResponderSpeed {
	var out []ResponderSpeed
	for contact, ds := range latencies {
		if len(ds) < minMinedResponses {
			continue
		}
		med := median(ds)
		out = append(out, ResponderSpeed{
			Contact:       contact,
			MedianSeconds: med.Seconds(),
			Responses:     len(ds),
			Formatted:     FormatLatency(med),
		})
	}
	return out
}

func fastest(list []ResponderSpeed, n int) []ResponderSpeed {
	sorted := make([]ResponderSpeed, len(list))
	copy(sorted, list)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].MedianSeconds != sorted[j].MedianSeconds {
			return sorted[i].MedianSeconds < sorted[j].MedianSeconds
		}
		return sorted[i].Contact < sorted[j].Contact
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func slowest(list []ResponderSpeed, n int) []ResponderSpeed {
	sorted := make([]ResponderSpeed, len(list))
	copy(sorted, list)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].MedianSeconds != sorted[j].MedianSeconds {
			return sorted[i].MedianSeconds > sorted[j].MedianSeconds
		}
		return sorted[i].Contact < sorted[j].Contact
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// FormatLatency renders a latency at human scale: 45s, 12m, 3.5h, 1.2d.
func FormatLatency(d time.Duration) string {
	sec := d.Seconds()
	switch {
	case sec < 0:
		return "N/A"
	case sec < 60:
		return fmt.Sprintf("%ds", int(sec))
	case sec < 3600:
		return fmt.Sprintf("%dm", int(sec/60))
	case sec < 86400:
		return fmt.Sprintf("%.1fh", sec/3600)
	default:
		return fmt.Sprintf("%.1fd", sec/86400)
	}
}
