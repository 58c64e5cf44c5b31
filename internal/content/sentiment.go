package content

import (
	"sort"

	"github.com/jonreiter/govader"

	"wrapped/internal/model"
)

// ContactSentiment is the average VADER score over every message
// exchanged with a contact, sent and received alike.
type ContactSentiment struct {
	Contact     string  `json:"contact"`
	Total       int     `json:"total_messages"`
	AvgCompound float64 `json:"avg_sentiment"`
	AvgPositive float64 `json:"avg_positive"`
	AvgNegative float64 `json:"avg_negative"`
}

// SentimentByContact scores each conversation's overall tone. Contacts
// with fewer than minMessages are skipped. Results are ordered best
// vibes first.
func SentimentByContact(msgs []model.Message, minMessages int) []ContactSentiment {
	analyzer := govader.NewSentimentIntensityAnalyzer()

	type acc struct {
		total    int
		compound float64
		positive float64
		negative float64
	}
	byContact := make(map[string]*acc)
	for _, m := range msgs {
		a := byContact[m.Contact]
		if a == nil {
			a = &acc{}
			byContact[m.Contact] = a
		}
		a.total++
		if m.Text == "" {
			continue
		}
		scores := analyzer.PolarityScores(m.Text)
		a.compound += scores.Compound
		a.positive += scores.Positive
		a.negative += scores.Negative
	}

	var out []ContactSentiment
	for contact, a := range byContact {
		if a.total < minMessages {
			continue
		}
		out = append(out, ContactSentiment{
			Contact:     contact,
			Total:       a.total,
			AvgCompound: a.compound / float64(a.total),
			AvgPositive: a.positive / float64(a.total),
			AvgNegative: a.negative / float64(a.total),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgCompound != out[j].AvgCompound {
			return out[i].AvgCompound > out[j].AvgCompound
		}
		return out[i].Contact < out[j].Contact
	})
	return out
}
