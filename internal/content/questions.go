package content

import (
	"sort"

	"wrapped/internal/model"
)

// minMessagesForQuestionRatio keeps low-volume contacts out of the
// per-contact question ranking.
const minMessagesForQuestionRatio = 50

// QuestionRatio is the share of sent messages containing a question
// mark within a grouping.
type QuestionRatio struct {
	Year      int     `json:"year,omitempty"`
	Contact   string  `json:"contact,omitempty"`
	Total     int     `json:"total"`
	Questions int     `json:"questions"`
	Pct       float64 `json:"question_pct"`
}

// QuestionRatioByYear measures how question-heavy your sent messages
// were in each year.
func QuestionRatioByYear(msgs []model.Message) []QuestionRatio {
	byYear := make(map[int]*QuestionRatio)
	for _, m := range msgs {
		if !m.FromMe {
			continue
		}
		qr := byYear[m.Year()]
		if qr == nil {
			qr = &QuestionRatio{Year: m.Year()}
			byYear[m.Year()] = qr
		}
		qr.Total++
		if IsQuestion(m.Text) {
			qr.Questions++
		}
	}

	out := make([]QuestionRatio, 0, len(byYear))
	for _, qr := range byYear {
		qr.Pct = float64(qr.Questions) / float64(qr.Total) * 100
		out = append(out, *qr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// QuestionRatioByContact measures how question-heavy your sent messages
// are per contact, for contacts with enough sent volume. Results are
// ordered most question-heavy first.
func QuestionRatioByContact(msgs []model.Message) []QuestionRatio {
	byContact := make(map[string]*QuestionRatio)
	for _, m := range msgs {
		if !m.FromMe {
			continue
		}
		qr := byContact[m.Contact]
		if qr == nil {
			qr = &QuestionRatio{Contact: m.Contact}
			byContact[m.Contact] = qr
		}
		qr.Total++
		if IsQuestion(m.Text) {
			qr.Questions++
		}
	}

	var out []QuestionRatio
	for _, qr := range byContact {
		if qr.Total < minMessagesForQuestionRatio {
			continue
		}
		qr.Pct = float64(qr.Questions) / float64(qr.Total) * 100
		out = append(out, *qr)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pct != out[j].Pct {
			return out[i].Pct > out[j].Pct
		}
		return out[i].Contact < out[j].Contact
	})
	return out
}
