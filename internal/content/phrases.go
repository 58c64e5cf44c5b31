package content

import (
	"sort"
	"strings"

	"wrapped/internal/config"
	"wrapped/internal/model"
)

const (
	phraseMinLen     = 3
	phraseMaxLen     = 5
	phraseMinDocFreq = 3
	phraseMaxDocFrac = 0.5
	phrasesPerYear   = 20
)

// Phrase is a recurring 3 to 5 word phrase from your sent messages in
// a given year.
type Phrase struct {
	Year   int    `json:"year"`
	Phrase string `json:"phrase"`
	Count  int    `json:"count"`
}

// TopPhrasesByYear mines each year's sent messages for phrases that
// recur across conversations, dropping filler and near-duplicates.
// Phrases must appear in at least three messages and at most half of
// them.
func TopPhrasesByYear(msgs []model.Message, cfg config.Config) []Phrase {
	docsByYear := make(map[int][]string)
	for _, m := range msgs {
		if !m.FromMe {
			continue
		}
		docsByYear[m.Year()] = append(docsByYear[m.Year()], CleanText(m.Text))
	}

	years := make([]int, 0, len(docsByYear))
	for y := range docsByYear {
		years = append(years, y)
	}
	sort.Ints(years)

	var out []Phrase
	for _, year := range years {
		for _, p := range minePhrases(docsByYear[year], cfg) {
			p.Year = year
			out = append(out, p)
		}
	}
	return out
}

func minePhrases(docs []string, cfg config.Config) []Phrase {
	totals := make(map[string]int)
	docFreq := make(map[string]int)
	seen := make(map[string]struct{})
	for _, doc := range docs {
		tokens := tokenize(doc)
		clear(seen)
		for n := phraseMinLen; n <= phraseMaxLen; n++ {
			for i := 0; i+n <= len(tokens); i++ {
				gram := strings.Join(tokens[i:i+n], " ")
				totals[gram]++
				if _, ok := seen[gram]; !ok {
					seen[gram] = struct{}{}
					docFreq[gram]++
				}
			}
		}
	}

	maxDocs := int(phraseMaxDocFrac * float64(len(docs)))
	candidates := make([]Phrase, 0, len(totals))
	for gram, count := range totals {
		if docFreq[gram] < phraseMinDocFreq || docFreq[gram] > maxDocs {
			continue
		}
		candidates = append(candidates, Phrase{Phrase: gram, Count: count})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Count != candidates[j].Count {
			return candidates[i].Count > candidates[j].Count
		}
		return candidates[i].Phrase < candidates[j].Phrase
	})

	var kept []Phrase
	var keptText []string
	for _, c := range candidates {
		if isBoringPhrase(c.Phrase, cfg) || overlapsKept(c.Phrase, keptText) {
			continue
		}
		kept = append(kept, c)
		keptText = append(keptText, c.Phrase)
		if len(kept) >= phrasesPerYear {
			break
		}
	}
	return kept
}

// isBoringPhrase drops phrases that overlap the stock stoplist or carry
// fewer than two meaningful words.
func isBoringPhrase(phrase string, cfg config.Config) bool {
	for _, boring := range cfg.BoringPhrases {
		if strings.Contains(phrase, boring) || strings.Contains(boring, phrase) {
			return true
		}
	}
	meaningful := 0
	for _, w := range strings.Fields(phrase) {
		if !cfg.IsBoringWord(w) {
			meaningful++
		}
	}
	return meaningful < 2
}

// overlapsKept reports whether phrase is a substring or superstring of
// an already kept phrase.
func overlapsKept(phrase string, kept []string) bool {
	for _, k := range kept {
		if strings.Contains(k, phrase) || strings.Contains(phrase, k) {
			return true
		}
	}
	return false
}
