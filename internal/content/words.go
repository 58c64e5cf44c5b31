package content

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"wrapped/internal/config"
	"wrapped/internal/model"
)

const (
	tfidfMaxFeatures = 5000
	wordsPerYear     = 10
)

// YearWord is a word whose usage spiked in one particular year.
type YearWord struct {
	Year  int     `json:"year"`
	Word  string  `json:"word"`
	Score float64 `json:"tfidf_score"`
}

// UniqueWordsByYear treats each year's sent messages as one document
// and scores words by TF-IDF, surfacing the vocabulary that defined
// each year rather than the words you always use.
func UniqueWordsByYear(msgs []model.Message, cfg config.Config) []YearWord {
	textByYear := make(map[int][]string)
	for _, m := range msgs {
		if !m.FromMe {
			continue
		}
		textByYear[m.Year()] = append(textByYear[m.Year()], CleanText(m.Text))
	}
	if len(textByYear) == 0 {
		return nil
	}

	years := make([]int, 0, len(textByYear))
	for y := range textByYear {
		years = append(years, y)
	}
	sort.Ints(years)

	docs := make([]map[string]int, len(years))
	corpus := make(map[string]int)
	docFreq := make(map[string]int)
	for i, y := range years {
		counts := make(map[string]int)
		for _, tok := range tokenize(strings.Join(textByYear[y], " ")) {
			if isStopword(tok) {
				continue
			}
			counts[tok]++
		}
		docs[i] = counts
		for w, c := range counts {
			corpus[w] += c
			docFreq[w]++
		}
	}

	vocab := topFeatures(corpus, tfidfMaxFeatures)

	var out []YearWord
	n := float64(len(docs))
	for i, y := range years {
		scores := make([]YearWord, 0, len(vocab))
		var norm float64
		for w := range vocab {
			tf := float64(docs[i][w])
			if tf == 0 {
				continue
			}
			idf := math.Log((1+n)/(1+float64(docFreq[w]))) + 1
			s := tf * idf
			norm += s * s
			scores = append(scores, YearWord{Year: y, Word: w, Score: s})
		}
		if norm == 0 {
			continue
		}
		norm = math.Sqrt(norm)
		for j := range scores {
			scores[j].Score /= norm
		}
		sort.Slice(scores, func(a, b int) bool {
			if scores[a].Score != scores[b].Score {
				return scores[a].Score > scores[b].Score
			}
			return scores[a].Word < scores[b].Word
		})

		// Only the top slice of candidates is considered, so a year
		// drowning in filler can surface fewer than wordsPerYear words.
		if len(scores) > wordsPerYear*3 {
			scores = scores[:wordsPerYear*3]
		}
		kept := 0
		for _, yw := range scores {
			if kept >= wordsPerYear {
				break
			}
			if cfg.IsBoringWord(yw.Word) || utf8.RuneCountInString(yw.Word) <= 2 {
				continue
			}
			out = append(out, yw)
			kept++
		}
	}
	return out
}

// topFeatures keeps the max most frequent terms across the corpus.
func topFeatures(corpus map[string]int, max int) map[string]struct{} {
	if len(corpus) <= max {
		vocab := make(map[string]struct{}, len(corpus))
		for w := range corpus {
			vocab[w] = struct{}{}
		}
		return vocab
	}

	type wc struct {
		word  string
		count int
	}
	all := make([]wc, 0, len(corpus))
	for w, c := range corpus {
		all = append(all, wc{w, c})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].count != all[j].count {
			return all[i].count > all[j].count
		}
		return all[i].word < all[j].word
	})

	vocab := make(map[string]struct{}, max)
	for _, e := range all[:max] {
		vocab[e.word] = struct{}{}
	}
	return vocab
}
