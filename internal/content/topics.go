package content

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"gonum.org/v1/gonum/mat"

	"wrapped/internal/config"
	"wrapped/internal/model"
)

// tfidfParams tunes the doc-term matrix for topic extraction. Terms
// are unigrams and bigrams with stopwords removed.
type tfidfParams struct {
	maxFeatures int
	minDocFreq  int
	maxDocFrac  float64
}

var (
	yearTopicParams    = tfidfParams{maxFeatures: 2000, minDocFreq: 5, maxDocFrac: 0.7}
	contactTopicParams = tfidfParams{maxFeatures: 500, minDocFreq: 3, maxDocFrac: 0.8}
)

const (
	yearTopicMinDocs    = 100
	yearTopicCount      = 5
	contactTopicMinDocs = 50
	contactTopicCount   = 3
	topicWordsKept      = 5
	docsPerComponent    = 20
)

// Topic is one latent theme mined from sent messages, described by its
// strongest vocabulary.
type Topic struct {
	Year    int      `json:"year,omitempty"`
	Contact string   `json:"contact,omitempty"`
	TopicID int      `json:"topic_id"`
	Words   []string `json:"top_words"`
}

// TopicsByYear factorizes each year's sent messages into up to five
// latent topics. Years with fewer than a hundred sent messages are
// skipped.
func TopicsByYear(msgs []model.Message, cfg config.Config) []Topic {
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

	var out []Topic
	for _, year := range years {
		docs := docsByYear[year]
		if len(docs) < yearTopicMinDocs {
			continue
		}
		for _, t := range mineTopics(docs, yearTopicParams, yearTopicCount, cfg) {
			t.Year = year
			out = append(out, t)
		}
	}
	return out
}

// TopicsByContact factorizes sent messages per contact into up to three
// latent topics. When contacts is nil the ten contacts you message most
// are used.
func TopicsByContact(msgs []model.Message, contacts []string, cfg config.Config) []Topic {
	docsByContact := make(map[string][]string)
	sentCounts := make(map[string]int)
	for _, m := range msgs {
		if !m.FromMe {
			continue
		}
		docsByContact[m.Contact] = append(docsByContact[m.Contact], CleanText(m.Text))
		sentCounts[m.Contact]++
	}

	if contacts == nil {
		contacts = topSentContacts(sentCounts, 10)
	}

	var out []Topic
	for _, contact := range contacts {
		docs := docsByContact[contact]
		if len(docs) < contactTopicMinDocs {
			continue
		}
		for _, t := range mineTopics(docs, contactTopicParams, contactTopicCount, cfg) {
			t.Contact = contact
			out = append(out, t)
		}
	}
	return out
}

func topSentContacts(sentCounts map[string]int, n int) []string {
	contacts := make([]string, 0, len(sentCounts))
	for c := range sentCounts {
		contacts = append(contacts, c)
	}
	sort.Slice(contacts, func(i, j int) bool {
		if sentCounts[contacts[i]] != sentCounts[contacts[j]] {
			return sentCounts[contacts[i]] > sentCounts[contacts[j]]
		}
		return contacts[i] < contacts[j]
	})
	if len(contacts) > n {
		contacts = contacts[:n]
	}
	return contacts
}

func mineTopics(docs []string, params tfidfParams, nTopics int, cfg config.Config) []Topic {
	features, x := buildDocTermMatrix(docs, params)
	if len(features) == 0 {
		return nil
	}
	k := min(nTopics, len(docs)/docsPerComponent)
	if k < 1 {
		return nil
	}

	h := factorize(x, k)

	var out []Topic
	for topicID := 0; topicID < k; topicID++ {
		weights := mat.Row(nil, topicID, h)
		order := make([]int, len(weights))
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool {
			if weights[order[a]] != weights[order[b]] {
				return weights[order[a]] > weights[order[b]]
			}
			return features[order[a]] < features[order[b]]
		})
		if len(order) > topicWordsKept*3 {
			order = order[:topicWordsKept*3]
		}

		var words []string
		for _, i := range order {
			term := features[i]
			if skipTopicTerm(term, cfg) || isDuplicateWord(term, words) {
				continue
			}
			words = append(words, term)
			if len(words) >= topicWordsKept {
				break
			}
		}
		if len(words) > 0 {
			out = append(out, Topic{TopicID: topicID, Words: words})
		}
	}
	return out
}

// skipTopicTerm drops filler from topic vocabulary: boring unigrams,
// bigrams made of two boring words, and very short terms.
func skipTopicTerm(term string, cfg config.Config) bool {
	if !strings.Contains(term, " ") {
		if cfg.IsBoringWord(term) {
			return true
		}
	} else {
		allBoring := true
		for _, p := range strings.Fields(term) {
			if !cfg.IsBoringWord(p) {
				allBoring = false
				break
			}
		}
		if allBoring {
			return true
		}
	}
	return utf8.RuneCountInString(strings.ReplaceAll(term, " ", "")) < 3
}

// buildDocTermMatrix vectorizes docs into a TF-IDF matrix over unigram
// and bigram terms, with rows l2-normalized.
func buildDocTermMatrix(docs []string, params tfidfParams) ([]string, *mat.Dense) {
	termCounts := make([]map[string]int, len(docs))
	corpus := make(map[string]int)
	docFreq := make(map[string]int)
	for d, doc := range docs {
		counts := make(map[string]int)
		tokens := tokenize(doc)
		kept := tokens[:0]
		for _, t := range tokens {
			if !isStopword(t) {
				kept = append(kept, t)
			}
		}
		for i, t := range kept {
			counts[t]++
			if i+1 < len(kept) {
				counts[t+" "+kept[i+1]]++
			}
		}
		termCounts[d] = counts
		for term, c := range counts {
			corpus[term] += c
			docFreq[term]++
		}
	}

	maxDocs := int(params.maxDocFrac * float64(len(docs)))
	eligible := make(map[string]int, len(corpus))
	for term, c := range corpus {
		if docFreq[term] < params.minDocFreq || docFreq[term] > maxDocs {
			continue
		}
		eligible[term] = c
	}
	vocabSet := topFeatures(eligible, params.maxFeatures)
	if len(vocabSet) == 0 {
		return nil, nil
	}

	features := make([]string, 0, len(vocabSet))
	for term := range vocabSet {
		features = append(features, term)
	}
	sort.Strings(features)
	index := make(map[string]int, len(features))
	for i, term := range features {
		index[term] = i
	}

	x := mat.NewDense(len(docs), len(features), nil)
	n := float64(len(docs))
	for d, counts := range termCounts {
		var norm float64
		row := make([]float64, len(features))
		for term, c := range counts {
			i, ok := index[term]
			if !ok {
				continue
			}
			idf := math.Log((1+n)/(1+float64(docFreq[term]))) + 1
			row[i] = float64(c) * idf
			norm += row[i] * row[i]
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for i := range row {
				row[i] /= norm
			}
		}
		x.SetRow(d, row)
	}
	return features, x
}
