package content

import (
	"sort"

	"github.com/forPelevin/gomoji"

	"wrapped/internal/model"
)

// EmojiCount is one emoji's usage within a year or contact grouping,
// ranked by count with ties sharing the lowest rank.
type EmojiCount struct {
	Year    int    `json:"year,omitempty"`
	Contact string `json:"contact,omitempty"`
	Emoji   string `json:"emoji"`
	Count   int    `json:"count"`
	Rank    int    `json:"rank"`
}

// ExtractEmojis returns every emoji occurrence in text, in order.
func ExtractEmojis(text string) []string {
	if text == "" {
		return nil
	}
	found := gomoji.CollectAll(text)
	out := make([]string, 0, len(found))
	for _, e := range found {
		out = append(out, e.Character)
	}
	return out
}

// TopEmojisByYear counts emoji usage across all messages per year and
// keeps those ranked tenth or better.
func TopEmojisByYear(msgs []model.Message) []EmojiCount {
	counts := make(map[int]map[string]int)
	for _, m := range msgs {
		for _, e := range ExtractEmojis(m.Text) {
			if counts[m.Year()] == nil {
				counts[m.Year()] = make(map[string]int)
			}
			counts[m.Year()][e]++
		}
	}

	var out []EmojiCount
	for year, byEmoji := range counts {
		for _, ec := range rankEmojis(byEmoji, 10) {
			ec.Year = year
			out = append(out, ec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		return out[i].Emoji < out[j].Emoji
	})
	return out
}

// EmojisByContact counts emoji usage in sent messages per contact and
// keeps those ranked fifth or better.
func EmojisByContact(msgs []model.Message) []EmojiCount {
	counts := make(map[string]map[string]int)
	for _, m := range msgs {
		if !m.FromMe {
			continue
		}
		for _, e := range ExtractEmojis(m.Text) {
			if counts[m.Contact] == nil {
				counts[m.Contact] = make(map[string]int)
			}
			counts[m.Contact][e]++
		}
	}

	var out []EmojiCount
	for contact, byEmoji := range counts {
		for _, ec := range rankEmojis(byEmoji, 5) {
			ec.Contact = contact
			out = append(out, ec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Contact != out[j].Contact {
			return out[i].Contact < out[j].Contact
		}
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		return out[i].Emoji < out[j].Emoji
	})
	return out
}

// rankEmojis orders a count map by descending count, assigning tied
// entries the same minimum rank, and keeps ranks up to maxRank.
func rankEmojis(byEmoji map[string]int, maxRank int) []EmojiCount {
	ranked := make([]EmojiCount, 0, len(byEmoji))
	for e, c := range byEmoji {
		ranked = append(ranked, EmojiCount{Emoji: e, Count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Emoji < ranked[j].Emoji
	})

	out := ranked[:0]
	for i := range ranked {
		if i > 0 && ranked[i].Count == ranked[i-1].Count {
			ranked[i].Rank = ranked[i-1].Rank
		} else {
			ranked[i].Rank = i + 1
		}
		if ranked[i].Rank > maxRank {
			break
		}
		out = append(out, ranked[i])
	}
	return out
}
