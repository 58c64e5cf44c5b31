// Package content analyzes message text: emoji usage, question habits,
// sentiment, recurring phrases, year-defining words and latent topics.
package content

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	urlPattern   = regexp.MustCompile(`http\S+|www\S+`)
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	punctPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
)

// contractionPairs maps common contractions to their apostrophe-free
// form so tokenization keeps them as single words. Order is fixed so
// replacement is deterministic.
var contractionPairs = []struct{ from, to string }{
	{"don't", "dont"}, {"didn't", "didnt"}, {"doesn't", "doesnt"},
	{"won't", "wont"}, {"wouldn't", "wouldnt"}, {"couldn't", "couldnt"},
	{"shouldn't", "shouldnt"}, {"can't", "cant"}, {"haven't", "havent"},
	{"hasn't", "hasnt"}, {"hadn't", "hadnt"}, {"isn't", "isnt"},
	{"aren't", "arent"}, {"wasn't", "wasnt"}, {"weren't", "werent"},
	{"i'm", "im"}, {"i've", "ive"}, {"i'll", "ill"}, {"i'd", "id"},
	{"you're", "youre"}, {"you've", "youve"}, {"you'll", "youll"}, {"you'd", "youd"},
	{"he's", "hes"}, {"she's", "shes"}, {"it's", "its"},
	{"we're", "were"}, {"we've", "weve"}, {"we'll", "well"}, {"we'd", "wed"},
	{"they're", "theyre"}, {"they've", "theyve"}, {"they'll", "theyll"}, {"they'd", "theyd"},
	{"that's", "thats"}, {"there's", "theres"}, {"here's", "heres"},
	{"what's", "whats"}, {"who's", "whos"}, {"let's", "lets"},
}

// CleanText lowercases a message and strips URLs, email addresses and
// punctuation, collapsing contractions so "don't" survives as "dont".
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)
	text = urlPattern.ReplaceAllString(text, "")
	text = emailPattern.ReplaceAllString(text, "")
	for _, p := range contractionPairs {
		text = strings.ReplaceAll(text, p.from, p.to)
	}
	text = punctPattern.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(text), " ")
}

// IsQuestion reports whether a message contains a question mark.
func IsQuestion(text string) bool {
	return strings.Contains(text, "?")
}

// NormalizeWord folds simple plural forms so "friends" and "friend"
// count as the same word.
func NormalizeWord(word string) string {
	word = strings.TrimSpace(strings.ToLower(word))
	switch {
	case strings.HasSuffix(word, "ies"):
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "es") && len(word) > 3:
		return word[:len(word)-2]
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") && len(word) > 2:
		return word[:len(word)-1]
	}
	return word
}

// isDuplicateWord reports whether word matches any of existing after
// plural folding, or is contained in one of them.
func isDuplicateWord(word string, existing []string) bool {
	norm := NormalizeWord(word)
	for _, e := range existing {
		normE := NormalizeWord(e)
		if norm == normE || strings.Contains(normE, norm) || strings.Contains(norm, normE) {
			return true
		}
	}
	return false
}

// tokenize splits cleaned text into words of at least two characters,
// matching the tokenization the vectorizers use.
func tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
