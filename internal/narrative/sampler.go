// Package narrative turns the computed statistics and a sample of real
// conversations into prose reflections using the OpenAI API.
package narrative

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"wrapped/internal/model"
)

// DefaultTokenBudget bounds the size of the conversation sample fed to
// the model. Tokens are estimated at four characters each.
const DefaultTokenBudget = 100000

const charsPerToken = 4

var (
	tapbackShort = regexp.MustCompile(`^\+[A-Z]?$`)
	attachOnly   = regexp.MustCompile(`^\x{FFFC}+$`)
)

var reactionPrefixes = []string{
	`Loved "`, "Laughed at", "Emphasized", "Disliked", `Liked "`,
}

// IsNoise reports whether a message carries no conversational content:
// tapbacks, reaction notices and attachment placeholders.
func IsNoise(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return true
	}
	if tapbackShort.MatchString(text) || attachOnly.MatchString(text) {
		return true
	}
	for _, p := range reactionPrefixes {
		if strings.HasPrefix(text, p) {
			return true
		}
	}
	return false
}

// SubstantiveMessages builds a transcript of the longest messages
// exchanged with the given contacts, sized to roughly tokenBudget
// tokens. A binary search over message length finds the cutoff, and
// elided runs are annotated with skip counts so the model sees the
// shape of each conversation.
func SubstantiveMessages(msgs []model.Message, contacts []string, tokenBudget int) string {
	wanted := make(map[string]struct{}, len(contacts))
	for _, c := range contacts {
		wanted[c] = struct{}{}
	}

	byContact := make(map[string][]model.Message)
	minLen, maxLen := 0, 0
	for _, m := range msgs {
		if _, ok := wanted[m.Contact]; !ok || IsNoise(m.Text) {
			continue
		}
		byContact[m.Contact] = append(byContact[m.Contact], m)
		if l := utf8.RuneCountInString(m.Text); l > maxLen {
			maxLen = l
		}
	}
	if len(byContact) == 0 {
		return ""
	}
	for _, group := range byContact {
		sort.Slice(group, func(i, j int) bool { return group[i].Timestamp.Before(group[j].Timestamp) })
	}

	budget := tokenBudget * charsPerToken
	const tolerance = 0.05

	lo, hi := minLen, maxLen
	threshold := maxLen
	for lo < hi {
		mid := (lo + hi) / 2
		threshold = mid
		size := len(buildTranscript(byContact, contacts, mid))
		if float64(size) > float64(budget)*(1+tolerance) {
			lo = mid + 1
		} else if float64(size) < float64(budget)*(1-tolerance) {
			hi = mid - 1
		} else {
			break
		}
	}
	return buildTranscript(byContact, contacts, threshold)
}

func buildTranscript(byContact map[string][]model.Message, contacts []string, minLen int) string {
	var b strings.Builder
	for _, contact := range contacts {
		group := byContact[contact]
		if !anyAtLeast(group, minLen) {
			continue
		}
		fmt.Fprintf(&b, "\n## Conversation with %s\n", contact)

		skipped := 0
		for _, m := range group {
			if utf8.RuneCountInString(m.Text) < minLen {
				skipped++
				continue
			}
			if skipped > 0 {
				fmt.Fprintf(&b, "[%d messages skipped]\n", skipped)
				skipped = 0
			}
			sender := contact
			if m.FromMe {
				sender = "You"
			}
			text := strings.ReplaceAll(m.Text, "￼", "[img]")
			fmt.Fprintf(&b, "[%s] %s: %s\n", m.Timestamp.Format("2006-01-02"), sender, text)
		}
		if skipped > 0 {
			fmt.Fprintf(&b, "[%d messages skipped]\n", skipped)
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func anyAtLeast(group []model.Message, minLen int) bool {
	for _, m := range group {
		if utf8.RuneCountInString(m.Text) >= minLen {
			return true
		}
	}
	return false
}
