package contacts

import (
	"strings"
	"unicode"

	"wrapped/internal/config"
	"wrapped/internal/model"
)

// FilterNoise drops messages from contacts that would pollute every
// downstream table: names on the excluded list, unresolved numeric handles,
// and one-sided streams (notification and marketing senders). Returns the
// surviving messages.
func FilterNoise(msgs []model.Message, cfg config.Config) []model.Message {
	excluded := make(map[string]struct{}, len(cfg.ExcludedContacts))
	for name := range cfg.ExcludedContacts {
		excluded[strings.ToLower(name)] = struct{}{}
	}

	kept := make([]model.Message, 0, len(msgs))
	for _, m := range msgs {
		if _, ok := excluded[strings.ToLower(m.Contact)]; ok {
			continue
		}
		if IsPhoneOrCode(m.Contact) {
			continue
		}
		kept = append(kept, m)
	}

	return filterOneSided(kept, cfg.MinTwoWayRatio)
}

// IsPhoneOrCode reports whether a resolved name still looks like a phone
// number or short code rather than a person.
func IsPhoneOrCode(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return true
	}
	if strings.HasPrefix(name, "+") {
		return true
	}

	digits := 0
	for _, r := range name {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits == len(name) {
		return true
	}
	// Mostly digits is still a number, e.g. "415-555-0100".
	return digits > 0 && float64(digits)/float64(len(name)) > 0.5
}

// filterOneSided keeps only contacts whose sent fraction lies inside
// [minRatio, 1-minRatio]. A contact the user never writes to, or that never
// writes back, is notification traffic, not a relationship.
func filterOneSided(msgs []model.Message, minRatio float64) []model.Message {
	total := make(map[string]int)
	sent := make(map[string]int)
	for _, m := range msgs {
		total[m.Contact]++
		if m.FromMe {
			sent[m.Contact]++
		}
	}

	twoWay := make(map[string]struct{}, len(total))
	for contact, n := range total {
		ratio := float64(sent[contact]) / float64(n)
		if ratio >= minRatio && ratio <= 1-minRatio {
			twoWay[contact] = struct{}{}
		}
	}

	out := make([]model.Message, 0, len(msgs))
	for _, m := range msgs {
		if _, ok := twoWay[m.Contact]; ok {
			out = append(out, m)
		}
	}
	return out
}
