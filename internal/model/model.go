// Package model defines the domain types shared across the application.
package model

import (
	"sort"
	"time"
)

// Message is a single extracted message event. ContactID is the raw handle
// (phone number or email) and Contact is the resolved display name; Contact
// is empty until resolution has run. All grouping happens on Contact.
type Message struct {
	ID        int64
	ContactID string
	Contact   string
	FromMe    bool
	Timestamp time.Time
	Text      string
	Service   string
}

// Year returns the calendar year of the message.
func (m Message) Year() int { return m.Timestamp.Year() }

// Date returns the message's calendar date truncated to midnight.
func (m Message) Date() time.Time {
	y, mo, d := m.Timestamp.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, m.Timestamp.Location())
}

// ConversationEvent is a message annotated with the gap since the previous
// message in the same contact's time-sorted stream. HoursSincePrior is
// negative for the first message ever exchanged with the contact.
type ConversationEvent struct {
	Contact         string
	Timestamp       time.Time
	FromMe          bool
	HoursSincePrior float64
	Start           bool
}

// ResponsePair is a sender change between two consecutive messages in a
// contact's sorted stream. Latency is attributed to the responder (FromMe
// reports who replied).
type ResponsePair struct {
	Contact string
	FromMe  bool
	Latency time.Duration
}

// RelationshipWindow is a message count over a fixed wall-clock interval.
type RelationshipWindow struct {
	Count int
	Days  float64
}

// RatePerWeek normalizes the window count to messages per week.
func (w RelationshipWindow) RatePerWeek() float64 {
	if w.Days <= 0 {
		return 0
	}
	return float64(w.Count) / w.Days * 7
}

// ByContact groups messages by resolved contact name, each group sorted by
// timestamp.
func ByContact(msgs []Message) map[string][]Message {
	out := make(map[string][]Message)
	for _, m := range msgs {
		out[m.Contact] = append(out[m.Contact], m)
	}
	for _, group := range out {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Timestamp.Before(group[j].Timestamp)
		})
	}
	return out
}

// Contacts returns the distinct contact names in msgs, sorted.
func Contacts(msgs []Message) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range msgs {
		if _, ok := seen[m.Contact]; !ok {
			seen[m.Contact] = struct{}{}
			out = append(out, m.Contact)
		}
	}
	sort.Strings(out)
	return out
}
