// Package contacts resolves raw handles to display names and filters out
// noise contacts.
package contacts

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"wrapped/internal/model"
)

var nonDigitRE = regexp.MustCompile(`\D`)

// NormalizePhone reduces a phone number to bare digits, stripping a leading
// US country code.
func NormalizePhone(phone string) string {
	digits := nonDigitRE.ReplaceAllString(phone, "")
	if len(digits) == 11 && strings.HasPrefix(digits, "1") {
		digits = digits[1:]
	}
	return digits
}

// Resolver maps raw contact identifiers to display names. The mapping is
// supplied externally (address-book export or a hand-edited cache file).
type Resolver struct {
	mapping map[string]string
}

// NewResolver builds a Resolver over the given identifier-to-name mapping.
func NewResolver(mapping map[string]string) *Resolver {
	if mapping == nil {
		mapping = map[string]string{}
	}
	return &Resolver{mapping: mapping}
}

// LoadCache reads a resolution mapping from a JSON file. A missing file is
// not an error; it yields an empty resolver.
func LoadCache(path string) (*Resolver, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewResolver(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read contacts cache %s: %w", path, err)
	}

	var mapping map[string]string
	if err := json.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("parse contacts cache %s: %w", path, err)
	}
	return NewResolver(mapping), nil
}

// SaveCache writes the full resolution mapping for msgs to a JSON file so it
// can be edited by hand between runs.
func (r *Resolver) SaveCache(path string, msgs []model.Message) error {
	full := make(map[string]string)
	for _, m := range msgs {
		if _, ok := full[m.ContactID]; !ok {
			full[m.ContactID] = r.Resolve(m.ContactID)
		}
	}

	data, err := json.MarshalIndent(full, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal contacts cache: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write contacts cache %s: %w", path, err)
	}
	return nil
}

// Resolve maps a raw contact identifier to a display name, trying the exact
// id, the normalized phone form, and the lowercased form. Unresolved ids
// resolve to themselves.
func (r *Resolver) Resolve(contactID string) string {
	if contactID == "" {
		return "Unknown"
	}
	if name, ok := r.mapping[contactID]; ok {
		return name
	}
	if normalized := NormalizePhone(contactID); normalized != "" {
		if name, ok := r.mapping[normalized]; ok {
			return name
		}
	}
	if name, ok := r.mapping[strings.ToLower(contactID)]; ok {
		return name
	}
	return contactID
}

// Apply sets the resolved Contact field on every message. Distinct raw ids
// (phone + email of one person) may resolve to the same name; aggregation
// downstream groups on the resolved name, merging them deliberately.
func (r *Resolver) Apply(msgs []model.Message) []model.Message {
	out := make([]model.Message, len(msgs))
	for i, m := range msgs {
		m.Contact = r.Resolve(m.ContactID)
		out[i] = m
	}
	return out
}

// Unresolved returns the raw ids among the top-volume contacts that still
// resolve to themselves, with their message counts, highest volume first.
func (r *Resolver) Unresolved(msgs []model.Message, topN int) []Unmapped {
	counts := make(map[string]int)
	for _, m := range msgs {
		counts[m.ContactID]++
	}

	var out []Unmapped
	for id, n := range counts {
		if r.Resolve(id) == id {
			out = append(out, Unmapped{ContactID: id, Messages: n})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Messages > out[j].Messages })
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// Unmapped is a raw contact id with no display-name mapping.
type Unmapped struct {
	ContactID string
	Messages  int
}
