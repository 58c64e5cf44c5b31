// Package config holds analysis thresholds, stoplists, and filesystem paths.
package config

import (
	"os"
	"path/filepath"
)

// Config carries every tunable the analyzers need. Instances are treated as
// immutable once constructed; analyzers receive them by value at build time
// so tests can override individual thresholds.
type Config struct {
	DataBase string

	// Analysis window bounds (inclusive calendar years).
	StartYear int
	EndYear   int

	// Contact ranking and filtering.
	MinMessagesForTopContact int
	TopContactsCount         int
	ExcludedContacts         map[string]struct{}
	// Both sent and received fractions of a contact's total must exceed
	// this, else the contact is dropped as one-sided/automated.
	MinTwoWayRatio float64

	// Conversation segmentation.
	ConversationGapHours float64

	// Content analysis.
	MinMessagesForSentiment int
	BoringWords             map[string]struct{}
	BoringPhrases           []string
}

// Default returns a Config rooted at ~/.wrapped with the standard thresholds.
func Default() Config {
	return Config{
		DataBase:                 filepath.Join(os.Getenv("HOME"), ".wrapped"),
		StartYear:                2017,
		EndYear:                  2026,
		MinMessagesForTopContact: 10,
		TopContactsCount:         15,
		ExcludedContacts:         map[string]struct{}{},
		MinTwoWayRatio:           0.05,
		ConversationGapHours:     4,
		MinMessagesForSentiment:  20,
		BoringWords:              boringWords(),
		BoringPhrases:            boringPhrases(),
	}
}

// DBPath returns the DuckDB database file path.
func (c Config) DBPath() string {
	return filepath.Join(c.DataBase, "messages.duckdb")
}

// ContactsPath returns the contact resolution cache file path. The file is
// plain JSON and may be edited by hand between runs.
func (c Config) ContactsPath() string {
	return filepath.Join(c.DataBase, "contacts.json")
}

// ReportDir returns the directory report artifacts are written to.
func (c Config) ReportDir() string {
	return filepath.Join(c.DataBase, "report")
}

// IsBoringWord reports whether w is in the boring-word stoplist.
func (c Config) IsBoringWord(w string) bool {
	_, ok := c.BoringWords[w]
	return ok
}
