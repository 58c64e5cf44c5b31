package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_ShouldDeriveArtifactPaths(t *testing.T) {
	cfg := Default()
	cfg.DataBase = "/tmp/wrapped-test"

	if got := cfg.DBPath(); got != filepath.Join("/tmp/wrapped-test", "messages.duckdb") {
		t.Errorf("unexpected db path: %q", got)
	}
	if got := cfg.ContactsPath(); got != filepath.Join("/tmp/wrapped-test", "contacts.json") {
		t.Errorf("unexpected contacts path: %q", got)
	}
	if got := cfg.ReportDir(); got != filepath.Join("/tmp/wrapped-test", "report") {
		t.Errorf("unexpected report dir: %q", got)
	}
}

func TestDefault_ShouldCarryStoplists(t *testing.T) {
	cfg := Default()

	if len(cfg.BoringWords) == 0 {
		t.Fatal("expected boring words populated")
	}
	if len(cfg.BoringPhrases) == 0 {
		t.Fatal("expected boring phrases populated")
	}
	if !cfg.IsBoringWord("gonna") {
		t.Error("expected gonna flagged as boring")
	}
	if cfg.IsBoringWord("pizza") {
		t.Error("expected pizza not flagged")
	}
}

// The normalizer strips apostrophes before phrase matching, so an
// apostrophized stoplist entry could never match anything.
func TestDefault_BoringPhrasesShouldMatchNormalizedText(t *testing.T) {
	cfg := Default()

	for _, p := range cfg.BoringPhrases {
		if strings.ContainsRune(p, '\'') {
			t.Errorf("boring phrase %q carries an apostrophe", p)
		}
		if p != strings.ToLower(p) {
			t.Errorf("boring phrase %q is not lowercase", p)
		}
	}
}

func TestDefault_ShouldSetAnalysisThresholds(t *testing.T) {
	cfg := Default()

	if cfg.ConversationGapHours != 4 {
		t.Errorf("unexpected gap hours: %v", cfg.ConversationGapHours)
	}
	if cfg.MinMessagesForSentiment != 20 {
		t.Errorf("unexpected sentiment floor: %d", cfg.MinMessagesForSentiment)
	}
	if cfg.MinTwoWayRatio != 0.05 {
		t.Errorf("unexpected two-way ratio: %v", cfg.MinTwoWayRatio)
	}
}
