package narrative

import (
	"strings"
	"testing"
	"time"

	"wrapped/internal/model"
)

func convoMsg(contact string, fromMe bool, minute int, text string) model.Message {
	return model.Message{
		Contact:   contact,
		FromMe:    fromMe,
		Timestamp: time.Date(2024, 3, 1, 10, minute, 0, 0, time.UTC),
		Text:      text,
	}
}

func TestIsNoise_ShouldFlagTapbacksAndReactions(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"", true},
		{"  ", true},
		{"+", true},
		{"+A", true},
		{`Loved "that was great"`, true},
		{"Laughed at an image", true},
		{"Emphasized your message", true},
		{"￼", true},
		{"￼￼", true},
		{"hey are you around", false},
		{"+1 for that plan", false},
	}
	for _, c := range cases {
		if got := IsNoise(c.text); got != c.want {
			t.Errorf("IsNoise(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}

func TestSubstantiveMessages_ShouldTranscribeWithHeadersAndSkips(t *testing.T) {
	msgs := []model.Message{
		convoMsg("Ana", false, 0, "hi"),
		convoMsg("Ana", true, 1, "long enough message to always survive the cutoff"),
		convoMsg("Ana", false, 2, `Loved "long enough message to always survive the cutoff"`),
		convoMsg("Ben", true, 3, "another substantial message worth keeping around"),
		convoMsg("Zoe", true, 4, "not requested"),
	}

	got := SubstantiveMessages(msgs, []string{"Ana", "Ben"}, DefaultTokenBudget)

	if !strings.Contains(got, "## Conversation with Ana") {
		t.Errorf("expected Ana header, got %q", got)
	}
	if !strings.Contains(got, "## Conversation with Ben") {
		t.Errorf("expected Ben header, got %q", got)
	}
	if strings.Contains(got, "Zoe") {
		t.Errorf("expected unlisted contact excluded, got %q", got)
	}
	if strings.Contains(got, "Loved") {
		t.Errorf("expected reaction filtered, got %q", got)
	}
	if !strings.Contains(got, "[2024-03-01] You: long enough") {
		t.Errorf("expected sent line labeled You, got %q", got)
	}
	if !strings.Contains(got, "[2024-03-01] Ana: hi") {
		t.Errorf("expected received line labeled by contact, got %q", got)
	}
}

func TestSubstantiveMessages_WhenBudgetTight_ShouldAnnotateSkippedRuns(t *testing.T) {
	var msgs []model.Message
	for i := 0; i < 40; i++ {
		msgs = append(msgs, convoMsg("Ana", false, i, "short note"))
	}
	msgs = append(msgs, convoMsg("Ana", true, 50, strings.Repeat("a genuinely long message ", 10)))

	// Budget of ~70 tokens fits the one long message but not the runs
	// of short ones.
	got := SubstantiveMessages(msgs, []string{"Ana"}, 70)

	if !strings.Contains(got, "messages skipped]") {
		t.Errorf("expected skip annotation, got %q", got)
	}
	if !strings.Contains(got, "a genuinely long message") {
		t.Errorf("expected long message kept, got %q", got)
	}
}

func TestSubstantiveMessages_WhenNothingMatches_ShouldReturnEmpty(t *testing.T) {
	msgs := []model.Message{convoMsg("Ana", false, 0, "+A")}

	if got := SubstantiveMessages(msgs, []string{"Ana"}, DefaultTokenBudget); got != "" {
		t.Errorf("expected empty transcript, got %q", got)
	}
}
