package content

import (
	"testing"
	"time"

	"wrapped/internal/model"
)

func textMsg(contact string, fromMe bool, year int, text string) model.Message {
	return model.Message{
		Contact:   contact,
		FromMe:    fromMe,
		Timestamp: time.Date(year, 3, 10, 12, 0, 0, 0, time.UTC),
		Text:      text,
	}
}

func TestExtractEmojis_ShouldReturnEachOccurrence(t *testing.T) {
	got := ExtractEmojis("so good 😂😂 love it ❤️")

	if len(got) != 3 {
		t.Fatalf("expected 3 emojis, got %v", got)
	}
	if got[0] != "😂" || got[1] != "😂" {
		t.Errorf("expected repeated emoji kept, got %v", got)
	}
}

func TestExtractEmojis_WhenNoEmoji_ShouldReturnNothing(t *testing.T) {
	if got := ExtractEmojis("plain text"); len(got) != 0 {
		t.Errorf("expected none, got %v", got)
	}
}

func TestTopEmojisByYear_ShouldCountAllMessagesAndShareTiedRanks(t *testing.T) {
	msgs := []model.Message{
		textMsg("Ana", true, 2023, "😂😂😂"),
		textMsg("Ana", false, 2023, "🙏🙏🙏"),
		textMsg("Ben", true, 2023, "🔥"),
	}

	got := TopEmojisByYear(msgs)

	if len(got) != 3 {
		t.Fatalf("expected 3 ranked emojis, got %v", got)
	}
	// Both top emojis have 3 uses each and share rank 1.
	if got[0].Rank != 1 || got[1].Rank != 1 {
		t.Errorf("expected tied rank 1, got %+v", got[:2])
	}
	if got[2].Emoji != "🔥" || got[2].Rank != 3 {
		t.Errorf("expected 🔥 at rank 3, got %+v", got[2])
	}
	if got[0].Year != 2023 {
		t.Errorf("expected year 2023, got %d", got[0].Year)
	}
}

func TestEmojisByContact_ShouldOnlyCountSentMessages(t *testing.T) {
	msgs := []model.Message{
		textMsg("Ana", true, 2023, "😂"),
		textMsg("Ana", false, 2023, "🙏🙏🙏🙏"),
	}

	got := EmojisByContact(msgs)

	if len(got) != 1 {
		t.Fatalf("expected 1 emoji, got %v", got)
	}
	if got[0].Emoji != "😂" || got[0].Contact != "Ana" || got[0].Rank != 1 {
		t.Errorf("expected sent 😂 only, got %+v", got[0])
	}
}
