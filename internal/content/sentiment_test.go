package content

import (
	"testing"

	"wrapped/internal/model"
)

func TestSentimentByContact_ShouldOrderBestVibesFirst(t *testing.T) {
	msgs := []model.Message{
		textMsg("Sunny", true, 2023, "i love this, it is wonderful and great"),
		textMsg("Sunny", false, 2023, "what an amazing happy day"),
		textMsg("Grim", true, 2023, "this is horrible and terrible"),
		textMsg("Grim", false, 2023, "i hate it, worst thing ever"),
	}

	got := SentimentByContact(msgs, 2)

	if len(got) != 2 {
		t.Fatalf("expected 2 contacts, got %v", got)
	}
	if got[0].Contact != "Sunny" || got[1].Contact != "Grim" {
		t.Errorf("expected Sunny before Grim, got %+v", got)
	}
	if got[0].AvgCompound <= 0 {
		t.Errorf("expected positive compound for Sunny, got %v", got[0].AvgCompound)
	}
	if got[1].AvgCompound >= 0 {
		t.Errorf("expected negative compound for Grim, got %v", got[1].AvgCompound)
	}
}

func TestSentimentByContact_WhenBelowMinimum_ShouldOmit(t *testing.T) {
	msgs := []model.Message{
		textMsg("Brief", true, 2023, "great stuff"),
	}

	got := SentimentByContact(msgs, 2)

	if len(got) != 0 {
		t.Errorf("expected thin contact omitted, got %+v", got)
	}
}

func TestSentimentByContact_WhenTextEmpty_ShouldStillCountMessage(t *testing.T) {
	msgs := []model.Message{
		textMsg("Ana", true, 2023, "i love this so much"),
		textMsg("Ana", false, 2023, ""),
	}

	got := SentimentByContact(msgs, 2)

	if len(got) != 1 {
		t.Fatalf("expected contact kept, got %v", got)
	}
	if got[0].Total != 2 {
		t.Errorf("expected empty message in total, got %d", got[0].Total)
	}
}
