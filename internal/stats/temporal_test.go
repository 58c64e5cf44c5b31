package stats

import (
	"testing"
	"time"

	"wrapped/internal/model"
)

func TestYearlyVolume_ShouldSplitDirectionsPerYear(t *testing.T) {
	msgs := []model.Message{
		msg("Ana", true, time.Date(2023, 1, 1, 9, 0, 0, 0, time.UTC)),
		msg("Ana", false, time.Date(2023, 6, 1, 9, 0, 0, 0, time.UTC)),
		msg("Ana", true, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)),
	}

	out := YearlyVolume(msgs)

	if len(out) != 2 {
		t.Fatalf("expected 2 years, got %d", len(out))
	}
	if out[0].Year != 2023 || out[0].Sent != 1 || out[0].Received != 1 {
		t.Errorf("unexpected 2023 row: %+v", out[0])
	}
	if out[1].Year != 2024 || out[1].Total != 1 {
		t.Errorf("unexpected 2024 row: %+v", out[1])
	}
}

func TestHourDayHeatmap_ShouldPutMondayFirst(t *testing.T) {
	// 2024-01-01 is a Monday, 2024-01-07 a Sunday.
	msgs := []model.Message{
		msg("Ana", true, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)),
		msg("Ana", true, time.Date(2024, 1, 7, 23, 0, 0, 0, time.UTC)),
	}

	h := HourDayHeatmap(msgs)

	if h[0][9] != 1 {
		t.Errorf("expected Monday 09h count 1, got %d", h[0][9])
	}
	if h[6][23] != 1 {
		t.Errorf("expected Sunday 23h count 1, got %d", h[6][23])
	}
}

func TestPeakHoursByYear_ShouldPickBusiestHour(t *testing.T) {
	base := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	var msgs []model.Message
	for i := 0; i < 3; i++ {
		msgs = append(msgs, msg("Ana", true, base.Add(22*time.Hour).Add(time.Duration(i)*time.Minute)))
	}
	msgs = append(msgs, msg("Ana", true, base.Add(8*time.Hour)))

	out := PeakHoursByYear(msgs)

	if len(out) != 1 {
		t.Fatalf("expected 1 year, got %d", len(out))
	}
	if out[0].Hour != 22 || out[0].MessagesAtPeak != 3 {
		t.Errorf("expected peak 22h with 3 messages, got %+v", out[0])
	}
}

func TestActiveDaysPerYear_ShouldCountOnlySentDays(t *testing.T) {
	msgs := []model.Message{
		msg("Ana", true, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)),
		msg("Ana", true, time.Date(2024, 1, 1, 21, 0, 0, 0, time.UTC)), // same day
		msg("Ana", true, time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)),
		msg("Ana", false, time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)), // received only
	}

	out := ActiveDaysPerYear(msgs)

	if len(out) != 1 || out[0].Days != 2 {
		t.Fatalf("expected 2 active days, got %+v", out)
	}
}

func TestLongestStreaks_ShouldCountConsecutiveSentDays(t *testing.T) {
	day := func(d int, h int) time.Time {
		return time.Date(2024, 3, d, h, 0, 0, 0, time.UTC)
	}
	msgs := []model.Message{
		msg("Ana", true, day(1, 9)),
		msg("Ana", true, day(2, 20)),
		msg("Ana", true, day(3, 7)),
		// gap
		msg("Ana", true, day(5, 9)),
		msg("Ben", true, day(1, 9)),
	}

	out := LongestStreaks(msgs, 10)

	if len(out) != 2 {
		t.Fatalf("expected 2 streaks, got %d", len(out))
	}
	if out[0].Contact != "Ana" || out[0].Length != 3 {
		t.Errorf("expected Ana streak of 3, got %+v", out[0])
	}
	if !out[0].StartDate.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected streak start: %v", out[0].StartDate)
	}
	if !out[0].EndDate.Equal(time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected streak end: %v", out[0].EndDate)
	}
}

func TestLongestStreaks_WhenOnlyReceived_ShouldNotStreak(t *testing.T) {
	msgs := []model.Message{
		msg("Ana", false, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)),
		msg("Ana", false, time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)),
	}

	out := LongestStreaks(msgs, 10)

	if len(out) != 0 {
		t.Errorf("expected no streaks from received-only traffic, got %+v", out)
	}
}

func TestLongestStreaks_ShouldKeepTopN(t *testing.T) {
	var msgs []model.Message
	contactNames := []string{"A", "B", "C"}
	for i, c := range contactNames {
		for d := 1; d <= i+1; d++ {
			msgs = append(msgs, msg(c, true, time.Date(2024, 3, d, 9, 0, 0, 0, time.UTC)))
		}
	}

	out := LongestStreaks(msgs, 2)

	if len(out) != 2 {
		t.Fatalf("expected 2 streaks kept, got %d", len(out))
	}
	if out[0].Contact != "C" || out[0].Length != 3 {
		t.Errorf("expected C's streak of 3 first, got %+v", out[0])
	}
}
