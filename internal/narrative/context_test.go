package narrative

import (
	"strings"
	"testing"

	"wrapped/internal/stats"
	"wrapped/internal/trend"
)

func TestBuildContext_ShouldRenderAllSections(t *testing.T) {
	cs := ContextStats{
		TotalMessages: 5000,
		TotalContacts: 42,
		YearsSpan:     6,
		TopContacts: []stats.ContactTotals{
			{Contact: "Ana", Total: 900, Sent: 500, Received: 400},
		},
		Fading: []trend.Fading{
			{Contact: "Ben", BaselineRate: 4.2, RecentRate: 0.6},
		},
		Emerging: []trend.Emerging{
			{Contact: "Zoe", Growth: "6x"},
		},
		YearlyVolume: []stats.YearVolume{
			{Year: 2023, Total: 1200},
		},
	}

	got := BuildContext(cs, "transcript body")

	for _, want := range []string{
		"- Total messages: 5000",
		"## Top Contacts",
		"1. Ana: 900 messages (sent 500, received 400)",
		"## Fading Relationships",
		"- Ben: was ~4/wk, now ~1/wk",
		"## Emerging Connections",
		"- Zoe: 6x",
		"## Yearly Volume",
		"- 2023: 1200 messages",
		"# Substantive Messages",
		"transcript body",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected context to contain %q", want)
		}
	}
}

func TestBuildContext_ShouldCapListsAndKeepRecentYears(t *testing.T) {
	cs := ContextStats{}
	for i := 0; i < 15; i++ {
		cs.TopContacts = append(cs.TopContacts, stats.ContactTotals{
			Contact: string(rune('A' + i)),
		})
	}
	for year := 2015; year <= 2024; year++ {
		cs.YearlyVolume = append(cs.YearlyVolume, stats.YearVolume{Year: year, Total: 100})
	}

	got := BuildContext(cs, "")

	if strings.Contains(got, "11. ") {
		t.Error("expected top contacts capped at ten")
	}
	if strings.Contains(got, "- 2015:") {
		t.Error("expected old years trimmed")
	}
	if !strings.Contains(got, "- 2024:") {
		t.Error("expected recent year kept")
	}
}
