package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"wrapped/internal/content"
	"wrapped/internal/convo"
	"wrapped/internal/stats"
)

func TestNew_ShouldStampRunIDAndTimestamp(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)

	r := New(2020, 2024, now)

	if r.RunID == "" {
		t.Error("expected a run id")
	}
	if r.GeneratedAt != "2024-06-01T12:30:00Z" {
		t.Errorf("unexpected timestamp: %q", r.GeneratedAt)
	}
	if r.YearFrom != 2020 || r.YearTo != 2024 {
		t.Errorf("unexpected year range: %d-%d", r.YearFrom, r.YearTo)
	}
}

func TestRound1_ShouldRoundToOneDecimal(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1.26, 1.3},
		{1.24, 1.2},
		{0, 0},
		{99.95, 100},
	}
	for _, c := range cases {
		if got := Round1(c.in); got != c.want {
			t.Errorf("Round1(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNormalize_ShouldRoundPresentedRates(t *testing.T) {
	r := New(2020, 2024, time.Now())
	r.Lopsidedness = []stats.Lopsidedness{{Contact: "Ana", Ratio: 66.66667}}
	r.QuestionsByContact = []content.QuestionRatio{{Contact: "Ben", Pct: 33.33333}}

	r.Normalize()

	if r.Lopsidedness[0].Ratio != 66.7 {
		t.Errorf("expected 66.7, got %v", r.Lopsidedness[0].Ratio)
	}
	if r.QuestionsByContact[0].Pct != 33.3 {
		t.Errorf("expected 33.3, got %v", r.QuestionsByContact[0].Pct)
	}
}

func TestTables_ShouldOnlyListPopulatedTables(t *testing.T) {
	r := New(2020, 2024, time.Now())
	r.TopContacts = []stats.ContactTotals{{Contact: "Ana", Total: 10}}

	tables := r.Tables()

	if _, ok := tables["top_contacts"]; !ok {
		t.Error("expected top_contacts listed")
	}
	if _, ok := tables["phrases"]; ok {
		t.Error("expected empty phrases omitted")
	}
	if _, ok := tables["heatmap"]; ok {
		t.Error("expected nil heatmap omitted")
	}
	if _, ok := tables["response_speeds"]; ok {
		t.Error("expected nil speed report omitted")
	}
}

func TestTables_WhenSpeedReportSet_ShouldIncludeIt(t *testing.T) {
	r := New(2020, 2024, time.Now())
	r.SpeedReport = &convo.SpeedReport{TotalResponses: 12}

	tables := r.Tables()

	rows, ok := tables["response_speeds"]
	if !ok {
		t.Fatal("expected response_speeds listed")
	}
	sr, ok := rows.(*convo.SpeedReport)
	if !ok || sr.TotalResponses != 12 {
		t.Errorf("unexpected response_speeds payload: %+v", rows)
	}
}

func TestWrite_ShouldProduceReportAndTableArtifacts(t *testing.T) {
	dir := t.TempDir()
	r := New(2020, 2024, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	r.Overview = Overview{TotalMessages: 100, TotalContacts: 5}
	r.TopContacts = []stats.ContactTotals{{Contact: "Ana", Total: 60}}

	path, err := r.Write(dir)
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	if path != filepath.Join(dir, "report.json") {
		t.Errorf("unexpected report path: %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if decoded.Overview.TotalMessages != 100 {
		t.Errorf("overview lost: %+v", decoded.Overview)
	}

	tablePath := filepath.Join(dir, "tables", "top_contacts.json")
	tableData, err := os.ReadFile(tablePath)
	if err != nil {
		t.Fatalf("read table artifact: %v", err)
	}
	var rows []stats.ContactTotals
	if err := json.Unmarshal(tableData, &rows); err != nil {
		t.Fatalf("decode table artifact: %v", err)
	}
	if len(rows) != 1 || rows[0].Contact != "Ana" {
		t.Errorf("unexpected table rows: %+v", rows)
	}
}
