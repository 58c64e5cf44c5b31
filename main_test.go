package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"wrapped/internal/config"
	"wrapped/internal/convo"
	"wrapped/internal/model"
	"wrapped/internal/report"
	"wrapped/internal/stats"
	"wrapped/internal/store"
)

func TestDefaultChatDB_ShouldLiveUnderHome(t *testing.T) {
	t.Setenv("HOME", "/Users/test")

	got := defaultChatDB()
	want := filepath.Join("/Users/test", "Library", "Messages", "chat.db")
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestBuildReport_ShouldFillOverviewAndCoreTables(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	var msgs []model.Message
	for i := 0; i < 60; i++ {
		msgs = append(msgs, model.Message{
			Contact:   "Ana",
			FromMe:    i%2 == 0,
			Timestamp: time.Date(2022+i%2, 4, 1+i%20, 10, i, 0, 0, time.UTC),
			Text:      "lunch at the usual place?",
		})
	}

	r := buildReport(config.Default(), msgs, model.YearRange{From: 2022, To: 2023}, now, zerolog.Nop())

	if r.Overview.TotalMessages != 60 {
		t.Errorf("expected 60 total, got %d", r.Overview.TotalMessages)
	}
	if r.Overview.TotalSent != 30 || r.Overview.TotalReceived != 30 {
		t.Errorf("unexpected direction split: %+v", r.Overview)
	}
	if r.Overview.TotalContacts != 1 || r.Overview.YearsSpanned != 2 {
		t.Errorf("unexpected overview: %+v", r.Overview)
	}
	if len(r.TopContacts) != 1 || r.TopContacts[0].Contact != "Ana" {
		t.Errorf("expected Ana as top contact, got %+v", r.TopContacts)
	}
	if r.Heatmap == nil {
		t.Error("expected heatmap populated")
	}
	if len(r.YearlyVolume) != 2 {
		t.Errorf("expected 2 volume years, got %+v", r.YearlyVolume)
	}
	if r.RunID == "" || r.GeneratedAt == "" {
		t.Errorf("expected run stamped, got %+v", r)
	}
}

func TestLoadDerived_ShouldRestoreEveryPersistedTable(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "test.duckdb"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()
	if err := st.Init(); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	saved := report.New(2022, 2023, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	saved.TopContacts = []stats.ContactTotals{{Contact: "Ana", Total: 60}}
	saved.SpeedReport = &convo.SpeedReport{
		TheyRespondFast: []convo.ResponderSpeed{{Contact: "Ana", MedianSeconds: 30, Responses: 8, Formatted: "30s"}},
		TotalResponses:  8,
	}
	for name, rows := range saved.Tables() {
		if err := st.SaveDerived(saved.RunID, name, rows); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
	}

	rebuilt := report.New(2022, 2023, time.Now())
	rebuilt.RunID = saved.RunID
	if err := loadDerived(st, rebuilt); err != nil {
		t.Fatalf("load derived: %v", err)
	}

	if len(rebuilt.TopContacts) != 1 || rebuilt.TopContacts[0].Contact != "Ana" {
		t.Errorf("top contacts not restored: %+v", rebuilt.TopContacts)
	}
	if rebuilt.SpeedReport == nil {
		t.Fatal("speed report not restored")
	}
	if rebuilt.SpeedReport.TotalResponses != 8 || len(rebuilt.SpeedReport.TheyRespondFast) != 1 {
		t.Errorf("unexpected speed report: %+v", rebuilt.SpeedReport)
	}
}
