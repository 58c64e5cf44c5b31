// Package report assembles every derived table into one JSON document
// describing a full analysis run.
package report

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"wrapped/internal/content"
	"wrapped/internal/convo"
	"wrapped/internal/narrative"
	"wrapped/internal/stats"
	"wrapped/internal/trend"
)

// Report is the full output of one analysis run. Slices left nil are
// omitted from the JSON document.
type Report struct {
	RunID       string `json:"run_id"`
	GeneratedAt string `json:"generated_at"`
	YearFrom    int    `json:"year_from"`
	YearTo      int    `json:"year_to"`

	Overview Overview `json:"overview"`

	TopContacts   []stats.ContactTotals `json:"top_contacts,omitempty"`
	TopByYear     []stats.YearContact   `json:"top_by_year,omitempty"`
	Lopsidedness  []stats.Lopsidedness  `json:"lopsidedness,omitempty"`
	YearlyVolume  []stats.YearVolume    `json:"yearly_volume,omitempty"`
	Heatmap       *stats.Heatmap        `json:"heatmap,omitempty"`
	PeakHours     []stats.PeakHour      `json:"peak_hours,omitempty"`
	ActiveDays    []stats.ActiveDays    `json:"active_days,omitempty"`
	Streaks       []stats.Streak        `json:"streaks,omitempty"`

	Initiators    []convo.InitiatorStats `json:"initiators,omitempty"`
	ResponseTimes []convo.ResponseTimes  `json:"response_times,omitempty"`
	SpeedReport   *convo.SpeedReport     `json:"response_speeds,omitempty"`

	Fading      []trend.Fading      `json:"fading_friendships,omitempty"`
	Emerging    []trend.Emerging    `json:"emerging_connections,omitempty"`
	Consistency []trend.Consistency `json:"consistency,omitempty"`
	RisingStars []trend.RankShift   `json:"rising_stars,omitempty"`
	FadedRanks  []trend.RankShift   `json:"faded_connections,omitempty"`

	Phrases            []content.Phrase           `json:"phrases,omitempty"`
	YearWords          []content.YearWord         `json:"unique_words,omitempty"`
	TopicsByYear       []content.Topic            `json:"topics_by_year,omitempty"`
	TopicsByContact    []content.Topic            `json:"topics_by_contact,omitempty"`
	Sentiment          []content.ContactSentiment `json:"sentiment,omitempty"`
	EmojisByYear       []content.EmojiCount       `json:"emojis_by_year,omitempty"`
	EmojisByContact    []content.EmojiCount       `json:"emojis_by_contact,omitempty"`
	QuestionsByYear    []content.QuestionRatio    `json:"questions_by_year,omitempty"`
	QuestionsByContact []content.QuestionRatio    `json:"questions_by_contact,omitempty"`

	Narratives narrative.Insights `json:"narratives,omitempty"`
}

// Overview is the headline numbers of a run.
type Overview struct {
	TotalMessages int `json:"total_messages"`
	TotalSent     int `json:"total_sent"`
	TotalReceived int `json:"total_received"`
	TotalContacts int `json:"total_contacts"`
	YearsSpanned  int `json:"years_spanned"`
}

// New starts an empty report stamped with a fresh run id.
func New(yearFrom, yearTo int, now time.Time) *Report {
	return &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: now.Format(time.RFC3339),
		YearFrom:    yearFrom,
		YearTo:      yearTo,
	}
}

// Round1 rounds a rate to one decimal place for presentation.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// Normalize rounds every presented rate to one decimal place so the
// document round-trips cleanly.
func (r *Report) Normalize() {
	for i := range r.Lopsidedness {
		r.Lopsidedness[i].Ratio = Round1(r.Lopsidedness[i].Ratio)
	}
	for i := range r.Fading {
		r.Fading[i].BaselineRate = Round1(r.Fading[i].BaselineRate)
		r.Fading[i].RecentRate = Round1(r.Fading[i].RecentRate)
		r.Fading[i].DropPct = Round1(r.Fading[i].DropPct)
	}
	for i := range r.Emerging {
		r.Emerging[i].BaselineRate = Round1(r.Emerging[i].BaselineRate)
		r.Emerging[i].RecentRate = Round1(r.Emerging[i].RecentRate)
	}
	for i := range r.ResponseTimes {
		r.ResponseTimes[i].YourMedianMin = Round1(r.ResponseTimes[i].YourMedianMin)
		r.ResponseTimes[i].TheirMedianMin = Round1(r.ResponseTimes[i].TheirMedianMin)
	}
	for i := range r.QuestionsByYear {
		r.QuestionsByYear[i].Pct = Round1(r.QuestionsByYear[i].Pct)
	}
	for i := range r.QuestionsByContact {
		r.QuestionsByContact[i].Pct = Round1(r.QuestionsByContact[i].Pct)
	}
}

// Tables enumerates the non-empty derived tables by name, for per-table
// artifacts and store persistence.
func (r *Report) Tables() map[string]interface{} {
	out := map[string]interface{}{}
	add := func(name string, rows interface{}, n int) {
		if n > 0 {
			out[name] = rows
		}
	}
	add("top_contacts", r.TopContacts, len(r.TopContacts))
	add("top_by_year", r.TopByYear, len(r.TopByYear))
	add("lopsidedness", r.Lopsidedness, len(r.Lopsidedness))
	add("yearly_volume", r.YearlyVolume, len(r.YearlyVolume))
	add("peak_hours", r.PeakHours, len(r.PeakHours))
	add("active_days", r.ActiveDays, len(r.ActiveDays))
	add("streaks", r.Streaks, len(r.Streaks))
	add("initiators", r.Initiators, len(r.Initiators))
	add("response_times", r.ResponseTimes, len(r.ResponseTimes))
	add("fading_friendships", r.Fading, len(r.Fading))
	add("emerging_connections", r.Emerging, len(r.Emerging))
	add("consistency", r.Consistency, len(r.Consistency))
	add("rising_stars", r.RisingStars, len(r.RisingStars))
	add("faded_connections", r.FadedRanks, len(r.FadedRanks))
	add("phrases", r.Phrases, len(r.Phrases))
	add("unique_words", r.YearWords, len(r.YearWords))
	add("topics_by_year", r.TopicsByYear, len(r.TopicsByYear))
	add("topics_by_contact", r.TopicsByContact, len(r.TopicsByContact))
	add("sentiment", r.Sentiment, len(r.Sentiment))
	add("emojis_by_year", r.EmojisByYear, len(r.EmojisByYear))
	add("emojis_by_contact", r.EmojisByContact, len(r.EmojisByContact))
	add("questions_by_year", r.QuestionsByYear, len(r.QuestionsByYear))
	add("questions_by_contact", r.QuestionsByContact, len(r.QuestionsByContact))
	if r.Heatmap != nil {
		out["heatmap"] = r.Heatmap
	}
	if r.SpeedReport != nil {
		out["response_speeds"] = r.SpeedReport
	}
	return out
}

// Write writes the full document to dir/report.json and each table to
// dir/tables/<name>.json, and returns the path of the main document.
func (r *Report) Write(dir string) (string, error) {
	r.Normalize()

	tablesDir := filepath.Join(dir, "tables")
	if err := os.MkdirAll(tablesDir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	path := filepath.Join(dir, "report.json")
	if err := writeJSON(path, r); err != nil {
		return "", err
	}
	for name, rows := range r.Tables() {
		if err := writeJSON(filepath.Join(tablesDir, name+".json"), rows); err != nil {
			return "", err
		}
	}
	return path, nil
}

// WriteNarratives writes the LLM narrative sections as a standalone
// artifact next to the report.
func WriteNarratives(path string, insights narrative.Insights) error {
	return writeJSON(path, insights)
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
