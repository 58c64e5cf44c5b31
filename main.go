package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"wrapped/internal/config"
	"wrapped/internal/contacts"
	"wrapped/internal/content"
	"wrapped/internal/convo"
	"wrapped/internal/extract"
	"wrapped/internal/logger"
	"wrapped/internal/model"
	"wrapped/internal/narrative"
	"wrapped/internal/report"
	"wrapped/internal/stats"
	"wrapped/internal/store"
	"wrapped/internal/trend"
)

const (
	streaksKept    = 10
	unresolvedKept = 30
)

func main() {
	extractMode := flag.Bool("extract", false, "pull messages from chat.db into the local store")
	analyzeMode := flag.Bool("analyze", false, "run the full analysis and write the report")
	reportMode := flag.Bool("report", false, "rewrite the report from the last analysis run")
	narrateMode := flag.Bool("narrate", false, "generate LLM narrative sections for the last run")
	chatDB := flag.String("chatdb", defaultChatDB(), "path to the Messages chat.db")
	dbPath := flag.String("db", "", "analysis database path (default: ~/.wrapped/messages.duckdb)")
	contactsPath := flag.String("contacts", "", "contact name cache (default: ~/.wrapped/contacts.json)")
	outDir := flag.String("out", "", "report output directory (default: ~/.wrapped/report)")
	fromYear := flag.String("from", "", "first year to analyze (default: 2017)")
	toYear := flag.String("to", "", "last year to analyze (default: 2026)")
	verbose := flag.Bool("v", false, "debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `wrapped - your messaging history, analyzed

usage: wrapped [options]

modes (pick one):
  -extract             pull messages from chat.db into the local store
  -analyze             run the full analysis and write the report
  -report              rewrite the report from the last analysis run
  -narrate             generate LLM narrative sections for the last run

options:
  -chatdb PATH         Messages database (default: ~/Library/Messages/chat.db)
  -db PATH             analysis database (default: ~/.wrapped/messages.duckdb)
  -contacts PATH       contact name cache (default: ~/.wrapped/contacts.json)
  -out DIR             report directory (default: ~/.wrapped/report)
  -from YEAR           first year to analyze
  -to YEAR             last year to analyze
  -v                   debug logging

environment:
  OPENAI_API_KEY       enables -narrate
`)
	}
	flag.Parse()

	mode := 0
	for _, on := range []bool{*extractMode, *analyzeMode, *reportMode, *narrateMode} {
		if on {
			mode++
		}
	}
	if mode == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if mode > 1 {
		fmt.Fprintln(os.Stderr, "wrapped: specify only one of -extract, -analyze, -report, -narrate")
		os.Exit(2)
	}

	cfg := config.Default()
	if *fromYear == "" {
		*fromYear = fmt.Sprint(cfg.StartYear)
	}
	if *toYear == "" {
		*toYear = fmt.Sprint(cfg.EndYear)
	}
	yr, err := model.ParseYearRange(*fromYear, *toYear)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wrapped: %v\n", err)
		os.Exit(2)
	}
	if *dbPath == "" {
		*dbPath = cfg.DBPath()
	}
	if *contactsPath == "" {
		*contactsPath = cfg.ContactsPath()
	}
	if *outDir == "" {
		*outDir = cfg.ReportDir()
	}

	log := logger.New(os.Stderr, *verbose)

	switch {
	case *extractMode:
		err = runExtract(*chatDB, *dbPath, *contactsPath, yr, log)
	case *analyzeMode:
		err = runAnalyze(cfg, *dbPath, *contactsPath, *outDir, yr, log)
	case *reportMode:
		err = runReport(*dbPath, *outDir, yr, log)
	case *narrateMode:
		err = runNarrate(cfg, *dbPath, *contactsPath, *outDir, yr, log)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "wrapped: %v\n", err)
		os.Exit(1)
	}
}

func defaultChatDB() string {
	return filepath.Join(os.Getenv("HOME"), "Library", "Messages", "chat.db")
}

// --- Extract mode (chat.db -> DuckDB) ---

func runExtract(chatDB, dbPath, contactsPath string, yr model.YearRange, log zerolog.Logger) error {
	log.Info().Str("chatdb", chatDB).Msg("extracting messages")

	msgs, err := extract.Messages(chatDB, yr)
	if err != nil {
		return err
	}
	log.Info().Int("messages", len(msgs)).Msg("extraction complete")

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Init(); err != nil {
		return err
	}
	if err := st.ReplaceMessages(msgs); err != nil {
		return fmt.Errorf("store messages: %w", err)
	}
	stored, err := st.MessageCount()
	if err != nil {
		return fmt.Errorf("count stored messages: %w", err)
	}
	log.Info().Int64("messages", stored).Str("db", dbPath).Msg("messages stored")

	// Seed the contact cache with unresolved ids so names can be filled
	// in by hand before analysis.
	resolver, err := contacts.LoadCache(contactsPath)
	if err != nil {
		return err
	}
	if err := resolver.SaveCache(contactsPath, msgs); err != nil {
		return fmt.Errorf("save contact cache: %w", err)
	}

	unresolved := resolver.Unresolved(msgs, unresolvedKept)
	if len(unresolved) > 0 {
		log.Warn().Int("contacts", len(unresolved)).Str("path", contactsPath).
			Msg("unresolved contact ids, edit the cache to name them")
	}

	log.Info().Str("db", dbPath).Msg("extract done")
	return nil
}

// --- Analyze mode (DuckDB -> report.json) ---

func runAnalyze(cfg config.Config, dbPath, contactsPath, outDir string, yr model.YearRange, log zerolog.Logger) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()
	if err := st.Init(); err != nil {
		return err
	}

	msgs, err := loadResolved(st, contactsPath, yr, cfg, log)
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		return fmt.Errorf("no messages in store, run -extract first")
	}

	now := time.Now()
	r := buildReport(cfg, msgs, yr, now, log)

	path, err := r.Write(outDir)
	if err != nil {
		return err
	}

	for name, rows := range r.Tables() {
		if err := st.SaveDerived(r.RunID, name, rows); err != nil {
			return err
		}
	}
	if err := st.RecordRun(r.RunID, now, r.Overview.TotalMessages, r.Overview.TotalContacts, path); err != nil {
		return fmt.Errorf("record run: %w", err)
	}

	log.Info().Str("run", r.RunID).Str("report", path).Msg("analysis done")
	return nil
}

// buildReport runs every analyzer over the resolved message set.
func buildReport(cfg config.Config, msgs []model.Message, yr model.YearRange, now time.Time, log zerolog.Logger) *report.Report {
	r := report.New(yr.From, yr.To, now)

	totals := stats.Totals(msgs)
	sent, received := 0, 0
	for _, m := range msgs {
		if m.FromMe {
			sent++
		} else {
			received++
		}
	}
	r.Overview = report.Overview{
		TotalMessages: len(msgs),
		TotalSent:     sent,
		TotalReceived: received,
		TotalContacts: len(totals),
		YearsSpanned:  yr.To - yr.From + 1,
	}

	log.Debug().Msg("computing aggregate stats")
	r.TopContacts = stats.TopContacts(msgs, cfg.TopContactsCount)
	r.TopByYear = stats.TopByYear(msgs, cfg.TopContactsCount)
	r.Lopsidedness = stats.CalculateLopsidedness(msgs, cfg.MinMessagesForTopContact)
	r.YearlyVolume = stats.YearlyVolume(msgs)
	hm := stats.HourDayHeatmap(msgs)
	r.Heatmap = &hm
	r.PeakHours = stats.PeakHoursByYear(msgs)
	r.ActiveDays = stats.ActiveDaysPerYear(msgs)
	r.Streaks = stats.LongestStreaks(msgs, streaksKept)

	log.Debug().Msg("segmenting conversations")
	r.Initiators = convo.Initiators(msgs, cfg.ConversationGapHours)
	r.ResponseTimes = convo.MedianResponseTimes(msgs)
	top := make(map[string]struct{}, len(r.TopContacts))
	topNames := make([]string, 0, len(r.TopContacts))
	for _, c := range r.TopContacts {
		top[c.Contact] = struct{}{}
		topNames = append(topNames, c.Contact)
	}
	speeds := convo.MineResponseSpeeds(msgs, top)
	r.SpeedReport = &speeds

	log.Debug().Msg("detecting trends")
	r.Fading = trend.DetectFading(msgs, now, trend.DefaultMinMessages, trend.DefaultMaxInactiveDays)
	r.Emerging = trend.DetectEmerging(msgs, now)
	r.Consistency = trend.ClassifyConsistency(msgs)
	if yr.To > yr.From {
		r.RisingStars = trend.RisingStars(msgs, yr.To-1, yr.To)
		r.FadedRanks = trend.FadedConnections(msgs, yr.To-1, yr.To)
	}

	log.Debug().Msg("analyzing content")
	r.Phrases = content.TopPhrasesByYear(msgs, cfg)
	r.YearWords = content.UniqueWordsByYear(msgs, cfg)
	r.TopicsByYear = content.TopicsByYear(msgs, cfg)
	r.TopicsByContact = content.TopicsByContact(msgs, topNames, cfg)
	r.Sentiment = content.SentimentByContact(msgs, cfg.MinMessagesForSentiment)
	r.EmojisByYear = content.TopEmojisByYear(msgs)
	r.EmojisByContact = content.EmojisByContact(msgs)
	r.QuestionsByYear = content.QuestionRatioByYear(msgs)
	r.QuestionsByContact = content.QuestionRatioByContact(msgs)

	return r
}

// --- Report mode (persisted tables -> report.json) ---

func runReport(dbPath, outDir string, yr model.YearRange, log zerolog.Logger) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()
	if err := st.Init(); err != nil {
		return err
	}

	run, ok, err := st.LastRun()
	if err != nil {
		return fmt.Errorf("load last run: %w", err)
	}
	if !ok {
		return fmt.Errorf("no analysis run recorded, run -analyze first")
	}

	r := report.New(yr.From, yr.To, run.GeneratedAt)
	r.RunID = run.RunID
	r.Overview.TotalMessages = int(run.MessageCount)
	r.Overview.TotalContacts = int(run.ContactCount)
	r.Overview.YearsSpanned = yr.To - yr.From + 1
	if err := loadDerived(st, r); err != nil {
		return err
	}

	path, err := r.Write(outDir)
	if err != nil {
		return err
	}
	log.Info().Str("run", r.RunID).Str("report", path).Msg("report rewritten")
	return nil
}

func loadDerived(st *store.Store, r *report.Report) error {
	targets := map[string]interface{}{
		"top_contacts":         &r.TopContacts,
		"top_by_year":          &r.TopByYear,
		"lopsidedness":         &r.Lopsidedness,
		"yearly_volume":        &r.YearlyVolume,
		"peak_hours":           &r.PeakHours,
		"active_days":          &r.ActiveDays,
		"streaks":              &r.Streaks,
		"initiators":           &r.Initiators,
		"response_times":       &r.ResponseTimes,
		"fading_friendships":   &r.Fading,
		"emerging_connections": &r.Emerging,
		"consistency":          &r.Consistency,
		"rising_stars":         &r.RisingStars,
		"faded_connections":    &r.FadedRanks,
		"phrases":              &r.Phrases,
		"unique_words":         &r.YearWords,
		"topics_by_year":       &r.TopicsByYear,
		"topics_by_contact":    &r.TopicsByContact,
		"sentiment":            &r.Sentiment,
		"emojis_by_year":       &r.EmojisByYear,
		"emojis_by_contact":    &r.EmojisByContact,
		"questions_by_year":    &r.QuestionsByYear,
		"questions_by_contact": &r.QuestionsByContact,
		"heatmap":              &r.Heatmap,
		"response_speeds":      &r.SpeedReport,
	}
	for name, dst := range targets {
		if _, err := st.Derived(r.RunID, name, dst); err != nil {
			return err
		}
	}
	return nil
}

// --- Narrate mode (LLM sections) ---

func runNarrate(cfg config.Config, dbPath, contactsPath, outDir string, yr model.YearRange, log zerolog.Logger) error {
	gen := narrative.NewFromEnv(cfg.DataBase, log)
	if gen == nil {
		return fmt.Errorf("narrative generation needs OPENAI_API_KEY")
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()
	if err := st.Init(); err != nil {
		return err
	}

	msgs, err := loadResolved(st, contactsPath, yr, cfg, log)
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		return fmt.Errorf("no messages in store, run -extract first")
	}

	now := time.Now()
	topContacts := stats.TopContacts(msgs, cfg.TopContactsCount)
	topNames := make([]string, 0, len(topContacts))
	for _, c := range topContacts {
		topNames = append(topNames, c.Contact)
	}

	transcript := narrative.SubstantiveMessages(msgs, topNames, narrative.DefaultTokenBudget)
	dataContext := narrative.BuildContext(narrative.ContextStats{
		TotalMessages: len(msgs),
		TotalContacts: len(stats.Totals(msgs)),
		YearsSpan:     yr.To - yr.From + 1,
		TopContacts:   topContacts,
		Fading:        trend.DetectFading(msgs, now, trend.DefaultMinMessages, trend.DefaultMaxInactiveDays),
		Emerging:      trend.DetectEmerging(msgs, now),
		YearlyVolume:  stats.YearlyVolume(msgs),
	}, transcript)

	log.Info().Int("context_bytes", len(dataContext)).Msg("generating narratives")
	insights := gen.Generate(context.Background(), dataContext)
	if insights.Reflection == "" && insights.StyleProfile == "" {
		return fmt.Errorf("narrative generation produced no sections")
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(outDir, "narratives.json")
	if err := report.WriteNarratives(path, insights); err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("narratives written")
	return nil
}

// --- Helpers ---

// loadResolved reads the stored messages, applies contact names and
// drops noise contacts.
func loadResolved(st *store.Store, contactsPath string, yr model.YearRange, cfg config.Config, log zerolog.Logger) ([]model.Message, error) {
	msgs, err := st.Messages(yr)
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}

	resolver, err := contacts.LoadCache(contactsPath)
	if err != nil {
		return nil, err
	}
	msgs = resolver.Apply(msgs)

	before := len(msgs)
	msgs = contacts.FilterNoise(msgs, cfg)
	log.Debug().Int("kept", len(msgs)).Int("dropped", before-len(msgs)).Msg("noise filtering")
	return msgs, nil
}
