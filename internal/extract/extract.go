// Package extract reads 1:1 messages from a macOS chat.db file.
package extract

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"wrapped/internal/model"

	_ "modernc.org/sqlite"
)

// Apple's Cocoa epoch: 2001-01-01 00:00:00 UTC.
const cocoaEpochOffset = 978307200

// Messages reads all 1:1 messages with text content from the chat database.
// Group chats (chat identifiers starting with "chat") are excluded, as are
// rows without text: attachment-only and rich-body messages are dropped
// rather than decoded. Timestamps come back in the local timezone.
func Messages(dbPath string, yr model.YearRange) ([]model.Message, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=ro", dbPath))
	if err != nil {
		return nil, fmt.Errorf("open chat db %s: %w", dbPath, err)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT
			m.ROWID,
			m.text,
			m.is_from_me,
			m.date / 1000000000 + ?,
			h.id,
			h.service,
			c.chat_identifier
		FROM message m
		JOIN chat_message_join cmj ON m.ROWID = cmj.message_id
		JOIN chat c ON cmj.chat_id = c.ROWID
		LEFT JOIN handle h ON m.handle_id = h.ROWID
		WHERE c.chat_identifier NOT LIKE 'chat%'
		  AND m.text IS NOT NULL
		  AND m.text != ''
		ORDER BY m.date
	`, cocoaEpochOffset)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	var out []model.Message
	for rows.Next() {
		var (
			id             int64
			text           string
			fromMe         int
			unixTS         int64
			handleID       sql.NullString
			service        sql.NullString
			chatIdentifier string
		)
		if err := rows.Scan(&id, &text, &fromMe, &unixTS, &handleID, &service, &chatIdentifier); err != nil {
			return nil, fmt.Errorf("scan message row: %w", err)
		}

		if strings.TrimSpace(text) == "" {
			continue
		}

		// Outgoing SMS rows can lack a handle; fall back to the chat identifier.
		contactID := chatIdentifier
		if handleID.Valid && handleID.String != "" {
			contactID = handleID.String
		}

		m := model.Message{
			ID:        id,
			ContactID: contactID,
			FromMe:    fromMe == 1,
			Timestamp: time.Unix(unixTS, 0).Local(),
			Text:      text,
		}
		if service.Valid {
			m.Service = service.String
		}

		out = append(out, m)
	}
	return yr.Filter(out), rows.Err()
}
