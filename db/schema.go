// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
//
// The SQL is deliberately the portable subset: no engine defaults,
// timestamps stored as RFC 3339 text, so the same statements run on
// the sqlite default and on postgres.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Standup opt-ins: users who receive the daily question round
CREATE TABLE IF NOT EXISTS standup_optin (
    group_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    display_name TEXT NOT NULL,
    opted_in_at TEXT NOT NULL,
    PRIMARY KEY (group_id, user_id)
);

-- Standup entries: one row per user per group, latest submission wins
CREATE TABLE IF NOT EXISTS standup_entry (
    id TEXT NOT NULL,
    group_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    display_name TEXT NOT NULL,
    did TEXT NOT NULL,
    plan TEXT NOT NULL,
    blockers TEXT NOT NULL,
    submitted_at TEXT NOT NULL,
    PRIMARY KEY (group_id, user_id)
);

-- Per-group summary schedule
CREATE TABLE IF NOT EXISTS standup_config (
    group_id TEXT PRIMARY KEY,
    channel_id TEXT NOT NULL,
    summary_hour INTEGER NOT NULL,
    summary_minute INTEGER NOT NULL,
    last_sent_date TEXT NOT NULL
);
`
