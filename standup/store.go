// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package standup

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/huddle/models"
)

// timeFormat is how timestamps are stored, portable across sqlite and
// postgres TEXT columns.
const timeFormat = time.RFC3339Nano

// Participant is one opted-in standup user.
type Participant struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// Store persists opt-ins, collected entries and summary configuration.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// OptIn enrolls a user in the daily question round. Re-opting-in just
// refreshes the display name.
func (s *Store) OptIn(groupID, userID, displayName string) error {
	_, err := s.db.Exec(`
		INSERT INTO standup_optin (group_id, user_id, display_name, opted_in_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (group_id, user_id) DO UPDATE SET display_name = $3
	`, groupID, userID, displayName, time.Now().Format(timeFormat))
	if err != nil {
		return fmt.Errorf("failed to save opt-in: %w", err)
	}
	return nil
}

// OptOut removes a user from the round. Unknown users are a no-op.
func (s *Store) OptOut(groupID, userID string) error {
	_, err := s.db.Exec(`
		DELETE FROM standup_optin WHERE group_id = $1 AND user_id = $2
	`, groupID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove opt-in: %w", err)
	}
	return nil
}

// ListParticipants returns the group's opted-in users.
func (s *Store) ListParticipants(groupID string) ([]Participant, error) {
	rows, err := s.db.Query(`
		SELECT user_id, display_name
		FROM standup_optin
		WHERE group_id = $1
		ORDER BY user_id
	`, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to query opt-ins: %w", err)
	}
	defer rows.Close()

	var participants []Participant
	for rows.Next() {
		var p Participant
		if err := rows.Scan(&p.UserID, &p.DisplayName); err != nil {
			return nil, fmt.Errorf("failed to scan opt-in: %w", err)
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

// SaveEntry records a user's answers for the current cycle. A repeat
// submission replaces the previous one - only the latest entry per user
// appears in the summary.
func (s *Store) SaveEntry(entry models.StandupEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO standup_entry (id, group_id, user_id, display_name, did, plan, blockers, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (group_id, user_id) DO UPDATE SET
			id = $1, display_name = $4, did = $5, plan = $6, blockers = $7, submitted_at = $8
	`, entry.ID, entry.GroupID, entry.UserID, entry.DisplayName,
		entry.Did, entry.Plan, entry.Blockers, entry.SubmittedAt.Format(timeFormat))
	if err != nil {
		return fmt.Errorf("failed to save standup entry: %w", err)
	}
	return nil
}

// ListEntries returns the group's current entries ordered by display name.
func (s *Store) ListEntries(groupID string) ([]models.StandupEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, group_id, user_id, display_name, did, plan, blockers, submitted_at
		FROM standup_entry
		WHERE group_id = $1
		ORDER BY display_name, user_id
	`, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to query standup entries: %w", err)
	}
	defer rows.Close()

	var entries []models.StandupEntry
	for rows.Next() {
		var e models.StandupEntry
		var submitted string
		if err := rows.Scan(&e.ID, &e.GroupID, &e.UserID, &e.DisplayName,
			&e.Did, &e.Plan, &e.Blockers, &submitted); err != nil {
			return nil, fmt.Errorf("failed to scan standup entry: %w", err)
		}
		e.SubmittedAt, err = time.Parse(timeFormat, submitted)
		if err != nil {
			return nil, fmt.Errorf("bad submitted_at for entry %s: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ClearEntries drops the group's entries after a summary has posted.
func (s *Store) ClearEntries(groupID string) error {
	_, err := s.db.Exec(`DELETE FROM standup_entry WHERE group_id = $1`, groupID)
	if err != nil {
		return fmt.Errorf("failed to clear standup entries: %w", err)
	}
	return nil
}

// GetConfig returns the group's summary schedule, or sql.ErrNoRows if
// the group never configured one.
func (s *Store) GetConfig(groupID string) (models.SummaryConfig, error) {
	var cfg models.SummaryConfig
	err := s.db.QueryRow(`
		SELECT group_id, channel_id, summary_hour, summary_minute, last_sent_date
		FROM standup_config
		WHERE group_id = $1
	`, groupID).Scan(&cfg.GroupID, &cfg.ChannelID, &cfg.Hour, &cfg.Minute, &cfg.LastSentDate)
	if err != nil {
		return models.SummaryConfig{}, err
	}
	return cfg, nil
}

// SetConfig creates or replaces the group's summary schedule. The
// last-sent marker is preserved across reconfiguration.
func (s *Store) SetConfig(cfg models.SummaryConfig) error {
	_, err := s.db.Exec(`
		INSERT INTO standup_config (group_id, channel_id, summary_hour, summary_minute, last_sent_date)
		VALUES ($1, $2, $3, $4, '')
		ON CONFLICT (group_id) DO UPDATE SET
			channel_id = $2, summary_hour = $3, summary_minute = $4
	`, cfg.GroupID, cfg.ChannelID, cfg.Hour, cfg.Minute)
	if err != nil {
		return fmt.Errorf("failed to save summary config: %w", err)
	}
	return nil
}

// ListConfigs returns every group's summary schedule.
func (s *Store) ListConfigs() ([]models.SummaryConfig, error) {
	rows, err := s.db.Query(`
		SELECT group_id, channel_id, summary_hour, summary_minute, last_sent_date
		FROM standup_config
		ORDER BY group_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query summary configs: %w", err)
	}
	defer rows.Close()

	var configs []models.SummaryConfig
	for rows.Next() {
		var cfg models.SummaryConfig
		if err := rows.Scan(&cfg.GroupID, &cfg.ChannelID, &cfg.Hour, &cfg.Minute, &cfg.LastSentDate); err != nil {
			return nil, fmt.Errorf("failed to scan summary config: %w", err)
		}
		configs = append(configs, cfg)
	}
	return configs, rows.Err()
}

// MarkSummarySent records the date of the last posted summary.
func (s *Store) MarkSummarySent(groupID, date string) error {
	_, err := s.db.Exec(`
		UPDATE standup_config SET last_sent_date = $1 WHERE group_id = $2
	`, date, groupID)
	if err != nil {
		return fmt.Errorf("failed to mark summary sent: %w", err)
	}
	return nil
}
