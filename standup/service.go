// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package standup

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/huddle/gateway"
	"github.com/danielhkuo/huddle/models"
)

// ErrNoSummaryChannel means the group never configured a summary channel.
var ErrNoSummaryChannel = errors.New("no summary channel configured")

const (
	summaryAttempts = 3
	dateFormat      = "2006-01-02"
)

// Service ties the collector, the store and the summary sender together.
type Service struct {
	store        *Store
	gw           gateway.Gateway
	replyTimeout time.Duration

	// retryDelay is the pause between failed summary post attempts.
	retryDelay time.Duration
	now        func() time.Time
}

func NewService(store *Store, gw gateway.Gateway, replyTimeout time.Duration) *Service {
	return &Service{
		store:        store,
		gw:           gw,
		replyTimeout: replyTimeout,
		retryDelay:   5 * time.Second,
		now:          time.Now,
	}
}

// Store exposes the underlying persistence for opt-in management.
func (s *Service) Store() *Store {
	return s.store
}

// SendSummary posts the group's standup report to its configured channel
// and clears the collected entries. Entries are only cleared after a
// successful post, so a failed send keeps them for the next attempt.
// With no entries collected there is nothing to post and nothing changes.
func (s *Service) SendSummary(groupID string) error {
	cfg, err := s.store.GetConfig(groupID)
	if err == sql.ErrNoRows {
		return ErrNoSummaryChannel
	}
	if err != nil {
		return err
	}

	entries, err := s.store.ListEntries(groupID)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		slog.Info("no standup entries to summarize", "group_id", groupID)
		return nil
	}

	report := FormatSummary(entries)

	var lastErr error
	for attempt := 1; attempt <= summaryAttempts; attempt++ {
		lastErr = s.gw.PostMessage(cfg.ChannelID, report)
		if lastErr == nil {
			break
		}
		slog.Warn("summary post failed",
			"group_id", groupID,
			"attempt", attempt,
			"attempts_left", summaryAttempts-attempt,
			"error", lastErr,
		)
		if attempt < summaryAttempts {
			time.Sleep(s.retryDelay)
		}
	}
	if lastErr != nil {
		return fmt.Errorf("failed to post summary after %d attempts: %w", summaryAttempts, lastErr)
	}

	if err := s.store.ClearEntries(groupID); err != nil {
		slog.Error("failed to clear entries after summary", "group_id", groupID, "error", err)
	}
	if err := s.store.MarkSummarySent(groupID, s.now().Format(dateFormat)); err != nil {
		slog.Error("failed to mark summary sent", "group_id", groupID, "error", err)
	}

	slog.Info("summary posted", "group_id", groupID, "entries", len(entries))
	return nil
}

// FormatSummary renders the daily report. Entries arrive one per user
// (the store keeps only the latest submission), ordered by display name.
func FormatSummary(entries []models.StandupEntry) string {
	var b strings.Builder
	b.WriteString("# Daily Standup Summary\n\n")

	for _, e := range entries {
		fmt.Fprintf(&b, "## %s\n", e.DisplayName)
		fmt.Fprintf(&b, "**Did:** %s\n", e.Did)
		fmt.Fprintf(&b, "**Plan:** %s\n", e.Plan)
		fmt.Fprintf(&b, "**Blockers:** %s\n", e.Blockers)
		fmt.Fprintf(&b, "_submitted %s_\n\n", humanize.Time(e.SubmittedAt))
	}
	return b.String()
}
