// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package standup

import (
	"context"
	"log/slog"
	"time"
)

// sendWindow is how many minutes past the configured time a summary may
// still fire. The scheduler checks once a minute, so a window keeps a
// slightly late tick from skipping the day entirely.
const sendWindow = 5

// Scheduler fires each group's daily summary at its configured local
// time. It deliberately mirrors a minute-granularity cron check rather
// than arming one timer per group: groups reconfigure their schedule at
// runtime and a stateless due-check per tick cannot fire a stale time.
type Scheduler struct {
	svc      *Service
	interval time.Duration
	now      func() time.Time
}

func NewScheduler(svc *Service) *Scheduler {
	return &Scheduler{
		svc:      svc,
		interval: time.Minute,
		now:      time.Now,
	}
}

// Run checks schedules until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	slog.Info("summary scheduler started", "interval", s.interval)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("summary scheduler stopped")
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick fires every group whose summary is due: the configured hour, a
// minute within the send window, and not already sent today. The
// last-sent date recorded by SendSummary is what makes a second tick in
// the same window a no-op.
func (s *Scheduler) Tick() {
	configs, err := s.svc.store.ListConfigs()
	if err != nil {
		slog.Error("failed to load summary configs", "error", err)
		return
	}

	now := s.now()
	today := now.Format(dateFormat)

	for _, cfg := range configs {
		if cfg.LastSentDate == today {
			continue
		}
		if now.Hour() != cfg.Hour {
			continue
		}
		if now.Minute() < cfg.Minute || now.Minute() >= cfg.Minute+sendWindow {
			continue
		}

		if err := s.svc.SendSummary(cfg.GroupID); err != nil {
			slog.Error("scheduled summary failed", "group_id", cfg.GroupID, "error", err)
		}
	}
}
