// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package standup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/huddle/gateway"
	"github.com/danielhkuo/huddle/models"
)

// The daily question sequence, asked over DM one prompt at a time.
var prompts = []string{
	"What did you work on since the last standup?",
	"What do you plan to work on next?",
	"Any blockers or problems?",
}

// Collect runs the question sequence for one user. Each prompt has an
// independent reply timeout; a timed-out prompt records "no response"
// and the sequence moves on, so a distracted user still produces a
// fixed-shape entry. The entry is saved before returning.
func (s *Service) Collect(ctx context.Context, groupID, userID, displayName string) (models.StandupEntry, error) {
	answers := make([]string, len(prompts))
	for i, prompt := range prompts {
		if err := s.gw.SendDirectMessage(userID, prompt); err != nil {
			return models.StandupEntry{}, fmt.Errorf("failed to send standup prompt: %w", err)
		}

		reply, err := s.gw.AwaitReply(ctx, userID, s.replyTimeout)
		switch {
		case errors.Is(err, gateway.ErrNoReply):
			answers[i] = models.NoResponse
		case err != nil:
			return models.StandupEntry{}, fmt.Errorf("failed waiting for standup reply: %w", err)
		default:
			answers[i] = reply
		}
	}

	entry := models.StandupEntry{
		ID:          uuid.NewString(),
		GroupID:     groupID,
		UserID:      userID,
		DisplayName: displayName,
		Did:         answers[0],
		Plan:        answers[1],
		Blockers:    answers[2],
		SubmittedAt: time.Now(),
	}
	if err := s.store.SaveEntry(entry); err != nil {
		return models.StandupEntry{}, err
	}

	slog.Info("standup entry recorded", "group_id", groupID, "user_id", userID)
	return entry, nil
}

// RunRound collects entries from every opted-in user of the group, each
// in its own goroutine since a round is dominated by reply timeouts.
// Returns how many entries were collected.
func (s *Service) RunRound(ctx context.Context, groupID string) (int, error) {
	participants, err := s.store.ListParticipants(groupID)
	if err != nil {
		return 0, err
	}
	if len(participants) == 0 {
		return 0, nil
	}

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		count int
	)

	for _, p := range participants {
		wg.Add(1)
		go func(p Participant) {
			defer wg.Done()
			if _, err := s.Collect(ctx, groupID, p.UserID, p.DisplayName); err != nil {
				slog.Warn("standup collection failed", "group_id", groupID, "user_id", p.UserID, "error", err)
				return
			}
			mu.Lock()
			count++
			mu.Unlock()
		}(p)
	}
	wg.Wait()

	slog.Info("standup round finished", "group_id", groupID, "collected", count, "participants", len(participants))
	return count, nil
}
