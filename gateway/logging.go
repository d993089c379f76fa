// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gateway

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/huddle/models"
)

// Logging is a stand-in Gateway that writes every interaction to the
// log instead of a chat platform. It is what main wires up when no
// platform binding is configured, which makes the HTTP surface usable
// for local development: polls run, votes count, and everything that
// would have been rendered shows up in the log.
//
// Membership is unknown here, so sessions run in deadline-only mode and
// AwaitReply always times out.
type Logging struct{}

func (Logging) RenderSessionCreated(groupID, channelID, question string, options []string, closesAt time.Time) (models.MessageRef, error) {
	ref := models.MessageRef{ChannelID: channelID, MessageID: uuid.NewString()}
	slog.Info("poll rendered", "group_id", groupID, "channel_id", channelID, "question", question, "options", options, "closes_at", closesAt)
	return ref, nil
}

func (Logging) RenderSessionClosed(ref models.MessageRef, res models.Results) error {
	slog.Info("results rendered", "channel_id", ref.ChannelID, "message_id", ref.MessageID,
		"counts", res.Counts, "winners", res.Winners, "no_votes", res.NoVotes)
	return nil
}

func (Logging) AcknowledgeVote(voterID, optionLabel string) error {
	slog.Info("vote acknowledged", "voter_id", voterID, "option", optionLabel)
	return nil
}

func (Logging) RejectVote(voterID, reason string) error {
	slog.Info("vote rejected", "voter_id", voterID, "reason", reason)
	return nil
}

func (Logging) ListChannelMembers(groupID, channelID string) ([]models.Member, error) {
	return nil, nil
}

func (Logging) SendDirectMessage(userID, text string) error {
	slog.Info("dm sent", "user_id", userID, "text", text)
	return nil
}

func (Logging) AwaitReply(ctx context.Context, userID string, timeout time.Duration) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(timeout):
		return "", ErrNoReply
	}
}

func (Logging) PostMessage(channelID, text string) error {
	slog.Info("channel message posted", "channel_id", channelID, "text", text)
	return nil
}
