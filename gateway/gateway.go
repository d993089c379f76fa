// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/danielhkuo/huddle/models"
)

// ErrNoReply is returned by AwaitReply when the user does not respond
// within the timeout.
var ErrNoReply = errors.New("no reply before timeout")

// Gateway is the chat-platform collaborator consumed by the poll engine
// and the standup collector. Implementations wrap a concrete platform
// client; the engine treats every call as potentially slow and never
// invokes the gateway while holding a session lock.
type Gateway interface {
	// RenderSessionCreated displays the poll with its vote controls and
	// returns a handle for later edits and replies.
	RenderSessionCreated(groupID, channelID, question string, options []string, closesAt time.Time) (models.MessageRef, error)

	// RenderSessionClosed updates the original poll display and posts the
	// results record as a reply. Best-effort: the caller treats failures
	// as non-fatal.
	RenderSessionClosed(ref models.MessageRef, res models.Results) error

	// AcknowledgeVote privately confirms a voter's recorded choice. It
	// must never broadcast running tallies.
	AcknowledgeVote(voterID, optionLabel string) error

	// RejectVote privately informs a voter why their vote was not counted.
	RejectVote(voterID, reason string) error

	// ListChannelMembers returns the members able to view the given
	// channel, including bot accounts (the caller filters those out).
	ListChannelMembers(groupID, channelID string) ([]models.Member, error)

	// SendDirectMessage delivers a private prompt to a user.
	SendDirectMessage(userID, text string) error

	// AwaitReply blocks for the user's next direct-message reply, up to
	// the timeout. Returns ErrNoReply when the timeout elapses first.
	AwaitReply(ctx context.Context, userID string, timeout time.Duration) (string, error)

	// PostMessage posts text to a channel (used for standup summaries).
	PostMessage(channelID, text string) error
}
