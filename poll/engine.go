// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/huddle/gateway"
	"github.com/danielhkuo/huddle/models"
)

// closeTrigger identifies which event ended a session, for logging and
// for deciding whether the deadline timer still needs to be disarmed.
type closeTrigger int

const (
	triggerDeadline closeTrigger = iota
	triggerAllVoted
	triggerManual
)

func (t closeTrigger) String() string {
	switch t {
	case triggerDeadline:
		return "deadline"
	case triggerAllVoted:
		return "all_voted"
	case triggerManual:
		return "manual"
	}
	return "unknown"
}

// Engine drives poll sessions from creation to closure. All mutation of a
// session's ledger and state goes through the engine, under that
// session's lock; gateway calls are always made outside any lock.
type Engine struct {
	store *Store
	gw    gateway.Gateway
}

func NewEngine(store *Store, gw gateway.Gateway) *Engine {
	return &Engine{store: store, gw: gw}
}

// StartSession validates the request, snapshots eligibility, renders the
// poll message and registers the session with its deadline timer armed.
//
// Eligibility is computed exactly once here; membership changes during
// the poll do not add or remove eligibility. A failed membership lookup
// degrades to an empty set, which disables early closure for this
// session (deadline-only mode).
func (e *Engine) StartSession(groupID, channelID, question string, options []string, duration time.Duration) (*Session, error) {
	if strings.TrimSpace(question) == "" {
		return nil, &models.ValidationError{Field: "question", Reason: "must not be empty"}
	}
	if len(options) < models.MinOptions || len(options) > models.MaxOptions {
		return nil, &models.ValidationError{
			Field:  "options",
			Reason: fmt.Sprintf("need between %d and %d options, got %d", models.MinOptions, models.MaxOptions, len(options)),
		}
	}
	for i, opt := range options {
		if strings.TrimSpace(opt) == "" {
			return nil, &models.ValidationError{Field: "options", Reason: fmt.Sprintf("option %d is empty", i)}
		}
	}
	if duration <= 0 {
		return nil, &models.ValidationError{Field: "duration_seconds", Reason: "must be positive"}
	}

	eligible := snapshotEligibility(e.gw, groupID, channelID)
	deadline := time.Now().Add(duration)

	// Without a rendered message there are no vote controls, so an
	// unrenderable session would just leak until its deadline.
	ref, err := e.gw.RenderSessionCreated(groupID, channelID, question, options, deadline)
	if err != nil {
		return nil, fmt.Errorf("failed to render poll message: %w", err)
	}

	sess := &Session{
		GroupID:  groupID,
		ID:       uuid.NewString(),
		Question: question,
		Options:  append([]string(nil), options...),
		Deadline: deadline,
		Ref:      ref,
		state:    stateOpen,
		votes:    make(map[string]int),
		eligible: eligible,
	}

	if err := e.store.Add(sess); err != nil {
		return nil, err
	}

	sess.mu.Lock()
	sess.timer = time.AfterFunc(duration, func() {
		// A stale timer that lost the close race finds a non-open state
		// inside close and does nothing.
		_ = e.close(groupID, sess.ID, triggerDeadline)
	})
	sess.mu.Unlock()

	slog.Info("poll started",
		"group_id", groupID,
		"session_id", sess.ID,
		"options", len(options),
		"eligible", len(eligible),
		"closes_at", deadline,
	)
	return sess, nil
}

// CastVote records or replaces a voter's choice and returns the chosen
// option label. The open-state check and the ledger write happen under
// the session lock as one step, so a vote can never land after closure.
// A voter's repeat vote overwrites the previous one; the ledger never
// grows from a vote change.
func (e *Engine) CastVote(groupID, sessionID, voterID string, optionIndex int) (string, error) {
	sess, ok := e.store.Get(groupID, sessionID)
	if !ok {
		e.rejectVote(voterID, "this poll has already ended")
		return "", models.ErrSessionClosed
	}

	sess.mu.Lock()
	if sess.state != stateOpen {
		sess.mu.Unlock()
		e.rejectVote(voterID, "this poll has already ended")
		return "", models.ErrSessionClosed
	}
	if len(sess.eligible) > 0 {
		if _, ok := sess.eligible[voterID]; !ok {
			sess.mu.Unlock()
			e.rejectVote(voterID, "you are not eligible to vote in this poll")
			return "", models.ErrNotEligible
		}
	}
	if optionIndex < 0 || optionIndex >= len(sess.Options) {
		sess.mu.Unlock()
		e.rejectVote(voterID, "that option does not exist")
		return "", models.ErrInvalidOption
	}

	sess.votes[voterID] = optionIndex
	label := sess.Options[optionIndex]
	allVoted := len(sess.eligible) > 0 && len(sess.votes) == len(sess.eligible)
	sess.mu.Unlock()

	if err := e.gw.AcknowledgeVote(voterID, label); err != nil {
		slog.Warn("vote acknowledgment failed", "session_id", sessionID, "error", err)
	}

	if allVoted {
		// Lost races with the timer or a manual close are fine here; the
		// vote itself was recorded while the session was still open.
		_ = e.close(groupID, sessionID, triggerAllVoted)
	}
	return label, nil
}

// CloseSession is the administrative override. It is idempotent: closing
// an already-closed (and therefore already-removed) session is a no-op.
func (e *Engine) CloseSession(groupID, sessionID string) error {
	err := e.close(groupID, sessionID, triggerManual)
	if err == models.ErrSessionClosed {
		return nil
	}
	return err
}

// ListActive returns the group's live sessions.
func (e *Engine) ListActive(groupID string) []*Session {
	return e.store.ListByGroup(groupID)
}

// close runs the closing → closed transition exactly once per session.
// The first trigger to observe the open state wins; every other caller
// gets ErrSessionClosed. Result compilation and publication happen
// outside the session lock — the closing state already blocks all
// ledger mutation.
func (e *Engine) close(groupID, sessionID string, trigger closeTrigger) error {
	sess, ok := e.store.Get(groupID, sessionID)
	if !ok {
		return models.ErrSessionClosed
	}

	sess.mu.Lock()
	if sess.state != stateOpen {
		sess.mu.Unlock()
		return models.ErrSessionClosed
	}
	sess.state = stateClosing
	if trigger != triggerDeadline && sess.timer != nil {
		sess.timer.Stop()
	}
	votes := make(map[string]int, len(sess.votes))
	for voter, idx := range sess.votes {
		votes[voter] = idx
	}
	eligibleCount := len(sess.eligible)
	sess.mu.Unlock()

	res := CompileResults(sess.Question, sess.Options, votes, eligibleCount)

	// Publication is best-effort with a single retry; a dead rendering
	// collaborator must not leave the session in limbo.
	if err := e.gw.RenderSessionClosed(sess.Ref, res); err != nil {
		slog.Warn("result publish failed, retrying once", "group_id", groupID, "session_id", sessionID, "error", err)
		if err := e.gw.RenderSessionClosed(sess.Ref, res); err != nil {
			slog.Error("result publish failed, dropping", "group_id", groupID, "session_id", sessionID, "error", err)
		}
	}

	sess.mu.Lock()
	sess.state = stateClosed
	sess.mu.Unlock()
	e.store.Remove(groupID, sessionID)

	slog.Info("poll closed",
		"group_id", groupID,
		"session_id", sessionID,
		"trigger", trigger.String(),
		"votes", len(votes),
	)
	return nil
}

func (e *Engine) rejectVote(voterID, reason string) {
	if err := e.gw.RejectVote(voterID, reason); err != nil {
		slog.Warn("vote rejection notice failed", "voter_id", voterID, "error", err)
	}
}
