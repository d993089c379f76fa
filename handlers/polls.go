// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/huddle/middleware"
	"github.com/danielhkuo/huddle/models"
	"github.com/danielhkuo/huddle/poll"
)

type PollHandler struct {
	engine *poll.Engine
}

func NewPollHandler(engine *poll.Engine) *PollHandler {
	return &PollHandler{engine: engine}
}

// StartPoll handles POST /groups/{group}/polls
func (h *PollHandler) StartPoll(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("group")
	if groupID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "group is required")
		return
	}

	var req models.StartPollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ChannelID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "channel_id is required")
		return
	}

	duration := time.Duration(req.DurationSeconds) * time.Second
	sess, err := h.engine.StartSession(groupID, req.ChannelID, req.Question, req.Options, duration)
	if err != nil {
		if models.IsValidation(err) {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to start poll", "group_id", groupID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start poll")
		return
	}

	_, eligible := sess.Progress()
	middleware.JSONResponse(w, http.StatusCreated, models.StartPollResponse{
		SessionID:     sess.ID,
		EligibleCount: eligible,
		ClosesAt:      sess.Deadline,
	})
}

// CastVote handles POST /groups/{group}/polls/{id}/votes
func (h *PollHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("group")
	sessionID := r.PathValue("id")
	if groupID == "" || sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "group and poll id are required")
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.VoterID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter_id is required")
		return
	}

	label, err := h.engine.CastVote(groupID, sessionID, req.VoterID, req.OptionIndex)
	switch err {
	case nil:
	case models.ErrSessionClosed:
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
		return
	case models.ErrNotEligible:
		middleware.ErrorResponse(w, http.StatusForbidden, err.Error())
		return
	case models.ErrInvalidOption:
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	default:
		slog.Error("failed to cast vote", "group_id", groupID, "session_id", sessionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CastVoteResponse{
		Option:  label,
		Message: "Vote recorded",
	})
}

// ClosePoll handles POST /groups/{group}/polls/{id}/close
// Idempotent: closing an already-finished poll succeeds without effect.
func (h *PollHandler) ClosePoll(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("group")
	sessionID := r.PathValue("id")
	if groupID == "" || sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "group and poll id are required")
		return
	}

	if err := h.engine.CloseSession(groupID, sessionID); err != nil {
		slog.Error("failed to close poll", "group_id", groupID, "session_id", sessionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to close poll")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ClosePollResponse{Closed: true})
}

// ListPolls handles GET /groups/{group}/polls
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("group")
	if groupID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "group is required")
		return
	}

	sessions := h.engine.ListActive(groupID)
	list := make([]models.ActiveSession, 0, len(sessions))
	for _, sess := range sessions {
		voted, eligible := sess.Progress()
		list = append(list, models.ActiveSession{
			SessionID:     sess.ID,
			Question:      sess.Question,
			VotedCount:    voted,
			EligibleCount: eligible,
			ClosesIn:      humanize.Time(sess.Deadline),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListPollsResponse{Sessions: list})
}
