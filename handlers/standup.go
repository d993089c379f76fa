// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/huddle/middleware"
	"github.com/danielhkuo/huddle/models"
	"github.com/danielhkuo/huddle/standup"
)

type StandupHandler struct {
	svc *standup.Service
}

func NewStandupHandler(svc *standup.Service) *StandupHandler {
	return &StandupHandler{svc: svc}
}

// OptIn handles POST /groups/{group}/standup/optin
func (h *StandupHandler) OptIn(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("group")
	if groupID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "group is required")
		return
	}

	var req models.OptInRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.UserID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}
	if req.DisplayName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "display_name is required")
		return
	}

	if err := h.svc.Store().OptIn(groupID, req.UserID, req.DisplayName); err != nil {
		slog.Error("failed to opt in", "group_id", groupID, "user_id", req.UserID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to opt in")
		return
	}

	slog.Info("standup opt-in", "group_id", groupID, "user_id", req.UserID)
	w.WriteHeader(http.StatusCreated)
}

// OptOut handles POST /groups/{group}/standup/optout
func (h *StandupHandler) OptOut(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("group")
	if groupID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "group is required")
		return
	}

	var req models.OptOutRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.UserID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}

	if err := h.svc.Store().OptOut(groupID, req.UserID); err != nil {
		slog.Error("failed to opt out", "group_id", groupID, "user_id", req.UserID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to opt out")
		return
	}

	w.WriteHeader(http.StatusOK)
}

// SetConfig handles PUT /groups/{group}/standup/config
func (h *StandupHandler) SetConfig(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("group")
	if groupID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "group is required")
		return
	}

	var req models.SummaryConfigRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ChannelID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "channel_id is required")
		return
	}
	if req.Hour < 0 || req.Hour > 23 || req.Minute < 0 || req.Minute > 59 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "hour must be 0-23 and minute 0-59")
		return
	}

	cfg := models.SummaryConfig{
		GroupID:   groupID,
		ChannelID: req.ChannelID,
		Hour:      req.Hour,
		Minute:    req.Minute,
	}
	if err := h.svc.Store().SetConfig(cfg); err != nil {
		slog.Error("failed to save summary config", "group_id", groupID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save config")
		return
	}

	slog.Info("summary config updated", "group_id", groupID, "hour", req.Hour, "minute", req.Minute)
	middleware.JSONResponse(w, http.StatusOK, cfg)
}

// Collect handles POST /groups/{group}/standup/collect
// Kicks off a DM question round in the background; a round blocks on
// per-prompt reply timeouts and can take minutes.
func (h *StandupHandler) Collect(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("group")
	if groupID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "group is required")
		return
	}

	go func() {
		if _, err := h.svc.RunRound(context.Background(), groupID); err != nil {
			slog.Error("standup round failed", "group_id", groupID, "error", err)
		}
	}()

	w.WriteHeader(http.StatusAccepted)
}

// TriggerSummary handles POST /groups/{group}/standup/summary
func (h *StandupHandler) TriggerSummary(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("group")
	if groupID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "group is required")
		return
	}

	if err := h.svc.SendSummary(groupID); err != nil {
		if errors.Is(err, standup.ErrNoSummaryChannel) {
			middleware.ErrorResponse(w, http.StatusConflict, err.Error())
			return
		}
		slog.Error("failed to send summary", "group_id", groupID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to send summary")
		return
	}

	w.WriteHeader(http.StatusOK)
}
