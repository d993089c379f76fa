// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/huddle/handlers"
	"github.com/danielhkuo/huddle/middleware"
	"github.com/danielhkuo/huddle/poll"
	"github.com/danielhkuo/huddle/standup"
)

func NewRouter(engine *poll.Engine, svc *standup.Service) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(engine)
	standupHandler := handlers.NewStandupHandler(svc)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Voting sessions
	mux.HandleFunc("POST /groups/{group}/polls", middleware.WithLogging(pollHandler.StartPoll))
	mux.HandleFunc("GET /groups/{group}/polls", middleware.WithLogging(pollHandler.ListPolls))
	mux.HandleFunc("POST /groups/{group}/polls/{id}/votes", middleware.WithLogging(pollHandler.CastVote))
	mux.HandleFunc("POST /groups/{group}/polls/{id}/close", middleware.WithLogging(pollHandler.ClosePoll))

	// Standup collection
	mux.HandleFunc("POST /groups/{group}/standup/optin", middleware.WithLogging(standupHandler.OptIn))
	mux.HandleFunc("POST /groups/{group}/standup/optout", middleware.WithLogging(standupHandler.OptOut))
	mux.HandleFunc("PUT /groups/{group}/standup/config", middleware.WithLogging(standupHandler.SetConfig))
	mux.HandleFunc("POST /groups/{group}/standup/collect", middleware.WithLogging(standupHandler.Collect))
	mux.HandleFunc("POST /groups/{group}/standup/summary", middleware.WithLogging(standupHandler.TriggerSummary))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("huddle API v1"))
	})

	return mux
}
