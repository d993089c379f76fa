// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Session option count bounds
const (
	MinOptions = 2
	MaxOptions = 5
)

// NoResponse is recorded for a standup prompt the user never replied to.
const NoResponse = "no response"

// Request types

type StartPollRequest struct {
	ChannelID       string   `json:"channel_id"`
	Question        string   `json:"question"`
	Options         []string `json:"options"`
	DurationSeconds int      `json:"duration_seconds"`
}

type CastVoteRequest struct {
	VoterID     string `json:"voter_id"`
	OptionIndex int    `json:"option_index"`
}

type OptInRequest struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

type OptOutRequest struct {
	UserID string `json:"user_id"`
}

type SummaryConfigRequest struct {
	ChannelID string `json:"channel_id"`
	Hour      int    `json:"hour"`
	Minute    int    `json:"minute"`
}

// Response types

type StartPollResponse struct {
	SessionID     string    `json:"session_id"`
	EligibleCount int       `json:"eligible_count"`
	ClosesAt      time.Time `json:"closes_at"`
}

type CastVoteResponse struct {
	Option  string `json:"option"`
	Message string `json:"message"`
}

type ClosePollResponse struct {
	Closed bool `json:"closed"`
}

// ActiveSession is one row of the session list.
type ActiveSession struct {
	SessionID     string `json:"session_id"`
	Question      string `json:"question"`
	VotedCount    int    `json:"voted_count"`
	EligibleCount int    `json:"eligible_count"`
	ClosesIn      string `json:"closes_in"`
}

type ListPollsResponse struct {
	Sessions []ActiveSession `json:"sessions"`
}

// Domain types

// MessageRef is an opaque handle to a rendered chat message, kept so the
// message can be edited or replied to later.
type MessageRef struct {
	ChannelID string `json:"channel_id"`
	MessageID string `json:"message_id"`
}

// Member is a chat-platform group member as seen by the eligibility
// snapshot. Bot accounts never become eligible voters.
type Member struct {
	ID          string
	DisplayName string
	Bot         bool
}

// Results is the immutable record produced when a session closes. It is a
// pure function of the session's options and ledger: identical inputs
// always produce an identical record.
type Results struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	// Counts holds per-option vote totals in original option order.
	Counts []int `json:"counts"`
	// Winners holds the labels of every option tied at the maximum count,
	// in original option order. Empty when no votes were cast.
	Winners    []string `json:"winners"`
	NoVotes    bool     `json:"no_votes"`
	VotedCount int      `json:"voted_count"`
	// EligibleCount is zero when eligibility was not enforced; in that
	// case ParticipationKnown is false and Participation is meaningless.
	EligibleCount      int     `json:"eligible_count"`
	Participation      float64 `json:"participation"`
	ParticipationKnown bool    `json:"participation_known"`
}

// StandupEntry is one user's answers for the current standup cycle.
type StandupEntry struct {
	ID          string    `json:"id"`
	GroupID     string    `json:"group_id"`
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Did         string    `json:"did"`
	Plan        string    `json:"plan"`
	Blockers    string    `json:"blockers"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// SummaryConfig is a group's daily summary schedule.
type SummaryConfig struct {
	GroupID   string `json:"group_id"`
	ChannelID string `json:"channel_id"`
	Hour      int    `json:"hour"`
	Minute    int    `json:"minute"`
	// LastSentDate is the YYYY-MM-DD date of the last posted summary,
	// guarding against double posts within the same day.
	LastSentDate string `json:"last_sent_date"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
