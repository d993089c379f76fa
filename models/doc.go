// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types shared across
the bot.

# Request Types

Types for parsing incoming JSON:

  - StartPollRequest: channel_id, question, options, duration_seconds
  - CastVoteRequest: voter_id, option_index
  - OptInRequest / OptOutRequest: standup participation
  - SummaryConfigRequest: channel_id, hour, minute

# Response Types

  - StartPollResponse: session_id, eligible_count, closes_at
  - CastVoteResponse: option, message
  - ListPollsResponse: active sessions with progress counts
  - ErrorResponse: error, message

# Domain Types

  - MessageRef: opaque handle to a rendered chat message
  - Member: group member with a Bot flag
  - Results: immutable tally record produced at session close
  - StandupEntry: one user's did/plan/blockers answers
  - SummaryConfig: per-group daily summary schedule

# Errors

Sentinel errors form the rejection vocabulary of the voting engine:

	ErrSessionClosed   // vote or close after the session ended
	ErrNotEligible     // voter outside the eligibility snapshot
	ErrInvalidOption   // option index out of range

ValidationError carries a field name and reason for malformed requests.
*/
package models
