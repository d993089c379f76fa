// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - PollHandler: voting session lifecycle (start, vote, close, list)
  - StandupHandler: opt-in management, collection rounds, summaries

# Poll Routes

	POST /groups/{group}/polls            → StartPoll
	POST /groups/{group}/polls/{id}/votes → CastVote
	POST /groups/{group}/polls/{id}/close → ClosePoll (idempotent)
	GET  /groups/{group}/polls            → ListPolls

Error mapping: validation failures are 400, an ineligible voter is 403,
a vote on an ended (or unknown) poll is 409.

# Standup Routes

	POST /groups/{group}/standup/optin    → OptIn
	POST /groups/{group}/standup/optout   → OptOut
	PUT  /groups/{group}/standup/config   → SetConfig
	POST /groups/{group}/standup/collect  → Collect (async, 202)
	POST /groups/{group}/standup/summary  → TriggerSummary
*/
package handlers
