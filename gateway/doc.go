// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package gateway declares the chat-platform interface the bot consumes.

The engine never talks to a chat platform directly; it is handed a Gateway
at construction. A production binding adapts a concrete platform client to
this interface, and tests use the fake in testutil.

Voter-facing calls (AcknowledgeVote, RejectVote) are private per-voter
feedback and must never reveal running tallies while a poll is open.
*/
package gateway
