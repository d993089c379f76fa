// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package standup collects daily standup answers over DM and posts a
per-group summary.

# Collection

Collect asks each user a fixed question sequence (did, plan, blockers)
over direct messages. Every prompt has an independent reply timeout;
silence records "no response" for that prompt and the sequence continues.
RunRound fans out over all opted-in users concurrently.

A user's repeat submission replaces their earlier one: the store keeps a
single entry per (group, user).

# Summary

SendSummary formats the group's entries into one report and posts it to
the configured channel, with a bounded number of retries. Entries are
cleared only after a successful post. The Scheduler fires summaries at
each group's configured local time, once per day, using a minute-interval
due check with a small send window.
*/
package standup
