// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package poll implements the anonymous voting session engine.

# Lifecycle

A session moves open → closing → closed exactly once. Three triggers race
to start the transition:

  - the deadline timer firing
  - a vote completing full participation (only when eligibility is enforced)
  - a manual close request

Whichever trigger first observes the open state wins; the others find a
non-open state and back off. The deadline timer is stopped the moment a
non-timer trigger wins, and a timer callback that fires late is a no-op.

# Concurrency

The Store guards the cross-session registry with a single RWMutex; each
Session guards its own state and ledger with its own mutex, so votes on
different sessions never block each other. Slow work — membership
listing, message rendering, result publication — always happens outside
the session lock. The open-state check and the ledger write for a vote
are a single critical section, which is what keeps a vote from landing
after closure.

# Results

CompileResults is a pure function from (options, ledger) to an immutable
record: per-option counts in option order, the winner set (all options
tied at the maximum), a no-votes flag, and the participation fraction
when the eligible count is known.

# Eligibility

The voter set is snapshotted once at creation from the channel's member
list, excluding bots. A lookup failure degrades to an empty set: the
session still runs, but closes only on its deadline.
*/
package poll
