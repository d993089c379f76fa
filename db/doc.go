// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db provides database schema creation.

# Tables

  - standup_optin: users enrolled in the daily question round
  - standup_entry: collected answers, one row per (group, user)
  - standup_config: per-group summary channel and schedule

Poll sessions are deliberately absent: they are ephemeral in-memory
state and do not survive a restart.

# Usage

	if err := db.CreateSchema(dbConn); err != nil {
		// handle error
	}

CreateSchema is idempotent (IF NOT EXISTS) and uses portable SQL so the
sqlite default and postgres both work unchanged.
*/
package db
