// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment.

# Precedence

CLI flags take priority over environment variables:

 1. CLI flag (e.g., -p 3418)
 2. Environment variable (e.g., PORT=3418)
 3. Default value

# Settings

  - Port (-p, PORT): server port, default 3418
  - DatabaseURL (-d, DATABASE_URL): connection string; defaults to the
    local file huddle.db when the type is sqlite, required for postgres
  - DatabaseType (-t, DATABASE_TYPE): sqlite (default) or postgres
  - ReplyTimeout (-reply-timeout, REPLY_TIMEOUT): seconds to wait for
    each standup DM reply, default 120
*/
package cliparse
