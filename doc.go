// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Huddle bot server.

Huddle runs anonymous timed polls and daily standup collection for
organizational groups on a chat platform.

# Starting the Server

The server reads configuration from a .env file, environment variables
or CLI flags:

	go run main.go

Or with flags:

	go run main.go -p 3418 -t postgres -d "postgres://..."

# Configuration

  - PORT (-p): server port (default: 3418)
  - DATABASE_URL (-d): connection string (default: huddle.db for sqlite)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - REPLY_TIMEOUT (-reply-timeout): standup DM reply timeout in seconds

# Architecture

The server uses dependency injection throughout:

  - poll: the voting session engine (store, lifecycle, results)
  - standup: DM answer collection, persistence and daily summaries
  - gateway: chat-platform interface consumed by both
  - handlers: HTTP request handlers over the engine and service
  - router: route definitions using Go 1.22+ routing
  - middleware: logging and JSON helpers
  - models: request/response and domain types
  - db: schema creation
  - cliparse: configuration parsing

Poll sessions are in-memory and ephemeral; only standup state is
persisted. See package documentation for each component.
*/
package main
