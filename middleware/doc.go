// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by all handlers.

  - WithLogging: request start/completion logging via slog
  - JSONResponse / ErrorResponse: JSON encoding with consistent shape
  - ParseJSONBody: request body decoding
*/
package middleware
