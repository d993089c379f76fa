// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes using Go 1.22+ method routing.

NewRouter wires the poll engine and standup service into their handlers
and registers all routes with logging middleware. See package handlers
for the route list.
*/
package router
