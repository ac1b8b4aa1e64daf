// Package session owns the client-side authentication session.
//
// # Overview
//
// Two cooperating pieces live here:
//
//  1. Store — durable persistence of the session pair (opaque server-issued
//     token + user profile) in a local sqlite database, surviving process
//     restarts. The pair is written and cleared atomically: the store never
//     exposes a token without its profile or vice versa.
//  2. Manager — the process-wide source of truth for "who is logged in
//     right now". It is constructed once at application start, optimistically
//     trusts a persisted profile, and mediates all login/register/logout
//     calls to the auth gateway. Using a Manager after Close is a
//     programming error and panics.
//
// Concurrent processes sharing the same database file are not coordinated:
// the last writer wins. This is a documented limitation, not a bug.
package session
