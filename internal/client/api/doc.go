// Package api contains the HTTP client for the planmate backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): the
//     credential exchange (Register/Login), a liveness probe (Ping), and
//     one method per domain endpoint for projects and tasks.
//  2. A concrete HTTP implementation (see HTTPClient) that reads the
//     session token from a TokenSource before every domain call, attaches
//     it as a bearer authorization header when present, and maps HTTP
//     status codes to sentinel errors.
//
// Every domain method is a direct passthrough: request in, decoded response
// out. There is no caching, no request deduplication, and no retry.
// Authorization failures are surfaced as common.ErrUnauthorized without any
// local session teardown; handling an invalidated token is left to the
// caller (a known gap, kept deliberately visible).
//
// # Error Handling
//
// Failures map onto sentinel errors that callers match with errors.Is:
// common.ErrUnauthorized, common.ErrNotFound, common.ErrConflict,
// common.ErrUnavailable.
package api
