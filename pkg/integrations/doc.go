// Package integrations provides the shared HTTP layer for REST API clients.
//
// # Overview
//
// The [Client] type sends GET requests with a fixed set of default headers,
// classifies response statuses into the sentinel errors below, retries
// transient failures, and reports every attempt to the HTTP hooks in
// [observability].
//
// API-specific clients embed a Client:
//
//   - [github]: GitHub REST API (repositories, issue search, commits)
//
// # Errors
//
//   - [ErrNotFound]: 404
//   - [ErrForbidden]: 403 (wrapping [ErrRateLimited] when the quota is exhausted)
//   - [ErrRateLimited]: 429, retried
//   - [ErrNetwork]: transport failures and 5xx (retried) and other statuses
//
// Transport errors are wrapped, not flattened, so errors.Is(err,
// context.Canceled) still holds when a request was interrupted.
//
// [github]: github.com/matzehuels/emailfinder/pkg/integrations/github
// [observability]: github.com/matzehuels/emailfinder/pkg/observability
package integrations
