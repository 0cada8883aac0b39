// Package client contains the client-side building blocks that talk to the
// FarmChainX backend and bootstrap local state.
//
// # Overview
//
// The package provides:
//  1. Per-resource API contracts (AuthAPI, CropAPI, BatchAPI, ListingAPI,
//     OrderAPI, SupportAPI, AdminAPI) combined into the API interface.
//  2. A concrete REST implementation (see HTTPClient) built on one configured
//     *http.Client: base URL, JSON headers, a fixed timeout, a request id on
//     every call and a logging round tripper.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations) for
//     the CLI, wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Failed calls are reported as sentinel errors that callers can match with
// errors.Is: ErrUnavailable for transport failures and ErrBadRequest,
// ErrUnauthorized, ErrNotFound, ErrConflict or ErrServer for HTTP statuses.
// The HTTP variants are carried by *StatusError, which also exposes the
// message the server sent (see ServerMessage).
//
// Each endpoint method is the single place where the backend's response shape
// is normalised. Login is the notable case: the backend answers bad
// credentials with a bare string body and a 2xx status, which Login reports
// as LoginReply.Rejection rather than as an error.
//
// # Concurrency
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation.
package client
