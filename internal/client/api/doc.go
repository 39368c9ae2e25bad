// Package api implements the HTTP client for the champs backend.
//
// All calls go through a single request helper that attaches the bearer
// token, sends JSON and normalizes failures: transport problems wrap
// common.ErrNetwork, non-2xx responses become *ServerError carrying the
// server's message when one can be decoded. Authenticated calls fail fast
// with common.ErrNotAuthenticated before any network I/O when no plausible
// token is available.
package api
