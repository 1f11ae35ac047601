// Package neobookings is a client for the Neobookings hotel-booking API.
//
// It provides the pieces every tool call is built from: environment-sourced
// configuration and credentials, the per-request envelope (request id,
// timestamp, language), a POST client that authenticates against
// /AuthenticatorRQ and attaches the bearer token to subsequent calls, typed
// response structures for the endpoints the toolboxes use, and the error
// taxonomy (ValidationError, AuthError, APIError) that handlers classify at
// their boundary.
//
// A Client is scoped to a single tool invocation: each invocation
// authenticates fresh, performs exactly one domain call, and discards the
// token. Tokens are never cached across invocations.
package neobookings
