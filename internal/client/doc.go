// Package client is a typed HTTP client for the protmotif API, used by the
// CLI's remote commands.
//
// Every request carries the caller's X-User-ID header and a context for
// cancellation and deadlines. Error responses are decoded back into domain
// errors by status, so 400, 404 and 409 keep their kinds on the client side.
package client
