// Package errs defines the error types returned to API clients.
//
// Every failure leaving the HTTP layer is rendered from an *HTTPError so
// clients always receive the same JSON shape: a machine code, a message,
// the status, and optional field-level errors.
package errs
