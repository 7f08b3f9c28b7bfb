// Package validation binds request data and validates it.
//
// Rules live in `validate` struct tags (go-playground/validator) or in a
// payload's own Validate method; failures are converted into field-level
// errors the client can act on.
package validation
