// Package model defines the records stored by each vertical and the
// request payloads accepted at the HTTP boundary.
//
// Records serialize field-for-field: the JSON representation of a record
// is its identifier plus every declared column.
package model

import "github.com/go-playground/validator/v10"

// validate is shared by every payload; validator.Validate is safe for
// concurrent use and caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())
