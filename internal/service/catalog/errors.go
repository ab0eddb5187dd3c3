package catalog

import "errors"

var (
	// ErrInternal is returned when the catalog cannot be listed.
	ErrInternal = errors.New("catalog.service: internal error")
)
