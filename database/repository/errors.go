package repository

import "errors"

// Sentinel errors returned by repositories. Services translate these into
// the typed errors the REST layer maps to status codes.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)
