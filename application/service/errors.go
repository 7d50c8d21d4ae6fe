package service

import "errors"

// Service errors.
var (
	ErrOwnerRequired = errors.New("owner id is required")
	ErrNotFound      = errors.New("not found")
	ErrInvalidImport = errors.New("invalid import")
)
