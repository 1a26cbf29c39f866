package services

import "errors"

// Sentinel errors mapped to HTTP statuses at the controller boundary
var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("validation failed")
)
