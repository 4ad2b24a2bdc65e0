package service

import "errors"

var (
	ErrNotFound      = errors.New("record not found")
	ErrForbidden     = errors.New("unauthorized")
	ErrValidation    = errors.New("missing required fields")
	ErrNotConfigured = errors.New("service not configured")
)

const dateLayout = "2006-01-02"
