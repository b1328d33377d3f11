package service

import "errors"

var (
	ErrInvalid      = errors.New("invalid")
	ErrUnauthorized = errors.New("unauthorized")
	ErrExtraction   = errors.New("extraction failed")
)
