package service

import "errors"

var (
	ErrInvalidRequest     = errors.New("invalid_request")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrUnsupportedExport  = errors.New("unsupported export type")
	ErrUnsupportedFormat  = errors.New("unsupported export format")
)
