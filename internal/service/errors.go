package service

import "errors"

var (
	ErrInvalid       = errors.New("invalid")
	ErrNotFound      = errors.New("not found")
	ErrFetchFailed   = errors.New("repository fetch failed")
	ErrAnalyzeFailed = errors.New("code analysis failed")
)
