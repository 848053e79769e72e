package service

import "errors"

// Validation limits enforced before anything reaches the store.
const (
	MaxUsernameLen = 16
	MaxTitleLen    = 50
	MaxContentLen  = 2000
)

var (
	ErrInvalidCredentials = errors.New("service: invalid username or password")
	ErrUsernameTaken      = errors.New("service: username already taken")
	ErrUsernameRequired   = errors.New("service: username is required")
	ErrUsernameTooLong    = errors.New("service: username is too long")
	ErrPasswordRequired   = errors.New("service: password is required")
	ErrTitleRequired      = errors.New("service: thread title is required")
	ErrTitleTooLong       = errors.New("service: thread title is too long")
	ErrContentRequired    = errors.New("service: content is required")
	ErrContentTooLong     = errors.New("service: content is too long")
	ErrNotThreadCreator   = errors.New("service: only the thread creator may delete it")
)
