package service

import "errors"

var (
	// ErrNotFound covers both true absence and entities owned by another
	// user. The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("not found")

	ErrEmailTaken        = errors.New("a user with this email already exists")
	ErrNameTaken         = errors.New("an entry with this name already exists")
	ErrEmailNotFound     = errors.New("no account found with this email address")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrInvalidToken      = errors.New("invalid token")
)
