package model

import "errors"

var (
	// ErrNotFound is returned by stores when no matching record exists.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned by UserStore.Create when the normalized
	// email is already taken.
	ErrDuplicateEmail = errors.New("email already taken")
)
