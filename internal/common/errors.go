package common

import "errors"

var (
	ErrorNotFound     = errors.New("not found")
	ErrNotLoggedIn    = errors.New("not logged in")
	ErrForbidden      = errors.New("not allowed for this role")

	// Validation errors.
	ErrorValidation = errors.New("validation error")

	// ErrViewUnmounted is returned by loads started on an unmounted view.
	ErrViewUnmounted = errors.New("view unmounted")
)
