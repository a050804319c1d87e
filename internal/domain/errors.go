package domain

import "errors"

var (
	// ErrNotReady signals that the records behind a feature have not loaded.
	ErrNotReady = errors.New("records not loaded")
	// ErrInvalidTheme signals a theme value other than light or dark.
	ErrInvalidTheme = errors.New("invalid theme")
)
