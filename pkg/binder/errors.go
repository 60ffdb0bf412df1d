package binder

import "errors"

// Common binding errors
var (
	// ErrBinderNotApplicable means the request is not in the binder's format.
	// Callers trying several binders skip to the next one.
	ErrBinderNotApplicable = errors.New("binder not applicable")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrInvalidSignals       = errors.New("invalid datastar signals")
	ErrInvalidPath          = errors.New("invalid path parameter")
)
