package service

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is the root of every error caused by malformed static
	// portal configuration. Such errors are startup defects.
	ErrConfiguration = errors.New("portal configuration error")

	ErrMissingPortalID       = fmt.Errorf("%w: portal id is missing", ErrConfiguration)
	ErrBasePortalNotFound    = fmt.Errorf("%w: base portal is not registered", ErrConfiguration)
	ErrDefaultPortalNotFound = fmt.Errorf("%w: default portal is not registered", ErrConfiguration)

	ErrPortalNotFound = errors.New("portal not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
