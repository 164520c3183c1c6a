package store

import "errors"

// Sentinel errors returned while loading the portal registry. Any of them
// means the static portal definitions are malformed and startup must abort.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrEmptyRegistry is returned when no portal definition was found.
	ErrEmptyRegistry = errors.New("no portal definitions found")

	// ErrDecodingPortal is returned when a definition file cannot be read
	// or decoded.
	ErrDecodingPortal = errors.New("error decoding portal definition")

	// ErrPortalIDMismatch is returned when the portalId inside a definition
	// differs from the name of the directory holding it.
	ErrPortalIDMismatch = errors.New("portal id does not match its directory")

	// ErrDuplicatePortalDefinition is returned when one portal directory holds
	// more than one definition file.
	ErrDuplicatePortalDefinition = errors.New("portal has more than one definition file")
)
