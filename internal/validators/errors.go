package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidPortalID    = errors.New("invalid portal id")
	ErrInvalidParent      = errors.New("invalid parent config")
	ErrInvalidMoreInfoURL = errors.New("invalid more info url")
	ErrEmptyLinkTitle     = errors.New("link title is required")
	ErrInvalidLinkHref    = errors.New("invalid link href")
)
