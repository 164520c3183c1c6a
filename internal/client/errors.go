package client

import "errors"

var (
	ErrNoAdapter        = errors.New("portal adapter is not provided")
	ErrTooManyArguments = errors.New("expected at most one portal id")
)
