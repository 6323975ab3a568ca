package client

import "errors"

var (
	ErrAccountExists  = errors.New("account already exists")
	ErrUnknownBackend = errors.New("unknown auth backend")
	ErrNoTokenSecret  = errors.New("token secret must be provided")
)
