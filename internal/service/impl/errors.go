package impl

import "errors"

var (
	ErrEmptyPassword   = errors.New("empty password")
	ErrEmptyCredential = errors.New("empty credential(s)")
	ErrEmptySecret     = errors.New("empty signing secret")
	ErrPasswordLength  = errors.New("password too short")
)
