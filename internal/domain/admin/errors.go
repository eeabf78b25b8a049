package admin

import "errors"

var (
	ErrProfileNotFound = errors.New("admin profile not found")
	ErrUsernameExists  = errors.New("username already taken")
)
