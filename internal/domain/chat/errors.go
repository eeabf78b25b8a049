package chat

import "errors"

var (
	ErrGroupNotFound  = errors.New("chat group not found")
	ErrNotGroupMember = errors.New("access denied: you are not a member of this group")
)
