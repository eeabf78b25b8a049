package project

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrNotProjectOwner = errors.New("only the owning employee can modify this project")
)
