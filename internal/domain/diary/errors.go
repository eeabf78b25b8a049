package diary

import "errors"

var ErrEntryNotFound = errors.New("diary entry not found")
