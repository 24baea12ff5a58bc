package usecase

import "errors"

// ErrCommentNotFound is returned when no comment matches the lookup.
var ErrCommentNotFound = errors.New("comment not found")
