package chat

import "errors"

var (
	ErrEmptyMessage  = errors.New("message is empty")
	ErrReplyInFlight = errors.New("a reply is already in flight")
)
