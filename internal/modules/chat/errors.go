package chat

import "errors"

var (
	ErrNotFound       = errors.New("conversation not found")
	ErrNotParticipant = errors.New("user is not a participant of this conversation")
	ErrValidation     = errors.New("invalid chat request")
)
