package conversation

import "errors"

// Rejection reasons surfaced by the edit engine. Every rejected operation
// leaves history, memory window and audio cache exactly as they were.
var (
	// ErrInvalidIndex means an operation referenced an out-of-range or
	// protected (greeting) position.
	ErrInvalidIndex = errors.New("invalid message index")

	// ErrInvalidRole means an operation targeted a message whose role does
	// not allow it, e.g. editing an assistant message.
	ErrInvalidRole = errors.New("invalid message role")

	// ErrInvalidState means the conversation is too short or malformed for
	// the requested operation, e.g. regenerating with no exchange yet.
	ErrInvalidState = errors.New("invalid conversation state")

	// ErrNotFound means a mutating call referenced a bot with no
	// conversation. Mutations never create state as a side effect.
	ErrNotFound = errors.New("conversation not found")

	// ErrVoiceDisabled means speech synthesis was requested for a bot whose
	// voice is turned off.
	ErrVoiceDisabled = errors.New("voice disabled for bot")
)
