package derive

import "errors"

var (
	// ErrEmptyInput indicates the root phrase (or derivation secret) is empty
	// after normalization.
	ErrEmptyInput = errors.New("empty input after normalization")
	// ErrEmptyLabel indicates a custom label with no text.
	ErrEmptyLabel = errors.New("empty custom label")
	// ErrReservedLabel indicates a custom label whose encoded bytes would
	// collide with a reserved tag.
	ErrReservedLabel = errors.New("label collides with a reserved tag")
	// ErrInvalidWordCount indicates a word count outside [1, MaxWordCount].
	ErrInvalidWordCount = errors.New("invalid word count")
	// ErrSessionDestroyed indicates the session's key material has already
	// been wiped.
	ErrSessionDestroyed = errors.New("session destroyed")
)
