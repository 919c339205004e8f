package clout

import "errors"

// Lifecycle errors indicate misuse of the init/shutdown state machine.
// Both are recoverable and leave the installed state unchanged; callers
// match them with errors.Is.
var (
	// ErrAlreadyInitialized indicates Done was called while clout is
	// already initialised.
	ErrAlreadyInitialized = errors.New("clout is already initialised")

	// ErrNotInitialized indicates Shutdown was called while clout is not
	// initialised.
	ErrNotInitialized = errors.New("clout has not been initialised")
)
