package tracking

// TrackError is a custom error type for tracking-controller errors
type TrackError string

// Error implements the error interface
func (e TrackError) Error() string {
	return string(e)
}

// Define errors
const (
	// ErrSessionNotFound covers missing and soft-deleted sessions
	ErrSessionNotFound TrackError = "session not found"

	// ErrNotAuthorized means the identity is neither the owner nor the assigned walker
	ErrNotAuthorized TrackError = "identity is not a participant in this session"

	// ErrNoActiveSession means the session is not in a trackable state
	ErrNoActiveSession TrackError = "session has no active walk to track"

	ErrNilConfig      TrackError = "config cannot be nil"
	ErrNilSessionRepo TrackError = "session repository cannot be nil"
	ErrNilProfileRepo TrackError = "profile repository cannot be nil"
)
