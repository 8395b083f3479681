package matching

// MatchError is a custom error type for matching-engine errors
type MatchError string

// Error implements the error interface
func (e MatchError) Error() string {
	return string(e)
}

// Define errors
const (
	// ErrSessionNotFound covers missing and soft-deleted sessions
	ErrSessionNotFound MatchError = "session not found"

	// ErrInvalidState means the action is not allowed from the session's current status
	ErrInvalidState MatchError = "session is not in a valid state for this action"

	// ErrSessionUnavailable is the losing side of a matching race: the
	// session moved on between the caller's read and their write
	ErrSessionUnavailable MatchError = "session is no longer available"

	// ErrNotAuthorized means the caller lacks the role for the action
	ErrNotAuthorized MatchError = "caller is not allowed to perform this action"

	// ErrDuplicateApplication means the walker already applied
	ErrDuplicateApplication MatchError = "walker has already applied to this session"

	// ErrOwnerApplication means the owner tried to walk their own session
	ErrOwnerApplication MatchError = "owner cannot apply to their own session"

	// ErrApplicantNotFound means the walker being accepted never applied
	ErrApplicantNotFound MatchError = "walker has not applied to this session"

	ErrInvalidCompensation MatchError = "compensation must be greater than zero"
	ErrInvalidSchedule     MatchError = "schedule is malformed"
	ErrInvalidKind         MatchError = "unknown session kind"
	ErrPetNotOwned         MatchError = "pet does not belong to the owner"

	ErrNilConfig        MatchError = "config cannot be nil"
	ErrNilSessionRepo   MatchError = "session repository cannot be nil"
	ErrNilPetRepo       MatchError = "pet repository cannot be nil"
	ErrNilClock         MatchError = "clock cannot be nil"
	ErrNilUUIDGenerator MatchError = "UUID generator cannot be nil"
)
