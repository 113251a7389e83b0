package domain

import "errors"

// ErrorKind classifies domain failures. Handlers pick the HTTP status from
// the kind and render Message to the client.
type ErrorKind string

const (
	KindMissingField      ErrorKind = "missing_field"
	KindNotFound          ErrorKind = "not_found"
	KindDuplicateUsername ErrorKind = "duplicate_username"
	KindDuplicateRole     ErrorKind = "duplicate_role"
	KindNotActive         ErrorKind = "not_active"
	KindInvalidCredential ErrorKind = "invalid_credential"
	KindUnauthenticated   ErrorKind = "unauthenticated"
	KindForbidden         ErrorKind = "forbidden"
	KindProtectedRole     ErrorKind = "protected_role"
	KindRoleInUse         ErrorKind = "role_in_use"
)

// Error is a user-facing validation or authorization failure.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches another *Error of the same kind. A target without a message
// matches every error of its kind, so errors.Is(err, ErrNotFound) holds for
// ErrUserNotFound and ErrEventNotFound alike.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// Kind-level sentinels, for errors.Is.
var (
	ErrMissingField      = &Error{Kind: KindMissingField}
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrDuplicateUsername = &Error{Kind: KindDuplicateUsername}
	ErrDuplicateRole     = &Error{Kind: KindDuplicateRole}
	ErrNotActive         = &Error{Kind: KindNotActive}
	ErrInvalidCredential = &Error{Kind: KindInvalidCredential}
	ErrUnauthenticated   = &Error{Kind: KindUnauthenticated}
	ErrForbidden         = &Error{Kind: KindForbidden}
	ErrProtectedRole     = &Error{Kind: KindProtectedRole}
	ErrRoleInUse         = &Error{Kind: KindRoleInUse}
)

var (
	ErrMissingFields      = &Error{Kind: KindMissingField, Message: "Missing fields"}
	ErrRoleNameRequired   = &Error{Kind: KindMissingField, Message: "Role name required"}
	ErrEventFieldsMissing = &Error{Kind: KindMissingField, Message: "Title and start date required"}

	ErrUserNotFound    = &Error{Kind: KindNotFound, Message: "User not found"}
	ErrOldRoleNotFound = &Error{Kind: KindNotFound, Message: "Old role not found"}
	ErrEventNotFound   = &Error{Kind: KindNotFound, Message: "Event not found"}

	ErrUsernameTaken = &Error{Kind: KindDuplicateUsername, Message: "Username already exists"}
	ErrRoleExists    = &Error{Kind: KindDuplicateRole, Message: "Role already exists"}

	ErrAccountPending  = &Error{Kind: KindNotActive, Message: "Account is pending approval"}
	ErrInvalidPassword = &Error{Kind: KindInvalidCredential, Message: "Invalid password"}

	ErrLoginRequired = &Error{Kind: KindUnauthenticated, Message: "Login required"}
	ErrUnauthorized  = &Error{Kind: KindForbidden, Message: "Unauthorized"}
	ErrAdminOnly     = &Error{Kind: KindForbidden, Message: "Admin access only"}

	ErrDefaultRole = &Error{Kind: KindProtectedRole, Message: "Default roles cannot be deleted"}
	ErrRoleInUseBy = &Error{Kind: KindRoleInUse, Message: "Role is assigned to users"}
)

// ErrStoreFailure wraps every read/write failure of the document store.
var ErrStoreFailure = errors.New("store failure")
