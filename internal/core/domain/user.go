package domain

const (
	RoleAdministrator = "Administrator"
	RoleUser          = "User"
)

// PublicCreator is recorded as createdBy when an account is requested
// without a session.
const PublicCreator = "Public"

// UserStatus is the approval state of an account. Only active accounts may
// authenticate.
type UserStatus string

const (
	StatusPending UserStatus = "pending"
	StatusActive  UserStatus = "active"
)

// User is the stored account record. PasswordHash is persisted under the
// "password" key and must never be rendered to a client.
type User struct {
	Username     string     `json:"username"     bson:"username"`
	PasswordHash string     `json:"password"     bson:"password"`
	Role         string     `json:"role"         bson:"role"`
	Status       UserStatus `json:"status"       bson:"status"`
	CreatedBy    string     `json:"createdBy"    bson:"createdBy"`
}

// IsActive reports whether the account has been approved.
func (u *User) IsActive() bool {
	return u != nil && u.Status == StatusActive
}

// IsAdministrator compares the role by string equality; there is no role
// hierarchy.
func (u *User) IsAdministrator() bool {
	return u != nil && u.Role == RoleAdministrator
}

// Caller describes who issued a request. Username is the raw session cookie
// value (possibly naming an unknown or pending account) and is used for
// attribution. Identity is the resolved active account and is the only
// thing authorization decisions look at.
type Caller struct {
	Username string
	Identity *User
}

// Anonymous is a caller without any session cookie.
var Anonymous = Caller{}

// IsAuthenticated reports whether an active identity was resolved.
func (c Caller) IsAuthenticated() bool {
	return c.Identity != nil
}

// IsAdministrator reports whether the resolved identity is an Administrator.
func (c Caller) IsAdministrator() bool {
	return c.Identity.IsAdministrator()
}

// UserSummary is the outward projection of a User.
type UserSummary struct {
	Username string     `json:"username"`
	Role     string     `json:"role"`
	Status   UserStatus `json:"status"`
}

// Summary projects the user without its password hash.
func (u *User) Summary() UserSummary {
	return UserSummary{Username: u.Username, Role: u.Role, Status: u.Status}
}
