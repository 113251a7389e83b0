package domain

import "slices"

// DefaultRoles can never be deleted from the registry.
var DefaultRoles = []string{RoleAdministrator, RoleUser}

// IsDefaultRole reports whether name is one of DefaultRoles.
func IsDefaultRole(name string) bool {
	return slices.Contains(DefaultRoles, name)
}

// ActivityLogEntry is one append-only audit record.
type ActivityLogEntry struct {
	Timestamp string `json:"timestamp" bson:"timestamp"`
	User      string `json:"user"      bson:"user"`
	Action    string `json:"action"    bson:"action"`
	Details   string `json:"details"   bson:"details"`
}

// Document is the whole shared dataset. Stores load and persist it as a
// unit; there are no partial updates.
type Document struct {
	Users       []*User            `json:"users"       bson:"users"`
	Roles       []string           `json:"roles"       bson:"roles"`
	Events      []*Event           `json:"events"      bson:"events"`
	ActivityLog []ActivityLogEntry `json:"activityLog" bson:"activityLog"`
}

// NewDocument returns the document a fresh store starts from.
func NewDocument() *Document {
	return &Document{
		Users:       []*User{},
		Roles:       slices.Clone(DefaultRoles),
		Events:      []*Event{},
		ActivityLog: []ActivityLogEntry{},
	}
}

// Normalize replaces missing collections with empty ones and drops null
// user and event entries. A document without a roles collection gets the
// defaults.
func (d *Document) Normalize() *Document {
	d.Users = slices.DeleteFunc(d.Users, func(u *User) bool { return u == nil })
	d.Events = slices.DeleteFunc(d.Events, func(e *Event) bool { return e == nil })
	if d.Users == nil {
		d.Users = []*User{}
	}
	if d.Roles == nil {
		d.Roles = slices.Clone(DefaultRoles)
	}
	if d.Events == nil {
		d.Events = []*Event{}
	}
	if d.ActivityLog == nil {
		d.ActivityLog = []ActivityLogEntry{}
	}
	return d
}

// FindUser returns the user with the given username, or nil.
func (d *Document) FindUser(username string) *User {
	if i := d.userIndex(username); i >= 0 {
		return d.Users[i]
	}
	return nil
}

// FindActiveUser is FindUser restricted to approved accounts.
func (d *Document) FindActiveUser(username string) *User {
	if u := d.FindUser(username); u.IsActive() {
		return u
	}
	return nil
}

// RemoveUser deletes the user and reports whether it existed.
func (d *Document) RemoveUser(username string) bool {
	i := d.userIndex(username)
	if i < 0 {
		return false
	}
	d.Users = slices.Delete(d.Users, i, i+1)
	return true
}

func (d *Document) userIndex(username string) int {
	return slices.IndexFunc(d.Users, func(u *User) bool {
		return u != nil && u.Username == username
	})
}

// HasRole reports whether name is in the registry.
func (d *Document) HasRole(name string) bool {
	return slices.Contains(d.Roles, name)
}

// RoleInUse reports whether any user currently references the role.
func (d *Document) RoleInUse(name string) bool {
	return slices.ContainsFunc(d.Users, func(u *User) bool {
		return u != nil && u.Role == name
	})
}

// FindEvent returns the index of the event with the given id, or -1.
func (d *Document) FindEvent(id string) int {
	return slices.IndexFunc(d.Events, func(e *Event) bool {
		return e != nil && e.ID == id
	})
}
