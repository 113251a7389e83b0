package domain

// Event is a calendar entry. Start and End are the opaque date strings the
// calendar widget sends; they are not parsed.
type Event struct {
	ID          string `json:"id"                  bson:"id"`
	Title       string `json:"title"               bson:"title"`
	Start       string `json:"start"               bson:"start"`
	End         string `json:"end"                 bson:"end"`
	Description string `json:"description"         bson:"description"`
	AllDay      bool   `json:"allDay"              bson:"allDay"`
	UserID      string `json:"userId"              bson:"userId"`
	CreatedAt   string `json:"createdAt"           bson:"createdAt"`
	UpdatedAt   string `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// CanBeModifiedBy reports whether caller owns the event or is an
// Administrator.
func (e *Event) CanBeModifiedBy(caller Caller) bool {
	if caller.Identity == nil {
		return false
	}
	return e.UserID == caller.Identity.Username || caller.IsAdministrator()
}
