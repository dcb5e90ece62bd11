package models

import "time"

// Contact is an address book entry.
type Contact struct {
	// ContactID is the generated unique identifier of the contact.
	ContactID int64 `json:"id"`

	// Name is the display name. Required.
	Name string `json:"name"`

	// Email must be non-empty and contain "@".
	Email string `json:"email"`

	// Number is an optional phone number kept as free text.
	Number string `json:"number"`

	// Image is the avatar URL or the fallback placeholder.
	Image string `json:"image"`

	// CreatedAt is set once at creation and never changed by updates.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}
