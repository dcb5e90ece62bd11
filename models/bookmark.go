package models

import "time"

// Bookmark is a named link with an optional description.
// Bookmarks are only ever created and listed.
type Bookmark struct {
	BookmarkID  int64     `json:"id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Bookmark model.
func (b Bookmark) TableName() string {
	return "bookmarks"
}
