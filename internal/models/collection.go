package models

import "time"

// Collection groups jewelry items for display. Position drives the
// public ordering and is not required to be unique.
type Collection struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	ImageBase64 string    `db:"image_base64" json:"image_base64"`
	Position    int       `db:"position" json:"position"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
