package models

import "time"

// Item is a single jewelry piece. CollectionID links it to its
// collection by id only; the reference is not enforced at write time,
// so orphaned items are possible and tolerated.
type Item struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Description  string    `db:"description" json:"description"`
	ImageBase64  string    `db:"image_base64" json:"image_base64"`
	CollectionID string    `db:"collection_id" json:"collection_id"`
	Position     int       `db:"position" json:"position"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
