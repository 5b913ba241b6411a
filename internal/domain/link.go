package domain

import "time"

// Link is a bookmarked resource belonging to exactly one collection.
// Links are modeled only as far as the deletion cascade needs: they are
// removed in bulk when their collection's owner is deleted.
type Link struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	URL          string    `json:"url"`
	CollectionID int64     `json:"collection_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
