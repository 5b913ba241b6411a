package domain

// Tag is a user-owned label, independent of any collection. Tags are
// deleted when their owner is deleted.
type Tag struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	OwnerID int64  `json:"owner_id"`
}
