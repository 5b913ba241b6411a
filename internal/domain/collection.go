package domain

import (
	"errors"
	"strings"
	"time"
)

// Common collection validation errors
var (
	ErrEmptyCollectionName = errors.New("collection name cannot be empty")
	ErrMissingOwner        = errors.New("collection must have an owner")
)

// Collection is a named container for links, owned by exactly one user.
// Collections form a tree through the optional ParentID reference; a
// collection's parent must be owned by the same user, validated at
// creation time by the collection service.
type Collection struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	IsPublic    bool      `json:"is_public"`
	ParentID    *int64    `json:"parent_id,omitempty"`
	OwnerID     int64     `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Projections populated on read, not stored columns.
	LinkCount int64        `json:"link_count"`
	Members   []Membership `json:"members"`
}

// Membership grants a user access to a collection owned by another user.
// It mirrors one row of the users_and_collections table.
type Membership struct {
	UserID       int64      `json:"user_id"`
	CollectionID int64      `json:"collection_id"`
	CanCreate    bool       `json:"can_create"`
	CanUpdate    bool       `json:"can_update"`
	CanDelete    bool       `json:"can_delete"`
	User         MemberUser `json:"user"`
}

// MemberUser carries the display fields of a member, nested in the
// membership projection returned after collection creation.
type MemberUser struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// NewCollection creates a Collection owned by ownerID with a trimmed
// name. Timestamps are set to now; the ID is assigned by the store.
func NewCollection(ownerID int64, name, description, color string, parentID *int64) (*Collection, error) {
	collection := &Collection{
		Name:        strings.TrimSpace(name),
		Description: description,
		Color:       color,
		ParentID:    parentID,
		OwnerID:     ownerID,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := collection.Validate(); err != nil {
		return nil, err
	}

	return collection, nil
}

// Validate checks if the Collection has valid data.
func (c *Collection) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyCollectionName
	}

	if c.OwnerID == 0 {
		return ErrMissingOwner
	}

	return nil
}
