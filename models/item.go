package models

import (
	"time"

	"github.com/google/uuid"
)

// Item represents a planner item owned by a single user. OwnerID is the
// resolved identity ID of the creating request; every query filters on it.
type Item struct {
	ID        uuid.UUID `json:"id" db:"id"`
	OwnerID   string    `json:"owner_id" db:"owner_id"`
	Name      string    `json:"name" db:"name"`
	Notes     string    `json:"notes,omitempty" db:"notes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}

// NewItem creates a new Item owned by the given user
func NewItem(ownerID, name, notes string) *Item {
	now := time.Now()
	return &Item{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateItemRequest is the payload for creating an item
type CreateItemRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=255"`
	Notes string `json:"notes" validate:"max=4000"`
}

// UpdateItemRequest is the payload for updating an item
type UpdateItemRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=255"`
	Notes string `json:"notes" validate:"max=4000"`
}
