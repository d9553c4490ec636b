package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tannerbroberts/planner-api/models"
)

// ErrNotFound is returned when a requested record does not exist or is not
// visible to the requesting owner.
var ErrNotFound = errors.New("not found")

// ItemRepository handles planner item data operations. Every operation is
// scoped to an owner ID; a repository never returns another owner's items.
type ItemRepository interface {
	// Create creates a new item
	Create(ctx context.Context, item *models.Item) error

	// GetByID retrieves an item by ID, scoped to the owner
	GetByID(ctx context.Context, ownerID string, id uuid.UUID) (*models.Item, error)

	// ListByOwner retrieves all items for an owner, newest first
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Item, error)

	// Update updates an item's name and notes, scoped to the owner
	Update(ctx context.Context, item *models.Item) error

	// Delete deletes an item, scoped to the owner
	Delete(ctx context.Context, ownerID string, id uuid.UUID) error
}
