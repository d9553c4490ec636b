package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/tannerbroberts/planner-api/models"
	"github.com/tannerbroberts/planner-api/repositories"
	"go.uber.org/zap"
)

// ItemRepository implements the repositories.ItemRepository interface
type ItemRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *DB, logger *zap.Logger) repositories.ItemRepository {
	return &ItemRepository{
		db:     db,
		logger: logger,
	}
}

// Create creates a new item
func (r *ItemRepository) Create(ctx context.Context, item *models.Item) error {
	query := `
		INSERT INTO items (id, owner_id, name, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.OwnerID,
		item.Name,
		item.Notes,
		item.CreatedAt,
		item.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	r.logger.Debug("item created",
		zap.String("id", item.ID.String()),
		zap.String("owner_id", item.OwnerID))
	return nil
}

// GetByID retrieves an item by ID, scoped to the owner
func (r *ItemRepository) GetByID(ctx context.Context, ownerID string, id uuid.UUID) (*models.Item, error) {
	query := `
		SELECT id, owner_id, name, notes, created_at, updated_at
		FROM items
		WHERE id = $1 AND owner_id = $2
	`

	item := &models.Item{}
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&item.ID,
		&item.OwnerID,
		&item.Name,
		&item.Notes,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return item, nil
}

// ListByOwner retrieves all items for an owner, newest first
func (r *ItemRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Item, error) {
	query := `
		SELECT id, owner_id, name, notes, created_at, updated_at
		FROM items
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		item := &models.Item{}
		if err := rows.Scan(
			&item.ID,
			&item.OwnerID,
			&item.Name,
			&item.Notes,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	return items, nil
}

// Update updates an item's name and notes, scoped to the owner
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	query := `
		UPDATE items
		SET name = $1, notes = $2, updated_at = $3
		WHERE id = $4 AND owner_id = $5
	`

	result, err := r.db.ExecContext(ctx, query,
		item.Name,
		item.Notes,
		item.UpdatedAt,
		item.ID,
		item.OwnerID,
	)

	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return repositories.ErrNotFound
	}

	return nil
}

// Delete deletes an item, scoped to the owner
func (r *ItemRepository) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	query := `DELETE FROM items WHERE id = $1 AND owner_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return repositories.ErrNotFound
	}

	r.logger.Debug("item deleted",
		zap.String("id", id.String()),
		zap.String("owner_id", ownerID))
	return nil
}
