package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tannerbroberts/planner-api/models"
	"github.com/tannerbroberts/planner-api/repositories"
	"go.uber.org/zap"
)

// newMockRepo builds an ItemRepository over a sqlmock connection
func newMockRepo(t *testing.T) (repositories.ItemRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db := &DB{DB: mockDB, logger: zap.NewNop()}
	return NewItemRepository(db, zap.NewNop()), mock
}

func TestItemRepositoryCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	item := models.NewItem("u1", "groceries", "milk, eggs")

	mock.ExpectExec(`INSERT INTO items`).
		WithArgs(item.ID, item.OwnerID, item.Name, item.Notes, item.CreatedAt, item.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), item)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepositoryGetByID(t *testing.T) {
	t.Run("returns the owner's item", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		id := uuid.New()
		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "owner_id", "name", "notes", "created_at", "updated_at"}).
			AddRow(id, "u1", "groceries", "milk", now, now)

		mock.ExpectQuery(`SELECT id, owner_id, name, notes, created_at, updated_at\s+FROM items`).
			WithArgs(id, "u1").
			WillReturnRows(rows)

		item, err := repo.GetByID(context.Background(), "u1", id)
		require.NoError(t, err)
		assert.Equal(t, id, item.ID)
		assert.Equal(t, "u1", item.OwnerID)
		assert.Equal(t, "groceries", item.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for another owner's item", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		id := uuid.New()
		mock.ExpectQuery(`SELECT id, owner_id, name, notes, created_at, updated_at\s+FROM items`).
			WithArgs(id, "u2").
			WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "name", "notes", "created_at", "updated_at"}))

		item, err := repo.GetByID(context.Background(), "u2", id)
		assert.Nil(t, item)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestItemRepositoryListByOwner(t *testing.T) {
	t.Run("returns only the owner's items", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "owner_id", "name", "notes", "created_at", "updated_at"}).
			AddRow(uuid.New(), "u1", "first", "", now, now).
			AddRow(uuid.New(), "u1", "second", "notes", now.Add(-time.Hour), now.Add(-time.Hour))

		mock.ExpectQuery(`SELECT id, owner_id, name, notes, created_at, updated_at\s+FROM items`).
			WithArgs("u1").
			WillReturnRows(rows)

		items, err := repo.ListByOwner(context.Background(), "u1")
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "first", items[0].Name)
		assert.Equal(t, "second", items[1].Name)
	})

	t.Run("returns empty for an owner with no items", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT id, owner_id, name, notes, created_at, updated_at\s+FROM items`).
			WithArgs("nobody").
			WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "name", "notes", "created_at", "updated_at"}))

		items, err := repo.ListByOwner(context.Background(), "nobody")
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestItemRepositoryUpdate(t *testing.T) {
	t.Run("updates the owner's item", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		item := models.NewItem("u1", "renamed", "updated notes")

		mock.ExpectExec(`UPDATE items`).
			WithArgs(item.Name, item.Notes, item.UpdatedAt, item.ID, item.OwnerID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.Background(), item)
		require.NoError(t, err)
	})

	t.Run("returns ErrNotFound when no row matches", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		item := models.NewItem("u2", "renamed", "")

		mock.ExpectExec(`UPDATE items`).
			WithArgs(item.Name, item.Notes, item.UpdatedAt, item.ID, item.OwnerID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), item)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestItemRepositoryDelete(t *testing.T) {
	t.Run("deletes the owner's item", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		id := uuid.New()
		mock.ExpectExec(`DELETE FROM items`).
			WithArgs(id, "u1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), "u1", id)
		require.NoError(t, err)
	})

	t.Run("returns ErrNotFound when no row matches", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		id := uuid.New()
		mock.ExpectExec(`DELETE FROM items`).
			WithArgs(id, "u2").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), "u2", id)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}
