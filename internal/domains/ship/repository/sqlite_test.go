package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmoport-backend/internal/domains/ship/model"
	"cosmoport-backend/internal/infrastructure/database"
)

// setupTestRepo opens an in-memory SQLite store with the ships table
func setupTestRepo(t *testing.T) ShipRepository {
	t.Helper()

	db, err := database.OpenSQLite(database.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewSQLiteShipRepository(db.DB)
	require.NoError(t, repo.EnsureSchema(context.Background()))
	return repo
}

func testShip(name string) *model.Ship {
	return &model.Ship{
		Name:     name,
		Planet:   "Saturn",
		ShipType: model.ShipTypeMilitary,
		ProdDate: time.Date(3005, time.August, 17, 10, 30, 0, 0, time.UTC),
		IsUsed:   true,
		Speed:    0.42,
		CrewSize: 250,
		Rating:   0.67,
	}
}

func TestSQLiteShipRepository_EnsureSchemaIsIdempotent(t *testing.T) {
	repo := setupTestRepo(t)
	assert.NoError(t, repo.EnsureSchema(context.Background()))
}

func TestSQLiteShipRepository_InsertAndGet(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	created, err := repo.Insert(ctx, testShip("Rocinante"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rocinante", got.Name)
	assert.Equal(t, model.ShipTypeMilitary, got.ShipType)
	assert.True(t, got.ProdDate.Equal(testShip("").ProdDate))
	assert.True(t, got.IsUsed)
	assert.Equal(t, 0.42, got.Speed)
	assert.Equal(t, 250, got.CrewSize)
	assert.Equal(t, 0.67, got.Rating)
}

func TestSQLiteShipRepository_GetMissing(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, model.ErrShipNotFound)

	exists, err := repo.Exists(context.Background(), 404)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSQLiteShipRepository_ListAllOrderedByID(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	empty, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, name := range []string{"A", "B", "C"} {
		_, err := repo.Insert(ctx, testShip(name))
		require.NoError(t, err)
	}

	ships, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, ships, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{ships[0].Name, ships[1].Name, ships[2].Name})
}

func TestSQLiteShipRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	created, err := repo.Insert(ctx, testShip("Before"))
	require.NoError(t, err)

	created.Name = "After"
	created.IsUsed = false
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Name)
	assert.False(t, updated.IsUsed)

	missing := testShip("Ghost")
	missing.ID = 99
	_, err = repo.Update(ctx, missing)
	assert.ErrorIs(t, err, model.ErrShipNotFound)
}

func TestSQLiteShipRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	created, err := repo.Insert(ctx, testShip("Doomed"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created))

	exists, err := repo.Exists(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.ErrorIs(t, repo.Delete(ctx, created), model.ErrShipNotFound)
}

func TestSQLiteShipRepository_IDsAreNotReused(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	first, err := repo.Insert(ctx, testShip("First"))
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, first))

	second, err := repo.Insert(ctx, testShip("Second"))
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}
