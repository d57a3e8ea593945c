package repository

import (
	"context"

	"cosmoport-backend/internal/domains/ship/model"
)

// =====================================================
// SHIP REPOSITORY INTERFACE
// =====================================================

type ShipRepository interface {
	// EnsureSchema creates the ships table when missing
	EnsureSchema(ctx context.Context) error

	// ListAll returns every ship ordered by id
	ListAll(ctx context.Context) ([]model.Ship, error)

	// GetByID returns model.ErrShipNotFound when no row matches
	GetByID(ctx context.Context, id int64) (*model.Ship, error)

	// Exists checks whether a ship with id is stored
	Exists(ctx context.Context, id int64) (bool, error)

	// Insert assigns the id and returns the persisted ship
	Insert(ctx context.Context, ship *model.Ship) (*model.Ship, error)

	// Update overwrites every column of ship.ID and returns the persisted ship
	Update(ctx context.Context, ship *model.Ship) (*model.Ship, error)

	// Delete removes the ship
	Delete(ctx context.Context, ship *model.Ship) error
}
