package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cosmoport-backend/internal/domains/ship/model"
)

// =====================================================
// SQLITE REPOSITORY IMPLEMENTATION
// =====================================================
// prod_date is stored as epoch milliseconds.

type sqliteShipRepository struct {
	db *sql.DB
}

func NewSQLiteShipRepository(db *sql.DB) ShipRepository {
	return &sqliteShipRepository{db: db}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteShip(row rowScanner) (*model.Ship, error) {
	var (
		ship     model.Ship
		shipType string
		prodDate int64
	)

	err := row.Scan(
		&ship.ID,
		&ship.Name,
		&ship.Planet,
		&shipType,
		&prodDate,
		&ship.IsUsed,
		&ship.Speed,
		&ship.CrewSize,
		&ship.Rating,
	)
	if err != nil {
		return nil, err
	}

	ship.ShipType = model.ShipType(shipType)
	ship.ProdDate = time.UnixMilli(prodDate).UTC()
	return &ship, nil
}

func (r *sqliteShipRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS ships (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			name       TEXT    NOT NULL,
			planet     TEXT    NOT NULL,
			ship_type  TEXT    NOT NULL,
			prod_date  INTEGER NOT NULL,
			is_used    INTEGER NOT NULL DEFAULT 0,
			speed      REAL    NOT NULL,
			crew_size  INTEGER NOT NULL,
			rating     REAL    NOT NULL
		)
	`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create ships table: %w", err)
	}
	return nil
}

func (r *sqliteShipRepository) ListAll(ctx context.Context) ([]model.Ship, error) {
	query := `SELECT ` + shipColumns + ` FROM ships ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list ships query failed: %w", err)
	}
	defer rows.Close()

	ships := []model.Ship{}
	for rows.Next() {
		ship, err := scanSQLiteShip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ship: %w", err)
		}
		ships = append(ships, *ship)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ships: %w", err)
	}

	return ships, nil
}

func (r *sqliteShipRepository) GetByID(ctx context.Context, id int64) (*model.Ship, error) {
	query := `SELECT ` + shipColumns + ` FROM ships WHERE id = ?`

	ship, err := scanSQLiteShip(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrShipNotFound
		}
		return nil, fmt.Errorf("failed to get ship: %w", err)
	}
	return ship, nil
}

func (r *sqliteShipRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM ships WHERE id = ?)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check ship: %w", err)
	}
	return exists, nil
}

func (r *sqliteShipRepository) Insert(ctx context.Context, ship *model.Ship) (*model.Ship, error) {
	query := `
		INSERT INTO ships (name, planet, ship_type, prod_date, is_used, speed, crew_size, rating)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		ship.Name,
		ship.Planet,
		string(ship.ShipType),
		ship.ProdDateMillis(),
		ship.IsUsed,
		ship.Speed,
		ship.CrewSize,
		ship.Rating,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert ship: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read ship id: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *sqliteShipRepository) Update(ctx context.Context, ship *model.Ship) (*model.Ship, error) {
	query := `
		UPDATE ships
		SET
			name = ?,
			planet = ?,
			ship_type = ?,
			prod_date = ?,
			is_used = ?,
			speed = ?,
			crew_size = ?,
			rating = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		ship.Name,
		ship.Planet,
		string(ship.ShipType),
		ship.ProdDateMillis(),
		ship.IsUsed,
		ship.Speed,
		ship.CrewSize,
		ship.Rating,
		ship.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update ship: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to update ship: %w", err)
	}
	if affected == 0 {
		return nil, model.ErrShipNotFound
	}

	return r.GetByID(ctx, ship.ID)
}

func (r *sqliteShipRepository) Delete(ctx context.Context, ship *model.Ship) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM ships WHERE id = ?`, ship.ID)
	if err != nil {
		return fmt.Errorf("failed to delete ship: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete ship: %w", err)
	}
	if affected == 0 {
		return model.ErrShipNotFound
	}

	return nil
}
