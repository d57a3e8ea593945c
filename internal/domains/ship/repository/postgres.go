package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cosmoport-backend/internal/domains/ship/model"
	"cosmoport-backend/pkg/database"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

const shipColumns = `id, name, planet, ship_type, prod_date, is_used, speed, crew_size, rating`

type postgresShipRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresShipRepository(pool *pgxpool.Pool) ShipRepository {
	return &postgresShipRepository{pool: pool}
}

func (r *postgresShipRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS ships (
			id         BIGSERIAL PRIMARY KEY,
			name       VARCHAR(50)      NOT NULL,
			planet     VARCHAR(50)      NOT NULL,
			ship_type  VARCHAR(16)      NOT NULL,
			prod_date  TIMESTAMPTZ      NOT NULL,
			is_used    BOOLEAN          NOT NULL DEFAULT FALSE,
			speed      DOUBLE PRECISION NOT NULL,
			crew_size  INTEGER          NOT NULL,
			rating     DOUBLE PRECISION NOT NULL
		)
	`
	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create ships table: %w", err)
	}
	return nil
}

// =====================================================
// READ
// =====================================================

func (r *postgresShipRepository) ListAll(ctx context.Context) ([]model.Ship, error) {
	query := `SELECT ` + shipColumns + ` FROM ships ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list ships query failed: %w", err)
	}

	ships, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Ship])
	if err != nil {
		return nil, fmt.Errorf("collect rows failed: %w", err)
	}

	return ships, nil
}

func (r *postgresShipRepository) GetByID(ctx context.Context, id int64) (*model.Ship, error) {
	query := `SELECT ` + shipColumns + ` FROM ships WHERE id = $1`

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get ship: %w", err)
	}

	ship, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Ship])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrShipNotFound
		}
		return nil, fmt.Errorf("failed to get ship: %w", err)
	}

	return ship, nil
}

func (r *postgresShipRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM ships WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check ship: %w", err)
	}
	return exists, nil
}

// =====================================================
// WRITE
// =====================================================

func (r *postgresShipRepository) Insert(ctx context.Context, ship *model.Ship) (*model.Ship, error) {
	query := `
		INSERT INTO ships (name, planet, ship_type, prod_date, is_used, speed, crew_size, rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + shipColumns

	rows, err := r.pool.Query(ctx, query,
		ship.Name,
		ship.Planet,
		string(ship.ShipType),
		ship.ProdDate,
		ship.IsUsed,
		ship.Speed,
		ship.CrewSize,
		ship.Rating,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert ship: %w", err)
	}

	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Ship])
	if err != nil {
		return nil, fmt.Errorf("failed to insert ship: %w", err)
	}

	return created, nil
}

// Update locks the row and rewrites it in one transaction
func (r *postgresShipRepository) Update(ctx context.Context, ship *model.Ship) (*model.Ship, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Ship, error) {
		var lockedID int64
		err := tx.QueryRow(ctx, `SELECT id FROM ships WHERE id = $1 FOR UPDATE`, ship.ID).Scan(&lockedID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, model.ErrShipNotFound
			}
			return nil, fmt.Errorf("failed to lock ship: %w", err)
		}

		query := `
			UPDATE ships
			SET
				name = $2,
				planet = $3,
				ship_type = $4,
				prod_date = $5,
				is_used = $6,
				speed = $7,
				crew_size = $8,
				rating = $9
			WHERE id = $1
			RETURNING ` + shipColumns

		rows, err := tx.Query(ctx, query,
			ship.ID,
			ship.Name,
			ship.Planet,
			string(ship.ShipType),
			ship.ProdDate,
			ship.IsUsed,
			ship.Speed,
			ship.CrewSize,
			ship.Rating,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to update ship: %w", err)
		}

		updated, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Ship])
		if err != nil {
			return nil, fmt.Errorf("failed to update ship: %w", err)
		}
		return updated, nil
	})
}

func (r *postgresShipRepository) Delete(ctx context.Context, ship *model.Ship) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM ships WHERE id = $1`, ship.ID)
	if err != nil {
		return fmt.Errorf("failed to delete ship: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrShipNotFound
	}

	return nil
}
