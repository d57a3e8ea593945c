package service

import (
	"context"

	"github.com/xuri/excelize/v2"

	"cosmoport-backend/internal/domains/ship/model"
)

// =====================================================
// SHIP SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	// ListShips filters, orders and pages the fleet
	ListShips(ctx context.Context, req model.ListShipsRequest) ([]model.ShipResponse, error)

	// CountShips counts the ships matching the filter
	CountShips(ctx context.Context, filter model.ShipFilter) (int, error)

	// CreateShip validates, rates and stores a new ship
	CreateShip(ctx context.Context, req model.ShipRequest) (*model.ShipResponse, error)

	// GetShip gets ship by ID
	GetShip(ctx context.Context, id int64) (*model.ShipResponse, error)

	// UpdateShip merges the present fields of req onto the stored ship
	UpdateShip(ctx context.Context, id int64, req model.ShipRequest) (*model.ShipResponse, error)

	// DeleteShip deletes ship by ID
	DeleteShip(ctx context.Context, id int64) error

	// ExportShips builds an XLSX workbook of the filtered, ordered fleet
	// and reports how many ships it holds. The caller closes the file.
	ExportShips(ctx context.Context, req model.ListShipsRequest) (*excelize.File, int, error)
}
