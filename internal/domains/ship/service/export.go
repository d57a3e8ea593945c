package service

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"cosmoport-backend/internal/domains/ship/model"
)

const exportSheetName = "Fleet"

var exportHeaders = []string{
	"ID",
	"Name",
	"Planet",
	"Ship Type",
	"Production Date",
	"Is Used",
	"Speed",
	"Crew Size",
	"Rating",
}

// ExportShips writes every ship matching the filter, in the requested order,
// to an XLSX workbook. Paging params are ignored.
func (s *shipService) ExportShips(ctx context.Context, req model.ListShipsRequest) (*excelize.File, int, error) {
	// Step 1: Validate criteria
	if err := req.ShipFilter.Validate(); err != nil {
		return nil, 0, err
	}
	order, err := req.ParsedOrder()
	if err != nil {
		return nil, 0, err
	}

	// Step 2: Load, filter, sort
	ships, err := s.shipRepo.ListAll(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list ships: %w", err)
	}
	filtered := FilterShips(ships, req.ShipFilter)
	if order != nil {
		if filtered, err = SortShips(filtered, *order); err != nil {
			return nil, 0, err
		}
	}

	// Step 3: Build workbook
	f, err := buildShipsExcelFile(filtered)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build excel file: %w", err)
	}

	return f, len(filtered), nil
}

func buildShipsExcelFile(ships []model.Ship) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		f.Close()
		return nil, err
	}

	// Row 1: Header
	for colIdx, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		if err := f.SetCellValue(exportSheetName, cell, header); err != nil {
			f.Close()
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		lastCol, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
		_ = f.SetCellStyle(exportSheetName, "A1", lastCol, headerStyle)
	}

	// Data rows start at row 2
	for i, ship := range ships {
		values := []interface{}{
			ship.ID,
			ship.Name,
			ship.Planet,
			string(ship.ShipType),
			ship.ProdDate.UTC().Format(time.DateOnly),
			ship.IsUsed,
			ship.Speed,
			ship.CrewSize,
			ship.Rating,
		}

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(exportSheetName, cell, &values); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}
