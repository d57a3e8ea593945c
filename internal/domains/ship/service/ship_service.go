package service

import (
	"context"
	"errors"
	"fmt"

	"cosmoport-backend/internal/domains/ship/model"
	"cosmoport-backend/internal/domains/ship/repository"
	"cosmoport-backend/pkg/logger"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type shipService struct {
	shipRepo repository.ShipRepository
	rating   *RatingCalculator
}

func NewShipService(shipRepo repository.ShipRepository) ServiceInterface {
	return &shipService{
		shipRepo: shipRepo,
		rating:   NewRatingCalculator(),
	}
}

// =====================================================
// LIST & COUNT
// =====================================================

func (s *shipService) ListShips(ctx context.Context, req model.ListShipsRequest) ([]model.ShipResponse, error) {
	// Step 1: Validate criteria before touching the store
	if err := req.ShipFilter.Validate(); err != nil {
		return nil, err
	}
	order, err := req.ParsedOrder()
	if err != nil {
		return nil, err
	}

	// Step 2: Load the whole fleet
	ships, err := s.shipRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ships: %w", err)
	}

	// Step 3: Filter, then sort and page
	filtered := FilterShips(ships, req.ShipFilter)
	page, err := Paginate(filtered, req.PageNumber, req.PageSize, order)
	if err != nil {
		return nil, err
	}

	// Step 4: Build response
	responses := make([]model.ShipResponse, 0, len(page))
	for i := range page {
		responses = append(responses, *page[i].ToResponse())
	}

	return responses, nil
}

func (s *shipService) CountShips(ctx context.Context, filter model.ShipFilter) (int, error) {
	if err := filter.Validate(); err != nil {
		return 0, err
	}

	ships, err := s.shipRepo.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list ships: %w", err)
	}

	return len(FilterShips(ships, filter)), nil
}

// =====================================================
// CREATE
// =====================================================

func (s *shipService) CreateShip(ctx context.Context, req model.ShipRequest) (*model.ShipResponse, error) {
	// Step 1: Every required field must be present
	if err := req.ValidateCreateRequest(); err != nil {
		return nil, err
	}

	// Step 2: Merge onto an empty ship; absent isUsed stays false
	ship := model.Ship{}.Apply(req)

	// Step 3: Validate ranges
	if err := model.ValidateShip(&ship); err != nil {
		return nil, err
	}

	// Step 4: Derive rating
	if err := s.applyRating(&ship); err != nil {
		return nil, err
	}

	// Step 5: Persist
	created, err := s.shipRepo.Insert(ctx, &ship)
	if err != nil {
		return nil, fmt.Errorf("failed to create ship: %w", err)
	}

	logger.Info("Ship created", map[string]interface{}{
		"ship_id": created.ID,
		"name":    created.Name,
		"rating":  created.Rating,
	})

	return created.ToResponse(), nil
}

// =====================================================
// GET
// =====================================================

func (s *shipService) GetShip(ctx context.Context, id int64) (*model.ShipResponse, error) {
	ship, err := s.loadShip(ctx, id)
	if err != nil {
		return nil, err
	}
	return ship.ToResponse(), nil
}

// =====================================================
// UPDATE
// =====================================================

func (s *shipService) UpdateShip(ctx context.Context, id int64, req model.ShipRequest) (*model.ShipResponse, error) {
	// Step 1: Load existing ship (validates id, checks existence)
	existing, err := s.loadShip(ctx, id)
	if err != nil {
		return nil, err
	}

	// Step 2: Merge present fields
	merged := existing.Apply(req)

	// Step 3: Validate the merged ship; nothing is written when this fails
	if err := model.ValidateShip(&merged); err != nil {
		return nil, err
	}

	// Step 4: Recompute rating unconditionally
	if err := s.applyRating(&merged); err != nil {
		return nil, err
	}

	// Step 5: Persist
	updated, err := s.shipRepo.Update(ctx, &merged)
	if err != nil {
		if errors.Is(err, model.ErrShipNotFound) {
			return nil, model.NewShipNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to update ship: %w", err)
	}

	logger.Info("Ship updated", map[string]interface{}{
		"ship_id": updated.ID,
		"rating":  updated.Rating,
	})

	return updated.ToResponse(), nil
}

// =====================================================
// DELETE
// =====================================================

func (s *shipService) DeleteShip(ctx context.Context, id int64) error {
	ship, err := s.loadShip(ctx, id)
	if err != nil {
		return err
	}

	if err := s.shipRepo.Delete(ctx, ship); err != nil {
		if errors.Is(err, model.ErrShipNotFound) {
			return model.NewShipNotFoundError(id)
		}
		return fmt.Errorf("failed to delete ship: %w", err)
	}

	logger.Info("Ship deleted", map[string]interface{}{
		"ship_id": id,
	})

	return nil
}

// =====================================================
// HELPERS
// =====================================================

// loadShip validates id and fetches the ship after an existence check
func (s *shipService) loadShip(ctx context.Context, id int64) (*model.Ship, error) {
	if id <= 0 {
		return nil, model.NewInvalidShipIDError(id)
	}

	exists, err := s.shipRepo.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check ship: %w", err)
	}
	if !exists {
		return nil, model.NewShipNotFoundError(id)
	}

	ship, err := s.shipRepo.GetByID(ctx, id)
	if err != nil {
		// deleted between the two calls
		if errors.Is(err, model.ErrShipNotFound) {
			return nil, model.NewShipNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to get ship: %w", err)
	}

	return ship, nil
}

func (s *shipService) applyRating(ship *model.Ship) error {
	rating, err := s.rating.CalculateForShip(ship)
	if err != nil {
		return model.NewInvalidShipError(err)
	}
	ship.Rating = rating
	return nil
}
