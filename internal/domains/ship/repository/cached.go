package repository

import (
	"context"
	"fmt"
	"time"

	"cosmoport-backend/internal/domains/ship/model"
	"cosmoport-backend/pkg/cache"
	"cosmoport-backend/pkg/logger"
)

const (
	cacheKeyAllShips  = "ships:all"
	cacheKeyShipByID  = "ships:id:%d"
	cacheKeyShipsGlob = "ships:*"
)

// cachedShipRepository is a cache-aside decorator over another ShipRepository.
// Every write goes through it and drops the fleet key and the ship's own key.
// Cache failures fall back to the store.
type cachedShipRepository struct {
	next  ShipRepository
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedShipRepository(next ShipRepository, c cache.Cache, ttl time.Duration) ShipRepository {
	return &cachedShipRepository{
		next:  next,
		cache: c,
		ttl:   ttl,
	}
}

func shipKey(id int64) string {
	return fmt.Sprintf(cacheKeyShipByID, id)
}

func (r *cachedShipRepository) EnsureSchema(ctx context.Context) error {
	return r.next.EnsureSchema(ctx)
}

func (r *cachedShipRepository) ListAll(ctx context.Context) ([]model.Ship, error) {
	var ships []model.Ship
	found, err := r.cache.Get(ctx, cacheKeyAllShips, &ships)
	if err != nil {
		r.warnGet(cacheKeyAllShips, err)
	}
	if found {
		logger.Debug("Ship cache hit: " + cacheKeyAllShips)
		return ships, nil
	}

	ships, err = r.next.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, cacheKeyAllShips, ships, r.ttl); err != nil {
		logger.Error("Ship cache SET failed", err)
	}
	return ships, nil
}

func (r *cachedShipRepository) GetByID(ctx context.Context, id int64) (*model.Ship, error) {
	var ship model.Ship
	found, err := r.cache.Get(ctx, shipKey(id), &ship)
	if err != nil {
		r.warnGet(shipKey(id), err)
	}
	if found {
		logger.Debug("Ship cache hit: " + shipKey(id))
		return &ship, nil
	}

	fetched, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, shipKey(id), fetched, r.ttl); err != nil {
		logger.Error("Ship cache SET failed", err)
	}
	return fetched, nil
}

func (r *cachedShipRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var ship model.Ship
	found, err := r.cache.Get(ctx, shipKey(id), &ship)
	if err != nil {
		r.warnGet(shipKey(id), err)
	}
	if found {
		return true, nil
	}
	return r.next.Exists(ctx, id)
}

func (r *cachedShipRepository) Insert(ctx context.Context, ship *model.Ship) (*model.Ship, error) {
	created, err := r.next.Insert(ctx, ship)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, created.ID)
	return created, nil
}

func (r *cachedShipRepository) Update(ctx context.Context, ship *model.Ship) (*model.Ship, error) {
	updated, err := r.next.Update(ctx, ship)
	// invalidate on failure too: the row may have vanished underneath us
	r.invalidate(ctx, ship.ID)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *cachedShipRepository) Delete(ctx context.Context, ship *model.Ship) error {
	err := r.next.Delete(ctx, ship)
	r.invalidate(ctx, ship.ID)
	return err
}

func (r *cachedShipRepository) warnGet(key string, err error) {
	logger.Warn("Ship cache GET failed, falling back to store", map[string]interface{}{
		"key":   key,
		"error": err.Error(),
	})
}

func (r *cachedShipRepository) invalidate(ctx context.Context, id int64) {
	if err := r.cache.Delete(ctx, cacheKeyAllShips, shipKey(id)); err != nil {
		logger.Error("Ship cache DELETE failed", err)
	}
}

// FlushShipCache drops every ship key, used on startup so entries written
// against a previous store (ids are reused by a fresh database) are not served.
func FlushShipCache(ctx context.Context, c cache.Cache) error {
	return c.DeletePattern(ctx, cacheKeyShipsGlob)
}
