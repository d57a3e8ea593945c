package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"cosmoport-backend/internal/config"
	shipHandler "cosmoport-backend/internal/domains/ship/handler"
	shipRepo "cosmoport-backend/internal/domains/ship/repository"
	shipService "cosmoport-backend/internal/domains/ship/service"
	infraCache "cosmoport-backend/internal/infrastructure/cache"
	"cosmoport-backend/internal/infrastructure/database"
	"cosmoport-backend/pkg/cache"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application
// Exactly one of DB and SQLite is set, depending on Config.Store.Driver.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config *config.Config
	DB     *database.PostgresDB // STORE_DRIVER=postgres
	SQLite *database.SQLiteDB   // STORE_DRIVER=sqlite
	Cache  cache.Cache          // nil when disabled or unreachable

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	ShipRepo shipRepo.ShipRepository

	// ========================================
	// SERVICE LAYER
	// ========================================
	ShipService shipService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================
	ShipHandler *shipHandler.ShipHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer loads config from the environment and builds the graph
func NewContainer() (*Container, error) {
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	return NewContainerWithConfig(cfg)
}

// NewContainerWithConfig builds the dependency graph in order:
// store -> cache -> repositories -> services -> handlers
func NewContainerWithConfig(cfg *config.Config) (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{Config: cfg}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// ========================================
	// STEP 1: INITIALIZE STORE
	// ========================================
	if err := c.initStore(ctx); err != nil {
		c.Cleanup()
		return nil, err
	}

	// ========================================
	// STEP 2: INITIALIZE CACHE (optional)
	// ========================================
	c.initCache(ctx)

	// ========================================
	// STEP 3-5: REPOSITORIES, SERVICES, HANDLERS
	// ========================================
	if err := c.initRepositories(ctx); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to init repositories: %w", err)
	}
	c.initServices()
	c.initHandlers()

	log.Println("✅ DI Container initialized successfully")
	return c, nil
}

func (c *Container) initStore(ctx context.Context) error {
	switch c.Config.Store.Driver {
	case config.StoreDriverSQLite:
		log.Printf("🗄️  Opening SQLite store at %s...", c.Config.Store.SQLitePath)

		db, err := database.OpenSQLite(c.Config.Store.SQLitePath)
		if err != nil {
			return fmt.Errorf("failed to open sqlite store: %w", err)
		}
		c.SQLite = db

	default:
		log.Println("🗄️  Connecting to PostgreSQL...")

		dbConfig, err := config.LoadDatabaseConfig()
		if err != nil {
			return fmt.Errorf("failed to load database config: %w", err)
		}

		db := database.NewPostgresDB(dbConfig)
		if err := db.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.DB = db
	}

	log.Println("✅ Store ready")
	return nil
}

// initCache leaves c.Cache nil when Redis is disabled or unreachable;
// the API then serves straight from the store
func (c *Container) initCache(ctx context.Context) {
	if !c.Config.Cache.Enabled {
		log.Println("⚠️  Cache disabled")
		return
	}

	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)
	rc := redisCache.(*infraCache.RedisCache)

	if err := rc.Connect(ctx); err != nil {
		log.Printf("⚠️  Redis unavailable, continuing without cache: %v", err)
		_ = rc.Close()
		return
	}

	if err := shipRepo.FlushShipCache(ctx, redisCache); err != nil {
		log.Printf("⚠️  Failed to flush ship cache: %v", err)
	}

	c.Cache = redisCache
	log.Println("✅ Redis connected")
}

func (c *Container) initRepositories(ctx context.Context) error {
	var repo shipRepo.ShipRepository
	if c.SQLite != nil {
		repo = shipRepo.NewSQLiteShipRepository(c.SQLite.DB)
	} else {
		repo = shipRepo.NewPostgresShipRepository(c.DB.Pool)
	}

	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	if c.Cache != nil {
		repo = shipRepo.NewCachedShipRepository(repo, c.Cache, c.Config.Cache.TTL)
	}

	c.ShipRepo = repo
	return nil
}

func (c *Container) initServices() {
	c.ShipService = shipService.NewShipService(c.ShipRepo)
}

func (c *Container) initHandlers() {
	c.ShipHandler = shipHandler.NewShipHandler(c.ShipService)
}

// ========================================
// HEALTH
// ========================================

// PingStore checks whichever store backs the repository
func (c *Container) PingStore(ctx context.Context) error {
	switch {
	case c.SQLite != nil:
		return c.SQLite.Ping(ctx)
	case c.DB != nil:
		return c.DB.Ping(ctx)
	}
	return fmt.Errorf("store is not initialized")
}

// ========================================
// CLEANUP
// ========================================

func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil {
		_ = c.DB.Close()
		log.Println("✅ Database connections closed")
	}

	if c.SQLite != nil {
		if err := c.SQLite.Close(); err != nil {
			log.Printf("⚠️  Failed to close SQLite: %v", err)
		}
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("⚠️  Failed to close Redis: %v", err)
			} else {
				log.Println("✅ Redis connections closed")
			}
		}
	}

	log.Println("✅ Container cleanup completed")
}
