package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cosmoport-backend/internal/shared/middleware"
	"cosmoport-backend/internal/shared/response"
	"cosmoport-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Global middlewares
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
	)

	router.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "Route not found")
	})
	router.NoMethod(func(ctx *gin.Context) {
		response.MethodNotAllowed(ctx, "Method not allowed")
	})

	rest := router.Group("/rest")
	{
		rest.GET("/health", healthCheckHandler(c))

		setupShipRoutes(rest, c)
	}

	return router
}

// ========================================
// SHIP ROUTES
// ========================================
func setupShipRoutes(rest *gin.RouterGroup, c *container.Container) {
	ships := rest.Group("/ships")
	{
		ships.GET("", c.ShipHandler.ListShips)
		ships.GET("/count", c.ShipHandler.CountShips)
		ships.GET("/export", c.ShipHandler.ExportShips)
		ships.POST("", c.ShipHandler.CreateShip)
		ships.POST("/", c.ShipHandler.CreateShip)
		ships.GET("/:id", c.ShipHandler.GetShip)
		ships.POST("/:id", c.ShipHandler.UpdateShip)
		ships.DELETE("/:id", c.ShipHandler.DeleteShip)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"store":     appCtx.Config.Store.Driver,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		// Check store
		storeStatus := "ok"
		if err := appCtx.PingStore(ctx); err != nil {
			storeStatus = fmt.Sprintf("error: %v", err)
			health["status"] = "degraded"
		}
		if appCtx.DB != nil {
			if stats, err := appCtx.DB.Stats(); err == nil {
				health["pool"] = stats
			}
		}

		// Check redis
		redisStatus := "disabled"
		if appCtx.Cache != nil {
			redisStatus = "ok"
			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"store": storeStatus,
			"redis": redisStatus,
		}

		statusCode := http.StatusOK
		if storeStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
