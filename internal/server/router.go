package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DaniilSsv/rental-api/internal/handlers"
	"github.com/DaniilSsv/rental-api/internal/services"
)

// New assembles the gin engine with all routes and middlewares applied.
func New(db *gorm.DB, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), AccessLog(logger), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/healthz", func(c *gin.Context) {
		if err := db.Exec("SELECT 1").Error; err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	cars := handlers.NewCarHandler(services.NewCarService(db, logger))
	rentals := handlers.NewRentalHandler(services.NewRentalService(db, logger))
	dealers := handlers.NewDealerHandler(services.NewDealerService(db, logger))

	api := r.Group("/api")
	{
		api.GET("/cars", cars.List)
		api.GET("/cars/topCars", cars.TopCars)
		api.GET("/cars/carWithDealer/:id", cars.WithDealer)
		api.GET("/cars/:id", cars.Get)
		api.POST("/cars", cars.Create)
		api.PUT("/cars/:id", cars.Update)
		api.DELETE("/cars/:id", cars.Delete)

		api.GET("/rentals", rentals.List)
		api.GET("/rentals/:id", rentals.Get)
		api.POST("/rentals", rentals.Create)
		api.PUT("/rentals/:id", rentals.Update)
		api.DELETE("/rentals/:id", rentals.Delete)

		api.GET("/dealers", dealers.List)
		api.GET("/dealers/:id", dealers.Get)
		api.POST("/dealers", dealers.Create)
		api.PUT("/dealers/:id", dealers.Update)
		api.DELETE("/dealers/:id", dealers.Delete)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
	})

	return r
}
