package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/delacruzclinic/clinic-booking/internal/cache"
	"github.com/delacruzclinic/clinic-booking/internal/config"
	dbpkg "github.com/delacruzclinic/clinic-booking/internal/db"
	"github.com/delacruzclinic/clinic-booking/internal/middleware"
	"github.com/delacruzclinic/clinic-booking/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	slots := cache.New(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, slots)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
