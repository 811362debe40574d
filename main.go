package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Makanak1/Restaurant-management-system/configs"
	"github.com/Makanak1/Restaurant-management-system/middlewares"
	"github.com/Makanak1/Restaurant-management-system/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if cfg.Seed {
		if err := configs.SeedData(); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
