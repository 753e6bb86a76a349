package main

import (
	"fmt"
	"log"

	"github.com/Fer-Urbina/LittleLemon/configs"
	"github.com/Fer-Urbina/LittleLemon/middlewares"
	"github.com/Fer-Urbina/LittleLemon/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatal(err)
	}
	db := configs.DB()

	// migrate
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
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
