package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/velora/internal/config"
	"github.com/example/velora/internal/routes"
	"github.com/example/velora/internal/seed"
	"github.com/example/velora/internal/store"
)

func main() {
	cfg := config.Load()

	st, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("cannot load data: %v", err)
	}

	if cfg.SeedSample {
		if err := seed.Run(st); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
	}

	app := fiber.New(fiber.Config{
		AppName: "Velora Backend",
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, st, cfg)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
