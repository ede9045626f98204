package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/dra200/exwork/internal/config"
	"github.com/dra200/exwork/internal/middleware"
	"github.com/dra200/exwork/internal/routes"
	"github.com/dra200/exwork/internal/store"
)

func main() {
	cfg := config.Load()

	st := store.New()
	if err := st.Seed(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to seed store: %v", err)
	}

	sessions := middleware.NewSessionStore(cfg.SessionTTL)

	app := fiber.New(fiber.Config{
		AppName:      "ExWork Backend",
		ErrorHandler: routes.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders:     "Content-Type",
		AllowCredentials: cfg.CORSOrigins != "*",
	}))

	routes.Register(app, st, sessions)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
