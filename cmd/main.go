package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/dityarw/auth-service/config"
	"github.com/dityarw/auth-service/internal/auth/dto"
	"github.com/dityarw/auth-service/internal/auth/handler"
	"github.com/dityarw/auth-service/internal/auth/middleware"
	"github.com/dityarw/auth-service/internal/auth/service"
	"github.com/dityarw/auth-service/internal/auth/store/memory"
	"github.com/dityarw/auth-service/internal/logging"
	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)

	store := memory.NewStore(cfg.MaxActiveRefreshTokens)
	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	userService := service.NewUserService(store, tokenService)
	authHandler := handler.NewAuthHandler(userService)

	if cfg.AdminUsername != "" {
		err := userService.EnsureAdmin(context.Background(), dto.RegisterInput{
			Username: cfg.AdminUsername,
			Email:    cfg.AdminEmail,
			Password: cfg.AdminPassword,
		})
		if err != nil {
			log.Fatalf("seeding admin user: %v", err)
		}
		slog.Info("admin user seeded", "username", cfg.AdminUsername)
	}

	app := fiber.New()
	app.Use(middleware.RequestLogger(logger))
	handler.RegisterRoutes(app, authHandler, middleware.RequireAuth(tokenService, store))

	slog.Info("starting auth service", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
