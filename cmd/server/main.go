package main

import (
	"context"
	"log"
	"net/http"

	_ "kainan/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"kainan/internal/cache"
	"kainan/internal/config"
	"kainan/internal/handler"
	"kainan/internal/monitor"
	"kainan/internal/repository"
	"kainan/internal/router"
	"kainan/internal/service"
	"kainan/internal/store"
)

// @title CVSU Cafeteria API
// @version 1.0
// @description Cafeteria ordering backend: accounts, menu, reservations and live activity views.
// @BasePath /
func main() {
	cfg := config.Load()

	e := echo.New()
	e.HideBanner = true

	st, err := store.New(cfg.DataDir)
	if err != nil {
		log.Fatalf("store init: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(st)
	ulamRepo := repository.NewUlamRepository(st)
	reservationRepo := repository.NewReservationRepository(st)

	// Initialize services
	accountService := service.NewAccountService(userRepo)
	catalogService := service.NewCatalogService(ulamRepo, cacheClient, cfg.CatalogCacheTTL)
	reservationService := service.NewReservationService(userRepo, ulamRepo, reservationRepo)

	// The admin account must exist even when cmd/seed never ran.
	if err := accountService.EnsureAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("bootstrap admin: %v", err)
	}

	// Activity monitor lives for the process lifetime; its counters reset on restart.
	m := monitor.New(userRepo, reservationRepo)

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(accountService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	reservationHandler := handler.NewReservationHandler(reservationService)
	monitorHandler := handler.NewMonitorHandler(m)

	// Register routes
	router.Register(
		e,
		cfg,
		accountHandler,
		catalogHandler,
		reservationHandler,
		monitorHandler,
		m,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
