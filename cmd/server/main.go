package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/stadium-ticket-booking/internal/config"
	"github.com/iliyamo/stadium-ticket-booking/internal/database"
	"github.com/iliyamo/stadium-ticket-booking/internal/handler"
	"github.com/iliyamo/stadium-ticket-booking/internal/middleware"
	"github.com/iliyamo/stadium-ticket-booking/internal/queue"
	"github.com/iliyamo/stadium-ticket-booking/internal/repository"
	"github.com/iliyamo/stadium-ticket-booking/internal/router"
)

func main() {
	// Load .env when present; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("schema: %v", err)
	}
	cancel()

	// Repositories
	matchRepo := repository.NewMatchRepo(db)
	stadiumRepo := repository.NewStadiumRepo(db)
	seatingRepo := repository.NewSeatingRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	userRepo := repository.NewUserRepo(db)

	// Handlers
	publicHandler := handler.NewPublicHandler(matchRepo, stadiumRepo, seatingRepo)
	bookingHandler := handler.NewBookingHandler(bookingRepo, matchRepo, stadiumRepo, userRepo)

	// Redis-backed response cache and rate limiting. A nil client
	// disables both and the service keeps running without them.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limitMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	// Background consumer appending booking.created events to the booking log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterPublic(e, publicHandler, limitMW, cacheMW)
	router.RegisterBookings(e, bookingHandler, cfg.JWTSecret, limitMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
