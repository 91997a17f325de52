package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/skyrelay/emptylegs/config"
	"github.com/skyrelay/emptylegs/internal/bootstrap"
	"github.com/skyrelay/emptylegs/internal/cache"
	"github.com/skyrelay/emptylegs/internal/database"
	"github.com/skyrelay/emptylegs/internal/repository"
	"github.com/skyrelay/emptylegs/internal/service/booking"
	"github.com/skyrelay/emptylegs/internal/service/flights"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := database.Connect(ctx, cfg.Database.URI, cfg.Database.Name)
	if err != nil {
		log.Fatalf("connect mongo: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("disconnect mongo: %v", err)
		}
	}()

	var searchCache flights.Cache
	if cfg.Redis.Addr != "" {
		searchCache = cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Redis.SearchCacheTTL)*time.Second)
	}

	flightRepo := repository.NewFlightRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	flightService := flights.NewFlightService(flightRepo, searchCache)
	bookingService := booking.NewBookingService(bookingRepo, flightRepo)

	log.Printf("listening on %s (database %q)", cfg.HTTP.Address, cfg.Database.Name)
	if err := bootstrap.Run(ctx, cfg, flightService, bookingService, db); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
