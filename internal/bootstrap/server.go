package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skyrelay/emptylegs/api"
	"github.com/skyrelay/emptylegs/config"
	"github.com/skyrelay/emptylegs/internal/service/booking"
	"github.com/skyrelay/emptylegs/internal/service/flights"
)

// NewRouter assembles the gin engine with all routes and middleware.
func NewRouter(flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase, db *mongo.Database) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), api.RequestID(), api.CORS())

	api.NewSystemHandler(db).Register(router)

	group := router.Group("/api")
	api.NewFlightHandler(flightSvc).Register(group)
	api.NewBookingHandler(bookingSvc).Register(group)

	return router
}

// Run starts the HTTP server and blocks until the context is canceled
// or the server fails.
func Run(ctx context.Context, cfg *config.Config, flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase, db *mongo.Database) error {
	server := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(flightSvc, bookingSvc, db),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- server.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
