package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/airinventory/api"
	"github.com/Domenick1991/airinventory/config"
	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/Domenick1991/airinventory/internal/service/booking"
	"github.com/Domenick1991/airinventory/internal/service/flights"
	"github.com/gin-gonic/gin"
)

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, airline *domain.Airline, flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase) error {
	router := gin.Default()

	api.NewFlightHandler(flightSvc).Register(router.Group("/v1/flights"))
	api.NewBookingHandler(bookingSvc).Register(router.Group("/v1/bookings"))
	api.NewReferenceHandler(airline).Register(router.Group("/v1"))

	httpServer := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
