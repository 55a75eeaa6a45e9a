package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ostrikov/airbooking/api"
	"github.com/ostrikov/airbooking/config"
	"github.com/ostrikov/airbooking/internal/service/booking"
	"github.com/ostrikov/airbooking/internal/service/flights"
	"github.com/ostrikov/airbooking/internal/service/passenger"
	"github.com/ostrikov/airbooking/internal/service/review"
	"github.com/ostrikov/airbooking/internal/service/routes"
)

type Services struct {
	Passengers passenger.PassengerUseCase
	Bookings   booking.BookingUseCase
	Reviews    review.ReviewUseCase
	Routes     routes.RouteUseCase
	Flights    flights.FlightUseCase
}

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, svcs Services) error {
	httpServer := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: newRouter(svcs),
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

func newRouter(svcs Services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), rateLimit())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "up"})
	})

	v1 := router.Group("/api/v1")
	api.NewPassengerHandler(svcs.Passengers).Register(v1)
	api.NewBookingHandler(svcs.Bookings).Register(v1)
	api.NewReviewHandler(svcs.Reviews).Register(v1)
	api.NewRouteHandler(svcs.Routes).Register(v1)
	api.NewFlightHandler(svcs.Flights).Register(v1)

	return router
}
