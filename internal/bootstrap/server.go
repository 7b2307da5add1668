package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/railbooking/api"
	"github.com/Domenick1991/railbooking/config"
	"github.com/Domenick1991/railbooking/internal/middleware"
	"github.com/Domenick1991/railbooking/internal/service/booking"
	"github.com/Domenick1991/railbooking/internal/service/trains"
	"github.com/Domenick1991/railbooking/internal/service/users"
	"github.com/gin-gonic/gin"
)

// Run starts the HTTP server and blocks until the context is canceled
// or the server fails.
func Run(ctx context.Context, cfg *config.Config, trainSvc trains.TrainUseCase, bookingSvc booking.BookingUseCase, userSvc users.UserUseCase) error {
	router := newRouter(cfg, trainSvc, bookingSvc, userSvc)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(cfg *config.Config, trainSvc trains.TrainUseCase, bookingSvc booking.BookingUseCase, userSvc users.UserUseCase) *gin.Engine {
	router := gin.Default()

	trainHandler := api.NewTrainHandler(trainSvc)
	bookingHandler := api.NewBookingHandler(bookingSvc)
	userHandler := api.NewUserHandler(userSvc, cfg.Auth.JWTSecret)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Receipts persisted by the local driver are served as static files.
	if cfg.Drivers.Receipts == config.ReceiptsLocal {
		router.Static("/static/uploads", cfg.Booking.ReceiptsDir)
	}

	apiGroup := router.Group("/api")

	trainHandler.Register(apiGroup.Group("/trains"))
	userHandler.Register(apiGroup.Group("/users"))

	authed := apiGroup.Group("/")
	authed.Use(middleware.Auth(cfg.Auth.JWTSecret))
	userHandler.RegisterProtected(authed.Group("/users"))
	bookingHandler.Register(authed.Group("/bookings"))

	admin := authed.Group("/admin/trains")
	admin.Use(middleware.AdminOnly())
	trainHandler.RegisterAdmin(admin)

	return router
}
