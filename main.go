package main

import (
	"log"
	"net/http"

	"github.com/Eursukkul/travel-listings/config"
	"github.com/Eursukkul/travel-listings/internal/handler"
	"github.com/Eursukkul/travel-listings/internal/middleware"
	"github.com/Eursukkul/travel-listings/internal/repository"
	"github.com/Eursukkul/travel-listings/internal/service"
	"github.com/Eursukkul/travel-listings/pkg/database"
	"github.com/Eursukkul/travel-listings/pkg/rabbitmq"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	// Repositories
	listingRepo := repository.NewListingRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Services
	listingSvc := service.NewListingService(listingRepo, publisher)
	bookingSvc := service.NewBookingService(bookingRepo, listingRepo, publisher)
	reviewSvc := service.NewReviewService(reviewRepo, listingRepo, publisher)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = handler.NewRequestValidator()
	e.Use(echoMw.RequestIDWithConfig(echoMw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d request_id=%s", v.Method, v.URI, v.Status, v.RequestID)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	if cfg.RateLimitRPS > 0 {
		e.Use(echoMw.RateLimiter(echoMw.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimitRPS))))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "travel-listings"})
	})

	api := e.Group("/api/v1")
	handler.NewListingHandler(listingSvc).RegisterRoutes(api)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(api)
	handler.NewReviewHandler(reviewSvc).RegisterRoutes(api)

	log.Printf("Travel Listings API starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
