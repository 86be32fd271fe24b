package main

import (
	"github.com/h2o-salon/salon-backend/config"
	"github.com/h2o-salon/salon-backend/internal/consumer"
	"github.com/h2o-salon/salon-backend/internal/handler"
	"github.com/h2o-salon/salon-backend/internal/logging"
	"github.com/h2o-salon/salon-backend/internal/mailer"
	"github.com/h2o-salon/salon-backend/internal/metrics"
	appMw "github.com/h2o-salon/salon-backend/internal/middleware"
	"github.com/h2o-salon/salon-backend/internal/notify"
	"github.com/h2o-salon/salon-backend/internal/razorpay"
	"github.com/h2o-salon/salon-backend/internal/repository"
	"github.com/h2o-salon/salon-backend/internal/service"
	"github.com/h2o-salon/salon-backend/pkg/database"
	"github.com/h2o-salon/salon-backend/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)
	metrics.Register()

	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		// A booking backend without its store is useless; refuse to limp along.
		log.Fatal().Err(err).Msg("database connection failed")
	}

	gateway := razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	receiptMailer := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)

	// Receipt dispatch: queue-backed when a broker is configured, otherwise a
	// detached goroutine. Either way email stays off the request path.
	var dispatcher notify.Dispatcher = notify.NewDirectDispatcher(receiptMailer, log)
	if cfg.RabbitURL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Warn().Err(err).Msg("rabbitmq unavailable, receipts fall back to direct dispatch")
		} else {
			defer pub.Close()

			mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
			if err != nil {
				log.Warn().Err(err).Msg("rabbitmq consumer setup failed, receipts fall back to direct dispatch")
			} else {
				defer mqConsumer.Close()

				msgs, err := mqConsumer.Consume()
				if err != nil {
					log.Warn().Err(err).Msg("rabbitmq consume failed, receipts fall back to direct dispatch")
				} else {
					consumer.NewReceiptConsumer(receiptMailer, log).Start(msgs)
					dispatcher = notify.NewQueueDispatcher(pub)
					log.Info().Msg("receipt queue active")
				}
			}
		}
	}

	bookingRepo := repository.NewBookingRepository(db)
	bookingSvc := service.NewBookingService(bookingRepo, gateway, dispatcher, log)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = appMw.ErrorHandler
	e.Use(echoMw.Recover())
	e.Use(echoMw.CORSWithConfig(echoMw.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowCredentials: true,
	}))
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	}))
	e.Use(appMw.Metrics())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "salon-backend"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handler.NewBookingHandler(bookingSvc, log).RegisterRoutes(e)

	log.Info().Str("port", cfg.ServerPort).Msg("salon backend starting")
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
