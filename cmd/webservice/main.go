package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alimikegami/point-of-sales/product-form-service/config"
	"github.com/alimikegami/point-of-sales/product-form-service/internal/app"
	aggregateapi "github.com/alimikegami/point-of-sales/product-form-service/internal/infrastructure/aggregate-api"
	circuitbreaker "github.com/alimikegami/point-of-sales/product-form-service/internal/infrastructure/circuit-breaker"
	"github.com/alimikegami/point-of-sales/product-form-service/internal/infrastructure/message-queue/kafka"
	"github.com/alimikegami/point-of-sales/product-form-service/internal/infrastructure/tracing"
	"github.com/alimikegami/point-of-sales/product-form-service/internal/service"
	"github.com/alimikegami/point-of-sales/product-form-service/pkg/httpclient"
	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	config := config.CreateNewConfig()

	traceProvider, err := tracing.InitTracing(config.ServiceName, config.TracingConfig.CollectorHost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	cb := circuitbreaker.CreateCircuitBreaker(config.ServiceName)
	aggregateClient := aggregateapi.CreateClient(
		config.AggregateAPIConfig.BaseURL,
		httpclient.New(config.AggregateAPIConfig.Timeout),
		cb,
	)

	var events service.EventWriter
	if writer := kafka.CreateKafkaWriter(config); writer != nil {
		events = writer
		defer writer.Close()
	}

	formSvc := service.CreateFormService(aggregateClient, events, config)

	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create scheduler")
	}

	// add a job to the scheduler
	_, err = s.NewJob(
		gocron.DurationJob(
			config.SessionConfig.SweepInterval,
		),
		gocron.NewTask(
			formSvc.ExpireIdleForms,
		),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to schedule session sweeper")
	}

	s.Start()
	defer func() {
		if err := s.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown scheduler")
		}
	}()

	server := app.App{
		Config:  config,
		Service: formSvc,
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		if err := server.StopServer(); err != nil {
			log.Error().Err(err).Msg("Failed to stop server")
		}
	}()

	log.Info().Str("port", config.ServicePort).Str("aggregate_api", config.AggregateAPIConfig.BaseURL).Msg("starting product form service")

	if err := server.Start(); err != nil {
		log.Error().Err(err).Msg("Server stopped")
	}
}
