package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/go-openapi/spec"
	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/bedrock-dynamo-api/internal/api"
	"github.com/povarna/generative-ai-agents/bedrock-dynamo-api/internal/setup"
	"github.com/povarna/generative-ai-agents/bedrock-dynamo-api/internal/setup/logger"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Bedrock DynamoDB API",
			Description: "Titan text generation and DynamoDB table listing",
			Version:     "1.0.0",
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "root", Description: "Greeting"}},
		{TagProps: spec.TagProps{Name: "bedrock", Description: "Text generation"}},
		{TagProps: spec.TagProps{Name: "dynamodb", Description: "Database connectivity"}},
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
	}
}

func main() {
	// Load env
	envErr := godotenv.Load()

	cfg, err := setup.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Setup logging
	logger := logger.New(cfg.LogLevel, os.Stdout)
	log.Logger = logger

	if envErr != nil {
		log.Warn().Msg("No .env file found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to load dependencies")
	}

	handler := api.NewHandler(deps.Service, &logger)

	container := api.NewContainer(handler, deps.Metrics)

	container.Add(restfulspec.NewOpenAPIService(restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       "/openapi.json",
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}))
	container.Handle("/metrics", deps.Metrics.Handler())

	// CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	addr := fmt.Sprintf(":%s", cfg.Port)

	// No WriteTimeout: upstream calls run until the SDK returns.
	server := &http.Server{
		Addr:        addr,
		Handler:     corsHandler.Handler(container),
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.Info().Str("address", addr).Str("region", cfg.AWSRegion).Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	log.Info().Msg("Server stopped")
}
