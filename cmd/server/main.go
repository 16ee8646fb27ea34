package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	openaiadapter "github.com/oolnhq/insights-service/internal/adapters/openai"
	"github.com/oolnhq/insights-service/internal/adapters/storage"
	"github.com/oolnhq/insights-service/internal/api/handlers"
	"github.com/oolnhq/insights-service/internal/intent"
	"github.com/oolnhq/insights-service/internal/logger"
	"github.com/oolnhq/insights-service/internal/pkg/httpserver"
	"github.com/oolnhq/insights-service/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()

	addr := env("HTTP_ADDR", ":8080")
	csvPath := env("TRADES_CSV", "data/trades.csv")
	corpusPath := env("INTENT_CORPUS", "data/intent_corpus.json")

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal().Msg("missing OPENAI_API_KEY")
	}

	// Adapters (infrastructure)
	aiClient := openaiadapter.New(openaiadapter.Config{
		APIKey:    apiKey,
		BaseURL:   os.Getenv("OPENAI_BASE_URL"),
		ChatModel: os.Getenv("ADVISOR_MODEL"),
	}, log)
	source := storage.NewFileSource(csvPath)

	corpus, err := storage.LoadCorpus(corpusPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading intent corpus")
	}

	// Application service (use cases)
	classifier := intent.NewClassifier(aiClient, corpus, log)
	router := intent.NewRouter(classifier)
	service := usecase.NewInsightService(source, router, aiClient, log)

	// HTTP server (interface adapter)
	insights := handlers.NewInsightsHandler(service, log)
	s := httpserver.New(addr, handlers.NewRouter(insights, log))

	// Start
	go func() {
		log.Info().Str("addr", addr).Msg("insights service listening")
		if err := s.Start(); err != nil {
			log.Fatal().Err(err).Msg("serve error")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop
	log.Info().Msg("shutting down")
	s.Stop()
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
