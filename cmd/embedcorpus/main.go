// Command embedcorpus regenerates the intent example corpus by embedding
// every canonical example question. Run it whenever the examples or the
// embedding model change; the service itself never calls the embedding API
// for corpus entries.
package main

import (
	"context"
	"flag"
	"os"
	"sort"

	"github.com/joho/godotenv"

	openaiadapter "github.com/oolnhq/insights-service/internal/adapters/openai"
	"github.com/oolnhq/insights-service/internal/adapters/storage"
	"github.com/oolnhq/insights-service/internal/domain"
	"github.com/oolnhq/insights-service/internal/intent"
	"github.com/oolnhq/insights-service/internal/logger"
)

func main() {
	_ = godotenv.Load()

	out := flag.String("out", "data/intent_corpus.json", "output path for the generated corpus")
	flag.Parse()

	log := logger.New()

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal().Msg("missing OPENAI_API_KEY")
	}

	client := openaiadapter.New(openaiadapter.Config{
		APIKey:  apiKey,
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
	}, log)

	categories := make([]string, 0, len(intent.CanonicalExamples))
	for category := range intent.CanonicalExamples {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	ctx := context.Background()
	corpus := make(domain.IntentCorpus, len(categories))
	for _, category := range categories {
		for _, text := range intent.CanonicalExamples[category] {
			vector, err := client.Embed(ctx, text)
			if err != nil {
				log.Fatal().Err(err).Str("text", text).Msg("embedding example")
			}
			corpus[category] = append(corpus[category], domain.IntentExample{
				Text:      text,
				Embedding: vector,
			})
			log.Info().Str("category", category).Str("text", text).Msg("embedded example")
		}
	}

	if err := storage.SaveCorpus(*out, corpus); err != nil {
		log.Fatal().Err(err).Msg("saving corpus")
	}
	log.Info().Str("path", *out).Msg("corpus written")
}
