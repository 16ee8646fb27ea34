package openai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
)

const requestTimeout = 60 * time.Second

type Config struct {
	APIKey string
	// BaseURL overrides the API host, for OpenAI-compatible gateways.
	BaseURL   string
	ChatModel string
}

// Client implements the Embedder and Advisor ports against an
// OpenAI-compatible API.
type Client struct {
	api       *openai.Client
	chatModel string
	log       zerolog.Logger
}

func New(cfg Config, log zerolog.Logger) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	chatModel := cfg.ChatModel
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}
	return &Client{
		api:       openai.NewClientWithConfig(apiCfg),
		chatModel: chatModel,
		log:       log,
	}
}

// Embed converts text into a vector with text-embedding-3-small, the model
// the intent corpus was generated with. No retries; a failed call means
// classification is unavailable.
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.SmallEmbedding3,
	})
	if err != nil {
		return nil, fmt.Errorf("embeddings request: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, errors.New("embeddings response contained no data")
	}

	c.log.Debug().
		Int("prompt_tokens", resp.Usage.PromptTokens).
		Int("total_tokens", resp.Usage.TotalTokens).
		Msg("embedding token usage")

	raw := resp.Data[0].Embedding
	vector := make([]float64, len(raw))
	for i, v := range raw {
		vector[i] = float64(v)
	}
	return vector, nil
}

// Advise sends the prompt to the chat model and returns its prose.
func (c *Client) Advise(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat model returned no choices")
	}

	c.log.Debug().
		Str("model", resp.Model).
		Int("total_tokens", resp.Usage.TotalTokens).
		Msg("chat token usage")

	return resp.Choices[0].Message.Content, nil
}
