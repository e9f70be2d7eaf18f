package letters

import (
	"context"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// Generator is the single external text-generation call the pipeline makes.
// One attempt per invocation; retries would be the orchestrator's call and it
// deliberately does not make them.
type Generator interface {
	Generate(ctx context.Context, prompt, requestKind string) (string, error)
	Provider() string
}

// samplingConfig is fixed per request kind. Not user-configurable.
type samplingConfig struct {
	Temperature float64
	TopP        float64
	TopK        int
	MaxTokens   int
}

var samplingByKind = map[string]samplingConfig{
	KindCoverLetter:     {Temperature: 0.7, TopP: 0.9, TopK: 40, MaxTokens: 1024},
	KindOutreachMessage: {Temperature: 0.7, TopP: 0.9, TopK: 40, MaxTokens: 512},
}

// GeminiGenerator adapts the Gemini client behind the Generator interface.
// The client is built once and injected, so tests can swap in a double
// without process-level state.
type GeminiGenerator struct {
	Client llms.Model
	Model  string
}

const defaultGeminiModel = "gemini-2.5-flash"

// NewGeminiGenerator initializes the Gemini client with the given API key.
func NewGeminiGenerator(ctx context.Context, apiKey string) (*GeminiGenerator, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(defaultGeminiModel),
	)
	if err != nil {
		return nil, err
	}
	return &GeminiGenerator{Client: llm, Model: defaultGeminiModel}, nil
}

func (g *GeminiGenerator) Provider() string { return "gemini" }

// Generate runs one completion with the fixed sampling config for the kind.
// An empty or whitespace-only completion is an error in its own right; any
// transport/provider failure is wrapped with the provider message kept for
// diagnostics.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt, requestKind string) (string, error) {
	cfg, ok := samplingByKind[requestKind]
	if !ok {
		cfg = samplingByKind[KindCoverLetter]
	}

	resp, err := llms.GenerateFromSinglePrompt(ctx, g.Client, prompt,
		llms.WithTemperature(cfg.Temperature),
		llms.WithTopP(cfg.TopP),
		llms.WithTopK(cfg.TopK),
		llms.WithMaxTokens(cfg.MaxTokens),
	)
	if err != nil {
		return "", newGenerationError("provider call failed", err)
	}
	if strings.TrimSpace(resp) == "" {
		return "", newGenerationError("empty response from provider", nil)
	}
	return resp, nil
}
