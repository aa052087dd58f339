package llm

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

const defaultGeminiModel = "gemini-2.5-flash"

type geminiImpl struct {
	client llms.Model
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (Provider, error) {
	if model == "" {
		model = defaultGeminiModel
	}
	client, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create Gemini client")
	}
	return geminiImpl{
		client: client,
		model:  model,
	}, nil
}

func (i geminiImpl) ModelName() string {
	return i.model
}

func (i geminiImpl) Generate(ctx context.Context, instruction, text string) (generated string, err error) {
	prompt := strings.TrimSpace(instruction + "\n\n" + text)
	generated, err = llms.GenerateFromSinglePrompt(ctx, i.client, prompt,
		llms.WithTemperature(0.2),
	)
	if err != nil {
		return "", errors.Wrap(err, "Gemini request failed")
	}
	return generated, nil
}
