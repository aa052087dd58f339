package llm

import (
	"context"
	"strings"

	"ats-backend/config"
	"ats-backend/lib/utils/lock"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	ProviderGemini = "gemini"
	ProviderYandex = "yandex"
)

var ErrDisabled = errors.New("AI provider is not configured")

// Provider generates text from a system instruction and user text.
type Provider interface {
	Generate(ctx context.Context, instruction, text string) (generated string, err error)
	ModelName() string
}

var Instance Provider

func NewHandler() {
	provider, err := NewProvider(context.Background(), config.Conf.AI.Provider)
	if err != nil {
		log.WithError(err).
			WithField("provider", config.Conf.AI.Provider).
			Warn("AI provider disabled")
		Instance = disabled{reason: err}
		return
	}
	log.
		WithField("model", provider.ModelName()).
		WithField("max_concurrent", config.Conf.AI.MaxConcurrent).
		Info("AI provider initialized")
	Instance = NewLimited(provider, config.Conf.AI.MaxConcurrent)
}

// NewLimited caps the number of concurrent Generate calls to provider.
func NewLimited(provider Provider, maxConcurrent int) Provider {
	return limited{
		Provider: provider,
		limiter:  lock.NewLimiter(maxConcurrent),
	}
}

type limited struct {
	Provider
	limiter *lock.Limiter
}

func (l limited) Generate(ctx context.Context, instruction, text string) (string, error) {
	if !l.limiter.Acquire(ctx) {
		return "", errors.Wrap(ctx.Err(), "waiting for a free AI slot")
	}
	defer l.limiter.Release()
	return l.Provider.Generate(ctx, instruction, text)
}

func NewProvider(ctx context.Context, name string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ProviderGemini, "":
		if config.Conf.AI.GeminiAPIKey == "" {
			return nil, errors.New("GEMINI_API_KEY is empty")
		}
		return NewGeminiClient(ctx, config.Conf.AI.GeminiAPIKey, config.Conf.AI.GeminiModel)
	case ProviderYandex:
		if config.Conf.AI.YandexIAMToken == "" || config.Conf.AI.YandexCatalogID == "" {
			return nil, errors.New("YandexGPT IAM token or catalog id is empty")
		}
		return NewYandexClient(config.Conf.AI.YandexIAMToken, config.Conf.AI.YandexCatalogID), nil
	}
	return nil, errors.Errorf("unknown AI provider: %q", name)
}

type disabled struct {
	reason error
}

func (d disabled) Generate(ctx context.Context, instruction, text string) (string, error) {
	return "", errors.Wrap(ErrDisabled, d.reason.Error())
}

func (d disabled) ModelName() string {
	return "disabled"
}

// Static returns a fixed answer or error, for wiring without a remote model.
type Static struct {
	Answer string
	Err    error
	Model  string

	Instructions []string
	Texts        []string
}

func (s *Static) Generate(ctx context.Context, instruction, text string) (string, error) {
	s.Instructions = append(s.Instructions, instruction)
	s.Texts = append(s.Texts, text)
	if s.Err != nil {
		return "", s.Err
	}
	return s.Answer, nil
}

func (s *Static) ModelName() string {
	if s.Model == "" {
		return "static"
	}
	return s.Model
}
