package llm

import (
	"context"
	"testing"
	"time"

	"ats-backend/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	config.Conf = &config.Configuration{}
	t.Run(`unknown provider`, func(t *testing.T) {
		_, err := NewProvider(context.Background(), "openai")
		require.NotNil(t, err)
	})
	t.Run(`missing credentials`, func(t *testing.T) {
		_, err := NewProvider(context.Background(), "gemini")
		require.NotNil(t, err)
		_, err = NewProvider(context.Background(), " Yandex ")
		require.NotNil(t, err)
	})
	t.Run(`disabled provider`, func(t *testing.T) {
		_, err := disabled{reason: errors.New("no key")}.Generate(context.Background(), "", "")
		require.True(t, errors.Is(err, ErrDisabled))
	})
}

func TestLimited(t *testing.T) {
	static := &Static{Answer: "ok", Model: "test-model"}
	provider := NewLimited(static, 1)
	require.Equal(t, "test-model", provider.ModelName())

	answer, err := provider.Generate(context.Background(), "instruction", "text")
	require.Nil(t, err)
	require.Equal(t, "ok", answer)
	require.Equal(t, []string{"text"}, static.Texts)

	busy := provider.(limited)
	require.True(t, busy.limiter.Acquire(context.Background()))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = provider.Generate(ctx, "instruction", "text")
	require.NotNil(t, err)
	busy.limiter.Release()
}
