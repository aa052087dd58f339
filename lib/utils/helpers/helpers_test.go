package helpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	require.False(t, IsContextDone(ctx))
	cancel()
	require.True(t, IsContextDone(ctx))
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "Go", Truncate("  Go  ", 10))
	require.Equal(t, "Bac", Truncate("Backend", 3))
	require.Equal(t, "Zür", Truncate("Zürich", 3))
	require.Equal(t, "a", Truncate("a b", 2))
}

func TestShorten(t *testing.T) {
	require.Equal(t, "short", Shorten("short", 10))
	require.Equal(t, "abc...", Shorten("abcdef", 3))
}
