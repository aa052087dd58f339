package initchecker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type provider interface{ Do() }

type impl struct{}

func (*impl) Do() {}

func TestCheckInit(t *testing.T) {
	var unset provider
	var typedNil *impl
	var set provider = &impl{}

	require.Equal(t, []string{"a", "b"}, Missing("a", unset, "b", typedNil, "c", set))
	require.Empty(t, Missing("c", set, "d", 42))
	require.NotPanics(t, func() { CheckInit("c", set) })
	require.PanicsWithValue(t, "dependencies not initialized: a", func() { CheckInit("a", unset, "c", set) })
	require.Panics(t, func() { CheckInit("a") })
}
