package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContainsString(t *testing.T) {
	require.True(t, ContainsString([]string{"a", "b"}, "a"))
	require.False(t, ContainsString([]string{"a", "b"}, "c"))
	require.False(t, ContainsString(nil, "a"))
}

func TestMin(t *testing.T) {
	require.Equal(t, 1, Min(1, 2))
	require.Equal(t, 1, Min(2, 1))
	require.Equal(t, -3, Min(-3, 0))
}

func TestRandomAlphabetString(t *testing.T) {
	s := RandomAlphabetString(TestDBNameCharLength)
	require.Len(t, s, TestDBNameCharLength)
	for _, r := range s {
		require.True(t, r >= 'a' && r <= 'z')
	}
}
