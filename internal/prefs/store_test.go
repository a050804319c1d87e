package prefs

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_GetMissing(t *testing.T) {
	s := openTestStore(t)

	v, err := s.Get(context.Background(), "visitor", ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestStore_SetOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "visitor", ThemeKey, "dark"))
	require.NoError(t, s.Set(ctx, "visitor", ThemeKey, "light"))

	v, err := s.Get(ctx, "visitor", ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "light", v)

	other, err := s.Get(ctx, "someone-else", ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "", other)
}

func TestStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	ctx := context.Background()

	s, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "visitor", ThemeKey, "dark"))
	require.NoError(t, s.Close())

	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	v, err := s.Get(ctx, "visitor", ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", v)
	assert.NoError(t, s.Ping(ctx))
}
