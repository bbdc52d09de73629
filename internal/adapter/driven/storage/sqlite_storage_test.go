package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	s, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "nested", "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStorage_SetGetRemove(t *testing.T) {
	s := openTestStorage(t)

	_, ok, err := s.GetItem("token")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetItem("token", "abc"))
	require.NoError(t, s.SetItem("token", "def"))

	v, ok, err := s.GetItem("token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "def", v)

	require.NoError(t, s.RemoveItem("token"))
	require.NoError(t, s.RemoveItem("token"))

	_, ok, err = s.GetItem("token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStorage_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	s, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	require.NoError(t, s.SetItem("user", `{"id":1}`))
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.GetItem("user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":1}`, v)
}
