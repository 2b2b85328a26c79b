package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := openTestStore(t)

	type entry struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}

	require.NoError(t, store.Save("items", []entry{{Name: "Starter Pack", Price: 89}}))

	var loaded []entry
	require.True(t, store.Load("items", &loaded))
	require.Len(t, loaded, 1)
	assert.Equal(t, "Starter Pack", loaded[0].Name)
}

func TestStore_LoadMissingKey(t *testing.T) {
	store := openTestStore(t)

	var v []string
	assert.False(t, store.Load("never-written", &v))
	assert.Nil(t, v)
}

func TestStore_LoadUnreadableValueFallsBack(t *testing.T) {
	store := openTestStore(t)

	// A string is valid JSON but does not parse as a slice of structs
	require.NoError(t, store.Save("items", "not a list"))

	var v []struct{ Name string }
	assert.False(t, store.Load("items", &v))
}

func TestStore_ValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, store.Save("theme", "light"))
	require.NoError(t, store.Close())

	reopened, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	defer reopened.Close()

	var theme string
	require.True(t, reopened.Load("theme", &theme))
	assert.Equal(t, "light", theme)
}

func TestStore_Health(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.Save("a", 1))

	health := store.Health()
	assert.Equal(t, "up", health["status"])
	assert.Equal(t, "1", health["keys"])
}
