package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

func TestFileStore_SaveLoadClear(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"), logger.NewNop())

	_, ok := store.Load()
	assert.False(t, ok)

	store.Save("issued-token")
	token, ok := store.Load()
	assert.True(t, ok)
	assert.Equal(t, "issued-token", token)

	store.Clear()
	_, ok = store.Load()
	assert.False(t, ok)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	store.Save("t")
	token, ok := store.Load()
	assert.True(t, ok)
	assert.Equal(t, "t", token)

	store.Clear()
	_, ok = store.Load()
	assert.False(t, ok)
}
