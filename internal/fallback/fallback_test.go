package fallback

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Autum7899/My-Portfolio/internal/domain/content"
	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	store := NewFileStore(path, logger.NewNop())
	ctx := context.Background()

	snap := content.DefaultSnapshot()
	snap.Profile.Name = "Round Trip"
	store.Save(ctx, snap)

	loaded, ok := store.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, snap, loaded)
}

func TestFileStore_LoadMissingReportsNotFound(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"), logger.NewNop())

	_, ok := store.Load(context.Background())
	assert.False(t, ok)
}

func TestFileStore_CorruptFileReportsNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte("not valid json{"), 0o644))

	store := NewFileStore(path, logger.NewNop())
	_, ok := store.Load(context.Background())
	assert.False(t, ok)
}

func TestFileStore_SaveNeverPanicsOnUnwritablePath(t *testing.T) {
	// Directory path that cannot be created (parent is a file).
	parent := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(parent, []byte("x"), 0o644))

	store := NewFileStore(filepath.Join(parent, "dir", "snapshot.json"), logger.NewNop())

	assert.NotPanics(t, func() {
		store.Save(context.Background(), content.DefaultSnapshot())
	})
}

func TestFileStore_ConcurrentSavesKeepFileParsable(t *testing.T) {
	// Each save stages into its own temp file, so racing writers can never
	// interleave bytes; whichever rename lands last, the file stays valid.
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.json")
	store := NewFileStore(path, logger.NewNop())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			snap := content.DefaultSnapshot()
			snap.Profile.Name = fmt.Sprintf("Writer %d", i)
			for j := 0; j < 10; j++ {
				store.Save(ctx, snap)
			}
		}(i)
	}
	wg.Wait()

	loaded, ok := store.Load(ctx)
	require.True(t, ok)
	assert.Contains(t, loaded.Profile.Name, "Writer ")

	// No staging files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "snapshot.json", entries[0].Name())
}

func TestFileStore_SaveOverwritesPreviousSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	store := NewFileStore(path, logger.NewNop())
	ctx := context.Background()

	first := content.DefaultSnapshot()
	store.Save(ctx, first)

	second := first.Clone()
	second.Profile.Name = "Updated"
	store.Save(ctx, second)

	loaded, ok := store.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, "Updated", loaded.Profile.Name)
}
