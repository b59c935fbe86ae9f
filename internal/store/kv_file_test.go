package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "store.json")

	fs, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, fs.Set(ctx, KeyCurrentUser, "ana@example.com"))
	require.NoError(t, fs.Set(ctx, ContactsKey("ana@example.com"), `[]`))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	v, found, err := reopened.Get(ctx, KeyCurrentUser)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "ana@example.com", v)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]string
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Len(t, doc, 2)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_RemovePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")

	fs, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, fs.Set(ctx, "a", "1"))
	require.NoError(t, fs.Remove(ctx, "a"))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	_, found, err := reopened.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)

	_, found, err := fs.Get(context.Background(), KeyUsers)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStore_EmptyFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, err := NewFileStore(path)
	require.NoError(t, err)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"users": [1,2`), 0o600))

	_, err := NewFileStore(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCorruptStore))

	var corrupt *CorruptStoreError
	require.ErrorAs(t, err, &corrupt)
	assert.Equal(t, path, corrupt.Key)
}

func TestFileStore_FailedWriteKeepsState(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	// the document path is a directory, so the final rename fails
	path := filepath.Join(dir, "store.json")
	require.NoError(t, os.Mkdir(path, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(path, "keep"), []byte("x"), 0o600))

	fs := &FileStore{path: path, items: map[string]string{}}

	err := fs.Set(ctx, "a", "1")
	require.ErrorIs(t, err, ErrStorageUnavailable)

	_, found, err := fs.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, found)
}
