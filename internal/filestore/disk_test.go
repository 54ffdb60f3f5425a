package filestore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "http://localhost:8080/uploads/")
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "report.pdf", []byte("content"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/"))
	assert.True(t, strings.HasSuffix(url, "-report.pdf"))

	fname := strings.TrimPrefix(url, "http://localhost:8080/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, fname))
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestDiskStore_SaveSanitizesName(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "http://localhost/uploads")
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "../../etc/pass wd", []byte("x"))
	require.NoError(t, err)

	assert.NotContains(t, url, "..")
	assert.True(t, strings.HasSuffix(url, "-pass_wd"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestDiskStore_SaveCancelledContext(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "http://localhost/uploads")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Save(ctx, "a.txt", []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)
}
