package localfs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Store(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	ref, err := store.Store(strings.NewReader("png-bytes"), "logo.png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, URLPrefix), "reference %q must be uploads-relative", ref)
	assert.True(t, strings.HasSuffix(ref, ".png"), "reference %q must keep the extension", ref)

	// The reference resolves to a real file with the uploaded content.
	onDisk := filepath.Join(store.Root(), strings.TrimPrefix(ref, URLPrefix))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestFileStore_StoreDistinctNames(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	seen := make(map[string]bool)
	for range 20 {
		ref, err := store.Store(strings.NewReader("x"), "a.jpg")
		require.NoError(t, err)
		assert.False(t, seen[ref], "name %q generated twice", ref)
		seen[ref] = true
	}
}

func TestFileStore_StoreNoExtension(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	ref, err := store.Store(strings.NewReader("x"), "README")
	require.NoError(t, err)
	assert.NotContains(t, filepath.Base(ref), ".")
}

func TestNew_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
