package track_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chorogi/melody/internal/catalog/track"
)

func TestDiskStorage_Save(t *testing.T) {
	root := t.TempDir()
	storage, err := track.NewDiskStorage(root)
	require.NoError(t, err)

	payload := []byte("fake mpeg frames")
	relativePath, err := storage.Save("Café del Mar.MP3", bytes.NewReader(payload))
	require.NoError(t, err)

	// Timestamped, slugged, lowercase extension.
	assert.True(t, strings.HasSuffix(relativePath, ".mp3"), "path: %s", relativePath)
	assert.Contains(t, relativePath, "cafe-del-mar")
	assert.False(t, strings.Contains(relativePath, string(os.PathSeparator)+".."),
		"path must stay under the upload root")

	written, err := os.ReadFile(filepath.Join(root, relativePath))
	require.NoError(t, err)
	assert.Equal(t, payload, written)
}

func TestDiskStorage_Save_UnsluggableName(t *testing.T) {
	storage, err := track.NewDiskStorage(t.TempDir())
	require.NoError(t, err)

	relativePath, err := storage.Save("봄날.mp3", bytes.NewReader([]byte("x")))
	require.NoError(t, err)

	// Titles with no ASCII decomposition fall back to a generic base name.
	assert.Contains(t, relativePath, "audio")
	assert.True(t, strings.HasSuffix(relativePath, ".mp3"))
}

func TestNewDiskStorage_CreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := track.NewDiskStorage(root)
	require.NoError(t, err)

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
