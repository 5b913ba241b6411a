package filearea_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkden/linkden/internal/platform/filearea"
)

func TestLogicalPaths(t *testing.T) {
	assert.Equal(t, "archives/42", filearea.CollectionArchivePath(42))
	assert.Equal(t, "avatars/7", filearea.UserAvatarPath(7))
}

func TestLocalFileAreaCreateAndRemove(t *testing.T) {
	root := t.TempDir()
	area := filearea.NewLocalFileArea(root, nil)
	ctx := context.Background()

	require.NoError(t, area.CreateFolder(ctx, "archives/42"))

	info, err := os.Stat(filepath.Join(root, "archives", "42"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	require.NoError(t, area.RemoveFolder(ctx, "archives/42"))

	_, err = os.Stat(filepath.Join(root, "archives", "42"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalFileAreaRemoveMissingFolder(t *testing.T) {
	area := filearea.NewLocalFileArea(t.TempDir(), nil)

	// Removing a folder that never existed is not an error.
	assert.NoError(t, area.RemoveFolder(context.Background(), "archives/999"))
}

func TestLocalFileAreaRejectsEscapingPaths(t *testing.T) {
	root := t.TempDir()
	area := filearea.NewLocalFileArea(root, nil)
	ctx := context.Background()

	for _, path := range []string{"..", "../outside", "a/../../outside", "/etc", "."} {
		assert.Error(t, area.CreateFolder(ctx, path), "path %q", path)
		assert.Error(t, area.RemoveFolder(ctx, path), "path %q", path)
	}
}
