// Package filearea provides the file-storage capability: creation and
// removal of logical folders (collection archives, user avatars). The
// capability is best-effort by contract; it is never part of a database
// transaction and callers treat failures as log-only events.
package filearea

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileArea defines the file-storage capability consumed by the services.
type FileArea interface {
	// CreateFolder creates the folder at the given logical path,
	// including any missing parents.
	CreateFolder(ctx context.Context, logicalPath string) error

	// RemoveFolder removes the folder at the given logical path and
	// everything beneath it. Removing a folder that does not exist is
	// not an error.
	RemoveFolder(ctx context.Context, logicalPath string) error
}

// CollectionArchivePath returns the logical path of a collection's
// archive folder.
func CollectionArchivePath(collectionID int64) string {
	return fmt.Sprintf("archives/%d", collectionID)
}

// UserAvatarPath returns the logical path of a user's avatar folder.
func UserAvatarPath(userID int64) string {
	return fmt.Sprintf("avatars/%d", userID)
}

// LocalFileArea implements FileArea on the local filesystem, rooted at
// a configured directory.
type LocalFileArea struct {
	root   string
	logger *slog.Logger
}

// NewLocalFileArea creates a FileArea rooted at the given directory.
// If logger is nil, a default logger will be used.
func NewLocalFileArea(root string, logger *slog.Logger) *LocalFileArea {
	if logger == nil {
		logger = slog.Default()
	}

	return &LocalFileArea{
		root:   root,
		logger: logger.With(slog.String("component", "file_area")),
	}
}

// Ensure LocalFileArea implements FileArea
var _ FileArea = (*LocalFileArea)(nil)

// CreateFolder implements FileArea.CreateFolder
func (a *LocalFileArea) CreateFolder(ctx context.Context, logicalPath string) error {
	full, err := a.resolve(logicalPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(full, 0o755); err != nil {
		return fmt.Errorf("failed to create folder %q: %w", logicalPath, err)
	}

	a.logger.Debug("folder created", slog.String("path", logicalPath))
	return nil
}

// RemoveFolder implements FileArea.RemoveFolder
func (a *LocalFileArea) RemoveFolder(ctx context.Context, logicalPath string) error {
	full, err := a.resolve(logicalPath)
	if err != nil {
		return err
	}

	if err := os.RemoveAll(full); err != nil {
		return fmt.Errorf("failed to remove folder %q: %w", logicalPath, err)
	}

	a.logger.Debug("folder removed", slog.String("path", logicalPath))
	return nil
}

// resolve maps a logical path onto the storage root, rejecting paths
// that would escape it.
func (a *LocalFileArea) resolve(logicalPath string) (string, error) {
	cleaned := filepath.Clean(logicalPath)
	if cleaned == "." || cleaned == string(filepath.Separator) ||
		strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid logical path %q", logicalPath)
	}
	return filepath.Join(a.root, cleaned), nil
}
