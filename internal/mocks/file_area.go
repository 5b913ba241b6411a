package mocks

import "context"

// MockFileArea implements filearea.FileArea for testing
type MockFileArea struct {
	CreateFolderFn func(ctx context.Context, logicalPath string) error
	RemoveFolderFn func(ctx context.Context, logicalPath string) error

	// Call tracking
	CreatedFolders []string
	RemovedFolders []string
}

// CreateFolder implements the FileArea interface
func (m *MockFileArea) CreateFolder(ctx context.Context, logicalPath string) error {
	m.CreatedFolders = append(m.CreatedFolders, logicalPath)

	if m.CreateFolderFn != nil {
		return m.CreateFolderFn(ctx, logicalPath)
	}
	return nil
}

// RemoveFolder implements the FileArea interface
func (m *MockFileArea) RemoveFolder(ctx context.Context, logicalPath string) error {
	m.RemovedFolders = append(m.RemovedFolders, logicalPath)

	if m.RemoveFolderFn != nil {
		return m.RemoveFolderFn(ctx, logicalPath)
	}
	return nil
}
