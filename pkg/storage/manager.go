// Package storage persists downloaded assets under one directory per
// region. The files on disk are the system's only persistent state: a
// path that already exists is the de-duplication key, there is no
// separate index.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Manager handles asset persistence and existence checks.
type Manager struct {
	baseDir string
}

// NewManager creates a storage manager rooted at baseDir, creating the
// directory if it does not exist.
func NewManager(baseDir string) (*Manager, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	return &Manager{baseDir: baseDir}, nil
}

// AssetPath returns the on-disk path for an asset. The region folder
// name must already be sanitized by the caller.
func (m *Manager) AssetPath(regionFolder, filename string) string {
	return filepath.Join(m.baseDir, regionFolder, filename)
}

// Exists reports whether an asset is already on disk.
func (m *Manager) Exists(regionFolder, filename string) bool {
	_, err := os.Stat(m.AssetPath(regionFolder, filename))
	return err == nil
}

// SaveAsset streams r to the asset's path, creating the region folder
// on demand. The data is written to a temporary file and renamed into
// place so readers never observe a partial asset.
func (m *Manager) SaveAsset(r io.Reader, regionFolder, filename string) error {
	dir := filepath.Join(m.baseDir, regionFolder)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create region directory: %w", err)
	}

	path := filepath.Join(dir, filename)
	tempFile := path + ".tmp"

	out, err := os.Create(tempFile)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	_, err = io.Copy(out, r)
	closeErr := out.Close()

	if err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to save asset data: %w", err)
	}

	if closeErr != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to close file: %w", closeErr)
	}

	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// BaseDir returns the output root path.
func (m *Manager) BaseDir() string {
	return m.baseDir
}
