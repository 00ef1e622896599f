// Copyright (c) 2026 Melody. All rights reserved.

package track

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/chorogi/melody/pkg/slug"
)

// Storage persists uploaded audio payloads.
//
// Implementations return the relative path recorded in the media file row.
type Storage interface {
	Save(originalName string, payload io.Reader) (relativePath string, err error)
}

// DiskStorage writes uploads beneath a single root directory.
type DiskStorage struct {
	root string
}

// NewDiskStorage ensures the upload root exists and returns a DiskStorage.
func NewDiskStorage(root string) (*DiskStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("track: failed to create upload dir %s: %w", root, err)
	}
	return &DiskStorage{root: root}, nil
}

// Save streams the payload to disk under a collision-resistant filename.
//
// # Naming
//
// Files are named <unix-millis>_<slugged-base><ext> so uploads never clash
// and arbitrary Unicode titles become portable filesystem paths.
func (storage *DiskStorage) Save(originalName string, payload io.Reader) (string, error) {
	extension := strings.ToLower(filepath.Ext(originalName))
	base := strings.TrimSuffix(filepath.Base(originalName), extension)

	safeBase := slug.From(base)
	if safeBase == "" {
		safeBase = "audio"
	}

	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), safeBase, extension)

	// The DB records paths relative to the upload root, forward-slash form
	// regardless of host OS.
	relativePath := path.Clean(filename)
	absolutePath := filepath.Join(storage.root, filename)

	destination, err := os.Create(absolutePath)
	if err != nil {
		return "", fmt.Errorf("track: failed to create media file: %w", err)
	}
	defer destination.Close()

	if _, err := io.Copy(destination, payload); err != nil {
		// Remove the partial file so a retry does not leave garbage behind.
		_ = os.Remove(absolutePath)
		return "", fmt.Errorf("track: failed to write media file: %w", err)
	}

	return relativePath, nil
}
