// Package storage puts image blobs somewhere publicly reachable and hands back their URL.
package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"photomarket/internal/config"

	"github.com/google/uuid"
)

// Folders used as key prefixes.
const (
	FolderPortfolio = "portfolio"
	FolderProfile   = "profile"
)

// ObjectKey builds "<folder>/<owner>/<random uuid><ext>" keeping the original extension.
func ObjectKey(folder string, owner uuid.UUID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%s/%s%s", folder, owner, uuid.New(), ext)
}

// New picks the backend named by cfg.Driver.
func New(cfg config.StorageConfig) (Store, error) {
	switch cfg.Driver {
	case "s3":
		return NewS3Store(cfg)
	case "disk", "":
		return NewDiskStore(cfg.UploadDir, cfg.PublicBaseURL)
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}
