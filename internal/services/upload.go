package services

import (
	"context"
	"net/http"

	"photomarket/internal/metrics"
	"photomarket/internal/storage"
	"photomarket/internal/utils"

	"github.com/google/uuid"
)

// Upload is a file taken from a multipart form.
type Upload struct {
	Filename string
	Data     []byte
}

var imageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Uploader validates images and writes them to the object store.
type Uploader struct {
	store    storage.Store
	maxBytes int64
}

func NewUploader(store storage.Store, maxBytes int64) *Uploader {
	return &Uploader{store: store, maxBytes: maxBytes}
}

// Validate checks an upload without touching the store and returns its sniffed content type.
func (u *Uploader) Validate(up *Upload) (string, error) {
	if up == nil || len(up.Data) == 0 {
		return "", ErrNoFile
	}
	if u.maxBytes > 0 && int64(len(up.Data)) > u.maxBytes {
		return "", ErrFileTooLarge
	}
	contentType := http.DetectContentType(up.Data)
	if !imageTypes[contentType] {
		return "", ErrUnsupportedMedia
	}
	return contentType, nil
}

// Put validates and stores the upload under folder/owner and returns the key and public URL.
func (u *Uploader) Put(ctx context.Context, folder string, owner uuid.UUID, up *Upload) (string, string, error) {
	contentType, err := u.Validate(up)
	if err != nil {
		metrics.IncUpload(folder, false)
		return "", "", err
	}

	key := storage.ObjectKey(folder, owner, up.Filename)
	url, err := u.store.Put(ctx, key, up.Data, contentType)
	if err != nil {
		metrics.IncUpload(folder, false)
		return "", "", err
	}
	metrics.IncUpload(folder, true)
	return key, url, nil
}

// Discard removes a blob whose row could not be written.
func (u *Uploader) Discard(ctx context.Context, key string) {
	utils.LogError(u.store.Delete(ctx, key), "discard upload "+key)
}
