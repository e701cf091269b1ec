// Package storage keeps uploaded images, in S3 or on local disk.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// Store saves an object and returns its public URL.
type Store interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

// Uploader normalizes images and hands them to a Store.
type Uploader struct {
	store    Store
	maxWidth int
	now      func() time.Time
}

func NewUploader(store Store, maxWidth int) *Uploader {
	return &Uploader{
		store:    store,
		maxWidth: maxWidth,
		now:      time.Now,
	}
}

// Upload re-encodes r as WebP and stores it under a fresh key.
func (u *Uploader) Upload(ctx context.Context, r io.Reader) (string, error) {
	body, err := Normalize(r, u.maxWidth)
	if err != nil {
		return "", err
	}
	return u.store.Put(ctx, NewKey(u.now()), body, ContentTypeWebP)
}

// NewKey returns uploads/YYYY/MM/<uuid>.webp.
func NewKey(now time.Time) string {
	return fmt.Sprintf("uploads/%s/%s.webp", now.Format("2006/01"), uuid.NewString())
}
