// Package storage keeps uploaded cover originals in S3-compatible object storage.
// Objects are named by image key, a UUID minted by the moderation service when a
// cover is submitted; the image CDN fetches originals from the URLs returned by
// PublicURL.
package storage

import (
	"context"
	"io"
)

// Storage holds cover originals keyed by image key.
type Storage interface {
	// Upload stores the original for imageKey. contentType is one of the
	// accepted cover types (JPEG, PNG or WebP).
	Upload(ctx context.Context, imageKey string, reader io.Reader, size int64, contentType string) error
	// Delete removes the original for imageKey. Used to undo an upload whose
	// book row could not be written.
	Delete(ctx context.Context, imageKey string) error
	// PublicURL is the address the CDN pulls the original from.
	PublicURL(imageKey string) string
}
