// Package content presigns upload and download URLs for track bytes held in
// S3-compatible object storage. The server never proxies track content; it
// hands clients short-lived URLs and stores only the object key.
package content

import "context"

// Store issues presigned URLs against the object store.
type Store interface {
	// PresignUpload mints a fresh object key and a presigned PUT URL for it.
	PresignUpload(ctx context.Context) (key string, url string, err error)

	// PresignDownload returns a presigned GET URL for an existing object key.
	PresignDownload(ctx context.Context, key string) (string, error)
}
