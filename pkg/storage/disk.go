// Package storage stores product image blobs behind a small disk
// abstraction. Two drivers:
//   - "local" — local filesystem (default)
//   - "s3"    — S3-compatible object storage (AWS S3, MinIO, R2)
//
// Image documents persist only the storage key; URL resolves the public
// address at read time, so switching drivers never rewrites documents.
package storage

import "io"

// Disk is the blob driver interface.
type Disk interface {
	// Put writes content to key, creating parents as needed.
	Put(key string, content []byte) error

	// PutStream writes from r to key.
	PutStream(key string, r io.Reader) error

	// Get returns the full content stored at key.
	Get(key string) ([]byte, error)

	// GetStream returns a ReadCloser for key. Caller closes it.
	GetStream(key string) (io.ReadCloser, error)

	// Exists reports whether a blob exists at key.
	Exists(key string) bool

	// Size returns the byte size of the blob.
	Size(key string) (int64, error)

	// URL returns the public URL for key.
	URL(key string) string

	// Delete removes a blob. Nil if the blob did not exist.
	Delete(key string) error
}
