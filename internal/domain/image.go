package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a reference image is absent from the store.
var ErrNotFound = errors.New("image not found")

// Image represents a stored reference image. Data holds the encoded bytes
// exactly as uploaded; the comparison engine never mutates them.
type Image struct {
	ID         string
	Name       string
	Filename   string
	Data       []byte
	UploadedAt time.Time
}

// ImageStore defines the interface for reference-image persistence.
type ImageStore interface {
	// Save stores the raw upload bytes and returns the created record,
	// including its generated ID.
	Save(ctx context.Context, name, filename string, data []byte) (*Image, error)

	// Get retrieves an image by ID, including its bytes. Returns
	// ErrNotFound when no such image exists.
	Get(ctx context.Context, id string) (*Image, error)

	// List retrieves all image records without their bytes.
	List(ctx context.Context) ([]*Image, error)

	// Count returns the total number of stored images.
	Count(ctx context.Context) (int64, error)

	// Delete removes an image by ID.
	Delete(ctx context.Context, id string) error
}
