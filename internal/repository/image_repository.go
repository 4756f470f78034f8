package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lewtec/comparador/internal/domain"
)

// ImageRepository implements domain.ImageStore on SQLite. Reference
// images are stored as blobs; IDs are UUIDs assigned on save.
type ImageRepository struct {
	db *sql.DB
}

// NewImageRepository creates a new ImageRepository.
func NewImageRepository(db *sql.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

// Save stores the raw upload bytes under a fresh UUID.
func (r *ImageRepository) Save(ctx context.Context, name, filename string, data []byte) (*domain.Image, error) {
	img := &domain.Image{
		ID:         uuid.New().String(),
		Name:       name,
		Filename:   filename,
		Data:       data,
		UploadedAt: time.Now().UTC(),
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO images (id, name, filename, data, uploaded_at) VALUES (?, ?, ?, ?, ?)",
		img.ID, img.Name, img.Filename, img.Data, img.UploadedAt)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Get retrieves an image and its bytes by ID.
func (r *ImageRepository) Get(ctx context.Context, id string) (*domain.Image, error) {
	var img domain.Image
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, filename, data, uploaded_at FROM images WHERE id = ?", id).
		Scan(&img.ID, &img.Name, &img.Filename, &img.Data, &img.UploadedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// List retrieves all image records, newest first, without their bytes.
func (r *ImageRepository) List(ctx context.Context) ([]*domain.Image, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, filename, uploaded_at FROM images ORDER BY uploaded_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.Image
	for rows.Next() {
		var img domain.Image
		if err := rows.Scan(&img.ID, &img.Name, &img.Filename, &img.UploadedAt); err != nil {
			return nil, err
		}
		result = append(result, &img)
	}
	return result, rows.Err()
}

// Count returns the total number of stored images.
func (r *ImageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM images").Scan(&count)
	return count, err
}

// Delete removes an image by ID.
func (r *ImageRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM images WHERE id = ?", id)
	return err
}

// Verify that ImageRepository implements domain.ImageStore
var _ domain.ImageStore = (*ImageRepository)(nil)
