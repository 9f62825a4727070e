package models

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// Photo is one uploaded image's metadata row. Width and height are
// recorded for a future resize pass but are written as zero today; URLs
// are derived at render time from the storage path.
type Photo struct {
	ID          uuid.UUID `db:"id" json:"id"`
	ClientID    uuid.UUID `db:"client_id" json:"client_id"`
	StoragePath string    `db:"storage_path" json:"storage_path"`
	Filename    string    `db:"filename" json:"filename"`
	Width       int       `db:"width" json:"width"`
	Height      int       `db:"height" json:"height"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type PhotoRepo interface {
	ListPhotos(ctx context.Context, clientID uuid.UUID) ([]Photo, error)
	InsertPhoto(ctx context.Context, photo *Photo, accessToken string) (*Photo, error)
	// UploadObject stores the binary under path in the photo bucket,
	// acting as the uploading admin.
	UploadObject(ctx context.Context, path, contentType string, data io.Reader, accessToken string) error
	// PublicURL builds the public URL for a stored path by concatenating
	// the storage base URL, the bucket and the path.
	PublicURL(path string) string
}
