package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/inviteleaf/api/internal/helpers"
	"github.com/inviteleaf/api/internal/models"
)

// PhotoUpload is one file received from the admin's gallery uploader.
type PhotoUpload struct {
	Filename    string
	ContentType string
	Data        io.Reader
}

type PhotoService struct {
	photoRepo models.PhotoRepo
}

func NewPhotoService(photoRepo models.PhotoRepo) *PhotoService {
	return &PhotoService{
		photoRepo: photoRepo,
	}
}

func (ps *PhotoService) ListPhotos(ctx context.Context, clientID uuid.UUID) ([]models.Photo, error) {
	if clientID == uuid.Nil {
		return nil, fmt.Errorf("invalid client ID")
	}

	return ps.photoRepo.ListPhotos(ctx, clientID)
}

// UploadPhotos stores each file under the client's slug with a random
// name and records its metadata row. It stops at the first failure and
// returns the photos persisted so far, so a partial batch survives.
// progress, when non-nil, is called after every completed file.
func (ps *PhotoService) UploadPhotos(ctx context.Context, clientID uuid.UUID, slug string, uploads []PhotoUpload, accessToken string, progress func(done, total int)) ([]models.Photo, error) {
	if clientID == uuid.Nil {
		return nil, fmt.Errorf("invalid client ID")
	}
	if slug == "" {
		return nil, fmt.Errorf("slug cannot be empty")
	}
	if len(uploads) == 0 {
		return nil, fmt.Errorf("no files provided")
	}

	saved := make([]models.Photo, 0, len(uploads))
	for i, upload := range uploads {
		name := helpers.RandomFileName(upload.Filename)
		path := slug + "/" + name

		if err := ps.photoRepo.UploadObject(ctx, path, upload.ContentType, upload.Data, accessToken); err != nil {
			return saved, fmt.Errorf("failed to upload %s: %w", upload.Filename, err)
		}

		photo := &models.Photo{
			ID:          uuid.New(),
			ClientID:    clientID,
			StoragePath: path,
			Filename:    upload.Filename,
			Width:       0,
			Height:      0,
			CreatedAt:   time.Now(),
		}
		inserted, err := ps.photoRepo.InsertPhoto(ctx, photo, accessToken)
		if err != nil {
			return saved, fmt.Errorf("failed to record %s: %w", upload.Filename, err)
		}

		saved = append(saved, *inserted)
		if progress != nil {
			progress(i+1, len(uploads))
		}
	}

	return saved, nil
}

func (ps *PhotoService) PublicURL(path string) string {
	return ps.photoRepo.PublicURL(path)
}
