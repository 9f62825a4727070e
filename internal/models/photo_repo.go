package models

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
	storage_go "github.com/supabase-community/storage-go"
)

func (su *SupabaseRepo) ListPhotos(ctx context.Context, clientID uuid.UUID) ([]Photo, error) {
	if clientID == uuid.Nil {
		return nil, fmt.Errorf("invalid client UUID")
	}

	raw, _, err := su.supabaseClient.
		From(PhotosTable).
		Select("*", "", false).
		Eq("client_id", clientID.String()).
		Order("created_at", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %v", err)
	}

	var photos []Photo
	if err := json.Unmarshal(raw, &photos); err != nil {
		return nil, fmt.Errorf("failed to unmarshal photo rows: %v", err)
	}

	return photos, nil
}

func (su *SupabaseRepo) InsertPhoto(ctx context.Context, photo *Photo, accessToken string) (*Photo, error) {
	photoData := map[string]interface{}{
		"id":           photo.ID,
		"client_id":    photo.ClientID,
		"storage_path": photo.StoragePath,
		"filename":     photo.Filename,
		"width":        photo.Width,
		"height":       photo.Height,
	}

	authClient, err := su.GetAuthenticatedClient(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to get authenticated client: %v", err)
	}

	raw, count, err := authClient.
		From(PhotosTable).
		Insert(photoData, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to insert photo: %v", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("no photo row returned after insert")
	}

	var created []Photo
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created photo: %v", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("no photo data returned after insert")
	}

	return &created[0], nil
}

func (su *SupabaseRepo) UploadObject(ctx context.Context, path, contentType string, data io.Reader, accessToken string) error {
	authClient, err := su.GetAuthenticatedClient(accessToken)
	if err != nil {
		return fmt.Errorf("failed to get authenticated client: %v", err)
	}

	_, err = authClient.Storage.UploadFile(su.bucket, path, data, storage_go.FileOptions{
		ContentType: &contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object %s: %v", path, err)
	}
	return nil
}

func (su *SupabaseRepo) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", su.url, su.bucket, path)
}
