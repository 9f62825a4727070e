package handlers

import (
	"errors"
	"log/slog"
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/inviteleaf/api/internal/models"
	"github.com/inviteleaf/api/internal/services"
)

func ListPhotos(ps *services.PhotoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(400, models.ErrorResponse("invalid client ID format"))
			return
		}

		photos, err := ps.ListPhotos(c.Request.Context(), clientID)
		if err != nil {
			c.JSON(500, models.ErrorResponse(err.Error()))
			return
		}

		type photoOut struct {
			models.Photo
			URL string `json:"url"`
		}
		out := make([]photoOut, 0, len(photos))
		for _, p := range photos {
			out = append(out, photoOut{Photo: p, URL: ps.PublicURL(p.StoragePath)})
		}

		c.JSON(200, models.SuccessResponse(out, "photos retrieved"))
	}
}

// UploadPhotos accepts a multipart batch under the "photos" field. A
// mid-batch failure keeps the files saved so far and says which file
// broke; both outcomes report how many of the batch made it.
func UploadPhotos(ps *services.PhotoService, cs *services.ClientService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(400, models.ErrorResponse("invalid client ID format"))
			return
		}

		client, err := cs.GetClient(c.Request.Context(), clientID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(404, models.ErrorResponse("client not found"))
				return
			}
			c.JSON(500, models.ErrorResponse(err.Error()))
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(400, models.ErrorResponse("invalid multipart form"))
			return
		}
		files := form.File["photos"]
		if len(files) == 0 {
			c.JSON(400, models.ErrorResponse("no files provided under 'photos'"))
			return
		}

		uploads := make([]services.PhotoUpload, 0, len(files))
		openedFiles := make([]multipart.File, 0, len(files))
		defer func() {
			for _, f := range openedFiles {
				f.Close()
			}
		}()
		for _, fh := range files {
			f, err := fh.Open()
			if err != nil {
				c.JSON(400, models.ErrorResponse("could not read "+fh.Filename))
				return
			}
			openedFiles = append(openedFiles, f)
			uploads = append(uploads, services.PhotoUpload{
				Filename:    fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Data:        f,
			})
		}

		progress := func(done, total int) {
			logger.Info("Photo upload progress",
				"client_id", client.ID,
				"uploaded", done,
				"total", total,
			)
		}

		saved, err := ps.UploadPhotos(c.Request.Context(), client.ID, client.Slug, uploads, accessToken(c), progress)
		if err != nil {
			c.JSON(502, gin.H{
				"success":  false,
				"error":    err.Error(),
				"uploaded": len(saved),
				"total":    len(uploads),
			})
			return
		}

		c.JSON(201, models.SuccessResponse(gin.H{
			"photos":   saved,
			"uploaded": len(saved),
			"total":    len(uploads),
		}, "photos uploaded"))
	}
}
