package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/inviteleaf/api/internal/models"
	"github.com/inviteleaf/api/internal/services"
)

// GetInvite serves the public invitation page payload for a slug.
func GetInvite(is *services.InviteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := is.GetInvite(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(404, models.ErrorResponse("invitation not found"))
				return
			}
			c.JSON(500, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(200, models.SuccessResponse(view, "invitation retrieved"))
	}
}

// GetVisitCount reports how many times a client's invitation page has
// been opened.
func GetVisitCount(is *services.InviteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(400, models.ErrorResponse("invalid client ID format"))
			return
		}

		count, err := is.VisitCount(c.Request.Context(), clientID)
		if err != nil {
			c.JSON(500, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(200, models.SuccessResponse(gin.H{"visits": count}, "visit count retrieved"))
	}
}
