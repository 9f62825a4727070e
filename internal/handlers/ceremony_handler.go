package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/inviteleaf/api/internal/models"
	"github.com/inviteleaf/api/internal/services"
)

func ListCeremoniesForEdit(cs *services.CeremonyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(400, models.ErrorResponse("invalid client ID format"))
			return
		}

		drafts, err := cs.ListForEdit(c.Request.Context(), clientID)
		if err != nil {
			c.JSON(500, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(200, models.SuccessResponse(drafts, "ceremonies retrieved"))
	}
}

// SaveCeremonies applies an editor batch. On a mid-batch failure it
// still reports how many rows were saved so the editor can retry only
// the remainder.
func SaveCeremonies(cs *services.CeremonyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(400, models.ErrorResponse("invalid client ID format"))
			return
		}

		var drafts []services.CeremonyDraft
		if err := c.ShouldBindJSON(&drafts); err != nil {
			c.JSON(400, models.ErrorResponse(err.Error()))
			return
		}

		applied, err := cs.SaveAll(c.Request.Context(), clientID, drafts, accessToken(c))
		if err != nil {
			c.JSON(400, gin.H{
				"success": false,
				"error":   err.Error(),
				"applied": applied,
			})
			return
		}

		c.JSON(200, models.SuccessResponse(gin.H{"applied": applied}, "ceremonies saved"))
	}
}

func DeleteCeremony(cs *services.CeremonyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(400, models.ErrorResponse("invalid ceremony ID format"))
			return
		}

		if err := cs.DeleteCeremony(c.Request.Context(), id, accessToken(c)); err != nil {
			c.JSON(500, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(200, models.SuccessResponse(nil, "ceremony deleted"))
	}
}

// ListEventTypes serves the named titles the ceremony editor offers.
func ListEventTypes() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, models.SuccessResponse(models.EventTypes, "event types retrieved"))
	}
}
