package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/inviteleaf/api/internal/models"
	"github.com/inviteleaf/api/internal/services"
)

func GetSettings(ss *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := ss.GetSettings(c.Request.Context())
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(200, models.SuccessResponse(&models.Settings{}, "settings not yet saved"))
				return
			}
			c.JSON(500, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(200, models.SuccessResponse(settings, "settings retrieved"))
	}
}

func SaveSettings(ss *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings models.Settings
		if err := c.ShouldBindJSON(&settings); err != nil {
			c.JSON(400, models.ErrorResponse(err.Error()))
			return
		}

		saved, err := ss.SaveSettings(c.Request.Context(), &settings, accessToken(c))
		if err != nil {
			c.JSON(400, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(200, models.SuccessResponse(saved, "settings saved"))
	}
}
