package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/inviteleaf/api/internal/models"
	"github.com/inviteleaf/api/internal/services"
)

// SubmitRSVP records a visitor's attendance reply for the invitation
// behind a slug.
func SubmitRSVP(rs *services.RSVPService, cs *services.ClientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, err := cs.GetClientBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(404, models.ErrorResponse("invitation not found"))
				return
			}
			c.JSON(500, models.ErrorResponse(err.Error()))
			return
		}

		var req struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Response string `json:"response"`
			Message  string `json:"message"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, models.ErrorResponse(err.Error()))
			return
		}

		rsvp, err := rs.SubmitRSVP(c.Request.Context(), client.ID, req.Name, req.Email, req.Response, req.Message)
		if err != nil {
			if errors.Is(err, models.ErrInvalid) {
				c.JSON(400, models.ErrorResponse(err.Error()))
				return
			}
			c.JSON(502, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(201, models.SuccessResponse(rsvp, "rsvp recorded"))
	}
}

// ListRSVPs serves a client's replies to the admin dashboard.
func ListRSVPs(rs *services.RSVPService) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(400, models.ErrorResponse("invalid client ID format"))
			return
		}

		rsvps, err := rs.ListRSVPs(c.Request.Context(), clientID)
		if err != nil {
			c.JSON(500, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(200, models.SuccessResponse(rsvps, "rsvps retrieved"))
	}
}
