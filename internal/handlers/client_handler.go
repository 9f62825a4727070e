package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/inviteleaf/api/internal/models"
	"github.com/inviteleaf/api/internal/services"
)

func ListClients(cs *services.ClientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		clients, err := cs.ListClients(c.Request.Context())
		if err != nil {
			c.JSON(500, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(200, models.SuccessResponse(clients, "clients retrieved"))
	}
}

func GetClient(cs *services.ClientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(400, models.ErrorResponse("invalid client ID format"))
			return
		}

		client, err := cs.GetClient(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(404, models.ErrorResponse("client not found"))
				return
			}
			c.JSON(500, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(200, models.SuccessResponse(client, "client retrieved"))
	}
}

func CreateClient(cs *services.ClientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var client models.Client
		if err := c.ShouldBindJSON(&client); err != nil {
			c.JSON(400, models.ErrorResponse(err.Error()))
			return
		}

		created, err := cs.CreateClient(c.Request.Context(), &client, accessToken(c))
		if err != nil {
			c.JSON(400, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(201, models.SuccessResponse(created, "client created"))
	}
}

func UpdateClient(cs *services.ClientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(400, models.ErrorResponse("invalid client ID format"))
			return
		}

		var updates map[string]interface{}
		if err := c.ShouldBindJSON(&updates); err != nil {
			c.JSON(400, models.ErrorResponse(err.Error()))
			return
		}

		updated, err := cs.UpdateClient(c.Request.Context(), id, updates, accessToken(c))
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(404, models.ErrorResponse("client not found"))
				return
			}
			c.JSON(400, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(200, models.SuccessResponse(updated, "client updated"))
	}
}
