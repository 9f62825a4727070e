package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/inviteleaf/api/internal/invite"
	"github.com/inviteleaf/api/internal/models"
	"github.com/inviteleaf/api/internal/realtime"
	"github.com/inviteleaf/api/internal/services"
)

func ListBlessings(bs *services.BlessingService, cs *services.ClientService) gin.HandlerFunc {
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

		blessings, err := bs.ListBlessings(c.Request.Context(), client.ID)
		if err != nil {
			c.JSON(500, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(200, models.SuccessResponse(blessings, "blessings retrieved"))
	}
}

func SubmitBlessing(bs *services.BlessingService, cs *services.ClientService) gin.HandlerFunc {
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
			Name    string `json:"name"`
			Message string `json:"message"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, models.ErrorResponse(err.Error()))
			return
		}

		blessing, err := bs.SubmitBlessing(c.Request.Context(), client.ID, req.Name, req.Message)
		if err != nil {
			if errors.Is(err, models.ErrInvalid) {
				c.JSON(400, models.ErrorResponse(err.Error()))
				return
			}
			c.JSON(502, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(201, models.SuccessResponse(blessing, "blessing added"))
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// LiveBlessings upgrades a viewer to a websocket and streams two kinds
// of frames: blessings as they arrive and one countdown frame per
// second while the main ceremony is still ahead.
func LiveBlessings(is *services.InviteService, hub *realtime.Hub, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, when, err := is.MainCeremonyDate(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(404, models.ErrorResponse("invitation not found"))
				return
			}
			c.JSON(500, models.ErrorResponse(err.Error()))
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Error("Websocket upgrade failed", "slug", client.Slug, "error", err)
			return
		}
		defer conn.Close()

		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()

		sub := hub.Subscribe(client.ID.String())
		defer sub.Close()

		// The read loop only exists to notice the peer going away.
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					cancel()
					return
				}
			}
		}()

		var ticks <-chan invite.TimeLeft
		if when != nil {
			ticks = invite.Tick(ctx, *when)
		}

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub.C:
				if !ok {
					return
				}
				if err := conn.WriteJSON(ev); err != nil {
					return
				}
			case left, ok := <-ticks:
				if !ok {
					ticks = nil
					continue
				}
				frame := realtime.Event{Type: realtime.EventCountdown, Payload: left}
				if err := conn.WriteJSON(frame); err != nil {
					return
				}
			}
		}
	}
}
