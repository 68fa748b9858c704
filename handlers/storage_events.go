package handlers

import (
	"findmylocal/middleware"
	"findmylocal/websocket"

	"github.com/gin-gonic/gin"
)

// StorageEventsHandler streams client-key change events over a websocket.
type StorageEventsHandler struct {
	Hub *websocket.Hub
}

func NewStorageEventsHandler(hub *websocket.Hub) *StorageEventsHandler {
	return &StorageEventsHandler{Hub: hub}
}

// Stream handles GET /api/storage/events.
func (h *StorageEventsHandler) Stream(c *gin.Context) {
	h.Hub.Serve(c.Writer, c.Request, middleware.GetClientID(c))
}
