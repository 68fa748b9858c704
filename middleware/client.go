package middleware

import (
	"errors"
	"net/http"
	"strings"

	"findmylocal/utils"

	"github.com/gin-gonic/gin"
)

const (
	ClientIDHeader = "X-Client-ID"
	clientIDKey    = "clientID"
	maxClientIDLen = 128
)

var (
	ErrMissingClientID = errors.New("missing client id")
	ErrInvalidClientID = errors.New("invalid client id")
)

// ValidateClientID rejects ids that could collide with reserved store namespaces.
func ValidateClientID(id string) error {
	switch {
	case id == "":
		return ErrMissingClientID
	case len(id) > maxClientIDLen, strings.HasPrefix(id, "_"), strings.ContainsAny(id, ": \t\r\n"):
		return ErrInvalidClientID
	}
	return nil
}

// ClientIDMiddleware requires the X-Client-ID header and stores it on the context.
// Websocket clients cannot set headers, so the clientId query parameter is accepted too.
func ClientIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(ClientIDHeader))
		if id == "" {
			id = strings.TrimSpace(c.Query("clientId"))
		}
		if err := ValidateClientID(id); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid client", err.Error())
			return
		}
		c.Set(clientIDKey, id)
		c.Next()
	}
}

// OptionalClientID records the header when present and valid, and never aborts.
func OptionalClientID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(ClientIDHeader))
		if ValidateClientID(id) == nil {
			c.Set(clientIDKey, id)
		}
		c.Next()
	}
}

// GetClientID returns the id stored by ClientIDMiddleware, or "".
func GetClientID(c *gin.Context) string {
	return c.GetString(clientIDKey)
}
