package handlers

import (
	"context"
	"net/http"

	"news-api/docs"
	"news-api/helper"

	"github.com/gin-gonic/gin"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type APIHandler struct {
	db     Pinger
	Helper *helper.HTTPHelper
}

func NewAPIHandler(db Pinger, h *helper.HTTPHelper) *APIHandler {
	return &APIHandler{db: db, Helper: h}
}

// GetAPI serves the endpoint catalogue.
func (h *APIHandler) GetAPI(c *gin.Context) error {
	return h.Helper.SendSuccess(c, http.StatusOK, gin.H{"endpoints": docs.Endpoints()})
}

// Health reports whether the database answers. Its body is a liveness
// status for probes, so a failed ping is written here rather than through
// the {message} error renderer.
func (h *APIHandler) Health(c *gin.Context) error {
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return nil
	}
	return h.Helper.SendSuccess(c, http.StatusOK, gin.H{"status": "healthy"})
}
