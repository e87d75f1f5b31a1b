package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"firmas/internal/service"
)

// StatsHandler exposes worker processing counters.
type StatsHandler struct {
	processor *service.Processor
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(processor *service.Processor) *StatsHandler {
	return &StatsHandler{processor: processor}
}

// Stats handles GET /stats
func (h *StatsHandler) Stats(c *gin.Context) {
	processed, failed := h.processor.Stats()
	c.JSON(http.StatusOK, gin.H{
		"processed": processed,
		"failed":    failed,
	})
}
