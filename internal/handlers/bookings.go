package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListBookings - GET /api/bookings
// Получить отчет по всем броням
func (h *Handlers) ListBookings(c *gin.Context) {
	response, err := h.services.Bookings.List(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list bookings", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}

	c.JSON(http.StatusOK, response)
}
