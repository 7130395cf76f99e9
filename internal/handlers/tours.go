package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	apperrors "chernotour/internal/errors"
	"chernotour/internal/models"

	"github.com/gin-gonic/gin"
)

// AddTour - POST /api/add_tour
// Добавить тур
func (h *Handlers) AddTour(c *gin.Context) {
	var req models.AddTourRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if *req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be >= 0"})
		return
	}

	response, err := h.services.Tours.Add(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTourExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Тур с таким названием уже существует"})
			return
		}
		slog.Error("Failed to add tour", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка базы данных"})
		return
	}

	if h.cache != nil {
		h.cache.InvalidateToursList(c.Request.Context())
	}

	c.JSON(http.StatusCreated, response)
}

// ListTours - GET /api/tours
// Получить список туров
func (h *Handlers) ListTours(c *gin.Context) {
	// Сначала пробуем кеш: сырой JSON отдается без повторной сериализации
	if h.cache != nil {
		if rawJSON, err := h.cache.GetToursListRaw(c.Request.Context()); err == nil {
			c.Data(http.StatusOK, "application/json", rawJSON)
			return
		}
	}

	response, err := h.services.Tours.List(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list tours", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tours"})
		return
	}

	if h.cache != nil {
		h.cache.SetToursList(c.Request.Context(), response)
	}

	c.JSON(http.StatusOK, response)
}
