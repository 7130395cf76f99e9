package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	apperrors "chernotour/internal/errors"
	"chernotour/internal/models"

	"github.com/gin-gonic/gin"
)

// Register - POST /api/register
// Зарегистрировать пользователя и сразу оформить бронь
func (h *Handlers) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Users.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Пользователь с таким email уже существует"})
			return
		}
		slog.Error("Failed to register user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка базы данных"})
		return
	}

	// Регистрация могла неявно создать тур
	if h.cache != nil {
		h.cache.InvalidateToursList(c.Request.Context())
	}

	c.JSON(http.StatusCreated, response)
}

// Login - POST /api/login
// Войти и получить список своих броней
func (h *Handlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Users.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Неверный email или пароль"})
			return
		}
		slog.Error("Failed to login user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка базы данных"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListUsers - GET /api/users
// Получить список пользователей
func (h *Handlers) ListUsers(c *gin.Context) {
	response, err := h.services.Users.List(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list users", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}

	c.JSON(http.StatusOK, response)
}
