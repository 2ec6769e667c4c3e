package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"restaurant_ordering/internal/services"

	"github.com/gin-gonic/gin"
)

// Pinger checks that storage is reachable.
type Pinger func(ctx context.Context) error

type APIHandler struct {
	ping         Pinger
	menuService  services.MenuService
	orderService services.OrderService
	statsService services.StatisticsService
	authService  services.AuthService
}

func NewAPIHandler(
	ping Pinger,
	menuService services.MenuService,
	orderService services.OrderService,
	statsService services.StatisticsService,
	authService services.AuthService,
) *APIHandler {
	return &APIHandler{
		ping:         ping,
		menuService:  menuService,
		orderService: orderService,
		statsService: statsService,
		authService:  authService,
	}
}

func (h *APIHandler) Health(c *gin.Context) {
	if err := h.ping(c.Request.Context()); err != nil {
		slog.Error("Health check failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "database unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Backend is running"})
}

func (h *APIHandler) Login(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request format")
		return
	}

	token, expiresAt, err := h.authService.Login(req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"token": token, "expiresAt": expiresAt}, "Login successful")
}
