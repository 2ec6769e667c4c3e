package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"restaurant_ordering/internal/category"
	"restaurant_ordering/internal/repository"
	"restaurant_ordering/internal/services"

	"github.com/gin-gonic/gin"
)

func respondOK(c *gin.Context, data interface{}, message string) {
	body := gin.H{"success": true}
	if data != nil {
		body["data"] = data
	}
	if message != "" {
		body["message"] = message
	}
	c.JSON(http.StatusOK, body)
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": message})
}

// respondError maps a service error to its status code. Storage details stay
// in the log.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("Request failed", "path", c.FullPath(), "error", err)
		_ = c.Error(err)
		message = "internal server error"
		if errors.Is(err, repository.ErrStorageUnavailable) {
			message = repository.ErrStorageUnavailable.Error()
		}
	}
	c.JSON(status, gin.H{"success": false, "error": message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidArgument),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, category.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
