package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dog-personality-quiz/internal/service"
)

// writeServiceError traduce los errores de servicio a status HTTP. Lo que no
// se reconoce es un 500 con un mensaje genérico y queda logueado.
func writeServiceError(c *gin.Context, logger *zap.Logger, fallback string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidOption):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Selected option is not valid for this question"})
	case errors.Is(err, service.ErrUnknownTrait):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trait specified"})
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz session not found"})
	case errors.Is(err, service.ErrQuestionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found for this session"})
	case errors.Is(err, service.ErrResultNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Results not generated yet. Please complete the quiz first."})
	case errors.Is(err, service.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
	case errors.Is(err, service.ErrChatUnavailable):
		logger.Warn(fallback, zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "chat temporarily unavailable"})
	default:
		logger.Error(fallback, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
