package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dog-personality-quiz/internal/service"
)

// ResultHandler expone generación, lectura, regeneración de imágenes y chat.
type ResultHandler struct {
	logger  *zap.Logger
	results *service.ResultService
	chat    *service.ChatService
}

func NewResultHandler(logger *zap.Logger, results *service.ResultService, chat *service.ChatService) *ResultHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResultHandler{logger: logger, results: results, chat: chat}
}

// Generate maneja POST /api/results/:slug/generate.
func (h *ResultHandler) Generate(c *gin.Context) {
	result, err := h.results.Generate(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeServiceError(c, h.logger, "Failed to generate results", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "results": result})
}

// Get maneja GET /api/results/:slug.
func (h *ResultHandler) Get(c *gin.Context) {
	view, err := h.results.GetResult(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeServiceError(c, h.logger, "Failed to get results", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"session":  view.Session,
		"results":  view.Result,
		"qa_pairs": view.Pairs,
	})
}

// RegenerateImage maneja POST /api/results/:slug/regenerate-image/:trait.
func (h *ResultHandler) RegenerateImage(c *gin.Context) {
	trait := c.Param("trait")
	ref, err := h.results.RegenerateImage(c.Request.Context(), c.Param("slug"), trait)
	if err != nil {
		writeServiceError(c, h.logger, "Failed to regenerate image", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"new_image": ref,
		"message":   fmt.Sprintf("New image for %s has been generated.", trait),
	})
}

// Chat maneja POST /api/results/:slug/chat.
func (h *ResultHandler) Chat(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	reply, err := h.chat.Chat(c.Request.Context(), c.Param("slug"), req.Message)
	if err != nil {
		writeServiceError(c, h.logger, "Failed to process chat message", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "response": reply})
}
